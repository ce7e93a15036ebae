package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voltride/rental-core/internal/core/domain"
)

func parseTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-time <text>",
		Short: "Parse a 12-hour clock string into 24-hour time",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := domain.ParseTime(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ct)
			return nil
		},
	}
}
