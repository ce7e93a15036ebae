package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voltride/rental-core/internal/core/domain"
)

func distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <lat,lng> <lat,lng>",
		Short: "Great-circle distance in meters",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseCoordinates(args[0])
			if err != nil {
				return err
			}
			b, err := parseCoordinates(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.1f m\n", a.DistanceTo(b))
			return nil
		},
	}
}

func parseCoordinates(s string) (domain.Coordinates, error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("%q: want lat,lng", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%q: latitude: %w", s, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%q: longitude: %w", s, err)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return domain.Coordinates{}, fmt.Errorf("%q: out of range", s)
	}
	return domain.Coordinates{Lat: lat, Lng: lng}, nil
}
