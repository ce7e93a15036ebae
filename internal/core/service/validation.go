package service

import (
	"fmt"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/pkg/validation"
)

var validate = validation.New()

// validateInput returns an error wrapping domain.ErrInvalidInput when in
// fails its struct tags.
func validateInput(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return nil
}
