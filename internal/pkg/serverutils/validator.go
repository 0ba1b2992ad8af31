package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"restro-orders-be/internal/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks struct tags and reports the first offending fields
// as a single ValidationError.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			messages := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				messages = append(messages, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
			}
			return apperr.Withf(apperr.ErrValidation, "%s", strings.Join(messages, "; "))
		}
		return apperr.Wrap(apperr.ErrValidation, "invalid request body", err)
	}
	return nil
}
