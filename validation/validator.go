package validation

import (
	"errors"
	"fmt"
	"strings"

	"hotel-frontdesk/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the tag validator over a request DTO and folds the
// failures into one ValidationError.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return apperrors.Validation("invalid request: %v", err)
	}

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return apperrors.Validation("invalid fields: %s", strings.Join(fields, ", "))
}
