package client

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is wrapped by every error caused by invalid caller input.
// Such errors are returned before any request is sent, whatever the
// [CallOptions.ThrowOnError] setting.
var ErrValidation = errors.New("invalid request")

var fspNamePattern = regexp.MustCompile(`^[0-9a-zA-Z]{2,30}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("fspname", func(fl validator.FieldLevel) bool {
		return fspNamePattern.MatchString(fl.Field().String())
	})

	return v
}

// ValidateFspName reports whether name is acceptable as a participant name.
func ValidateFspName(name string) error {
	if !fspNamePattern.MatchString(name) {
		return fmt.Errorf("%w: participant name %q must match %s", ErrValidation, name, fspNamePattern)
	}
	return nil
}

func validateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
