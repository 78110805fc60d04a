// internal/service/validation.go
package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator that reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError turns a validator failure on the first field into an
// InvalidInput error.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}

	fe := verrs[0]
	if fe.Tag() == "required" {
		return domain.InvalidInput(fmt.Sprintf("%s wajib diisi", fe.Field()))
	}
	return domain.InvalidInput(fmt.Sprintf("%s tidak valid", fe.Field()))
}
