package recipe

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func inputValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(fmt.Sprintf("register notblank: %v", err))
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate = v
	})
	return validate
}

func validateInput(in NewRecipe) error {
	err := inputValidator().Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: fe.Field(), Reason: reasonFor(fe)}
	}
	return &ValidationError{Field: "recipe", Reason: err.Error()}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "must not be empty"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
