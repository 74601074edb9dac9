package energy

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", finiteValidator); err != nil {
		panic(err)
	}
	// Report fields by their JSON name, which is also what users see in -o json.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

func finiteValidator(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		x := fl.Field().Float()
		return !math.IsInf(x, 0) && !math.IsNaN(x)
	default:
		return true
	}
}

// Validate checks that every input of s is a finite, strictly positive number.
// The returned error wraps ErrInvalidScenario.
func Validate(s Scenario) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidScenario, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s (got %v)", fe.Field(), fe.Param(), fe.Value())
	case "finite":
		return fmt.Sprintf("%s must be finite (got %v)", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value())
	}
}
