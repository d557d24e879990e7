package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"stefan-booking/internal/httpx"

	"github.com/go-playground/validator/v10"
)

// emailShape is the loose local@domain.tld check the booking form uses.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// A LooseInt that was not given validates like a nil value, so
	// "required" rejects it.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		n, ok := field.Interface().(httpx.LooseInt)
		if !ok || !n.Present {
			return nil
		}
		return n.Raw
	}, httpx.LooseInt{})

	v.RegisterValidation("mailshape", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return IsEmailShaped(fl.Field().String())
	})

	return &Validator{v: v}
}

func IsEmailShaped(value string) bool {
	return emailShape.MatchString(value)
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

func (v *Validator) ValidationErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// HasTag reports whether any failed rule is tag.
func HasTag(errs validator.ValidationErrors, tag string) bool {
	for _, err := range errs {
		if err.Tag() == tag {
			return true
		}
	}
	return false
}
