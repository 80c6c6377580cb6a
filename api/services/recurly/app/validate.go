package app

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate

	codePattern            = regexp.MustCompile(`^[a-z0-9_+-]+$`)
	customFieldNamePattern = regexp.MustCompile(`(?i)^[a-z0-9_-]+$`)
	displayNamePattern     = regexp.MustCompile(`^[\w ]+$`)
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" {
				name, _, _ = strings.Cut(f.Tag.Get("query"), ",")
			}
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			d, ok := field.Interface().(decimal.Decimal)
			if !ok {
				return nil
			}
			f, _ := d.Float64()
			return f
		}, decimal.Decimal{})
		mustRegister(v, "recurly_code", matches(codePattern))
		mustRegister(v, "custom_field_name", matches(customFieldNamePattern))
		mustRegister(v, "display_name", matches(displayNamePattern))
		validate = v
	})
	return validate
}

// mustRegister panics when a rule cannot be registered, like regexp.MustCompile.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("app: register validation %q: %v", tag, err))
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool { return re.MatchString(fl.Field().String()) }
}

// Validate checks v against its `validate` tags. op labels the error.
// Values that are not structs, nil pointers included, pass unchecked.
func Validate(op string, v any) error {
	if v == nil {
		return nil
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil
	}
	if err := validatorInstance().Struct(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrValidation, op, err)
	}
	return nil
}
