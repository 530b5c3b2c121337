// Package validate wraps go-playground/validator with a shared instance so
// struct tags are parsed once per type for the life of the process.
package validate

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// Report yaml field names instead of Go field names.
		validatorInst.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validatorInst.RegisterValidation("link", validateLink)
	})
	return validatorInst
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}

// validateLink accepts absolute http(s) and mailto URLs plus "#" placeholders
// for projects that have no public page yet.
func validateLink(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	switch {
	case s == "#":
		return true
	case strings.HasPrefix(s, "mailto:"):
		return len(s) > len("mailto:")
	case strings.HasPrefix(s, "https://"), strings.HasPrefix(s, "http://"):
		return get().Var(s, "url") == nil
	default:
		return false
	}
}
