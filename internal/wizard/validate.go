package wizard

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON names so messages match what users type.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
	})
	return validate
}

// Check validates v against its `validate` tags.
func Check(v any) error {
	return humanize(instance().Struct(v))
}

// checkFields validates only the named fields of v (dotted for nested structs).
func checkFields(v any, fields ...string) error {
	return humanize(instance().StructPartial(v, fields...))
}

// humanize turns the first validator failure into a one-line message.
func humanize(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	name := fieldName(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", name)
	case "notblank":
		return fmt.Errorf("%s must not be blank", name)
	case "email":
		return fmt.Errorf("%s must be a valid email address", name)
	case "min":
		return fmt.Errorf("%s must be at least %s characters", name, fe.Param())
	case "gte":
		return fmt.Errorf("%s must be at least %s", name, fe.Param())
	case "lte":
		return fmt.Errorf("%s must be at most %s", name, fe.Param())
	case "gtfield":
		return fmt.Errorf("%s must be after %s", name, words(fe.Param()))
	default:
		return fmt.Errorf("%s is invalid (%s)", name, fe.Tag())
	}
}

// fieldName turns a namespace like "HelpOfferCreate.availability.end_time"
// into "availability end time".
func fieldName(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.NewReplacer(".", " ", "_", " ").Replace(ns)
}

// words splits a Go field name such as "StartTime" into "start time".
func words(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
