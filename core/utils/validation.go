package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// single instance, it caches struct info
var (
	validate *validator.Validate
	trans    ut.Translator
)

// resourceIDPattern restricts IDs that end up in object keys and URLs.
var resourceIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,127}$`)

func init() {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ = uni.GetTranslator("en")

	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("resource_id", func(fl validator.FieldLevel) bool {
		return resourceIDPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := validate.RegisterTranslation("resource_id", trans,
		func(ut ut.Translator) error {
			return ut.Add("resource_id", "{0} must be 1-128 letters, digits, '.', '_' or '-'", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("resource_id", fe.Field())
			return t
		},
	); err != nil {
		panic(err)
	}
}

// ValidationError carries the translated violations of one struct.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Validate checks the `validate` tags of a struct and returns a
// *ValidationError listing every translated violation.
func Validate[T any](structure T) error {
	err := validate.Struct(structure)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		msgs = append(msgs, e.Translate(trans))
	}
	return &ValidationError{Messages: msgs}
}

// IsResourceID reports whether id is usable as a connection or snapshot ID.
func IsResourceID(id string) bool {
	return resourceIDPattern.MatchString(id)
}
