package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/samber/lo"
	"github.com/shandysiswandi/gocontact/internal/pkg/strcase"
)

var (
	// Permissive syntactic check: local@domain.tld, no whitespace, single '@'.
	reContactEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// Violation describes a single failed rule on a single field.
type Violation struct {
	// Field is the snake_case field name.
	Field string
	// Tag is the validation tag that failed (e.g. "required").
	Tag string
	// Message is the translated, human-readable reason.
	Message string
}

// V10ValidationError is returned when validation fails.
//
// Violations are kept in struct declaration order so callers can report them
// deterministically.
type V10ValidationError struct {
	violations []Violation
}

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs.violations) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs.Values())
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return lo.SliceToMap(vs.violations, func(v Violation) (string, string) {
		return v.Field, v.Message
	})
}

// Violations returns every violation in struct declaration order.
func (vs V10ValidationError) Violations() []Violation {
	return vs.violations
}

// FieldsWithTag returns, in declaration order, the fields that failed the given tag.
func (vs V10ValidationError) FieldsWithTag(tag string) []string {
	return lo.FilterMap(vs.violations, func(v Violation, _ int) (string, bool) {
		return v.Field, v.Tag == tag
	})
}

// NewV10Validator constructs a V10Validator with English translations and custom rules.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	v10CustomValidation(validate, enTrans)

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		errV10 := V10ValidationError{violations: make([]Violation, 0, len(validateErrs))}
		for _, fe := range validateErrs {
			errV10.violations = append(errV10.violations, Violation{
				Field:   strcase.ToLowerSnake(fe.Field()),
				Tag:     fe.Tag(),
				Message: fe.Translate(v.translator),
			})
		}

		return errV10
	}

	return nil
}

//nolint:errcheck,gosec,forcetypeassert // make linter silent
func v10CustomValidation(validate *validator.Validate, enTrans ut.Translator) {
	validate.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return reContactEmail.MatchString(e)
	})

	validate.RegisterTranslation("contactemail", enTrans,
		func(ut ut.Translator) error {
			return ut.Add("contactemail", "{0} must be a valid email address", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), strcase.ToLowerSnake(fe.Field()))
			if err != nil {
				slog.Warn("warning: error translating", "FieldError", fe, "error", err)
				return fe.(error).Error()
			}

			return t
		},
	)

	validate.RegisterTranslation("required", enTrans,
		func(ut ut.Translator) error {
			return ut.Add("required", "{0} is a required field", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), strcase.ToLowerSnake(fe.Field()))
			return t
		},
	)
}
