package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,contactemail"`
	Subject string `validate:"required"`
	Message string `validate:"required"`
}

func TestV10Validator_Validate(t *testing.T) {
	t.Parallel()

	v, err := NewV10Validator()
	require.NoError(t, err)

	t.Run("Valid", func(t *testing.T) {
		t.Parallel()

		err := v.Validate(contactForm{Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello"})
		require.NoError(t, err)
	})

	t.Run("MissingFieldsInDeclarationOrder", func(t *testing.T) {
		t.Parallel()

		err := v.Validate(contactForm{Email: "jane@example.com"})

		var verr V10ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"name", "subject", "message"}, verr.FieldsWithTag("required"))
		assert.Equal(t, "name is a required field", verr.Values()["name"])
		assert.Empty(t, verr.FieldsWithTag("contactemail"))
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		t.Parallel()

		emails := []string{
			"not-an-email",
			"jane@example",
			"jane @example.com",
			"@example.com",
			"jane@@example.com",
			"jane@.com",
		}
		for _, email := range emails {
			err := v.Validate(contactForm{Name: "Jane", Email: email, Subject: "Hi", Message: "Hello"})

			var verr V10ValidationError
			require.ErrorAs(t, err, &verr, email)
			assert.Equal(t, []string{"email"}, verr.FieldsWithTag("contactemail"), email)
			assert.Equal(t, "email must be a valid email address", verr.Values()["email"], email)
		}
	})

	t.Run("PermissiveEmail", func(t *testing.T) {
		t.Parallel()

		for _, email := range []string{"a@b.c", "first.last+tag@sub.example.co.uk", "ü@例え.jp"} {
			err := v.Validate(contactForm{Name: "Jane", Email: email, Subject: "Hi", Message: "Hello"})
			assert.NoError(t, err, email)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		t.Parallel()

		in := contactForm{Name: "Jane", Email: "nope", Message: "Hello"}
		first := v.Validate(in)
		second := v.Validate(in)
		assert.Equal(t, first, second)
		assert.Equal(t, first.Error(), second.Error())
	})
}

func TestV10ValidationError_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "validation error", V10ValidationError{}.Error())

	verr := V10ValidationError{violations: []Violation{{Field: "name", Tag: "required", Message: "name is a required field"}}}
	assert.JSONEq(t, `{"name":"name is a required field"}`, verr.Error())
	assert.Len(t, verr.Violations(), 1)
}
