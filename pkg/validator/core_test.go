package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/choreboard/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
		errs = append(errs, validator.ValidationError{Field: "password", Message: "too short"})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "email: is required")
		assert.Contains(t, errorMsg, "password: too short")
	})
}

func TestValidationErrors_IsEmpty(t *testing.T) {
	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs = append(errs, validator.ValidationError{Field: "password", Message: "too short"})
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "Ana"),
			validator.MaxLenString("name", "Ana", 10),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", ""),
			validator.ValidEmail("email", "nope"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "name", verrs[0].Field)
		assert.Equal(t, "email", verrs[1].Field)
	})
}

func TestFirst(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.First(validator.RequiredString("name", "Ana")))
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		evaluated := false
		tail := validator.Rule{
			Check: func() bool {
				evaluated = true
				return false
			},
			Error: validator.ValidationError{Field: "tail", Message: "never"},
		}

		err := validator.First(
			validator.RequiredString("name", "Ana"),
			validator.MaxLenString("name", "Anastasia", 3),
			tail,
		)
		require.Error(t, err)
		assert.False(t, evaluated, "rules after the first failure must not run")

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "must be at most 3 characters long", verrs[0].Message)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))

	wrapped := fmt.Errorf("sign up: %w", validator.First(validator.RequiredString("email", "")))
	verrs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, verrs, 1)
	assert.Equal(t, "email", verrs[0].Field)
}
