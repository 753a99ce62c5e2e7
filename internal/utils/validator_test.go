package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateValidationErrors(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
		Order int    `validate:"gte=0"`
	}

	v := validator.New()
	err := v.Struct(payload{Email: "not-an-email", Order: -1})
	require.Error(t, err)

	fields := TranslateValidationErrors(err)
	assert.Equal(t, "this field is required", fields["name"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be greater than or equal to 0", fields["order"])
}

func TestValidatorReportsJSONFieldNames(t *testing.T) {
	type payload struct {
		CategoryID      string `json:"category_id" validate:"required"`
		SortOrder       *int   `json:"sort_order" validate:"required"`
		InvestmentRange string `json:"investment_range" validate:"required"`
	}

	v := NewValidator()
	err := v.Struct(payload{})
	require.Error(t, err)

	fields := TranslateValidationErrors(err)
	assert.Contains(t, fields, "category_id")
	assert.Contains(t, fields, "sort_order")
	assert.Contains(t, fields, "investment_range")
	assert.NotContains(t, fields, "categoryid")
}

func TestTranslateValidationErrorsIgnoresOtherErrors(t *testing.T) {
	fields := TranslateValidationErrors(assert.AnError)
	assert.Empty(t, fields)
}
