package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" binding:"required,email"`
	Slug  string `json:"slug" binding:"required,slug"`
	Page  string `form:"page" binding:"omitempty,number"`
	Limit string `form:"limit" binding:"omitempty,maxnum=100"`
}

func newValidation(t *testing.T) *Validation {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	val, err := New(v, "en")
	require.NoError(t, err)
	return val
}

func TestFieldErrorsUseJSONNames(t *testing.T) {
	val := newValidation(t)

	err := val.Validate(sample{Email: "nope", Slug: "Not A Slug", Page: "x"})
	fields, ok := val.FieldErrors(err, "en")
	require.True(t, ok)

	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "slug")
	assert.Contains(t, fields, "page")
	assert.Equal(t, []string{"slug must be a valid slug (lowercase letters, digits and dashes)"}, fields["slug"])
}

func TestFieldErrorsLocalized(t *testing.T) {
	val := newValidation(t)

	err := val.Validate(sample{Slug: "ok-slug"})
	en, ok := val.FieldErrors(err, "en")
	require.True(t, ok)
	id, ok := val.FieldErrors(err, "id")
	require.True(t, ok)

	require.Len(t, en["email"], 1)
	require.Len(t, id["email"], 1)
	assert.NotEqual(t, en["email"][0], id["email"][0])
}

func TestFieldErrorsUnknownLocaleFallsBack(t *testing.T) {
	val := newValidation(t)

	err := val.Validate(sample{Email: "a@b.co", Slug: "Bad Slug"})
	fields, ok := val.FieldErrors(err, "fr")
	require.True(t, ok)
	assert.Equal(t, []string{"slug must be a valid slug (lowercase letters, digits and dashes)"}, fields["slug"])
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	val := newValidation(t)
	_, ok := val.FieldErrors(assert.AnError, "en")
	assert.False(t, ok)
}

func TestMaxNumber(t *testing.T) {
	val := newValidation(t)

	assert.NoError(t, val.Validate(sample{Email: "a@b.co", Slug: "ok", Limit: "100"}))
	assert.NoError(t, val.Validate(sample{Email: "a@b.co", Slug: "ok", Limit: "abc"}))

	err := val.Validate(sample{Email: "a@b.co", Slug: "ok", Limit: "101"})
	fields, ok := val.FieldErrors(err, "en")
	require.True(t, ok)
	assert.Equal(t, []string{"limit must not be greater than 100"}, fields["limit"])
}
