package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("longpassword1")
	require.NoError(t, err)

	assert.NotEqual(t, "longpassword1", hash)
	assert.True(t, CheckPassword(hash, "longpassword1"))
	assert.False(t, CheckPassword(hash, "longpassword2"))
}

func TestHTTPErrorConstructors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NewNotFound("users.not_found").Status)
	assert.Equal(t, http.StatusBadRequest, NewBadRequest("validation.invalid_id").Status)

	conflict := NewConflict("roles.slug_taken", map[string]string{"slug": "admin"})
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.Equal(t, "admin", conflict.Params["slug"])

	unprocessable := NewUnprocessable("email", "email is invalid")
	assert.Equal(t, http.StatusUnprocessableEntity, unprocessable.Status)
	assert.Equal(t, "validation.invalid_data", unprocessable.Message)
	assert.Equal(t, map[string][]string{"email": {"email is invalid"}}, unprocessable.Errors)
	assert.Equal(t, "422 validation.invalid_data", unprocessable.Error())
}

func TestPtrDeref(t *testing.T) {
	assert.Equal(t, "x", *Ptr("x"))
	assert.Equal(t, "", Deref[string](nil))
	assert.Equal(t, 4, Deref(Ptr(4)))
}
