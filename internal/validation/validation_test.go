package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/doggee/internal/apperr"
)

type credentials struct {
	Username string `json:"username" validate:"min=5"`
	Password string `json:"password" validate:"min=5"`
}

type dogPatch struct {
	Name   *string  `json:"name"   validate:"omitempty,min=1"`
	Weight *float64 `json:"weight" validate:"omitempty,gte=0"`
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Struct(credentials{Username: "abc", Password: "abcd"})
	require.Error(t, err)

	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "validation_failed", e.Code)
	require.Len(t, e.Fields, 2)
	assert.Equal(t, apperr.FieldError{Field: "username", Code: "min", Message: "Username must be at least 5 chars long"}, e.Fields[0])
	assert.Equal(t, "password", e.Fields[1].Field)
}

func TestStruct_Valid(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(credentials{Username: "alice01", Password: "secret1"}))
}

func TestStruct_OptionalPointers(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(dogPatch{}))

	neg := -1.0
	err := v.Struct(dogPatch{Weight: &neg})
	e, ok := apperr.As(err)
	require.True(t, ok)
	require.Len(t, e.Fields, 1)
	assert.Equal(t, "weight", e.Fields[0].Field)
	assert.Equal(t, "gte", e.Fields[0].Code)
	assert.Equal(t, "Weight must be a positive number", e.Fields[0].Message)

	empty := ""
	err = v.Struct(dogPatch{Name: &empty})
	e, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "name", e.Fields[0].Field)

	zero := 0.0
	assert.NoError(t, v.Struct(dogPatch{Weight: &zero}))
}
