package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"persistence write", oops.Code(CodePersistenceWrite).Errorf("x"), IsPersistenceWrite},
		{"persistence read", oops.Code(CodePersistenceRead).Errorf("x"), IsPersistenceRead},
		{"share decode", oops.Code(CodeShareDecode).Errorf("x"), IsShareDecode},
		{"validation", ValidationError("bad %s", "input"), IsValidation},
		{"not found", NotFoundError("abc"), IsNotFound},
		{"wrapped", fmt.Errorf("outer: %w", ValidationError("inner")), IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}
}

func TestErrorClassification_Negative(t *testing.T) {
	plain := errors.New("plain")
	assert.False(t, IsValidation(plain))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsPersistenceWrite(ValidationError("x")))
	assert.False(t, IsShareDecode(oops.Errorf("no code")))
}

func TestNotFoundError_Message(t *testing.T) {
	assert.Contains(t, NotFoundError("").Error(), "no active character")
	assert.Contains(t, NotFoundError("abc").Error(), `character "abc" not found`)
	assert.Equal(t, "bad input", ValidationError("bad %s", "input").Error())
}
