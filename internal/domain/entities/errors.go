package entities

import "github.com/samber/oops"

// Error codes attached to oops errors raised by the domain.
const (
	CodePersistenceRead  = "PERSISTENCE_READ"
	CodePersistenceWrite = "PERSISTENCE_WRITE"
	CodeShareDecode      = "SHARE_DECODE"
	CodeValidation       = "VALIDATION"
	CodeNotFound         = "NOT_FOUND"
)

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return false
	}
	return oopsErr.Code() == code
}

// IsPersistenceWrite reports whether err is a non-fatal storage write warning.
func IsPersistenceWrite(err error) bool {
	return hasCode(err, CodePersistenceWrite)
}

// IsPersistenceRead reports whether err came from reading stored data.
func IsPersistenceRead(err error) bool {
	return hasCode(err, CodePersistenceRead)
}

// IsShareDecode reports whether err is a malformed share token.
func IsShareDecode(err error) bool {
	return hasCode(err, CodeShareDecode)
}

// IsValidation reports whether err is a rejected user input.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsNotFound reports whether err names a missing character.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// ValidationError builds a VALIDATION error with a user-facing message.
func ValidationError(format string, args ...any) error {
	return oops.Code(CodeValidation).Errorf(format, args...)
}

// NotFoundError builds a NOT_FOUND error for a character id.
func NotFoundError(id string) error {
	if id == "" {
		return oops.Code(CodeNotFound).Errorf("no active character (use 'ficha select' or 'ficha create')")
	}
	return oops.Code(CodeNotFound).With("character_id", id).Errorf("character %q not found", id)
}
