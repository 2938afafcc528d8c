package services

import "errors"

// validationError marks bad input so handlers can answer 400 without
// enumerating every sentinel. Validation failures stop a write-set before
// any store interaction.
type validationError string

func (e validationError) Error() string { return string(e) }

const (
	ErrTitleRequired       = validationError("objective title is required")
	ErrKeyResultsRequired  = validationError("at least one key result with a description is required")
	ErrDescriptionRequired = validationError("key result description is required")
	ErrNegativeValue       = validationError("value cannot be negative")
	ErrNameRoleRequired    = validationError("member name and crew role are required")
	ErrContentRequired     = validationError("content is required")
	ErrInvalidReflection   = validationError("invalid reflection type")
)

// IsValidation reports whether err is a local input problem rather than a
// store failure.
func IsValidation(err error) bool {
	var v validationError
	return errors.As(err, &v)
}
