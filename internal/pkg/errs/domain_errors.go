package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Rate targets
	ErrTargetNotFound = errors.New("target not found")

	// Overrides, availability blocks and peak season rates
	ErrRecordNotFound = errors.New("record not found")

	// Writes on a target the acting user does not own
	ErrOwnership = errors.New("acting user does not own the target")
)
