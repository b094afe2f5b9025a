package entity

import "errors"

// Domain errors
var (
	// Contract errors
	ErrContractNotFound = errors.New("contract not found")
	ErrEmptyCompletion  = errors.New("upstream returned no content")
	ErrGenerationFailed = errors.New("contract generation failed")

	// Validation errors
	ErrMissingField        = errors.New("required field is missing")
	ErrInvalidFormat       = errors.New("invalid format")
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrInvalidContractType = errors.New("invalid contract type")
)
