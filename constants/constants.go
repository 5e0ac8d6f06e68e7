package constants

import "errors"

// Error responses
const MISSING_FIELD = "missing required field"
const INVALID_EMAIL_FORMAT = "invalid email format"
const INVALID_PRICE = "invalid price"
const INVALID_QUANTITY = "invalid quantity"
const NOT_FOUND = "not found"
const REFERENCE_NOT_FOUND = "referenced record not found"
const STORE_PERSISTENCE_FAILED = "store persistence failed"
const INTERNAL_ERROR = "internal server error"

// Relation placeholder used by response projections
const UNKNOWN_NAME = "Unknown"

var (
	ErrMissingField       = errors.New(MISSING_FIELD)
	ErrInvalidEmailFormat = errors.New(INVALID_EMAIL_FORMAT)
	ErrInvalidPrice       = errors.New(INVALID_PRICE)
	ErrInvalidQuantity    = errors.New(INVALID_QUANTITY)
	ErrNotFound           = errors.New(NOT_FOUND)
	ErrReferenceNotFound  = errors.New(REFERENCE_NOT_FOUND)
	ErrStorePersistence   = errors.New(STORE_PERSISTENCE_FAILED)
)

// IsValidationError reports whether err was raised before reaching the store.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidEmailFormat) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidQuantity)
}
