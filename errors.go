package amplitude

import (
	"errors"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("invalid event attributes")

// ValidationReason enumerates why NewEvent rejected its attributes.
type ValidationReason int

const (
	MissingPriceForProductID ValidationReason = iota + 1
	MissingPriceForRevenueType
)

func (r ValidationReason) String() string {
	switch r {
	case MissingPriceForProductID:
		return "MissingPriceForProductID"
	case MissingPriceForRevenueType:
		return "MissingPriceForRevenueType"
	default:
		return "Unknown"
	}
}

// ValidationError is returned by NewEvent when revenue fields are supplied
// without a price. Field names the offending input field.
type ValidationError struct {
	Field  string
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return "You must provide a price in order to use the " + e.Field
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
