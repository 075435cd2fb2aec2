package output

import "errors"

var (
	// ErrUnknownOrder is returned for a printing order other than GivingOrder,
	// FamilyOrder or AlphabeticalOrder.
	ErrUnknownOrder = errors.New("output: unknown printing order")

	// ErrMissingGiver is returned when the list has no pair for a registry name.
	ErrMissingGiver = errors.New("output: participant has no pair in the list")
)
