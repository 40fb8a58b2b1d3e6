package schema

import "errors"

var (
	// ErrInvalidInput wraps a failed validation message when a Result is turned into an error.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType is returned when an object schema receives something that is not a mapping.
	ErrUnsupportedType = errors.New("unsupported input type")
)

// FallbackMessage is shown when a failure carries no rule message, e.g. a recovered panic.
const FallbackMessage = "Invalid input. Please check your data and try again."
