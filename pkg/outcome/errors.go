package outcome

import "errors"

var (
	// ErrValidation wraps the message of an input rejected before any remote call.
	ErrValidation = errors.New("validation failed")

	// ErrNotSignedIn is returned by WrapWithSession when there is no active session.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrPanic wraps a recovered panic from a wrapped operation.
	ErrPanic = errors.New("operation panicked")

	// ErrInvalidCatalog is returned when a message catalog cannot be parsed.
	ErrInvalidCatalog = errors.New("invalid message catalog")
)

// Fixed user facing messages.
const (
	GenericErrorMessage = "Something went wrong. Please try again."
	SignInMessage       = "Please sign in to continue."
)
