package schema

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/choreboard/pkg/async"
	"github.com/dmitrymomot/choreboard/pkg/validator"
)

// Result is the tagged outcome of Validate: Data when Success, otherwise a
// single Error message. Field names the input the message points at, when known.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"-"`
}

// Err converts a failed result into an error wrapping ErrInvalidInput.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, r.Error)
}

// Validate runs raw through s. It never panics: a panic inside a schema is
// reported with FallbackMessage.
func Validate[T any](s Schema[T], raw any) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Result[T]{Error: FallbackMessage}
		}
	}()

	data, err := s.Parse(raw)
	if err != nil {
		return Result[T]{Error: Message(err), Field: field(err)}
	}
	return Result[T]{Success: true, Data: data}
}

// ValidateAsync runs Validate on its own goroutine. None of the built-in
// schemas block; it exists for schemas whose refinements await a remote check.
func ValidateAsync[T any](ctx context.Context, s Schema[T], raw any) *async.Future[Result[T]] {
	return async.Async(ctx, raw, func(_ context.Context, raw any) (Result[T], error) {
		return Validate(s, raw), nil
	})
}

// Message extracts the single user facing message from a validation error.
func Message(err error) string {
	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 && verrs[0].Message != "" {
		return verrs[0].Message
	}
	return FallbackMessage
}

func field(err error) string {
	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		return verrs[0].Field
	}
	return ""
}
