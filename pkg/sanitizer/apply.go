package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates a reusable pipeline from transforms.
// Preferred over repeated Apply calls when the same chain is used by several schemas.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Fixpoint repeats transform until the value stops changing.
// The transform must only ever shrink its input, otherwise this may not terminate.
func Fixpoint(transform func(string) string) func(string) string {
	return func(s string) string {
		for {
			next := transform(s)
			if next == s {
				return next
			}
			s = next
		}
	}
}
