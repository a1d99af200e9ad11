package binding

import (
	"context"
	"errors"

	"github.com/on-the-ground/powereggs/effects/internal/helper"
)

// GetTyped fetches a typed value from the Binding effect using the provided key.
// Panics if no binding handler is registered.
// Returns a zero value and error if the key is not found or the type is mismatched.
func GetTyped[T any](ctx context.Context, key string) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return Effect(ctx, key)
	})
}

// MustGetTyped is the panic-on-failure variant of GetTyped.
func MustGetTyped[T any](ctx context.Context, key string) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return Effect(ctx, key)
	})
}

// GetOrDefault returns the value bound to key, or def if no scope binds it.
// A value of the wrong type is still an error.
func GetOrDefault[T any](ctx context.Context, key string, def T) (T, error) {
	v, err := GetTyped[T](ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return def, nil
	}
	return v, err
}
