package mocks

import "github.com/stretchr/testify/mock"

// get returns the i-th return value as T, or T's zero value when it is nil.
func get[T any](args mock.Arguments, i int) T {
	var zero T

	if v := args.Get(i); v != nil {
		return v.(T)
	}

	return zero
}
