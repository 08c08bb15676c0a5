package mocks

import "github.com/stretchr/testify/mock"

func get[T any](args mock.Arguments, i int) T {
	var zero T

	if v := args.Get(i); v != nil {
		return v.(T)
	}

	return zero
}
