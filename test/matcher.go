package test

import (
	"fmt"

	"go.uber.org/mock/gomock"
)

type predicate[T any] struct {
	match func(T) bool
	last  any
}

func (p *predicate[T]) Matches(x any) bool {
	p.last = x
	v, ok := x.(T)
	return ok && p.match(v)
}

func (p *predicate[T]) String() string {
	var zero T
	return fmt.Sprintf("is a %T satisfying the predicate (last seen %v)", zero, p.last)
}

// Match builds a gomock matcher from a predicate over the argument's concrete type.
func Match[T any](match func(T) bool) gomock.Matcher {
	return &predicate[T]{match: match}
}
