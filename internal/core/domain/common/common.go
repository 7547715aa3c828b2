package common

import (
	"fmt"
	"strings"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

// Some is a shortcut for NewOptional(value, true).
func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, IsPresent: true}
}

// None returns an absent optional value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// OrElse returns the wrapped value if it is present and fallback otherwise.
func (p Optional[T]) OrElse(fallback T) T {
	if p.IsPresent {
		return p.Value
	}
	return fallback
}

// Email addresses are compared as exact strings, only surrounding
// whitespace is dropped.
type Email string

func NewEmail(rawEmail string) Email {
	return Email(strings.TrimSpace(rawEmail))
}

func (e Email) String() string {
	return string(e)
}
