package state

import "errors"

var (
	// ErrNotFound is returned when an operation targets an id that is not in
	// the collection.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput is returned when an operation's arguments fail
	// validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExpenseResolved is returned when approving or rejecting an expense
	// that is no longer pending.
	ErrExpenseResolved = errors.New("expense already resolved")

	// ErrAlreadyHydrated is returned by a second Hydrate call.
	ErrAlreadyHydrated = errors.New("state already hydrated")
)
