package repository

import "errors"

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a unique
	// constraint (duplicate email, double-booked slot).
	ErrConflict = errors.New("conflict")
)
