// Package common defines shared sentinel errors and small helpers used
// across Birthday Keeper layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound     = errors.New("not found")
	ErrCorruptStore = errors.New("corrupt store data")

	// Signup/login errors, surfaced to the user verbatim.
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Input validation errors.
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidYear = errors.New("year must have exactly 4 digits")
)
