// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrPersonNotFound is returned when a person ID is not part of the directory.
	ErrPersonNotFound = errors.New("person not found")

	// ErrInvalidID is returned when a person ID in a URL is not an integer.
	ErrInvalidID = errors.New("invalid ID")
)

// Payment card validation errors.
var (
	ErrCardNotDigits = errors.New("card number is not all digits")
	ErrCardLength    = errors.New("length for a card number is invalid")
	ErrCardLuhn      = errors.New("card number is not luhn valid")
)
