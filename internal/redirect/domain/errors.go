package domain

import "errors"

var (
	// ErrInvalidCode is returned when a code does not have the short code shape
	ErrInvalidCode = errors.New("invalid short code")

	// ErrLinkNotFound is returned when no tier knows the code
	ErrLinkNotFound = errors.New("short link not found")
)
