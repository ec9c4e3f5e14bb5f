package domain

import "errors"

var (
	// ErrInvalidCode is returned when a code does not have the short code shape
	ErrInvalidCode = errors.New("invalid short code")

	// ErrInvalidClick wraps the reason a click was rejected
	ErrInvalidClick = errors.New("invalid click")

	// ErrLinkNotFound is returned when neither the replica nor the Creation
	// Service knows the code
	ErrLinkNotFound = errors.New("short link not found")
)
