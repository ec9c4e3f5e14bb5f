package domain

import "errors"

var (
	ErrLinkNotFound      = errors.New("link not found")
	ErrInvalidURL        = errors.New("invalid url")
	ErrInvalidCode       = errors.New("invalid short code")
	ErrShortCodeConflict = errors.New("short code already taken")
	ErrExhaustedKeyspace = errors.New("could not find a free short code")
)
