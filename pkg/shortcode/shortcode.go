// Package shortcode generates and validates the fixed-length identifiers
// that stand in for long URLs.
package shortcode

import (
	"regexp"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Alphabet is the 62-character case-sensitive alphanumeric set codes are drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// Length is the number of characters in every code.
	Length = 6
)

var pattern = regexp.MustCompile(`^[A-Za-z0-9]{6}$`)

// Generator produces candidate codes. It does not guarantee uniqueness.
type Generator func() (string, error)

// Generate returns a random code of Length characters, each drawn uniformly
// and independently from Alphabet.
func Generate() (string, error) {
	return gonanoid.Generate(Alphabet, Length)
}

// Valid reports whether code has the shape of a generated code.
func Valid(code string) bool {
	return pattern.MatchString(code)
}
