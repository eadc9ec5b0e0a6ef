// Package nameparser splits free-text full names into their salutation, first
// name, middle initials, last name, and suffix.
//
// Examples:
//   - "John Doe" -> First "John", Last "Doe"
//   - "Mr Anthony R Von Fange III" -> "Mr.", "Anthony", "R", "Von Fange", "III"
//   - "Doe, John" -> First "John", Last "Doe"
//
// Parsing is a pure function of its input, so it's safe to call from any
// number of goroutines.
package nameparser

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrEmptyInput is returned by Parse when the input has no words left once
// parenthetical asides are removed.
var ErrEmptyInput = errors.New("name is empty")

// ParsedName is the structured form of a full name. Every field is the empty
// string when the part isn't present.
type ParsedName struct {
	Salutation     string `json:"salutation"`
	FirstName      string `json:"first_name"`
	MiddleInitials string `json:"middle_initials"`
	LastName       string `json:"last_name"`
	Suffix         string `json:"suffix"`
}

// Parse splits fullName into its parts. It returns ErrEmptyInput when
// fullName is blank or made up entirely of parenthetical text.
func Parse(fullName string) (ParsedName, error) {
	tokens := Tokenize(fullName)
	if len(tokens) == 0 {
		return ParsedName{}, ErrEmptyInput
	}
	return newAssembly(tokens).run(), nil
}

// String joins the non-empty parts in display order.
func (p ParsedName) String() string {
	parts := make([]string, 0, 5)
	for _, s := range []string{p.Salutation, p.FirstName, p.MiddleInitials, p.LastName, p.Suffix} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// IsZero reports whether every part is empty.
func (p ParsedName) IsZero() bool {
	return p == ParsedName{}
}

// Compare orders names case-insensitively by last name, then first name, then
// middle initials. It returns -1, 0, or +1.
func Compare(a, b ParsedName) int {
	if c := compareFold(a.LastName, b.LastName); c != 0 {
		return c
	}
	if c := compareFold(a.FirstName, b.FirstName); c != 0 {
		return c
	}
	return compareFold(a.MiddleInitials, b.MiddleInitials)
}

// Less reports whether a sorts before b according to Compare.
func Less(a, b ParsedName) bool {
	return Compare(a, b) < 0
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
