// Package sortname generates bibliographic sort names for people following
// ALA/Library of Congress conventions, built on top of nameparser.
package sortname

import (
	"strings"

	"github.com/shishobooks/nameparser/pkg/nameparser"
)

// GenerationalSuffixes are preserved in the sort name as they distinguish
// different people. Every other suffix the parser knows of is a credential and
// is left out.
var GenerationalSuffixes = []string{
	"Jr",
	"Sr",
	"Junior",
	"Senior",
	"I",
	"II",
	"III",
	"IV",
	"V",
}

// ForPerson generates a sort name from a person's display name.
// Examples:
//   - "Stephen King" -> "King, Stephen"
//   - "Martin Luther King Jr." -> "King, Martin Luther, Jr"
//   - "Jane Doe PhD" -> "Doe, Jane"
//   - "Dr. Sarah Connor" -> "Connor, Sarah"
//   - "Ludwig van Beethoven" -> "Beethoven, Ludwig van"
//
// Names that don't parse into a first or last name are returned trimmed.
func ForPerson(name string) string {
	name = strings.TrimSpace(name)
	p, err := nameparser.Parse(name)
	if err != nil {
		return ""
	}
	if sn := ForParsed(p); sn != "" {
		return sn
	}
	return name
}

// ForParsed builds the "Last, First Middle, Suffix" sort name for an already
// parsed name. Salutations and credential suffixes are stripped and leading
// particles of the surname move to the end of the given names.
func ForParsed(p nameparser.ParsedName) string {
	surname := strings.Fields(p.LastName)

	// Collect leading particles, keeping at least one word as the surname.
	var particles []string
	for len(surname) > 1 && nameparser.IsCompoundLastName(surname[0]) {
		particles = append(particles, strings.ToLower(surname[0]))
		surname = surname[1:]
	}

	var given []string
	for _, s := range []string{p.FirstName, p.MiddleInitials} {
		if s != "" {
			given = append(given, s)
		}
	}
	given = append(given, particles...)

	var result strings.Builder
	result.WriteString(strings.Join(surname, " "))

	if len(given) > 0 {
		if result.Len() > 0 {
			result.WriteString(", ")
		}
		result.WriteString(strings.Join(given, " "))
	}

	if IsGenerationalSuffix(p.Suffix) && result.Len() > 0 {
		result.WriteString(", ")
		result.WriteString(nameparser.IsSuffix(p.Suffix))
	}

	return result.String()
}

// IsGenerationalSuffix checks if a word is a generational suffix (case-insensitive).
func IsGenerationalSuffix(word string) bool {
	canonical := nameparser.IsSuffix(strings.TrimSuffix(word, ","))
	if canonical == "" {
		return false
	}
	for _, suffix := range GenerationalSuffixes {
		if canonical == suffix {
			return true
		}
	}
	return false
}

// IsAcademicSuffix checks if a word is a credential suffix such as PhD or USMC
// (case-insensitive).
func IsAcademicSuffix(word string) bool {
	word = strings.TrimSuffix(word, ",")
	return nameparser.IsSuffix(word) != "" && !IsGenerationalSuffix(word)
}

