package nameparser

import (
	"strings"
	"unicode"
)

// FixCase capitalizes each part of word split by dashes and then periods, so
// "kimura-fay" becomes "Kimura-Fay" and "j.p." becomes "J.P.". Parts that
// already mix upper and lower case ("McDonald") are left alone, as is a bare
// "y" so the conjunctive particle keeps its lower-case form.
func FixCase(word string) string {
	if strings.TrimSpace(word) == "" {
		return word
	}
	dashed := strings.Split(word, "-")
	for i, d := range dashed {
		dotted := strings.Split(d, ".")
		for j, part := range dotted {
			dotted[j] = fixPart(part)
		}
		dashed[i] = strings.Join(dotted, ".")
	}
	return strings.Join(dashed, "-")
}

func fixPart(part string) string {
	if isCamelCase(part) {
		return part
	}
	r := []rune(part)
	switch {
	case len(r) > 1:
		return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	case part == "y":
		return part
	default:
		return strings.ToUpper(part)
	}
}

// isCamelCase reports whether word contains both an upper-case and a
// lower-case letter.
func isCamelCase(word string) bool {
	var upper, lower bool
	for _, r := range word {
		if unicode.IsUpper(r) {
			upper = true
		} else if unicode.IsLower(r) {
			lower = true
		}
		if upper && lower {
			return true
		}
	}
	return false
}
