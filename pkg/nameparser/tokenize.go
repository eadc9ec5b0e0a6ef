package nameparser

import (
	"regexp"
	"strings"
)

var parentheticalRE = regexp.MustCompile(`\(.*?\)`)

// Token is a single word of the input along with its position once
// parenthetical asides are removed.
type Token struct {
	Index int
	Text  string
}

// Tokenize drops every parenthetical aside from fullName and splits what's
// left on whitespace. It returns nil if nothing remains.
func Tokenize(fullName string) []Token {
	stripped := parentheticalRE.ReplaceAllString(strings.TrimSpace(fullName), "")
	words := strings.Fields(stripped)
	if len(words) == 0 {
		return nil
	}
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{Index: i, Text: w}
	}
	return tokens
}

// tokenAt returns the token at i, or false if i is outside of tokens.
func tokenAt(tokens []Token, i int) (Token, bool) {
	if i < 0 || i >= len(tokens) {
		return Token{}, false
	}
	return tokens[i], true
}
