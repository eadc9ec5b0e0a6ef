package nameparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple", "John Doe", []string{"John", "Doe"}},
		{"trims and collapses whitespace", "  John \t Doe  ", []string{"John", "Doe"}},
		{"drops parentheticals", "John (Johnny) Doe", []string{"John", "Doe"}},
		{"non-greedy parentheticals", "(a) John (b) Doe (c)", []string{"John", "Doe"}},
		{"unclosed parenthesis kept", "John (Doe", []string{"John", "(Doe"}},
		{"blank", "   ", nil},
		{"only parenthetical", "(nobody)", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if tt.expected == nil {
				assert.Empty(t, tokens)
				return
			}
			assert.Equal(t, tt.expected, texts(tokens))
			for i, tok := range tokens {
				assert.Equal(t, i, tok.Index)
			}
		})
	}
}

func TestTokenAt(t *testing.T) {
	tokens := Tokenize("John Doe")

	tok, ok := tokenAt(tokens, 1)
	assert.True(t, ok)
	assert.Equal(t, "Doe", tok.Text)

	_, ok = tokenAt(tokens, 2)
	assert.False(t, ok)

	_, ok = tokenAt(tokens, -1)
	assert.False(t, ok)
}

func TestFindCommaSplit(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		start         int
		end           int
		expectedIndex int
		expectedFound bool
	}{
		{"comma on first token", "Doe, John", 0, 2, 0, false},
		{"comma on first token stops the scan", "Doe, John, Smith", 0, 3, 0, false},
		{"compound last name", "Von Fange, Anthony R", 0, 4, 1, true},
		{"comma on first token after salutation", "Mr Doe, John", 1, 3, 0, false},
		{"compound last name after salutation", "Mr Von Fange, Anthony", 1, 4, 2, true},
		{"no comma", "John Doe", 0, 2, 0, false},
		{"last token ignored", "John Doe,", 0, 2, 0, false},
		{"lone comma ignored", "John , Doe", 0, 3, 0, false},
		{"before span ignored", "Doe, John Smith", 1, 3, 0, false},
		{"span past tokens", "Von Fange, Anthony", 0, 10, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, found := FindCommaSplit(Tokenize(tt.input), tt.start, tt.end)
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expectedIndex, index)
		})
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		start    int
		end      int
		split    int
		expected []string
	}{
		{
			name:     "last comma first middle",
			input:    "Doe, John R",
			start:    0,
			end:      3,
			split:    0,
			expected: []string{"John", "R", "Doe,"},
		},
		{
			name:     "keeps salutation and suffix in place",
			input:    "Mr Von Fange, Anthony III",
			start:    1,
			end:      4,
			split:    2,
			expected: []string{"Mr", "Anthony", "Von", "Fange,", "III"},
		},
		{
			name:     "split at span end is ignored",
			input:    "John Doe",
			start:    0,
			end:      2,
			split:    2,
			expected: []string{"John", "Doe"},
		},
		{
			name:     "split before span is ignored",
			input:    "Mr Doe, John",
			start:    1,
			end:      3,
			split:    0,
			expected: []string{"Mr", "Doe,", "John"},
		},
		{
			name:     "span past tokens is ignored",
			input:    "Doe, John",
			start:    0,
			end:      5,
			split:    0,
			expected: []string{"Doe,", "John"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			before := texts(tokens)

			result := Rotate(tokens, tt.start, tt.end, tt.split)
			assert.Equal(t, tt.expected, texts(result))
			assert.Equal(t, before, texts(tokens), "input should not be modified")
		})
	}
}

func TestRotate_KeepsOriginalIndexes(t *testing.T) {
	result := Rotate(Tokenize("Doe, John"), 0, 2, 0)
	assert.Equal(t, []Token{{Index: 1, Text: "John"}, {Index: 0, Text: "Doe,"}}, result)
}
