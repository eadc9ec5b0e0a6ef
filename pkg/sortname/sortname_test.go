package sortname

import (
	"testing"

	"github.com/shishobooks/nameparser/pkg/nameparser"
	"github.com/stretchr/testify/assert"
)

func TestForPerson(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Basic names
		{
			name:     "first and last",
			input:    "Stephen King",
			expected: "King, Stephen",
		},
		{
			name:     "with middle name",
			input:    "John Ronald Tolkien",
			expected: "Tolkien, John Ronald",
		},
		{
			name:     "already inverted",
			input:    "Doe, John",
			expected: "Doe, John",
		},

		// Prefixes
		{
			name:     "Dr. prefix",
			input:    "Dr. Sarah Connor",
			expected: "Connor, Sarah",
		},
		{
			name:     "Mrs prefix",
			input:    "mrs jane doe",
			expected: "Doe, Jane",
		},

		// Suffixes
		{
			name:     "generational suffix",
			input:    "Martin Luther King Jr.",
			expected: "King, Martin Luther, Jr",
		},
		{
			name:     "roman numeral suffix",
			input:    "Mr Anthony R Von Fange III",
			expected: "Fange, Anthony R von, III",
		},
		{
			name:     "academic suffix",
			input:    "Jane Doe PhD",
			expected: "Doe, Jane",
		},
		{
			name:     "military suffix",
			input:    "John Smith USMC",
			expected: "Smith, John",
		},

		// Particles
		{
			name:     "van",
			input:    "Ludwig van Beethoven",
			expected: "Beethoven, Ludwig van",
		},
		{
			name:     "multiple particles",
			input:    "Maria de la Cruz",
			expected: "Cruz, Maria de la",
		},
		{
			name:     "conjunctive surname",
			input:    "Juan Garcia y Vega",
			expected: "Garcia y Vega, Juan",
		},

		// Edge cases
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only parenthetical",
			input:    "(anonymous)",
			expected: "",
		},
		{
			name:     "single name",
			input:    "Madonna",
			expected: "Madonna",
		},
		{
			name:     "single name with whitespace",
			input:    "  Cher  ",
			expected: "Cher",
		},
		{
			name:     "only a prefix",
			input:    "Dr",
			expected: "Dr",
		},

		// Real world examples
		{
			name:     "J.R.R. Tolkien",
			input:    "J.R.R. Tolkien",
			expected: "Tolkien, J.R.R.",
		},
		{
			name:     "George R.R. Martin",
			input:    "George R.R. Martin",
			expected: "Martin, George R.R.",
		},
		{
			name:     "H.P. Lovecraft",
			input:    "H.P. Lovecraft",
			expected: "Lovecraft, H.P.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ForPerson(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestForParsed(t *testing.T) {
	assert.Equal(t, "Vinci, Leonardo da", ForParsed(nameparser.ParsedName{FirstName: "Leonardo", LastName: "Da Vinci"}))
	assert.Equal(t, "Von", ForParsed(nameparser.ParsedName{LastName: "Von"}))
	assert.Equal(t, "", ForParsed(nameparser.ParsedName{Suffix: "Jr"}))
	assert.Equal(t, "Doe, R.", ForParsed(nameparser.ParsedName{MiddleInitials: "R.", LastName: "Doe"}))
}

func TestIsGenerationalSuffix(t *testing.T) {
	tests := []struct {
		word     string
		expected bool
	}{
		{"Jr.", true},
		{"Jr", true},
		{"jr.", true},
		{"JR", true},
		{"Sr.", true},
		{"Jr,", true},
		{"III", true},
		{"iii", true},
		{"II", true},
		{"IV", true},
		{"V", true},
		{"Junior", true},
		{"Senior", true},
		{"PhD", false},
		{"John", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsGenerationalSuffix(tt.word))
		})
	}
}

func TestIsAcademicSuffix(t *testing.T) {
	tests := []struct {
		word     string
		expected bool
	}{
		{"PhD", true},
		{"Ph.D.", true},
		{"phd", true},
		{"MD", true},
		{"M.D.", true},
		{"Esq.", true},
		{"USMC", true},
		{"Jr.", false},
		{"III", false},
		{"John", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAcademicSuffix(tt.word))
		})
	}
}
