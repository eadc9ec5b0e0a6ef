package names

import (
	"unicode/utf8"

	"github.com/shishobooks/nameparser/pkg/errcodes"
	"github.com/shishobooks/nameparser/pkg/nameparser"
	"github.com/shishobooks/nameparser/pkg/sortname"
)

// Result is a parsed name along with the sort name derived from it.
type Result struct {
	nameparser.ParsedName
	SortName string `json:"sort_name"`
}

// BatchResult is the outcome of parsing a single entry of a batch. Exactly one
// of Name and Error is set.
type BatchResult struct {
	Input    string                 `json:"input"`
	Name     *nameparser.ParsedName `json:"name,omitempty"`
	SortName string                 `json:"sort_name,omitempty"`
	Error    *BatchError            `json:"error,omitempty"`
}

// BatchError describes why a single batch entry couldn't be parsed, using the
// same code and message the single-name endpoint would return.
type BatchError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidateLength returns a name_too_long error when name has more than limit
// characters.
func ValidateLength(name string, limit int) error {
	if utf8.RuneCountInString(name) > limit {
		return errcodes.NameTooLong(limit)
	}
	return nil
}

// ParseName checks name against the length limit and parses it.
func ParseName(name string, maxLength int) (*Result, error) {
	if err := ValidateLength(name, maxLength); err != nil {
		return nil, err
	}

	parsed, err := nameparser.Parse(name)
	if err != nil {
		return nil, errcodes.FromParseError(err)
	}

	return &Result{parsed, sortname.ForParsed(parsed)}, nil
}
