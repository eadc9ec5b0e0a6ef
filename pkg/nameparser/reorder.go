package nameparser

import "strings"

// FindCommaSplit looks for the first token in [spanStart, spanEnd-1) that ends
// in a comma, which marks the end of a leading last name ("Von Fange,
// Anthony"). The final token of the span is never considered since nothing
// would follow it. A first comma on the span's first token is reported as not
// found; those names are resolved by the first/last swap during assembly.
func FindCommaSplit(tokens []Token, spanStart, spanEnd int) (int, bool) {
	for i := spanStart; i < spanEnd-1; i++ {
		t, ok := tokenAt(tokens, i)
		if !ok {
			break
		}
		if len(t.Text) > 1 && strings.HasSuffix(t.Text, ",") {
			if i == spanStart {
				return 0, false
			}
			return i, true
		}
	}
	return 0, false
}

// Rotate moves the tokens after splitIndex to the front of [spanStart,
// spanEnd), followed by the tokens from spanStart through splitIndex. Tokens
// outside of the span keep their positions. A new slice is returned and tokens
// is left untouched. Out of range arguments return a copy of tokens as is.
func Rotate(tokens []Token, spanStart, spanEnd, splitIndex int) []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	if spanStart < 0 || spanEnd > len(tokens) || splitIndex < spanStart || splitIndex >= spanEnd {
		return out
	}

	n := copy(out[spanStart:], tokens[splitIndex+1:spanEnd])
	copy(out[spanStart+n:], tokens[spanStart:splitIndex+1])
	return out
}

// reorderLastNameFirst rotates "Last, First Middle" spans into "First Middle
// Last," order. Spans without a comma-terminated token are returned as is.
func reorderLastNameFirst(tokens []Token, spanStart, spanEnd int) []Token {
	split, found := FindCommaSplit(tokens, spanStart, spanEnd)
	if !found {
		return tokens
	}
	return Rotate(tokens, spanStart, spanEnd, split)
}
