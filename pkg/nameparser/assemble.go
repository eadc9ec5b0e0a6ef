package nameparser

import "strings"

// assembly is the working state of a single parse. Each step reads tokens
// within [start, end) and fills in the name parts as it goes.
type assembly struct {
	tokens []Token
	start  int
	end    int
	cursor int

	salutation string
	suffix     string
	first      string
	middle     []string
	last       []string
}

// newAssembly determines the salutation and suffix and the span of tokens that
// lies between them. tokens must not be empty.
func newAssembly(tokens []Token) *assembly {
	a := &assembly{tokens: tokens, end: len(tokens)}

	a.salutation = IsSalutation(tokens[0].Text)
	if a.salutation != "" {
		a.start = 1
	}
	// A lone salutation can't also be the suffix.
	if len(tokens) > a.start {
		a.suffix = IsSuffix(tokens[len(tokens)-1].Text)
		if a.suffix != "" {
			a.end = len(tokens) - 1
		}
	}
	return a
}

func (a *assembly) spanLen() int {
	return a.end - a.start
}

// leading handles the first token of the span. An initial followed by another
// initial is taken as the first name ("R. J. Smith"), while an initial
// followed by a full word means the person goes by their middle name
// ("R. Jason Smith"), so the initial is kept as a middle initial instead.
func (a *assembly) leading() {
	word := a.tokens[a.start].Text
	a.cursor = a.start + 1

	if !IsInitial(word) {
		a.first = FixCase(word)
		return
	}
	if next, ok := tokenAt(a.tokens, a.start+1); ok && IsInitial(next.Text) {
		a.first = strings.ToUpper(word)
		return
	}
	a.middle = append(a.middle, strings.ToUpper(word))
}

// scanMiddle walks the tokens between the first and last words of the span
// until it reaches the start of the surname.
func (a *assembly) scanMiddle() {
	for ; a.cursor < a.end-1; a.cursor++ {
		word := a.tokens[a.cursor].Text

		if next, ok := tokenAt(a.tokens, a.cursor+1); ok && IsConjunctiveLastName(next.Text) {
			return
		}
		// Particles are only checked after the first word, which allows for
		// first names like "Von Fabella".
		if IsCompoundLastName(word) {
			return
		}

		switch {
		case IsInitial(word):
			a.middle = append(a.middle, strings.ToUpper(word))
		case a.first == "":
			a.first = FixCase(word)
		default:
			a.middle = append(a.middle, FixCase(word))
		}
	}
}

// scanLastName takes every remaining token of the span as the surname. Single
// word spans have no surname.
func (a *assembly) scanLastName() {
	if a.spanLen() <= 1 {
		return
	}
	for ; a.cursor < a.end; a.cursor++ {
		a.last = append(a.last, FixCase(a.tokens[a.cursor].Text))
	}
}

// finalize swaps first and last names when the first name still carries the
// comma of an unresolved "Last, First" order and removes leftover commas.
func (a *assembly) finalize() ParsedName {
	first := strings.TrimSpace(a.first)
	last := strings.Join(a.last, " ")
	if strings.HasSuffix(first, ",") {
		first, last = last, first
	}

	return ParsedName{
		Salutation:     a.salutation,
		FirstName:      removeCommas(first),
		MiddleInitials: removeCommas(strings.Join(a.middle, " ")),
		LastName:       removeCommas(last),
		Suffix:         a.suffix,
	}
}

func (a *assembly) run() ParsedName {
	if a.spanLen() <= 0 {
		return a.finalize()
	}
	a.tokens = reorderLastNameFirst(a.tokens, a.start, a.end)
	a.leading()
	a.scanMiddle()
	a.scanLastName()
	return a.finalize()
}

func removeCommas(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
}
