package nameparser

import (
	"strings"
	"unicode/utf8"
)

// salutations maps a lower-cased, period-free honorific to its canonical
// punctuated form.
var salutations = map[string]string{
	"mister": "Mr.",
	"master": "Mr.",
	"mr":     "Mr.",
	"mrs":    "Mrs.",
	"ms":     "Ms.",
	"miss":   "Ms.",
	"dr":     "Dr.",
	"rev":    "Rev.",
	"fr":     "Fr.",
}

// suffixTable holds the canonical spelling of every recognized generational
// and professional suffix, in display order.
var suffixTable = []string{
	"I", "II", "III", "IV", "V", "Senior", "Junior", "Jr", "Sr", "PhD", "APR", "RPh", "PE", "MD", "MA", "DMD", "CME",
	"BVM", "CFRE", "CLU", "CPA", "CSC", "CSJ", "DC", "DD", "DDS", "DO", "DVM", "EdD", "Esq",
	"JD", "LLD", "OD", "OSB", "PC", "Ret", "RGS", "RN", "RNC", "SHCJ", "SJ", "SNJM", "SSMO",
	"USA", "USAF", "USAFR", "USAR", "USCG", "USMC", "USMCR", "USN", "USNR",
}

// suffixes is suffixTable keyed by lower-cased spelling.
var suffixes = func() map[string]string {
	m := make(map[string]string, len(suffixTable))
	for _, s := range suffixTable {
		m[strings.ToLower(s)] = s
	}
	return m
}()

// compoundParticles are nobiliary and locative words that open a multi-word
// surname, like "Von Fange" or "de la Cruz".
var compoundParticles = map[string]struct{}{
	"vere":   {},
	"von":    {},
	"van":    {},
	"de":     {},
	"del":    {},
	"della":  {},
	"di":     {},
	"da":     {},
	"pietro": {},
	"vanden": {},
	"du":     {},
	"st.":    {},
	"st":     {},
	"la":     {},
	"lo":     {},
	"ter":    {},
}

// conjunctiveParticles join two surname components, like "Garcia y Vega".
var conjunctiveParticles = map[string]struct{}{
	"y": {},
}

// Classification reports what each classifier says about a single word.
type Classification struct {
	Word                string `json:"word"`
	Salutation          string `json:"salutation"`
	Suffix              string `json:"suffix"`
	Initial             bool   `json:"initial"`
	CompoundLastName    bool   `json:"compound_last_name"`
	ConjunctiveLastName bool   `json:"conjunctive_last_name"`
	FixedCase           string `json:"fixed_case"`
}

// Classify runs every classifier against word.
func Classify(word string) Classification {
	return Classification{
		Word:                word,
		Salutation:          IsSalutation(word),
		Suffix:              IsSuffix(word),
		Initial:             IsInitial(word),
		CompoundLastName:    IsCompoundLastName(word),
		ConjunctiveLastName: IsConjunctiveLastName(word),
		FixedCase:           FixCase(word),
	}
}

// IsSalutation returns the canonical title for word ("mr." -> "Mr.") or the
// empty string if word isn't a recognized honorific.
func IsSalutation(word string) string {
	return salutations[strings.ToLower(stripPeriods(word))]
}

// IsSuffix returns the canonical spelling of word ("phd" -> "PhD") or the
// empty string if word isn't a recognized suffix.
func IsSuffix(word string) string {
	return suffixes[strings.ToLower(stripPeriods(word))]
}

// IsInitial reports whether word is a single letter, optionally followed by a
// period.
func IsInitial(word string) bool {
	return utf8.RuneCountInString(stripPeriods(word)) == 1
}

// IsCompoundLastName reports whether word is a particle that begins a compound
// surname.
func IsCompoundLastName(word string) bool {
	_, ok := compoundParticles[strings.ToLower(word)]
	return ok
}

// IsConjunctiveLastName reports whether word joins two surname components.
func IsConjunctiveLastName(word string) bool {
	_, ok := conjunctiveParticles[strings.ToLower(word)]
	return ok
}

// Suffixes returns the canonical suffix table.
func Suffixes() []string {
	out := make([]string, len(suffixTable))
	copy(out, suffixTable)
	return out
}

func stripPeriods(word string) string {
	return strings.ReplaceAll(word, ".", "")
}
