package binder

import (
	"github.com/go-playground/validator/v10"
	"github.com/shishobooks/nameparser/pkg/nameparser"
)

// fullNameValidator ensures the value has at least one word left once
// parenthetical asides are removed, so it can be handed to the parser. The
// empty string fails too. Failures are reported as errcodes.EmptyName.
func fullNameValidator(fl validator.FieldLevel) bool {
	return len(nameparser.Tokenize(fl.Field().String())) > 0
}

// wordValidator ensures the value is a single word without whitespace.
func wordValidator(fl validator.FieldLevel) bool {
	return len(nameparser.Tokenize(fl.Field().String())) == 1
}
