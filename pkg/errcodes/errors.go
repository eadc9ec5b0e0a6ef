package errcodes

import (
	"fmt"
	"net/http"
)

type Error struct {
	HTTPCode int
	Message  string
	Code     string
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Code = err.Code
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Code == err.Code
}

// NotFound returns a 404 error with a message indicating the given resource.
func NotFound(resource string) error {
	return &Error{
		http.StatusNotFound,
		resource + " not found.",
		"not_found",
	}
}

// EmptyName returns a 422 error for names that have nothing left to parse
// once whitespace and parenthetical asides are removed.
func EmptyName() error {
	return &Error{
		http.StatusUnprocessableEntity,
		"Name must contain at least one word outside of parentheses.",
		"empty_name",
	}
}

// NameTooLong returns a 422 error for names longer than the configured limit.
func NameTooLong(limit int) error {
	return &Error{
		http.StatusUnprocessableEntity,
		fmt.Sprintf("Name must be at most %d characters.", limit),
		"name_too_long",
	}
}

// TooManyNames returns a 422 error for batches larger than the configured
// limit.
func TooManyNames(limit int) error {
	return &Error{
		http.StatusUnprocessableEntity,
		fmt.Sprintf("A batch can contain at most %d names.", limit),
		"too_many_names",
	}
}

func UnsupportedMediaType() error {
	return &Error{
		http.StatusUnsupportedMediaType,
		"Unsupported Media Type",
		"unsupported_media_type",
	}
}

func UnknownParameter(param string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		fmt.Sprintf("Unknown Parameter %q", param),
		"unknown_parameter",
	}
}

func ValidationTypeError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_type_error",
	}
}

func ValidationError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_error",
	}
}

func MalformedPayload() error {
	return &Error{
		http.StatusBadRequest,
		"Malformed Payload",
		"malformed_payload",
	}
}

func EmptyRequestBody() error {
	return &Error{
		http.StatusBadRequest,
		"Request body can't be empty.",
		"empty_request_body",
	}
}
