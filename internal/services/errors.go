package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/developia-II/moderated-translator/internal/models"
)

// Error categories returned in the "error" field.
const (
	CategoryInvalidInput      = "Invalid input"
	CategoryContentNotAllowed = "Content not allowed"
	CategoryTranslationFailed = "Translation failed"
	CategoryMethodNotAllowed  = "Method not allowed"
)

const (
	moderationExcerptLen  = 200
	translationExcerptLen = 500
)

// Error is a failure that maps directly onto an HTTP response.
type Error struct {
	Status   int
	Category string
	Details  string
	Debug    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Details)
}

func (e *Error) Body() models.ErrorResponse {
	return models.ErrorResponse{
		Error:   e.Category,
		Details: e.Details,
		Debug:   e.Debug,
	}
}

var (
	ErrMethodNotAllowed = &Error{
		Status:   http.StatusMethodNotAllowed,
		Category: CategoryMethodNotAllowed,
		Details:  "Use POST /api/translate",
	}
	ErrMissingAPIKey = &Error{
		Status:   http.StatusInternalServerError,
		Category: CategoryTranslationFailed,
		Details:  "Missing OPENAI_API_KEY on server",
	}
	ErrContentNotAllowed = &Error{
		Status:   http.StatusBadRequest,
		Category: CategoryContentNotAllowed,
		Details:  "This text may contain harmful or unsafe content. Please remove it and try again.",
	}
	ErrNoTextReturned = &Error{
		Status:   http.StatusInternalServerError,
		Category: CategoryTranslationFailed,
		Details:  "No text returned by model",
	}
)

func invalidInput(details string) *Error {
	return &Error{Status: http.StatusBadRequest, Category: CategoryInvalidInput, Details: details}
}

func translationFailed(details, debug string) *Error {
	return &Error{Status: http.StatusInternalServerError, Category: CategoryTranslationFailed, Details: details, Debug: debug}
}

// AsError converts any error into a response error. Errors that are not
// already an *Error become a 500 "Translation failed" carrying the message.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if err == nil {
		return translationFailed("Unknown error", "")
	}
	return translationFailed(err.Error(), "")
}

// excerpt returns at most n runes of b.
func excerpt(b []byte, n int) string {
	r := []rune(string(b))
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
