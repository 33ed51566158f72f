package services

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		details string
	}{
		{name: "empty body", body: "", details: "Request body is required"},
		{name: "whitespace body", body: " \n ", details: "Request body is required"},
		{name: "null", body: "null", details: "Request body is required"},
		{name: "false", body: "false", details: "Request body is required"},
		{name: "empty string", body: `""`, details: "Request body is required"},
		{name: "malformed json", body: `{"text":`, details: "Body must be valid JSON"},
		{name: "string that is not json", body: `"hello"`, details: "Body must be valid JSON"},
		{name: "array has no fields", body: `[1,2]`, details: "text is required"},
		{name: "missing text", body: `{"targetLanguage":"fr"}`, details: "text is required"},
		{name: "blank text", body: `{"text":"   \n\t","targetLanguage":"fr"}`, details: "text is required"},
		{name: "non-string text", body: `{"text":42,"targetLanguage":"fr"}`, details: "text is required"},
		{name: "missing language", body: `{"text":"hi"}`, details: "targetLanguage must be one of: fr, es, ja"},
		{name: "unsupported language", body: `{"text":"hi","targetLanguage":"de"}`, details: "targetLanguage must be one of: fr, es, ja"},
		{name: "language is case sensitive", body: `{"text":"hi","targetLanguage":"FR"}`, details: "targetLanguage must be one of: fr, es, ja"},
		{name: "non-string language", body: `{"text":"hi","targetLanguage":["fr"]}`, details: "targetLanguage must be one of: fr, es, ja"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest([]byte(tt.body))

			var e *Error
			require.True(t, errors.As(err, &e), "expected *Error, got %v", err)
			assert.Equal(t, http.StatusBadRequest, e.Status)
			assert.Equal(t, CategoryInvalidInput, e.Category)
			assert.Equal(t, tt.details, e.Details)
			assert.Empty(t, e.Debug)
		})
	}
}

func TestParseRequestTooLong(t *testing.T) {
	for _, text := range []string{
		strings.Repeat("a", 5001),
		strings.Repeat("😀", 2501),
		" " + strings.Repeat("a", 4999) + " ",
	} {
		_, err := ParseRequest([]byte(`{"text":"` + text + `","targetLanguage":"zz"}`))

		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, http.StatusBadRequest, e.Status)
		assert.Equal(t, "text is too long (max 5000 characters)", e.Details)
	}
}

func TestParseRequestValid(t *testing.T) {
	tests := []struct {
		name string
		body string
		text string
		lang string
	}{
		{name: "plain", body: `{"text":"Hello world","targetLanguage":"fr"}`, text: "Hello world", lang: "fr"},
		{name: "text kept untrimmed", body: `{"text":"  Hola \n","targetLanguage":"es"}`, text: "  Hola \n", lang: "es"},
		{name: "double encoded", body: `"{\"text\":\"Hi\",\"targetLanguage\":\"ja\"}"`, text: "Hi", lang: "ja"},
		{name: "max length", body: `{"text":"` + strings.Repeat("a", 5000) + `","targetLanguage":"fr"}`, text: strings.Repeat("a", 5000), lang: "fr"},
		{name: "extra fields ignored", body: `{"text":"Hi","targetLanguage":"fr","tone":"formal"}`, text: "Hi", lang: "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseRequest([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.text, req.Text)
			assert.Equal(t, tt.lang, req.TargetLanguage)
		})
	}
}

func TestLanguageLabel(t *testing.T) {
	assert.Equal(t, "French", LanguageLabel("fr"))
	assert.Equal(t, "Spanish", LanguageLabel("es"))
	assert.Equal(t, "Japanese", LanguageLabel("ja"))
	assert.Equal(t, "pt-BR", LanguageLabel("pt-BR"))

	for _, code := range SupportedLanguages {
		assert.NotEqual(t, code, LanguageLabel(code), "missing label for %s", code)
	}
}
