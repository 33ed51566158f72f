package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/developia-II/moderated-translator/internal/models"
	"github.com/developia-II/moderated-translator/utils"
)

// SupportedLanguages is the allowed set of target language codes, in the
// order they are reported to callers.
var SupportedLanguages = []string{"fr", "es", "ja"}

var languageLabels = map[string]string{
	"fr": "French",
	"es": "Spanish",
	"ja": "Japanese",
}

// LanguageLabel returns the English name of code, or code itself when unknown.
func LanguageLabel(code string) string {
	if label, ok := languageLabels[code]; ok {
		return label
	}
	return code
}

// ParseRequest decodes and validates a translate request body. Every
// failure is an *Error with status 400.
func ParseRequest(body []byte) (models.TranslateRequest, error) {
	var req models.TranslateRequest

	fields, err := decodeBody(body)
	if err != nil {
		return req, err
	}

	// Non-string values are treated like missing ones.
	req.Text, _ = fields["text"].(string)
	req.TargetLanguage, _ = fields["targetLanguage"].(string)

	if err := utils.Validate.Struct(req); err != nil {
		return models.TranslateRequest{}, invalidInput(validationMessage(err))
	}
	return req, nil
}

// decodeBody returns the top-level fields of body. A body that is itself a
// JSON string is decoded once more; any other non-object value yields no fields.
func decodeBody(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, invalidInput("Request body is required")
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, invalidInput("Body must be valid JSON")
	}
	if isEmptyValue(v) {
		return nil, invalidInput("Request body is required")
	}

	if s, ok := v.(string); ok {
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil, invalidInput("Body must be valid JSON")
		}
		if isEmptyValue(v) {
			return nil, invalidInput("Request body is required")
		}
	}

	fields, _ := v.(map[string]any)
	return fields, nil
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	}
	return false
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "nonblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "maxutf16":
		return fmt.Sprintf("%s is too long (max %s characters)", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
