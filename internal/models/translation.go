package models

// TranslateRequest is the validated body of POST /api/translate.
type TranslateRequest struct {
	Text           string `json:"text" validate:"nonblank,maxutf16=5000"`
	TargetLanguage string `json:"targetLanguage" validate:"oneof=fr es ja"`
}

type TranslateResponse struct {
	Translation    string `json:"translation"`
	TargetLanguage string `json:"targetLanguage"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Debug   string `json:"debug,omitempty"`
}

// ModerationResult is the first classification returned by the moderation
// endpoint. Categories is nil when the provider did not send any.
type ModerationResult struct {
	Flagged    bool
	Categories map[string]bool
}
