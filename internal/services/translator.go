package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/developia-II/moderated-translator/internal/metrics"
	"github.com/developia-II/moderated-translator/internal/models"
)

const translationInstructions = "You are a translation engine. Return ONLY the translated text. " +
	"Preserve meaning, tone, formatting, line breaks, and punctuation. " +
	"Do not add explanations or extra quotes."

const outcomeOK = "ok"

// Translator runs the validate, moderate, translate sequence for one
// request body. It keeps no per-request state and is safe for concurrent use.
type Translator struct {
	openai  *OpenAIService
	log     *log.Logger
	metrics *metrics.Metrics
}

func NewTranslator(ai *OpenAIService, logger *log.Logger, m *metrics.Metrics) *Translator {
	return &Translator{
		openai:  ai,
		log:     logger,
		metrics: m,
	}
}

// Translate handles a raw request body. Failures are returned as *Error.
func (t *Translator) Translate(ctx context.Context, body []byte) (*models.TranslateResponse, error) {
	resp, err := t.translate(ctx, body)
	if err != nil {
		e := AsError(err)
		t.metrics.ObserveOutcome(e.Category)
		return nil, e
	}
	t.metrics.ObserveOutcome(outcomeOK)
	return resp, nil
}

func (t *Translator) translate(ctx context.Context, body []byte) (*models.TranslateResponse, error) {
	req, err := ParseRequest(body)
	if err != nil {
		return nil, err
	}

	if !t.openai.HasAPIKey() {
		t.log.Error("OPENAI_API_KEY is not set")
		return nil, ErrMissingAPIKey
	}

	mod, err := t.openai.Moderate(ctx, req.Text)
	if err != nil {
		return nil, moderationFailed(err)
	}
	if hits := BlockedBy(mod.Categories); len(hits) > 0 {
		t.log.Info("moderation blocked request", "categories", hits, "flagged", mod.Flagged)
		t.metrics.ObserveBlocked(hits)
		return nil, ErrContentNotAllowed
	}

	out, err := t.openai.CreateResponse(ctx, translationInstructions, BuildPrompt(req.TargetLanguage, req.Text))
	if err != nil {
		var perr *ProviderError
		if errors.As(err, &perr) {
			return nil, translationFailed("OpenAI request failed", excerpt(perr.Body, translationExcerptLen))
		}
		return nil, err
	}

	translation := ExtractOutputText(out)
	if translation == "" {
		return nil, ErrNoTextReturned
	}

	return &models.TranslateResponse{
		Translation:    translation,
		TargetLanguage: req.TargetLanguage,
	}, nil
}

// BuildPrompt composes the generation input for text in the given language.
func BuildPrompt(targetLanguage, text string) string {
	return fmt.Sprintf("Translate the following text into %s:\n\n%s", LanguageLabel(targetLanguage), text)
}

func moderationFailed(err error) *Error {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return translationFailed("Moderation request failed: "+excerpt(perr.Body, moderationExcerptLen), "")
	}
	return translationFailed(err.Error(), "")
}
