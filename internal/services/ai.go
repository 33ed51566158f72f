package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sashabaranov/go-openai"

	"github.com/developia-II/moderated-translator/internal/config"
	"github.com/developia-II/moderated-translator/internal/metrics"
	"github.com/developia-II/moderated-translator/internal/models"
)

const (
	endpointModerations = "moderations"
	endpointResponses   = "responses"
)

// Generation parameters for the responses endpoint.
const (
	translationTemperature     = 0.2
	translationMaxOutputTokens = 1200
)

// OpenAIService talks to the OpenAI moderation and responses endpoints.
// It never retries and sets no client timeout; callers bound calls through ctx.
type OpenAIService struct {
	client           *http.Client
	baseURL          string
	apiKey           string
	moderationModel  string
	translationModel string
	log              *log.Logger
	metrics          *metrics.Metrics
}

func NewOpenAIService(cfg config.OpenAI, client *http.Client, logger *log.Logger, m *metrics.Metrics) *OpenAIService {
	if client == nil {
		client = &http.Client{}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openai.DefaultConfig("").BaseURL
	}
	return &OpenAIService{
		client:           client,
		baseURL:          baseURL,
		apiKey:           cfg.APIKey,
		moderationModel:  cfg.ModerationModel,
		translationModel: cfg.TranslationModel,
		log:              logger,
		metrics:          m,
	}
}

func (s *OpenAIService) HasAPIKey() bool {
	return s.apiKey != ""
}

// ProviderError is a non-2xx answer from the provider.
type ProviderError struct {
	Endpoint   string
	StatusCode int
	Body       []byte
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("openai %s returned status %d", e.Endpoint, e.StatusCode)
}

type moderationRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type moderationResponse struct {
	Results []struct {
		Flagged    bool                       `json:"flagged"`
		Categories map[string]json.RawMessage `json:"categories"`
	} `json:"results"`
}

// Moderate classifies text and returns the first result.
func (s *OpenAIService) Moderate(ctx context.Context, text string) (*models.ModerationResult, error) {
	var resp moderationResponse
	err := s.post(ctx, endpointModerations, moderationRequest{
		Model: s.moderationModel,
		Input: text,
	}, &resp)
	if err != nil {
		return nil, err
	}

	result := &models.ModerationResult{}
	if len(resp.Results) == 0 {
		return result, nil
	}
	first := resp.Results[0]
	result.Flagged = first.Flagged
	if first.Categories != nil {
		result.Categories = make(map[string]bool, len(first.Categories))
		for name, raw := range first.Categories {
			var v bool
			// Anything but a JSON boolean counts as absent.
			if err := json.Unmarshal(raw, &v); err == nil {
				result.Categories[name] = v
			}
		}
	}
	return result, nil
}

type responsesRequest struct {
	Model           string  `json:"model"`
	Instructions    string  `json:"instructions"`
	Input           string  `json:"input"`
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"max_output_tokens"`
	Store           bool    `json:"store"`
}

// CreateResponse asks the responses endpoint for a completion. The exchange
// is not stored by the provider.
func (s *OpenAIService) CreateResponse(ctx context.Context, instructions, input string) (*ResponsesResponse, error) {
	var resp ResponsesResponse
	err := s.post(ctx, endpointResponses, responsesRequest{
		Model:           s.translationModel,
		Instructions:    instructions,
		Input:           input,
		Temperature:     translationTemperature,
		MaxOutputTokens: translationMaxOutputTokens,
		Store:           false,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *OpenAIService) post(ctx context.Context, endpoint string, payload, out any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", endpoint, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/"+endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create %s request: %w", endpoint, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	start := time.Now()
	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.metrics.ObserveProviderCall(endpoint, 0, time.Since(start))
		return fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	s.metrics.ObserveProviderCall(endpoint, resp.StatusCode, time.Since(start))
	if err != nil {
		return fmt.Errorf("read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logProviderError(endpoint, resp.StatusCode, bodyBytes)
		return &ProviderError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: bodyBytes}
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (s *OpenAIService) logProviderError(endpoint string, status int, body []byte) {
	var envelope openai.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		s.log.Error("provider request failed", "endpoint", endpoint, "status", status)
		return
	}
	s.log.Error("provider request failed",
		"endpoint", endpoint,
		"status", status,
		"type", envelope.Error.Type,
		"code", envelope.Error.Code,
		"message", envelope.Error.Message,
	)
}
