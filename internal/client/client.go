// Package client is a thin caller of POST /api/translate. It mirrors what
// the browser form does: trim, submit, show the translation or the error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/developia-II/moderated-translator/internal/models"
	"github.com/developia-II/moderated-translator/utils"
)

const DefaultURL = "http://localhost:8080/api/translate"

var ErrEmptyText = errors.New("Please enter text to translate.")

type Client struct {
	url  string
	http *http.Client
}

func New(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{url: url, http: httpClient}
}

// Translate submits text and returns the translation. Server-side failures
// come back as errors carrying the response's details, else its error, else
// the status code.
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	trimmed := utils.TrimJS(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}

	payload, err := json.Marshal(models.TranslateRequest{Text: trimmed, TargetLanguage: targetLanguage})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e models.ErrorResponse
		_ = json.Unmarshal(raw, &e)
		switch {
		case e.Details != "":
			return "", errors.New(e.Details)
		case e.Error != "":
			return "", errors.New(e.Error)
		}
		return "", fmt.Errorf("Request failed (%d)", resp.StatusCode)
	}

	var out models.TranslateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return out.Translation, nil
}
