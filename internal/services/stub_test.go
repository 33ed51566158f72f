package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/developia-II/moderated-translator/internal/config"
	"github.com/developia-II/moderated-translator/internal/logger"
	"github.com/developia-II/moderated-translator/internal/metrics"
)

// stubReply is a canned provider answer.
type stubReply struct {
	status int
	body   string
}

// stubProvider fakes the moderation and responses endpoints and records what
// it received.
type stubProvider struct {
	mu         sync.Mutex
	moderation stubReply
	responses  stubReply
	calls      map[string]int
	bodies     map[string]map[string]any
	auth       []string
}

func newStubProvider(t *testing.T) (*stubProvider, *httptest.Server) {
	t.Helper()
	p := &stubProvider{
		moderation: stubReply{http.StatusOK, `{"results":[{"flagged":false,"categories":null}]}`},
		responses:  stubReply{http.StatusOK, assistantReply("Bonjour le monde")},
		calls:      map[string]int{},
		bodies:     map[string]map[string]any{},
	}
	srv := httptest.NewServer(http.HandlerFunc(p.serve))
	t.Cleanup(srv.Close)
	return p, srv
}

func (p *stubProvider) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	p.mu.Lock()
	p.calls[r.URL.Path]++
	p.bodies[r.URL.Path] = body
	p.auth = append(p.auth, r.Header.Get("Authorization"))
	reply := stubReply{http.StatusNotFound, `{"error":{"message":"unknown path"}}`}
	switch r.URL.Path {
	case "/v1/moderations":
		reply = p.moderation
	case "/v1/responses":
		reply = p.responses
	}
	p.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.status)
	_, _ = w.Write([]byte(reply.body))
}

func (p *stubProvider) count(path string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[path]
}

func (p *stubProvider) body(path string) map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bodies[path]
}

func assistantReply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"output": []any{
			map[string]any{
				"type": "message",
				"role": "assistant",
				"content": []any{
					map[string]any{"type": "output_text", "text": text},
				},
			},
		},
	})
	return string(b)
}

func newTestTranslator(srv *httptest.Server, apiKey string) *Translator {
	cfg := config.OpenAI{
		APIKey:           apiKey,
		BaseURL:          srv.URL + "/v1",
		ModerationModel:  config.DefaultModerationModel,
		TranslationModel: config.DefaultTranslationModel,
	}
	l := logger.Discard()
	m := metrics.New()
	return NewTranslator(NewOpenAIService(cfg, srv.Client(), l, m), l, m)
}
