package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.ObserveOutcome("ok")
	m.ObserveOutcome("ok")
	m.ObserveOutcome("Content not allowed")
	m.ObserveBlocked([]string{"hate", "sexual/minors"})
	m.ObserveProviderCall("moderations", http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.outcomes.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.outcomes.WithLabelValues("Content not allowed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.blocked.WithLabelValues("sexual/minors")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.providerLatency))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "translator_api_requests_total")
	assert.Contains(t, string(body), "translator_provider_request_seconds_bucket")
}
