package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/metrics"
)

func TestObserveFetch(t *testing.T) {
	ok := testutil.ToFloat64(metrics.LRSFetchTotal.WithLabelValues(metrics.OutcomeOK))
	failed := testutil.ToFloat64(metrics.LRSFetchTotal.WithLabelValues(metrics.OutcomeError))

	metrics.ObserveFetch(time.Now(), nil)
	metrics.ObserveFetch(time.Now(), errors.New("HTTP 500"))

	assert.Equal(t, ok+1, testutil.ToFloat64(metrics.LRSFetchTotal.WithLabelValues(metrics.OutcomeOK)))
	assert.Equal(t, failed+1, testutil.ToFloat64(metrics.LRSFetchTotal.WithLabelValues(metrics.OutcomeError)))
}

func TestHandler(t *testing.T) {
	metrics.ActivityMatchTotal.WithLabelValues("title_token").Inc()

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `xapi_activity_match_total{tier="title_token"}`)
	assert.Contains(t, string(body), "xapi_lrs_fetch_duration_seconds")
}
