package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMutationOutcomesCounter(t *testing.T) {
	c := MutationOutcomes.WithLabelValues("team", OutcomePreconditionFailed)
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestStatsServerExposesMetrics(t *testing.T) {
	HTTPRequests.WithLabelValues("GET", "/users", "200").Inc()

	srv := NewStatsServer(":0")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "standup_api_http_requests_total")
}
