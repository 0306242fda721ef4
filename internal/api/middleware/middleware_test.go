package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"standup-api-backend/internal/config"
	"standup-api-backend/internal/logger"
	"standup-api-backend/internal/metrics"
	"standup-api-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	s := testutils.SetupHTTPTest()
	s.Router.Use(RequestID())
	var seen string
	s.Router.GET("/x", func(c *gin.Context) {
		seen = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	rec := s.MakeRequest(http.MethodGet, "/x", nil)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	rec = s.MakeRequestWithHeaders(http.MethodGet, "/x", nil, map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRecoveryWritesFailedEnvelope(t *testing.T) {
	var buf bytes.Buffer
	logger.Setup("info", &buf)
	defer logger.Setup("info", nil)

	s := testutils.SetupHTTPTest()
	s.Router.Use(RequestID(), Recovery())
	s.Router.GET("/panic", func(c *gin.Context) { panic("boom") })

	rec := s.MakeRequest(http.MethodGet, "/panic", nil)

	testutils.AssertErrorResponse(t, rec, http.StatusInternalServerError, "internal server error")
	assert.Contains(t, buf.String(), "recovered from panic")
}

func TestLoggerWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	logger.Setup("info", &buf)
	defer logger.Setup("info", nil)

	s := testutils.SetupHTTPTest()
	s.Router.Use(RequestID(), Logger())
	s.Router.GET("/users", func(c *gin.Context) { c.Status(http.StatusOK) })

	s.MakeRequestWithHeaders(http.MethodGet, "/users?x=1", nil, map[string]string{RequestIDHeader: "req-7"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/users?x=1", entry["path"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "req-7", entry["request_id"])
}

func TestCORS(t *testing.T) {
	s := testutils.SetupHTTPTest()
	s.Router.Use(CORS(&config.Config{AllowedOrigins: []string{"https://app.example.com"}}))
	s.Router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := s.MakeRequestWithHeaders(http.MethodGet, "/x", nil, map[string]string{"Origin": "https://app.example.com"})
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = s.MakeRequestWithHeaders(http.MethodGet, "/x", nil, map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	rec = s.MakeRequestWithHeaders(http.MethodOptions, "/x", nil, map[string]string{"Origin": "https://app.example.com"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCORSWildcard(t *testing.T) {
	s := testutils.SetupHTTPTest()
	s.Router.Use(CORS(&config.Config{AllowedOrigins: []string{"*"}}))
	s.Router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := s.MakeRequestWithHeaders(http.MethodGet, "/x", nil, map[string]string{"Origin": "https://any.example.com"})
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	s := testutils.SetupHTTPTest()
	s.Router.Use(Metrics())
	s.Router.GET("/standups/next/:team_id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/standups/next/:team_id", "200")
	before := testutil.ToFloat64(counter)

	s.MakeRequest(http.MethodGet, "/standups/next/1", nil)
	s.MakeRequest(http.MethodGet, "/standups/next/2", nil)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
