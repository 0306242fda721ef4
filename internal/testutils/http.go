package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
}

// Envelope mirrors the response wrapper every API route writes
type Envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest creates and executes an HTTP request for testing.
// A string body is sent verbatim so tests can post malformed JSON.
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders creates and executes an HTTP request with custom headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		jsonBytes, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// ParseEnvelope decodes the response wrapper
func ParseEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env), recorder.Body.String())
	return env
}

// AssertSuccessResponse asserts a success envelope and decodes its data into target
func AssertSuccessResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) Envelope {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	env := ParseEnvelope(t, recorder)
	assert.Equal(t, "success", env.Status)
	if target != nil {
		require.NoError(t, json.Unmarshal(env.Data, target))
	}
	return env
}

// AssertErrorResponse asserts a failed envelope carrying the given message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())

	env := ParseEnvelope(t, recorder)
	assert.Equal(t, "failed", env.Status)
	if expectedMessage != "" {
		assert.Contains(t, env.Message, expectedMessage)
	}
}

// CreateTestGinContext creates a test Gin context
func CreateTestGinContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	return ctx, recorder
}
