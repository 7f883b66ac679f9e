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

// HTTPTestSuite wraps a bare gin router that handler tests register routes on
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest serves a request against the router. A non-nil body is sent as
// JSON; json.RawMessage and []byte bodies are sent as is.
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody io.Reader
	switch b := body.(type) {
	case nil:
	case json.RawMessage:
		reqBody = bytes.NewReader(b)
	case []byte:
		reqBody = bytes.NewReader(b)
	default:
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewReader(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		ParseJSONResponse(t, recorder, target)
	}
}

// AssertErrorResponse asserts an {"error": ...} body whose message contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse struct {
		Error string `json:"error"`
	}
	ParseJSONResponse(t, recorder, &errorResponse)
	assert.NotEmpty(t, errorResponse.Error)
	if expectedMessage != "" {
		assert.Contains(t, errorResponse.Error, expectedMessage)
	}
}

// AssertImageResponse asserts a 200 response carrying an image of the given content type
func AssertImageResponse(t *testing.T, recorder *httptest.ResponseRecorder, contentType string) {
	t.Helper()
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, contentType, recorder.Header().Get("Content-Type"))
	assert.NotZero(t, recorder.Body.Len())
}

// ParseJSONResponse parses JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}
