package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/notification-service/internal/util"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, store *MockStore, queue *MockTaskQueue, opts ...ServerOption) *Server {
	t.Helper()
	
	config := &util.Config{
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	
	server, err := NewServer(store, queue, config, opts...)
	require.NoError(t, err)
	
	return server
}

func doRequest(t *testing.T, server *Server, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	
	request, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if reader != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)
	return recorder
}

// decodeEnvelope decodes a response body into a generic map.
func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	
	body := decodeEnvelope(t, recorder)
	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok, "response has no error object: %s", recorder.Body.String())
	return errBody["code"].(string)
}
