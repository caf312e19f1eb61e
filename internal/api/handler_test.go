package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newTestRouter wires routes without backing services; only paths that
// reject the request before reaching a service are exercised here.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(nil, nil, nil, nil)
	handler.SetupRoutes(router)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestInvalidIDRejected(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/customers/abc", "/items/abc", "/orders/abc"} {
		w := doRequest(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}

	w := doRequest(router, http.MethodDelete, "/orders/1.5", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMalformedBodyRejected(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodPost, "/customers", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/orders", "[]")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMissingRequiredFieldsRejected(t *testing.T) {
	router := newTestRouter()

	// customer requires name and phone
	w := doRequest(router, http.MethodPost, "/customers", `{"name":"A"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// item requires a name and a non-negative price
	w = doRequest(router, http.MethodPost, "/items", `{"price":1.5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/items", `{"name":"Pen","price":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// order requires a customer id
	w = doRequest(router, http.MethodPost, "/orders", `{"timestamp":100,"items":[1]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestIDHeaderEchoed(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-Id"))
}
