package endpoints

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	s, _ := newTestServer(t)

	recorder := serveRequest(s, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response StatusResponse
	decodeJSON(t, recorder, &response)
	assert.Equal(t, "ok", response.Status)
	assert.NotEmpty(t, response.Version)
}

func TestHealth(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Health.On("Ping").Return(nil)

	recorder := serveRequest(s, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response HealthResponse
	decodeJSON(t, recorder, &response)
	assert.Equal(t, "ok", response.Database)

	stores.AssertExpectations(t)
}

func TestHealthDatabaseUnreachable(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Health.On("Ping").Return(errors.New("connection refused"))

	recorder := serveRequest(s, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var response HealthResponse
	decodeJSON(t, recorder, &response)
	assert.Equal(t, "unreachable", response.Database)

	stores.AssertExpectations(t)
}
