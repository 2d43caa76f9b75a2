package endpoints

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server/store"
)

func TestCreateUser(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Users.On("CreateUser", mock.AnythingOfType("*model.User")).Return(nil)

	req := authRequest(t, "alice", "POST", "/users",
		strings.NewReader(`{"id": "bob", "name": "Bob", "email": "bob@example.com", "role": "analyst"}`))
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response UserResponse
	decodeJSON(t, recorder, &response)
	assert.Equal(t, "bob", response.ID)
	assert.Equal(t, "Bob", response.Name)

	stores.AssertExpectations(t)
}

func TestCreateUserRequiresID(t *testing.T) {
	s, stores := newTestServer(t)

	req := authRequest(t, "alice", "POST", "/users", strings.NewReader(`{"name": "Bob"}`))
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	stores.AssertExpectations(t)
}

func TestListUsers(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Users.On("ListUsers").Return([]model.User{
		{ID: "alice", Name: "Alice"},
		{ID: "bob", Name: "Bob"},
	}, nil)

	req := authRequest(t, "alice", "GET", "/users", nil)
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response []UserResponse
	decodeJSON(t, recorder, &response)
	assert.Len(t, response, 2)

	stores.AssertExpectations(t)
}

func TestGetUserNotFound(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Users.On("FetchUser", "ghost").Return(nil, store.ErrNotFound)

	req := authRequest(t, "alice", "GET", "/users/ghost", nil)
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	stores.AssertExpectations(t)
}
