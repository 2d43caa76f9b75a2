package endpoints

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/workdeck/workdeck/pkg/model"
)

func TestCreateCollection(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Access.On("Check", "bob", model.WorkspaceRef(1), model.PermissionCreate).Return(true, nil)
	stores.Collections.On("CreateCollection", mock.AnythingOfType("*model.Collection")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*model.Collection).ID = 10
		}).
		Return(nil)
	stores.Access.On("BootstrapOwnerGrants", model.CollectionRef(10), "bob").Return(nil)

	req := authRequest(t, "bob", "POST", "/workspaces/1/collections", strings.NewReader(`{"name": "papers"}`))
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response CollectionResponse
	decodeJSON(t, recorder, &response)
	assert.Equal(t, int64(10), response.ID)
	assert.Equal(t, int64(1), response.WorkspaceID)
	assert.Equal(t, "papers", response.Name)
	assert.True(t, response.Active)

	stores.AssertExpectations(t)
}

func TestCreateCollectionRequiresCreate(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Access.On("Check", "mallory", model.WorkspaceRef(1), model.PermissionCreate).Return(false, nil)

	req := authRequest(t, "mallory", "POST", "/workspaces/1/collections", strings.NewReader(`{"name": "papers"}`))
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	stores.AssertExpectations(t)
}

func TestListCollections(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Access.On("Check", "bob", model.WorkspaceRef(1), model.PermissionView).Return(true, nil)
	stores.Collections.On("ListCollections", int64(1)).Return([]model.Collection{
		{ID: 10, WorkspaceID: 1, Name: "papers", Active: true},
		{ID: 11, WorkspaceID: 1, Name: "archive", Active: false},
	}, nil)

	req := authRequest(t, "bob", "GET", "/workspaces/1/collections", nil)
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response []CollectionResponse
	decodeJSON(t, recorder, &response)
	assert.Len(t, response, 2)
	assert.False(t, response[1].Active)

	stores.AssertExpectations(t)
}

func TestUpdateCollection(t *testing.T) {
	s, stores := newTestServer(t)

	active := false
	stores.Access.On("Check", "bob", model.CollectionRef(10), model.PermissionEdit).Return(true, nil)
	stores.Collections.On("UpdateCollection", int64(10), "renamed", &active).Return(&model.Collection{
		ID: 10, WorkspaceID: 1, Name: "renamed", Active: false,
	}, nil)

	req := authRequest(t, "bob", "PUT", "/collections/10", strings.NewReader(`{"name": "renamed", "active": false}`))
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response CollectionResponse
	decodeJSON(t, recorder, &response)
	assert.Equal(t, "renamed", response.Name)
	assert.False(t, response.Active)

	stores.AssertExpectations(t)
}

func TestDeleteCollectionDeactivatesByDefault(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Access.On("Check", "bob", model.CollectionRef(10), model.PermissionDelete).Return(true, nil)
	stores.Collections.On("DeactivateCollection", int64(10)).Return(&model.Collection{
		ID: 10, WorkspaceID: 1, Name: "papers", Active: false,
	}, nil)

	req := authRequest(t, "bob", "DELETE", "/collections/10", nil)
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response CollectionResponse
	decodeJSON(t, recorder, &response)
	assert.False(t, response.Active)

	stores.Collections.AssertNotCalled(t, "DeleteCollection", int64(10))
	stores.AssertExpectations(t)
}

func TestDeleteCollectionPurge(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Access.On("Check", "bob", model.CollectionRef(10), model.PermissionDelete).Return(true, nil)
	stores.Collections.On("DeleteCollection", int64(10)).Return(nil)

	req := authRequest(t, "bob", "DELETE", "/collections/10?purge=true", nil)
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	stores.AssertExpectations(t)
}
