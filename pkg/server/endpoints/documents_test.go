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

func TestCreateDocument(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Access.On("Check", "bob", model.CollectionRef(10), model.PermissionEdit).Return(true, nil)
	stores.Documents.On("CreateDocument", mock.AnythingOfType("*model.Document")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*model.Document).ID = 9
		}).
		Return(nil)

	req := authRequest(t, "bob", "POST", "/collections/10/documents",
		strings.NewReader(`{"name": "notes", "body": "# Heading"}`))
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response DocumentResponse
	decodeJSON(t, recorder, &response)
	assert.Equal(t, int64(9), response.ID)
	assert.Equal(t, int64(10), response.CollectionID)
	assert.Equal(t, "notes", response.Name)
	assert.Empty(t, response.RenderedBody)

	stores.AssertExpectations(t)
}

func TestCreateDocumentRequiresEdit(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Access.On("Check", "mallory", model.CollectionRef(10), model.PermissionEdit).Return(false, nil)

	req := authRequest(t, "mallory", "POST", "/collections/10/documents",
		strings.NewReader(`{"name": "notes"}`))
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	stores.AssertExpectations(t)
}

func TestGetDocument(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Documents.On("FetchDocument", int64(9)).Return(&model.Document{
		ID: 9, CollectionID: 10, Name: "notes", Body: "plain text",
	}, nil)
	stores.Access.On("Check", "bob", model.CollectionRef(10), model.PermissionView).Return(true, nil)

	req := authRequest(t, "bob", "GET", "/documents/9", nil)
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response DocumentResponse
	decodeJSON(t, recorder, &response)
	assert.Equal(t, "plain text", response.Body)
	assert.Empty(t, response.RenderedBody)

	stores.AssertExpectations(t)
}

func TestGetDocumentRendered(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Documents.On("FetchDocument", int64(9)).Return(&model.Document{
		ID: 9, CollectionID: 10, Name: "notes", Body: "# Heading\n\nSome *text*.",
	}, nil)
	stores.Access.On("Check", "bob", model.CollectionRef(10), model.PermissionView).Return(true, nil)

	req := authRequest(t, "bob", "GET", "/documents/9?render=html", nil)
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response DocumentResponse
	decodeJSON(t, recorder, &response)
	assert.Contains(t, response.RenderedBody, "<h1>Heading</h1>")
	assert.Contains(t, response.RenderedBody, "<em>text</em>")

	stores.AssertExpectations(t)
}

func TestGetDocumentRenderDisabled(t *testing.T) {
	s, stores := newTestServer(t)
	s.Config.MarkdownRenderEnabled = false

	stores.Documents.On("FetchDocument", int64(9)).Return(&model.Document{
		ID: 9, CollectionID: 10, Name: "notes", Body: "# Heading",
	}, nil)
	stores.Access.On("Check", "bob", model.CollectionRef(10), model.PermissionView).Return(true, nil)

	req := authRequest(t, "bob", "GET", "/documents/9?render=html", nil)
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	stores.AssertExpectations(t)
}

func TestGetDocumentNotFound(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Documents.On("FetchDocument", int64(404)).Return(nil, store.ErrNotFound)

	req := authRequest(t, "bob", "GET", "/documents/404", nil)
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	stores.AssertExpectations(t)
}

func TestUpdateDocumentChecksParentCollection(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Documents.On("FetchDocument", int64(9)).Return(&model.Document{
		ID: 9, CollectionID: 10, Name: "notes", Body: "old",
	}, nil)
	stores.Access.On("Check", "mallory", model.CollectionRef(10), model.PermissionEdit).Return(false, nil)

	req := authRequest(t, "mallory", "PUT", "/documents/9",
		strings.NewReader(`{"name": "notes", "body": "new"}`))
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	stores.Documents.AssertNotCalled(t, "UpdateDocument", int64(9), "notes", "new", "")
	stores.AssertExpectations(t)
}

func TestDeleteDocument(t *testing.T) {
	s, stores := newTestServer(t)

	stores.Documents.On("FetchDocument", int64(9)).Return(&model.Document{
		ID: 9, CollectionID: 10, Name: "notes",
	}, nil)
	stores.Access.On("Check", "bob", model.CollectionRef(10), model.PermissionEdit).Return(true, nil)
	stores.Documents.On("DeleteDocument", int64(9)).Return(nil)

	req := authRequest(t, "bob", "DELETE", "/documents/9", nil)
	recorder := serveRequest(s, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	stores.AssertExpectations(t)
}
