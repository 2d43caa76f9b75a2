package endpoints

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/workdeck/workdeck/pkg/config"
	"github.com/workdeck/workdeck/pkg/identity"
	"github.com/workdeck/workdeck/pkg/server"
	"github.com/workdeck/workdeck/pkg/server/middleware"
)

var testSigningKey = []byte("endpoints-test-signing-key")

type mockStores struct {
	Access      *MockAccessStore
	Workspaces  *MockWorkspacesStore
	Collections *MockCollectionsStore
	Users       *MockUsersStore
	Documents   *MockDocumentsStore
	Prompts     *MockPromptsStore
	Datasets    *MockDatasetsStore
	Health      *MockHealthStore
}

func (m *mockStores) AssertExpectations(t *testing.T) {
	t.Helper()
	m.Access.AssertExpectations(t)
	m.Workspaces.AssertExpectations(t)
	m.Collections.AssertExpectations(t)
	m.Users.AssertExpectations(t)
	m.Documents.AssertExpectations(t)
	m.Prompts.AssertExpectations(t)
	m.Datasets.AssertExpectations(t)
	m.Health.AssertExpectations(t)
}

// newTestServer builds a server backed entirely by mock stores, with every
// endpoint registered, so tests can drive it through the router the same way
// real clients do.
func newTestServer(t *testing.T) (*server.Server, *mockStores) {
	t.Helper()

	stores := &mockStores{
		Access:      NewMockAccessStore(),
		Workspaces:  NewMockWorkspacesStore(),
		Collections: NewMockCollectionsStore(),
		Users:       NewMockUsersStore(),
		Documents:   NewMockDocumentsStore(),
		Prompts:     NewMockPromptsStore(),
		Datasets:    NewMockDatasetsStore(),
		Health:      NewMockHealthStore(),
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	s := &server.Server{
		Router:    mux.NewRouter().UseEncodedPath(),
		Config:    cfg,
		TokenAuth: middleware.NewTokenAuthenticator(testSigningKey),

		Access:      stores.Access,
		Workspaces:  stores.Workspaces,
		Collections: stores.Collections,
		Users:       stores.Users,
		Documents:   stores.Documents,
		Prompts:     stores.Prompts,
		Datasets:    stores.Datasets,
		Health:      stores.Health,
	}
	RegisterAll(s)

	return s, stores
}

// authRequest builds a request authenticated as the given principal.
func authRequest(t *testing.T, principal, method, target string, body io.Reader) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	token, err := identity.NewToken(testSigningKey, principal, time.Minute)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func serveRequest(s *server.Server, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	s.Router.ServeHTTP(recorder, req)
	return recorder
}

func decodeJSON(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}
