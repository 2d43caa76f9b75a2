package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server/store"
)

// MockAccessStore implements store.AccessStore for testing using testify/mock
type MockAccessStore struct {
	mock.Mock
}

func NewMockAccessStore() *MockAccessStore {
	return &MockAccessStore{}
}

func (m *MockAccessStore) Check(principal string, ref model.Ref, permission model.Permission) (bool, error) {
	args := m.Called(principal, ref, permission)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccessStore) Grant(ref model.Ref, principal string, permission model.Permission) (*model.Grant, error) {
	args := m.Called(ref, principal, permission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Grant), args.Error(1)
}

func (m *MockAccessStore) Revoke(ref model.Ref, principal string, permission model.Permission) (*model.Grant, error) {
	args := m.Called(ref, principal, permission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Grant), args.Error(1)
}

func (m *MockAccessStore) BootstrapOwnerGrants(ref model.Ref, principal string) error {
	args := m.Called(ref, principal)
	return args.Error(0)
}

func (m *MockAccessStore) UsersWithAccess(ref model.Ref) ([]store.UserAccess, error) {
	args := m.Called(ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.UserAccess), args.Error(1)
}

func (m *MockAccessStore) AccessibleWorkspaces(principal string) ([]model.Workspace, error) {
	args := m.Called(principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Workspace), args.Error(1)
}

func (m *MockAccessStore) Tree(principal string, filters store.TreeFilters) ([]store.WorkspaceNode, error) {
	args := m.Called(principal, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.WorkspaceNode), args.Error(1)
}

func (m *MockAccessStore) DeleteWorkspaceCascade(workspaceID int64) error {
	args := m.Called(workspaceID)
	return args.Error(0)
}

// MockWorkspacesStore implements store.WorkspacesStore for testing using testify/mock
type MockWorkspacesStore struct {
	mock.Mock
}

func NewMockWorkspacesStore() *MockWorkspacesStore {
	return &MockWorkspacesStore{}
}

func (m *MockWorkspacesStore) CreateWorkspace(ws *model.Workspace) error {
	args := m.Called(ws)
	return args.Error(0)
}

func (m *MockWorkspacesStore) FetchWorkspace(id int64) (*model.Workspace, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workspace), args.Error(1)
}

func (m *MockWorkspacesStore) UpdateWorkspace(id int64, name, kind string) (*model.Workspace, error) {
	args := m.Called(id, name, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workspace), args.Error(1)
}

// MockCollectionsStore implements store.CollectionsStore for testing using testify/mock
type MockCollectionsStore struct {
	mock.Mock
}

func NewMockCollectionsStore() *MockCollectionsStore {
	return &MockCollectionsStore{}
}

func (m *MockCollectionsStore) CreateCollection(c *model.Collection) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCollectionsStore) FetchCollection(id int64) (*model.Collection, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Collection), args.Error(1)
}

func (m *MockCollectionsStore) ListCollections(workspaceID int64) ([]model.Collection, error) {
	args := m.Called(workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Collection), args.Error(1)
}

func (m *MockCollectionsStore) UpdateCollection(id int64, name string, active *bool) (*model.Collection, error) {
	args := m.Called(id, name, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Collection), args.Error(1)
}

func (m *MockCollectionsStore) DeactivateCollection(id int64) (*model.Collection, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Collection), args.Error(1)
}

func (m *MockCollectionsStore) DeleteCollection(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) CreateUser(u *model.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUsersStore) FetchUser(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) ListUsers() ([]model.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockDocumentsStore implements store.DocumentsStore for testing using testify/mock
type MockDocumentsStore struct {
	mock.Mock
}

func NewMockDocumentsStore() *MockDocumentsStore {
	return &MockDocumentsStore{}
}

func (m *MockDocumentsStore) CreateDocument(d *model.Document) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *MockDocumentsStore) FetchDocument(id int64) (*model.Document, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentsStore) ListDocuments(collectionID int64) ([]model.Document, error) {
	args := m.Called(collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentsStore) UpdateDocument(id int64, name, body, configurationDetails string) (*model.Document, error) {
	args := m.Called(id, name, body, configurationDetails)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentsStore) DeleteDocument(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPromptsStore implements store.PromptsStore for testing using testify/mock
type MockPromptsStore struct {
	mock.Mock
}

func NewMockPromptsStore() *MockPromptsStore {
	return &MockPromptsStore{}
}

func (m *MockPromptsStore) CreatePrompt(p *model.Prompt) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPromptsStore) ListPrompts(collectionID int64) ([]model.Prompt, error) {
	args := m.Called(collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Prompt), args.Error(1)
}

func (m *MockPromptsStore) FetchCachedResponse(collectionID int64, hashKey string) (*model.PromptResponse, error) {
	args := m.Called(collectionID, hashKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PromptResponse), args.Error(1)
}

func (m *MockPromptsStore) StoreCachedResponse(r *model.PromptResponse) error {
	args := m.Called(r)
	return args.Error(0)
}

// MockDatasetsStore implements store.DatasetsStore for testing using testify/mock
type MockDatasetsStore struct {
	mock.Mock
}

func NewMockDatasetsStore() *MockDatasetsStore {
	return &MockDatasetsStore{}
}

func (m *MockDatasetsStore) CreateDataset(d *model.Dataset) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *MockDatasetsStore) FetchDataset(id int64) (*model.Dataset, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dataset), args.Error(1)
}

func (m *MockDatasetsStore) ListDatasets(collectionID int64) ([]model.Dataset, error) {
	args := m.Called(collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dataset), args.Error(1)
}

func (m *MockDatasetsStore) DeleteDataset(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockDatasetsStore) CreateUpload(u *model.DatasetUpload) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockDatasetsStore) FetchUpload(id int64) (*model.DatasetUpload, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DatasetUpload), args.Error(1)
}

func (m *MockDatasetsStore) ListUploads(datasetID int64) ([]model.DatasetUpload, error) {
	args := m.Called(datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DatasetUpload), args.Error(1)
}

func (m *MockDatasetsStore) ApproveUpload(id int64) (*model.DatasetUpload, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DatasetUpload), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) Ping() error {
	args := m.Called()
	return args.Error(0)
}
