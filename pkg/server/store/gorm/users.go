package gorm

import (
	"time"

	"gorm.io/gorm"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// CreateUser inserts a directory entry for a principal.
func (s *UsersStore) CreateUser(u *model.User) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	err := s.db.Exec(`
		INSERT INTO users (id, name, email, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.ID, u.Name, u.Email, u.Role, u.CreatedAt, u.UpdatedAt).Error
	if err != nil {
		return store.OperationFailed(err)
	}
	return nil
}

// FetchUser retrieves a directory entry by principal id.
func (s *UsersStore) FetchUser(id string) (*model.User, error) {
	var u model.User
	result := s.db.Raw(`
		SELECT id, name, email, role, created_at, updated_at
		FROM users WHERE id = ?
	`, id).Scan(&u)
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

// ListUsers returns the whole directory ordered by name.
func (s *UsersStore) ListUsers() ([]model.User, error) {
	var users []model.User
	err := s.db.Raw(`
		SELECT id, name, email, role, created_at, updated_at
		FROM users ORDER BY name, id
	`).Scan(&users).Error
	if err != nil {
		return nil, store.OperationFailed(err)
	}
	return users, nil
}
