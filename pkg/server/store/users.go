package store

import "github.com/workdeck/workdeck/pkg/model"

// UsersStore abstracts the principal directory.
type UsersStore interface {
	CreateUser(u *model.User) error
	FetchUser(id string) (*model.User, error)
	ListUsers() ([]model.User, error)
}
