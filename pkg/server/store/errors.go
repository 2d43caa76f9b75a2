package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced workspace or collection does not
// exist. A denied permission check is not an error; Check returns false.
var ErrNotFound = errors.New("resource not found")

// ErrInvalidPermissionForScope is returned by Grant and BootstrapOwnerGrants
// when the permission is not part of the valid set for the resource's scope.
var ErrInvalidPermissionForScope = errors.New("permission is not valid for this scope")

// OperationFailedError wraps an underlying storage failure. The enclosing
// transaction is guaranteed rolled back; state is unchanged.
type OperationFailedError struct {
	Err error
}

func (e *OperationFailedError) Error() string {
	return fmt.Sprintf("storage operation failed: %v", e.Err)
}

func (e *OperationFailedError) Unwrap() error {
	return e.Err
}

// OperationFailed wraps err in an OperationFailedError unless it is already
// one of the store's sentinel errors.
func OperationFailed(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidPermissionForScope) {
		return err
	}
	var opErr *OperationFailedError
	if errors.As(err, &opErr) {
		return err
	}
	return &OperationFailedError{Err: err}
}
