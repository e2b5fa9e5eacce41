package store

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence boundary for user accounts.
//
// Every method returns [ErrUserNotFound] when the target row does not exist.
type UserRepository interface {
	// ListUsers returns every user ordered by ID.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns the user with the given ID.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// UpdateUser writes the fields present in update and returns the
	// resulting record. An empty update writes nothing and returns the
	// current record. A clash on the unique email column yields
	// [ErrEmailAlreadyExists].
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the user and returns its last state without
	// timestamps.
	DeleteUser(ctx context.Context, id int64) (models.User, error)
}

// UserCache is a read cache of single user records keyed by ID.
//
// Every entry has a generation that [UserCache.Invalidate] advances. A fill
// passes the generation observed on the miss to [UserCache.SetUser], which
// refuses to store a record read before a concurrent invalidation.
type UserCache interface {
	// GetUser returns the cached user. On a miss the user is nil and
	// generation is the value to hand to SetUser.
	GetUser(ctx context.Context, id int64) (user *models.User, generation int64, err error)

	// SetUser stores user under its ID if the entry is still at generation.
	// Otherwise nothing is written and [ErrStaleCacheFill] is returned.
	SetUser(ctx context.Context, user models.User, generation int64) error

	// Invalidate drops the cached entry for id, if any, and advances its
	// generation.
	Invalidate(ctx context.Context, id int64) error
}
