package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both supported dialects through [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var role string

	if err := row.Scan(&user.ID, &user.Name, &user.Email, &role, timestamp{&user.CreatedAt}, timestamp{&user.UpdatedAt}); err != nil {
		return models.User{}, err
	}
	user.Role = models.Role(role)

	return user, nil
}

// ListUsers returns all users ordered by ID. An empty table yields an empty,
// non-nil slice.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var users []models.User
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		users = make([]models.User, 0)
		for rows.Next() {
			user, err := scanUser(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			users = append(users, user)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// GetUser returns the user with the given ID or [ErrUserNotFound].
func (r *userRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", "*userRepository.GetUser").Int64("user_id", id).Msg("error getting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// UpdateUser applies update to the user with the given ID.
//
// Error handling:
//   - no matching row → [ErrUserNotFound];
//   - unique violation on email → [ErrEmailAlreadyExists];
//   - anything else → wrapped [ErrExecutingQuery].
func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	// nothing to write, the current record is the result
	if update.IsEmpty() {
		return r.GetUser(ctx, id)
	}

	query, args, err := buildUpdateUserQuery(r.db.builder, id, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, r.writeError(ctx, "*userRepository.UpdateUser", id, err)
	}

	return user, nil
}

// DeleteUser removes the user with the given ID and returns its last state.
// CreatedAt and UpdatedAt of the result are zero.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	var role string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Name, &user.Email, &role)
	if err != nil {
		return models.User{}, r.writeError(ctx, "*userRepository.DeleteUser", id, err)
	}
	user.Role = models.Role(role)

	return user, nil
}

func (r *userRepository) writeError(ctx context.Context, fn string, id int64, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}

	logger.FromContext(ctx).Err(err).Str("func", fn).Int64("user_id", id).Msg("error writing user")

	if r.db.errorClassificator.Classify(err) == UniqueViolation {
		return ErrEmailAlreadyExists
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
