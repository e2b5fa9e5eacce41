// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/auth"
	"github.com/MKhiriev/go-user-keeper/internal/authz"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

// userService is the concrete implementation of [UserService].
//
// Errors are returned as the sentinels of the package that produced them
// (validators, auth, authz, store) so the transport layer can map them to
// status codes with [errors.Is] and [errors.As].
type userService struct {
	userRepository store.UserRepository
	validator      validators.UserValidator
	verifier       auth.Verifier

	logger *logger.Logger
}

// NewUserService constructs a [UserService]. The returned service holds no
// mutable state and is safe for concurrent use.
func NewUserService(
	userRepository store.UserRepository,
	validator validators.UserValidator,
	verifier auth.Verifier,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		verifier:       verifier,
		logger:         logger,
	}
}

// ListUsers returns every user. The read path is public.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// GetUser validates rawID and returns the matching user.
func (s *userService) GetUser(ctx context.Context, rawID string) (models.User, error) {
	id, fieldErrs := s.validator.ValidateUserID(rawID)
	if err := fieldErrs.Err(); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.GetUser(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

// UpdateUser applies a partial update.
//
// Steps, each of which short-circuits on failure:
//  1. validate the id and the body; both are checked so every problem is
//     reported at once;
//  2. verify the credential;
//  3. decide whether the caller may change the requested fields of the
//     target;
//  4. write the present fields.
func (s *userService) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	id, fieldErrs := s.validator.ValidateUserID(req.ID)
	update, bodyErrs := s.validator.ValidateUserUpdate(req.Body)
	fieldErrs = append(fieldErrs, bodyErrs...)
	if err := fieldErrs.Err(); err != nil {
		return models.User{}, err
	}

	claim, err := s.authorize(ctx, req.Token, id, update)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	log.Info().
		Int64("user_id", id).
		Int64("caller_id", claim.SubjectID()).
		Str("caller_role", claim.Role().String()).
		Strs("fields", update.Fields()).
		Msg("user updated")

	return user, nil
}

// DeleteUser removes a user. Only the owner or an admin may do so.
func (s *userService) DeleteUser(ctx context.Context, req models.DeleteUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	id, fieldErrs := s.validator.ValidateUserID(req.ID)
	if err := fieldErrs.Err(); err != nil {
		return models.User{}, err
	}

	claim, err := s.authorize(ctx, req.Token, id, models.UserUpdate{})
	if err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error deleting user: %w", err)
	}

	log.Info().
		Int64("user_id", id).
		Int64("caller_id", claim.SubjectID()).
		Str("caller_role", claim.Role().String()).
		Msg("user deleted")

	return user, nil
}

// authorize verifies token and checks the caller against the target and the
// fields of update.
func (s *userService) authorize(ctx context.Context, token string, targetID int64, update models.UserUpdate) (*auth.Claim, error) {
	claim, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, auth.ErrUnauthenticated
	}

	decision := authz.Decide(claim, targetID, update)
	if err := decision.Err(); err != nil {
		logger.FromContext(ctx).Debug().
			Int64("user_id", targetID).
			Int64("caller_id", claim.SubjectID()).
			Str("decision", decision.String()).
			Msg("mutation denied")
		return nil, err
	}

	return claim, nil
}
