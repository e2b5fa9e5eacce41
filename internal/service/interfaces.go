package service

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService runs the user use cases. Mutations go through validation,
// authentication and authorization, in that order, before the store is
// touched.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, rawID string) (models.User, error)

	UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, req models.DeleteUserRequest) (models.User, error)
}

// AppInfoService reports information about the running process.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}
