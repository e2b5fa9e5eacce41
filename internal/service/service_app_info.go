package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/app"
	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

type appInfoService struct {
	appVersion string
	startedAt  time.Time
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		startedAt:  time.Now(),
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health reports liveness, the current time and the process uptime in
// seconds.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	now := s.now()

	return models.HealthResponse{
		Status:    app.MsgHealthOK,
		Timestamp: now.UTC(),
		Uptime:    now.Sub(s.startedAt).Seconds(),
		Version:   s.appVersion,
	}
}
