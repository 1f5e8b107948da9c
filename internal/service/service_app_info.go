package service

import (
	"context"

	"github.com/MKhiriev/go-autofill-vault/internal/config"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/models"
)

type appInfoService struct {
	appVersion string
	custodian  KeyCustodian

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, custodian KeyCustodian, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		custodian:  custodian,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetStatus reports the version and the custodian state without blocking.
func (s *appInfoService) GetStatus(ctx context.Context) models.VaultStatus {
	return models.VaultStatus{
		Version: s.appVersion,
		State:   s.custodian.State().String(),
	}
}
