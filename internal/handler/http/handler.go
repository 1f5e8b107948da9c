package http

import (
	"github.com/MKhiriev/go-autofill-vault/internal/config"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/service"
)

type Handler struct {
	services *service.Services

	// tokenSignKey enables bearer token checks when non-empty.
	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", appCfg.TokenSignKey != "").Msg("http handler created")
	return &Handler{
		services:     services,
		tokenSignKey: appCfg.TokenSignKey,
		tokenIssuer:  appCfg.TokenIssuer,
		logger:       logger,
	}
}
