// Package http implements the HTTP transport layer of the sync server.
// It provides middleware, route handlers, and request/response utilities for
// the REST API. Authentication, logging, and tracing concerns are handled at
// this layer before requests are forwarded to the service layer.
package http

import (
	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
