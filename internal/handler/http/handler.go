package http

import (
	"github.com/unitytechnetwork/Afifi-sub000/internal/config"
	"github.com/unitytechnetwork/Afifi-sub000/internal/export"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/metrics"
	"github.com/unitytechnetwork/Afifi-sub000/internal/service"
	"github.com/unitytechnetwork/Afifi-sub000/internal/utils"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

type Handler struct {
	services  *service.Services
	renderer  *export.Renderer
	metrics   metrics.Recorder
	buildInfo models.AppBuildInfo
	traceIDs  *utils.UUIDGenerator
	cfg       config.Server

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	renderer *export.Renderer,
	recorder metrics.Recorder,
	buildInfo models.AppBuildInfo,
	cfg config.Server,
	logger *logger.Logger,
) *Handler {
	if recorder == nil {
		recorder = metrics.Nop()
	}
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		renderer:  renderer,
		metrics:   recorder,
		buildInfo: buildInfo,
		traceIDs:  utils.NewUUIDGenerator(),
		cfg:       cfg,
		logger:    logger,
	}
}
