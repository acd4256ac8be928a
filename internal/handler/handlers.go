package handler

import (
	"github.com/unitytechnetwork/Afifi-sub000/internal/config"
	"github.com/unitytechnetwork/Afifi-sub000/internal/export"
	"github.com/unitytechnetwork/Afifi-sub000/internal/handler/http"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/metrics"
	"github.com/unitytechnetwork/Afifi-sub000/internal/service"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled in cfg. The report
// server only speaks HTTP; an empty address is a misconfiguration.
func NewHandlers(
	services *service.Services,
	renderer *export.Renderer,
	recorder metrics.Recorder,
	buildInfo models.AppBuildInfo,
	cfg config.Server,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, renderer, recorder, buildInfo, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
