// Package tui is the technician's terminal front end: inspection list,
// report summary, defect follow-up and sharing.
package tui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unitytechnetwork/Afifi-sub000/internal/export"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/service"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

type TUI struct {
	services  *service.Services
	renderer  *export.Renderer
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, renderer *export.Renderer, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || renderer == nil {
		return nil, errMissingDependency
	}
	return &TUI{services: services, renderer: renderer, buildInfo: buildInfo, logger: logger}, nil
}

// MainLoop runs the interactive program until the user quits.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services, t.renderer, t.buildInfo)
	model.copy = clipboard.WriteAll

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if _, ok := finalModel.(mainLoopModel); !ok {
		return tea.ErrProgramKilled
	}
	t.logger.Info().Msg("tui closed")
	return nil
}
