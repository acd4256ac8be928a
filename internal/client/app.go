package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
)

var errNoUI = errors.New("no user interface is configured")

// UI is the interactive front end run by [App].
type UI interface {
	MainLoop(ctx context.Context) error
}

// App runs the terminal client over local storage.
type App struct {
	ui      UI
	closer  interface{ Close() error }
	logger  *logger.Logger
	signals []os.Signal
}

// NewApp returns an [App] that runs ui and releases closer on exit. closer
// may be nil.
func NewApp(ui UI, closer interface{ Close() error }, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{
		ui:      ui,
		closer:  closer,
		logger:  logger,
		signals: []os.Signal{syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT},
	}, nil
}

// Run blocks until the user quits or the process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), a.signals...)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer func() {
		if a.closer == nil {
			return
		}
		if err := a.closer.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Msg("error closing storage")
		}
	}()

	a.logger.Info().Str("func", "*App.Run").Msg("client started")
	if err := a.ui.MainLoop(ctx); err != nil {
		if ctx.Err() != nil {
			a.logger.Info().Str("func", "*App.Run").Msg("client interrupted")
			return nil
		}
		return fmt.Errorf("error running user interface: %w", err)
	}
	return nil
}
