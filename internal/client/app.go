package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/internal/service"
	"github.com/MKhiriev/go-news-kiosk/internal/tui"
	"github.com/MKhiriev/go-news-kiosk/internal/workers"
)

type App struct {
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client: nil services")
	}
	if ui == nil {
		return nil, errors.New("client: nil ui")
	}

	return &App{
		ui:      ui,
		workers: workers.NewWorkers(services.FeedRefreshJob),
		logger:  logger,
	}, nil
}

// Run starts the background workers, hands the terminal to the UI and stops
// the workers once the UI returns. Quitting from the UI is a normal exit.
func (a *App) Run(ctx context.Context) error {
	a.workers.Run()
	defer a.workers.Stop()

	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	if err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("ui run: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
