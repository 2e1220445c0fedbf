package app

import (
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/analisai/analisai/internal/config"
	"github.com/analisai/analisai/internal/core"
	"github.com/analisai/analisai/internal/dispatcher"
	"github.com/analisai/analisai/internal/eventbus"
	"github.com/analisai/analisai/internal/logging"
	"github.com/analisai/analisai/internal/models"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	backend    *Backend
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.Service
	model      *AppModel
	logCloser  io.Closer
}

func NewApplication(cfg *config.Config, serverURL string) (*Application, error) {
	backend, err := NewBackend(cfg, serverURL)
	if err != nil {
		return nil, err
	}

	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)

	service := core.NewService(
		core.NewUploadController(backend.Client),
		core.NewChartController(backend.Fetcher),
		core.NewChatController(backend.Chat),
		backend.Client,
		eb,
	)
	if backend.Assistant != nil {
		service.OnUploaded(backend.Assistant.Invalidate)
	}

	return &Application{
		config:     cfg,
		backend:    backend,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      NewAppModel(disp, backend.Client.BaseURL()),
	}, nil
}

func (app *Application) Start() error {
	// Logs would corrupt the alternate screen.
	if dir, err := config.Dir(); err == nil {
		if closer, err := logging.ToFile(filepath.Join(dir, "analisai.log")); err == nil {
			app.logCloser = closer
		}
	}

	app.dispatcher.Start()
	app.service.Start()
	logging.Info("dashboard started", "server", app.backend.Client.BaseURL())

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	if app.logCloser != nil {
		_ = app.logCloser.Close()
	}
}

func createInitialAppModel() models.AppModel {
	// Uploads, charts and transcript arrive from core as single source of truth
	return models.AppModel{
		View:   models.ViewUpload,
		Status: "Pronto",
	}
}
