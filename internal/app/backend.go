package app

import (
	"github.com/analisai/analisai/internal/api"
	"github.com/analisai/analisai/internal/assistant"
	"github.com/analisai/analisai/internal/config"
	"github.com/analisai/analisai/internal/core"
	"github.com/analisai/analisai/internal/logging"
)

// Backend bundles the collaborators every entry point needs.
type Backend struct {
	Client    *api.Client
	Fetcher   core.Fetcher
	Chat      core.ChatBackend
	Assistant *assistant.Assistant // nil when chat goes through the backend
}

// NewBackend builds the HTTP client, fetch strategy and chat backend for the
// active profile. serverURL overrides the profile when not empty.
func NewBackend(cfg *config.Config, serverURL string) (*Backend, error) {
	if serverURL == "" {
		serverURL = cfg.GetServerURL()
	}
	client := api.NewClient(serverURL)

	fetcher, err := core.NewFetcher(cfg.GetAggregationMode(), client)
	if err != nil {
		return nil, err
	}

	b := &Backend{Client: client, Fetcher: fetcher, Chat: client}
	if cfg.HasAssistant() {
		b.Assistant = assistant.New(assistant.Config{
			APIKey:  cfg.GetAPIKey(),
			BaseURL: cfg.GetBaseURL(),
			Model:   cfg.GetModel(),
		}, fetcher)
		b.Chat = b.Assistant
	}

	logging.Debug("backend configured",
		"server", client.BaseURL(),
		"mode", cfg.GetAggregationMode(),
		"assistant", b.Assistant != nil)
	return b, nil
}
