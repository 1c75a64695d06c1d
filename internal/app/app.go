package app

import (
	"errors"
	"fmt"

	"github.com/andy/togglcli/internal/auth"
	"github.com/andy/togglcli/internal/config"
	"github.com/andy/togglcli/internal/service"
	"github.com/andy/togglcli/internal/store"
	"github.com/andy/togglcli/internal/toggl"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Store  *store.Store
	Toggl  *toggl.Client

	Tracker service.TrackerService
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading the settings file
// 2. Resolving the API token (env var, then keyring, then first-run prompt)
// 3. Creating the store, API client, and tracker service
func New() (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	token, err := auth.Token()
	if err != nil {
		if !errors.Is(err, auth.ErrNoToken) {
			return nil, err
		}
		// First run with no credential anywhere: ask once and keep it in
		// the keyring.
		token, err = auth.PromptToken()
		if err != nil {
			return nil, auth.ErrNoToken
		}
		if err := auth.StoreToken(token); err != nil {
			return nil, fmt.Errorf("failed to store token: %w", err)
		}
	}

	st := store.New(cfg.Projects.Path)
	client := toggl.NewClient(cfg.API.BaseURL, token)
	tracker := service.NewTrackerService(client, st, cfg.Projects.FallbackClient)

	return &App{
		Config:  cfg,
		Store:   st,
		Toggl:   client,
		Tracker: tracker,
	}, nil
}
