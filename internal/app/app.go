// Package app wires the registration service from configuration.
package app

import (
	"io"
	"log/slog"
	"os"

	"communibase/internal/application"
	"communibase/internal/config"
	"communibase/internal/infrastructure/i18n"
	"communibase/internal/infrastructure/memory"
	"communibase/pkg/logging"
)

type App struct {
	Config        *config.Config
	Log           *slog.Logger
	Store         *memory.EventStore
	Translator    *i18n.Translator
	Registrations *application.RegistrationService
}

// New builds every component from cfg. Logs go to w at cfg.LogLevel.
func New(cfg *config.Config, w io.Writer) *App {
	log := logging.New(w, cfg.LogLevel).With("entity_type", cfg.EntityType)
	store := memory.NewEventStore()
	translator := i18n.NewTranslator(cfg.DefaultLocale, log)

	return &App{
		Config:        cfg,
		Log:           log,
		Store:         store,
		Translator:    translator,
		Registrations: application.NewRegistrationService(store, translator, cfg, log),
	}
}

// Load reads the configuration, installs the default logger and wires the app.
func Load() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.SetupWithLevel(cfg.LogLevel)
	a := New(cfg, os.Stderr)
	a.Log.Info("app: ready", "timezone", cfg.TimezoneName, "locale", cfg.DefaultLocale)
	return a, nil
}
