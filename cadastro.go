// Package cadastro implements the core of a small desktop registry for
// client records, a catalog of billable services and job estimates, backed
// by a local SQLite file. The package is UI-agnostic; the Fyne views live in
// the ui package and drive the App exposed here.
package cadastro

import (
	"fmt"
	"time"

	"github.com/FreakPy/Banco-de-Dados/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repository aggregates the persistence contracts the application needs.
// The db package provides the SQLite implementation.
type Repository interface {
	domain.ClientRepository
	domain.ServiceRepository
	domain.EstimateRepository
	domain.LogRepository
	Close() error
}

// App holds the state of a running registry application.
type App struct {
	ConfigDir string          // The configuration directory (defaults to the cadastro folder under the user configuration directory).
	Config    *Config         // The application configuration (units, service types, database file).
	Repo      Repository      // DB Repository Interface.
	Logger    zerolog.Logger  // Process logger.
	OnLog     func(log domain.Log) error // Function to be ran on each activity log entry - used by the GUI to append live.
}

// New creates a new App instance with default configuration and applies any
// provided options.
func New(options ...func(*App) error) (*App, error) {
	app := &App{
		Config: &Config{},
		Logger: zerolog.Nop(),
	}
	if err := app.WithOptions(options...); err != nil {
		return nil, err
	}
	return app, nil
}

// WithOptions applies a series of configuration functions to the app instance.
// Each option function can modify the app and return an error if it fails.
func (app *App) WithOptions(options ...func(*App) error) error {
	for _, option := range options {
		err := option(app)
		if err != nil {
			return fmt.Errorf("applying option on cadastro : %w", err)
		}
	}
	return nil
}

// Close releases the resources held by the app, in particular the repository.
func (app *App) Close() error {
	if app.Repo == nil {
		return nil
	}
	if err := app.Repo.Close(); err != nil {
		return fmt.Errorf("closing app repository : %w", err)
	}
	app.Repo = nil
	return nil
}

// WriteLog records an activity log entry, persisting it and fanning it out
// to the OnLog handler when one is configured.
func (app *App) WriteLog(level string, message string, options ...func(log *domain.Log) error) error {
	switch level {
	case "DEBUG":
	case "INFO":
	case "WARN":
	case "ERROR":
	case "FATAL":
	default:
		return fmt.Errorf("level should be either: debug, info, warn, error, fatal")
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating new uuid : %w", err)
	}
	log := domain.Log{
		ID:        id,
		Level:     level,
		Message:   message,
		Timestamp: time.Now(),
	}
	for _, option := range options {
		err := option(&log)
		if err != nil {
			return fmt.Errorf("applying log option : %w", err)
		}
	}
	if err := app.Repo.InsertLog(&log); err != nil {
		return fmt.Errorf("persisting log entry : %w", err)
	}
	if app.OnLog != nil {
		if err := app.OnLog(log); err != nil {
			return fmt.Errorf("running log handler : %w", err)
		}
	}
	return nil
}

// Logs retrieves the persisted activity log.
func (app *App) Logs() ([]*domain.Log, error) {
	logs, err := app.Repo.GetLogs()
	if err != nil {
		return nil, fmt.Errorf("listing activity log : %w", err)
	}
	return logs, nil
}

// LogWithContext is an option to add a context map to a log entry.
func LogWithContext(context map[string]any) func(log *domain.Log) error {
	return func(log *domain.Log) error {
		log.Context = context
		return nil
	}
}
