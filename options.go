package cadastro

import (
	"errors"
	"fmt"
	"os"

	"github.com/FreakPy/Banco-de-Dados/domain"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// WithConfigDir configures the app to use the specified configuration
// directory. It creates the directory if it doesn't exist and initializes the
// configuration file using Viper.
func WithConfigDir(appConfigDir string) func(*App) error {
	return func(app *App) error {
		_, err := os.ReadDir(appConfigDir)
		if err != nil {
			if os.IsNotExist(err) {
				app.Logger.Info().Str("dir", appConfigDir).Msg("creating config dir")
				err := os.MkdirAll(appConfigDir, 0700)
				if err != nil {
					return fmt.Errorf("creating config dir %s: %w", appConfigDir, err)
				}
			} else {
				return fmt.Errorf("checking if directory exists %s: %w", appConfigDir, err)
			}
		}
		// At this point, the directory exists or was created successfully
		app.ConfigDir = appConfigDir

		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(appConfigDir)
		v.SetDefault("database_file", "registro.db")
		v.SetDefault("units", []string{"un", "h", "m²", "diária"})
		v.SetDefault("service_types", []string{"Instalação", "Manutenção", "Reforma"})
		err = v.ReadInConfig()
		if err != nil {
			// need to check if the error is config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				// Config file is not found
				err = v.SafeWriteConfig()
				if err != nil {
					return fmt.Errorf("writing config file : %w", err)
				}
			} else {
				return fmt.Errorf("reading config file : %w", err)
			}
		}
		if err := v.Unmarshal(app.Config); err != nil {
			return fmt.Errorf("unmarshalling config to struct : %w", err)
		}

		app.Config.viper = v
		app.Config.ConfigDir = appConfigDir
		v.Set("config_dir", appConfigDir)
		// Rewrite entire file from struct
		err = v.WriteConfig()
		if err != nil {
			return fmt.Errorf("writing config after unmarshalling : %w", err)
		}
		return nil
	}
}

// WithRepo attaches the repository the app persists through. Any previously
// attached repository is closed first.
func WithRepo(repo Repository) func(*App) error {
	return func(app *App) error {
		if app.Repo != nil {
			if err := app.Repo.Close(); err != nil {
				return err
			}
			app.Repo = nil
		}
		app.Repo = repo
		return nil
	}
}

// WithLogger sets the process logger used for operational logging.
func WithLogger(logger zerolog.Logger) func(*App) error {
	return func(app *App) error {
		app.Logger = logger
		return nil
	}
}

// WithLogHandler takes a handler function that will be executed on each
// activity log entry.
func WithLogHandler(handler func(log domain.Log) error) func(*App) error {
	return func(app *App) error {
		if app.OnLog != nil {
			return errors.New("app already has a log handler defined")
		}
		app.OnLog = handler
		return nil
	}
}
