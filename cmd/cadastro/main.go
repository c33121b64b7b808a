package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	cadastro "github.com/FreakPy/Banco-de-Dados"
	"github.com/FreakPy/Banco-de-Dados/db"
	"github.com/FreakPy/Banco-de-Dados/ui"
)

const appID = "com.freakpy.cadastro"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app, err := setup(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("starting cadastro")
	}
	defer app.Close()

	fyneApp := fyneapp.NewWithID(appID)
	window := fyneApp.NewWindow("Cadastro")
	window.Resize(fyne.NewSize(1000, 600))
	window.CenterOnScreen()

	window.SetContent(ui.NewManager(app, window).Build())
	window.ShowAndRun()
}

// setup loads the configuration, opens the database named by it and builds
// the application core.
func setup(logger zerolog.Logger) (*cadastro.App, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("locating user config dir : %w", err)
	}
	configDir := filepath.Join(userConfigDir, "cadastro")

	app, err := cadastro.New(
		cadastro.WithLogger(logger),
		cadastro.WithConfigDir(configDir),
	)
	if err != nil {
		return nil, err
	}

	conn, err := db.New(filepath.Join(configDir, app.Config.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("opening database : %w", err)
	}
	if err := app.WithOptions(cadastro.WithRepo(db.NewRegistryRepo(conn))); err != nil {
		return nil, err
	}

	logger.Info().Str("config_dir", configDir).Str("database", app.Config.DatabaseFile).Msg("cadastro ready")
	return app, nil
}
