package cadastro

import (
	"errors"
	"fmt"
	"time"

	"github.com/FreakPy/Banco-de-Dados/db"
	"github.com/FreakPy/Banco-de-Dados/domain"
)

// tokenAttempts bounds the regeneration loop when a freshly generated token
// collides with a stored one.
const tokenAttempts = 25

// Clients retrieves all client records.
func (app *App) Clients() ([]*domain.Client, error) {
	clients, err := app.Repo.GetClients()
	if err != nil {
		return nil, fmt.Errorf("listing clients : %w", err)
	}
	return clients, nil
}

// CreateClient validates the form fields, generates a fresh token, stamps the
// registration date and stores the new client.
func (app *App) CreateClient(name, email, phone, observation string) (*domain.Client, error) {
	client := &domain.Client{
		Name:         Sanitize(name),
		Email:        Sanitize(email),
		Phone:        Sanitize(phone),
		Observation:  Sanitize(observation),
		RegisteredAt: time.Now(),
	}

	if err := validateName("nome", client.Name); err != nil {
		return nil, err
	}
	if err := validateEmail(client.Email); err != nil {
		return nil, err
	}
	if err := validatePhone(client.Phone); err != nil {
		return nil, err
	}

	token, err := app.freeClientToken()
	if err != nil {
		return nil, err
	}
	client.Token = token

	if err := app.Repo.InsertClient(client); err != nil {
		return nil, fmt.Errorf("creating client : %w", err)
	}

	app.Logger.Info().Str("token", client.Token).Msg("client created")
	app.WriteLog("INFO", fmt.Sprintf("Cliente %s cadastrado", client.Token),
		LogWithContext(map[string]any{"name": client.Name}))
	return client, nil
}

// UpdateClient validates the form fields and updates the client identified by
// token. The token and the registration date are preserved.
func (app *App) UpdateClient(token, name, email, phone, observation string) (*domain.Client, error) {
	client := &domain.Client{
		Token:       token,
		Name:        Sanitize(name),
		Email:       Sanitize(email),
		Phone:       Sanitize(phone),
		Observation: Sanitize(observation),
	}

	if err := validateName("nome", client.Name); err != nil {
		return nil, err
	}
	if err := validateEmail(client.Email); err != nil {
		return nil, err
	}
	if err := validatePhone(client.Phone); err != nil {
		return nil, err
	}

	if err := app.Repo.UpdateClient(client); err != nil {
		return nil, fmt.Errorf("updating client %s : %w", token, err)
	}

	app.Logger.Info().Str("token", token).Msg("client updated")
	app.WriteLog("INFO", fmt.Sprintf("Cliente %s atualizado", token))
	return client, nil
}

// DeleteClient removes the client with the given token.
func (app *App) DeleteClient(token string) error {
	if err := app.Repo.DeleteClient(token); err != nil {
		return fmt.Errorf("deleting client %s : %w", token, err)
	}

	app.Logger.Info().Str("token", token).Msg("client deleted")
	app.WriteLog("INFO", fmt.Sprintf("Cliente %s excluído", token))
	return nil
}

// freeClientToken generates a token that is not yet assigned to any client.
func (app *App) freeClientToken() (string, error) {
	for i := 0; i < tokenAttempts; i++ {
		token, err := NewClientToken()
		if err != nil {
			return "", fmt.Errorf("generating client token : %w", err)
		}
		_, err = app.Repo.GetClient(token)
		if errors.Is(err, db.ErrNoClientForToken) {
			return token, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking client token %s : %w", token, err)
		}
	}
	return "", errors.New("exhausted attempts to generate a free client token")
}
