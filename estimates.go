package cadastro

import (
	"errors"
	"fmt"
	"time"

	"github.com/FreakPy/Banco-de-Dados/db"
	"github.com/FreakPy/Banco-de-Dados/domain"
)

// Estimates retrieves all estimates with their client names resolved.
func (app *App) Estimates() ([]*domain.Estimate, error) {
	estimates, err := app.Repo.GetEstimates()
	if err != nil {
		return nil, fmt.Errorf("listing estimates : %w", err)
	}
	return estimates, nil
}

// CreateEstimate resolves the client by display name, generates a token,
// stamps the creation date and stores the new estimate.
func (app *App) CreateEstimate(clientName, kind, completion, deadline, serviceName string) (*domain.Estimate, error) {
	clientName = Sanitize(clientName)
	if err := validateName("cliente", clientName); err != nil {
		return nil, err
	}

	client, err := app.clientByName(clientName)
	if err != nil {
		return nil, err
	}

	estimate := &domain.Estimate{
		ClientToken: client.Token,
		ClientName:  client.Name,
		Kind:        Sanitize(kind),
		Completion:  Sanitize(completion),
		Deadline:    Sanitize(deadline),
		ServiceName: Sanitize(serviceName),
		CreatedAt:   time.Now(),
	}

	token, err := app.freeEstimateToken()
	if err != nil {
		return nil, err
	}
	estimate.Token = token

	if err := app.Repo.InsertEstimate(estimate); err != nil {
		return nil, fmt.Errorf("creating estimate : %w", err)
	}

	app.Logger.Info().Str("token", estimate.Token).Msg("estimate created")
	app.WriteLog("INFO", fmt.Sprintf("Orçamento %s cadastrado", estimate.Token),
		LogWithContext(map[string]any{"client": client.Token}))
	return estimate, nil
}

// UpdateEstimate updates the estimate identified by token. The owning client
// is left unchanged.
func (app *App) UpdateEstimate(token, kind, completion, deadline, serviceName string) (*domain.Estimate, error) {
	estimate := &domain.Estimate{
		Token:       token,
		Kind:        Sanitize(kind),
		Completion:  Sanitize(completion),
		Deadline:    Sanitize(deadline),
		ServiceName: Sanitize(serviceName),
	}

	current, err := app.estimateByToken(token)
	if err != nil {
		return nil, err
	}
	estimate.ClientToken = current.ClientToken

	if err := app.Repo.UpdateEstimate(estimate); err != nil {
		return nil, fmt.Errorf("updating estimate %s : %w", token, err)
	}

	app.Logger.Info().Str("token", token).Msg("estimate updated")
	app.WriteLog("INFO", fmt.Sprintf("Orçamento %s atualizado", token))
	return estimate, nil
}

// DeleteEstimate removes the estimate with the given token.
func (app *App) DeleteEstimate(token string) error {
	if err := app.Repo.DeleteEstimate(token); err != nil {
		return fmt.Errorf("deleting estimate %s : %w", token, err)
	}

	app.Logger.Info().Str("token", token).Msg("estimate deleted")
	app.WriteLog("INFO", fmt.Sprintf("Orçamento %s excluído", token))
	return nil
}

// clientByName finds the client with the exact display name, the way the
// estimate form references clients.
func (app *App) clientByName(name string) (*domain.Client, error) {
	clients, err := app.Repo.GetClients()
	if err != nil {
		return nil, fmt.Errorf("resolving client %q : %w", name, err)
	}
	for _, client := range clients {
		if client.Name == name {
			return client, nil
		}
	}
	return nil, &ValidationError{Field: "cliente", Reason: "cliente não encontrado"}
}

// estimateByToken finds a stored estimate by its token.
func (app *App) estimateByToken(token string) (*domain.Estimate, error) {
	estimates, err := app.Repo.GetEstimates()
	if err != nil {
		return nil, fmt.Errorf("resolving estimate %s : %w", token, err)
	}
	for _, estimate := range estimates {
		if estimate.Token == token {
			return estimate, nil
		}
	}
	return nil, db.ErrNoEstimateForToken
}

// freeEstimateToken generates a token not yet assigned to any estimate.
func (app *App) freeEstimateToken() (string, error) {
	estimates, err := app.Repo.GetEstimates()
	if err != nil {
		return "", fmt.Errorf("listing estimates for token generation : %w", err)
	}
	used := make(map[string]bool, len(estimates))
	for _, estimate := range estimates {
		used[estimate.Token] = true
	}

	for i := 0; i < tokenAttempts; i++ {
		token, err := NewEstimateToken()
		if err != nil {
			return "", fmt.Errorf("generating estimate token : %w", err)
		}
		if !used[token] {
			return token, nil
		}
	}
	return "", errors.New("exhausted attempts to generate a free estimate token")
}
