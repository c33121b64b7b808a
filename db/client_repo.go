package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/FreakPy/Banco-de-Dados/domain"
)

var _ domain.ClientRepository = (*Repository)(nil)

var (
	// ErrNoClientForToken is returned when a client is not found for a given token.
	ErrNoClientForToken = errors.New("no client exists for token")
)

// dbClient represents a client record as stored in the database.
type dbClient struct {
	ID           int64     `db:"id"`            // Surrogate row id, never exposed outside this package.
	Token        string    `db:"token"`         // Unique identifier token.
	Name         string    `db:"name"`          // Display name.
	Email        string    `db:"email"`         // Optional email address.
	Phone        string    `db:"phone"`         // Optional formatted phone number.
	Observation  string    `db:"observation"`   // Optional free-form notes.
	RegisteredAt time.Time `db:"registered_at"` // Stamped at creation.
}

// toDomainClient converts a dbClient to a domain.Client.
func toDomainClient(dbClient *dbClient) *domain.Client {
	return &domain.Client{
		Token:        dbClient.Token,
		Name:         dbClient.Name,
		Email:        dbClient.Email,
		Phone:        dbClient.Phone,
		Observation:  dbClient.Observation,
		RegisteredAt: dbClient.RegisteredAt,
	}
}

// GetClients retrieves all client records in insertion order.
func (repo *Repository) GetClients() ([]*domain.Client, error) {
	var dbClients []*dbClient
	query := `SELECT id, token, name, email, phone, observation, registered_at
	          FROM client ORDER BY id`

	err := repo.dbConn.Select(&dbClients, query)
	if err != nil {
		return nil, fmt.Errorf("retrieving clients: %w", err)
	}

	domainClients := make([]*domain.Client, len(dbClients))
	for i, dbClient := range dbClients {
		domainClients[i] = toDomainClient(dbClient)
	}

	return domainClients, nil
}

// GetClient retrieves the client with the given token.
func (repo *Repository) GetClient(token string) (*domain.Client, error) {
	var dbClient dbClient
	query := `SELECT id, token, name, email, phone, observation, registered_at
	          FROM client WHERE token = ?`

	err := repo.dbConn.Get(&dbClient, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoClientForToken
		}
		return nil, fmt.Errorf("retrieving client %s: %w", token, err)
	}

	return toDomainClient(&dbClient), nil
}

// InsertClient saves a new client record to the database.
func (repo *Repository) InsertClient(client *domain.Client) error {
	query := `INSERT INTO client(token, name, email, phone, observation, registered_at)
	          VALUES (?, ?, ?, ?, ?, ?)`

	_, err := repo.dbConn.Exec(query, client.Token, client.Name, client.Email,
		client.Phone, client.Observation, client.RegisteredAt)
	if err != nil {
		return fmt.Errorf("inserting client %s: %w", client.Token, err)
	}

	return nil
}

// UpdateClient updates the mutable fields of the client identified by client.Token.
// The token and the registration date are left untouched.
func (repo *Repository) UpdateClient(client *domain.Client) error {
	query := `UPDATE client SET name = ?, email = ?, phone = ?, observation = ?
	          WHERE token = ?`

	result, err := repo.dbConn.Exec(query, client.Name, client.Email,
		client.Phone, client.Observation, client.Token)
	if err != nil {
		return fmt.Errorf("updating client %s: %w", client.Token, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update rows affected for %s: %w", client.Token, err)
	}

	if rowsAffected == 0 {
		return ErrNoClientForToken
	}

	return nil
}

// DeleteClient removes the client with the given token.
func (repo *Repository) DeleteClient(token string) error {
	query := `DELETE FROM client WHERE token = ?`

	result, err := repo.dbConn.Exec(query, token)
	if err != nil {
		return fmt.Errorf("deleting client %s: %w", token, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deletion rows affected for %s: %w", token, err)
	}

	if rowsAffected == 0 {
		return ErrNoClientForToken
	}

	return nil
}
