package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/FreakPy/Banco-de-Dados/domain"
)

var _ domain.EstimateRepository = (*Repository)(nil)

var (
	// ErrNoEstimateForToken is returned when an estimate is not found for a given token.
	ErrNoEstimateForToken = errors.New("no estimate exists for token")
)

// dbEstimate represents an estimate as stored in the database.
// ClientName is resolved from the client table at read time; a deleted
// client leaves the estimate behind with an empty name.
type dbEstimate struct {
	ID          int64     `db:"id"`           // Surrogate row id.
	Token       string    `db:"token"`        // Unique identifier token.
	ClientToken string    `db:"client_token"` // Token of the owning client.
	ClientName  string    `db:"client_name"`  // Resolved client name, reads only.
	Kind        string    `db:"kind"`         // Kind of work being estimated.
	Completion  string    `db:"completion"`   // Expected completion.
	Deadline    string    `db:"deadline"`     // Agreed deadline.
	ServiceName string    `db:"service_name"` // Name of the quoted service.
	CreatedAt   time.Time `db:"created_at"`   // Stamped at creation.
}

// toDomainEstimate converts a dbEstimate to a domain.Estimate.
func toDomainEstimate(dbEstimate *dbEstimate) *domain.Estimate {
	return &domain.Estimate{
		Token:       dbEstimate.Token,
		ClientToken: dbEstimate.ClientToken,
		ClientName:  dbEstimate.ClientName,
		Kind:        dbEstimate.Kind,
		Completion:  dbEstimate.Completion,
		Deadline:    dbEstimate.Deadline,
		ServiceName: dbEstimate.ServiceName,
		CreatedAt:   dbEstimate.CreatedAt,
	}
}

// GetEstimates retrieves all estimates in insertion order, with the client
// name resolved from the client table.
func (repo *Repository) GetEstimates() ([]*domain.Estimate, error) {
	var dbEstimates []*dbEstimate
	query := `SELECT e.id, e.token, e.client_token, COALESCE(c.name, '') AS client_name,
	                 e.kind, e.completion, e.deadline, e.service_name, e.created_at
	          FROM estimate e
	          LEFT JOIN client c ON c.token = e.client_token
	          ORDER BY e.id`

	err := repo.dbConn.Select(&dbEstimates, query)
	if err != nil {
		return nil, fmt.Errorf("retrieving estimates: %w", err)
	}

	domainEstimates := make([]*domain.Estimate, len(dbEstimates))
	for i, dbEstimate := range dbEstimates {
		domainEstimates[i] = toDomainEstimate(dbEstimate)
	}

	return domainEstimates, nil
}

// InsertEstimate saves a new estimate to the database.
func (repo *Repository) InsertEstimate(estimate *domain.Estimate) error {
	query := `INSERT INTO estimate(token, client_token, kind, completion, deadline, service_name, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := repo.dbConn.Exec(query, estimate.Token, estimate.ClientToken,
		estimate.Kind, estimate.Completion, estimate.Deadline,
		estimate.ServiceName, estimate.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting estimate %s: %w", estimate.Token, err)
	}

	return nil
}

// UpdateEstimate updates the estimate identified by estimate.Token.
func (repo *Repository) UpdateEstimate(estimate *domain.Estimate) error {
	query := `UPDATE estimate SET client_token = ?, kind = ?, completion = ?, deadline = ?, service_name = ?
	          WHERE token = ?`

	result, err := repo.dbConn.Exec(query, estimate.ClientToken, estimate.Kind,
		estimate.Completion, estimate.Deadline, estimate.ServiceName, estimate.Token)
	if err != nil {
		return fmt.Errorf("updating estimate %s: %w", estimate.Token, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update rows affected for %s: %w", estimate.Token, err)
	}

	if rowsAffected == 0 {
		return ErrNoEstimateForToken
	}

	return nil
}

// DeleteEstimate removes the estimate with the given token.
func (repo *Repository) DeleteEstimate(token string) error {
	query := `DELETE FROM estimate WHERE token = ?`

	result, err := repo.dbConn.Exec(query, token)
	if err != nil {
		return fmt.Errorf("deleting estimate %s: %w", token, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deletion rows affected for %s: %w", token, err)
	}

	if rowsAffected == 0 {
		return ErrNoEstimateForToken
	}

	return nil
}
