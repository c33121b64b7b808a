package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/FreakPy/Banco-de-Dados/domain"
	"github.com/google/uuid"
)

var _ domain.ServiceRepository = (*Repository)(nil)

var (
	// ErrNoServiceForID is returned when a service is not found for a given ID.
	ErrNoServiceForID = errors.New("no service exists for id")
)

// dbService represents a catalog entry as stored in the database.
type dbService struct {
	ID          uuid.UUID `db:"id"`           // Row identity.
	Name        string    `db:"name"`         // Display name.
	Unit        string    `db:"unit"`         // Billing unit.
	PriceCents  int64     `db:"price_cents"`  // Price in centavos.
	ServiceType string    `db:"service_type"` // Category label.
}

// toDomainService converts a dbService to a domain.Service.
func toDomainService(dbService *dbService) *domain.Service {
	return &domain.Service{
		ID:          dbService.ID,
		Name:        dbService.Name,
		Unit:        dbService.Unit,
		PriceCents:  dbService.PriceCents,
		ServiceType: dbService.ServiceType,
	}
}

// GetServices retrieves all catalog entries ordered by name.
func (repo *Repository) GetServices() ([]*domain.Service, error) {
	var dbServices []*dbService
	query := `SELECT id, name, unit, price_cents, service_type
	          FROM service ORDER BY name`

	err := repo.dbConn.Select(&dbServices, query)
	if err != nil {
		return nil, fmt.Errorf("retrieving services: %w", err)
	}

	domainServices := make([]*domain.Service, len(dbServices))
	for i, dbService := range dbServices {
		domainServices[i] = toDomainService(dbService)
	}

	return domainServices, nil
}

// GetService retrieves the service with the given ID.
func (repo *Repository) GetService(id uuid.UUID) (*domain.Service, error) {
	var dbService dbService
	query := `SELECT id, name, unit, price_cents, service_type
	          FROM service WHERE id = ?`

	err := repo.dbConn.Get(&dbService, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoServiceForID
		}
		return nil, fmt.Errorf("retrieving service %s: %w", id, err)
	}

	return toDomainService(&dbService), nil
}

// InsertService saves a new catalog entry to the database.
func (repo *Repository) InsertService(service *domain.Service) error {
	query := `INSERT INTO service(id, name, unit, price_cents, service_type)
	          VALUES (?, ?, ?, ?, ?)`

	_, err := repo.dbConn.Exec(query, service.ID, service.Name, service.Unit,
		service.PriceCents, service.ServiceType)
	if err != nil {
		return fmt.Errorf("inserting service %s: %w", service.ID, err)
	}

	return nil
}

// UpdateService updates the catalog entry identified by service.ID.
func (repo *Repository) UpdateService(service *domain.Service) error {
	query := `UPDATE service SET name = ?, unit = ?, price_cents = ?, service_type = ?
	          WHERE id = ?`

	result, err := repo.dbConn.Exec(query, service.Name, service.Unit,
		service.PriceCents, service.ServiceType, service.ID)
	if err != nil {
		return fmt.Errorf("updating service %s: %w", service.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update rows affected for %s: %w", service.ID, err)
	}

	if rowsAffected == 0 {
		return ErrNoServiceForID
	}

	return nil
}

// DeleteService removes the catalog entry with the given ID.
func (repo *Repository) DeleteService(id uuid.UUID) error {
	query := `DELETE FROM service WHERE id = ?`

	result, err := repo.dbConn.Exec(query, id)
	if err != nil {
		return fmt.Errorf("deleting service %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deletion rows affected for %s: %w", id, err)
	}

	if rowsAffected == 0 {
		return ErrNoServiceForID
	}

	return nil
}
