package domain

import "github.com/google/uuid"

// ServiceRepository defines the interface for managing the catalog of
// billable services.
type ServiceRepository interface {
	// GetServices retrieves all catalog entries from the repository.
	GetServices() ([]*Service, error)

	// GetService retrieves the service with the given ID.
	GetService(id uuid.UUID) (*Service, error)

	// InsertService saves a new catalog entry to the repository.
	InsertService(service *Service) error

	// UpdateService updates the catalog entry identified by service.ID.
	UpdateService(service *Service) error

	// DeleteService removes the catalog entry with the given ID.
	// It returns an error if no service exists for that ID.
	DeleteService(id uuid.UUID) error
}

// Service represents a priced, categorized catalog entry.
// Prices are stored as integer centavos to avoid floating point drift;
// formatting into currency text is a presentation concern.
type Service struct {
	ID          uuid.UUID // Row identity, generated at creation.
	Name        string    // Display name, never empty.
	Unit        string    // Billing unit, one of the configured unit set.
	PriceCents  int64     // Price in centavos.
	ServiceType string    // Category label, drawn from the configured category list.
}
