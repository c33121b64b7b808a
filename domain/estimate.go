package domain

import "time"

// EstimateRepository defines the interface for managing job estimates.
type EstimateRepository interface {
	// GetEstimates retrieves all estimates from the repository.
	GetEstimates() ([]*Estimate, error)

	// InsertEstimate saves a new estimate to the repository.
	InsertEstimate(estimate *Estimate) error

	// UpdateEstimate updates the estimate identified by estimate.Token.
	UpdateEstimate(estimate *Estimate) error

	// DeleteEstimate removes the estimate with the given token.
	// It returns an error if no estimate exists for that token.
	DeleteEstimate(token string) error
}

// Estimate represents a job estimate issued for a client.
// Like clients, estimates carry a short human-readable token (e.g. "ART-3194")
// generated at creation time. The estimate references the client by its token;
// the client name shown in listings is resolved at read time.
type Estimate struct {
	Token       string    // Unique identifier token, immutable once created.
	ClientToken string    // Token of the client this estimate belongs to.
	ClientName  string    // Resolved client name, populated on reads only.
	Kind        string    // Kind of work being estimated.
	Completion  string    // Expected completion, free-form date text.
	Deadline    string    // Agreed deadline, free-form date text.
	ServiceName string    // Name of the catalog service being quoted.
	CreatedAt   time.Time // Stamped at creation, immutable.
}
