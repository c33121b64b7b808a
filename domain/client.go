package domain

import "time"

// ClientRepository defines the interface for managing client records.
type ClientRepository interface {
	// GetClients retrieves all client records from the repository.
	GetClients() ([]*Client, error)

	// GetClient retrieves the client with the given token.
	GetClient(token string) (*Client, error)

	// InsertClient saves a new client record to the repository.
	// The client's token must be unique across all stored clients.
	InsertClient(client *Client) error

	// UpdateClient updates the mutable fields (name, email, phone,
	// observation) of the client identified by client.Token.
	// The token and the registration date are never changed.
	UpdateClient(client *Client) error

	// DeleteClient removes the client with the given token.
	// It returns an error if no client exists for that token.
	DeleteClient(token string) error
}

// Client represents a single client record with its contact fields.
// A client is identified by a short human-readable token (e.g. "AUT-4821")
// that is generated once at creation time and never changes afterwards.
type Client struct {
	Token        string    // Unique identifier token, immutable once created.
	Name         string    // Display name, never empty.
	Email        string    // Optional email address, validated when present.
	Phone        string    // Optional phone number, stored as formatted text.
	Observation  string    // Optional free-form notes.
	RegisteredAt time.Time // Stamped at creation, immutable.
}
