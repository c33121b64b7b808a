// Package db provides the database layer for the Cadastro application.
// It encapsulates all interactions with the underlying SQLite database,
// managing data persistence for clients, the service catalog, estimates and
// the activity log.
//
// This package is responsible for:
// - Establishing and managing the database connection (`db.go`).
// - Defining database-specific data structures that map to SQL table schemas.
// - Implementing the repository interfaces from the `domain` package
//   (e.g. `ClientRepository`, `ServiceRepository`) to perform CRUD operations.
// - Handling data conversion between domain structs and database-friendly
//   structs.
// - Managing database migrations (`migrations/`).
// - Providing common database utility types (`types.go`).
package db
