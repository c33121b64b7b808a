package db

import (
	"os"
	"testing"
	"time"

	"github.com/FreakPy/Banco-de-Dados/domain"
	"github.com/google/uuid"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	tempFile, err := os.CreateTemp(t.TempDir(), "test_*.db")
	if err != nil {
		t.Fatalf("os.CreateTemp() failed: %v", err)
	}
	tempFile.Close()

	dbConn, err := New(tempFile.Name())
	if err != nil {
		t.Fatalf("db.New() failed: %v", err)
	}

	repo := NewRegistryRepo(dbConn)

	teardown := func() {
		repo.Close()
		os.Remove(tempFile.Name())
	}

	return repo, teardown
}

func testClient(t *testing.T, repo *Repository, token string, name string) *domain.Client {
	t.Helper()

	client := &domain.Client{
		Token:        token,
		Name:         name,
		Email:        "contact@example.com",
		Phone:        "(11) 9 9123-4567",
		Observation:  "prefers email",
		RegisteredAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	err := repo.InsertClient(client)
	if err != nil {
		t.Fatalf("inserting client: %v", err)
	}
	return client
}

func testService(t *testing.T, repo *Repository, name string, serviceType string) *domain.Service {
	t.Helper()

	id, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("creating uuid: %v", err)
	}

	service := &domain.Service{
		ID:          id,
		Name:        name,
		Unit:        "h",
		PriceCents:  15000,
		ServiceType: serviceType,
	}

	err = repo.InsertService(service)
	if err != nil {
		t.Fatalf("inserting service: %v", err)
	}
	return service
}

func testEstimate(t *testing.T, repo *Repository, token string, clientToken string) *domain.Estimate {
	t.Helper()

	estimate := &domain.Estimate{
		Token:       token,
		ClientToken: clientToken,
		Kind:        "renovation",
		Completion:  "15/10/2025",
		Deadline:    "30/10/2025",
		ServiceName: "Pintura",
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}

	err := repo.InsertEstimate(estimate)
	if err != nil {
		t.Fatalf("inserting estimate: %v", err)
	}
	return estimate
}
