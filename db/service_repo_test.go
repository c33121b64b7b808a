package db

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestServiceRepo_GetServices(t *testing.T) {
	t.Run("should return an empty service slice if the catalog is empty", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		services, err := repo.GetServices()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if len(services) != 0 {
			t.Fatalf("\nwanted:\n0\ngot:\n%d", len(services))
		}
	})

	t.Run("should return all the services ordered by name", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		testService(t, repo, "Pintura", "Reforma")
		testService(t, repo, "Elétrica", "Instalação")

		got, err := repo.GetServices()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if len(got) != 2 {
			t.Fatalf("\nwanted:\n2\ngot:\n%d", len(got))
		}

		if got[0].Name != "Elétrica" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "Elétrica", got[0].Name)
		}
		if got[1].Name != "Pintura" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "Pintura", got[1].Name)
		}
	})
}

func TestServiceRepo_GetService(t *testing.T) {
	t.Run("should return the stored service with all fields intact", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		want := testService(t, repo, "Pintura", "Reforma")

		got, err := repo.GetService(want.ID)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if got.Name != want.Name {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", want.Name, got.Name)
		}
		if got.Unit != want.Unit {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", want.Unit, got.Unit)
		}
		if got.PriceCents != want.PriceCents {
			t.Fatalf("\nwanted:\n%d\ngot:\n%d", want.PriceCents, got.PriceCents)
		}
		if got.ServiceType != want.ServiceType {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", want.ServiceType, got.ServiceType)
		}
	})

	t.Run("should return ErrNoServiceForID for an unknown id", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		id, err := uuid.NewV7()
		if err != nil {
			t.Fatalf("creating uuid: %v", err)
		}

		_, err = repo.GetService(id)
		if !errors.Is(err, ErrNoServiceForID) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrNoServiceForID, err)
		}
	})
}

func TestServiceRepo_UpdateService(t *testing.T) {
	t.Run("should update the service row identified by its id", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		service := testService(t, repo, "Pintura", "Reforma")

		service.Name = "Pintura Externa"
		service.Unit = "m²"
		service.PriceCents = 2500
		service.ServiceType = "Acabamento"

		err := repo.UpdateService(service)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		got, err := repo.GetService(service.ID)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if got.Name != "Pintura Externa" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "Pintura Externa", got.Name)
		}
		if got.PriceCents != 2500 {
			t.Fatalf("\nwanted:\n2500\ngot:\n%d", got.PriceCents)
		}
	})

	t.Run("should return ErrNoServiceForID when updating an unknown service", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		service := testService(t, repo, "Pintura", "Reforma")

		id, err := uuid.NewV7()
		if err != nil {
			t.Fatalf("creating uuid: %v", err)
		}
		service.ID = id

		err = repo.UpdateService(service)
		if !errors.Is(err, ErrNoServiceForID) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrNoServiceForID, err)
		}
	})
}

func TestServiceRepo_DeleteService(t *testing.T) {
	t.Run("should remove exactly the service with the given id", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		first := testService(t, repo, "Pintura", "Reforma")
		testService(t, repo, "Elétrica", "Instalação")

		err := repo.DeleteService(first.ID)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		got, err := repo.GetServices()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if len(got) != 1 {
			t.Fatalf("\nwanted:\n1\ngot:\n%d", len(got))
		}
		if got[0].Name != "Elétrica" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "Elétrica", got[0].Name)
		}
	})

	t.Run("should return ErrNoServiceForID when deleting an unknown service", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		id, err := uuid.NewV7()
		if err != nil {
			t.Fatalf("creating uuid: %v", err)
		}

		err = repo.DeleteService(id)
		if !errors.Is(err, ErrNoServiceForID) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrNoServiceForID, err)
		}
	})
}
