package db

import (
	"errors"
	"testing"
)

func TestEstimateRepo_GetEstimates(t *testing.T) {
	t.Run("should return an empty estimate slice if there are none stored", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		estimates, err := repo.GetEstimates()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if len(estimates) != 0 {
			t.Fatalf("\nwanted:\n0\ngot:\n%d", len(estimates))
		}
	})

	t.Run("should resolve the client name from the client table", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		testClient(t, repo, "AUT-1001", "Ana Souza")
		testEstimate(t, repo, "ART-2001", "AUT-1001")

		got, err := repo.GetEstimates()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if len(got) != 1 {
			t.Fatalf("\nwanted:\n1\ngot:\n%d", len(got))
		}
		if got[0].ClientName != "Ana Souza" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "Ana Souza", got[0].ClientName)
		}
	})

	t.Run("should keep the estimate with an empty client name after the client is gone", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		testClient(t, repo, "AUT-1001", "Ana Souza")
		testEstimate(t, repo, "ART-2001", "AUT-1001")

		err := repo.DeleteClient("AUT-1001")
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		got, err := repo.GetEstimates()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if len(got) != 1 {
			t.Fatalf("\nwanted:\n1\ngot:\n%d", len(got))
		}
		if got[0].ClientName != "" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "", got[0].ClientName)
		}
	})
}

func TestEstimateRepo_UpdateEstimate(t *testing.T) {
	t.Run("should update the estimate identified by its token", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		testClient(t, repo, "AUT-1001", "Ana Souza")
		estimate := testEstimate(t, repo, "ART-2001", "AUT-1001")

		estimate.Kind = "maintenance"
		estimate.Deadline = "01/12/2025"

		err := repo.UpdateEstimate(estimate)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		got, err := repo.GetEstimates()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if got[0].Kind != "maintenance" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "maintenance", got[0].Kind)
		}
		if got[0].Deadline != "01/12/2025" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "01/12/2025", got[0].Deadline)
		}
	})

	t.Run("should return ErrNoEstimateForToken when updating an unknown estimate", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		estimate := testEstimate(t, repo, "ART-2001", "AUT-1001")
		estimate.Token = "ART-9999"

		err := repo.UpdateEstimate(estimate)
		if !errors.Is(err, ErrNoEstimateForToken) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrNoEstimateForToken, err)
		}
	})
}

func TestEstimateRepo_DeleteEstimate(t *testing.T) {
	t.Run("should remove exactly the estimate with the given token", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		testEstimate(t, repo, "ART-2001", "AUT-1001")
		testEstimate(t, repo, "ART-2002", "AUT-1001")

		err := repo.DeleteEstimate("ART-2001")
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		got, err := repo.GetEstimates()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if len(got) != 1 {
			t.Fatalf("\nwanted:\n1\ngot:\n%d", len(got))
		}
		if got[0].Token != "ART-2002" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "ART-2002", got[0].Token)
		}
	})

	t.Run("should return ErrNoEstimateForToken when deleting an unknown estimate", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		err := repo.DeleteEstimate("ART-9999")
		if !errors.Is(err, ErrNoEstimateForToken) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrNoEstimateForToken, err)
		}
	})
}
