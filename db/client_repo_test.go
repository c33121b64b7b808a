package db

import (
	"errors"
	"testing"
)

func TestClientRepo_GetClients(t *testing.T) {
	t.Run("should return an empty client slice if there are none stored", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		clients, err := repo.GetClients()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if len(clients) != 0 {
			t.Fatalf("\nwanted:\n0\ngot:\n%d", len(clients))
		}
	})

	t.Run("should return all the clients in insertion order", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		first := testClient(t, repo, "AUT-1001", "Ana Souza")
		second := testClient(t, repo, "AUT-1002", "Bruno Lima")

		got, err := repo.GetClients()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if len(got) != 2 {
			t.Fatalf("\nwanted:\n2\ngot:\n%d", len(got))
		}

		if got[0].Token != first.Token {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", first.Token, got[0].Token)
		}
		if got[1].Token != second.Token {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", second.Token, got[1].Token)
		}
	})
}

func TestClientRepo_GetClient(t *testing.T) {
	t.Run("should return the stored client with all fields intact", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		want := testClient(t, repo, "AUT-4821", "Carla Mendes")

		got, err := repo.GetClient("AUT-4821")
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if got.Name != want.Name {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", want.Name, got.Name)
		}
		if got.Email != want.Email {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", want.Email, got.Email)
		}
		if got.Phone != want.Phone {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", want.Phone, got.Phone)
		}
		if got.Observation != want.Observation {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", want.Observation, got.Observation)
		}
		if !got.RegisteredAt.Equal(want.RegisteredAt) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", want.RegisteredAt, got.RegisteredAt)
		}
	})

	t.Run("should return ErrNoClientForToken for an unknown token", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		_, err := repo.GetClient("AUT-9999")
		if !errors.Is(err, ErrNoClientForToken) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrNoClientForToken, err)
		}
	})
}

func TestClientRepo_InsertClient(t *testing.T) {
	t.Run("should reject a second client with the same token", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		first := testClient(t, repo, "AUT-1001", "Ana Souza")

		duplicate := *first
		duplicate.Name = "Outra Ana"
		err := repo.InsertClient(&duplicate)
		if err == nil {
			t.Fatalf("\nwanted:\nunique constraint error\ngot:\nnil")
		}
	})
}

func TestClientRepo_UpdateClient(t *testing.T) {
	t.Run("should update the mutable fields and keep token and date", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		client := testClient(t, repo, "AUT-1001", "Ana Souza")

		client.Name = "Ana Souza Filho"
		client.Email = "ana@example.com"
		client.Phone = "(21) 9 8888-0000"
		client.Observation = "updated"

		err := repo.UpdateClient(client)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		got, err := repo.GetClient("AUT-1001")
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if got.Name != "Ana Souza Filho" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "Ana Souza Filho", got.Name)
		}
		if !got.RegisteredAt.Equal(client.RegisteredAt) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", client.RegisteredAt, got.RegisteredAt)
		}
	})

	t.Run("should return ErrNoClientForToken when updating an unknown client", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		client := testClient(t, repo, "AUT-1001", "Ana Souza")
		client.Token = "AUT-9999"

		err := repo.UpdateClient(client)
		if !errors.Is(err, ErrNoClientForToken) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrNoClientForToken, err)
		}
	})
}

func TestClientRepo_DeleteClient(t *testing.T) {
	t.Run("should remove exactly the client with the given token", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		testClient(t, repo, "AUT-1001", "Ana Souza")
		testClient(t, repo, "AUT-1002", "Bruno Lima")

		err := repo.DeleteClient("AUT-1001")
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		got, err := repo.GetClients()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if len(got) != 1 {
			t.Fatalf("\nwanted:\n1\ngot:\n%d", len(got))
		}
		if got[0].Token != "AUT-1002" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "AUT-1002", got[0].Token)
		}
	})

	t.Run("should return ErrNoClientForToken when deleting an unknown client", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()

		err := repo.DeleteClient("AUT-9999")
		if !errors.Is(err, ErrNoClientForToken) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrNoClientForToken, err)
		}
	})
}
