package migrations

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"math/big"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

func init() {
	goose.AddMigrationContext(upBackfillClientTokens, downBackfillClientTokens)
}

// Registry files created by early builds stored clients without a token
// column value. Every client row must carry a unique token before the
// unique index can be created.
func upBackfillClientTokens(ctx context.Context, tx *sql.Tx) error {
	used := make(map[string]bool)

	rows, err := tx.Query("SELECT token FROM client WHERE token != ''")
	if err != nil {
		return fmt.Errorf("getting existing tokens: %w", err)
	}
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			rows.Close()
			return fmt.Errorf("scanning token: %w", err)
		}
		used[token] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating tokens: %w", err)
	}

	rows, err = tx.Query("SELECT id FROM client WHERE token = ''")
	if err != nil {
		return fmt.Errorf("getting rows without tokens: %w", err)
	}
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scanning row id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	for _, id := range ids {
		token, err := freshToken(used)
		if err != nil {
			return fmt.Errorf("generating token for row %d: %w", id, err)
		}
		used[token] = true
		_, err = tx.Exec("UPDATE client SET token = ? WHERE id = ?", token, id)
		if err != nil {
			return fmt.Errorf("updating row %d: %w", id, err)
		}
	}

	_, err = tx.Exec("CREATE UNIQUE INDEX idx_client_token ON client(token)")
	if err != nil {
		return fmt.Errorf("creating unique token index: %w", err)
	}
	return nil
}

func downBackfillClientTokens(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.Exec("DROP INDEX idx_client_token")
	if err != nil {
		return fmt.Errorf("dropping unique token index: %w", err)
	}
	return nil
}

// freshToken generates an "AUT-NNNN" token not present in used.
// The keyspace is small; with the handful of rows a registry file holds
// in practice this terminates immediately.
func freshToken(used map[string]bool) (string, error) {
	for {
		n, err := rand.Int(rand.Reader, big.NewInt(9000))
		if err != nil {
			return "", fmt.Errorf("reading random int: %w", err)
		}
		token := fmt.Sprintf("AUT-%d", n.Int64()+1000)
		if !used[token] {
			return token, nil
		}
	}
}
