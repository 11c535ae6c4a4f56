package credstore

import (
	"context"
	"database/sql"
	"fmt"

	"eventdesk/internal/domain"
)

const (
	keyToken  = "token"
	keyUserID = "user_id"
	keyRole   = "role"
)

// SQLiteStore implements Store on a string key-value table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// InitSchema creates the credential table and enables WAL mode.
func InitSchema(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("enable WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS credential (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create credential table: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (domain.Credentials, error) {
	query := `SELECT key, value FROM credential WHERE key IN (?, ?, ?)`
	rows, err := s.db.QueryContext(ctx, query, keyToken, keyUserID, keyRole)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("load credentials: %w", err)
	}
	defer rows.Close()

	var creds domain.Credentials
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return domain.Credentials{}, fmt.Errorf("scan credential: %w", err)
		}
		switch key {
		case keyToken:
			creds.Token = value
		case keyUserID:
			creds.UserID = value
		case keyRole:
			// A stored role outside the closed set comes back as
			// RoleUnknown and the route guard fails closed on it.
			creds.Role = domain.ParseRole(value)
		}
	}

	return creds, rows.Err()
}

// Save writes all three fields in one transaction, so readers never
// observe a partial credential set.
func (s *SQLiteStore) Save(ctx context.Context, creds domain.Credentials) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO credential (key, value) VALUES (?, ?)
	          ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	pairs := [][2]string{
		{keyToken, creds.Token},
		{keyUserID, creds.UserID},
		{keyRole, string(creds.Role)},
	}
	for _, p := range pairs {
		if _, err = tx.ExecContext(ctx, query, p[0], p[1]); err != nil {
			return fmt.Errorf("save credential %q: %w", p[0], err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	query := `DELETE FROM credential WHERE key IN (?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, keyToken, keyUserID, keyRole); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
