package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite"
)

const gamesSchema = `
    CREATE TABLE IF NOT EXISTS games (
      id INTEGER PRIMARY KEY AUTOINCREMENT,
      name TEXT,
      bucket TEXT,
      type TEXT,
      playercount TEXT,
      time TEXT,
      description TEXT
    );`

// OpenDB opens (and creates if needed) a sqlite catalog database.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(gamesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create games table: %w", err)
	}
	return db, nil
}

// SQLiteSource reads items from the games table in insertion order.
type SQLiteSource struct {
	DB *sql.DB
}

func (s SQLiteSource) Load(ctx context.Context) ([]Item, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT name, bucket, type, playercount, time, description
		FROM games ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var (
			it   Item
			cols [6]sql.NullString
		)
		if err := rows.Scan(&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5]); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		it.Name = cols[0].String
		it.Bucket = cols[1].String
		it.Type = cols[2].String
		it.PlayerCount = cols[3].String
		it.Time = cols[4].String
		it.Description = cols[5].String
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read games: %w", err)
	}
	return items, nil
}

func (s SQLiteSource) String() string { return "sqlite" }

// ImportSQLite replaces the games table with items, keeping their order.
func ImportSQLite(ctx context.Context, db *sql.DB, items []Item) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return fmt.Errorf("clear games: %w", err)
	}
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO games (name, bucket, type, playercount, time, description)
			VALUES (?, ?, ?, ?, ?, ?)`,
			it.Name, it.Bucket, it.Type, it.PlayerCount, it.Time, it.Description); err != nil {
			return fmt.Errorf("insert %q: %w", it.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}
