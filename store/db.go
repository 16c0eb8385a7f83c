package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/pauladam94/Stars-Gapa/game"
)

// Repository keeps card catalogs in sqlite. Every card is stored as its
// catalog text so it is parsed by the same grammar as catalog files.
type Repository struct {
	Db *sql.DB
}

func Open(path string) (*Repository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	repo, err := NewRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func NewRepository(db *sql.DB) (*Repository, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS card (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			body TEXT NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("error creating schema: %w", err)
	}
	return &Repository{Db: db}, nil
}

func (repo *Repository) Close() error { return repo.Db.Close() }

type Card struct {
	Id   int64
	Name string
	Body string
}

func (repo *Repository) DeleteCard(ctx context.Context, name string) error {
	return repo.execWrap(ctx, "DELETE FROM card WHERE name = ? COLLATE NOCASE", name)
}

// FindCardByName returns the stored card, or nil when there is none.
func (repo *Repository) FindCardByName(ctx context.Context, name string) (*Card, error) {
	row := repo.Db.QueryRowContext(ctx, "SELECT id, name, body FROM card WHERE name = ? COLLATE NOCASE LIMIT 1", name)
	var card Card
	if err := row.Scan(&card.Id, &card.Name, &card.Body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding card %q: %w", name, err)
	}
	return &card, nil
}

func (repo *Repository) ListCards(ctx context.Context) ([]Card, error) {
	rows, err := repo.Db.QueryContext(ctx, "SELECT id, name, body FROM card ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	defer rows.Close()
	cards := []Card{}
	for rows.Next() {
		var card Card
		if err := rows.Scan(&card.Id, &card.Name, &card.Body); err != nil {
			return nil, fmt.Errorf("error scanning card: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// ImportCatalog stores every card of the catalog in one transaction.
func (repo *Repository) ImportCatalog(ctx context.Context, catalog *game.Catalog) error {
	tx, err := repo.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()
	for _, e := range catalog.Entries() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO card(name, body) VALUES(?, ?)
			ON CONFLICT(name) DO UPDATE SET body = excluded.body
		`, e.Card.Name(), e.Text)
		if err != nil {
			return fmt.Errorf("error saving %q: %w", e.Card.Name(), err)
		}
	}
	return tx.Commit()
}

// LoadCatalog parses every stored card into a catalog.
func (repo *Repository) LoadCatalog(ctx context.Context) (*game.Catalog, error) {
	cards, err := repo.ListCards(ctx)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(cards))
	for i, c := range cards {
		texts[i] = c.Body
	}
	return game.ParseCatalog(texts...)
}

func (repo *Repository) execWrap(ctx context.Context, query string, args ...any) error {
	if _, err := repo.Db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error in db execution: %w", err)
	}
	return nil
}
