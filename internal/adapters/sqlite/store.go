package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"clubhub/internal/domain"
	"clubhub/internal/ports"
)

const schemaVersion = "1"

// Store implements ports.DeckRepository using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements DeckRepository
var _ ports.DeckRepository = (*Store)(nil)

// Open opens (creating if needed) the deck database at dbPath
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS spots (
			position INTEGER PRIMARY KEY,
			id INTEGER NOT NULL UNIQUE,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			url TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS swipes (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			spot_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			url TEXT NOT NULL,
			direction TEXT NOT NULL,
			session_id TEXT NOT NULL,
			swiped_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash BLOB NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_swipes_direction ON swipes(direction);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the saved deck, or ok == false when none was saved yet
func (s *Store) Load(ctx context.Context) (domain.Deck, bool, error) {
	meta, err := s.readMeta(ctx)
	if err != nil {
		return domain.Deck{}, false, err
	}
	if meta["schema_version"] == "" {
		return domain.Deck{}, false, nil
	}
	if meta["schema_version"] != schemaVersion {
		return domain.Deck{}, false, fmt.Errorf("unsupported schema version %q", meta["schema_version"])
	}

	top, err := strconv.Atoi(meta["top"])
	if err != nil {
		return domain.Deck{}, false, fmt.Errorf("invalid top position: %w", err)
	}
	lastID, err := strconv.ParseInt(meta["last_id"], 10, 64)
	if err != nil {
		return domain.Deck{}, false, fmt.Errorf("invalid last id: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type, url
		FROM spots ORDER BY position
	`)
	if err != nil {
		return domain.Deck{}, false, err
	}
	defer rows.Close()

	var spots []domain.Spot
	for rows.Next() {
		var sp domain.Spot
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Type, &sp.URL); err != nil {
			return domain.Deck{}, false, err
		}
		spots = append(spots, sp)
	}
	if err := rows.Err(); err != nil {
		return domain.Deck{}, false, err
	}

	deck := domain.NewDeck(spots, lastID)
	deck.Top = min(max(top, 0), deck.Len())
	return deck, true, nil
}

// Save replaces the stored deck in a single transaction
func (s *Store) Save(ctx context.Context, deck domain.Deck) error {
	return s.inTx(ctx, func(tx *deckTx) error {
		return tx.writeDeck(ctx, deck)
	})
}

// SaveSwipe replaces the stored deck and appends swipe to the log in a
// single transaction
func (s *Store) SaveSwipe(ctx context.Context, deck domain.Deck, swipe domain.Swipe) error {
	return s.inTx(ctx, func(tx *deckTx) error {
		if err := tx.writeDeck(ctx, deck); err != nil {
			return err
		}
		return tx.appendSwipe(ctx, swipe)
	})
}

// ListSwipes returns swipes in the given direction, newest first.
// DirectionNone returns every swipe.
func (s *Store) ListSwipes(ctx context.Context, dir domain.Direction) ([]domain.Swipe, error) {
	query := `
		SELECT spot_id, name, type, url, direction, session_id, swiped_at
		FROM swipes`
	var args []any
	if dir != domain.DirectionNone {
		query += ` WHERE direction = ?`
		args = append(args, dir.String())
	}
	query += ` ORDER BY seq DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var swipes []domain.Swipe
	for rows.Next() {
		var sw domain.Swipe
		var direction string
		var at int64
		if err := rows.Scan(&sw.Spot.ID, &sw.Spot.Name, &sw.Spot.Type, &sw.Spot.URL, &direction, &sw.SessionID, &at); err != nil {
			return nil, err
		}
		if sw.Direction, err = domain.ParseDirection(direction); err != nil {
			return nil, err
		}
		sw.At = time.Unix(0, at).UTC()
		swipes = append(swipes, sw)
	}

	return swipes, rows.Err()
}

func (s *Store) readMeta(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM meta`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		meta[k] = v
	}
	return meta, rows.Err()
}

func expandHome(path string) (string, error) {
	if path == "" {
		return "", errors.New("database path is required")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}
