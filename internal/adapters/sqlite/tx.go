package sqlite

import (
	"context"
	"database/sql"
	"strconv"

	"clubhub/internal/domain"
)

// deckTx wraps a transaction for atomic deck snapshots
type deckTx struct {
	tx *sql.Tx
}

func (s *Store) beginTx(ctx context.Context) (*deckTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &deckTx{tx: tx}, nil
}

// inTx runs fn in a transaction, committing only when fn succeeds
func (s *Store) inTx(ctx context.Context, fn func(tx *deckTx) error) error {
	tx, err := s.beginTx(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.rollback()
		return err
	}
	return tx.commit()
}

// writeDeck stores the spots and the position metadata of deck
func (t *deckTx) writeDeck(ctx context.Context, deck domain.Deck) error {
	if err := t.replaceSpots(ctx, deck.Spots); err != nil {
		return err
	}
	meta := map[string]string{
		"schema_version": schemaVersion,
		"top":            strconv.Itoa(deck.Top),
		"last_id":        strconv.FormatInt(deck.LastID, 10),
	}
	for k, v := range meta {
		if err := t.setMeta(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

// appendSwipe adds an entry to the swipe log
func (t *deckTx) appendSwipe(ctx context.Context, swipe domain.Swipe) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO swipes (spot_id, name, type, url, direction, session_id, swiped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, swipe.Spot.ID, swipe.Spot.Name, swipe.Spot.Type, swipe.Spot.URL,
		swipe.Direction.String(), swipe.SessionID, swipe.At.UnixNano())
	return err
}

// replaceSpots rewrites the spots table with spots in order
func (t *deckTx) replaceSpots(ctx context.Context, spots []domain.Spot) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM spots`); err != nil {
		return err
	}

	stmt, err := t.tx.PrepareContext(ctx, `
		INSERT INTO spots (position, id, name, type, url)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, sp := range spots {
		if _, err := stmt.ExecContext(ctx, i, sp.ID, sp.Name, sp.Type, sp.URL); err != nil {
			return err
		}
	}
	return nil
}

// setMeta inserts or updates a metadata key
func (t *deckTx) setMeta(ctx context.Context, key, value string) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)
	`, key, value)
	return err
}

// commit commits the transaction
func (t *deckTx) commit() error {
	return t.tx.Commit()
}

// rollback aborts the transaction
func (t *deckTx) rollback() error {
	return t.tx.Rollback()
}
