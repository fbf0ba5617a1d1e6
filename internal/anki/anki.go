// Package anki reads Bible memorization statistics from an Anki collection.
//
// Each note of the Bible note type is a passage with two cards (reference to
// text and text to reference). A passage sits in the tier both of its cards
// have reached.
package anki

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/faithboard/faithboard/internal/bible"
	"github.com/faithboard/faithboard/internal/period"
	"modernc.org/sqlite"
)

// Anki queue types.
// See https://github.com/ankitects/anki/blob/main/pylib/anki/consts.py
const (
	queueSuspended = -1
	queueNew       = 0
)

// Interval thresholds in days.
const (
	matureInterval = 21
	youngInterval  = 7
)

// Sentinel errors for missing collection entries.
var (
	ErrDeckNotFound     = errors.New("deck not found")
	ErrNoteTypeNotFound = errors.New("note type not found")
)

// Options selects the deck and note type and the calendar used for buckets.
type Options struct {
	DeckName string
	NoteType string
	Clock    period.Clock
}

// Collection is a read-only handle on an Anki collection.
type Collection struct {
	db   *sql.DB
	opts Options
}

var (
	registerOnce sync.Once
	registerErr  error
)

// registerFunctions makes the reference parsers available to every sqlite
// connection opened afterwards.
func registerFunctions() error {
	registerOnce.Do(func() {
		registerErr = errors.Join(
			sqlite.RegisterDeterministicScalarFunction("count_verses", 1, countVersesFunc),
			sqlite.RegisterDeterministicScalarFunction("parse_book_name", 1, parseBookNameFunc),
		)
	})
	return registerErr
}

func textArg(args []driver.Value) string {
	if len(args) == 0 {
		return ""
	}
	switch v := args[0].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func countVersesFunc(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	return int64(bible.CountVerses(textArg(args))), nil
}

// parseBookNameFunc returns NULL for unknown books so they drop out of GROUP BY queries.
func parseBookNameFunc(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if name := bible.ParseBookName(textArg(args)); name != "" {
		return name, nil
	}
	return nil, nil
}

// Open opens the collection at path in read-only mode.
func Open(path string, opts Options) (*Collection, error) {
	if path == "" {
		return nil, fmt.Errorf("anki collection path is not configured")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open anki collection: %w", err)
	}
	if err := registerFunctions(); err != nil {
		return nil, fmt.Errorf("failed to register sqlite functions: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open anki collection: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open anki collection in read-only mode: %w", err)
	}
	return &Collection{db: db, opts: opts}, nil
}

// Close closes the underlying database.
func (c *Collection) Close() error {
	return c.db.Close()
}

// DeckID looks up the configured deck, ignoring case.
func (c *Collection) DeckID(ctx context.Context) (int64, error) {
	return c.lookupID(ctx, "decks", c.opts.DeckName, ErrDeckNotFound)
}

// ModelID looks up the configured note type, ignoring case.
func (c *Collection) ModelID(ctx context.Context) (int64, error) {
	return c.lookupID(ctx, "notetypes", c.opts.NoteType, ErrNoteTypeNotFound)
}

func (c *Collection) lookupID(ctx context.Context, table, name string, notFound error) (int64, error) {
	var id int64
	err := c.db.QueryRowContext(ctx, "SELECT id FROM "+table+" WHERE LOWER(name) = LOWER(?)", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %q", notFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up %q in %s: %w", name, table, err)
	}
	return id, nil
}

// References returns the distinct references of the deck, sorted.
func (c *Collection) References(ctx context.Context) ([]string, error) {
	deckID, err := c.DeckID(ctx)
	if err != nil {
		return nil, err
	}
	modelID, err := c.ModelID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT DISTINCT n.sfld
		FROM notes n
		JOIN cards c ON c.nid = n.id
		WHERE c.did = ? AND n.mid = ?
		ORDER BY n.sfld`, deckID, modelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query references: %w", err)
	}
	defer func() { _ = rows.Close() }()

	refs := []string{}
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
