package anki

import (
	"context"
	"fmt"

	"github.com/faithboard/faithboard/internal/bible"
	"github.com/faithboard/faithboard/schema"
)

var booksQuery = fmt.Sprintf(`
	SELECT
		book,
		SUM(CASE WHEN tier='mature' THEN 1 ELSE 0 END),
		SUM(CASE WHEN tier='young' THEN 1 ELSE 0 END),
		SUM(CASE WHEN tier='learning' THEN 1 ELSE 0 END),
		SUM(CASE WHEN tier='unseen' THEN 1 ELSE 0 END),
		SUM(CASE WHEN tier='suspended' THEN 1 ELSE 0 END),
		SUM(CASE WHEN tier='mature' THEN verses ELSE 0 END),
		SUM(CASE WHEN tier='young' THEN verses ELSE 0 END),
		SUM(CASE WHEN tier='learning' THEN verses ELSE 0 END),
		SUM(CASE WHEN tier='unseen' THEN verses ELSE 0 END),
		SUM(CASE WHEN tier='suspended' THEN verses ELSE 0 END)
	FROM (
		SELECT
			parse_book_name(n.sfld) AS book,
			count_verses(n.sfld) AS verses,
			CASE
				WHEN c0.queue = %[1]d OR c1.queue = %[1]d THEN 'suspended'
				WHEN c0.queue = %[2]d AND c1.queue = %[2]d THEN 'unseen'
				WHEN c0.ivl >= %[3]d AND c1.ivl >= %[3]d THEN 'mature'
				WHEN c0.ivl >= %[4]d AND c1.ivl >= %[4]d THEN 'young'
				ELSE 'learning'
			END AS tier
		FROM notes n
		JOIN cards c0 ON c0.nid = n.id AND c0.ord = 0 AND c0.did = ?
		JOIN cards c1 ON c1.nid = n.id AND c1.ord = 1 AND c1.did = ?
		WHERE n.mid = ?
	)
	WHERE book IS NOT NULL
	GROUP BY book`, queueSuspended, queueNew, matureInterval, youngInterval)

// BookStats returns tier counts keyed by canonical book name. Books without
// notes are absent and notes whose book cannot be parsed are ignored.
func (c *Collection) BookStats(ctx context.Context) (map[string]schema.BookStats, error) {
	deckID, err := c.DeckID(ctx)
	if err != nil {
		return nil, err
	}
	modelID, err := c.ModelID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, booksQuery, deckID, deckID, modelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query book stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	books := make(map[string]schema.BookStats)
	for rows.Next() {
		var b schema.BookStats
		if err := rows.Scan(
			&b.Book,
			&b.MaturePassages, &b.YoungPassages, &b.LearningPassages, &b.UnseenPassages, &b.SuspendedPassages,
			&b.MatureVerses, &b.YoungVerses, &b.LearningVerses, &b.UnseenVerses, &b.SuspendedVerses,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book stats: %w", err)
		}
		books[b.Book] = b
	}
	return books, rows.Err()
}

// BibleStats returns all 66 books in canonical order, split by testament.
// Books without notes are present with zero counts.
func (c *Collection) BibleStats(ctx context.Context) (schema.BibleStats, error) {
	books, err := c.BookStats(ctx)
	if err != nil {
		return schema.BibleStats{}, err
	}
	return MergeCanon(books), nil
}

// MergeCanon lays out per-book stats in canonical order, zero-filling missing books.
func MergeCanon(books map[string]schema.BookStats) schema.BibleStats {
	stats := schema.NewBibleStats()
	for _, b := range bible.Books() {
		bs, ok := books[b.Name]
		if !ok {
			bs = schema.BookStats{Book: b.Name}
		}
		if b.Testament == bible.NewTestament {
			stats.NewTestament.AddBook(bs)
		} else {
			stats.OldTestament.AddBook(bs)
		}
	}
	return stats
}
