package anki

import (
	"context"
	"fmt"
	"time"

	"github.com/faithboard/faithboard/internal/period"
	"github.com/faithboard/faithboard/schema"
)

const msPerMinute = 60_000.0

// progress counts passages crossing the mature threshold in a bucket.
type progress struct {
	matured int64
	lost    int64
}

// TodayMinutes returns the review time in the deck since the start of today.
func (c *Collection) TodayMinutes(ctx context.Context, now time.Time) (float64, error) {
	deckID, err := c.DeckID(ctx)
	if err != nil {
		return 0, err
	}
	var totalMs int64
	err = c.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(r.time), 0)
		FROM revlog r
		JOIN cards c ON c.id = r.cid
		WHERE c.did = ? AND r.id >= ?`,
		deckID, c.opts.Clock.TodayStart(now).UnixMilli()).Scan(&totalMs)
	if err != nil {
		return 0, fmt.Errorf("failed to query today's review time: %w", err)
	}
	return float64(totalMs) / msPerMinute, nil
}

// Daily returns the last n days of review time and progress, oldest first.
func (c *Collection) Daily(ctx context.Context, now time.Time, n int) ([]schema.DayStats, error) {
	p := c.opts.Clock.LastDays(now, n)
	times, prog, err := c.activity(ctx, p, c.opts.Clock.DayKey)
	if err != nil {
		return nil, err
	}

	var cumulative int64
	return period.Fill(p.Keys, times, func(key string, ms int64) schema.DayStats {
		pr := prog[key]
		cumulative += pr.matured - pr.lost
		return schema.DayStats{
			Date:               key,
			Minutes:            float64(ms) / msPerMinute,
			MaturedPassages:    pr.matured,
			LostPassages:       pr.lost,
			CumulativePassages: cumulative,
		}
	}), nil
}

// Weekly returns the last n weeks of review time and progress, oldest first.
func (c *Collection) Weekly(ctx context.Context, now time.Time, n int) ([]schema.WeekStats, error) {
	p := c.opts.Clock.LastWeeks(now, n)
	times, prog, err := c.activity(ctx, p, c.opts.Clock.WeekKey)
	if err != nil {
		return nil, err
	}

	var cumulative int64
	return period.Fill(p.Keys, times, func(key string, ms int64) schema.WeekStats {
		pr := prog[key]
		cumulative += pr.matured - pr.lost
		return schema.WeekStats{
			WeekStart:          key,
			Minutes:            float64(ms) / msPerMinute,
			MaturedPassages:    pr.matured,
			LostPassages:       pr.lost,
			CumulativePassages: cumulative,
		}
	}), nil
}

// activity buckets review time of every deck card, and progress of the
// first card of each non-suspended Bible note, by the given key function.
func (c *Collection) activity(ctx context.Context, p period.Period, key func(time.Time) string) (map[string]int64, map[string]progress, error) {
	deckID, err := c.DeckID(ctx)
	if err != nil {
		return nil, nil, err
	}
	modelID, err := c.ModelID(ctx)
	if err != nil {
		return nil, nil, err
	}

	times := make(map[string]int64)
	rows, err := c.db.QueryContext(ctx, `
		SELECT r.id, r.time
		FROM revlog r
		JOIN cards c ON c.id = r.cid
		WHERE c.did = ? AND r.id >= ? AND r.id < ?`,
		deckID, p.StartMs(), p.EndMs())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query review time: %w", err)
	}
	for rows.Next() {
		var id, ms int64
		if err := rows.Scan(&id, &ms); err != nil {
			_ = rows.Close()
			return nil, nil, err
		}
		times[key(time.UnixMilli(id))] += ms
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	prog := make(map[string]progress)
	rows, err = c.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT r.id, r.lastIvl, r.ivl
		FROM revlog r
		JOIN cards c ON c.id = r.cid
		JOIN notes n ON n.id = c.nid
		WHERE c.did = ? AND n.mid = ? AND c.ord = 0
			AND c.queue != %d
			AND r.id >= ? AND r.id < ?`, queueSuspended),
		deckID, modelID, p.StartMs(), p.EndMs())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var id, lastIvl, ivl int64
		if err := rows.Scan(&id, &lastIvl, &ivl); err != nil {
			return nil, nil, err
		}
		k := key(time.UnixMilli(id))
		pr := prog[k]
		switch {
		case lastIvl < matureInterval && ivl >= matureInterval:
			pr.matured++
		case lastIvl >= matureInterval && ivl < matureInterval:
			pr.lost++
		default:
			continue
		}
		prog[k] = pr
	}
	return times, prog, rows.Err()
}
