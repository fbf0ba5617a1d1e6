// Package schema has configs, models and enumerations for all parts of faithboard.
package schema

// BookStats holds the card tier counts of a single Bible book, once in
// passages (notes) and once in verses.
type BookStats struct {
	Book              string `json:"book"`
	MaturePassages    int64  `json:"mature_passages"`
	YoungPassages     int64  `json:"young_passages"`
	LearningPassages  int64  `json:"learning_passages"`
	UnseenPassages    int64  `json:"unseen_passages"`
	SuspendedPassages int64  `json:"suspended_passages"`
	MatureVerses      int64  `json:"mature_verses"`
	YoungVerses       int64  `json:"young_verses"`
	LearningVerses    int64  `json:"learning_verses"`
	UnseenVerses      int64  `json:"unseen_verses"`
	SuspendedVerses   int64  `json:"suspended_verses"`
}

// TotalPassages sums every tier in passages.
func (b BookStats) TotalPassages() int64 {
	return b.MaturePassages + b.YoungPassages + b.LearningPassages + b.UnseenPassages + b.SuspendedPassages
}

// TotalVerses sums every tier in verses.
func (b BookStats) TotalVerses() int64 {
	return b.MatureVerses + b.YoungVerses + b.LearningVerses + b.UnseenVerses + b.SuspendedVerses
}

// Tier returns the count of one tier in the given view mode.
// Unknown tiers count as zero.
func (b BookStats) Tier(tier Tier, view ViewMode) int64 {
	if view == PassagesView {
		switch tier {
		case MatureTier:
			return b.MaturePassages
		case YoungTier:
			return b.YoungPassages
		case LearningTier:
			return b.LearningPassages
		case UnseenTier:
			return b.UnseenPassages
		case SuspendedTier:
			return b.SuspendedPassages
		}
		return 0
	}
	switch tier {
	case MatureTier:
		return b.MatureVerses
	case YoungTier:
		return b.YoungVerses
	case LearningTier:
		return b.LearningVerses
	case UnseenTier:
		return b.UnseenVerses
	case SuspendedTier:
		return b.SuspendedVerses
	}
	return 0
}

// AggregateStats is the sum over a collection of books, keeping the books in order.
type AggregateStats struct {
	Label             string      `json:"label"`
	MaturePassages    int64       `json:"mature_passages"`
	YoungPassages     int64       `json:"young_passages"`
	LearningPassages  int64       `json:"learning_passages"`
	UnseenPassages    int64       `json:"unseen_passages"`
	SuspendedPassages int64       `json:"suspended_passages"`
	MatureVerses      int64       `json:"mature_verses"`
	YoungVerses       int64       `json:"young_verses"`
	LearningVerses    int64       `json:"learning_verses"`
	UnseenVerses      int64       `json:"unseen_verses"`
	SuspendedVerses   int64       `json:"suspended_verses"`
	Books             []BookStats `json:"book_stats"`
}

// NewAggregateStats creates an empty aggregate with the given label.
func NewAggregateStats(label string) AggregateStats {
	return AggregateStats{Label: label, Books: []BookStats{}}
}

// AddBook appends a book and adds its counts to the running sums.
func (a *AggregateStats) AddBook(b BookStats) {
	a.MaturePassages += b.MaturePassages
	a.YoungPassages += b.YoungPassages
	a.LearningPassages += b.LearningPassages
	a.UnseenPassages += b.UnseenPassages
	a.SuspendedPassages += b.SuspendedPassages
	a.MatureVerses += b.MatureVerses
	a.YoungVerses += b.YoungVerses
	a.LearningVerses += b.LearningVerses
	a.UnseenVerses += b.UnseenVerses
	a.SuspendedVerses += b.SuspendedVerses
	a.Books = append(a.Books, b)
}

// TotalPassages sums every tier in passages.
func (a AggregateStats) TotalPassages() int64 {
	return a.MaturePassages + a.YoungPassages + a.LearningPassages + a.UnseenPassages + a.SuspendedPassages
}

// TotalVerses sums every tier in verses.
func (a AggregateStats) TotalVerses() int64 {
	return a.MatureVerses + a.YoungVerses + a.LearningVerses + a.UnseenVerses + a.SuspendedVerses
}

// BibleStats is the complete memorization report, split by testament.
type BibleStats struct {
	OldTestament AggregateStats `json:"old_testament"`
	NewTestament AggregateStats `json:"new_testament"`
}

// NewBibleStats creates an empty report with both testaments labelled.
func NewBibleStats() BibleStats {
	return BibleStats{
		OldTestament: NewAggregateStats("Old Testament"),
		NewTestament: NewAggregateStats("New Testament"),
	}
}

// TotalPassages sums both testaments in passages.
func (s BibleStats) TotalPassages() int64 {
	return s.OldTestament.TotalPassages() + s.NewTestament.TotalPassages()
}

// TotalVerses sums both testaments in verses.
func (s BibleStats) TotalVerses() int64 {
	return s.OldTestament.TotalVerses() + s.NewTestament.TotalVerses()
}

// Tier returns the summed count of one tier in the given view mode.
func (a AggregateStats) Tier(tier Tier, view ViewMode) int64 {
	sums := BookStats{
		MaturePassages:    a.MaturePassages,
		YoungPassages:     a.YoungPassages,
		LearningPassages:  a.LearningPassages,
		UnseenPassages:    a.UnseenPassages,
		SuspendedPassages: a.SuspendedPassages,
		MatureVerses:      a.MatureVerses,
		YoungVerses:       a.YoungVerses,
		LearningVerses:    a.LearningVerses,
		UnseenVerses:      a.UnseenVerses,
		SuspendedVerses:   a.SuspendedVerses,
	}
	return sums.Tier(tier, view)
}
