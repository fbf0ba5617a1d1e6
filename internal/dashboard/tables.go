package dashboard

import "github.com/faithboard/faithboard/schema"

// TierRow holds the charted tier totals of one partition.
type TierRow struct {
	Label    string `json:"label"`
	Learning int64  `json:"learning"`
	Young    int64  `json:"young"`
	Mature   int64  `json:"mature"`
	Total    int64  `json:"total"`
}

func (r *TierRow) add(b schema.BookStats, view schema.ViewMode) {
	r.Learning += b.Tier(schema.LearningTier, view)
	r.Young += b.Tier(schema.YoungTier, view)
	r.Mature += b.Tier(schema.MatureTier, view)
	r.Total = r.Learning + r.Young + r.Mature
}

// BibleTable is the per-testament summary beside the Bible chart.
type BibleTable struct {
	View         schema.ViewMode `json:"view"`
	OldTestament TierRow         `json:"old_testament"`
	NewTestament TierRow         `json:"new_testament"`
	Grand        TierRow         `json:"grand"`
}

// BibleTotals sums every book, charted or not, in the selected view.
func BibleTotals(stats schema.BibleStats, opts Options) BibleTable {
	view := opts.view()
	t := BibleTable{
		View:         view,
		OldTestament: TierRow{Label: "Old Testament"},
		NewTestament: TierRow{Label: "New Testament"},
		Grand:        TierRow{Label: "Total"},
	}
	for _, b := range stats.OldTestament.Books {
		t.OldTestament.add(b, view)
		t.Grand.add(b, view)
	}
	for _, b := range stats.NewTestament.Books {
		t.NewTestament.add(b, view)
		t.Grand.add(b, view)
	}
	return t
}

// CategoryRow is the total of one category.
type CategoryRow struct {
	Category schema.Category `json:"category"`
	Minutes  float64         `json:"minutes"`
}

// CategoryTable is the per-category summary beside a time chart.
type CategoryTable struct {
	Rows  []CategoryRow `json:"rows"`
	Total float64       `json:"total_minutes"`
}

func categoryTable(categories []schema.Category, n int, minutes func(i int, c schema.Category) float64) CategoryTable {
	t := CategoryTable{Rows: make([]CategoryRow, len(categories))}
	for j, c := range categories {
		t.Rows[j].Category = c
		for i := range n {
			t.Rows[j].Minutes += minutes(i, c)
		}
		t.Total += t.Rows[j].Minutes
	}
	return t
}

// DailyTable sums every day per category.
func DailyTable(days []schema.FaithDayStats) CategoryTable {
	return categoryTable(schema.DailyCategories, len(days), func(i int, c schema.Category) float64 {
		return days[i].Minutes(c)
	})
}

// WeeklyTable sums every week per category.
func WeeklyTable(weeks []schema.FaithWeekStats) CategoryTable {
	return categoryTable(schema.WeeklyCategories, len(weeks), func(i int, c schema.Category) float64 {
		return weeks[i].Minutes(c)
	})
}
