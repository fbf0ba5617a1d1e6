package faith

import (
	"context"
	"errors"
	"time"

	"github.com/faithboard/faithboard/internal/anki"
	"github.com/faithboard/faithboard/internal/arc"
	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/koreader"
	"github.com/faithboard/faithboard/internal/proseuche"
	"github.com/faithboard/faithboard/schema"
)

// Service answers every statistic from the configured sources. Sources are
// opened per call and closed before returning.
type Service struct {
	cfg *contract.Config
	now func() time.Time
}

var _ contract.StatsProvider = &Service{} // Compile-time check

// NewService creates a Service over a validated configuration.
func NewService(cfg *contract.Config) *Service {
	return &Service{cfg: cfg, now: cfg.Now}
}

func (s *Service) openAnki() (*anki.Collection, error) {
	if s.cfg.AnkiPath == "" {
		return nil, errors.New("anki-path is not configured")
	}
	return anki.Open(s.cfg.AnkiPath, anki.Options{
		DeckName: s.cfg.DeckName,
		NoteType: s.cfg.NoteType,
		Clock:    s.cfg.Clock,
	})
}

func (s *Service) openReading() (*koreader.Reader, error) {
	if s.cfg.KOReaderPath == "" {
		return nil, errors.New("koreader-path is not configured")
	}
	return koreader.Open(s.cfg.KOReaderPath, koreader.Options{
		TitlePattern: s.cfg.ReadingTitle,
		Clock:        s.cfg.Clock,
	})
}

func (s *Service) openPrayer() (*proseuche.Reader, error) {
	if s.cfg.PrayerPath == "" {
		return nil, errors.New("prayer-path is not configured")
	}
	return proseuche.Open(s.cfg.PrayerPath, proseuche.Options{
		Table:          s.cfg.PrayerTable,
		StartColumn:    s.cfg.PrayerStartColumn,
		DurationColumn: s.cfg.PrayerDurationColumn,
		Clock:          s.cfg.Clock,
	})
}

func (s *Service) openArc() (*arc.Export, error) {
	return arc.Open(s.cfg.ArcPath, arc.Options{
		ChurchPlace: s.cfg.ChurchPlace,
		HomePlace:   s.cfg.HomePlace,
		Clock:       s.cfg.Clock,
	})
}

// timedSources opens the three timed sources. The returned closer is
// always safe to call.
func (s *Service) timedSources() (*anki.Collection, *koreader.Reader, *proseuche.Reader, func(), error) {
	var closers []func() error
	closeAll := func() {
		for _, c := range closers {
			_ = c()
		}
	}

	col, err := s.openAnki()
	if err != nil {
		return nil, nil, nil, closeAll, err
	}
	closers = append(closers, col.Close)

	reading, err := s.openReading()
	if err != nil {
		return nil, nil, nil, closeAll, err
	}
	closers = append(closers, reading.Close)

	prayer, err := s.openPrayer()
	if err != nil {
		return nil, nil, nil, closeAll, err
	}
	closers = append(closers, prayer.Close)

	return col, reading, prayer, closeAll, nil
}

// BibleStats implements contract.StatsProvider.
func (s *Service) BibleStats(ctx context.Context) (schema.BibleStats, error) {
	col, err := s.openAnki()
	if err != nil {
		return schema.BibleStats{}, err
	}
	defer func() { _ = col.Close() }()
	return col.BibleStats(ctx)
}

// AnkiToday implements contract.StatsProvider.
func (s *Service) AnkiToday(ctx context.Context) (schema.TodayStats, error) {
	col, err := s.openAnki()
	if err != nil {
		return schema.TodayStats{}, err
	}
	defer func() { _ = col.Close() }()
	minutes, err := col.TodayMinutes(ctx, s.now())
	if err != nil {
		return schema.TodayStats{}, err
	}
	return schema.NewTodayStats(minutes), nil
}

// AnkiDaily implements contract.StatsProvider.
func (s *Service) AnkiDaily(ctx context.Context) ([]schema.DayStats, error) {
	col, err := s.openAnki()
	if err != nil {
		return nil, err
	}
	defer func() { _ = col.Close() }()
	return col.Daily(ctx, s.now(), s.cfg.Days)
}

// AnkiWeekly implements contract.StatsProvider.
func (s *Service) AnkiWeekly(ctx context.Context) ([]schema.WeekStats, error) {
	col, err := s.openAnki()
	if err != nil {
		return nil, err
	}
	defer func() { _ = col.Close() }()
	return col.Weekly(ctx, s.now(), s.cfg.Weeks)
}

// References implements contract.StatsProvider.
func (s *Service) References(ctx context.Context) ([]string, error) {
	col, err := s.openAnki()
	if err != nil {
		return nil, err
	}
	defer func() { _ = col.Close() }()
	return col.References(ctx)
}

// FaithToday implements contract.StatsProvider.
func (s *Service) FaithToday(ctx context.Context) (schema.FaithTodayStats, error) {
	col, reading, prayer, closeAll, err := s.timedSources()
	defer closeAll()
	if err != nil {
		return schema.FaithTodayStats{}, err
	}

	now := s.now()
	a, err := col.TodayMinutes(ctx, now)
	if err != nil {
		return schema.FaithTodayStats{}, err
	}
	r, err := reading.TodayMinutes(ctx, now)
	if err != nil {
		return schema.FaithTodayStats{}, err
	}
	p, err := prayer.TodayMinutes(ctx, now)
	if err != nil {
		return schema.FaithTodayStats{}, err
	}
	return schema.NewFaithTodayStats(a, r, p), nil
}

// FaithDaily implements contract.StatsProvider.
func (s *Service) FaithDaily(ctx context.Context) (schema.FaithDailyStats, error) {
	col, reading, prayer, closeAll, err := s.timedSources()
	defer closeAll()
	if err != nil {
		return schema.FaithDailyStats{}, err
	}

	now := s.now()
	a, err := col.Daily(ctx, now, s.cfg.Days)
	if err != nil {
		return schema.FaithDailyStats{}, err
	}
	r, err := reading.Daily(ctx, now, s.cfg.Days)
	if err != nil {
		return schema.FaithDailyStats{}, err
	}
	p, err := prayer.Daily(ctx, now, s.cfg.Days)
	if err != nil {
		return schema.FaithDailyStats{}, err
	}

	days, err := MergeDaily(a, r, p)
	if err != nil {
		return schema.FaithDailyStats{}, err
	}
	return schema.FaithDailyStats{Days: days, Summary: SummarizeDaily(days)}, nil
}

// FaithWeekly implements contract.StatsProvider.
func (s *Service) FaithWeekly(ctx context.Context) (schema.FaithWeeklyStats, error) {
	export, err := s.openArc()
	if err != nil {
		return schema.FaithWeeklyStats{}, err
	}
	col, reading, prayer, closeAll, err := s.timedSources()
	defer closeAll()
	if err != nil {
		return schema.FaithWeeklyStats{}, err
	}

	now := s.now()
	a, err := col.Weekly(ctx, now, s.cfg.Weeks)
	if err != nil {
		return schema.FaithWeeklyStats{}, err
	}
	r, err := reading.Weekly(ctx, now, s.cfg.Weeks)
	if err != nil {
		return schema.FaithWeeklyStats{}, err
	}
	p, err := prayer.Weekly(ctx, now, s.cfg.Weeks)
	if err != nil {
		return schema.FaithWeeklyStats{}, err
	}
	c, err := export.ChurchWeeks(now, s.cfg.Weeks)
	if err != nil {
		return schema.FaithWeeklyStats{}, err
	}

	weeks, err := MergeWeekly(a, r, p, c)
	if err != nil {
		return schema.FaithWeeklyStats{}, err
	}
	return schema.FaithWeeklyStats{Weeks: weeks, Summary: SummarizeWeekly(weeks)}, nil
}

// TopPlaces implements contract.StatsProvider.
func (s *Service) TopPlaces(_ context.Context) ([]schema.PlaceStats, error) {
	export, err := s.openArc()
	if err != nil {
		return nil, err
	}
	return export.TopPlaces(s.now(), s.cfg.PlacesDays, s.cfg.PlacesLimit)
}

// ChurchWeeks implements contract.StatsProvider.
func (s *Service) ChurchWeeks(_ context.Context) ([]schema.ChurchWeekStats, error) {
	export, err := s.openArc()
	if err != nil {
		return nil, err
	}
	return export.ChurchWeeks(s.now(), s.cfg.Weeks)
}
