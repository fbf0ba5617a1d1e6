package faith

import (
	"context"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/schema"
	"github.com/stretchr/testify/mock"
)

// MockStatsProvider is a mock implementation of contract.StatsProvider for testing.
type MockStatsProvider struct {
	mock.Mock
}

var _ contract.StatsProvider = &MockStatsProvider{} // Compile-time check

// BibleStats implements the StatsProvider interface.
func (m *MockStatsProvider) BibleStats(ctx context.Context) (schema.BibleStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.BibleStats), args.Error(1)
}

// AnkiToday implements the StatsProvider interface.
func (m *MockStatsProvider) AnkiToday(ctx context.Context) (schema.TodayStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.TodayStats), args.Error(1)
}

// AnkiDaily implements the StatsProvider interface.
func (m *MockStatsProvider) AnkiDaily(ctx context.Context) ([]schema.DayStats, error) {
	args := m.Called(ctx)
	days, _ := args.Get(0).([]schema.DayStats)
	return days, args.Error(1)
}

// AnkiWeekly implements the StatsProvider interface.
func (m *MockStatsProvider) AnkiWeekly(ctx context.Context) ([]schema.WeekStats, error) {
	args := m.Called(ctx)
	weeks, _ := args.Get(0).([]schema.WeekStats)
	return weeks, args.Error(1)
}

// References implements the StatsProvider interface.
func (m *MockStatsProvider) References(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	refs, _ := args.Get(0).([]string)
	return refs, args.Error(1)
}

// FaithToday implements the StatsProvider interface.
func (m *MockStatsProvider) FaithToday(ctx context.Context) (schema.FaithTodayStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.FaithTodayStats), args.Error(1)
}

// FaithDaily implements the StatsProvider interface.
func (m *MockStatsProvider) FaithDaily(ctx context.Context) (schema.FaithDailyStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.FaithDailyStats), args.Error(1)
}

// FaithWeekly implements the StatsProvider interface.
func (m *MockStatsProvider) FaithWeekly(ctx context.Context) (schema.FaithWeeklyStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.FaithWeeklyStats), args.Error(1)
}

// TopPlaces implements the StatsProvider interface.
func (m *MockStatsProvider) TopPlaces(ctx context.Context) ([]schema.PlaceStats, error) {
	args := m.Called(ctx)
	places, _ := args.Get(0).([]schema.PlaceStats)
	return places, args.Error(1)
}

// ChurchWeeks implements the StatsProvider interface.
func (m *MockStatsProvider) ChurchWeeks(ctx context.Context) ([]schema.ChurchWeekStats, error) {
	args := m.Called(ctx)
	weeks, _ := args.Get(0).([]schema.ChurchWeekStats)
	return weeks, args.Error(1)
}
