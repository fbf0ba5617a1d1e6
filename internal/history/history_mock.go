package history

import (
	"time"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/schema"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of HistoryStore for testing.
type MockStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockStore{} // Compile-time check

// RecordRun implements the HistoryStore interface.
func (m *MockStore) RecordRun(startTime time.Time, command string, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, command, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// RecordBibleTotals implements the HistoryStore interface.
func (m *MockStore) RecordBibleTotals(runID int64, stats schema.BibleStats) error {
	args := m.Called(runID, stats)
	return args.Error(0)
}

// RecordFaithTotals implements the HistoryStore interface.
func (m *MockStore) RecordFaithTotals(runID int64, period string, minutes map[schema.Category]float64) error {
	args := m.Called(runID, period, minutes)
	return args.Error(0)
}

// EndRun implements the HistoryStore interface.
func (m *MockStore) EndRun(runID int64, endTime time.Time) error {
	args := m.Called(runID, endTime)
	return args.Error(0)
}

// ListRuns implements the HistoryStore interface.
func (m *MockStore) ListRuns(limit int) ([]schema.RunSummary, error) {
	args := m.Called(limit)
	runs, _ := args.Get(0).([]schema.RunSummary)
	return runs, args.Error(1)
}

// GetAllRuns implements the HistoryStore interface.
func (m *MockStore) GetAllRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.RunRecord)
	return runs, args.Error(1)
}

// GetAllTierTotals implements the HistoryStore interface.
func (m *MockStore) GetAllTierTotals() ([]schema.TierTotalRecord, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]schema.TierTotalRecord)
	return rows, args.Error(1)
}

// GetAllCategoryTotals implements the HistoryStore interface.
func (m *MockStore) GetAllCategoryTotals() ([]schema.CategoryTotalRecord, error) {
	args := m.Called()
	rows, _ := args.Get(0).([]schema.CategoryTotalRecord)
	return rows, args.Error(1)
}

// GetStatus implements the HistoryStore interface.
func (m *MockStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
