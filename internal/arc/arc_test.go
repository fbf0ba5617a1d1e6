package arc

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faithboard/faithboard/internal/period"
	"github.com/faithboard/faithboard/schema"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	churchID = "C0FFEE00-0000-4000-8000-000000000001"
	homeID   = "12DF1EED-9AD0-4CB2-87F1-EE8E0FABDFE4"
	cafeID   = "3afe0000-0000-4000-8000-000000000003"
)

const metadataJSON = `{
	"samplesCompleted": true,
	"exportMode": "bucketed",
	"sessionStartDate": "2025-10-21T10:00:00Z",
	"itemsCompleted": true,
	"exportType": "full",
	"sessionFinishDate": "2025-10-21T10:05:00Z",
	"stats": {"sampleCount": 1200, "itemCount": 8, "placeCount": 3},
	"schemaVersion": "2.2.0",
	"placesCompleted": true
}`

func placeJSON(id, name string) string {
	return `{"id":"` + id + `","name":"` + name + `","latitude":38.6,"longitude":-90.2,"radiusMean":25,"radiusSD":4.5,` +
		`"visitCount":12,"lastSaved":"2025-10-20T12:00:00Z","isStale":false,"source":"LocoKit2","rtreeId":7,` +
		`"streetAddress":"1 Main St","lastVisitDate":"2025-10-19T16:00:00Z"}`
}

func visitJSON(id, placeID, start, end string, deleted bool) string {
	del := "false"
	if deleted {
		del = "true"
	}
	return `{"base":{"id":"` + id + `","startDate":"` + start + `","endDate":"` + end + `","lastSaved":"` + end +
		`","source":"LocoKit2","sourceVersion":"9.0.0","isVisit":true,"deleted":` + del + `,"disabled":false,"locked":false},` +
		`"visit":{"itemId":"` + id + `","placeId":"` + placeID + `","latitude":38.6,"longitude":-90.2,"radiusMean":20,` +
		`"radiusSD":5,"confirmedPlace":true,"uncertainPlace":false,"lastSaved":"` + end + `"}}`
}

func tripJSON(id, start, end string) string {
	return `{"base":{"id":"` + id + `","startDate":"` + start + `","endDate":"` + end + `","lastSaved":"` + end +
		`","source":"LocoKit2","isVisit":false,"deleted":false,"disabled":false,"locked":false},` +
		`"trip":{"itemId":"` + id + `","distance":5200.5,"speed":12.1,"classifiedActivityType":4,"uncertainActivityType":false,"lastSaved":"` + end + `"}}`
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// createExport writes a small export around the week of 2025-10-19.
func createExport(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "metadata.json"), metadataJSON)
	writeFile(t, filepath.Join(dir, "places", "C.json"), "["+placeJSON(churchID, "Church")+"]")
	writeFile(t, filepath.Join(dir, "places", "1.json"), "["+placeJSON(homeID, "Home")+"]")
	writeFile(t, filepath.Join(dir, "places", "3.json"), "["+placeJSON(cafeID, "Cafe")+"]")

	writeFile(t, filepath.Join(dir, "items", "2025-01.json"), "["+
		visitJSON("old", cafeID, "2025-01-01T15:00:00Z", "2025-01-01T20:00:00Z", false)+"]")
	writeFile(t, filepath.Join(dir, "items", "2025-09.json"), "["+
		visitJSON("v1", cafeID, "2025-09-10T15:00:00Z", "2025-09-10T16:00:00Z", false)+"]")
	writeFile(t, filepath.Join(dir, "items", "2025-10.json"), "["+
		// Wednesday evening, 90 minutes
		visitJSON("v2", churchID, "2025-10-16T00:00:00Z", "2025-10-16T01:30:00Z", false)+","+
		// 03:00 local Saturday belongs to Friday, 30 minutes
		visitJSON("v3", churchID, "2025-10-18T08:00:00Z", "2025-10-18T08:30:00Z", false)+","+
		// Sunday service, 120 minutes
		visitJSON("v4", churchID, "2025-10-19T14:00:00Z", "2025-10-19T16:00:00Z", false)+","+
		visitJSON("v5", churchID, "2025-10-19T18:00:00Z", "2025-10-19T23:00:00Z", true)+","+
		tripJSON("t1", "2025-10-19T16:00:00Z", "2025-10-19T16:20:00Z")+","+
		visitJSON("v6", homeID, "2025-10-20T00:00:00Z", "2025-10-20T10:00:00Z", false)+","+
		visitJSON("v7", cafeID, "2025-10-20T15:00:00Z", "2025-10-20T17:00:00Z", false)+"]")
	writeFile(t, filepath.Join(dir, "items", "notes.txt"), "ignored")
	return dir
}

func chicago(t *testing.T) (period.Clock, *time.Location) {
	t.Helper()
	clock, err := period.NewNamed("America/Chicago", 4)
	require.NoError(t, err)
	return clock, clock.Location()
}

func TestLoadMetadata(t *testing.T) {
	m, err := LoadMetadata(createExport(t))
	require.NoError(t, err)
	assert.Equal(t, "2.2.0", m.SchemaVersion)
	assert.True(t, m.ItemsCompleted)
	assert.True(t, m.PlacesCompleted)
	assert.Equal(t, 8, m.Stats.ItemCount)
	assert.Equal(t, 3, m.Stats.PlaceCount)

	_, err = LoadMetadata(t.TempDir())
	assert.Error(t, err)
}

func TestLoadPlaces(t *testing.T) {
	dir := createExport(t)

	places, err := LoadPlacesFile(dir, 'C')
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Church", places[0].Name)
	assert.Equal(t, 4.5, places[0].RadiusSD)
	require.NotNil(t, places[0].LastVisitDate)
	assert.Nil(t, places[0].VisitDays)

	all, err := LoadAllPlaces(dir)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	writeFile(t, filepath.Join(dir, "places", "F.json"), "{not json")
	_, err = LoadAllPlaces(dir)
	assert.Error(t, err)
}

func TestLoadItems(t *testing.T) {
	dir := createExport(t)

	months, err := MonthFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01", "2025-09", "2025-10"}, months)

	items, err := LoadAllItems(dir)
	require.NoError(t, err)
	require.Len(t, items, 9)
	assert.Equal(t, "old", items[0].Base.ID)

	oct, err := LoadItemsForMonth(dir, "2025-10")
	require.NoError(t, err)
	trip := oct[4]
	assert.True(t, trip.IsTrip())
	assert.False(t, trip.IsVisit())
	assert.Empty(t, trip.PlaceID())
	assert.Equal(t, 20*time.Minute, trip.Duration())

	visit := oct[2]
	assert.True(t, visit.IsVisit())
	assert.Equal(t, churchID, visit.PlaceID())
	assert.Equal(t, 2*time.Hour, visit.End().Sub(visit.Start()))
}

func TestPlaceCache(t *testing.T) {
	dir := createExport(t)
	cache := NewPlaceCache(dir)

	p1, err := cache.Get(homeID)
	require.NoError(t, err)
	assert.Equal(t, "Home", p1.Name)
	assert.Equal(t, 1, cache.Len())

	p2, err := cache.Get(homeID)
	require.NoError(t, err)
	assert.Same(t, p1, p2)

	// Lowercase IDs resolve through the uppercased file name.
	cafe, err := cache.Get(cafeID)
	require.NoError(t, err)
	assert.Equal(t, "Cafe", cafe.Name)

	_, err = cache.Get("1AAAAAAA-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrPlaceNotFound)

	_, err = cache.Get("")
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestLoadAllItemsWithPlaces(t *testing.T) {
	items, err := LoadAllItemsWithPlaces(createExport(t))
	require.NoError(t, err)

	var church []*Place
	for _, it := range items {
		if it.Place != nil && it.Place.Name == "Church" {
			church = append(church, it.Place)
		}
		if it.Item.IsTrip() {
			assert.Nil(t, it.Place)
		}
	}
	require.Len(t, church, 4)
	for _, p := range church[1:] {
		assert.Same(t, church[0], p)
	}

	withPlaces, err := LoadItemsWithPlaces(createExport(t), "2025-09")
	require.NoError(t, err)
	require.Len(t, withPlaces, 1)
	assert.Equal(t, "Cafe", withPlaces[0].Place.Name)
}

func TestMissingPlaceFails(t *testing.T) {
	dir := createExport(t)
	writeFile(t, filepath.Join(dir, "items", "2025-11.json"), "["+
		visitJSON("x", "CAFE1234-0000-0000-0000-000000000000", "2025-11-01T15:00:00Z", "2025-11-01T16:00:00Z", false)+"]")

	_, err := LoadAllItemsWithPlaces(dir)
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestChurchWeeks(t *testing.T) {
	clock, loc := chicago(t)
	e, err := Open(createExport(t), Options{ChurchPlace: "Church", HomePlace: "Home", Clock: clock})
	require.NoError(t, err)

	weeks, err := e.ChurchWeeks(time.Date(2025, 10, 21, 12, 0, 0, 0, loc), 3)
	require.NoError(t, err)

	expected := []schema.ChurchWeekStats{
		{WeekStart: "2025-10-05"},
		{WeekStart: "2025-10-12", Minutes: 120, DailyMinutes: [7]float64{3: 90, 5: 30}},
		{WeekStart: "2025-10-19", Minutes: 120, DailyMinutes: [7]float64{0: 120}},
	}
	if diff := cmp.Diff(expected, weeks); diff != "" {
		t.Errorf("ChurchWeeks mismatch (-want +got):\n%s", diff)
	}
}

func TestTopPlaces(t *testing.T) {
	clock, loc := chicago(t)
	e, err := Open(createExport(t), Options{ChurchPlace: "Church", HomePlace: "Home", Clock: clock})
	require.NoError(t, err)
	now := time.Date(2025, 10, 21, 12, 0, 0, 0, loc)

	places, err := e.TopPlaces(now, 182, 10)
	require.NoError(t, err)
	expected := []schema.PlaceStats{
		{PlaceName: "Church", Hours: 4},
		{PlaceName: "Cafe", Hours: 3},
	}
	if diff := cmp.Diff(expected, places); diff != "" {
		t.Errorf("TopPlaces mismatch (-want +got):\n%s", diff)
	}

	places, err = e.TopPlaces(now, 182, 1)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Church", places[0].PlaceName)

	// Ties are broken by name.
	places, err = e.TopPlaces(now, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, []schema.PlaceStats{{PlaceName: "Cafe", Hours: 2}, {PlaceName: "Church", Hours: 2}}, places)
}

func TestOpen(t *testing.T) {
	_, err := Open("", Options{})
	assert.Error(t, err)

	_, err = Open(filepath.Join(t.TempDir(), "missing"), Options{})
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.json")
	writeFile(t, file, "{}")
	_, err = Open(file, Options{})
	assert.Error(t, err)
}
