// Package arc loads Arc Timeline exports and derives place statistics from them.
//
// An export directory holds metadata.json, places/<X>.json where X is the
// uppercased first character of the place ID, and items/<YYYY-MM>.json.
package arc

import "time"

// Metadata describes an export.
type Metadata struct {
	SamplesCompleted  bool        `json:"samplesCompleted"`
	ExportMode        string      `json:"exportMode"`
	SessionStartDate  string      `json:"sessionStartDate"`
	ItemsCompleted    bool        `json:"itemsCompleted"`
	ExportType        string      `json:"exportType"`
	SessionFinishDate string      `json:"sessionFinishDate"`
	Stats             ExportStats `json:"stats"`
	SchemaVersion     string      `json:"schemaVersion"`
	PlacesCompleted   bool        `json:"placesCompleted"`
}

// ExportStats counts the exported records.
type ExportStats struct {
	SampleCount int `json:"sampleCount"`
	ItemCount   int `json:"itemCount"`
	PlaceCount  int `json:"placeCount"`
}

// Place is a named location.
type Place struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Latitude          float64    `json:"latitude"`
	Longitude         float64    `json:"longitude"`
	RadiusMean        float64    `json:"radiusMean"`
	RadiusSD          float64    `json:"radiusSD"`
	VisitCount        int        `json:"visitCount"`
	VisitDays         *int       `json:"visitDays,omitempty"`
	LastSaved         time.Time  `json:"lastSaved"`
	IsStale           bool       `json:"isStale"`
	Source            string     `json:"source"`
	RtreeID           int        `json:"rtreeId"`
	SecondsFromGMT    *int       `json:"secondsFromGmt,omitempty"`
	StreetAddress     *string    `json:"streetAddress,omitempty"`
	Locality          *string    `json:"locality,omitempty"`
	CountryCode       *string    `json:"countryCode,omitempty"`
	GooglePlaceID     *string    `json:"googlePlaceId,omitempty"`
	GooglePrimaryType *string    `json:"googlePrimaryType,omitempty"`
	LastVisitDate     *time.Time `json:"lastVisitDate,omitempty"`
}

// BaseItem holds the fields shared by visits and trips.
type BaseItem struct {
	ID                 string    `json:"id"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	LastSaved          time.Time `json:"lastSaved"`
	Source             string    `json:"source"`
	SourceVersion      *string   `json:"sourceVersion,omitempty"`
	IsVisit            bool      `json:"isVisit"`
	Deleted            bool      `json:"deleted"`
	Disabled           bool      `json:"disabled"`
	Locked             bool      `json:"locked"`
	SamplesChanged     *bool     `json:"samplesChanged,omitempty"`
	StepCount          *int      `json:"stepCount,omitempty"`
	ActiveEnergyBurned *float64  `json:"activeEnergyBurned,omitempty"`
	MaxHeartRate       *float64  `json:"maxHeartRate,omitempty"`
	AverageHeartRate   *float64  `json:"averageHeartRate,omitempty"`
	PreviousItemID     *string   `json:"previousItemId,omitempty"`
	NextItemID         *string   `json:"nextItemId,omitempty"`
}

// VisitDetails is present on items spent at one location.
type VisitDetails struct {
	ItemID         string  `json:"itemId"`
	PlaceID        *string `json:"placeId,omitempty"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	RadiusMean     float64 `json:"radiusMean"`
	RadiusSD       float64 `json:"radiusSD"`
	ConfirmedPlace bool    `json:"confirmedPlace"`
	UncertainPlace bool    `json:"uncertainPlace"`
	LastSaved      string  `json:"lastSaved"`
	StreetAddress  *string `json:"streetAddress,omitempty"`
}

// TripDetails is present on items moving between locations.
type TripDetails struct {
	ItemID                 string  `json:"itemId"`
	Distance               float64 `json:"distance"`
	Speed                  float64 `json:"speed"`
	ClassifiedActivityType *int    `json:"classifiedActivityType,omitempty"`
	ConfirmedActivityType  *int    `json:"confirmedActivityType,omitempty"`
	UncertainActivityType  bool    `json:"uncertainActivityType"`
	LastSaved              string  `json:"lastSaved"`
}

// Item is a timeline entry, either a visit or a trip.
type Item struct {
	Base  BaseItem      `json:"base"`
	Visit *VisitDetails `json:"visit,omitempty"`
	Trip  *TripDetails  `json:"trip,omitempty"`
}

// IsVisit reports whether the item carries visit details.
func (i Item) IsVisit() bool { return i.Visit != nil }

// IsTrip reports whether the item carries trip details.
func (i Item) IsTrip() bool { return i.Trip != nil }

// PlaceID returns the visited place, or "" for trips and unassigned visits.
func (i Item) PlaceID() string {
	if i.Visit == nil || i.Visit.PlaceID == nil {
		return ""
	}
	return *i.Visit.PlaceID
}

// Start returns the start instant.
func (i Item) Start() time.Time { return i.Base.StartDate }

// End returns the end instant.
func (i Item) End() time.Time { return i.Base.EndDate }

// Duration returns the time between start and end.
func (i Item) Duration() time.Duration { return i.Base.EndDate.Sub(i.Base.StartDate) }

// ItemWithPlace pairs an item with its resolved place. Items resolving to
// the same place share the same pointer.
type ItemWithPlace struct {
	Item  Item
	Place *Place
}
