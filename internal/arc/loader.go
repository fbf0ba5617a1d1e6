package arc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrPlaceNotFound is returned when an item references a place missing from the export.
var ErrPlaceNotFound = errors.New("place not found")

// placeFileChars are the possible place file names, one per hex digit.
const placeFileChars = "0123456789ABCDEF"

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadMetadata reads metadata.json.
func LoadMetadata(exportPath string) (Metadata, error) {
	var m Metadata
	err := readJSON(filepath.Join(exportPath, "metadata.json"), &m)
	return m, err
}

// LoadPlacesFile reads places/<first>.json.
func LoadPlacesFile(exportPath string, first rune) ([]Place, error) {
	var places []Place
	err := readJSON(filepath.Join(exportPath, "places", string(first)+".json"), &places)
	return places, err
}

// LoadAllPlaces reads every place file present. Missing files are skipped.
func LoadAllPlaces(exportPath string) ([]Place, error) {
	var all []Place
	for _, c := range placeFileChars {
		places, err := LoadPlacesFile(exportPath, c)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		all = append(all, places...)
	}
	return all, nil
}

// LoadItemsForMonth reads items/<YYYY-MM>.json.
func LoadItemsForMonth(exportPath, yearMonth string) ([]Item, error) {
	var items []Item
	err := readJSON(filepath.Join(exportPath, "items", yearMonth+".json"), &items)
	return items, err
}

// MonthFiles lists the YYYY-MM names of the item files, chronologically.
func MonthFiles(exportPath string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(exportPath, "items"))
	if err != nil {
		return nil, fmt.Errorf("failed to read items directory: %w", err)
	}
	var months []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		months = append(months, strings.TrimSuffix(e.Name(), ".json"))
	}
	slices.Sort(months)
	return months, nil
}

// LoadAllItems reads every month file in chronological order.
func LoadAllItems(exportPath string) ([]Item, error) {
	months, err := MonthFiles(exportPath)
	if err != nil {
		return nil, err
	}
	var all []Item
	for _, m := range months {
		items, err := LoadItemsForMonth(exportPath, m)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	return all, nil
}

// PlaceCache resolves place IDs, loading a whole place file on the first miss.
// It is not safe for concurrent use.
type PlaceCache struct {
	exportPath string
	places     map[string]*Place
	loaded     map[rune]bool
}

// NewPlaceCache creates an empty cache over an export.
func NewPlaceCache(exportPath string) *PlaceCache {
	return &PlaceCache{
		exportPath: exportPath,
		places:     make(map[string]*Place),
		loaded:     make(map[rune]bool),
	}
}

// Get returns the place with the given ID.
func (c *PlaceCache) Get(id string) (*Place, error) {
	if p, ok := c.places[id]; ok {
		return p, nil
	}
	if id == "" {
		return nil, fmt.Errorf("%w: empty place id", ErrPlaceNotFound)
	}

	first := []rune(strings.ToUpper(id))[0]
	if !c.loaded[first] {
		c.loaded[first] = true
		places, err := LoadPlacesFile(c.exportPath, first)
		if err != nil {
			return nil, err
		}
		for i := range places {
			c.places[places[i].ID] = &places[i]
		}
	}

	if p, ok := c.places[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrPlaceNotFound, id)
}

// Len returns the number of cached places.
func (c *PlaceCache) Len() int {
	return len(c.places)
}

func withPlaces(exportPath string, items []Item) ([]ItemWithPlace, error) {
	cache := NewPlaceCache(exportPath)
	out := make([]ItemWithPlace, 0, len(items))
	for _, item := range items {
		iwp := ItemWithPlace{Item: item}
		if id := item.PlaceID(); id != "" {
			p, err := cache.Get(id)
			if err != nil {
				return nil, err
			}
			iwp.Place = p
		}
		out = append(out, iwp)
	}
	return out, nil
}

// LoadItemsWithPlaces reads one month and resolves its places.
func LoadItemsWithPlaces(exportPath, yearMonth string) ([]ItemWithPlace, error) {
	items, err := LoadItemsForMonth(exportPath, yearMonth)
	if err != nil {
		return nil, err
	}
	return withPlaces(exportPath, items)
}

// LoadAllItemsWithPlaces reads every month and resolves places.
func LoadAllItemsWithPlaces(exportPath string) ([]ItemWithPlace, error) {
	items, err := LoadAllItems(exportPath)
	if err != nil {
		return nil, err
	}
	return withPlaces(exportPath, items)
}
