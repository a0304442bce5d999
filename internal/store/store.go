package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"almanac/internal/calendar"
	"almanac/internal/reminders"
)

// Source is read access to the event collection, the boundary the UI and
// the list command consume.
type Source interface {
	// Events returns the full sorted event snapshot.
	Events() []calendar.Event
	// Range returns events whose date span overlaps [start, end].
	Range(start, end time.Time) []calendar.Event
}

// eventRecord is the persisted shape of one event, keyed by id in
// events.json. It mirrors the calendar/<uid> document tree the hosted
// version of this app kept.
type eventRecord struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type maintenanceRecord struct {
	Type    string `json:"maintenanceType"`
	Desc    string `json:"maintenanceDesc,omitempty"`
	EndDate string `json:"maintenanceEndDate,omitempty"`
}

type assetRecord struct {
	Key         string              `json:"key"`
	Year        string              `json:"year,omitempty"`
	Make        string              `json:"make,omitempty"`
	Model       string              `json:"model,omitempty"`
	VIN         string              `json:"vin,omitempty"`
	Plate       string              `json:"plate,omitempty"`
	Category    string              `json:"category,omitempty"`
	Maintenance []maintenanceRecord `json:"maintenance,omitempty"`
}

// Store keeps events and assets in JSON documents under a data directory
// and serves in-memory snapshots. All mutation goes through Add/Update/
// Delete, which persist before returning.
type Store struct {
	dir string

	mu     sync.RWMutex
	events map[string]eventRecord
	assets []assetRecord
}

// Open loads (or initializes) the documents under dir. An empty dir selects
// the default data directory.
func Open(dir string) (*Store, error) {
	var err error
	if dir == "" {
		dir, err = ResolveDataDir()
		if err != nil {
			return nil, err
		}
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{dir: dir}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the data directory backing the store.
func (s *Store) Dir() string { return s.dir }

// EventsPath returns the events document path.
func (s *Store) EventsPath() string { return filepath.Join(s.dir, eventsFile) }

// AssetsPath returns the assets document path.
func (s *Store) AssetsPath() string { return filepath.Join(s.dir, assetsFile) }

// Reload re-reads both documents from disk, replacing the in-memory state.
// Missing files load as empty collections.
func (s *Store) Reload() error {
	events := make(map[string]eventRecord)
	if err := readJSON(filepath.Join(s.dir, eventsFile), &events); err != nil {
		return fmt.Errorf("load events: %w", err)
	}

	var assets []assetRecord
	if err := readJSON(filepath.Join(s.dir, assetsFile), &assets); err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	s.mu.Lock()
	s.events = events
	s.assets = assets
	s.mu.Unlock()
	return nil
}

// Events returns all events sorted by start date, then title. Events whose
// start date does not parse sort after dated ones, by title.
func (s *Store) Events() []calendar.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]calendar.Event, 0, len(s.events))
	for id, rec := range s.events {
		list = append(list, calendar.Event{
			ID:    id,
			Title: rec.Title,
			Start: rec.Start,
			End:   rec.End,
			Notes: rec.Notes,
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		di, erri := calendar.ParseDate(list[i].Start)
		dj, errj := calendar.ParseDate(list[j].Start)
		switch {
		case erri == nil && errj == nil:
			if !di.Equal(dj) {
				return di.Before(dj)
			}
			return list[i].Title < list[j].Title
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return list[i].Title < list[j].Title
		}
	})
	return list
}

// Range returns the events whose date span overlaps [start, end].
func (s *Store) Range(start, end time.Time) []calendar.Event {
	var out []calendar.Event
	for _, e := range s.Events() {
		es, ee, err := calendar.EventRange(e)
		if err != nil {
			continue
		}
		if ee.Before(start) || es.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Get looks an event up by id.
func (s *Store) Get(id string) (calendar.Event, error) {
	s.mu.RLock()
	rec, ok := s.events[id]
	s.mu.RUnlock()
	if !ok {
		return calendar.Event{}, ErrNotFound
	}
	return calendar.Event{ID: id, Title: rec.Title, Start: rec.Start, End: rec.End, Notes: rec.Notes}, nil
}

// Add validates and persists a new event, returning it with its generated id.
func (s *Store) Add(e calendar.Event) (calendar.Event, error) {
	if err := validate(e); err != nil {
		return calendar.Event{}, err
	}

	e.ID = uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = record(e)
	if err := s.saveEventsLocked(); err != nil {
		delete(s.events, e.ID)
		return calendar.Event{}, err
	}
	return e, nil
}

// Update replaces the fields of an existing event in place.
func (s *Store) Update(e calendar.Event) error {
	if err := validate(e); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.events[e.ID]
	if !ok {
		return ErrNotFound
	}
	s.events[e.ID] = record(e)
	if err := s.saveEventsLocked(); err != nil {
		s.events[e.ID] = prev
		return err
	}
	return nil
}

// Delete removes an event by id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.events[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.events, id)
	if err := s.saveEventsLocked(); err != nil {
		s.events[id] = prev
		return err
	}
	return nil
}

// Assets returns the tracked assets for reminder filtering.
func (s *Store) Assets() []reminders.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]reminders.Asset, 0, len(s.assets))
	for _, rec := range s.assets {
		a := reminders.Asset{
			Key:      rec.Key,
			Year:     rec.Year,
			Make:     rec.Make,
			Model:    rec.Model,
			VIN:      rec.VIN,
			Plate:    rec.Plate,
			Category: rec.Category,
		}
		for _, m := range rec.Maintenance {
			a.Maintenance = append(a.Maintenance, reminders.Maintenance{
				Type:    m.Type,
				Desc:    m.Desc,
				EndDate: m.EndDate,
			})
		}
		out = append(out, a)
	}
	return out
}

func validate(e calendar.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if _, _, err := calendar.EventRange(e); err != nil {
		return err
	}
	return nil
}

func record(e calendar.Event) eventRecord {
	end := e.End
	if end == e.Start {
		end = ""
	}
	return eventRecord{
		Title: strings.TrimSpace(e.Title),
		Start: e.Start,
		End:   end,
		Notes: strings.TrimSpace(e.Notes),
	}
}

func (s *Store) saveEventsLocked() error {
	return writeJSON(filepath.Join(s.dir, eventsFile), s.events)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// writeJSON persists by writing a sibling temp file and renaming it over
// the target, so a crash never leaves a half-written document.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Chmod(filePermissions); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
