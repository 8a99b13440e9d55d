// Package session persists the pain diary and aggregates it for the
// heatmap view.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/painscape/painscape/pkg/region"
)

// Entry is one recorded pain observation.
type Entry struct {
	Date      time.Time   `yaml:"date"`
	Region    region.Name `yaml:"region"`
	Intensity float32     `yaml:"intensity"` // 0..region.IntensityMax
	Note      string      `yaml:"note,omitempty"`
}

// Store is a YAML-file-backed pain diary. Not safe for concurrent use; the
// app accesses it from the UI thread only.
type Store struct {
	path    string
	entries []Entry
}

// Open loads the diary at path, creating an empty store when the file does
// not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading diary %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("parsing diary %s: %w", path, err)
	}
	return s, nil
}

// Add validates and appends an entry, then persists.
func (s *Store) Add(e Entry) error {
	if _, ok := region.ByName(e.Region); !ok {
		return fmt.Errorf("unknown region %q", e.Region)
	}
	if e.Intensity < 0 || e.Intensity > region.IntensityMax {
		return fmt.Errorf("intensity %v out of range 0..%d", e.Intensity, region.IntensityMax)
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	s.entries = append(s.entries, e)
	return s.save()
}

// Delete removes the entry at index i and persists.
func (s *Store) Delete(i int) error {
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("entry index %d out of range", i)
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return s.save()
}

// Entries returns all entries, oldest first.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Date.Before(out[b].Date)
	})
	return out
}

// EntriesBetween returns entries with from <= Date < to, oldest first.
func (s *Store) EntriesBetween(from, to time.Time) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Date.Before(out[b].Date)
	})
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating diary dir %s: %w", dir, err)
	}
	data, err := yaml.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encoding diary: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing diary %s: %w", s.path, err)
	}
	return nil
}

// WeeklySummary aggregates mean intensity per region over the 7 days before
// now. Regions with no entries are omitted, so an empty diary produces an
// empty heatmap.
func (s *Store) WeeklySummary(now time.Time) []region.Intensity {
	from := now.AddDate(0, 0, -7)

	sums := make(map[region.Name]float32)
	counts := make(map[region.Name]int)
	for _, e := range s.entries {
		if e.Date.Before(from) || e.Date.After(now) {
			continue
		}
		sums[e.Region] += e.Intensity
		counts[e.Region]++
	}

	var out []region.Intensity
	// Emit in catalog order so the heatmap list is stable
	for _, r := range region.Regions() {
		if n := counts[r.Name]; n > 0 {
			out = append(out, region.Intensity{
				Region: r.Name,
				Value:  sums[r.Name] / float32(n),
			})
		}
	}
	return out
}
