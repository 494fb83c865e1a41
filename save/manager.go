// Package save persists run progress: one JSON record for the last saved run
// and a separate best-score value.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	RecordKey = "superAnimalRun_save"
	BestKey   = "superAnimalRun_best"

	DefaultLives = 3
	DefaultLevel = 1
)

var (
	ErrNoSave  = errors.New("save: no saved game")
	ErrCorrupt = errors.New("save: corrupt save record")
)

// Progress is the part of a run that survives a save.
type Progress struct {
	Score int
	Coins int
	Lives int
	Level int
}

// Record is the stored JSON document.
type Record struct {
	Score     int   `json:"score"`
	Coins     int   `json:"coins"`
	Lives     int   `json:"lives"`
	Level     int   `json:"level"`
	BestScore int   `json:"bestScore"`
	Timestamp int64 `json:"timestamp"`
}

type Manager struct {
	store Store
	now   func() time.Time
	best  int
}

type Option func(*Manager)

// WithClock replaces time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager wraps store and reads the stored best score. A nil store falls
// back to an in-memory one.
func NewManager(store Store, opts ...Option) *Manager {
	if store == nil {
		store = NewMemoryStore()
	}
	m := &Manager{store: store, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	if best, err := m.readBest(); err != nil {
		log.Printf("save: read best score: %v", err)
	} else {
		m.best = best
	}
	return m
}

// Best is the highest score known to the manager.
func (m *Manager) Best() int {
	return m.best
}

// Save writes p and raises the best score to at least p.Score. Only a failed
// record write is reported.
func (m *Manager) Save(p Progress) (Record, error) {
	best := max(m.best, p.Score)
	rec := Record{
		Score:     p.Score,
		Coins:     p.Coins,
		Lives:     p.Lives,
		Level:     p.Level,
		BestScore: best,
		Timestamp: m.now().UnixMilli(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("save: marshal record: %w", err)
	}
	if err := m.store.Set(RecordKey, string(data)); err != nil {
		return rec, fmt.Errorf("save: write record: %w", err)
	}
	m.best = best
	// The record already carries the best score, so a failed best-key write
	// does not fail the save.
	if err := m.store.Set(BestKey, strconv.Itoa(best)); err != nil {
		log.Printf("save: write best score: %v", err)
	}
	return rec, nil
}

// Load reads the saved run. Missing or malformed fields fall back to a fresh
// run's values one by one; the best score becomes the larger of the best-score
// key and the record's own copy.
func (m *Manager) Load() (Progress, error) {
	if best, err := m.readBest(); err == nil {
		m.best = max(m.best, best)
	}

	raw, ok, err := m.store.Get(RecordKey)
	if err != nil {
		return Progress{}, fmt.Errorf("save: read record: %w", err)
	}
	if !ok {
		return Progress{}, ErrNoSave
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return Progress{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	p := Progress{
		Score: intField(fields, "score", 0),
		Coins: intField(fields, "coins", 0),
		Lives: intField(fields, "lives", DefaultLives),
		Level: intField(fields, "level", DefaultLevel),
	}
	if p.Lives < 1 {
		p.Lives = DefaultLives
	}
	if p.Level < 1 {
		p.Level = DefaultLevel
	}
	m.best = max(m.best, intField(fields, "bestScore", 0))
	return p, nil
}

// HasSave reports whether a record exists. Store errors count as no save.
func (m *Manager) HasSave() bool {
	_, ok, err := m.store.Get(RecordKey)
	if err != nil {
		log.Printf("save: check record: %v", err)
		return false
	}
	return ok
}

// DeleteSave removes the record. The best score is kept.
func (m *Manager) DeleteSave() error {
	if err := m.store.Delete(RecordKey); err != nil {
		return fmt.Errorf("save: delete record: %w", err)
	}
	return nil
}

// SaveBest records score as the best score when it beats the current one.
func (m *Manager) SaveBest(score int) error {
	if score <= m.best {
		return nil
	}
	if err := m.store.Set(BestKey, strconv.Itoa(score)); err != nil {
		return fmt.Errorf("save: write best score: %w", err)
	}
	m.best = score
	return nil
}

func (m *Manager) readBest() (int, error) {
	raw, ok, err := m.store.Get(BestKey)
	if err != nil || !ok {
		return 0, err
	}
	return leadingInt(raw), nil
}

// intField decodes a numeric field. Absent, zero, non-numeric and non-finite
// values yield def.
func intField(fields map[string]json.RawMessage, name string, def int) int {
	raw, ok := fields[name]
	if !ok {
		return def
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil || f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return def
	}
	return int(f)
}

// leadingInt parses the leading decimal digits of s, returning 0 when there
// are none.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
