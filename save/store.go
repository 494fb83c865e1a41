package save

import (
	"fmt"
	"sort"

	"github.com/quasilyte/gdata/v2"
)

// Store is a string key-value store. Get reports ok=false for a missing key.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryStore keeps values in a map. It is used in tests and when no durable
// storage could be opened.
type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

// Keys lists stored keys in order.
func (s *MemoryStore) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

const gdataObject = "progress"

// GdataStore persists values as properties of one gdata object: files under
// the user data directory on desktop, localStorage in the browser.
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdata opens the gdata storage for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("save: open gdata %q: %w", appName, err)
	}
	return &GdataStore{m: m}, nil
}

func (s *GdataStore) Get(key string) (string, bool, error) {
	if !s.m.ObjectPropExists(gdataObject, key) {
		return "", false, nil
	}
	data, err := s.m.LoadObjectProp(gdataObject, key)
	if err != nil {
		return "", false, fmt.Errorf("save: load %s: %w", key, err)
	}
	return string(data), true, nil
}

func (s *GdataStore) Set(key, value string) error {
	if err := s.m.SaveObjectProp(gdataObject, key, []byte(value)); err != nil {
		return fmt.Errorf("save: write %s: %w", key, err)
	}
	return nil
}

func (s *GdataStore) Delete(key string) error {
	if !s.m.ObjectPropExists(gdataObject, key) {
		return nil
	}
	if err := s.m.DeleteObjectProp(gdataObject, key); err != nil {
		return fmt.Errorf("save: delete %s: %w", key, err)
	}
	return nil
}
