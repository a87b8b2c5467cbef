// FILE: bouquet/config/map.go
package config

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/spf13/cast"
)

// OrderedMap is a string to string mapping that remembers insertion order.
// Values returned by the finder are freshly built and owned by the caller.
type OrderedMap struct {
	keys   []string
	values map[string]string
}

// NewOrderedMap creates an empty map.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]string)}
}

// Set stores value under key. An existing key keeps its position.
func (m *OrderedMap) Set(key, value string) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *OrderedMap) Get(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Has reports whether key is present.
func (m *OrderedMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string {
	return slices.Clone(m.keys)
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// Map returns an unordered copy.
func (m *OrderedMap) Map() map[string]string {
	return maps.Clone(m.values)
}

// String returns the value under key, or def when the key is absent.
func (m *OrderedMap) String(key, def string) string {
	if value, ok := m.values[key]; ok {
		return value
	}
	return def
}

// Int converts the value under key to int.
func (m *OrderedMap) Int(key string) (int, error) {
	value, err := m.lookup(key)
	if err != nil {
		return 0, err
	}
	i, err := cast.ToIntE(value)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to int for key %s: %w", value, key, err)
	}
	return i, nil
}

// Int64 converts the value under key to int64.
func (m *OrderedMap) Int64(key string) (int64, error) {
	value, err := m.lookup(key)
	if err != nil {
		return 0, err
	}
	i, err := cast.ToInt64E(value)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to int64 for key %s: %w", value, key, err)
	}
	return i, nil
}

// Bool converts the value under key to bool.
func (m *OrderedMap) Bool(key string) (bool, error) {
	value, err := m.lookup(key)
	if err != nil {
		return false, err
	}
	b, err := cast.ToBoolE(value)
	if err != nil {
		return false, fmt.Errorf("cannot convert %q to bool for key %s: %w", value, key, err)
	}
	return b, nil
}

// Float64 converts the value under key to float64.
func (m *OrderedMap) Float64(key string) (float64, error) {
	value, err := m.lookup(key)
	if err != nil {
		return 0, err
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to float64 for key %s: %w", value, key, err)
	}
	return f, nil
}

// Duration converts the value under key to time.Duration ("1m30s", or nanoseconds).
func (m *OrderedMap) Duration(key string) (time.Duration, error) {
	value, err := m.lookup(key)
	if err != nil {
		return 0, err
	}
	d, err := cast.ToDurationE(value)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to duration for key %s: %w", value, key, err)
	}
	return d, nil
}

func (m *OrderedMap) lookup(key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("key not present: %s", key)
	}
	return value, nil
}
