// FILE: bouquet/config/map_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {
	m := NewOrderedMap()
	m.Set("b", "2")
	m.Set("a", "1")
	m.Set("b", "3")

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("c"))

	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	copied := m.Map()
	copied["a"] = "changed"
	assert.Equal(t, "1", m.String("a", ""))

	keys := m.Keys()
	keys[0] = "changed"
	assert.Equal(t, []string{"b", "a"}, m.Keys())
}

func TestOrderedMapTypedGetters(t *testing.T) {
	m, err := ParseYAMLMap("port: 2525\nenabled: true\nratio: 0.5\nwait: 1m30s\nname: x\n")
	require.NoError(t, err)

	port, err := m.Int("port")
	require.NoError(t, err)
	assert.Equal(t, 2525, port)

	port64, err := m.Int64("port")
	require.NoError(t, err)
	assert.Equal(t, int64(2525), port64)

	enabled, err := m.Bool("enabled")
	require.NoError(t, err)
	assert.True(t, enabled)

	ratio, err := m.Float64("ratio")
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio)

	wait, err := m.Duration("wait")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, wait)

	_, err = m.Int("name")
	assert.Error(t, err)

	_, err = m.Int("missing")
	assert.ErrorContains(t, err, "key not present")
}
