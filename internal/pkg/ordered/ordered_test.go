package ordered_test

import (
	"slices"
	"testing"

	"deliverychecker/internal/pkg/ordered"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Set(t *testing.T) {
	t.Run("keeps first insertion order", func(t *testing.T) {
		m := ordered.NewMap[string, int](0)
		m.Set("c", 1)
		m.Set("a", 2)
		m.Set("b", 3)

		assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
		assert.Equal(t, 3, m.Len())
	})

	t.Run("overwrite replaces value and keeps position", func(t *testing.T) {
		m := ordered.NewMap[int, string](2)
		m.Set(1, "first")
		m.Set(2, "second")
		m.Set(1, "last")

		v, ok := m.Get(1)
		require.True(t, ok)
		assert.Equal(t, "last", v)
		assert.Equal(t, []int{1, 2}, m.Keys())
		assert.Equal(t, 2, m.Len())
	})

	t.Run("missing key", func(t *testing.T) {
		m := ordered.NewMap[int, string](0)

		v, ok := m.Get(42)
		assert.False(t, ok)
		assert.Empty(t, v)
		assert.False(t, m.Has(42))
	})

	t.Run("keys is a copy", func(t *testing.T) {
		m := ordered.NewMap[int, int](0)
		m.Set(1, 1)

		keys := m.Keys()
		keys[0] = 99

		assert.Equal(t, []int{1}, m.Keys())
	})
}

func TestMap_All(t *testing.T) {
	m := ordered.NewMap[string, int](0)
	m.Set("x", 1)
	m.Set("y", 2)
	m.Set("x", 3)

	var keys []string
	var values []int
	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal(t, []string{"x", "y"}, keys)
	assert.Equal(t, []int{3, 2}, values)
}

func TestMap_All_StopsEarly(t *testing.T) {
	m := ordered.NewMap[int, int](0)
	for i := range 5 {
		m.Set(i, i)
	}

	visited := 0
	for k := range m.All() {
		visited++
		if k == 1 {
			break
		}
	}

	assert.Equal(t, 2, visited)
}

func TestSet(t *testing.T) {
	s := ordered.NewSet[int](0)
	s.Add(3)
	s.Add(1)
	s.Add(3)
	s.Add(2)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(1))
	assert.False(t, s.Has(4))
	assert.Equal(t, []int{3, 1, 2}, slices.Collect(s.All()))
}
