package sparseset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"densecs/pack"
)

func Test_Window_FullRangeMirrorsSet(t *testing.T) {
	// Arrange
	s := NewSet[string]()
	s.Insert(eid(1), "a")
	s.Insert(eid(2), "b")

	// Act
	w := s.Window()

	// Assert
	assert.Equal(t, 2, w.Len())
	assert.False(t, w.IsEmpty())
	assert.True(t, w.Contains(eid(1)))
	assert.False(t, w.Contains(eid(9)))
	v, ok := w.Get(eid(2))
	assert.True(t, ok)
	assert.Equal(t, "b", *v)
}

func Test_Window_Pairs_PreservesDenseOrder(t *testing.T) {
	// Arrange
	s := NewSet[string]()
	s.Insert(eid(10), "x")
	s.Insert(eid(20), "y")
	s.Insert(eid(30), "z")

	// Act
	pairs := s.Window().Pairs()

	// Assert
	assert.Equal(t, 3, len(pairs))
	assert.Equal(t, eid(10), pairs[0].Entity)
	assert.Equal(t, "x", *pairs[0].Value)
	assert.Equal(t, eid(30), pairs[2].Entity)
	assert.Equal(t, "z", *pairs[2].Value)
}

func Test_Window_EmptyZoneIsTheNullVariant(t *testing.T) {
	// Arrange
	s := NewSet[string]()
	s.SetPackMode(pack.NewUpdate())

	// Act
	w := s.Modified()

	// Assert
	assert.Equal(t, 0, w.Len())
	assert.True(t, w.IsEmpty())
	assert.False(t, w.Contains(eid(0)))
}

func Test_Window_IsUnique(t *testing.T) {
	// Arrange
	s := NewUnique[int](7)

	// Act
	w := s.Window()

	// Assert
	assert.True(t, w.IsUnique())
	assert.Equal(t, 1, w.Len())
}

func Test_WindowMut_GetAllowsInPlaceMutation(t *testing.T) {
	// Arrange
	s := NewSet[int]()
	s.Insert(eid(1), 10)

	// Act
	w := s.WindowMut()
	v, ok := w.Get(eid(1))
	assert.True(t, ok)
	*v = 99

	// Assert
	got, ok := s.Get(eid(1))
	assert.True(t, ok)
	assert.Equal(t, 99, *got)
}

func Test_WindowMut_ZoneViewDoesNotExposePackInfo(t *testing.T) {
	// Arrange
	s := NewSet[int]()
	s.SetPackMode(pack.NewUpdate())
	s.Insert(eid(1), 1)

	// Act
	zone := s.InsertedMut()

	// Assert: a zone sub-window has no pack coordination of its own; only
	// the full-range WindowMut returned by Set.WindowMut carries pack.Info.
	assert.Equal(t, 1, zone.Len())
	assert.Nil(t, zone.info)
}
