package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ID_ZeroIsIndexZero(t *testing.T) {
	// Arrange & Act
	id := Zero()

	// Assert
	assert.Equal(t, uint32(0), id.Index())
	assert.Equal(t, uint32(0), id.Generation())
}

func Test_ID_WithIndexPreservesGeneration(t *testing.T) {
	// Arrange
	id := New(3, 7)

	// Act
	moved := id.WithIndex(42)

	// Assert
	assert.Equal(t, uint32(42), moved.Index())
	assert.Equal(t, uint32(7), moved.Generation())
	assert.Equal(t, uint32(3), id.Index(), "WithIndex must not mutate the receiver")
}

func Test_ID_WithGenerationPreservesIndex(t *testing.T) {
	// Arrange
	id := New(11, 1)

	// Act
	bumped := id.WithGeneration(2)

	// Assert
	assert.Equal(t, uint32(11), bumped.Index())
	assert.Equal(t, uint32(2), bumped.Generation())
}
