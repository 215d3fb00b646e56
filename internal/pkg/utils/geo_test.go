package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclideanDistance(t *testing.T) {
	assert.InDelta(t, 5.0, EuclideanDistance(0, 0, 3, 4), 1e-9)
	assert.InDelta(t, 0.0, EuclideanDistance(220, 180, 220, 180), 1e-9)
}

func TestClampPixelRatio(t *testing.T) {
	assert.Equal(t, 1.0, ClampPixelRatio(0, 2))
	assert.Equal(t, 1.0, ClampPixelRatio(-3, 2))
	assert.Equal(t, 1.5, ClampPixelRatio(1.5, 2))
	assert.Equal(t, 2.0, ClampPixelRatio(3, 2))
}
