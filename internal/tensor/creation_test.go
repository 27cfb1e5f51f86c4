package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestZeros(t *testing.T) {
	d := Zeros(Shape{2, 3})
	assert.Equal(t, Shape{2, 3}, d.Shape())
	for _, v := range d.Data() {
		assert.Equal(t, 0.0, v)
	}

	assert.Panics(t, func() { Zeros(Shape{2, -1}) })
}

func TestOnesAndFull(t *testing.T) {
	ones := Ones(Shape{4})
	assert.Equal(t, []float64{1, 1, 1, 1}, ones.Data())

	full := Full(Shape{2, 2}, 3.25)
	assert.Equal(t, []float64{3.25, 3.25, 3.25, 3.25}, full.Data())
}

func TestRandn_Shape(t *testing.T) {
	d := Randn(rand.NewSource(1), Shape{2, 3})
	assert.Equal(t, Shape{2, 3}, d.Shape())
	assert.Len(t, d.Data(), 6)
}

func TestRandn_DeterministicUnderSeed(t *testing.T) {
	a := Randn(rand.NewSource(7), Shape{10})
	b := Randn(rand.NewSource(7), Shape{10})
	assert.Equal(t, a.Data(), b.Data())

	c := Randn(rand.NewSource(8), Shape{10})
	assert.NotEqual(t, a.Data(), c.Data())
}

func TestRandn_ProducesVariedSamples(t *testing.T) {
	d := Randn(rand.NewSource(3), Shape{100})
	seen := make(map[float64]bool)
	for _, v := range d.Data() {
		seen[v] = true
	}
	assert.Greater(t, len(seen), 90, "samples should be essentially distinct")
}
