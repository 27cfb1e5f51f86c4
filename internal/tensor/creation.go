package tensor

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Zeros creates an array of the given shape filled with zeros.
// Panics on an invalid shape; use FromSlice for validated construction.
func Zeros(shape Shape) *Dense {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return &Dense{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}
}

// Ones creates an array of the given shape filled with ones.
func Ones(shape Shape) *Dense {
	return Full(shape, 1)
}

// Full creates an array of the given shape filled with value.
func Full(shape Shape, value float64) *Dense {
	d := Zeros(shape)
	for i := range d.data {
		d.data[i] = value
	}
	return d
}

// Randn creates an array of the given shape filled with independent
// standard-normal samples drawn from src. The source is passed
// explicitly so callers control seeding and tests stay reproducible;
// a nil src falls back to the shared global source.
func Randn(src rand.Source, shape Shape) *Dense {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	d := Zeros(shape)
	for i := range d.data {
		d.data[i] = normal.Rand()
	}
	return d
}
