// Copyright 2026 The TensorTools Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense array layer of
// TensorTools.
//
// The package defines the value types the autodiff graph is built
// over:
//   - Dense: a dense n-dimensional float64 array in row-major layout
//   - Shape: ordered tuple of dimension sizes
//
// Example:
//
//	d, err := tensor.FromAny([][]float64{{1, 2}, {3, 4}})
//	sum, err := d.Add(d)
package tensor

import (
	"golang.org/x/exp/rand"

	"github.com/tensortools/tensortools/internal/tensor"
)

// Shape represents the dimensions of a dense array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Dense is a dense n-dimensional float64 array.
type Dense = tensor.Dense

// Error kinds surfaced by the array layer.
var (
	// ErrConversion reports input that cannot be interpreted as a
	// rectangular numeric array.
	ErrConversion = tensor.ErrConversion

	// ErrShapeMismatch reports operand shapes incompatible with the
	// requested elementwise or matrix operation.
	ErrShapeMismatch = tensor.ErrShapeMismatch
)

// Creation functions

// Zeros creates an array filled with zeros.
func Zeros(shape Shape) *Dense {
	return tensor.Zeros(shape)
}

// Ones creates an array filled with ones.
func Ones(shape Shape) *Dense {
	return tensor.Ones(shape)
}

// Full creates an array filled with a specific value.
func Full(shape Shape, value float64) *Dense {
	return tensor.Full(shape, value)
}

// Randn creates an array filled with standard-normal samples drawn
// from src. A nil src uses the shared global source.
func Randn(src rand.Source, shape Shape) *Dense {
	return tensor.Randn(src, shape)
}

// FromSlice creates an array from a flat float64 slice and a shape.
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}

// FromAny converts a scalar or nested numeric slice into an array.
func FromAny(v any) (*Dense, error) {
	return tensor.FromAny(v)
}
