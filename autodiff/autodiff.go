// Copyright 2026 The TensorTools Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation
// over dense arrays.
//
// A Tensor is simultaneously a value holder, a graph node recording
// how it was produced, and the carrier of the gradient written during
// backward traversal. The computation graph is implicit in the
// operand references each Tensor keeps.
//
// Example:
//
//	a, _ := autodiff.New([]float64{1, 2, 3}, "a", true)
//	b, _ := autodiff.New([]float64{4, 5, 6}, "b", true)
//	out := a.Add(b).Exp()
//	out.Backward()
//	fmt.Println(a.Grad())
package autodiff

import (
	"golang.org/x/exp/rand"

	"github.com/tensortools/tensortools/internal/autodiff"
	"github.com/tensortools/tensortools/internal/tensor"
)

// Tensor is a value holder and graph node; see the package
// documentation for the differentiation model.
type Tensor = autodiff.Tensor

// Op is the short symbolic tag naming the operation that produced a
// node.
type Op = autodiff.Op

// Operator tags.
const (
	OpNone      Op = autodiff.OpNone
	OpAdd       Op = autodiff.OpAdd
	OpSub       Op = autodiff.OpSub
	OpMul       Op = autodiff.OpMul
	OpDiv       Op = autodiff.OpDiv
	OpMatMul    Op = autodiff.OpMatMul
	OpPow       Op = autodiff.OpPow
	OpExp       Op = autodiff.OpExp
	OpNeg       Op = autodiff.OpNeg
	OpTranspose Op = autodiff.OpTranspose
)

// Edge is a directed (operand, consumer) pair returned by Trace.
type Edge = autodiff.Edge

// New creates a leaf Tensor from a scalar or nested numeric slice.
func New(data any, label string, requiresGrad bool) (*Tensor, error) {
	return autodiff.New(data, label, requiresGrad)
}

// FromDense creates a leaf Tensor wrapping an already-built array.
func FromDense(d *tensor.Dense, label string, requiresGrad bool) *Tensor {
	return autodiff.FromDense(d, label, requiresGrad)
}

// Zeros creates a zero-filled differentiable leaf.
func Zeros(shape tensor.Shape, label string) *Tensor {
	return autodiff.Zeros(shape, label)
}

// Ones creates a one-filled differentiable leaf.
func Ones(shape tensor.Shape, label string) *Tensor {
	return autodiff.Ones(shape, label)
}

// Randn creates a differentiable leaf filled with standard-normal
// samples drawn from src.
func Randn(src rand.Source, shape tensor.Shape, label string) *Tensor {
	return autodiff.Randn(src, shape, label)
}

// Trace returns every node reachable from root and every
// operand-to-consumer edge, for graph inspection and rendering.
func Trace(root *Tensor) ([]*Tensor, []Edge) {
	return autodiff.Trace(root)
}
