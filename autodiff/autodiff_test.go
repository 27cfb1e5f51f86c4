// Copyright 2026 The TensorTools Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensortools/tensortools/autodiff"
	"github.com/tensortools/tensortools/tensor"
)

func TestPublicAPI_BuildAndBackward(t *testing.T) {
	a, err := autodiff.New([]float64{1, 2, 3}, "a", true)
	require.NoError(t, err)
	b, err := autodiff.New([]float64{4, 5, 6}, "b", true)
	require.NoError(t, err)

	out := a.Add(b)
	assert.Equal(t, autodiff.OpAdd, out.Op())
	assert.Equal(t, []float64{5, 7, 9}, out.Data().Data())

	out.Backward()
	assert.Equal(t, []float64{1, 1, 1}, a.Grad().Data())
	assert.Equal(t, []float64{1, 1, 1}, b.Grad().Data())
}

func TestPublicAPI_Trace(t *testing.T) {
	x := autodiff.Zeros(tensor.Shape{2, 2}, "x")
	out := x.Exp().Neg()

	nodes, edges := autodiff.Trace(out)
	assert.Len(t, nodes, 3)
	assert.Len(t, edges, 2)
}
