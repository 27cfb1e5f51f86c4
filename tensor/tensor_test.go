// Copyright 2026 The TensorTools Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/tensortools/tensortools/tensor"
)

func TestPublicAPI_Creation(t *testing.T) {
	z := tensor.Zeros(tensor.Shape{2, 3})
	assert.Equal(t, tensor.Shape{2, 3}, z.Shape())

	o := tensor.Ones(tensor.Shape{2})
	assert.Equal(t, []float64{1, 1}, o.Data())

	f := tensor.Full(tensor.Shape{2}, 7)
	assert.Equal(t, []float64{7, 7}, f.Data())

	r := tensor.Randn(rand.NewSource(1), tensor.Shape{4})
	assert.Equal(t, tensor.Shape{4}, r.Shape())
}

func TestPublicAPI_ConversionAndMath(t *testing.T) {
	a, err := tensor.FromAny([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	b, err := tensor.FromSlice([]float64{5, 6, 7, 8}, tensor.Shape{2, 2})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 8, 10, 12}, sum.Data())

	prod, err := a.MatMul(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{19, 22, 43, 50}, prod.Data())

	_, err = tensor.FromAny([][]float64{{1}, {2, 3}})
	assert.ErrorIs(t, err, tensor.ErrConversion)
}
