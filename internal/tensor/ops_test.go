package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromSlice(t *testing.T, data []float64, shape Shape) *Dense {
	t.Helper()
	d, err := FromSlice(data, shape)
	require.NoError(t, err)
	return d
}

func TestDense_Elementwise(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, Shape{2, 2})
	b := mustFromSlice(t, []float64{4, 3, 2, 1}, Shape{2, 2})

	tests := []struct {
		name string
		op   func(*Dense, *Dense) (*Dense, error)
		want []float64
	}{
		{"add", (*Dense).Add, []float64{5, 5, 5, 5}},
		{"sub", (*Dense).Sub, []float64{-3, -1, 1, 3}},
		{"mul", (*Dense).Mul, []float64{4, 6, 6, 4}},
		{"div", (*Dense).Div, []float64{0.25, 2.0 / 3.0, 1.5, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.op(a, b)
			require.NoError(t, err)
			assert.Equal(t, Shape{2, 2}, out.Shape())
			assert.InDeltaSlice(t, tt.want, out.Data(), 1e-12)
		})
	}
}

func TestDense_ScalarBroadcast(t *testing.T) {
	v := mustFromSlice(t, []float64{1, 2, 4}, Shape{3})
	s, err := FromAny(2.0)
	require.NoError(t, err)

	tests := []struct {
		name string
		op   func(*Dense, *Dense) (*Dense, error)
		want []float64
	}{
		{"add", (*Dense).Add, []float64{3, 4, 6}},
		{"sub", (*Dense).Sub, []float64{-1, 0, 2}},
		{"mul", (*Dense).Mul, []float64{2, 4, 8}},
		{"div", (*Dense).Div, []float64{0.5, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.op(v, s)
			require.NoError(t, err)
			assert.Equal(t, Shape{3}, out.Shape(), "scalar operand adopts the peer's shape")
			assert.InDeltaSlice(t, tt.want, out.Data(), 1e-12)
		})
	}

	// Scalar on the left broadcasts too.
	out, err := s.Sub(v)
	require.NoError(t, err)
	assert.Equal(t, Shape{3}, out.Shape())
	assert.InDeltaSlice(t, []float64{1, 0, -2}, out.Data(), 1e-12)
}

func TestDense_ElementwiseShapeMismatch(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, Shape{2, 2})
	b := mustFromSlice(t, []float64{1, 2, 3}, Shape{3})

	for _, op := range []func(*Dense, *Dense) (*Dense, error){
		(*Dense).Add, (*Dense).Sub, (*Dense).Mul, (*Dense).Div,
	} {
		_, err := op(a, b)
		assert.ErrorIs(t, err, ErrShapeMismatch)
	}
}

func TestDense_ScaleNeg(t *testing.T) {
	d := mustFromSlice(t, []float64{1, -2, 3}, Shape{3})
	assert.Equal(t, []float64{2, -4, 6}, d.Scale(2).Data())
	assert.Equal(t, []float64{-1, 2, -3}, d.Neg().Data())
	// Operand untouched.
	assert.Equal(t, []float64{1, -2, 3}, d.Data())
}

func TestDense_Exp(t *testing.T) {
	d := mustFromSlice(t, []float64{0, 1, -1}, Shape{3})
	out := d.Exp()
	assert.InDeltaSlice(t, []float64{1, math.E, 1 / math.E}, out.Data(), 1e-12)
}

func TestDense_Pow(t *testing.T) {
	d := mustFromSlice(t, []float64{1, 2, 4}, Shape{3})
	assert.InDeltaSlice(t, []float64{1, 4, 16}, d.Pow(2).Data(), 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0.5, 0.25}, d.Pow(-1).Data(), 1e-12)
}

func TestDense_MatMul(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	b := mustFromSlice(t, []float64{7, 8, 9, 10, 11, 12}, Shape{3, 2})

	out, err := a.MatMul(b)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, out.Shape())
	assert.InDeltaSlice(t, []float64{58, 64, 139, 154}, out.Data(), 1e-12)
}

func TestDense_MatMul_ShapeErrors(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, Shape{2, 2})
	vec := mustFromSlice(t, []float64{1, 2}, Shape{2})
	wide := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{3, 2})

	_, err := a.MatMul(vec)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = a.MatMul(wide)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDense_Transpose2D(t *testing.T) {
	d := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	out := d.Transpose()
	assert.Equal(t, Shape{3, 2}, out.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, out.Data())

	// Transpose is self-inverse.
	assert.True(t, out.Transpose().Equal(d))
}

func TestDense_Transpose3D(t *testing.T) {
	d := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, Shape{2, 2, 2})
	out := d.Transpose()
	assert.Equal(t, Shape{2, 2, 2}, out.Shape())
	// Element (i, j, k) moves to (k, j, i).
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				assert.Equal(t, d.At(i, j, k), out.At(k, j, i))
			}
		}
	}
}

func TestDense_Transpose1DAndScalar(t *testing.T) {
	vec := mustFromSlice(t, []float64{1, 2, 3}, Shape{3})
	assert.True(t, vec.Transpose().Equal(vec))

	scalar, err := FromAny(5.0)
	require.NoError(t, err)
	assert.True(t, scalar.Transpose().Equal(scalar))
}

func TestDense_AllClose(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2}, Shape{2})
	b := mustFromSlice(t, []float64{1.0005, 2}, Shape{2})
	assert.True(t, a.AllClose(b, 1e-3))
	assert.False(t, a.AllClose(b, 1e-6))
	assert.False(t, a.AllClose(mustFromSlice(t, []float64{1, 2}, Shape{1, 2}), 1))
}
