package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Add returns the elementwise sum d + other.
func (d *Dense) Add(other *Dense) (*Dense, error) {
	a, b, out, err := d.alignWith("add", other)
	if err != nil {
		return nil, err
	}
	floats.AddTo(out.data, a, b)
	return out, nil
}

// Sub returns the elementwise difference d - other.
func (d *Dense) Sub(other *Dense) (*Dense, error) {
	a, b, out, err := d.alignWith("sub", other)
	if err != nil {
		return nil, err
	}
	floats.SubTo(out.data, a, b)
	return out, nil
}

// Mul returns the elementwise product d * other.
func (d *Dense) Mul(other *Dense) (*Dense, error) {
	a, b, out, err := d.alignWith("mul", other)
	if err != nil {
		return nil, err
	}
	floats.MulTo(out.data, a, b)
	return out, nil
}

// Div returns the elementwise quotient d / other.
func (d *Dense) Div(other *Dense) (*Dense, error) {
	a, b, out, err := d.alignWith("div", other)
	if err != nil {
		return nil, err
	}
	floats.DivTo(out.data, a, b)
	return out, nil
}

// alignWith validates operand shapes for an elementwise operation,
// allocates the result array and returns the aligned backing slices.
// A ()-shaped scalar operand broadcasts against a peer of any shape;
// all other shape differences are errors.
func (d *Dense) alignWith(op string, other *Dense) (a, b []float64, out *Dense, err error) {
	switch {
	case d.shape.Equal(other.shape):
		return d.data, other.data, Zeros(d.shape), nil
	case len(other.shape) == 0:
		return d.data, Full(d.shape, other.data[0]).data, Zeros(d.shape), nil
	case len(d.shape) == 0:
		return Full(other.shape, d.data[0]).data, other.data, Zeros(other.shape), nil
	default:
		return nil, nil, nil, fmt.Errorf("%w: %s operands have shapes %v and %v",
			ErrShapeMismatch, op, d.shape, other.shape)
	}
}

// Scale returns d with every element multiplied by c.
func (d *Dense) Scale(c float64) *Dense {
	out := Zeros(d.shape)
	floats.ScaleTo(out.data, c, d.data)
	return out
}

// Neg returns the elementwise negation of d.
func (d *Dense) Neg() *Dense {
	return d.Scale(-1)
}

// Exp returns the elementwise exponential e^d.
func (d *Dense) Exp() *Dense {
	out := Zeros(d.shape)
	for i, v := range d.data {
		out.data[i] = math.Exp(v)
	}
	return out
}

// Pow returns the elementwise power d^p.
func (d *Dense) Pow(p float64) *Dense {
	out := Zeros(d.shape)
	for i, v := range d.data {
		out.data[i] = math.Pow(v, p)
	}
	return out
}

// MatMul returns the matrix product d @ other. Both operands must be
// 2-D with matching inner dimensions.
func (d *Dense) MatMul(other *Dense) (*Dense, error) {
	if len(d.shape) != 2 || len(other.shape) != 2 {
		return nil, fmt.Errorf("%w: matmul requires 2-D operands, got %v and %v",
			ErrShapeMismatch, d.shape, other.shape)
	}
	if d.shape[1] != other.shape[0] {
		return nil, fmt.Errorf("%w: matmul inner dimensions disagree: %v @ %v",
			ErrShapeMismatch, d.shape, other.shape)
	}

	a := mat.NewDense(d.shape[0], d.shape[1], d.data)
	b := mat.NewDense(other.shape[0], other.shape[1], other.data)
	var prod mat.Dense
	prod.Mul(a, b)

	out := Zeros(Shape{d.shape[0], other.shape[1]})
	copy(out.data, prod.RawMatrix().Data)
	return out, nil
}

// Transpose returns d with its axis order reversed. Scalars and 1-D
// arrays transpose to themselves.
func (d *Dense) Transpose() *Dense {
	out := Zeros(d.shape.Reversed())
	if len(d.shape) < 2 {
		copy(out.data, d.data)
		return out
	}

	ndim := len(d.shape)
	for i := range d.data {
		rem := i
		dst := 0
		for ax := 0; ax < ndim; ax++ {
			c := rem / d.stride[ax]
			rem %= d.stride[ax]
			dst += c * out.stride[ndim-1-ax]
		}
		out.data[dst] = d.data[i]
	}
	return out
}
