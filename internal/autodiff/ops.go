package autodiff

import (
	"strconv"

	"github.com/tensortools/tensortools/internal/tensor"
)

// mustDense unwraps array-layer results inside expression-building
// methods. Shape mismatches are programming errors, fatal to the call.
func mustDense(d *tensor.Dense, err error) *tensor.Dense {
	if err != nil {
		panic(err)
	}
	return d
}

// scalarLeaf coerces a bare number into a fresh non-differentiable
// leaf labeled with its textual representation.
func scalarLeaf(v float64) *Tensor {
	d, _ := tensor.FromAny(v)
	return FromDense(d, strconv.FormatFloat(v, 'g', -1, 64), false)
}

// Add returns t + other elementwise. The addition rule is installed
// unconditionally: gradient flows to both operands regardless of
// their requiresGrad flags.
func (t *Tensor) Add(other *Tensor) *Tensor {
	out := newNode(mustDense(t.data.Add(other.data)), OpAdd, t, other)
	out.hasBackward = true
	return out
}

// AddScalar returns t + v, coercing v into a leaf operand.
func (t *Tensor) AddScalar(v float64) *Tensor {
	return t.Add(scalarLeaf(v))
}

// Sub returns t - other elementwise. The rule is installed only when
// t participates in differentiation.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	out := newNode(mustDense(t.data.Sub(other.data)), OpSub, t, other)
	out.hasBackward = t.requiresGrad
	return out
}

// SubScalar returns t - v, coercing v into a leaf operand.
func (t *Tensor) SubScalar(v float64) *Tensor {
	return t.Sub(scalarLeaf(v))
}

// Mul returns t * other elementwise. The rule is installed only when
// t participates in differentiation.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	out := newNode(mustDense(t.data.Mul(other.data)), OpMul, t, other)
	out.hasBackward = t.requiresGrad
	return out
}

// MulScalar returns t * v, coercing v into a leaf operand.
func (t *Tensor) MulScalar(v float64) *Tensor {
	return t.Mul(scalarLeaf(v))
}

// Div returns t / other elementwise, computed as t * other^-1. The
// rule is installed only when t participates in differentiation.
func (t *Tensor) Div(other *Tensor) *Tensor {
	out := newNode(mustDense(t.data.Mul(other.data.Pow(-1))), OpDiv, t, other)
	out.hasBackward = t.requiresGrad
	return out
}

// DivScalar returns t / v, coercing v into a leaf operand.
func (t *Tensor) DivScalar(v float64) *Tensor {
	return t.Div(scalarLeaf(v))
}

// MatMul returns the matrix product t @ other. The rule is installed
// only when t participates in differentiation.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	out := newNode(mustDense(t.data.MatMul(other.data)), OpMatMul, t, other)
	out.hasBackward = t.requiresGrad
	return out
}

// Pow returns t raised elementwise to the integer exponent n. The
// exponent is recorded as a coerced leaf operand. Pow is not
// differentiated: no backward rule is ever installed.
func (t *Tensor) Pow(n int) *Tensor {
	return newNode(t.data.Pow(float64(n)), OpPow, t, scalarLeaf(float64(n)))
}

// Exp returns the elementwise exponential e^t. The rule is installed
// only when t participates in differentiation.
func (t *Tensor) Exp() *Tensor {
	out := newNode(t.data.Exp(), OpExp, t, nil)
	out.hasBackward = t.requiresGrad
	return out
}

// Neg returns the elementwise negation -t. The rule is installed only
// when t participates in differentiation.
func (t *Tensor) Neg() *Tensor {
	out := newNode(t.data.Neg(), OpNeg, t, nil)
	out.hasBackward = t.requiresGrad
	return out
}

// T returns t with its axis order reversed. The rule is installed
// only when t participates in differentiation.
func (t *Tensor) T() *Tensor {
	out := newNode(t.data.Transpose(), OpTranspose, t, nil)
	out.hasBackward = t.requiresGrad
	return out
}
