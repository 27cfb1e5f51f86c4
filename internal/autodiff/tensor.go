package autodiff

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/exp/rand"

	"github.com/tensortools/tensortools/internal/tensor"
)

// Op is the short symbolic tag naming the operation that produced a
// node. Leaves carry OpNone.
type Op string

// Operator tags.
const (
	OpNone      Op = ""
	OpAdd       Op = "+"
	OpSub       Op = "-"
	OpMul       Op = "*"
	OpDiv       Op = "/"
	OpMatMul    Op = "@"
	OpPow       Op = "**"
	OpExp       Op = "exp"
	OpNeg       Op = "neg"
	OpTranspose Op = "T"
)

// nextID issues stable per-node identities for graph export.
var nextID atomic.Uint64

// Tensor is a value holder, a graph node recording how it was
// produced, and the carrier of the gradient written during backward
// traversal. The computation graph is implicit in the operand
// references each Tensor keeps; there is no separate graph object.
//
// A Tensor is never mutated structurally after construction. Only the
// gradient slot is written, and only by the backward traversal.
type Tensor struct {
	data         *tensor.Dense
	label        string
	requiresGrad bool
	grad         *tensor.Dense // nil until backward traversal writes it
	op           Op
	operands     []*Tensor // de-duplicated; empty for leaves

	// Positional sources for the backward dispatch. Unlike operands,
	// x and y keep their argument positions so the rule table can tell
	// the left operand from the right one.
	x, y        *Tensor
	hasBackward bool

	id uint64
}

// New creates a leaf Tensor from a scalar or arbitrarily nested
// numeric slice. Input that cannot be interpreted as a rectangular
// numeric array fails with an error wrapping tensor.ErrConversion.
func New(data any, label string, requiresGrad bool) (*Tensor, error) {
	d, err := tensor.FromAny(data)
	if err != nil {
		return nil, err
	}
	return FromDense(d, label, requiresGrad), nil
}

// FromDense creates a leaf Tensor wrapping an already-built array.
func FromDense(d *tensor.Dense, label string, requiresGrad bool) *Tensor {
	return &Tensor{
		data:         d,
		label:        label,
		requiresGrad: requiresGrad,
		id:           nextID.Add(1),
	}
}

// Zeros creates a zero-filled leaf of the given shape.
// Factory leaves participate in differentiation; build non-tracked
// leaves with New, which defaults the other way.
func Zeros(shape tensor.Shape, label string) *Tensor {
	return FromDense(tensor.Zeros(shape), label, true)
}

// Ones creates a one-filled leaf of the given shape, convenient for
// gradient seeds.
func Ones(shape tensor.Shape, label string) *Tensor {
	return FromDense(tensor.Ones(shape), label, true)
}

// Randn creates a leaf of the given shape filled with independent
// standard-normal samples drawn from src. Passing the source
// explicitly keeps sampling reproducible; nil uses the global source.
func Randn(src rand.Source, shape tensor.Shape, label string) *Tensor {
	return FromDense(tensor.Randn(src, shape), label, true)
}

// newNode builds an internal node for a unary (y == nil) or binary
// operation. Operands are stored de-duplicated; requiresGrad is
// unconditionally true for every operation result.
func newNode(data *tensor.Dense, op Op, x, y *Tensor) *Tensor {
	operands := []*Tensor{x}
	if y != nil && y != x {
		operands = append(operands, y)
	}
	return &Tensor{
		data:         data,
		requiresGrad: true,
		op:           op,
		operands:     operands,
		x:            x,
		y:            y,
		id:           nextID.Add(1),
	}
}

// Data returns the wrapped array.
func (t *Tensor) Data() *tensor.Dense {
	return t.data
}

// Shape returns the wrapped array's shape.
func (t *Tensor) Shape() tensor.Shape {
	return t.data.Shape()
}

// Label returns the display name.
func (t *Tensor) Label() string {
	return t.label
}

// SetLabel sets the display name. Labels are purely cosmetic and may
// be changed at any time.
func (t *Tensor) SetLabel(label string) {
	t.label = label
}

// RequiresGrad reports whether this node participates in
// differentiation. The flag is advisory: it gates backward-rule
// installation on some operations but is not uniformly enforced.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// Grad returns the gradient written by the last backward traversal,
// or nil if no traversal has touched this node.
func (t *Tensor) Grad() *tensor.Dense {
	return t.grad
}

// SeedGrad sets the gradient slot directly, typically to seed the
// root before a traversal. Panics if the shape disagrees with the
// node's data.
func (t *Tensor) SeedGrad(g *tensor.Dense) {
	if !g.Shape().Equal(t.data.Shape()) {
		panic(fmt.Sprintf("gradient shape %v does not match data shape %v", g.Shape(), t.data.Shape()))
	}
	t.grad = g
}

// Op returns the operator tag that produced this node, or OpNone for
// leaves.
func (t *Tensor) Op() Op {
	return t.op
}

// Operands returns the de-duplicated operand nodes this node was
// computed from. The returned slice must not be modified.
func (t *Tensor) Operands() []*Tensor {
	return t.operands
}

// IsLeaf reports whether this node is an input (no operands).
func (t *Tensor) IsLeaf() bool {
	return len(t.operands) == 0
}

// ID returns the node's stable identity, unique for the lifetime of
// the process.
func (t *Tensor) ID() uint64 {
	return t.id
}

// String returns a human-readable representation of the node.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(%v)", t.data)
}
