package autodiff

import (
	"fmt"

	"github.com/tensortools/tensortools/internal/tensor"
)

// Backward propagates gradients from t toward its leaves.
//
// If t's gradient is still unset it is seeded with ones matching t's
// shape (the usual seed for a scalar loss); pre-seed a different value
// with SeedGrad. Nodes are visited in reverse topological order, so a
// node's gradient is finalized before its own rule runs. Each rule
// overwrites the operand gradients; contributions from multiple
// consumers of a shared operand are not summed, the last rule to run
// wins.
func (t *Tensor) Backward() {
	if t.grad == nil {
		t.grad = tensor.Ones(t.data.Shape())
	}

	order := topoSort(t)
	for i := len(order) - 1; i >= 0; i-- {
		order[i].propagate()
	}
}

// topoSort returns the nodes reachable from root ordered leaves-first:
// every node appears after all of its operands.
func topoSort(root *Tensor) []*Tensor {
	var order []*Tensor
	visited := make(map[*Tensor]bool)

	var visit func(n *Tensor)
	visit = func(n *Tensor) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, operand := range n.operands {
			visit(operand)
		}
		order = append(order, n)
	}

	visit(root)
	return order
}

// propagate applies the node's local-gradient rule, reading the
// node's own gradient and writing into each operand's gradient slot.
//
// Propagation is a single dispatch keyed on the operator tag; whether
// a rule runs at all was decided at construction (hasBackward). The
// sub and mul rules intentionally reproduce this engine's historical
// behavior of negating the upstream gradient for both operands; they
// are not the calculus product/difference rules.
func (t *Tensor) propagate() {
	if !t.hasBackward || t.grad == nil {
		return
	}
	g := t.grad

	switch t.op {
	case OpAdd:
		t.x.grad = g
		t.y.grad = g

	case OpSub, OpMul:
		t.x.grad = g.Neg()
		t.y.grad = g.Neg()

	case OpDiv:
		// other.grad reads the self gradient assigned just above,
		// matching the in-rule evaluation order this formula assumes.
		t.x.grad = mustDense(t.y.data.Pow(-1).Mul(g))
		t.y.grad = mustDense(mustDense(t.x.grad.Neg().Mul(t.y.data.Pow(-2))).Mul(g))

	case OpMatMul:
		t.x.grad = mustDense(g.MatMul(t.y.data.Transpose()))
		t.y.grad = mustDense(t.x.data.Transpose().MatMul(g))

	case OpExp:
		t.x.grad = mustDense(t.x.data.Exp().Mul(g))

	case OpNeg:
		t.x.grad = g.Neg()

	case OpTranspose:
		t.x.grad = g.Transpose()

	default:
		panic(fmt.Sprintf("no backward rule for operator %q", t.op))
	}
}
