// Copyright 2026 The TensorTools Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package viz renders a computation graph to Graphviz DOT for human
// inspection.
//
// The renderer consumes only the graph structure the autodiff core
// exposes: node identity, label, shape, operator tag and operand
// edges. Each non-leaf node is drawn behind a small intermediate node
// labeled with its operator tag, so data nodes and the operations
// connecting them stay visually distinct.
//
// Example:
//
//	out := a.MatMul(b).Exp()
//	os.WriteFile("graph.dot", viz.Marshal(out), 0o644)
package viz

import (
	"fmt"
	"strconv"

	"github.com/emicklei/dot"

	"github.com/tensortools/tensortools/autodiff"
)

// Graph builds a left-to-right directed diagram of every node
// reachable from root.
func Graph(root *autodiff.Tensor) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	nodes, edges := autodiff.Trace(root)

	for _, n := range nodes {
		uid := nodeID(n)
		node := g.Node(uid)
		node.Attr("shape", "record")
		node.Attr("label", fmt.Sprintf("{ %s | shape %s }", n.Label(), n.Shape()))

		if n.Op() != autodiff.OpNone {
			opNode := g.Node(uid + string(n.Op()))
			opNode.Attr("label", string(n.Op()))
			g.Edge(opNode, node)
		}
	}

	for _, e := range edges {
		// Operand edges route through the consumer's operator node.
		g.Edge(g.Node(nodeID(e.Operand)), g.Node(nodeID(e.Consumer)+string(e.Consumer.Op())))
	}

	return g
}

// Marshal renders root's graph as DOT text.
func Marshal(root *autodiff.Tensor) []byte {
	return []byte(Graph(root).String())
}

func nodeID(t *autodiff.Tensor) string {
	return strconv.FormatUint(t.ID(), 10)
}
