package autodiff

import "sort"

// Edge is a directed (operand, consumer) pair in the implicit graph.
type Edge struct {
	Operand  *Tensor
	Consumer *Tensor
}

// Trace walks the implicit graph from root by following operand
// references and returns every reachable node and every
// operand-to-consumer edge. Shared operands are visited exactly once;
// results are ordered by node identity so a trace of an unchanged
// graph is deterministic.
func Trace(root *Tensor) ([]*Tensor, []Edge) {
	var nodes []*Tensor
	var edges []Edge
	visited := make(map[*Tensor]bool)

	var build func(n *Tensor)
	build = func(n *Tensor) {
		if visited[n] {
			return
		}
		visited[n] = true
		nodes = append(nodes, n)
		for _, operand := range n.operands {
			edges = append(edges, Edge{Operand: operand, Consumer: n})
			build(operand)
		}
	}
	build(root)

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].id < nodes[j].id })
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Consumer.id != edges[j].Consumer.id {
			return edges[i].Consumer.id < edges[j].Consumer.id
		}
		return edges[i].Operand.id < edges[j].Operand.id
	})
	return nodes, edges
}
