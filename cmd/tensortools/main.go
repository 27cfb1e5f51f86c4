// Package main provides the TensorTools demo CLI.
//
// It builds a small expression graph, runs a backward traversal, logs
// the resulting gradients and optionally writes the graph as Graphviz
// DOT for rendering.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/tensortools/tensortools/autodiff"
	"github.com/tensortools/tensortools/tensor"
	"github.com/tensortools/tensortools/viz"
)

func main() {
	ctx := context.Background()
	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	klog.InitFlags(nil)
	seed := flag.Uint64("seed", 42, "random seed for the demo inputs")
	dotOut := flag.String("dot", "", "write the computation graph as DOT to this file")
	flag.Parse()

	log := klog.FromContext(ctx)

	src := rand.NewSource(*seed)
	x := autodiff.Randn(src, tensor.Shape{3, 2}, "x")
	w := autodiff.Randn(src, tensor.Shape{2, 3}, "w")
	b := autodiff.Zeros(tensor.Shape{3, 3}, "b")

	h := x.MatMul(w).Add(b)
	h.SetLabel("h")
	out := h.Exp()
	out.SetLabel("out")

	log.Info("forward pass complete", "shape", out.Shape(), "nodes", countNodes(out))

	out.Backward()

	log.Info("backward pass complete")
	klog.Infof("x.grad = %v", x.Grad())
	klog.Infof("w.grad = %v", w.Grad())
	klog.Infof("b.grad = %v", b.Grad())

	if *dotOut != "" {
		if err := os.WriteFile(*dotOut, viz.Marshal(out), 0o644); err != nil {
			return fmt.Errorf("failed to write graph to %q: %w", *dotOut, err)
		}
		klog.Infof("graph written to %q", *dotOut)
	}

	return nil
}

func countNodes(root *autodiff.Tensor) int {
	nodes, _ := autodiff.Trace(root)
	return len(nodes)
}
