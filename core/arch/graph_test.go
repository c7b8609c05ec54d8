// Package arch - Graph mutation tests
package arch

import (
	"testing"

	"archsim/internal/errors"
)

// TestAddNodeRejectsDuplicates verifies node ids are unique
func TestAddNodeRejectsDuplicates(t *testing.T) {
	g := NewGraph()
	if err := g.AddNode("n1", "lambda", Position{}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode("n1", "s3", Position{}); err == nil {
		t.Fatal("expected error for duplicate node id")
	}
	if g.NodeCount() != 1 {
		t.Errorf("expected 1 node, got %d", g.NodeCount())
	}
}

// TestAddNodeRejectsEmpty verifies empty ids and types are rejected
func TestAddNodeRejectsEmpty(t *testing.T) {
	g := NewGraph()
	if err := g.AddNode("", "lambda", Position{}); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected INPUT_ERROR for empty id, got %v", err)
	}
	if err := g.AddNode("n1", "", Position{}); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected INPUT_ERROR for empty type, got %v", err)
	}
}

// TestAddEdgeRules verifies self-loop, unknown endpoint, and duplicate
// edge handling
func TestAddEdgeRules(t *testing.T) {
	g := NewGraph()
	mustAdd(t, g, "a", "lambda")
	mustAdd(t, g, "b", "dynamodb")

	if err := g.AddEdge("a", "a"); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected INPUT_ERROR for self-loop, got %v", err)
	}
	if err := g.AddEdge("a", "ghost"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND for unknown endpoint, got %v", err)
	}

	if err := g.AddEdge("a", "b"); err != nil {
		t.Fatal(err)
	}
	// duplicate is a silent no-op
	if err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("duplicate edge should be a no-op, got %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("expected 1 edge, got %d", g.EdgeCount())
	}

	// reverse direction is a distinct edge
	if err := g.AddEdge("b", "a"); err != nil {
		t.Fatal(err)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("expected 2 edges, got %d", g.EdgeCount())
	}
}

// TestRemoveNodeDropsEdges verifies removing a node removes every edge
// touching it
func TestRemoveNodeDropsEdges(t *testing.T) {
	g := NewGraph()
	mustAdd(t, g, "a", "api_gateway")
	mustAdd(t, g, "b", "lambda")
	mustAdd(t, g, "c", "dynamodb")
	mustEdge(t, g, "a", "b")
	mustEdge(t, g, "b", "c")
	mustEdge(t, g, "a", "c")

	g.RemoveNode("b")

	if g.NodeCount() != 2 {
		t.Errorf("expected 2 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("expected only a->c to survive, got %d edges", g.EdgeCount())
	}
	if !g.HasEdge("a", "c") {
		t.Error("edge a->c should survive")
	}
	if g.HasEdge("a", "b") || g.HasEdge("b", "c") {
		t.Error("edges touching removed node should be gone")
	}

	// removing again is a no-op
	g.RemoveNode("b")
	if g.NodeCount() != 2 {
		t.Error("repeated removal changed the graph")
	}
}

// TestRemoveEdge verifies edge removal and its return value
func TestRemoveEdge(t *testing.T) {
	g := NewGraph()
	mustAdd(t, g, "a", "lambda")
	mustAdd(t, g, "b", "s3")
	mustEdge(t, g, "a", "b")

	if !g.RemoveEdge("a", "b") {
		t.Error("RemoveEdge should report true for existing edge")
	}
	if g.RemoveEdge("a", "b") {
		t.Error("RemoveEdge should report false for missing edge")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("expected 0 edges, got %d", g.EdgeCount())
	}
}

// TestInsertionOrder verifies Nodes and Edges preserve insertion order
func TestInsertionOrder(t *testing.T) {
	g := NewGraph()
	ids := []string{"z", "a", "m"}
	for _, id := range ids {
		mustAdd(t, g, id, "lambda")
	}
	mustEdge(t, g, "z", "a")
	mustEdge(t, g, "m", "a")

	got := g.NodeIDs()
	for i, id := range ids {
		if got[i] != id {
			t.Fatalf("node order = %v, want %v", got, ids)
		}
	}

	edges := g.Edges()
	if edges[0] != (Edge{From: "z", To: "a"}) || edges[1] != (Edge{From: "m", To: "a"}) {
		t.Fatalf("edge order not preserved: %v", edges)
	}
}

// TestNodesOfTypeAndTypesPresent verifies type queries
func TestNodesOfTypeAndTypesPresent(t *testing.T) {
	g := NewGraph()
	mustAdd(t, g, "l1", "lambda")
	mustAdd(t, g, "l2", "lambda")
	mustAdd(t, g, "d1", "dynamodb")

	lambdas := g.NodesOfType("lambda")
	if len(lambdas) != 2 || lambdas[0] != "l1" || lambdas[1] != "l2" {
		t.Errorf("NodesOfType(lambda) = %v", lambdas)
	}

	present := g.TypesPresent()
	if !present["lambda"] || !present["dynamodb"] || present["s3"] {
		t.Errorf("TypesPresent = %v", present)
	}
}

// TestCloneIsIndependent verifies mutations of a clone never touch the
// original
func TestCloneIsIndependent(t *testing.T) {
	g := NewGraph()
	mustAdd(t, g, "a", "lambda")
	mustAdd(t, g, "b", "s3")
	mustEdge(t, g, "a", "b")

	c := g.Clone()
	c.RemoveNode("a")
	mustAdd(t, c, "x", "dynamodb")

	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("clone mutation leaked into original: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
	if _, ok := g.Node("x"); ok {
		t.Error("node added to clone appeared in original")
	}
	if !g.HasEdge("a", "b") {
		t.Error("edge removed from clone disappeared from original")
	}
}

func mustAdd(t *testing.T, g *Graph, id, typeID string) {
	t.Helper()
	if err := g.AddNode(id, typeID, Position{}); err != nil {
		t.Fatal(err)
	}
}

func mustEdge(t *testing.T, g *Graph, from, to string) {
	t.Helper()
	if err := g.AddEdge(from, to); err != nil {
		t.Fatal(err)
	}
}
