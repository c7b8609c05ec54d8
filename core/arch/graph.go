// Package arch models the player-built architecture graph: an arena of
// placed service nodes plus directed connections between them. Nodes are
// addressed by id through the graph; neighbors are never stored as direct
// pointers, which keeps snapshots cheap to clone and free of cycles.
package arch

import (
	"archsim/internal/errors"
)

// Position is the canvas placement of a node. Presentation only; the
// validation engine never reads it.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Node is a placed instance of a service type
type Node struct {
	ID       string   `json:"id" yaml:"id"`
	Type     string   `json:"type" yaml:"type"`
	Position Position `json:"position" yaml:"position"`
}

// Edge is a directed connection between two placed nodes
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Graph is the full set of nodes and edges at one moment. Not safe for
// concurrent mutation; callers validating while the player keeps editing
// must pass a Clone.
type Graph struct {
	nodes   map[string]*Node
	nodeIDs []string // insertion order
	edges   []Edge   // insertion order
	edgeSet map[Edge]struct{}
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[string]*Node),
		edgeSet: make(map[Edge]struct{}),
	}
}

// AddNode places a node. The id must be unique within the graph.
func (g *Graph) AddNode(id, typeID string, pos Position) error {
	if id == "" {
		return errors.Input("node id must not be empty")
	}
	if typeID == "" {
		return errors.Input("node type must not be empty")
	}
	if _, exists := g.nodes[id]; exists {
		return errors.Newf(errors.TypeInput, "duplicate node id: %s", id)
	}
	g.nodes[id] = &Node{ID: id, Type: typeID, Position: pos}
	g.nodeIDs = append(g.nodeIDs, id)
	return nil
}

// RemoveNode deletes a node and every edge touching it. Removing an
// unknown id is a no-op.
func (g *Graph) RemoveNode(id string) {
	if _, exists := g.nodes[id]; !exists {
		return
	}
	delete(g.nodes, id)
	for i, nid := range g.nodeIDs {
		if nid == id {
			g.nodeIDs = append(g.nodeIDs[:i], g.nodeIDs[i+1:]...)
			break
		}
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			delete(g.edgeSet, e)
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
}

// AddEdge connects two placed nodes. Duplicate edges are a no-op;
// self-loops and edges to unplaced nodes are rejected.
func (g *Graph) AddEdge(from, to string) error {
	if from == to {
		return errors.Newf(errors.TypeInput, "self-loop on node %s is not allowed", from)
	}
	if _, ok := g.nodes[from]; !ok {
		return errors.NotFound("node", from)
	}
	if _, ok := g.nodes[to]; !ok {
		return errors.NotFound("node", to)
	}
	e := Edge{From: from, To: to}
	if _, exists := g.edgeSet[e]; exists {
		return nil
	}
	g.edgeSet[e] = struct{}{}
	g.edges = append(g.edges, e)
	return nil
}

// RemoveEdge deletes a connection. Returns false if it did not exist.
func (g *Graph) RemoveEdge(from, to string) bool {
	e := Edge{From: from, To: to}
	if _, exists := g.edgeSet[e]; !exists {
		return false
	}
	delete(g.edgeSet, e)
	for i, cur := range g.edges {
		if cur == e {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			break
		}
	}
	return true
}

// Node returns a placed node by id
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasEdge reports whether the directed edge exists
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edgeSet[Edge{From: from, To: to}]
	return ok
}

// Nodes returns all nodes in insertion order
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeIDs))
	for _, id := range g.nodeIDs {
		out = append(out, g.nodes[id])
	}
	return out
}

// NodeIDs returns node ids in insertion order
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.nodeIDs))
	copy(out, g.nodeIDs)
	return out
}

// Edges returns all edges in insertion order
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of placed nodes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of connections
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// NodesOfType returns the ids of nodes with the given type, in insertion order
func (g *Graph) NodesOfType(typeID string) []string {
	var out []string
	for _, id := range g.nodeIDs {
		if g.nodes[id].Type == typeID {
			out = append(out, id)
		}
	}
	return out
}

// TypesPresent returns the set of service types present in the graph
func (g *Graph) TypesPresent() map[string]bool {
	present := make(map[string]bool, len(g.nodes))
	for _, n := range g.nodes {
		present[n.Type] = true
	}
	return present
}

// Clone returns a deep copy, giving callers an immutable snapshot to
// evaluate while the original keeps receiving edits.
func (g *Graph) Clone() *Graph {
	out := NewGraph()
	for _, id := range g.nodeIDs {
		n := g.nodes[id]
		out.nodes[id] = &Node{ID: n.ID, Type: n.Type, Position: n.Position}
		out.nodeIDs = append(out.nodeIDs, id)
	}
	out.edges = make([]Edge, len(g.edges))
	copy(out.edges, g.edges)
	for e := range g.edgeSet {
		out.edgeSet[e] = struct{}{}
	}
	return out
}
