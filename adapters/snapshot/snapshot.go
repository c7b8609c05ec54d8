// Package snapshot serializes architecture graphs to and from YAML. This
// is the boundary format the UI (or a player's saved design) hands to the
// validate command.
package snapshot

import (
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"archsim/core/arch"
	"archsim/internal/errors"
)

type document struct {
	Nodes []nodeDoc `yaml:"nodes"`
	Edges []edgeDoc `yaml:"edges"`
}

type nodeDoc struct {
	ID       string        `yaml:"id,omitempty"`
	Type     string        `yaml:"type"`
	Position arch.Position `yaml:"position,omitempty"`
}

type edgeDoc struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Parse decodes a YAML snapshot into a graph. Nodes without an explicit
// id get a generated one; edges must reference node ids present in the
// document.
func Parse(data []byte) (*arch.Graph, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Config("failed to parse graph snapshot", err)
	}

	g := arch.NewGraph()
	for _, n := range doc.Nodes {
		id := n.ID
		if id == "" {
			id = uuid.NewString()
		}
		if err := g.AddNode(id, n.Type, n.Position); err != nil {
			return nil, err
		}
	}
	for _, e := range doc.Edges {
		if _, ok := g.Node(e.From); !ok {
			return nil, errors.DanglingEdge(e.From, e.To, e.From)
		}
		if _, ok := g.Node(e.To); !ok {
			return nil, errors.DanglingEdge(e.From, e.To, e.To)
		}
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Load reads and parses a snapshot file
func Load(path string) (*arch.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("failed to read graph snapshot", err)
	}
	return Parse(data)
}

// Marshal encodes a graph back to YAML, nodes and edges in insertion order
func Marshal(g *arch.Graph) ([]byte, error) {
	var doc document
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, nodeDoc{ID: n.ID, Type: n.Type, Position: n.Position})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edgeDoc{From: e.From, To: e.To})
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, errors.Internal("failed to marshal graph snapshot", err)
	}
	return out, nil
}

// Save writes a snapshot file
func Save(g *arch.Graph, path string) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Config("failed to write graph snapshot", err)
	}
	return nil
}
