// Package snapshot - YAML graph serialization tests
package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archsim/core/arch"
	"archsim/internal/errors"
)

// TestParse verifies nodes, edges, and positions decode into a graph
func TestParse(t *testing.T) {
	g, err := Parse([]byte(`
nodes:
  - id: gw
    type: api_gateway
    position: {x: 100, y: 50}
  - id: fn
    type: lambda
edges:
  - from: gw
    to: fn
`))
	require.NoError(t, err)

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("gw", "fn"))

	gw, ok := g.Node("gw")
	require.True(t, ok)
	assert.Equal(t, "api_gateway", gw.Type)
	assert.Equal(t, 100.0, gw.Position.X)
	assert.Equal(t, 50.0, gw.Position.Y)
}

// TestParseGeneratesMissingIDs verifies nodes without explicit ids get
// unique generated ones
func TestParseGeneratesMissingIDs(t *testing.T) {
	g, err := Parse([]byte(`
nodes:
  - type: lambda
  - type: lambda
`))
	require.NoError(t, err)
	require.Equal(t, 2, g.NodeCount())

	ids := g.NodeIDs()
	assert.NotEmpty(t, ids[0])
	assert.NotEmpty(t, ids[1])
	assert.NotEqual(t, ids[0], ids[1])
}

// TestParseDanglingEdge verifies edges referencing absent nodes are
// rejected
func TestParseDanglingEdge(t *testing.T) {
	_, err := Parse([]byte(`
nodes:
  - id: gw
    type: api_gateway
edges:
  - from: gw
    to: ghost
`))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeDanglingEdge), "got %v", err)
}

// TestParseMalformedYAML verifies parse failures surface as config errors
func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("nodes: [broken"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig), "got %v", err)
}

// TestRoundTrip verifies a saved graph loads back identically
func TestRoundTrip(t *testing.T) {
	g := arch.NewGraph()
	require.NoError(t, g.AddNode("gw", "api_gateway", arch.Position{X: 10, Y: 20}))
	require.NoError(t, g.AddNode("fn", "lambda", arch.Position{X: 30, Y: 40}))
	require.NoError(t, g.AddEdge("gw", "fn"))

	path := filepath.Join(t.TempDir(), "design.yaml")
	require.NoError(t, Save(g, path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, g.NodeIDs(), loaded.NodeIDs())
	assert.Equal(t, g.Edges(), loaded.Edges())
	for _, id := range g.NodeIDs() {
		want, _ := g.Node(id)
		got, ok := loaded.Node(id)
		require.True(t, ok)
		assert.Equal(t, want.Type, got.Type)
		assert.Equal(t, want.Position, got.Position)
	}
}

// TestLoadMissingFile verifies unreadable paths surface as config errors
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig), "got %v", err)
}

// TestLoadFromDisk verifies the file path variant end to end
func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
nodes:
  - id: store
    type: s3
`), 0644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, g.NodeCount())
}
