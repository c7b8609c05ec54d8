// Package engine - Connection validator tests
package engine

import (
	"sort"
	"testing"

	"archsim/core/arch"
	"archsim/core/catalog"
	"archsim/internal/errors"
)

func buildGraph(t *testing.T, nodes map[string]string, edges [][2]string) *arch.Graph {
	t.Helper()
	g := arch.NewGraph()
	// deterministic insertion order for tests that care about it
	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := g.AddNode(id, nodes[id], arch.Position{}); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// TestClassifyDirectEdge verifies a direct-target edge is valid regardless
// of other graph content
func TestClassifyDirectEdge(t *testing.T) {
	cat := catalog.Default()
	g := buildGraph(t,
		map[string]string{"gw": "api_gateway", "fn": "lambda", "extra": "redshift"},
		[][2]string{{"gw", "fn"}},
	)

	results, err := ClassifyEdges(g, cat)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Class != EdgeValid {
		t.Errorf("api_gateway->lambda should be valid, got %s", results[0].Class)
	}
}

// TestClassifyInvalidEdge verifies a pairing with neither a direct target
// nor a via rule is invalid
func TestClassifyInvalidEdge(t *testing.T) {
	cat := catalog.Default()
	g := buildGraph(t,
		map[string]string{"db": "dynamodb", "gw": "api_gateway"},
		[][2]string{{"db", "gw"}},
	)

	results, err := ClassifyEdges(g, cat)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Class != EdgeInvalid {
		t.Errorf("dynamodb->api_gateway should be invalid, got %s", results[0].Class)
	}
	if results[0].Message == "" {
		t.Error("invalid edge should carry an explanation")
	}
}

// TestIntermediarySatisfaction verifies the lambda->rds via rule: the edge
// needs a VPC wired directly between the endpoints, and an unwired VPC
// node elsewhere in the graph does not count
func TestIntermediarySatisfaction(t *testing.T) {
	cat := catalog.Default()

	t.Run("no vpc at all", func(t *testing.T) {
		g := buildGraph(t,
			map[string]string{"fn": "lambda", "db": "rds"},
			[][2]string{{"fn", "db"}},
		)
		results, err := ClassifyEdges(g, cat)
		if err != nil {
			t.Fatal(err)
		}
		if results[0].Class != EdgeNeedsIntermediary {
			t.Fatalf("expected needs_intermediary, got %s", results[0].Class)
		}
		if !results[0].SecuritySensitive {
			t.Error("skipping a VPC should be security sensitive")
		}
		if results[0].Message != "Lambda must reach RDS through a VPC" {
			t.Errorf("unexpected message: %q", results[0].Message)
		}
	})

	t.Run("unwired vpc does not count", func(t *testing.T) {
		g := buildGraph(t,
			map[string]string{"fn": "lambda", "db": "rds", "net": "vpc"},
			[][2]string{{"fn", "db"}},
		)
		results, err := ClassifyEdges(g, cat)
		if err != nil {
			t.Fatal(err)
		}
		if results[0].Class != EdgeNeedsIntermediary {
			t.Errorf("loose vpc node must not flip classification, got %s", results[0].Class)
		}
	})

	t.Run("half wired vpc does not count", func(t *testing.T) {
		g := buildGraph(t,
			map[string]string{"fn": "lambda", "db": "rds", "net": "vpc"},
			[][2]string{{"fn", "db"}, {"net", "db"}},
		)
		results, err := ClassifyEdges(g, cat)
		if err != nil {
			t.Fatal(err)
		}
		for _, res := range results {
			if res.Edge.From == "fn" && res.Edge.To == "db" && res.Class != EdgeNeedsIntermediary {
				t.Errorf("vpc->rds alone must not satisfy the rule, got %s", res.Class)
			}
		}
	})

	t.Run("fully wired vpc satisfies", func(t *testing.T) {
		g := buildGraph(t,
			map[string]string{"fn": "lambda", "db": "rds", "net": "vpc"},
			[][2]string{{"fn", "db"}, {"fn", "net"}, {"net", "db"}},
		)
		results, err := ClassifyEdges(g, cat)
		if err != nil {
			t.Fatal(err)
		}
		for _, res := range results {
			if res.Edge.From == "fn" && res.Edge.To == "db" && res.Class != EdgeValid {
				t.Errorf("wired vpc should make lambda->rds valid, got %s", res.Class)
			}
		}
	})
}

// TestClassifyOrderAndIndependence verifies results come back in edge
// insertion order and each edge is classified on its own
func TestClassifyOrderAndIndependence(t *testing.T) {
	cat := catalog.Default()
	g := buildGraph(t,
		map[string]string{"gw": "api_gateway", "fn": "lambda", "db": "dynamodb", "store": "s3"},
		[][2]string{{"fn", "store"}, {"gw", "fn"}, {"db", "gw"}, {"fn", "db"}},
	)

	results, err := ClassifyEdges(g, cat)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	wantOrder := [][2]string{{"fn", "store"}, {"gw", "fn"}, {"db", "gw"}, {"fn", "db"}}
	wantClass := []EdgeClass{EdgeValid, EdgeValid, EdgeInvalid, EdgeValid}
	for i, res := range results {
		if res.Edge.From != wantOrder[i][0] || res.Edge.To != wantOrder[i][1] {
			t.Fatalf("result %d out of order: %v", i, res.Edge)
		}
		if res.Class != wantClass[i] {
			t.Errorf("edge %v class = %s, want %s", res.Edge, res.Class, wantClass[i])
		}
	}
}

// TestClassifyUnknownType verifies a node with an unknown type aborts the
// whole classification
func TestClassifyUnknownType(t *testing.T) {
	cat := catalog.Default()
	g := arch.NewGraph()
	if err := g.AddNode("x", "teleporter", arch.Position{}); err != nil {
		t.Fatal(err)
	}

	if _, err := ClassifyEdges(g, cat); !errors.IsType(err, errors.TypeUnknownService) {
		t.Fatalf("expected UNKNOWN_SERVICE_TYPE, got %v", err)
	}
}
