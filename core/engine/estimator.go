// Package engine - Cost and latency estimator
package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"archsim/core/arch"
	"archsim/core/catalog"
)

// TotalCost sums cost per hour over every placed node. Cost is incurred
// by presence, not correctness: invalid and isolated nodes bill too.
func TotalCost(g *arch.Graph, cat *catalog.Catalog) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, n := range g.Nodes() {
		entry, err := cat.Lookup(n.Type)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(entry.CostPerHour)
	}
	return total, nil
}

// EstimateLatency returns the latency along the longest simple path from
// an entry node (no incoming valid edges) to an exit node (no outgoing
// valid edges), over the subgraph of edges classified valid. Only nodes
// participating in at least one valid edge are considered. Traversal is
// depth-first with neighbors in ascending node id order and a visited
// guard, so cyclic subgraphs terminate and ties resolve to the first
// discovered path. Returns 0 when the valid subgraph has no entry node.
func EstimateLatency(g *arch.Graph, cat *catalog.Catalog, edges []EdgeResult) (float64, error) {
	adj := make(map[string][]string)
	indeg := make(map[string]int)
	participants := make(map[string]bool)

	for _, res := range edges {
		if res.Class != EdgeValid {
			continue
		}
		adj[res.Edge.From] = append(adj[res.Edge.From], res.Edge.To)
		indeg[res.Edge.To]++
		participants[res.Edge.From] = true
		participants[res.Edge.To] = true
	}
	if len(participants) == 0 {
		return 0, nil
	}

	for id := range adj {
		sort.Strings(adj[id])
	}

	latency := make(map[string]float64, len(participants))
	for id := range participants {
		node, _ := g.Node(id)
		entry, err := cat.Lookup(node.Type)
		if err != nil {
			return 0, err
		}
		latency[id] = entry.LatencyMs
	}

	var entries []string
	for id := range participants {
		if indeg[id] == 0 {
			entries = append(entries, id)
		}
	}
	sort.Strings(entries)

	var best float64
	visited := make(map[string]bool, len(participants))

	var dfs func(id string, sum float64)
	dfs = func(id string, sum float64) {
		visited[id] = true
		sum += latency[id]

		if len(adj[id]) == 0 {
			// Exit node: candidate critical path. Strict comparison keeps
			// the first discovered path on ties.
			if sum > best {
				best = sum
			}
		} else {
			for _, next := range adj[id] {
				if !visited[next] {
					dfs(next, sum)
				}
			}
		}

		visited[id] = false
	}

	for _, entry := range entries {
		dfs(entry, 0)
	}
	return best, nil
}
