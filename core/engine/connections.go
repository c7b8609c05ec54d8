// Package engine - Connection validator
package engine

import (
	"fmt"

	"archsim/core/arch"
	"archsim/core/catalog"
	"archsim/internal/errors"
)

// validateStructure fails fast on malformed input: edges referencing
// missing nodes and nodes referencing types absent from the catalog.
// These are content bugs, not gameplay outcomes.
func validateStructure(g *arch.Graph, cat *catalog.Catalog) error {
	for _, n := range g.Nodes() {
		if _, err := cat.Lookup(n.Type); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		if _, ok := g.Node(e.From); !ok {
			return errors.DanglingEdge(e.From, e.To, e.From)
		}
		if _, ok := g.Node(e.To); !ok {
			return errors.DanglingEdge(e.From, e.To, e.To)
		}
	}
	return nil
}

// ClassifyEdges classifies every edge independently, in the graph's edge
// insertion order. No classification depends on another edge's result.
//
// Per edge u -> v with types Tu, Tv:
//  1. Tv in Tu's direct targets: valid.
//  2. Tu has a via rule targeting Tv: valid only if some node w with a
//     type in the rule's intermediate set is wired directly between the
//     endpoints (edges u->w and w->v both present). A loose intermediary
//     node elsewhere in the graph does not count.
//  3. Otherwise: invalid.
func ClassifyEdges(g *arch.Graph, cat *catalog.Catalog) ([]EdgeResult, error) {
	if err := validateStructure(g, cat); err != nil {
		return nil, err
	}

	results := make([]EdgeResult, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		from, _ := g.Node(e.From)
		to, _ := g.Node(e.To)

		srcType, err := cat.Lookup(from.Type)
		if err != nil {
			return nil, err
		}
		dstType, err := cat.Lookup(to.Type)
		if err != nil {
			return nil, err
		}

		res := EdgeResult{
			Edge:     e,
			FromType: srcType.ID,
			ToType:   dstType.ID,
		}

		switch {
		case srcType.CanTarget(dstType.ID):
			res.Class = EdgeValid

		default:
			rule, ok := srcType.ViaRuleFor(dstType.ID)
			if !ok {
				res.Class = EdgeInvalid
				res.Message = fmt.Sprintf("%s cannot connect directly to %s", srcType.DisplayName, dstType.DisplayName)
				break
			}
			if intermediaryWired(g, e.From, e.To, rule) {
				res.Class = EdgeValid
				break
			}
			res.Class = EdgeNeedsIntermediary
			res.Message = rule.Message
			res.SecuritySensitive = ruleIsSensitive(rule, cat)
		}

		results = append(results, res)
	}
	return results, nil
}

// intermediaryWired reports whether some node w of an allowed intermediate
// type sits directly on the path: edges from->w and w->to both present.
func intermediaryWired(g *arch.Graph, from, to string, rule *catalog.ViaRule) bool {
	for _, n := range g.Nodes() {
		if n.ID == from || n.ID == to {
			continue
		}
		if !rule.AllowsIntermediate(n.Type) {
			continue
		}
		if g.HasEdge(from, n.ID) && g.HasEdge(n.ID, to) {
			return true
		}
	}
	return false
}

// ruleIsSensitive reports whether the rule's intermediate set names a
// networking or security category service; skipping such an intermediary
// is counted as a security violation on top of the wiring violation.
func ruleIsSensitive(rule *catalog.ViaRule, cat *catalog.Catalog) bool {
	for _, id := range rule.Intermediate {
		if entry, ok := cat.Get(id); ok && entry.Category.IsSensitive() {
			return true
		}
	}
	return false
}
