// Package engine - Evaluation entry point and scoring aggregator
package engine

import (
	"fmt"

	"archsim/core/arch"
	"archsim/core/catalog"
	"archsim/core/level"
	"archsim/internal/errors"
)

// Evaluate runs one complete validation pass: edge classification,
// requirement checking, cost and latency estimation, and scoring. It is
// a pure function of its inputs; the caller must treat the graph as an
// immutable snapshot for the duration of the call (clone it if the
// player keeps editing). A structurally malformed input (unknown type
// ids, dangling edge references) aborts with an error and no verdict;
// everything the player merely got wrong comes back as violations in a
// successful verdict.
//
// Violations are ordered deterministically: per-edge findings in edge
// insertion order (each security-sensitive wiring gap immediately
// followed by its security finding), then missing requirements (sorted),
// missing connections (level spec order), security audit findings (fixed
// rule order), unnecessary services (sorted by node id), and finally
// budget and latency overruns.
func Evaluate(g *arch.Graph, spec *level.RequirementSpec, cat *catalog.Catalog, opts Options) (*Verdict, error) {
	if g == nil {
		return nil, errors.Input("graph must not be nil")
	}
	if spec == nil {
		return nil, errors.Input("level spec must not be nil")
	}
	if cat == nil {
		return nil, errors.Input("catalog must not be nil")
	}
	if (opts.Weights == Weights{}) {
		opts.Weights = DefaultWeights()
	}

	edges, err := ClassifyEdges(g, cat)
	if err != nil {
		return nil, err
	}

	report := CheckRequirements(g, spec, cat, edges)

	totalCost, err := TotalCost(g, cat)
	if err != nil {
		return nil, err
	}
	latency, err := EstimateLatency(g, cat, edges)
	if err != nil {
		return nil, err
	}

	violations := make([]Violation, 0)
	validEdges := 0
	edgeFailures := 0
	securityCount := 0

	for _, res := range edges {
		switch res.Class {
		case EdgeValid:
			validEdges++
		case EdgeInvalid:
			edgeFailures++
			violations = append(violations, Violation{
				Kind:    ViolationInvalidConnection,
				From:    res.Edge.From,
				To:      res.Edge.To,
				Message: res.Message,
			})
		case EdgeNeedsIntermediary:
			edgeFailures++
			violations = append(violations, Violation{
				Kind:    ViolationIntermediaryRequired,
				From:    res.Edge.From,
				To:      res.Edge.To,
				Message: res.Message,
			})
			if res.SecuritySensitive {
				securityCount++
				violations = append(violations, Violation{
					Kind:    ViolationSecurity,
					From:    res.Edge.From,
					To:      res.Edge.To,
					Message: "unprotected path: " + res.Message,
				})
			}
		}
	}

	for _, t := range report.Missing {
		violations = append(violations, Violation{
			Kind:    ViolationMissingRequirement,
			Type:    t,
			Message: fmt.Sprintf("missing required service: %s", t),
		})
	}

	for _, msg := range report.MissingConnections {
		violations = append(violations, Violation{
			Kind:    ViolationMissingConnection,
			Message: msg,
		})
	}

	for _, issue := range report.Security {
		securityCount++
		violations = append(violations, Violation{
			Kind:    ViolationSecurity,
			Node:    issue.Subject,
			Message: issue.Reason,
		})
	}

	for _, id := range report.Unnecessary {
		node, _ := g.Node(id)
		violations = append(violations, Violation{
			Kind:    ViolationUnnecessaryService,
			Node:    id,
			Message: fmt.Sprintf("%s (%s) is not needed for this level", id, node.Type),
		})
	}

	overBudget := totalCost.Cmp(spec.Budget) > 0
	if overBudget {
		overage := totalCost.Sub(spec.Budget)
		violations = append(violations, Violation{
			Kind:    ViolationOverBudget,
			Amount:  overage,
			Message: fmt.Sprintf("architecture exceeds budget by $%s/hour", overage.StringFixed(4)),
		})
	}

	overLatency := latency > spec.MaxLatencyMs
	if overLatency {
		violations = append(violations, Violation{
			Kind:      ViolationOverLatency,
			LatencyMs: latency - spec.MaxLatencyMs,
			Message:   fmt.Sprintf("architecture exceeds max latency by %.1fms", latency-spec.MaxLatencyMs),
		})
	}

	present := g.TypesPresent()
	requiredPresent := 0
	for _, t := range spec.RequiredTypes {
		if present[t] {
			requiredPresent++
		}
	}

	w := opts.Weights
	score := requiredPresent*w.RequirementMet +
		validEdges*w.ValidConnection +
		securityCount*w.SecurityViolation +
		len(report.Unnecessary)*w.UnnecessaryService
	if !overBudget {
		score += w.CostOptimization
	}

	passed := len(report.Missing) == 0 &&
		len(report.MissingConnections) == 0 &&
		edgeFailures == 0 &&
		securityCount == 0 &&
		!overBudget &&
		!overLatency
	if opts.Strict && len(report.Unnecessary) > 0 {
		passed = false
	}

	return &Verdict{
		Passed:              passed,
		Score:               score,
		Violations:          violations,
		TotalCost:           totalCost,
		EstimatedLatency:    latency,
		MissingRequirements: report.Missing,
		UnnecessaryServices: report.Unnecessary,
		ValidEdges:          validEdges,
	}, nil
}
