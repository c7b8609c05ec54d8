// Package engine implements the architecture validation engine: a pure,
// deterministic evaluation of (graph, level spec, catalog) into a verdict
// with violations, a cost estimate, and a latency estimate. The engine
// holds no state between evaluations and performs no I/O.
package engine

import (
	"github.com/shopspring/decimal"

	"archsim/core/arch"
)

// ViolationKind tags the variant of a violation
type ViolationKind string

const (
	// ViolationInvalidConnection - edge between types that may never connect
	ViolationInvalidConnection ViolationKind = "invalid_connection"

	// ViolationIntermediaryRequired - edge legal only through an
	// intermediary that is not wired between the endpoints
	ViolationIntermediaryRequired ViolationKind = "intermediary_required"

	// ViolationSecurity - a security rule was broken
	ViolationSecurity ViolationKind = "security_violation"

	// ViolationMissingRequirement - a required service type is absent
	ViolationMissingRequirement ViolationKind = "missing_requirement"

	// ViolationMissingConnection - a type-level wiring demand of the
	// level is not satisfied by any valid edge
	ViolationMissingConnection ViolationKind = "missing_connection"

	// ViolationUnnecessaryService - a placed node the level has no use for
	ViolationUnnecessaryService ViolationKind = "unnecessary_service"

	// ViolationOverBudget - total cost exceeds the level budget
	ViolationOverBudget ViolationKind = "over_budget"

	// ViolationOverLatency - critical path exceeds the latency ceiling
	ViolationOverLatency ViolationKind = "over_latency"
)

// Violation is one finding in a verdict. Only the fields relevant to the
// Kind are set.
type Violation struct {
	Kind ViolationKind `json:"kind"`

	// From/To are node ids for edge-level violations
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	// Type is the service type id for missing requirements
	Type string `json:"type,omitempty"`

	// Node is the node id for unnecessary services
	Node string `json:"node,omitempty"`

	// Message is the human-readable explanation
	Message string `json:"message"`

	// Amount is the budget overage in $/hour for over_budget
	Amount decimal.Decimal `json:"amount"`

	// LatencyMs is the latency overage for over_latency
	LatencyMs float64 `json:"latency_ms,omitempty"`
}

// Verdict is the complete output of one evaluation. Created fresh per
// call and never mutated after return.
type Verdict struct {
	Passed bool `json:"passed"`

	// Score may be negative; it is reported even when Passed is false
	Score int `json:"score"`

	Violations []Violation `json:"violations"`

	TotalCost        decimal.Decimal `json:"total_cost"`
	EstimatedLatency float64         `json:"estimated_latency_ms"`

	// MissingRequirements lists absent required types (and unsatisfied
	// one-of groups as "a|b" labels), sorted
	MissingRequirements []string `json:"missing_requirements"`

	// UnnecessaryServices lists flagged node ids, sorted
	UnnecessaryServices []string `json:"unnecessary_services"`

	// ValidEdges is the number of edges classified valid
	ValidEdges int `json:"valid_edges"`
}

// Weights are the point rules the scoring aggregator applies
type Weights struct {
	RequirementMet     int
	ValidConnection    int
	SecurityViolation  int
	UnnecessaryService int
	CostOptimization   int
}

// DefaultWeights returns the standard scoring rules
func DefaultWeights() Weights {
	return Weights{
		RequirementMet:     40,
		ValidConnection:    15,
		SecurityViolation:  -30,
		UnnecessaryService: -20,
		CostOptimization:   25,
	}
}

// Options tune one evaluation call
type Options struct {
	// Strict makes unnecessary services gate Passed in addition to
	// costing points
	Strict bool

	// Weights override the scoring rules; zero value means defaults
	Weights Weights
}

// DefaultOptions returns the standard evaluation settings
func DefaultOptions() Options {
	return Options{
		Strict:  false,
		Weights: DefaultWeights(),
	}
}

// EdgeClass is the classification of a single edge
type EdgeClass int

const (
	// EdgeValid - allowed directly or through a satisfied intermediary
	EdgeValid EdgeClass = iota
	// EdgeInvalid - the pair of types may never connect
	EdgeInvalid
	// EdgeNeedsIntermediary - a via rule applies and is not satisfied
	EdgeNeedsIntermediary
)

// String returns string representation
func (c EdgeClass) String() string {
	switch c {
	case EdgeValid:
		return "valid"
	case EdgeInvalid:
		return "invalid"
	case EdgeNeedsIntermediary:
		return "needs_intermediary"
	default:
		return "unknown"
	}
}

// EdgeResult is the per-edge output of the connection validator, in the
// graph's edge insertion order.
type EdgeResult struct {
	Edge     arch.Edge
	FromType string
	ToType   string
	Class    EdgeClass

	// Message carries the via rule explanation for EdgeNeedsIntermediary
	Message string

	// SecuritySensitive marks an unsatisfied via rule whose intermediary
	// types include a networking or security category service
	SecuritySensitive bool
}
