// Package engine - Requirement checker and security audit
package engine

import (
	"fmt"
	"sort"

	"archsim/core/arch"
	"archsim/core/catalog"
	"archsim/core/level"
)

// SecurityIssue is one security audit finding
type SecurityIssue struct {
	// Subject is the node id or type id the finding is about
	Subject string
	Reason  string
}

// RequirementReport is the output of the requirement checker
type RequirementReport struct {
	// Missing lists absent required types and unsatisfied one-of group
	// labels, sorted
	Missing []string

	// MissingConnections lists the messages of unsatisfied type-level
	// wiring demands, in level spec order
	MissingConnections []string

	// Unnecessary lists flagged node ids, sorted
	Unnecessary []string

	// Security lists audit findings in fixed rule order
	Security []SecurityIssue
}

// highRiskTypes are services whose presence makes an architecture worth
// attacking; they drive the WAF and authentication audit rules.
var highRiskTypes = []string{"rds", "dynamodb", "lambda", "ec2", "s3"}

// CheckRequirements evaluates the graph against the level's required,
// optional, and available type sets plus its wiring demands, and runs the
// security audit. Edge results must come from ClassifyEdges on the same
// graph.
func CheckRequirements(g *arch.Graph, spec *level.RequirementSpec, cat *catalog.Catalog, edges []EdgeResult) RequirementReport {
	var report RequirementReport

	present := g.TypesPresent()

	// Required types, with missing security services counted as security
	// findings on top of the requirement gap.
	for _, t := range spec.RequiredTypes {
		if present[t] {
			continue
		}
		report.Missing = append(report.Missing, t)
		if entry, ok := cat.Get(t); ok && entry.Category == catalog.CategorySecurity {
			report.Security = append(report.Security, SecurityIssue{
				Subject: t,
				Reason:  fmt.Sprintf("required security service %s is missing", t),
			})
		}
	}

	// One-of groups: at least one member of each group must be placed.
	for _, group := range spec.OneOfTypes {
		satisfied := false
		for _, t := range group {
			if present[t] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			report.Missing = append(report.Missing, level.GroupLabel(group))
		}
	}
	sort.Strings(report.Missing)

	// Type-level wiring demands, satisfied only by valid edges.
	for i := range spec.RequiredConnections {
		rc := &spec.RequiredConnections[i]
		satisfied := false
		for _, res := range edges {
			if res.Class == EdgeValid && rc.Matches(res.FromType, res.ToType) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			report.MissingConnections = append(report.MissingConnections, rc.Message)
		}
	}

	report.Unnecessary = flagUnnecessary(g, spec, edges)
	report.Security = append(report.Security, auditSecurity(g, spec)...)

	return report
}

// flagUnnecessary applies the isolation policy: a node whose type the
// level neither requires nor lists as optional is always flagged; an
// optional-type node is flagged when it participates in no valid edge.
// Required-type nodes (including one-of group members) are never flagged.
func flagUnnecessary(g *arch.Graph, spec *level.RequirementSpec, edges []EdgeResult) []string {
	needed := make(map[string]bool)
	for _, t := range spec.RequiredTypes {
		needed[t] = true
	}
	for _, group := range spec.OneOfTypes {
		for _, t := range group {
			needed[t] = true
		}
	}

	validTouch := make(map[string]int)
	for _, res := range edges {
		if res.Class == EdgeValid {
			validTouch[res.Edge.From]++
			validTouch[res.Edge.To]++
		}
	}

	var flagged []string
	for _, n := range g.Nodes() {
		if needed[n.Type] {
			continue
		}
		if !spec.IsOptional(n.Type) {
			flagged = append(flagged, n.ID)
			continue
		}
		if validTouch[n.ID] == 0 {
			flagged = append(flagged, n.ID)
		}
	}
	sort.Strings(flagged)
	return flagged
}

// auditSecurity runs the security rules. A rule only fires when the level
// makes its mitigating service available, so levels that do not offer
// e.g. IAM are not penalized for omitting it.
func auditSecurity(g *arch.Graph, spec *level.RequirementSpec) []SecurityIssue {
	var issues []SecurityIssue
	present := g.TypesPresent()

	if present["lambda"] && spec.IsAvailable("iam") && !present["iam"] {
		issues = append(issues, SecurityIssue{
			Subject: "lambda",
			Reason:  "Lambda function without IAM role",
		})
	}

	if present["s3"] && spec.IsAvailable("cloudfront") && !present["cloudfront"] {
		if typeEdgeExists(g, "api_gateway", "s3") || typeEdgeExists(g, "internet_gateway", "s3") {
			issues = append(issues, SecurityIssue{
				Subject: "s3",
				Reason:  "S3 bucket is publicly accessible without CloudFront",
			})
		}
	}

	if present["rds"] && spec.IsAvailable("vpc") && !present["vpc"] {
		issues = append(issues, SecurityIssue{
			Subject: "rds",
			Reason:  "RDS database is not in a VPC",
		})
	}

	if present["kms"] && present["s3"] && !typeEdgeExists(g, "kms", "s3") {
		issues = append(issues, SecurityIssue{
			Subject: "s3",
			Reason:  "S3 bucket is not encrypted with KMS",
		})
	}

	if present["kms"] && present["rds"] && !typeEdgeExists(g, "kms", "rds") {
		issues = append(issues, SecurityIssue{
			Subject: "rds",
			Reason:  "RDS database is not encrypted",
		})
	}

	if present["kms"] && present["dynamodb"] && !typeEdgeExists(g, "kms", "dynamodb") {
		issues = append(issues, SecurityIssue{
			Subject: "dynamodb",
			Reason:  "DynamoDB table is not encrypted with KMS",
		})
	}

	if present["waf"] && present["api_gateway"] && requiresWAF(present) && !typeEdgeExists(g, "waf", "api_gateway") {
		issues = append(issues, SecurityIssue{
			Subject: "api_gateway",
			Reason:  "API Gateway without WAF protection",
		})
	}

	if spec.IsAvailable("cognito") && !present["cognito"] && !present["iam"] && anyHighRisk(present) {
		issues = append(issues, SecurityIssue{
			Subject: "architecture",
			Reason:  "Architecture lacks authentication mechanism",
		})
	}

	return issues
}

// typeEdgeExists reports whether any edge connects a node of fromType to
// a node of toType, regardless of the edge's classification.
func typeEdgeExists(g *arch.Graph, fromType, toType string) bool {
	for _, e := range g.Edges() {
		from, _ := g.Node(e.From)
		to, _ := g.Node(e.To)
		if from != nil && to != nil && from.Type == fromType && to.Type == toType {
			return true
		}
	}
	return false
}

// requiresWAF reports whether the architecture fronts data-bearing
// services through API Gateway and therefore warrants a firewall.
func requiresWAF(present map[string]bool) bool {
	if !present["api_gateway"] {
		return false
	}
	for _, t := range []string{"rds", "dynamodb", "lambda", "ec2"} {
		if present[t] {
			return true
		}
	}
	return false
}

func anyHighRisk(present map[string]bool) bool {
	for _, t := range highRiskTypes {
		if present[t] {
			return true
		}
	}
	return false
}
