// Package level defines level requirement specs. Each level is a plain
// data value; per-level behavior differences live entirely in the data,
// not in per-level code.
package level

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"archsim/internal/errors"
)

// RequiredConnection demands that the graph contain at least one valid
// edge whose source type is in From and destination type is in To. An
// empty From or To acts as a wildcard for that side.
type RequiredConnection struct {
	From    []string
	To      []string
	Message string
}

// Matches reports whether an edge with the given endpoint types satisfies
// this requirement.
func (rc *RequiredConnection) Matches(fromType, toType string) bool {
	return matchSide(rc.From, fromType) && matchSide(rc.To, toType)
}

func matchSide(allowed []string, typeID string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, id := range allowed {
		if id == typeID {
			return true
		}
	}
	return false
}

// RequirementSpec is the full requirement set for one level
type RequirementSpec struct {
	ID          int
	Title       string
	Description string
	Objective   string

	// RequiredTypes must each appear at least once
	RequiredTypes []string

	// OptionalTypes are never penalized for presence
	OptionalTypes []string

	// AvailableTypes are the types the player may place at all
	AvailableTypes []string

	// OneOfTypes holds groups where at least one member of each group
	// must be present (e.g. ECS or EKS)
	OneOfTypes [][]string

	// RequiredConnections are type-level wiring demands
	RequiredConnections []RequiredConnection

	// Budget is the cost ceiling in $/hour; equal to budget is within it
	Budget decimal.Decimal

	// MaxLatencyMs is the latency ceiling for the critical path
	MaxLatencyMs float64
}

// IsRequired reports whether the type is in the required set
func (s *RequirementSpec) IsRequired(typeID string) bool {
	return contains(s.RequiredTypes, typeID)
}

// IsOptional reports whether the type is in the optional set
func (s *RequirementSpec) IsOptional(typeID string) bool {
	return contains(s.OptionalTypes, typeID)
}

// IsAvailable reports whether the player may place the type at all
func (s *RequirementSpec) IsAvailable(typeID string) bool {
	return contains(s.AvailableTypes, typeID)
}

func contains(ids []string, id string) bool {
	for _, cur := range ids {
		if cur == id {
			return true
		}
	}
	return false
}

// GroupLabel names a one-of group in violation output, e.g. "ecs|eks"
func GroupLabel(group []string) string {
	return strings.Join(group, "|")
}

// Registry holds the loaded level specs
type Registry struct {
	levels map[int]*RequirementSpec
}

// NewRegistry creates an empty level registry
func NewRegistry() *Registry {
	return &Registry{levels: make(map[int]*RequirementSpec)}
}

// Register adds a level spec, replacing any existing spec with the same id
func (r *Registry) Register(spec RequirementSpec) {
	r.levels[spec.ID] = &spec
}

// Get returns a level spec by id
func (r *Registry) Get(id int) (*RequirementSpec, error) {
	spec, ok := r.levels[id]
	if !ok {
		return nil, errors.NotFound("level", strconv.Itoa(id))
	}
	return spec, nil
}

// IDs returns all registered level ids in ascending order
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.levels))
	for id := range r.levels {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of registered levels
func (r *Registry) Len() int {
	return len(r.levels)
}
