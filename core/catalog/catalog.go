// Package catalog - Authoritative service catalog
// Defines the canonical set of placeable service types with their cost,
// latency, and connectivity attributes. This is the source of truth the
// validation engine evaluates against. Immutable after load.
package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"archsim/internal/errors"
)

// Category classifies a service for grouping and security checks
type Category string

const (
	CategoryCompute    Category = "compute"
	CategoryStorage    Category = "storage"
	CategoryDatabase   Category = "database"
	CategoryNetworking Category = "networking"
	CategorySecurity   Category = "security"
	CategoryAnalytics  Category = "analytics"
	CategoryMessaging  Category = "messaging"
	CategoryCDN        Category = "cdn"
	CategoryManagement Category = "management"
	CategoryMedia      Category = "media"
)

// String returns string representation
func (c Category) String() string {
	return string(c)
}

// IsSensitive reports whether a missing intermediary of this category
// counts as a security violation on top of the connectivity violation.
func (c Category) IsSensitive() bool {
	return c == CategoryNetworking || c == CategorySecurity
}

// ViaRule describes a connection that is only legal through an
// intermediary: an edge to Target is valid only when a node of one of the
// Intermediate types is wired directly between source and target.
type ViaRule struct {
	Target       string
	Intermediate []string
	Message      string
}

// AllowsIntermediate reports whether the given type satisfies the rule
func (r *ViaRule) AllowsIntermediate(typeID string) bool {
	for _, id := range r.Intermediate {
		if id == typeID {
			return true
		}
	}
	return false
}

// ServiceType is a catalog entry for a placeable service
type ServiceType struct {
	ID            string
	DisplayName   string
	Description   string
	Category      Category
	CostPerHour   decimal.Decimal
	LatencyMs     float64
	DirectTargets []string
	RequiredVia   []ViaRule
}

// CanTarget reports whether this type may connect directly to the target type
func (s *ServiceType) CanTarget(targetID string) bool {
	for _, id := range s.DirectTargets {
		if id == targetID {
			return true
		}
	}
	return false
}

// ViaRuleFor returns the required-via rule for the given target type, if any
func (s *ServiceType) ViaRuleFor(targetID string) (*ViaRule, bool) {
	for i := range s.RequiredVia {
		if s.RequiredVia[i].Target == targetID {
			return &s.RequiredVia[i], true
		}
	}
	return nil, false
}

// Catalog is the immutable service type registry
type Catalog struct {
	entries map[string]*ServiceType
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make(map[string]*ServiceType),
	}
}

// Register adds a service type to the catalog. Registering the same id
// twice replaces the earlier entry.
func (c *Catalog) Register(entry ServiceType) {
	c.entries[entry.ID] = &entry
}

// Get returns a service type entry
func (c *Catalog) Get(typeID string) (*ServiceType, bool) {
	entry, ok := c.entries[typeID]
	return entry, ok
}

// Lookup returns a service type entry or an UNKNOWN_SERVICE_TYPE error
func (c *Catalog) Lookup(typeID string) (*ServiceType, error) {
	entry, ok := c.entries[typeID]
	if !ok {
		return nil, errors.UnknownService(typeID)
	}
	return entry, nil
}

// Has reports whether a type id is registered
func (c *Catalog) Has(typeID string) bool {
	_, ok := c.entries[typeID]
	return ok
}

// IDs returns all registered type ids in sorted order
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ByCategory returns type ids in the given category, sorted
func (c *Catalog) ByCategory(cat Category) []string {
	var ids []string
	for id, entry := range c.entries {
		if entry.Category == cat {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered types
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Validate checks referential integrity of the catalog. Every id named in
// a direct target list or a required-via rule must itself be registered,
// and cost/latency figures must be non-negative. Called once at load; a
// failure here means the content is broken and gameplay must not start.
func (c *Catalog) Validate() error {
	for _, id := range c.IDs() {
		entry := c.entries[id]

		if entry.CostPerHour.IsNegative() {
			return errors.Catalogf("service %s has negative cost per hour", id)
		}
		if entry.LatencyMs < 0 {
			return errors.Catalogf("service %s has negative latency", id)
		}

		for _, target := range entry.DirectTargets {
			if !c.Has(target) {
				return errors.Catalogf("service %s targets unknown type %s", id, target)
			}
		}

		for _, rule := range entry.RequiredVia {
			if !c.Has(rule.Target) {
				return errors.Catalogf("service %s has via rule for unknown type %s", id, rule.Target)
			}
			if len(rule.Intermediate) == 0 {
				return errors.Catalogf("service %s via rule for %s has no intermediate types", id, rule.Target)
			}
			for _, mid := range rule.Intermediate {
				if !c.Has(mid) {
					return errors.Catalogf("service %s via rule for %s names unknown intermediate %s", id, rule.Target, mid)
				}
			}
		}
	}
	return nil
}
