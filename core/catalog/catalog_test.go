// Package catalog - Catalog integrity tests
package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"archsim/internal/errors"
)

// TestDefaultCatalogValid verifies the built-in catalog passes its own
// referential integrity check
func TestDefaultCatalogValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("built-in catalog failed validation: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("built-in catalog is empty")
	}
}

// TestLookupUnknownType verifies the error taxonomy for unknown ids
func TestLookupUnknownType(t *testing.T) {
	c := Default()

	if _, err := c.Lookup("quantum_compute"); !errors.IsType(err, errors.TypeUnknownService) {
		t.Fatalf("expected UNKNOWN_SERVICE_TYPE, got %v", err)
	}
	if _, err := c.Lookup("lambda"); err != nil {
		t.Fatalf("lookup of known type failed: %v", err)
	}
}

// TestValidateDanglingReferences verifies that catalogs naming unknown
// types in targets or via rules fail to load
func TestValidateDanglingReferences(t *testing.T) {
	tests := []struct {
		name  string
		entry ServiceType
	}{
		{
			name: "unknown direct target",
			entry: ServiceType{
				ID:            "web",
				Category:      CategoryCompute,
				DirectTargets: []string{"ghost"},
			},
		},
		{
			name: "unknown via target",
			entry: ServiceType{
				ID:       "web",
				Category: CategoryCompute,
				RequiredVia: []ViaRule{
					{Target: "ghost", Intermediate: []string{"web"}},
				},
			},
		},
		{
			name: "unknown via intermediate",
			entry: ServiceType{
				ID:            "web",
				Category:      CategoryCompute,
				DirectTargets: nil,
				RequiredVia: []ViaRule{
					{Target: "web2", Intermediate: []string{"ghost"}},
				},
			},
		},
		{
			name: "empty via intermediate set",
			entry: ServiceType{
				ID:       "web",
				Category: CategoryCompute,
				RequiredVia: []ViaRule{
					{Target: "web2", Intermediate: nil},
				},
			},
		},
		{
			name: "negative cost",
			entry: ServiceType{
				ID:          "web",
				Category:    CategoryCompute,
				CostPerHour: decimal.RequireFromString("-1"),
			},
		},
		{
			name: "negative latency",
			entry: ServiceType{
				ID:        "web",
				Category:  CategoryCompute,
				LatencyMs: -5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog()
			c.Register(ServiceType{ID: "web2", Category: CategoryCompute})
			c.Register(tt.entry)

			err := c.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.IsType(err, errors.TypeCatalog) {
				t.Fatalf("expected CATALOG_ERROR, got %v", err)
			}
		})
	}
}

// TestCanTargetAndViaRule verifies connectivity attribute lookups
func TestCanTargetAndViaRule(t *testing.T) {
	c := Default()

	lambda, err := c.Lookup("lambda")
	if err != nil {
		t.Fatal(err)
	}
	if !lambda.CanTarget("dynamodb") {
		t.Error("lambda should target dynamodb directly")
	}
	if lambda.CanTarget("rds") {
		t.Error("lambda should not target rds directly")
	}

	rule, ok := lambda.ViaRuleFor("rds")
	if !ok {
		t.Fatal("lambda should have a via rule for rds")
	}
	if !rule.AllowsIntermediate("vpc") {
		t.Error("vpc should satisfy the lambda->rds via rule")
	}
	if rule.AllowsIntermediate("s3") {
		t.Error("s3 should not satisfy the lambda->rds via rule")
	}
	if _, ok := lambda.ViaRuleFor("dynamodb"); ok {
		t.Error("lambda should not have a via rule for dynamodb")
	}
}

// TestCategorySensitivity verifies which categories escalate a missing
// intermediary to a security finding
func TestCategorySensitivity(t *testing.T) {
	tests := []struct {
		cat       Category
		sensitive bool
	}{
		{CategoryNetworking, true},
		{CategorySecurity, true},
		{CategoryCompute, false},
		{CategoryStorage, false},
		{CategoryDatabase, false},
	}
	for _, tt := range tests {
		if got := tt.cat.IsSensitive(); got != tt.sensitive {
			t.Errorf("%s.IsSensitive() = %v, want %v", tt.cat, got, tt.sensitive)
		}
	}
}

// TestByCategory verifies category grouping stays sorted
func TestByCategory(t *testing.T) {
	c := Default()

	dbs := c.ByCategory(CategoryDatabase)
	if len(dbs) == 0 {
		t.Fatal("no database services registered")
	}
	for i := 1; i < len(dbs); i++ {
		if dbs[i-1] >= dbs[i] {
			t.Fatalf("ByCategory not sorted: %v", dbs)
		}
	}
}

// TestRegisterReplaces verifies re-registering an id replaces the entry
func TestRegisterReplaces(t *testing.T) {
	c := NewCatalog()
	c.Register(ServiceType{ID: "web", LatencyMs: 10})
	c.Register(ServiceType{ID: "web", LatencyMs: 20})

	entry, ok := c.Get("web")
	if !ok {
		t.Fatal("entry missing after registration")
	}
	if entry.LatencyMs != 20 {
		t.Errorf("expected replacement entry, got latency %v", entry.LatencyMs)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}
