// Package hclconfig loads service catalogs and level specs from HCL
// configuration files, as an override for the built-in content.
package hclconfig

import (
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"archsim/core/catalog"
	"archsim/internal/errors"
)

// catalogFile is the root schema of a services .hcl file
type catalogFile struct {
	Services []serviceBlock `hcl:"service,block"`
}

// serviceBlock is one service definition:
//
//	service "lambda" {
//	  display_name  = "Lambda"
//	  category      = "compute"
//	  cost_per_hour = 0.0125
//	  latency_ms    = 100
//	  direct        = ["dynamodb", "s3"]
//	  requires {
//	    target       = "rds"
//	    intermediate = ["vpc"]
//	    message      = "Lambda must reach RDS through a VPC"
//	  }
//	}
type serviceBlock struct {
	ID          string     `hcl:"id,label" validate:"required"`
	DisplayName string     `hcl:"display_name" validate:"required"`
	Description string     `hcl:"description,optional"`
	Category    string     `hcl:"category" validate:"required"`
	CostPerHour float64    `hcl:"cost_per_hour" validate:"gte=0"`
	LatencyMs   float64    `hcl:"latency_ms,optional" validate:"gte=0"`
	Direct      []string   `hcl:"direct,optional"`
	Requires    []viaBlock `hcl:"requires,block"`
}

type viaBlock struct {
	Target       string   `hcl:"target" validate:"required"`
	Intermediate []string `hcl:"intermediate" validate:"min=1"`
	Message      string   `hcl:"message,optional"`
}

var validate = validator.New()

// LoadCatalog parses and validates a catalog HCL file. The returned
// catalog has passed referential integrity checks and is ready to share
// across evaluations.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	var file catalogFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Config("failed to parse catalog file", err)
	}
	if len(file.Services) == 0 {
		return nil, errors.Catalogf("catalog file %s defines no services", path)
	}

	c := catalog.NewCatalog()
	for _, svc := range file.Services {
		if err := validate.Struct(svc); err != nil {
			return nil, errors.Config("invalid service definition: "+svc.ID, err)
		}

		entry := catalog.ServiceType{
			ID:            svc.ID,
			DisplayName:   svc.DisplayName,
			Description:   svc.Description,
			Category:      catalog.Category(svc.Category),
			CostPerHour:   decimal.NewFromFloat(svc.CostPerHour),
			LatencyMs:     svc.LatencyMs,
			DirectTargets: svc.Direct,
		}
		for _, via := range svc.Requires {
			entry.RequiredVia = append(entry.RequiredVia, catalog.ViaRule{
				Target:       via.Target,
				Intermediate: via.Intermediate,
				Message:      via.Message,
			})
		}
		c.Register(entry)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
