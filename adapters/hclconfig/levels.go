// Package hclconfig - Level spec loading
package hclconfig

import (
	"strconv"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"archsim/core/level"
	"archsim/internal/errors"
)

// levelsFile is the root schema of a levels .hcl file
type levelsFile struct {
	Levels []levelBlock `hcl:"level,block"`
}

// levelBlock is one level definition:
//
//	level "1" {
//	  title       = "Blog API"
//	  required    = ["api_gateway", "lambda"]
//	  available   = ["api_gateway", "lambda", "iam"]
//	  budget      = 50
//	  max_latency = 300
//	  required_connection {
//	    from    = ["api_gateway"]
//	    to      = ["lambda"]
//	    message = "API Gateway must be connected to Lambda"
//	  }
//	}
type levelBlock struct {
	ID          string            `hcl:"id,label" validate:"required"`
	Title       string            `hcl:"title" validate:"required"`
	Description string            `hcl:"description,optional"`
	Objective   string            `hcl:"objective,optional"`
	Required    []string          `hcl:"required" validate:"min=1"`
	Optional    []string          `hcl:"optional,optional"`
	Available   []string          `hcl:"available" validate:"min=1"`
	OneOf       []oneOfBlock      `hcl:"one_of,block"`
	Connections []connectionBlock `hcl:"required_connection,block"`
	Budget      float64           `hcl:"budget" validate:"gt=0"`
	MaxLatency  float64           `hcl:"max_latency" validate:"gt=0"`
}

type oneOfBlock struct {
	Types []string `hcl:"types" validate:"min=2"`
}

type connectionBlock struct {
	From    []string `hcl:"from,optional"`
	To      []string `hcl:"to,optional"`
	Message string   `hcl:"message" validate:"required"`
}

// LoadLevels parses and validates a levels HCL file into a registry
func LoadLevels(path string) (*level.Registry, error) {
	var file levelsFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Config("failed to parse levels file", err)
	}
	if len(file.Levels) == 0 {
		return nil, errors.Config("levels file defines no levels", nil)
	}

	registry := level.NewRegistry()
	for _, blk := range file.Levels {
		if err := validate.Struct(blk); err != nil {
			return nil, errors.Config("invalid level definition: "+blk.ID, err)
		}
		id, err := strconv.Atoi(blk.ID)
		if err != nil {
			return nil, errors.Config("level label must be numeric: "+blk.ID, err)
		}

		spec := level.RequirementSpec{
			ID:             id,
			Title:          blk.Title,
			Description:    blk.Description,
			Objective:      blk.Objective,
			RequiredTypes:  blk.Required,
			OptionalTypes:  blk.Optional,
			AvailableTypes: blk.Available,
			Budget:         decimal.NewFromFloat(blk.Budget),
			MaxLatencyMs:   blk.MaxLatency,
		}
		for _, group := range blk.OneOf {
			spec.OneOfTypes = append(spec.OneOfTypes, group.Types)
		}
		for _, conn := range blk.Connections {
			spec.RequiredConnections = append(spec.RequiredConnections, level.RequiredConnection{
				From:    conn.From,
				To:      conn.To,
				Message: conn.Message,
			})
		}
		registry.Register(spec)
	}
	return registry, nil
}
