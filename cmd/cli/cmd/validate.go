// Package cmd - validate command
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"archsim/adapters/hclconfig"
	"archsim/adapters/snapshot"
	"archsim/core/catalog"
	"archsim/core/engine"
	"archsim/core/level"
	"archsim/internal/logging"
)

var (
	levelID      int
	catalogFile  string
	levelsFile   string
	outputFormat string
	strictMode   bool
	timeTrial    bool
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [graph.yaml]",
	Short: "Validate an architecture design against a level",
	Long: `Evaluate a saved architecture graph against a level's requirements and
print the verdict: pass/fail, score, violations, cost, and latency.

Examples:
  archsim validate --level 1 design.yaml
  archsim validate --level 5 --strict design.yaml
  archsim validate --level 2 --catalog my-services.hcl design.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().IntVarP(&levelID, "level", "l", 1, "level id to validate against")
	validateCmd.Flags().StringVar(&catalogFile, "catalog", "", "custom service catalog HCL file")
	validateCmd.Flags().StringVar(&levelsFile, "levels", "", "custom levels HCL file")
	validateCmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
	validateCmd.Flags().BoolVar(&strictMode, "strict", false, "unnecessary services fail the level")
	validateCmd.Flags().BoolVar(&timeTrial, "time-trial", false, "apply the x2 time trial score multiplier")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	registry, err := loadLevels()
	if err != nil {
		return err
	}
	spec, err := registry.Get(levelID)
	if err != nil {
		return err
	}

	graph, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}

	logging.Debug("evaluating architecture",
		zap.Int("level", spec.ID),
		zap.Int("nodes", graph.NodeCount()),
		zap.Int("edges", graph.EdgeCount()))

	opts := engine.DefaultOptions()
	opts.Strict = strictMode
	verdict, err := engine.Evaluate(graph, spec, cat, opts)
	if err != nil {
		return err
	}

	score := verdict.Score
	if timeTrial {
		// The engine is time-unaware; the multiplier is a caller concern.
		score *= 2
	}

	if outputFormat == "json" {
		return printJSON(verdict, score)
	}
	printVerdict(spec, verdict, score)
	return nil
}

func loadCatalog() (*catalog.Catalog, error) {
	if catalogFile == "" {
		return catalog.Default(), nil
	}
	return hclconfig.LoadCatalog(catalogFile)
}

func loadLevels() (*level.Registry, error) {
	if levelsFile == "" {
		return level.Default(), nil
	}
	return hclconfig.LoadLevels(levelsFile)
}

func printJSON(verdict *engine.Verdict, score int) error {
	out := struct {
		*engine.Verdict
		FinalScore int `json:"final_score"`
	}{verdict, score}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printVerdict(spec *level.RequirementSpec, verdict *engine.Verdict, score int) {
	fmt.Printf("Level %d: %s\n\n", spec.ID, spec.Title)

	if verdict.Passed {
		fmt.Println("PASSED")
	} else {
		fmt.Println("FAILED")
	}
	fmt.Printf("Score: %d\n", score)
	fmt.Printf("Cost: $%s/hour (budget $%s)\n", verdict.TotalCost.StringFixed(4), spec.Budget.StringFixed(2))
	fmt.Printf("Latency: %.1fms (max %.0fms)\n", verdict.EstimatedLatency, spec.MaxLatencyMs)
	fmt.Printf("Valid connections: %d\n", verdict.ValidEdges)

	if len(verdict.Violations) > 0 {
		fmt.Printf("\nViolations (%d):\n", len(verdict.Violations))
		for _, v := range verdict.Violations {
			fmt.Printf("  [%s] %s\n", v.Kind, v.Message)
		}
	}
}
