// internal/api/cli/cobra.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poligap/poligap/internal/analysis/benchmark"
	"github.com/poligap/poligap/internal/analysis/extraction"
	"github.com/poligap/poligap/internal/analysis/suggestion"
	"github.com/poligap/poligap/internal/api/cli/commands"
	"github.com/poligap/poligap/internal/app/service"
	"github.com/poligap/poligap/internal/observability/logging"
	"github.com/poligap/poligap/pkg/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "poligap",
	Short: "PoliGap - compliance document analysis",
	Long: `PoliGap CLI benchmarks policy documents against regulatory frameworks.

It provides:
 - Gap analysis against built-in rule sets (GDPR, HIPAA, SOX, PCI DSS and more)
 - Entity extraction (dates, jurisdictions, responsibilities, timelines, contacts)
 - Framework suggestion and validation for a given document

All commands run fully offline against the built-in rule catalogue.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		commands.AnalyzeCommand(buildService),
		commands.SuggestCommand(buildService),
		commands.ExtractCommand(buildService),
		commands.ValidateCommand(buildService),
	)
}

// buildService assembles the offline analysis pipeline. The CLI never talks
// to postgres, redis or the summarizer endpoint.
func buildService() (service.AnalysisService, error) {
	cfg, err := config.Load(config.LoaderOptions{ConfigFile: cfgFile})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewNoop()
	if verbose {
		l, err := logging.New(logging.Config{Level: "debug", Format: "console", Output: "stderr"})
		if err != nil {
			return nil, fmt.Errorf("init logging: %w", err)
		}
		logger = l
	}

	catalog, err := benchmark.NewCatalogWithOverrides(cfg.Analysis.CatalogOverridePath)
	if err != nil {
		return nil, fmt.Errorf("load rule catalogue: %w", err)
	}
	engineOpts := []benchmark.EngineOption{
		benchmark.WithTopRecommendations(cfg.Analysis.TopRecommendations),
	}
	if cfg.Analysis.BenchmarkOverridePath != "" {
		rows, err := benchmark.LoadBenchmarkFile(cfg.Analysis.BenchmarkOverridePath)
		if err != nil {
			return nil, fmt.Errorf("load benchmark table: %w", err)
		}
		engineOpts = append(engineOpts, benchmark.WithIndustryBenchmarks(rows))
	}
	engine := benchmark.NewEngine(catalog, engineOpts...)
	extractor := extraction.NewExtractor(nil)
	suggester := suggestion.NewSuggester(extractor)

	return service.NewAnalysisService(engine, extractor, suggester, service.Options{
		DefaultFrameworks: cfg.Analysis.DefaultFrameworks,
		DefaultIndustry:   cfg.Analysis.DefaultIndustry,
		Logger:            logger,
	}), nil
}
