// internal/api/cli/commands/analysis_cmd.go
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/poligap/poligap/internal/app/dto"
	"github.com/poligap/poligap/internal/app/service"
)

// ServiceProvider builds the analysis service on first use. Construction is
// deferred so flag parsing happens before the rule catalogue is loaded.
type ServiceProvider func() (service.AnalysisService, error)

// AnalyzeCommand runs the full benchmarking pipeline on one document.
func AnalyzeCommand(provider ServiceProvider) *cobra.Command {
	var (
		frameworks []string
		industry   string
		top        int
		output     string
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Benchmark a policy document against regulatory frameworks",
		Long:  "Run gap analysis, entity extraction and framework suggestion on a document",
		Example: `  # Analyze with default frameworks (GDPR, HIPAA, SOX)
 poligap analyze policy.txt

 # Analyze against specific frameworks for a healthcare organization
 poligap analyze policy.txt --frameworks gdpr,hipaa --industry Healthcare

 # Read from stdin and emit JSON
 cat policy.txt | poligap analyze - --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(args[0])
			if err != nil {
				return err
			}

			svc, err := provider()
			if err != nil {
				return err
			}

			resp, err := svc.Analyze(context.Background(), &dto.AnalyzeRequest{
				DocumentText:       text,
				DocumentName:       documentName(args[0]),
				Frameworks:         frameworks,
				Industry:           industry,
				TopRecommendations: top,
			})
			if err != nil {
				return err
			}

			return printOutput(output, resp, func() {
				printAnalysisText(resp)
			})
		},
	}

	cmd.Flags().StringSliceVarP(&frameworks, "frameworks", "f", nil, "Frameworks to benchmark against (default: GDPR,HIPAA,SOX)")
	cmd.Flags().StringVarP(&industry, "industry", "i", "", "Industry for benchmark comparison (default: Technology)")
	cmd.Flags().IntVarP(&top, "top", "t", 0, "Number of prioritized recommendations (default: 5)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|json|yaml)")

	return cmd
}

// SuggestCommand recommends frameworks for a document.
func SuggestCommand(provider ServiceProvider) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "suggest <file>",
		Short: "Suggest applicable frameworks for a document",
		Example: `  # Suggest frameworks for a privacy policy
 poligap suggest privacy-policy.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(args[0])
			if err != nil {
				return err
			}

			svc, err := provider()
			if err != nil {
				return err
			}

			bundle, err := svc.SuggestFrameworks(context.Background(), &dto.SuggestRequest{DocumentText: text})
			if err != nil {
				return err
			}

			return printOutput(output, bundle, func() {
				if len(bundle.Suggestions) == 0 {
					fmt.Println("No frameworks suggested")
					return
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
				fmt.Fprintln(w, "FRAMEWORK\tCONFIDENCE\tREASONING")
				fmt.Fprintln(w, "---------\t----------\t---------")
				for _, s := range bundle.Suggestions {
					fmt.Fprintf(w, "%s\t%.2f\t%s\n", s.Framework, s.Confidence, truncateString(s.Reasoning, 70))
				}
				w.Flush()
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|json|yaml)")

	return cmd
}

// ExtractCommand extracts structured entities from a document.
func ExtractCommand(provider ServiceProvider) *cobra.Command {
	var (
		maxPerCategory int
		output         string
	)

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract dates, jurisdictions, roles, timelines and contacts",
		Example: `  # Extract all entities as JSON
 poligap extract policy.txt --output json

 # Keep only the top 10 entities per category
 poligap extract policy.txt --max 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(args[0])
			if err != nil {
				return err
			}

			svc, err := provider()
			if err != nil {
				return err
			}

			bundle, err := svc.ExtractEntities(context.Background(), &dto.ExtractRequest{
				DocumentText:           text,
				MaxEntitiesPerCategory: maxPerCategory,
			})
			if err != nil {
				return err
			}

			return printOutput(output, bundle, func() {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
				fmt.Fprintln(w, "CATEGORY\tVALUE\tCONFIDENCE")
				fmt.Fprintln(w, "--------\t-----\t----------")
				for _, d := range bundle.EffectiveDates {
					fmt.Fprintf(w, "date\t%s\t%.2f\n", truncateString(d.Text, 40), d.Confidence)
				}
				for _, j := range bundle.Jurisdictions {
					fmt.Fprintf(w, "jurisdiction\t%s\t%.2f\n", j.Jurisdiction, j.Confidence)
				}
				for _, f := range bundle.Frameworks {
					fmt.Fprintf(w, "framework\t%s\t%.2f\n", f.Framework, f.Confidence)
				}
				for _, r := range bundle.Responsibilities {
					fmt.Fprintf(w, "responsibility\t%s\t%.2f\n", truncateString(r.Role, 40), r.Confidence)
				}
				for _, t := range bundle.Timelines {
					fmt.Fprintf(w, "timeline\t%s\t%.2f\n", truncateString(t.Text, 40), t.Confidence)
				}
				for _, e := range bundle.ContactInfo.Emails {
					fmt.Fprintf(w, "email\t%s\t-\n", e.Email)
				}
				for _, p := range bundle.ContactInfo.Phones {
					fmt.Fprintf(w, "phone\t%s\t-\n", p.Phone)
				}
				for _, u := range bundle.ContactInfo.Websites {
					fmt.Fprintf(w, "website\t%s\t-\n", u.Website)
				}
				w.Flush()

				fmt.Printf("\nDocument: %d words, type %s, urgency %s\n",
					bundle.Metadata.WordCount, bundle.Metadata.DocumentType, bundle.Metadata.UrgencyLevel)
			})
		},
	}

	cmd.Flags().IntVarP(&maxPerCategory, "max", "m", 0, "Max entities per category (0 keeps everything)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|json|yaml)")

	return cmd
}

// ValidateCommand checks whether the named frameworks fit the document.
func ValidateCommand(provider ServiceProvider) *cobra.Command {
	var (
		frameworks []string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate that frameworks apply to a document",
		Example: `  # Check whether HIPAA and PCI DSS fit this document
 poligap validate policy.txt --frameworks hipaa,pci_dss`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(frameworks) == 0 {
				return fmt.Errorf("at least one framework is required (--frameworks)")
			}

			text, err := readDocument(args[0])
			if err != nil {
				return err
			}

			svc, err := provider()
			if err != nil {
				return err
			}

			bundle, err := svc.ValidateFrameworks(context.Background(), &dto.ValidateRequest{
				DocumentText: text,
				Frameworks:   frameworks,
			})
			if err != nil {
				return err
			}

			return printOutput(output, bundle, func() {
				for _, f := range bundle.ValidFrameworks {
					fmt.Printf("valid    %s\n", f)
				}
				for _, f := range bundle.InvalidFrameworks {
					fmt.Printf("invalid  %s (missing: %s)\n", f, strings.Join(bundle.MissingElements[f], ", "))
				}
				for _, warn := range bundle.Warnings {
					fmt.Printf("warning  %s\n", warn)
				}
			})
		},
	}

	cmd.Flags().StringSliceVarP(&frameworks, "frameworks", "f", nil, "Frameworks to validate (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|json|yaml)")

	return cmd
}

func printAnalysisText(resp *dto.AnalysisResponse) {
	b := resp.Benchmarking

	fmt.Printf("Overall Score:   %d%% (%s vs industry)\n", b.AverageScore, b.BenchmarkComparison)
	fmt.Printf("Industry:        %s (average %.0f%%, bottom quartile %.0f%%)\n",
		b.IndustryBenchmark.Industry, b.IndustryBenchmark.Average, b.IndustryBenchmark.Bottom25)
	fmt.Printf("Gaps:            %d critical, %d high, %d medium, %d low\n",
		b.CriticalGaps, b.HighGaps, b.MediumGaps, b.LowGaps)
	fmt.Printf("Strengths:       %d\n\n", b.TotalStrengths)

	ids := make([]string, 0, len(b.FrameworkResults))
	for id := range b.FrameworkResults {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "FRAMEWORK\tSCORE\tMATURITY\tGAPS\tSTRENGTHS")
	fmt.Fprintln(w, "---------\t-----\t--------\t----\t---------")
	for _, id := range ids {
		fr := b.FrameworkResults[id]
		fmt.Fprintf(w, "%s\t%d%%\t%s\t%d\t%d\n",
			fr.FrameworkName, fr.OverallScore, fr.MaturityLevel, len(fr.Gaps), len(fr.Strengths))
	}
	w.Flush()

	if len(b.PrioritizedRecommendations) > 0 {
		fmt.Println("\nTop Recommendations:")
		for _, rec := range b.PrioritizedRecommendations {
			fmt.Printf("  %d. [%s] %s: %s\n", rec.Priority, rec.Severity, rec.FrameworkName, rec.Title)
		}
	}

	if len(b.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, warn := range b.Warnings {
			fmt.Printf("  - %s: %s\n", warn.Code, warn.Message)
		}
	}
}

// readDocument loads the document text from a file, or stdin when the path
// is "-".
func readDocument(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}

func documentName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}

func printOutput(format string, data interface{}, textFunc func()) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		return encoder.Encode(data)

	case "text":
		textFunc()
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
