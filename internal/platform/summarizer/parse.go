package summarizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/poligap/poligap/internal/analysis/benchmark"
	"github.com/poligap/poligap/pkg/errors"
)

// rawSummary mirrors the JSON shape the prompt asks the model for.
type rawSummary struct {
	Summary      string   `json:"summary"`
	OverallScore int      `json:"overallScore"`
	TotalGaps    int      `json:"totalGaps"`
	Gaps         []rawGap `json:"gaps"`
}

type rawGap struct {
	Issue          string `json:"issue"`
	Severity       string `json:"severity"`
	Framework      string `json:"framework"`
	CurrentScore   int    `json:"currentScore"`
	TargetScore    int    `json:"targetScore"`
	BusinessImpact string `json:"businessImpact"`
	Timeframe      string `json:"timeframe"`
	Effort         string `json:"effort"`
	Remediation    string `json:"remediation"`
}

// ParseSummary extracts the JSON payload from a model response and merges it
// with authoritative data from the benchmarking result. Markdown fences and
// trailing prose around the JSON object are tolerated; a truncated object is
// recovered up to its last complete brace.
func ParseSummary(response string, result *benchmark.AggregateResult, industry string) (*Summary, error) {
	payload, err := extractJSON(response)
	if err != nil {
		return nil, err
	}

	var raw rawSummary
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrSummarizerUnavailable.Code, "summarizer response is not valid JSON")
	}

	summary := &Summary{
		Summary:      raw.Summary,
		OverallScore: raw.OverallScore,
	}
	if summary.Summary == "" {
		summary.Summary = "Gap analysis completed with benchmarking insights"
	}
	if summary.OverallScore == 0 {
		summary.OverallScore = result.AverageScore
	}

	summary.IndustryBenchmark = BenchmarkSummary{
		UserScore:       summary.OverallScore,
		IndustryAverage: result.IndustryBenchmark.Average,
		Comparison:      result.BenchmarkComparison,
		Industry:        industry,
		Insights: fmt.Sprintf(
			"Based on comprehensive analysis across %d regulatory frameworks, your organization achieves a %d%% compliance score compared to the %s industry average of %.0f%%.",
			len(result.FrameworkResults), summary.OverallScore, industry, result.IndustryBenchmark.Average),
	}

	if len(raw.Gaps) > 0 {
		summary.Gaps = make([]GapSummary, 0, len(raw.Gaps))
		for _, g := range raw.Gaps {
			summary.Gaps = append(summary.Gaps, sanitizeGap(g))
		}
	} else {
		summary.Gaps = gapsFromRecommendations(result, 5)
	}
	summary.TotalGaps = len(summary.Gaps)

	summary.PrioritizedActions = topRecommendations(result, 5)
	return summary, nil
}

// FallbackSummary synthesizes a Summary entirely from the benchmarking result.
func FallbackSummary(result *benchmark.AggregateResult, industry string) *Summary {
	gaps := gapsFromRecommendations(result, 8)

	return &Summary{
		Summary:      "Gap analysis completed with benchmarking insights",
		OverallScore: result.AverageScore,
		IndustryBenchmark: BenchmarkSummary{
			UserScore:       result.AverageScore,
			IndustryAverage: result.IndustryBenchmark.Average,
			Comparison:      result.BenchmarkComparison,
			Industry:        industry,
			Insights: fmt.Sprintf(
				"Automated compliance assessment completed. Your organization scores %d%% against %s industry standards (average: %.0f%%). Analysis based on %d regulatory checkpoints.",
				result.AverageScore, industry, result.IndustryBenchmark.Average, len(result.PrioritizedRecommendations)),
		},
		TotalGaps:          len(gaps),
		Gaps:               gaps,
		PrioritizedActions: topRecommendations(result, 5),
		Fallback:           true,
	}
}

func sanitizeGap(g rawGap) GapSummary {
	out := GapSummary{
		Issue:          g.Issue,
		Severity:       strings.ToLower(g.Severity),
		Framework:      g.Framework,
		CurrentScore:   g.CurrentScore,
		TargetScore:    g.TargetScore,
		BusinessImpact: g.BusinessImpact,
		Timeframe:      g.Timeframe,
		Effort:         g.Effort,
		Remediation:    g.Remediation,
	}
	if out.Issue == "" {
		out.Issue = "Compliance gap identified"
	}
	if out.Severity == "" {
		out.Severity = "medium"
	}
	if out.Framework == "" {
		out.Framework = "General"
	}
	if out.TargetScore == 0 {
		out.TargetScore = 100
	}
	if out.BusinessImpact == "" {
		out.BusinessImpact = "Moderate impact"
	}
	if out.Timeframe == "" {
		out.Timeframe = "3-6 months"
	}
	if out.Effort == "" {
		out.Effort = "Medium"
	}
	if out.Remediation == "" {
		out.Remediation = "Review and update policies"
	}
	return out
}

func gapsFromRecommendations(result *benchmark.AggregateResult, limit int) []GapSummary {
	recs := result.PrioritizedRecommendations
	if len(recs) > limit {
		recs = recs[:limit]
	}

	gaps := make([]GapSummary, 0, len(recs))
	for _, rec := range recs {
		gaps = append(gaps, GapSummary{
			Issue:          fmt.Sprintf("%s: %s", rec.FrameworkID, rec.Title),
			Severity:       string(rec.Severity),
			Framework:      rec.FrameworkID,
			CurrentScore:   rec.CurrentScore,
			TargetScore:    rec.TargetScore,
			BusinessImpact: rec.BusinessImpact,
			Timeframe:      rec.Timeframe,
			Effort:         rec.Effort,
			Remediation:    rec.Remediation,
		})
	}
	return gaps
}

func topRecommendations(result *benchmark.AggregateResult, limit int) []benchmark.Recommendation {
	recs := result.PrioritizedRecommendations
	if len(recs) > limit {
		recs = recs[:limit]
	}
	out := make([]benchmark.Recommendation, len(recs))
	copy(out, recs)
	return out
}

// extractJSON pulls the first JSON object out of a model response, stripping
// markdown fences and surrounding prose. Brace counting finds the matching
// end; if the object was truncated mid-stream the last closing brace wins.
func extractJSON(response string) (string, error) {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	if start < 0 {
		return "", errors.NewFromCodef(errors.ErrSummarizerUnavailable, "summarizer response contains no JSON object")
	}
	cleaned = cleaned[start:]

	depth := 0
	inString := false
	escaped := false
	for i, r := range cleaned {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return cleaned[:i+1], nil
				}
			}
		}
	}

	// Truncated object: salvage up to the last complete brace.
	if last := strings.LastIndex(cleaned, "}"); last >= 0 {
		return cleaned[:last+1], nil
	}
	return "", errors.NewFromCodef(errors.ErrSummarizerUnavailable, "summarizer response JSON is incomplete")
}
