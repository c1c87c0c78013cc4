package summarizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poligap/poligap/internal/analysis/benchmark"
	"github.com/poligap/poligap/internal/platform/summarizer"
)

func sampleResult() *benchmark.AggregateResult {
	return &benchmark.AggregateResult{
		FrameworkResults: map[string]*benchmark.ScoreResult{
			"GDPR": {
				FrameworkID:   "GDPR",
				FrameworkName: "General Data Protection Regulation",
				OverallScore:  45,
				MaturityLevel: benchmark.MaturityBasic,
			},
			"HIPAA": {
				FrameworkID:   "HIPAA",
				FrameworkName: "Health Insurance Portability and Accountability Act",
				OverallScore:  60,
				MaturityLevel: benchmark.MaturityIntermediate,
			},
		},
		AverageScore:        52,
		IndustryBenchmark:   benchmark.IndustryBenchmark{Industry: "Technology", Average: 72, Bottom25: 58},
		BenchmarkComparison: benchmark.BandBelowAverage,
		CriticalGaps:        2,
		HighGaps:            3,
		TotalStrengths:      4,
		PrioritizedRecommendations: []benchmark.Recommendation{
			{Priority: 1, Gap: benchmark.Gap{
				RuleID: "gdpr_breach_notification", FrameworkID: "GDPR", Title: "Breach notification within 72 hours",
				Severity: benchmark.SeverityCritical, Weight: 20, BusinessImpact: "Regulatory fines",
				Timeframe: "1-3 months", Effort: "Medium", Remediation: "Define a 72 hour notification procedure",
				CurrentScore: 45, TargetScore: 65,
			}},
			{Priority: 2, Gap: benchmark.Gap{
				RuleID: "hipaa_access_controls", FrameworkID: "HIPAA", Title: "Access controls for ePHI",
				Severity: benchmark.SeverityHigh, Weight: 15, BusinessImpact: "Unauthorized disclosure",
				Timeframe: "1-3 months", Effort: "High", Remediation: "Implement role based access",
				CurrentScore: 60, TargetScore: 75,
			}},
		},
	}
}

func TestBuildPrompt(t *testing.T) {
	req := &summarizer.Request{
		DocumentText: "Our privacy policy covers personal data handling.",
		Industry:     "Technology",
		Result:       sampleResult(),
	}

	t.Run("includes benchmarking context", func(t *testing.T) {
		prompt := summarizer.BuildPrompt(req)

		assert.Contains(t, prompt, "Overall Compliance Score: 52%")
		assert.Contains(t, prompt, "Industry Benchmark (Technology): 72%")
		assert.Contains(t, prompt, "Performance Level: below_average")
		assert.Contains(t, prompt, "GDPR (General Data Protection Regulation): 45% - Basic maturity")
		assert.Contains(t, prompt, "Priority 1: Breach notification within 72 hours (GDPR - critical)")
		assert.Contains(t, prompt, "respond with ONLY valid JSON")
		assert.Contains(t, prompt, req.DocumentText)
	})

	t.Run("framework order is deterministic", func(t *testing.T) {
		first := summarizer.BuildPrompt(req)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, summarizer.BuildPrompt(req))
		}
		assert.Less(t, strings.Index(first, "- GDPR ("), strings.Index(first, "- HIPAA ("))
	})

	t.Run("long documents are truncated", func(t *testing.T) {
		long := &summarizer.Request{
			DocumentText: strings.Repeat("a", 5000),
			Industry:     "Technology",
			Result:       sampleResult(),
		}
		prompt := summarizer.BuildPrompt(long)
		assert.Less(t, len(prompt), 5000)
	})
}

func TestParseSummary(t *testing.T) {
	result := sampleResult()

	t.Run("parses fenced json", func(t *testing.T) {
		response := "Here is the analysis:\n```json\n" + `{
  "summary": "Strong in access control, weak in breach response.",
  "overallScore": 55,
  "totalGaps": 1,
  "gaps": [
    {"issue": "No breach procedure", "severity": "Critical", "framework": "GDPR", "targetScore": 80,
     "businessImpact": "Fines", "timeframe": "1-3 months", "effort": "Medium", "remediation": "Write one"}
  ]
}` + "\n```\nHope that helps."

		summary, err := summarizer.ParseSummary(response, result, "Technology")
		require.NoError(t, err)

		assert.Equal(t, "Strong in access control, weak in breach response.", summary.Summary)
		assert.Equal(t, 55, summary.OverallScore)
		assert.Equal(t, 1, summary.TotalGaps)
		require.Len(t, summary.Gaps, 1)
		assert.Equal(t, "critical", summary.Gaps[0].Severity)
		assert.Equal(t, "GDPR", summary.Gaps[0].Framework)
		assert.False(t, summary.Fallback)
		assert.Equal(t, 55, summary.IndustryBenchmark.UserScore)
		assert.Equal(t, benchmark.BandBelowAverage, summary.IndustryBenchmark.Comparison)
	})

	t.Run("fills gap defaults", func(t *testing.T) {
		response := `{"summary": "ok", "gaps": [{"issue": ""}]}`

		summary, err := summarizer.ParseSummary(response, result, "Technology")
		require.NoError(t, err)
		require.Len(t, summary.Gaps, 1)

		g := summary.Gaps[0]
		assert.Equal(t, "Compliance gap identified", g.Issue)
		assert.Equal(t, "medium", g.Severity)
		assert.Equal(t, "General", g.Framework)
		assert.Equal(t, 100, g.TargetScore)
		assert.Equal(t, "Moderate impact", g.BusinessImpact)
		assert.Equal(t, "3-6 months", g.Timeframe)
		assert.Equal(t, "Medium", g.Effort)
		assert.Equal(t, "Review and update policies", g.Remediation)
	})

	t.Run("missing gaps fall back to recommendations", func(t *testing.T) {
		response := `{"summary": "ok", "overallScore": 52}`

		summary, err := summarizer.ParseSummary(response, result, "Technology")
		require.NoError(t, err)

		require.Len(t, summary.Gaps, 2)
		assert.Equal(t, "GDPR: Breach notification within 72 hours", summary.Gaps[0].Issue)
		assert.Equal(t, 2, summary.TotalGaps)
	})

	t.Run("missing summary gets default text", func(t *testing.T) {
		summary, err := summarizer.ParseSummary(`{"overallScore": 10}`, result, "Technology")
		require.NoError(t, err)
		assert.Equal(t, "Gap analysis completed with benchmarking insights", summary.Summary)
	})

	t.Run("zero score falls back to benchmarking score", func(t *testing.T) {
		summary, err := summarizer.ParseSummary(`{"summary": "ok"}`, result, "Technology")
		require.NoError(t, err)
		assert.Equal(t, 52, summary.OverallScore)
	})

	t.Run("no json object is an error", func(t *testing.T) {
		_, err := summarizer.ParseSummary("I cannot help with that.", result, "Technology")
		assert.Error(t, err)
	})

	t.Run("braces inside strings do not confuse extraction", func(t *testing.T) {
		response := `{"summary": "uses { and } inside", "overallScore": 40}` + " trailing text }"
		summary, err := summarizer.ParseSummary(response, result, "Technology")
		require.NoError(t, err)
		assert.Equal(t, "uses { and } inside", summary.Summary)
		assert.Equal(t, 40, summary.OverallScore)
	})
}

func TestFallbackSummary(t *testing.T) {
	result := sampleResult()

	summary := summarizer.FallbackSummary(result, "Technology")

	assert.True(t, summary.Fallback)
	assert.Equal(t, 52, summary.OverallScore)
	assert.Equal(t, "Technology", summary.IndustryBenchmark.Industry)
	assert.Contains(t, summary.IndustryBenchmark.Insights, "Automated compliance assessment completed")
	assert.Contains(t, summary.IndustryBenchmark.Insights, "scores 52%")

	require.Len(t, summary.Gaps, 2)
	assert.Equal(t, "GDPR: Breach notification within 72 hours", summary.Gaps[0].Issue)
	assert.Equal(t, "critical", summary.Gaps[0].Severity)
	assert.Equal(t, 65, summary.Gaps[0].TargetScore)
	assert.Equal(t, 2, summary.TotalGaps)
	assert.Len(t, summary.PrioritizedActions, 2)
}
