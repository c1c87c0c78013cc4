package summarizer

import (
	"fmt"
	"sort"
	"strings"
)

// promptPreviewLimit bounds how much document text is quoted in the prompt.
const promptPreviewLimit = 2000

// BuildPrompt renders the analyst prompt for one benchmarking result. It is
// pure: same input, same prompt, framework sections in sorted id order.
func BuildPrompt(req *Request) string {
	result := req.Result

	var b strings.Builder
	b.WriteString("You are an expert compliance analyst with rules benchmarking capabilities. ")
	b.WriteString("Analyze this policy document against regulatory frameworks and provide enhanced gap analysis with benchmarking insights.\n\n")

	b.WriteString("BENCHMARKING RESULTS:\n")
	fmt.Fprintf(&b, "- Overall Compliance Score: %d%%\n", result.AverageScore)
	fmt.Fprintf(&b, "- Industry Benchmark (%s): %.0f%%\n", req.Industry, result.IndustryBenchmark.Average)
	fmt.Fprintf(&b, "- Performance Level: %s\n", result.BenchmarkComparison)
	fmt.Fprintf(&b, "- Critical Gaps: %d\n", result.CriticalGaps)
	fmt.Fprintf(&b, "- High Priority Gaps: %d\n", result.HighGaps)
	fmt.Fprintf(&b, "- Total Strengths Identified: %d\n\n", result.TotalStrengths)

	b.WriteString("FRAMEWORK SCORES:\n")
	ids := make([]string, 0, len(result.FrameworkResults))
	for id := range result.FrameworkResults {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fr := result.FrameworkResults[id]
		fmt.Fprintf(&b, "- %s (%s): %d%% - %s maturity\n", id, fr.FrameworkName, fr.OverallScore, fr.MaturityLevel)
	}

	b.WriteString("\nTOP PRIORITY RECOMMENDATIONS:\n")
	recs := result.PrioritizedRecommendations
	if len(recs) > 5 {
		recs = recs[:5]
	}
	for _, rec := range recs {
		fmt.Fprintf(&b, "- Priority %d: %s (%s - %s)\n", rec.Priority, rec.Title, rec.FrameworkID, rec.Severity)
	}

	b.WriteString("\nIMPORTANT: You MUST respond with ONLY valid JSON. Keep the response concise but complete:\n\n")
	fmt.Fprintf(&b, `{
  "summary": "Executive summary with key findings and benchmarking insights",
  "overallScore": %d,
  "industryBenchmark": {
    "userScore": %d,
    "industryAverage": %.0f,
    "comparison": "%s",
    "industry": "%s"
  },
  "totalGaps": 5,
  "gaps": [
    {
      "issue": "Brief description of compliance gap",
      "severity": "Critical|High|Medium|Low",
      "framework": "Framework name",
      "currentScore": 0,
      "targetScore": 100,
      "businessImpact": "Impact description",
      "timeframe": "1-3 months",
      "effort": "Low|Medium|High",
      "remediation": "Recommended action"
    }
  ]
}
`, result.AverageScore, result.AverageScore, result.IndustryBenchmark.Average, result.BenchmarkComparison, req.Industry)

	preview := req.DocumentText
	if len(preview) > promptPreviewLimit {
		preview = preview[:promptPreviewLimit]
	}
	fmt.Fprintf(&b, "\nDocument text analyzed: %q\n", preview)

	return b.String()
}
