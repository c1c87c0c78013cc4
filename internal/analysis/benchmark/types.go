// Package benchmark implements the rules-based compliance benchmarking engine.
// It evaluates document text against static framework rule catalogues and
// produces per-framework scores, maturity levels, and a prioritized,
// cross-framework recommendation list. The engine is a pure function of its
// inputs plus the catalogue: no I/O, no clock, no randomness.
package benchmark

// WeightTotal is the fixed sum every framework's rule weights must reach so a
// framework score is always a 0-100 percentage.
const WeightTotal = 100

// DefaultTopRecommendations is the default size of the prioritized
// recommendation list.
const DefaultTopRecommendations = 5

// Severity classifies how damaging an unmatched rule is, derived from the
// rule's weight tier.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank returns a sortable rank for the severity (higher is more severe).
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// MaturityLevel is the coarse three-tier label derived from a framework score.
type MaturityLevel string

const (
	MaturityBasic        MaturityLevel = "Basic"
	MaturityIntermediate MaturityLevel = "Intermediate"
	MaturityAdvanced     MaturityLevel = "Advanced"
)

// ComparisonBand buckets an aggregate score by its distance from the industry
// average.
type ComparisonBand string

const (
	BandExcellent    ComparisonBand = "excellent"
	BandGood         ComparisonBand = "good"
	BandAverage      ComparisonBand = "average"
	BandBelowAverage ComparisonBand = "below_average"
	BandPoor         ComparisonBand = "poor"
	BandCritical     ComparisonBand = "critical"
)

// RuleMode selects how a rule's triggers are interpreted.
type RuleMode string

const (
	// ModeRequire grants the rule's weight when any trigger appears in the
	// document.
	ModeRequire RuleMode = "require"

	// ModeForbid grants the rule's weight when no trigger appears; the rule
	// checks absence of prohibited content.
	ModeForbid RuleMode = "forbid"
)

// ComplianceRule is one atomic checkable requirement within a framework.
type ComplianceRule struct {
	// ID identifies the rule within its framework (e.g., "gdpr_breach_notification").
	ID string `json:"id" yaml:"id"`

	// Requirement is the human-readable requirement text.
	Requirement string `json:"requirement" yaml:"requirement"`

	// Category groups related rules (e.g., "data subject rights").
	Category string `json:"category" yaml:"category"`

	// Keywords are case-insensitive substring triggers.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Patterns are optional regular expressions applied case-insensitively;
	// use \b anchors for whole-word matching.
	Patterns []string `json:"patterns,omitempty" yaml:"patterns,omitempty"`

	// Mode defaults to ModeRequire when empty.
	Mode RuleMode `json:"mode,omitempty" yaml:"mode,omitempty"`

	// Weight is the rule's contribution to the framework score. Weights in one
	// framework sum to WeightTotal.
	Weight int `json:"weight" yaml:"weight"`

	// Remediation is guidance text attached to the gap when the rule fails.
	Remediation string `json:"remediation" yaml:"remediation"`

	// BusinessImpact describes the exposure the gap creates.
	BusinessImpact string `json:"business_impact" yaml:"business_impact"`

	// Timeframe is the suggested remediation window (e.g., "1-3 months").
	Timeframe string `json:"timeframe" yaml:"timeframe"`

	// Effort estimates remediation effort (Low/Medium/High).
	Effort string `json:"effort" yaml:"effort"`
}

// SeverityTier derives the gap severity from the rule's weight tier.
func (r ComplianceRule) SeverityTier() Severity {
	switch {
	case r.Weight >= 20:
		return SeverityCritical
	case r.Weight >= 10:
		return SeverityHigh
	case r.Weight >= 5:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// FrameworkRuleSet is the static rule catalogue for one regulatory framework.
// Instances are immutable after catalogue construction.
type FrameworkRuleSet struct {
	// ID is the canonical framework identifier (e.g., "GDPR", "PCI_DSS").
	ID string `json:"id" yaml:"id"`

	// FullName is the display name (e.g., "General Data Protection Regulation").
	FullName string `json:"full_name" yaml:"full_name"`

	// IndustryMultipliers weight this framework's score in the aggregate mean
	// for specific industries. Missing industries default to 1.0.
	IndustryMultipliers map[string]float64 `json:"industry_multipliers,omitempty" yaml:"industry_multipliers,omitempty"`

	// Rules is the ordered list of compliance rules.
	Rules []ComplianceRule `json:"rules" yaml:"rules"`
}

// MultiplierFor returns the aggregate-mean weight of this framework for the
// given industry label.
func (fs *FrameworkRuleSet) MultiplierFor(industry string) float64 {
	if m, ok := fs.IndustryMultipliers[industry]; ok && m > 0 {
		return m
	}
	return 1.0
}

// Strength is a matched rule.
type Strength struct {
	RuleID      string   `json:"rule_id"`
	FrameworkID string   `json:"framework_id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Weight      int      `json:"weight"`
	Severity    Severity `json:"severity"`
}

// Gap is an unmatched rule, reported with severity and remediation guidance.
type Gap struct {
	RuleID         string   `json:"rule_id"`
	FrameworkID    string   `json:"framework_id"`
	FrameworkName  string   `json:"framework_name"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	Severity       Severity `json:"severity"`
	Weight         int      `json:"weight"`
	BusinessImpact string   `json:"business_impact"`
	Timeframe      string   `json:"timeframe"`
	Effort         string   `json:"effort"`
	Remediation    string   `json:"remediation"`
	CurrentScore   int      `json:"current_score"`
	TargetScore    int      `json:"target_score"`
}

// ScoreResult is the per-framework outcome of one benchmarking run. It is
// created fresh per invocation and never mutated afterwards.
type ScoreResult struct {
	FrameworkID   string `json:"framework_id"`
	FrameworkName string `json:"framework_name"`

	// OverallScore is round-half-up of matched weight over total weight,
	// clamped to [0,100].
	OverallScore int `json:"overall_score"`

	MaturityLevel MaturityLevel `json:"maturity_level"`
	Strengths     []Strength    `json:"strengths"`
	Gaps          []Gap         `json:"gaps"`
	MatchedWeight int           `json:"matched_weight"`
	TotalWeight   int           `json:"total_weight"`
}

// Recommendation is a gap promoted into the cross-framework priority list.
type Recommendation struct {
	Priority int `json:"priority"`
	Gap
}

// IndustryBenchmark is a static reference row used to contextualize a score.
type IndustryBenchmark struct {
	Industry string  `json:"industry" yaml:"industry"`
	Average  float64 `json:"average" yaml:"average"`
	Bottom25 float64 `json:"bottom_25" yaml:"bottom_25"`
}

// WarningCode identifies a degraded-input condition.
type WarningCode string

const (
	WarnEmptyDocument      WarningCode = "empty_document"
	WarnUnknownFramework   WarningCode = "unknown_framework"
	WarnDuplicateFramework WarningCode = "duplicate_framework"
	WarnUnknownIndustry    WarningCode = "unknown_industry"
	WarnNoFrameworks       WarningCode = "no_frameworks"
)

// AnalysisWarning records an input anomaly that was absorbed rather than
// raised; the accompanying result is still well-formed.
type AnalysisWarning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// AggregateResult combines all per-framework results of one analysis run.
type AggregateResult struct {
	// FrameworkResults is keyed by canonical framework id.
	FrameworkResults map[string]*ScoreResult `json:"framework_results"`

	// AverageScore is the mean of framework scores, weighted by industry
	// relevance multipliers, rounded half-up.
	AverageScore int `json:"average_score"`

	IndustryBenchmark   IndustryBenchmark `json:"industry_benchmark"`
	BenchmarkComparison ComparisonBand    `json:"benchmark_comparison"`

	CriticalGaps   int `json:"critical_gaps"`
	HighGaps       int `json:"high_gaps"`
	MediumGaps     int `json:"medium_gaps"`
	LowGaps        int `json:"low_gaps"`
	TotalStrengths int `json:"total_strengths"`

	// PrioritizedRecommendations holds the top-N gaps across all frameworks,
	// ordered by severity, weight, then framework id.
	PrioritizedRecommendations []Recommendation `json:"prioritized_recommendations"`

	// Warnings collects absorbed input anomalies.
	Warnings []AnalysisWarning `json:"warnings,omitempty"`
}

// GapCount returns the total number of gaps across all severities.
func (r *AggregateResult) GapCount() int {
	return r.CriticalGaps + r.HighGaps + r.MediumGaps + r.LowGaps
}
