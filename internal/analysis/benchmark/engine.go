package benchmark

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Engine evaluates document text against the framework catalogue. It holds
// only read-only state and is safe for concurrent use.
type Engine struct {
	catalog    *Catalog
	topN       int
	benchmarks map[string]IndustryBenchmark
}

// EngineOption customizes engine construction.
type EngineOption func(*Engine)

// WithTopRecommendations overrides the size of the prioritized
// recommendation list.
func WithTopRecommendations(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.topN = n
		}
	}
}

// WithIndustryBenchmarks overlays the built-in industry benchmark table with
// the given rows.
func WithIndustryBenchmarks(rows []IndustryBenchmark) EngineOption {
	return func(e *Engine) {
		if e.benchmarks == nil {
			e.benchmarks = make(map[string]IndustryBenchmark, len(rows))
		}
		for _, row := range rows {
			e.benchmarks[row.Industry] = row
		}
	}
}

// NewEngine builds an engine over a validated catalogue.
func NewEngine(catalog *Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog: catalog,
		topN:    DefaultTopRecommendations,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithOptions returns a copy of the engine with the given options applied.
// The receiver is not modified.
func (e *Engine) WithOptions(opts ...EngineOption) *Engine {
	clone := &Engine{catalog: e.catalog, topN: e.topN}
	if len(e.benchmarks) > 0 {
		clone.benchmarks = make(map[string]IndustryBenchmark, len(e.benchmarks))
		for k, v := range e.benchmarks {
			clone.benchmarks[k] = v
		}
	}
	for _, opt := range opts {
		opt(clone)
	}
	return clone
}

// benchmarkFor resolves an industry row, preferring overlay rows over the
// built-in table.
func (e *Engine) benchmarkFor(industry string) (IndustryBenchmark, bool) {
	if b, ok := e.benchmarks[industry]; ok {
		return b, true
	}
	return BenchmarkForIndustry(industry)
}

// PerformComprehensiveBenchmarking scores the document against the requested
// frameworks and merges the per-framework results into one aggregate.
//
// Input anomalies never fail the call: empty text yields an all-gaps result,
// unknown framework ids and industries are absorbed into Warnings, and
// duplicate ids are evaluated once. Identical inputs always produce identical
// output.
func (e *Engine) PerformComprehensiveBenchmarking(documentText string, frameworkIDs []string, industry string) *AggregateResult {
	result := &AggregateResult{
		FrameworkResults: make(map[string]*ScoreResult),
	}

	text := strings.TrimSpace(documentText)
	if text == "" {
		result.Warnings = append(result.Warnings, AnalysisWarning{
			Code:    WarnEmptyDocument,
			Message: "document text is empty, all rules reported as gaps",
		})
	}
	lowered := strings.ToLower(text)

	ids := e.resolveFrameworks(frameworkIDs, result)
	if len(ids) == 0 {
		result.Warnings = append(result.Warnings, AnalysisWarning{
			Code:    WarnNoFrameworks,
			Message: "no known frameworks requested, nothing to evaluate",
		})
	}

	for _, id := range ids {
		score := e.evaluateFramework(id, text, lowered)
		result.FrameworkResults[id] = score
		result.TotalStrengths += len(score.Strengths)
		for _, g := range score.Gaps {
			switch g.Severity {
			case SeverityCritical:
				result.CriticalGaps++
			case SeverityHigh:
				result.HighGaps++
			case SeverityMedium:
				result.MediumGaps++
			default:
				result.LowGaps++
			}
		}
	}

	result.AverageScore = e.aggregateScore(ids, result.FrameworkResults, industry)

	bench, known := e.benchmarkFor(industry)
	if !known {
		result.Warnings = append(result.Warnings, AnalysisWarning{
			Code:    WarnUnknownIndustry,
			Message: fmt.Sprintf("industry %q has no benchmark row, using the general default", industry),
		})
	}
	result.IndustryBenchmark = bench
	result.BenchmarkComparison = CompareToBenchmark(result.AverageScore, bench.Average)

	result.PrioritizedRecommendations = e.prioritizeGaps(ids, result.FrameworkResults)

	return result
}

// resolveFrameworks normalizes and de-duplicates the requested ids, recording
// warnings for duplicates and unknown frameworks. Request order is preserved
// so downstream iteration stays deterministic.
func (e *Engine) resolveFrameworks(frameworkIDs []string, result *AggregateResult) []string {
	seen := make(map[string]bool, len(frameworkIDs))
	ids := make([]string, 0, len(frameworkIDs))
	for _, raw := range frameworkIDs {
		id := NormalizeFrameworkID(raw)
		if id == "" {
			continue
		}
		if seen[id] {
			result.Warnings = append(result.Warnings, AnalysisWarning{
				Code:    WarnDuplicateFramework,
				Message: fmt.Sprintf("framework %q requested more than once, evaluated once", id),
			})
			continue
		}
		seen[id] = true
		if _, ok := e.catalog.Get(id); !ok {
			result.Warnings = append(result.Warnings, AnalysisWarning{
				Code:    WarnUnknownFramework,
				Message: fmt.Sprintf("framework %q is not in the catalogue, skipped", id),
			})
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// evaluateFramework runs every rule of one framework against the document.
// Both text forms are passed so keywords match on the lowered text while
// regex patterns, compiled case-insensitively, see the original.
func (e *Engine) evaluateFramework(id, text, lowered string) *ScoreResult {
	fs := e.catalog.sets[id]
	compiled := e.catalog.compiled[id]

	score := &ScoreResult{
		FrameworkID:   id,
		FrameworkName: fs.FullName,
		TotalWeight:   WeightTotal,
		Strengths:     []Strength{},
		Gaps:          []Gap{},
	}

	type outcome struct {
		rule    ComplianceRule
		matched bool
	}
	outcomes := make([]outcome, 0, len(compiled))
	for _, cr := range compiled {
		matched := false
		if text != "" {
			matched = ruleMatches(cr, text, lowered)
		}
		if matched {
			score.MatchedWeight += cr.rule.Weight
		}
		outcomes = append(outcomes, outcome{rule: cr.rule, matched: matched})
	}

	score.OverallScore = clampScore(roundHalfUp(float64(score.MatchedWeight) / float64(score.TotalWeight) * 100))
	score.MaturityLevel = MaturityFor(score.OverallScore)

	for _, o := range outcomes {
		if o.matched {
			score.Strengths = append(score.Strengths, Strength{
				RuleID:      o.rule.ID,
				FrameworkID: id,
				Title:       o.rule.Requirement,
				Category:    o.rule.Category,
				Weight:      o.rule.Weight,
				Severity:    o.rule.SeverityTier(),
			})
			continue
		}
		score.Gaps = append(score.Gaps, Gap{
			RuleID:         o.rule.ID,
			FrameworkID:    id,
			FrameworkName:  fs.FullName,
			Title:          o.rule.Requirement,
			Category:       o.rule.Category,
			Severity:       o.rule.SeverityTier(),
			Weight:         o.rule.Weight,
			BusinessImpact: o.rule.BusinessImpact,
			Timeframe:      o.rule.Timeframe,
			Effort:         o.rule.Effort,
			Remediation:    o.rule.Remediation,
			CurrentScore:   score.OverallScore,
			TargetScore:    clampScore(score.OverallScore + o.rule.Weight),
		})
	}

	return score
}

// ruleMatches reports whether the rule's triggers grant its weight. Require
// rules pass when any trigger appears; forbid rules pass when none do.
func ruleMatches(cr compiledRule, text, lowered string) bool {
	triggered := false
	for _, kw := range cr.keywords {
		if strings.Contains(lowered, kw) {
			triggered = true
			break
		}
	}
	if !triggered {
		for _, re := range cr.patterns {
			if re.MatchString(text) {
				triggered = true
				break
			}
		}
	}
	if cr.rule.Mode == ModeForbid {
		return !triggered
	}
	return triggered
}

// aggregateScore computes the multiplier-weighted mean of the framework
// scores, rounded half-up. No evaluated frameworks yields zero.
func (e *Engine) aggregateScore(ids []string, results map[string]*ScoreResult, industry string) int {
	var weighted, totalWeight float64
	for _, id := range ids {
		mult := e.catalog.sets[id].MultiplierFor(industry)
		weighted += float64(results[id].OverallScore) * mult
		totalWeight += mult
	}
	if totalWeight == 0 {
		return 0
	}
	return clampScore(roundHalfUp(weighted / totalWeight))
}

// prioritizeGaps pools every gap across the evaluated frameworks and ranks
// them: severity first, then rule weight, then framework id; the sort is
// stable so full ties keep pool order.
func (e *Engine) prioritizeGaps(ids []string, results map[string]*ScoreResult) []Recommendation {
	var pool []Gap
	for _, id := range ids {
		pool = append(pool, results[id].Gaps...)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].Severity.Rank() != pool[j].Severity.Rank() {
			return pool[i].Severity.Rank() > pool[j].Severity.Rank()
		}
		if pool[i].Weight != pool[j].Weight {
			return pool[i].Weight > pool[j].Weight
		}
		return pool[i].FrameworkID < pool[j].FrameworkID
	})

	n := e.topN
	if n > len(pool) {
		n = len(pool)
	}
	recs := make([]Recommendation, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, Recommendation{Priority: i + 1, Gap: pool[i]})
	}
	return recs
}

// MaturityFor maps a 0-100 score onto its maturity tier.
func MaturityFor(score int) MaturityLevel {
	switch {
	case score >= 80:
		return MaturityAdvanced
	case score >= 50:
		return MaturityIntermediate
	default:
		return MaturityBasic
	}
}

// CompareToBenchmark buckets an aggregate score by its distance from the
// industry average. A score exactly 15 above average is still "good"; the
// band boundaries are part of the published contract.
func CompareToBenchmark(aggregate int, industryAverage float64) ComparisonBand {
	diff := float64(aggregate) - industryAverage
	switch {
	case diff > 15:
		return BandExcellent
	case diff > 5:
		return BandGood
	case diff >= -5:
		return BandAverage
	case diff >= -15:
		return BandBelowAverage
	case diff >= -25:
		return BandPoor
	default:
		return BandCritical
	}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
