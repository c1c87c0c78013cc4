// Package service orchestrates the analysis pipeline: benchmarking, entity
// extraction, framework suggestion, validation, insights, optional summary
// and optional persistence, behind one application-facing interface.
package service

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/poligap/poligap/internal/analysis/benchmark"
	"github.com/poligap/poligap/internal/analysis/extraction"
	"github.com/poligap/poligap/internal/analysis/suggestion"
	"github.com/poligap/poligap/internal/app/dto"
	"github.com/poligap/poligap/internal/observability/logging"
	"github.com/poligap/poligap/internal/observability/metrics"
	"github.com/poligap/poligap/internal/platform/summarizer"
	"github.com/poligap/poligap/pkg/errors"
)

// Defaults applied when a request leaves frameworks or industry unset.
var defaultFrameworks = []string{"GDPR", "HIPAA", "SOX"}

const defaultIndustry = "Technology"

// AnalysisRecord is the persisted form of one analysis.
type AnalysisRecord struct {
	ID           string
	DocumentName string
	Industry     string
	AverageScore int
	Payload      *dto.AnalysisResponse
	CreatedAt    time.Time
}

// Repository stores analysis records. Implementations must be safe for
// concurrent use.
type Repository interface {
	Save(ctx context.Context, record *AnalysisRecord) error
	Get(ctx context.Context, id string) (*AnalysisRecord, error)
	List(ctx context.Context, industry string, offset, limit int) ([]*AnalysisRecord, int64, error)
}

// Summarizer produces an executive summary for a benchmarking result.
type Summarizer interface {
	Summarize(ctx context.Context, req *summarizer.Request) (*summarizer.Summary, error)
}

// AnalysisService is the application service for document analysis.
type AnalysisService interface {
	// Analyze runs the full pipeline on one document.
	Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.AnalysisResponse, error)

	// GetAnalysis returns a persisted analysis by id.
	GetAnalysis(ctx context.Context, id string) (*dto.AnalysisResponse, error)

	// ListAnalyses pages through persisted analyses.
	ListAnalyses(ctx context.Context, req *dto.ListAnalysesRequest) (*dto.ListAnalysesResponse, error)

	// SuggestFrameworks recommends frameworks for a document.
	SuggestFrameworks(ctx context.Context, req *dto.SuggestRequest) (*suggestion.SuggestionBundle, error)

	// ExtractEntities extracts structured entities from a document.
	ExtractEntities(ctx context.Context, req *dto.ExtractRequest) (*extraction.EntityBundle, error)

	// ValidateFrameworks checks requested frameworks against document content.
	ValidateFrameworks(ctx context.Context, req *dto.ValidateRequest) (*suggestion.ValidationBundle, error)

	// ValidateCompleteness scores the document as a compliance artifact.
	ValidateCompleteness(ctx context.Context, documentText string, requiredFrameworks []string) (*dto.CompletenessReport, error)
}

type analysisService struct {
	engine            *benchmark.Engine
	extractor         *extraction.Extractor
	suggester         *suggestion.Suggester
	repo              Repository
	summarizer        Summarizer
	defaultFrameworks []string
	defaultIndustry   string
	logger            logging.Logger
	collector         *metrics.Collector
}

// Options configures optional collaborators of the analysis service.
type Options struct {
	// Repository enables persistence; nil disables history endpoints.
	Repository Repository

	// Summarizer enables executive summaries; nil disables them.
	Summarizer Summarizer

	// DefaultFrameworks replaces the built-in GDPR/HIPAA/SOX default.
	DefaultFrameworks []string

	// DefaultIndustry replaces the built-in Technology default.
	DefaultIndustry string

	Logger    logging.Logger
	Collector *metrics.Collector
}

// NewAnalysisService wires the analysis pipeline.
func NewAnalysisService(engine *benchmark.Engine, extractor *extraction.Extractor, suggester *suggestion.Suggester, opts Options) AnalysisService {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNoop()
	}
	frameworks := opts.DefaultFrameworks
	if len(frameworks) == 0 {
		frameworks = defaultFrameworks
	}
	industry := opts.DefaultIndustry
	if industry == "" {
		industry = defaultIndustry
	}
	return &analysisService{
		engine:            engine,
		extractor:         extractor,
		suggester:         suggester,
		repo:              opts.Repository,
		summarizer:        opts.Summarizer,
		defaultFrameworks: frameworks,
		defaultIndustry:   industry,
		logger:            logger,
		collector:         opts.Collector,
	}
}

func (s *analysisService) Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.AnalysisResponse, error) {
	if req == nil || strings.TrimSpace(req.DocumentText) == "" {
		return nil, errors.NewFromCode(errors.ErrMissingDocumentText)
	}

	start := time.Now()

	frameworks := req.Frameworks
	if len(frameworks) == 0 {
		frameworks = s.defaultFrameworks
	}
	industry := req.Industry
	if industry == "" {
		industry = s.defaultIndustry
	}

	engine := s.engine
	if req.TopRecommendations > 0 {
		engine = s.engine.WithOptions(benchmark.WithTopRecommendations(req.TopRecommendations))
	}

	// Extraction and suggestion run concurrently with benchmarking; they
	// only share the immutable document text.
	var (
		wg       sync.WaitGroup
		result   *benchmark.AggregateResult
		entities *extraction.EntityBundle
		suggests *suggestion.SuggestionBundle
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		result = engine.PerformComprehensiveBenchmarking(req.DocumentText, frameworks, industry)
	}()
	go func() {
		defer wg.Done()
		entities, _ = s.extractor.ExtractEntities(req.DocumentText, extraction.Options{})
		suggests, _ = s.suggester.SuggestFrameworks(req.DocumentText, extraction.Options{})
	}()
	wg.Wait()

	// Validate the union of requested and suggested frameworks.
	validation, err := s.suggester.ValidateFrameworks(unionFrameworks(frameworks, suggests), req.DocumentText)
	if err != nil {
		return nil, err
	}

	resolved := make([]string, 0, len(result.FrameworkResults))
	for _, id := range frameworks {
		canonical := benchmark.NormalizeFrameworkID(id)
		if _, ok := result.FrameworkResults[canonical]; ok && !containsString(resolved, canonical) {
			resolved = append(resolved, canonical)
		}
	}

	resp := &dto.AnalysisResponse{
		ID:           uuid.NewString(),
		DocumentName: req.DocumentName,
		Industry:     industry,
		Frameworks:   resolved,
		Benchmarking: result,
		Entities:     entities,
		Suggestions:  suggests,
		Validation:   validation,
		Insights:     buildInsights(entities),
	}

	if req.Summarize && s.summarizer != nil {
		summary, err := s.summarizer.Summarize(ctx, &summarizer.Request{
			DocumentText: req.DocumentText,
			Industry:     industry,
			Result:       result,
		})
		if err != nil {
			s.logger.Warn("summary generation failed", logging.Error(err))
		} else {
			resp.Summary = summary
		}
	}

	if req.Persist && s.repo != nil {
		now := time.Now().UTC()
		resp.GeneratedAt = &now
		record := &AnalysisRecord{
			ID:           resp.ID,
			DocumentName: req.DocumentName,
			Industry:     industry,
			AverageScore: result.AverageScore,
			Payload:      resp,
			CreatedAt:    now,
		}
		if err := s.repo.Save(ctx, record); err != nil {
			return nil, errors.WrapDatabaseError(err, errors.ErrDatabase.Code, "failed to persist analysis")
		}
	}

	if s.collector != nil {
		codes := make([]string, 0, len(result.Warnings))
		for _, w := range result.Warnings {
			codes = append(codes, string(w.Code))
		}
		s.collector.RecordAnalysis(industry, result.AverageScore, codes, time.Since(start))
		for id, fr := range result.FrameworkResults {
			s.collector.RecordFrameworkScore(id, fr.OverallScore)
		}
	}

	s.logger.WithContext(ctx).Info("analysis completed",
		logging.String("analysis_id", resp.ID),
		logging.String("industry", industry),
		logging.Int("average_score", result.AverageScore),
		logging.Int("frameworks", len(result.FrameworkResults)),
		logging.Int("warnings", len(result.Warnings)),
		logging.Duration("latency", time.Since(start)))

	return resp, nil
}

func (s *analysisService) GetAnalysis(ctx context.Context, id string) (*dto.AnalysisResponse, error) {
	if s.repo == nil {
		return nil, errors.NewFromCode(errors.ErrAnalysisNotFound)
	}
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return record.Payload, nil
}

func (s *analysisService) ListAnalyses(ctx context.Context, req *dto.ListAnalysesRequest) (*dto.ListAnalysesResponse, error) {
	if req == nil {
		req = &dto.ListAnalysesRequest{}
	}
	if s.repo == nil {
		return dto.NewListAnalysesResponse(nil, 0, req.NormalizedPage(), req.NormalizedPageSize()), nil
	}

	records, total, err := s.repo.List(ctx, req.Industry, req.Offset(), req.NormalizedPageSize())
	if err != nil {
		return nil, err
	}

	items := make([]dto.AnalysisListItem, 0, len(records))
	for _, r := range records {
		items = append(items, dto.AnalysisListItem{
			ID:           r.ID,
			DocumentName: r.DocumentName,
			Industry:     r.Industry,
			AverageScore: r.AverageScore,
			GeneratedAt:  r.CreatedAt,
		})
	}
	return dto.NewListAnalysesResponse(items, total, req.NormalizedPage(), req.NormalizedPageSize()), nil
}

func (s *analysisService) SuggestFrameworks(ctx context.Context, req *dto.SuggestRequest) (*suggestion.SuggestionBundle, error) {
	if req == nil || strings.TrimSpace(req.DocumentText) == "" {
		return nil, errors.NewFromCode(errors.ErrMissingDocumentText)
	}

	bundle, err := s.suggester.SuggestFrameworks(req.DocumentText, extraction.Options{})
	if err != nil {
		return nil, err
	}
	if s.collector != nil {
		names := make([]string, 0, len(bundle.Suggestions))
		for _, sg := range bundle.Suggestions {
			names = append(names, sg.Framework)
		}
		s.collector.RecordSuggestion(names)
	}
	return bundle, nil
}

func (s *analysisService) ExtractEntities(ctx context.Context, req *dto.ExtractRequest) (*extraction.EntityBundle, error) {
	if req == nil || strings.TrimSpace(req.DocumentText) == "" {
		return nil, errors.NewFromCode(errors.ErrMissingDocumentText)
	}

	start := time.Now()
	bundle, err := s.extractor.ExtractEntities(req.DocumentText, extraction.Options{
		MaxEntitiesPerCategory: req.MaxEntitiesPerCategory,
	})
	if err != nil {
		return nil, err
	}
	if s.collector != nil {
		s.collector.RecordExtraction(time.Since(start), map[string]int{
			"dates":            len(bundle.EffectiveDates),
			"jurisdictions":    len(bundle.Jurisdictions),
			"frameworks":       len(bundle.Frameworks),
			"responsibilities": len(bundle.Responsibilities),
			"timelines":        len(bundle.Timelines),
			"requirements":     len(bundle.Requirements),
		})
	}
	return bundle, nil
}

func (s *analysisService) ValidateFrameworks(ctx context.Context, req *dto.ValidateRequest) (*suggestion.ValidationBundle, error) {
	if req == nil || strings.TrimSpace(req.DocumentText) == "" {
		return nil, errors.NewFromCode(errors.ErrMissingDocumentText)
	}
	return s.suggester.ValidateFrameworks(req.Frameworks, req.DocumentText)
}

// Completeness weights per checked element; framework coverage is scaled by
// the fraction of required frameworks that validated.
var completenessWeights = struct {
	dates, jurisdictions, responsibilities, timelines, contact, coverage float64
}{20, 15, 15, 10, 5, 35}

func (s *analysisService) ValidateCompleteness(ctx context.Context, documentText string, requiredFrameworks []string) (*dto.CompletenessReport, error) {
	if strings.TrimSpace(documentText) == "" {
		return nil, errors.NewFromCode(errors.ErrMissingDocumentText)
	}

	entities, err := s.extractor.ExtractEntities(documentText, extraction.Options{})
	if err != nil {
		return nil, err
	}
	validation, err := s.suggester.ValidateFrameworks(requiredFrameworks, documentText)
	if err != nil {
		return nil, err
	}

	report := &dto.CompletenessReport{
		HasEffectiveDates:   len(entities.EffectiveDates) > 0,
		HasJurisdictions:    len(entities.Jurisdictions) > 0,
		HasResponsibilities: len(entities.Responsibilities) > 0,
		HasTimelines:        len(entities.Timelines) > 0,
		HasContactInfo:      len(entities.ContactInfo.Emails) > 0 || len(entities.ContactInfo.Phones) > 0,
		MissingElements:     validation.MissingElements,
		Warnings:            validation.Warnings,
	}
	if len(requiredFrameworks) > 0 {
		report.FrameworkCoverage = float64(len(validation.ValidFrameworks)) / float64(len(requiredFrameworks))
	}

	score := report.FrameworkCoverage * completenessWeights.coverage
	if report.HasEffectiveDates {
		score += completenessWeights.dates
	}
	if report.HasJurisdictions {
		score += completenessWeights.jurisdictions
	}
	if report.HasResponsibilities {
		score += completenessWeights.responsibilities
	}
	if report.HasTimelines {
		score += completenessWeights.timelines
	}
	if report.HasContactInfo {
		score += completenessWeights.contact
	}
	report.Score = int(math.Floor(score + 0.5))

	report.Recommendations = completenessRecommendations(report)
	return report, nil
}

func completenessRecommendations(report *dto.CompletenessReport) []dto.ComplianceRecommendation {
	var recs []dto.ComplianceRecommendation

	if !report.HasEffectiveDates {
		recs = append(recs, dto.ComplianceRecommendation{
			Priority: "high",
			Category: "dates",
			Message:  "Add clear effective dates and implementation timelines",
			Action:   "Include specific dates when the policy takes effect",
		})
	}
	if !report.HasJurisdictions {
		recs = append(recs, dto.ComplianceRecommendation{
			Priority: "high",
			Category: "scope",
			Message:  "Specify jurisdictional scope and applicable regions",
			Action:   "Clearly state which countries, states, or regions this policy applies to",
		})
	}
	if !report.HasResponsibilities {
		recs = append(recs, dto.ComplianceRecommendation{
			Priority: "medium",
			Category: "governance",
			Message:  "Define roles and responsibilities",
			Action:   "Specify who is responsible for implementing and maintaining compliance",
		})
	}
	if !report.HasTimelines {
		recs = append(recs, dto.ComplianceRecommendation{
			Priority: "medium",
			Category: "timelines",
			Message:  "Include compliance timelines and deadlines",
			Action:   "Add specific timeframes for various compliance activities",
		})
	}
	if !report.HasContactInfo {
		recs = append(recs, dto.ComplianceRecommendation{
			Priority: "low",
			Category: "contact",
			Message:  "Provide contact information for compliance questions",
			Action:   "Include email addresses or phone numbers for compliance inquiries",
		})
	}
	if report.FrameworkCoverage < 1 {
		recs = append(recs, dto.ComplianceRecommendation{
			Priority: "high",
			Category: "frameworks",
			Message:  "Address missing framework requirements",
			Action:   "Review and include requirements for all applicable compliance frameworks",
		})
	}
	return recs
}

// buildInsights condenses an entity bundle into the reviewer-facing findings
// set: top dates by confidence, confidently placed jurisdictions, leading
// responsibilities, and timelines with urgent windows.
func buildInsights(entities *extraction.EntityBundle) *dto.DocumentInsights {
	if entities == nil {
		return nil
	}

	insights := &dto.DocumentInsights{
		DocumentType: string(entities.Metadata.DocumentType),
		UrgencyLevel: string(entities.Metadata.UrgencyLevel),
		Complexity:   entities.Metadata.ComplexityScore,
		Readability:  entities.Metadata.ReadabilityScore,
		WordCount:    entities.Metadata.WordCount,

		KeyDates:            topDates(entities.EffectiveDates, 3),
		DetectedFrameworks:  entities.Frameworks,
		KeyResponsibilities: topResponsibilities(entities.Responsibilities, 5),

		ContactDetails: entities.ContactInfo,
	}

	for _, j := range entities.Jurisdictions {
		if j.Confidence > 0.7 {
			insights.PrimaryJurisdictions = append(insights.PrimaryJurisdictions, j)
		}
	}
	for _, tl := range entities.Timelines {
		if strings.Contains(tl.Text, "72 hours") || strings.Contains(tl.Text, "immediate") || strings.Contains(tl.Text, "24 hours") {
			insights.CriticalTimelines = append(insights.CriticalTimelines, tl)
		}
	}
	insights.HasContactInfo = len(entities.ContactInfo.Emails) > 0 || len(entities.ContactInfo.Phones) > 0

	insights.Suggestions = enhancementSuggestions(insights)
	return insights
}

func enhancementSuggestions(insights *dto.DocumentInsights) []dto.EnhancementSuggestion {
	var suggestions []dto.EnhancementSuggestion

	if len(insights.KeyDates) == 0 {
		suggestions = append(suggestions, dto.EnhancementSuggestion{
			Type:     "warning",
			Message:  "No effective dates found. Consider adding implementation timelines.",
			Priority: "medium",
		})
	}
	if len(insights.PrimaryJurisdictions) == 0 {
		suggestions = append(suggestions, dto.EnhancementSuggestion{
			Type:     "warning",
			Message:  "No clear jurisdictional scope identified. Specify applicable regions.",
			Priority: "high",
		})
	}
	if !insights.HasContactInfo {
		suggestions = append(suggestions, dto.EnhancementSuggestion{
			Type:     "info",
			Message:  "Consider adding contact information for compliance inquiries.",
			Priority: "low",
		})
	}
	if insights.Complexity > 70 {
		suggestions = append(suggestions, dto.EnhancementSuggestion{
			Type:     "warning",
			Message:  "Document complexity is high. Consider simplifying language for better understanding.",
			Priority: "medium",
		})
	}
	if insights.UrgencyLevel == string(extraction.UrgencyHigh) {
		suggestions = append(suggestions, dto.EnhancementSuggestion{
			Type:     "alert",
			Message:  "High urgency indicators detected. Review implementation timelines.",
			Priority: "high",
		})
	}
	return suggestions
}

func topDates(dates []extraction.DateEntity, n int) []extraction.DateEntity {
	if len(dates) > n {
		dates = dates[:n]
	}
	out := make([]extraction.DateEntity, len(dates))
	copy(out, dates)
	return out
}

func topResponsibilities(resps []extraction.ResponsibilityEntity, n int) []extraction.ResponsibilityEntity {
	if len(resps) > n {
		resps = resps[:n]
	}
	out := make([]extraction.ResponsibilityEntity, len(resps))
	copy(out, resps)
	return out
}

// unionFrameworks merges requested framework ids with suggested ones,
// lowercased, first occurrence wins.
func unionFrameworks(requested []string, suggests *suggestion.SuggestionBundle) []string {
	seen := make(map[string]struct{})
	var union []string

	add := func(id string) {
		key := strings.ToLower(strings.TrimSpace(id))
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		union = append(union, key)
	}

	for _, id := range requested {
		add(id)
	}
	if suggests != nil {
		for _, sg := range suggests.Suggestions {
			add(sg.Framework)
		}
	}
	return union
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
