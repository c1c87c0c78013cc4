package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poligap/poligap/internal/analysis/benchmark"
	"github.com/poligap/poligap/internal/analysis/extraction"
	"github.com/poligap/poligap/internal/analysis/suggestion"
	"github.com/poligap/poligap/internal/app/dto"
	"github.com/poligap/poligap/internal/app/service"
	"github.com/poligap/poligap/internal/platform/summarizer"
	apperrors "github.com/poligap/poligap/pkg/errors"
)

const privacyPolicyDoc = `Privacy Policy effective 2024-01-01. This policy applies to the European Union
and covers personal data processing under the lawful basis of consent.
The data protection officer is responsible for compliance oversight and must
report breaches within 72 hours of discovery to the supervisory authority.
Contact compliance@example.com for questions about this policy.`

const vacationPolicyDoc = `Employees may take paid vacation days after ninety days of employment.
Vacation requests go to the direct manager.`

type memoryRepo struct {
	mu      sync.Mutex
	records map[string]*service.AnalysisRecord
	order   []string
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{records: make(map[string]*service.AnalysisRecord)}
}

func (r *memoryRepo) Save(_ context.Context, record *service.AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	r.order = append(r.order, record.ID)
	return nil
}

func (r *memoryRepo) Get(_ context.Context, id string) (*service.AnalysisRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, apperrors.NewFromCode(apperrors.ErrAnalysisNotFound)
	}
	return record, nil
}

func (r *memoryRepo) List(_ context.Context, industry string, offset, limit int) ([]*service.AnalysisRecord, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*service.AnalysisRecord
	for _, id := range r.order {
		record := r.records[id]
		if industry == "" || record.Industry == industry {
			matched = append(matched, record)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

type stubSummarizer struct {
	calls int
	fail  bool
}

func (s *stubSummarizer) Summarize(_ context.Context, req *summarizer.Request) (*summarizer.Summary, error) {
	s.calls++
	if s.fail {
		return nil, apperrors.NewFromCode(apperrors.ErrSummarizerUnavailable)
	}
	return summarizer.FallbackSummary(req.Result, req.Industry), nil
}

func newService(t *testing.T, opts service.Options) service.AnalysisService {
	t.Helper()
	catalog, err := benchmark.NewCatalog(benchmark.BuiltinRuleSets())
	require.NoError(t, err)
	extractor := extraction.NewExtractor(nil)
	return service.NewAnalysisService(
		benchmark.NewEngine(catalog),
		extractor,
		suggestion.NewSuggester(extractor),
		opts,
	)
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("empty document text is rejected", func(t *testing.T) {
		svc := newService(t, service.Options{})

		_, err := svc.Analyze(ctx, &dto.AnalyzeRequest{DocumentText: "   "})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrMissingDocumentText.Code, apperrors.GetCode(err))
	})

	t.Run("defaults apply when frameworks and industry unset", func(t *testing.T) {
		svc := newService(t, service.Options{})

		resp, err := svc.Analyze(ctx, &dto.AnalyzeRequest{DocumentText: privacyPolicyDoc})
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"GDPR", "HIPAA", "SOX"}, resp.Frameworks)
		assert.Len(t, resp.Benchmarking.FrameworkResults, 3)
		assert.Equal(t, "Technology", resp.Industry)
		assert.Equal(t, "Technology", resp.Benchmarking.IndustryBenchmark.Industry)
		assert.NotEmpty(t, resp.ID)
		assert.Nil(t, resp.GeneratedAt)
		assert.Nil(t, resp.Summary)
	})

	t.Run("requested frameworks are normalized and deduplicated", func(t *testing.T) {
		svc := newService(t, service.Options{})

		resp, err := svc.Analyze(ctx, &dto.AnalyzeRequest{
			DocumentText: privacyPolicyDoc,
			Frameworks:   []string{"gdpr", " GDPR ", "pci dss"},
			Industry:     "Healthcare",
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"GDPR", "PCI_DSS"}, resp.Frameworks)
		assert.Len(t, resp.Benchmarking.FrameworkResults, 2)
	})

	t.Run("pipeline output is attached", func(t *testing.T) {
		svc := newService(t, service.Options{})

		resp, err := svc.Analyze(ctx, &dto.AnalyzeRequest{DocumentText: privacyPolicyDoc})
		require.NoError(t, err)

		require.NotNil(t, resp.Entities)
		assert.NotEmpty(t, resp.Entities.EffectiveDates)
		assert.NotEmpty(t, resp.Entities.Jurisdictions)

		require.NotNil(t, resp.Suggestions)
		assert.NotEmpty(t, resp.Suggestions.Suggestions)

		require.NotNil(t, resp.Validation)
		assert.Contains(t, resp.Validation.ValidFrameworks, "gdpr")

		require.NotNil(t, resp.Insights)
		assert.NotEmpty(t, resp.Insights.KeyDates)
	})

	t.Run("validation covers suggested frameworks too", func(t *testing.T) {
		svc := newService(t, service.Options{})

		// The document mentions GDPR, so gdpr appears in validation even
		// though only SOX was requested.
		resp, err := svc.Analyze(ctx, &dto.AnalyzeRequest{
			DocumentText: privacyPolicyDoc,
			Frameworks:   []string{"SOX"},
		})
		require.NoError(t, err)

		validated := append(append([]string{}, resp.Validation.ValidFrameworks...), resp.Validation.InvalidFrameworks...)
		assert.Contains(t, validated, "gdpr")
		assert.Contains(t, validated, "sox")
	})

	t.Run("top recommendations override", func(t *testing.T) {
		svc := newService(t, service.Options{})

		resp, err := svc.Analyze(ctx, &dto.AnalyzeRequest{
			DocumentText:       vacationPolicyDoc,
			Frameworks:         []string{"GDPR", "HIPAA"},
			TopRecommendations: 2,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Benchmarking.PrioritizedRecommendations, 2)
	})

	t.Run("persist stores the record and stamps it", func(t *testing.T) {
		repo := newMemoryRepo()
		svc := newService(t, service.Options{Repository: repo})

		resp, err := svc.Analyze(ctx, &dto.AnalyzeRequest{
			DocumentText: privacyPolicyDoc,
			DocumentName: "privacy-v2.txt",
			Persist:      true,
		})
		require.NoError(t, err)
		require.NotNil(t, resp.GeneratedAt)

		stored, err := repo.Get(ctx, resp.ID)
		require.NoError(t, err)
		assert.Equal(t, "privacy-v2.txt", stored.DocumentName)
		assert.Equal(t, resp.Benchmarking.AverageScore, stored.AverageScore)
	})

	t.Run("summarize attaches a summary", func(t *testing.T) {
		stub := &stubSummarizer{}
		svc := newService(t, service.Options{Summarizer: stub})

		resp, err := svc.Analyze(ctx, &dto.AnalyzeRequest{
			DocumentText: privacyPolicyDoc,
			Summarize:    true,
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Summary)
		assert.Equal(t, 1, stub.calls)
		assert.Equal(t, resp.Benchmarking.AverageScore, resp.Summary.OverallScore)
	})

	t.Run("summarizer failure does not fail the analysis", func(t *testing.T) {
		svc := newService(t, service.Options{Summarizer: &stubSummarizer{fail: true}})

		resp, err := svc.Analyze(ctx, &dto.AnalyzeRequest{
			DocumentText: privacyPolicyDoc,
			Summarize:    true,
		})
		require.NoError(t, err)
		assert.Nil(t, resp.Summary)
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("get without repository reports not found", func(t *testing.T) {
		svc := newService(t, service.Options{})

		_, err := svc.GetAnalysis(ctx, "anything")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrAnalysisNotFound.Code, apperrors.GetCode(err))
	})

	t.Run("list without repository returns an empty page", func(t *testing.T) {
		svc := newService(t, service.Options{})

		page, err := svc.ListAnalyses(ctx, &dto.ListAnalysesRequest{})
		require.NoError(t, err)
		assert.Empty(t, page.Analyses)
		assert.Equal(t, int64(0), page.Total)
		assert.Equal(t, 1, page.Page)
	})

	t.Run("persisted analyses round-trip through get and list", func(t *testing.T) {
		repo := newMemoryRepo()
		svc := newService(t, service.Options{Repository: repo})

		first, err := svc.Analyze(ctx, &dto.AnalyzeRequest{
			DocumentText: privacyPolicyDoc, DocumentName: "a.txt", Persist: true,
		})
		require.NoError(t, err)
		_, err = svc.Analyze(ctx, &dto.AnalyzeRequest{
			DocumentText: vacationPolicyDoc, DocumentName: "b.txt", Industry: "Retail", Persist: true,
		})
		require.NoError(t, err)

		got, err := svc.GetAnalysis(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)
		assert.Equal(t, "a.txt", got.DocumentName)

		page, err := svc.ListAnalyses(ctx, &dto.ListAnalysesRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		require.Len(t, page.Analyses, 2)

		filtered, err := svc.ListAnalyses(ctx, &dto.ListAnalysesRequest{Industry: "Retail"})
		require.NoError(t, err)
		require.Len(t, filtered.Analyses, 1)
		assert.Equal(t, "b.txt", filtered.Analyses[0].DocumentName)
	})
}

func TestInsights(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, service.Options{})

	t.Run("rich document yields findings", func(t *testing.T) {
		resp, err := svc.Analyze(ctx, &dto.AnalyzeRequest{DocumentText: privacyPolicyDoc})
		require.NoError(t, err)

		insights := resp.Insights
		require.NotNil(t, insights)

		assert.NotEmpty(t, insights.KeyDates)
		assert.LessOrEqual(t, len(insights.KeyDates), 3)
		assert.NotEmpty(t, insights.PrimaryJurisdictions)
		for _, j := range insights.PrimaryJurisdictions {
			assert.Greater(t, j.Confidence, 0.7)
		}
		assert.NotEmpty(t, insights.KeyResponsibilities)
		assert.LessOrEqual(t, len(insights.KeyResponsibilities), 5)

		require.NotEmpty(t, insights.CriticalTimelines)
		assert.Contains(t, insights.CriticalTimelines[0].Text, "72 hours")

		assert.True(t, insights.HasContactInfo)
		assert.Positive(t, insights.WordCount)
	})

	t.Run("sparse document yields enhancement suggestions", func(t *testing.T) {
		resp, err := svc.Analyze(ctx, &dto.AnalyzeRequest{DocumentText: vacationPolicyDoc})
		require.NoError(t, err)

		insights := resp.Insights
		require.NotNil(t, insights)
		assert.Empty(t, insights.KeyDates)
		assert.False(t, insights.HasContactInfo)

		messages := make([]string, 0, len(insights.Suggestions))
		for _, sg := range insights.Suggestions {
			messages = append(messages, sg.Message)
		}
		assert.Contains(t, messages, "No effective dates found. Consider adding implementation timelines.")
		assert.Contains(t, messages, "No clear jurisdictional scope identified. Specify applicable regions.")
		assert.Contains(t, messages, "Consider adding contact information for compliance inquiries.")
	})
}

func TestValidateCompleteness(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, service.Options{})

	t.Run("empty text is rejected", func(t *testing.T) {
		_, err := svc.ValidateCompleteness(ctx, "", []string{"gdpr"})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrMissingDocumentText.Code, apperrors.GetCode(err))
	})

	t.Run("rich document scores all structural elements", func(t *testing.T) {
		report, err := svc.ValidateCompleteness(ctx, privacyPolicyDoc, []string{"gdpr"})
		require.NoError(t, err)

		assert.True(t, report.HasEffectiveDates)
		assert.True(t, report.HasJurisdictions)
		assert.True(t, report.HasResponsibilities)
		assert.True(t, report.HasTimelines)
		assert.True(t, report.HasContactInfo)
		assert.Equal(t, 1.0, report.FrameworkCoverage)
		// 20 + 15 + 15 + 10 + 5 + 35
		assert.Equal(t, 100, report.Score)
		assert.Empty(t, report.Recommendations)
	})

	t.Run("sparse document collects recommendations", func(t *testing.T) {
		report, err := svc.ValidateCompleteness(ctx, vacationPolicyDoc, []string{"pci_dss"})
		require.NoError(t, err)

		assert.False(t, report.HasEffectiveDates)
		assert.Zero(t, report.FrameworkCoverage)
		assert.Contains(t, report.MissingElements["pci_dss"], "payment processing context")

		categories := make([]string, 0, len(report.Recommendations))
		for _, rec := range report.Recommendations {
			categories = append(categories, rec.Category)
		}
		assert.ElementsMatch(t, []string{"dates", "scope", "governance", "timelines", "contact", "frameworks"}, categories)
	})

	t.Run("coverage is fractional for mixed framework fit", func(t *testing.T) {
		report, err := svc.ValidateCompleteness(ctx, vacationPolicyDoc, []string{"gdpr", "pci_dss"})
		require.NoError(t, err)
		assert.InDelta(t, 0.5, report.FrameworkCoverage, 1e-9)
	})
}

func TestPassthroughOperations(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, service.Options{})

	t.Run("suggest requires text", func(t *testing.T) {
		_, err := svc.SuggestFrameworks(ctx, &dto.SuggestRequest{DocumentText: ""})
		assert.Error(t, err)
	})

	t.Run("suggest surfaces framework mentions", func(t *testing.T) {
		bundle, err := svc.SuggestFrameworks(ctx, &dto.SuggestRequest{DocumentText: privacyPolicyDoc})
		require.NoError(t, err)

		names := make([]string, 0, len(bundle.Suggestions))
		for _, sg := range bundle.Suggestions {
			names = append(names, sg.Framework)
		}
		assert.Contains(t, names, "gdpr")
	})

	t.Run("extract honors entity cap", func(t *testing.T) {
		bundle, err := svc.ExtractEntities(ctx, &dto.ExtractRequest{
			DocumentText:           privacyPolicyDoc,
			MaxEntitiesPerCategory: 1,
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(bundle.EffectiveDates), 1)
		assert.LessOrEqual(t, len(bundle.Jurisdictions), 1)
	})

	t.Run("validate reports per-framework fit", func(t *testing.T) {
		bundle, err := svc.ValidateFrameworks(ctx, &dto.ValidateRequest{
			DocumentText: vacationPolicyDoc,
			Frameworks:   []string{"pci_dss", "unknown_framework"},
		})
		require.NoError(t, err)
		assert.Contains(t, bundle.InvalidFrameworks, "pci_dss")
		assert.Contains(t, bundle.ValidFrameworks, "unknown_framework")
	})
}
