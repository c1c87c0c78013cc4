// Package dto defines the request and response shapes shared by the HTTP API
// and the CLI. Binding tags drive gin request validation.
package dto

import (
	"time"

	"github.com/poligap/poligap/internal/analysis/benchmark"
	"github.com/poligap/poligap/internal/analysis/extraction"
	"github.com/poligap/poligap/internal/analysis/suggestion"
	"github.com/poligap/poligap/internal/platform/summarizer"
)

// AnalyzeRequest asks for a full document analysis.
type AnalyzeRequest struct {
	// DocumentText is the plain text extracted from the policy document.
	DocumentText string `json:"document_text" binding:"required"`

	// DocumentName labels the persisted record; optional.
	DocumentName string `json:"document_name" binding:"max=255"`

	// Frameworks selects the rule sets to benchmark against. Empty means the
	// service defaults apply.
	Frameworks []string `json:"frameworks" binding:"max=20"`

	// Industry picks the benchmark table row. Empty means the service default.
	Industry string `json:"industry" binding:"max=100"`

	// TopRecommendations overrides the recommendation list size.
	TopRecommendations int `json:"top_recommendations" binding:"omitempty,gte=1,lte=50"`

	// Persist stores the result when a repository is configured.
	Persist bool `json:"persist"`

	// Summarize requests an executive summary when a summarizer is configured.
	Summarize bool `json:"summarize"`
}

// SuggestRequest asks for framework suggestions.
type SuggestRequest struct {
	DocumentText string `json:"document_text" binding:"required"`
}

// ExtractRequest asks for entity extraction.
type ExtractRequest struct {
	DocumentText           string `json:"document_text" binding:"required"`
	MaxEntitiesPerCategory int    `json:"max_entities_per_category" binding:"omitempty,gte=1,lte=1000"`
}

// ValidateRequest asks whether the named frameworks fit the document.
type ValidateRequest struct {
	DocumentText string   `json:"document_text" binding:"required"`
	Frameworks   []string `json:"frameworks" binding:"required,min=1,max=20"`
}

// ListAnalysesRequest pages through persisted analyses.
type ListAnalysesRequest struct {
	Page     int    `form:"page" json:"page" binding:"omitempty,gte=1"`
	PageSize int    `form:"page_size" json:"page_size" binding:"omitempty,gte=1,lte=100"`
	Industry string `form:"industry" json:"industry" binding:"max=100"`
}

// Offset returns the zero-based row offset for the page.
func (r *ListAnalysesRequest) Offset() int {
	return (r.NormalizedPage() - 1) * r.NormalizedPageSize()
}

// NormalizedPage returns the page number with the default applied.
func (r *ListAnalysesRequest) NormalizedPage() int {
	if r.Page < 1 {
		return 1
	}
	return r.Page
}

// NormalizedPageSize returns the page size with the default applied.
func (r *ListAnalysesRequest) NormalizedPageSize() int {
	if r.PageSize < 1 {
		return 20
	}
	return r.PageSize
}

// EnhancementSuggestion flags a structural improvement for the document.
type EnhancementSuggestion struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// DocumentInsights condenses extraction output into reviewer-facing findings.
type DocumentInsights struct {
	DocumentType string  `json:"document_type"`
	UrgencyLevel string  `json:"urgency_level"`
	Complexity   float64 `json:"complexity"`
	Readability  float64 `json:"readability"`
	WordCount    int     `json:"word_count"`

	KeyDates             []extraction.DateEntity           `json:"key_dates"`
	PrimaryJurisdictions []extraction.JurisdictionEntity   `json:"primary_jurisdictions"`
	DetectedFrameworks   []extraction.FrameworkMention     `json:"detected_frameworks"`
	KeyResponsibilities  []extraction.ResponsibilityEntity `json:"key_responsibilities"`
	CriticalTimelines    []extraction.TimelineEntity       `json:"critical_timelines"`

	HasContactInfo bool                   `json:"has_contact_info"`
	ContactDetails extraction.ContactInfo `json:"contact_details"`

	Suggestions []EnhancementSuggestion `json:"suggestions"`
}

// ComplianceRecommendation is one completeness improvement action.
type ComplianceRecommendation struct {
	Priority string `json:"priority"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

// CompletenessReport scores how complete the document is as a compliance
// artifact, independent of how well it satisfies any one framework.
type CompletenessReport struct {
	HasEffectiveDates   bool `json:"has_effective_dates"`
	HasJurisdictions    bool `json:"has_jurisdictions"`
	HasResponsibilities bool `json:"has_responsibilities"`
	HasTimelines        bool `json:"has_timelines"`
	HasContactInfo      bool `json:"has_contact_info"`

	// FrameworkCoverage is the fraction of required frameworks that validated.
	FrameworkCoverage float64 `json:"framework_coverage"`

	MissingElements map[string][]string `json:"missing_elements"`
	Warnings        []string            `json:"warnings"`

	// Score is the weighted completeness score, 0 to 100.
	Score int `json:"score"`

	Recommendations []ComplianceRecommendation `json:"recommendations"`
}

// AnalysisResponse is the full envelope returned by Analyze and by the
// history endpoints.
type AnalysisResponse struct {
	ID           string `json:"id"`
	DocumentName string `json:"document_name,omitempty"`
	Industry     string `json:"industry"`

	// Frameworks is the resolved framework list the analysis ran with.
	Frameworks []string `json:"frameworks"`

	Benchmarking *benchmark.AggregateResult   `json:"benchmarking"`
	Entities     *extraction.EntityBundle     `json:"entities"`
	Suggestions  *suggestion.SuggestionBundle `json:"suggestions"`
	Validation   *suggestion.ValidationBundle `json:"validation"`
	Insights     *DocumentInsights            `json:"insights"`
	Summary      *summarizer.Summary          `json:"summary,omitempty"`

	// GeneratedAt is set only on persisted records.
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
}

// AnalysisListItem is the compact row shape for history listings.
type AnalysisListItem struct {
	ID           string    `json:"id"`
	DocumentName string    `json:"document_name,omitempty"`
	Industry     string    `json:"industry"`
	AverageScore int       `json:"average_score"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// ListAnalysesResponse pages persisted analyses.
type ListAnalysesResponse struct {
	Analyses   []AnalysisListItem `json:"analyses"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// NewListAnalysesResponse assembles the paging envelope.
func NewListAnalysesResponse(items []AnalysisListItem, total int64, page, pageSize int) *ListAnalysesResponse {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return &ListAnalysesResponse{
		Analyses:   items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
