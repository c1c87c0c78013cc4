package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poligap/poligap/internal/analysis/benchmark"
	"github.com/poligap/poligap/internal/analysis/extraction"
	"github.com/poligap/poligap/internal/analysis/suggestion"
	apihttp "github.com/poligap/poligap/internal/api/http"
	"github.com/poligap/poligap/internal/app/dto"
	"github.com/poligap/poligap/internal/app/service"
	"github.com/poligap/poligap/internal/observability/logging"
	"github.com/poligap/poligap/pkg/config"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	catalog, err := benchmark.NewCatalog(benchmark.BuiltinRuleSets())
	require.NoError(t, err)
	extractor := extraction.NewExtractor(nil)
	svc := service.NewAnalysisService(
		benchmark.NewEngine(catalog),
		extractor,
		suggestion.NewSuggester(extractor),
		service.Options{},
	)

	cfg := &config.Config{}
	cfg.Server.Port = 8080
	cfg.Server.EnableCORS = true
	cfg.Server.CORSAllowedOrigins = []string{"*"}
	cfg.Analysis.TopRecommendations = 5

	return apihttp.NewRouter(cfg, logging.NewNoop(), nil, svc, "test").Handler()
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAnalysisRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("healthz", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("analyze returns a full envelope", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/analysis", dto.AnalyzeRequest{
			DocumentText: "This privacy policy covers personal data. GDPR applies within the European Union.",
			Frameworks:   []string{"GDPR"},
			Industry:     "Technology",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.AnalysisResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, []string{"GDPR"}, resp.Frameworks)
		require.NotNil(t, resp.Benchmarking)
		assert.Contains(t, resp.Benchmarking.FrameworkResults, "GDPR")
		assert.NotNil(t, resp.Entities)
		assert.NotNil(t, resp.Suggestions)
		assert.NotNil(t, resp.Validation)
	})

	t.Run("analyze rejects missing document text", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/analysis", map[string]any{"industry": "Technology"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "REQ_001", errResp.Code)
	})

	t.Run("suggest", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/analysis/suggest", dto.SuggestRequest{
			DocumentText: "Patient medical records are protected health information under HIPAA.",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var bundle suggestion.SuggestionBundle
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))
		names := make([]string, 0, len(bundle.Suggestions))
		for _, s := range bundle.Suggestions {
			names = append(names, s.Framework)
		}
		assert.Contains(t, names, "hipaa")
	})

	t.Run("extract", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/analysis/extract", dto.ExtractRequest{
			DocumentText: "Effective 2024-01-01. Contact privacy@example.com.",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var bundle extraction.EntityBundle
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))
		assert.NotEmpty(t, bundle.EffectiveDates)
		assert.NotEmpty(t, bundle.ContactInfo.Emails)
	})

	t.Run("validate", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/analysis/validate", dto.ValidateRequest{
			DocumentText: "Employee vacation policy.",
			Frameworks:   []string{"pci_dss"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var bundle suggestion.ValidationBundle
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))
		assert.Contains(t, bundle.InvalidFrameworks, "pci_dss")
	})

	t.Run("validate requires frameworks", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/analysis/validate", map[string]any{
			"document_text": "some text",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get unknown analysis is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/nope", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list without persistence is an empty page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var page dto.ListAnalysesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Zero(t, page.Total)
	})
}
