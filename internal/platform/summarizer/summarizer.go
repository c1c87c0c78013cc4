// Package summarizer turns benchmarking output into an executive gap summary
// by prompting an external generative endpoint. Every failure mode falls back
// to a summary synthesized locally from the benchmarking result, so callers
// always get a usable Summary back.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/poligap/poligap/internal/analysis/benchmark"
	"github.com/poligap/poligap/internal/observability/logging"
	"github.com/poligap/poligap/internal/observability/metrics"
	"github.com/poligap/poligap/pkg/errors"
)

// Summary is the executive gap analysis produced for one benchmarking run.
type Summary struct {
	Summary            string                     `json:"summary"`
	OverallScore       int                        `json:"overall_score"`
	IndustryBenchmark  BenchmarkSummary           `json:"industry_benchmark"`
	TotalGaps          int                        `json:"total_gaps"`
	Gaps               []GapSummary               `json:"gaps"`
	PrioritizedActions []benchmark.Recommendation `json:"prioritized_actions"`

	// Fallback is true when the summary was synthesized locally because the
	// external endpoint was unreachable or returned an unusable response.
	Fallback bool `json:"fallback,omitempty"`
}

// BenchmarkSummary contextualizes the score against the industry table.
type BenchmarkSummary struct {
	UserScore       int                      `json:"user_score"`
	IndustryAverage float64                  `json:"industry_average"`
	Comparison      benchmark.ComparisonBand `json:"comparison"`
	Industry        string                   `json:"industry"`
	Insights        string                   `json:"insights"`
}

// GapSummary is one narrated compliance gap.
type GapSummary struct {
	Issue          string `json:"issue"`
	Severity       string `json:"severity"`
	Framework      string `json:"framework"`
	CurrentScore   int    `json:"current_score"`
	TargetScore    int    `json:"target_score"`
	BusinessImpact string `json:"business_impact"`
	Timeframe      string `json:"timeframe"`
	Effort         string `json:"effort"`
	Remediation    string `json:"remediation"`
}

// Request carries everything the summarizer needs for one call.
type Request struct {
	DocumentText string
	Industry     string
	Result       *benchmark.AggregateResult
}

// Config contains configuration for the summarizer client.
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// Client posts analyst prompts to a Gemini-compatible generateContent endpoint.
type Client struct {
	logger     logging.Logger
	collector  *metrics.Collector
	baseURL    string
	apiKey     string
	model      string
	maxRetries int
	httpClient *http.Client
}

// NewClient creates a summarizer client.
func NewClient(logger logging.Logger, collector *metrics.Collector, cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 2
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	if logger == nil {
		logger = logging.NewNoop()
	}

	return &Client{
		logger:     logger,
		collector:  collector,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// generateRequest is the generateContent wire format.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Summarize builds the analyst prompt, calls the endpoint, and parses the
// response. On any failure it returns the locally synthesized fallback
// summary and a nil error; the error return is reserved for nil input.
func (c *Client) Summarize(ctx context.Context, req *Request) (*Summary, error) {
	if req == nil || req.Result == nil {
		return nil, errors.NewValidationError(errors.CodeInvalidArgument, "summarize request requires a benchmarking result")
	}

	start := time.Now()

	text, err := c.generate(ctx, BuildPrompt(req))
	if err != nil {
		if c.collector != nil {
			c.collector.RecordSummarizerRequest(time.Since(start), err)
		}
		c.logger.Warn("summarizer endpoint unavailable, using local fallback",
			logging.Error(err))
		return FallbackSummary(req.Result, req.Industry), nil
	}

	summary, err := ParseSummary(text, req.Result, req.Industry)
	if c.collector != nil {
		c.collector.RecordSummarizerRequest(time.Since(start), err)
	}
	if err != nil {
		c.logger.Warn("summarizer response unparseable, using local fallback",
			logging.Error(err))
		return FallbackSummary(req.Result, req.Industry), nil
	}

	c.logger.Info("summary generated",
		logging.Int("total_gaps", summary.TotalGaps),
		logging.Int("overall_score", summary.OverallScore),
		logging.Duration("latency", time.Since(start)))
	return summary, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.1,
			TopK:            20,
			TopP:            0.8,
			MaxOutputTokens: 2048,
		},
	})
	if err != nil {
		return "", errors.WrapInternalError(err, errors.CodeInternalError, "failed to encode summarizer request")
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Info("retrying summarizer request", logging.Int("attempt", attempt))
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		text, err := c.doGenerate(ctx, endpoint, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func (c *Client) doGenerate(ctx context.Context, endpoint string, body []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WrapInternalError(err, errors.CodeInternalError, "failed to build summarizer request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrSummarizerUnavailable.Code, "summarizer request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", errors.NewFromCodef(errors.ErrSummarizerUnavailable,
			"summarizer returned status %d: %s", resp.StatusCode, string(payload))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", errors.Wrap(err, errors.ErrSummarizerUnavailable.Code, "failed to decode summarizer response")
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", errors.NewFromCodef(errors.ErrSummarizerUnavailable, "summarizer response has no candidates")
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
