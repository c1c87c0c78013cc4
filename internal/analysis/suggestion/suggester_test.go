package suggestion_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poligap/poligap/internal/analysis/extraction"
	"github.com/poligap/poligap/internal/analysis/suggestion"
)

func suggest(t *testing.T, text string) *suggestion.SuggestionBundle {
	t.Helper()
	bundle, err := suggestion.NewSuggester(nil).SuggestFrameworks(text, extraction.Options{})
	require.NoError(t, err)
	return bundle
}

func TestSuggestFrameworks(t *testing.T) {
	t.Run("Jurisdiction alone infers gdpr", func(t *testing.T) {
		bundle := suggest(t, "This agreement covers customers located in the European Union.")

		require.NotEmpty(t, bundle.Suggestions)
		top := bundle.Suggestions[0]
		assert.Equal(t, "gdpr", top.Framework)
		assert.Contains(t, top.Reasoning, "European Union")

		var euConfidence float64
		for _, j := range bundle.DetectedJurisdictions {
			if j.Jurisdiction == "european_union" {
				euConfidence = j.Confidence
			}
		}
		require.Greater(t, euConfidence, 0.0)
		assert.LessOrEqual(t, top.Confidence, 0.8*euConfidence)
	})

	t.Run("Explicit mention outranks jurisdiction inference", func(t *testing.T) {
		bundle := suggest(t, "Our GDPR controls apply throughout the European Union.")

		require.NotEmpty(t, bundle.Suggestions)
		top := bundle.Suggestions[0]
		assert.Equal(t, "gdpr", top.Framework)
		assert.Contains(t, top.Reasoning, "Detected explicit mention")
		assert.InDelta(t, 0.95, top.Confidence, 1e-9)
	})

	t.Run("First reasoning kept when sources overlap", func(t *testing.T) {
		bundle := suggest(t, "Cardholder data rules per PCI DSS cover every payment transaction.")

		var pci *suggestion.Suggestion
		for i := range bundle.Suggestions {
			if bundle.Suggestions[i].Framework == "pci_dss" {
				pci = &bundle.Suggestions[i]
			}
		}
		require.NotNil(t, pci)
		// The explicit-mention source runs first and keeps its reasoning even
		// though the payment heuristic also fires.
		assert.Contains(t, pci.Reasoning, "Detected explicit mention")
	})

	t.Run("Content heuristics fire without jurisdiction or mention", func(t *testing.T) {
		bundle := suggest(t, "Clinic staff handle patient charts under the treatment program.")

		var found bool
		for _, s := range bundle.Suggestions {
			if s.Framework == "hipaa" {
				found = true
				assert.InDelta(t, 0.7, s.Confidence, 1e-9)
				assert.Equal(t, "Healthcare-related content detected", s.Reasoning)
			}
		}
		assert.True(t, found)
	})

	t.Run("Children content suggests coppa", func(t *testing.T) {
		bundle := suggest(t, "Apps directed at children require parental consent before signup.")

		var found bool
		for _, s := range bundle.Suggestions {
			if s.Framework == "coppa" {
				found = true
				assert.InDelta(t, 0.8, s.Confidence, 1e-9)
			}
		}
		assert.True(t, found)
	})

	t.Run("Sorted by confidence descending", func(t *testing.T) {
		bundle := suggest(t, "Payment card processing for healthcare patients with financial audits.")
		for i := 1; i < len(bundle.Suggestions); i++ {
			assert.GreaterOrEqual(t, bundle.Suggestions[i-1].Confidence, bundle.Suggestions[i].Confidence)
		}
	})

	t.Run("Empty text yields empty suggestions", func(t *testing.T) {
		bundle := suggest(t, "")
		assert.Empty(t, bundle.Suggestions)
		assert.Empty(t, bundle.DetectedFrameworks)
	})
}

func TestValidateFrameworks(t *testing.T) {
	suggester := suggestion.NewSuggester(nil)

	t.Run("PCI DSS invalid without payment context", func(t *testing.T) {
		bundle, err := suggester.ValidateFrameworks([]string{"pci_dss"}, "This document discusses employee vacation policy.")
		require.NoError(t, err)

		assert.Contains(t, bundle.InvalidFrameworks, "pci_dss")
		assert.Contains(t, bundle.MissingElements["pci_dss"], "payment processing context")
		assert.Empty(t, bundle.ValidFrameworks)
	})

	t.Run("HIPAA valid with healthcare context", func(t *testing.T) {
		bundle, err := suggester.ValidateFrameworks([]string{"hipaa"}, "Medical records are stored per the hospital retention policy.")
		require.NoError(t, err)

		assert.Contains(t, bundle.ValidFrameworks, "hipaa")
		assert.Empty(t, bundle.InvalidFrameworks)
	})

	t.Run("SOX requires financial or audit tokens", func(t *testing.T) {
		bundle, err := suggester.ValidateFrameworks([]string{"sox"}, "General onboarding handbook for new hires.")
		require.NoError(t, err)
		assert.Contains(t, bundle.InvalidFrameworks, "sox")
		assert.Contains(t, bundle.MissingElements["sox"], "financial/audit context")

		bundle, err = suggester.ValidateFrameworks([]string{"sox"}, "Quarterly financial statements are reviewed by the audit committee.")
		require.NoError(t, err)
		assert.Contains(t, bundle.ValidFrameworks, "sox")
	})

	t.Run("GDPR warns but never invalidates", func(t *testing.T) {
		bundle, err := suggester.ValidateFrameworks([]string{"gdpr"}, "Internal cafeteria menu rotation schedule.")
		require.NoError(t, err)

		assert.Contains(t, bundle.ValidFrameworks, "gdpr")
		assert.Empty(t, bundle.InvalidFrameworks)
		assert.NotEmpty(t, bundle.Warnings)
	})

	t.Run("Unknown frameworks are permissively valid", func(t *testing.T) {
		bundle, err := suggester.ValidateFrameworks([]string{"ferpa", "nist"}, "Any text at all.")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"ferpa", "nist"}, bundle.ValidFrameworks)
	})

	t.Run("Ids matched case-insensitively", func(t *testing.T) {
		bundle, err := suggester.ValidateFrameworks([]string{" HIPAA "}, "No relevant context here.")
		require.NoError(t, err)
		assert.Contains(t, bundle.InvalidFrameworks, "hipaa")
	})

	t.Run("Mixed valid and invalid", func(t *testing.T) {
		text := "Payment processing for cardholder transactions."
		bundle, err := suggester.ValidateFrameworks([]string{"pci_dss", "hipaa"}, text)
		require.NoError(t, err)
		assert.Contains(t, bundle.ValidFrameworks, "pci_dss")
		assert.Contains(t, bundle.InvalidFrameworks, "hipaa")
	})
}

func TestSuggestionDeterminism(t *testing.T) {
	suggester := suggestion.NewSuggester(nil)
	text := strings.Repeat("Patient data crosses the European Union border for payment processing. ", 3)

	a, err := suggester.SuggestFrameworks(text, extraction.Options{})
	require.NoError(t, err)
	b, err := suggester.SuggestFrameworks(text, extraction.Options{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
