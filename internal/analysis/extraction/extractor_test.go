package extraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poligap/poligap/internal/analysis/extraction"
)

func extract(t *testing.T, text string) *extraction.EntityBundle {
	t.Helper()
	bundle, err := extraction.NewExtractor(nil).ExtractEntities(text, extraction.Options{})
	require.NoError(t, err)
	return bundle
}

func TestExtractDates(t *testing.T) {
	t.Run("ISO date in effective context gets top confidence", func(t *testing.T) {
		bundle := extract(t, "This policy has an effective date: 2024-01-01 for all staff.")

		require.NotEmpty(t, bundle.EffectiveDates)
		date := bundle.EffectiveDates[0]
		assert.Equal(t, "2024-01-01", date.Text)
		assert.Equal(t, extraction.DateEffective, date.Type)
		assert.InDelta(t, 0.95, date.Confidence, 1e-9)
	})

	t.Run("Same literal matched by two patterns reported once", func(t *testing.T) {
		// Matched both by the numeric YYYY-MM-DD pattern and by the
		// "effective date:" contextual capture.
		bundle := extract(t, "effective date: 2024-01-01")

		count := 0
		for _, d := range bundle.EffectiveDates {
			if d.Text == "2024-01-01" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("Slash format confidence", func(t *testing.T) {
		bundle := extract(t, "Records are retained starting 03/15/2024 in the archive.")

		require.NotEmpty(t, bundle.EffectiveDates)
		assert.Equal(t, "03/15/2024", bundle.EffectiveDates[0].Text)
		assert.InDelta(t, 0.75, bundle.EffectiveDates[0].Confidence, 1e-9)
		assert.Equal(t, extraction.DateGeneral, bundle.EffectiveDates[0].Type)
	})

	t.Run("Month name format", func(t *testing.T) {
		bundle := extract(t, "Training must be completed by January 15, 2025 at the latest.")

		var found bool
		for _, d := range bundle.EffectiveDates {
			if d.Text == "January 15, 2025" {
				found = true
				assert.Equal(t, extraction.DateTraining, d.Type)
			}
		}
		assert.True(t, found)
	})

	t.Run("Deadline context classification", func(t *testing.T) {
		bundle := extract(t, "The submission deadline is 2025-06-30 with no extensions.")
		require.NotEmpty(t, bundle.EffectiveDates)
		assert.Equal(t, extraction.DateDeadline, bundle.EffectiveDates[0].Type)
	})

	t.Run("Sorted by confidence descending", func(t *testing.T) {
		bundle := extract(t, "Filed 03/15/2024. The effective date: 2024-02-01 applies company-wide.")
		for i := 1; i < len(bundle.EffectiveDates); i++ {
			assert.GreaterOrEqual(t, bundle.EffectiveDates[i-1].Confidence, bundle.EffectiveDates[i].Confidence)
		}
	})
}

func TestExtractJurisdictions(t *testing.T) {
	t.Run("Canonical name match boosts confidence", func(t *testing.T) {
		bundle := extract(t, "This applies across the European Union without exception.")

		require.NotEmpty(t, bundle.Jurisdictions)
		top := bundle.Jurisdictions[0]
		assert.Equal(t, "european_union", top.Jurisdiction)
		assert.Equal(t, "European Union", top.Text)
		assert.InDelta(t, 0.9, top.Confidence, 1e-9)
	})

	t.Run("Known abbreviation boosts confidence", func(t *testing.T) {
		bundle := extract(t, "Transfers outside the EU require safeguards.")

		require.NotEmpty(t, bundle.Jurisdictions)
		assert.Equal(t, "european_union", bundle.Jurisdictions[0].Jurisdiction)
		assert.InDelta(t, 0.85, bundle.Jurisdictions[0].Confidence, 1e-9)
	})

	t.Run("Same text under one jurisdiction reported once", func(t *testing.T) {
		bundle := extract(t, "California law and California courts govern this agreement.")

		count := 0
		for _, j := range bundle.Jurisdictions {
			if j.Jurisdiction == "california" && j.Text == "California" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestExtractFrameworks(t *testing.T) {
	t.Run("Acronym mention gets boosted confidence", func(t *testing.T) {
		bundle := extract(t, "Our GDPR program covers all processing activities.")

		var gdpr *extraction.FrameworkMention
		for i := range bundle.Frameworks {
			if bundle.Frameworks[i].Framework == "gdpr" {
				gdpr = &bundle.Frameworks[i]
				break
			}
		}
		require.NotNil(t, gdpr)
		assert.Equal(t, "GDPR", gdpr.Text)
		// Exact-name and acronym boosts both apply, capped at 0.95.
		assert.InDelta(t, 0.95, gdpr.Confidence, 1e-9)
	})

	t.Run("Multiple frameworks detected", func(t *testing.T) {
		bundle := extract(t, "We comply with HIPAA, PCI DSS and ISO 27001 requirements.")

		ids := map[string]bool{}
		for _, f := range bundle.Frameworks {
			ids[f.Framework] = true
		}
		assert.True(t, ids["hipaa"])
		assert.True(t, ids["pci_dss"])
		assert.True(t, ids["iso_27001"])
	})
}

func TestExtractResponsibilities(t *testing.T) {
	bundle := extract(t, "The Data Protection Officer and the Compliance Team review incidents together with the CISO.")

	roles := map[string]bool{}
	for _, r := range bundle.Responsibilities {
		roles[r.Role] = true
		assert.InDelta(t, 0.8, r.Confidence, 1e-9)
	}
	assert.True(t, roles["Data Protection Officer"])
	assert.True(t, roles["Compliance Team"])
	assert.True(t, roles["CISO"])
}

func TestExtractTimelines(t *testing.T) {
	t.Run("Numeric period confidence", func(t *testing.T) {
		bundle := extract(t, "Records must be produced within 30 days of a request.")

		var found bool
		for _, tl := range bundle.Timelines {
			if tl.Text == "within 30 days" {
				found = true
				assert.InDelta(t, 0.8, tl.Confidence, 1e-9)
			}
		}
		assert.True(t, found)
	})

	t.Run("Fixed 72 hour window and notification classification", func(t *testing.T) {
		bundle := extract(t, "You must notify the authority within 72 hours of discovery.")

		var found bool
		for _, tl := range bundle.Timelines {
			if tl.Text == "72 hours" {
				found = true
				assert.Equal(t, extraction.TimelineNotification, tl.Type)
				assert.InDelta(t, 0.85, tl.Confidence, 1e-9)
			}
		}
		assert.True(t, found)
	})

	t.Run("Immediate classification", func(t *testing.T) {
		bundle := extract(t, "Access must be revoked immediately upon termination.")

		var found bool
		for _, tl := range bundle.Timelines {
			if tl.Type == extraction.TimelineImmediate {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestExtractContactInfo(t *testing.T) {
	bundle := extract(t, "Contact privacy@example.com or call 555-123-4567. Details at https://example.com/privacy page.")

	require.Len(t, bundle.ContactInfo.Emails, 1)
	assert.Equal(t, "privacy@example.com", bundle.ContactInfo.Emails[0].Email)
	require.Len(t, bundle.ContactInfo.Phones, 1)
	require.Len(t, bundle.ContactInfo.Websites, 1)
	assert.Equal(t, "https://example.com/privacy", bundle.ContactInfo.Websites[0].Website)
}

func TestExtractRequirements(t *testing.T) {
	text := `Employees must complete annual security training without fail.
Staff are prohibited from sharing credentials with anyone else.
Managers ensure that access reviews happen every quarter as planned.`
	bundle := extract(t, text)

	types := map[extraction.RequirementType]bool{}
	for _, r := range bundle.Requirements {
		types[r.Type] = true
		assert.InDelta(t, 0.75, r.Confidence, 1e-9)
	}
	assert.True(t, types[extraction.RequirementMandatory])
	assert.True(t, types[extraction.RequirementProhibition])
	assert.True(t, types[extraction.RequirementVerification])
}

func TestExtractMetadata(t *testing.T) {
	t.Run("Counts and averages", func(t *testing.T) {
		text := "One two three. Four five six.\n\nSeven eight nine ten."
		bundle := extract(t, text)

		meta := bundle.Metadata
		assert.Equal(t, 10, meta.WordCount)
		assert.Equal(t, 3, meta.SentenceCount)
		assert.Equal(t, 2, meta.ParagraphCount)
		assert.InDelta(t, 3.33, meta.AverageWordsPerSentence, 0.01)
		assert.InDelta(t, 93.33, meta.ReadabilityScore, 0.01)
	})

	t.Run("Healthcare document type", func(t *testing.T) {
		bundle := extract(t, "This medical records handling procedure covers patient charts.")
		assert.Equal(t, extraction.DocTypeHealthcare, bundle.Metadata.DocumentType)
	})

	t.Run("Data protection wins over other types", func(t *testing.T) {
		bundle := extract(t, "This privacy and security procedure covers medical data.")
		assert.Equal(t, extraction.DocTypeDataProtection, bundle.Metadata.DocumentType)
	})

	t.Run("High urgency from keywords", func(t *testing.T) {
		bundle := extract(t, "Urgent: rotate all credentials now.")
		assert.Equal(t, extraction.UrgencyHigh, bundle.Metadata.UrgencyLevel)
	})

	t.Run("Normal urgency by default", func(t *testing.T) {
		bundle := extract(t, "Routine retention schedule for archived records.")
		assert.Equal(t, extraction.UrgencyNormal, bundle.Metadata.UrgencyLevel)
	})
}

func TestExtractEntitiesEdgeCases(t *testing.T) {
	t.Run("Empty text yields empty bundle", func(t *testing.T) {
		bundle := extract(t, "")

		assert.Empty(t, bundle.EffectiveDates)
		assert.Empty(t, bundle.Jurisdictions)
		assert.Empty(t, bundle.Frameworks)
		assert.Empty(t, bundle.Responsibilities)
		assert.Empty(t, bundle.Timelines)
		assert.Empty(t, bundle.Requirements)
		assert.Empty(t, bundle.ContactInfo.Emails)
		assert.Equal(t, 0, bundle.Metadata.WordCount)
		assert.Equal(t, float64(0), bundle.Metadata.ReadabilityScore)
	})

	t.Run("Binary garbage does not panic", func(t *testing.T) {
		bundle := extract(t, string([]byte{0x00, 0xff, 0xfe, 0x01})+"\x7f\x80")
		assert.NotNil(t, bundle)
	})

	t.Run("Category cap truncates lists", func(t *testing.T) {
		text := "GDPR HIPAA SOX CCPA FERPA GLBA NIST frameworks all mentioned here."
		bundle, err := extraction.NewExtractor(nil).ExtractEntities(text, extraction.Options{MaxEntitiesPerCategory: 2})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(bundle.Frameworks), 2)
	})
}

func TestExtractionCache(t *testing.T) {
	t.Run("Hit is structurally identical to miss", func(t *testing.T) {
		extractor := extraction.NewExtractor(nil)
		text := "GDPR applies. Notify within 72 hours. Contact dpo@example.com today."

		first, err := extractor.ExtractEntities(text, extraction.Options{})
		require.NoError(t, err)
		second, err := extractor.ExtractEntities(text, extraction.Options{})
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Distinct options get distinct keys", func(t *testing.T) {
		a := extraction.CacheKey("text", extraction.Options{})
		b := extraction.CacheKey("text", extraction.Options{MaxEntitiesPerCategory: 3})
		assert.NotEqual(t, a, b)
	})

	t.Run("SkipCache bypasses storage", func(t *testing.T) {
		cache := extraction.NewMemoryCache()
		extractor := extraction.NewExtractor(cache)

		_, err := extractor.ExtractEntities("GDPR text", extraction.Options{SkipCache: true})
		require.NoError(t, err)
		assert.Equal(t, 0, cache.Len())

		_, err = extractor.ExtractEntities("GDPR text", extraction.Options{})
		require.NoError(t, err)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("SkipCache does not change the key", func(t *testing.T) {
		a := extraction.CacheKey("text", extraction.Options{})
		b := extraction.CacheKey("text", extraction.Options{SkipCache: true})
		assert.Equal(t, a, b)
	})
}
