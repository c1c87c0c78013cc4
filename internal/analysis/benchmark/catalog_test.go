package benchmark_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poligap/poligap/internal/analysis/benchmark"
	apperrors "github.com/poligap/poligap/pkg/errors"
)

// TestBuiltinRuleSets verifies the catalogue invariants for every shipped
// framework.
func TestBuiltinRuleSets(t *testing.T) {
	sets := benchmark.BuiltinRuleSets()
	require.Len(t, sets, 12)

	t.Run("Weights sum to 100 per framework", func(t *testing.T) {
		for _, fs := range sets {
			sum := 0
			for _, rule := range fs.Rules {
				sum += rule.Weight
			}
			assert.Equal(t, benchmark.WeightTotal, sum, "framework %s", fs.ID)
		}
	})

	t.Run("Every rule has triggers and guidance", func(t *testing.T) {
		for _, fs := range sets {
			for _, rule := range fs.Rules {
				assert.NotEmpty(t, rule.ID, "framework %s", fs.ID)
				assert.NotEmpty(t, rule.Keywords, "rule %s", rule.ID)
				assert.NotEmpty(t, rule.Remediation, "rule %s", rule.ID)
				assert.NotEmpty(t, rule.Requirement, "rule %s", rule.ID)
			}
		}
	})

	t.Run("Builtin sets build a catalogue", func(t *testing.T) {
		c, err := benchmark.NewCatalog(sets)
		require.NoError(t, err)
		assert.Equal(t, 12, c.Len())
	})

	t.Run("Expected frameworks present", func(t *testing.T) {
		c, err := benchmark.NewCatalog(sets)
		require.NoError(t, err)
		for _, id := range []string{"GDPR", "HIPAA", "SOX", "CCPA", "PCI_DSS", "ISO_27001", "FERPA", "GLBA", "COPPA", "NIST_CSF", "CAN_SPAM", "FISMA"} {
			_, ok := c.Get(id)
			assert.True(t, ok, "missing framework %s", id)
		}
	})
}

// TestNewCatalogValidation tests that a broken catalogue fails fast at
// construction time.
func TestNewCatalogValidation(t *testing.T) {
	valid := func() *benchmark.FrameworkRuleSet {
		return &benchmark.FrameworkRuleSet{
			ID:       "TEST",
			FullName: "Test Framework",
			Rules: []benchmark.ComplianceRule{
				{ID: "test_a", Requirement: "A", Keywords: []string{"alpha"}, Weight: 60},
				{ID: "test_b", Requirement: "B", Keywords: []string{"beta"}, Weight: 40},
			},
		}
	}

	t.Run("Valid set builds", func(t *testing.T) {
		c, err := benchmark.NewCatalog([]*benchmark.FrameworkRuleSet{valid()})
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("Wrong weight sum rejected", func(t *testing.T) {
		fs := valid()
		fs.Rules[0].Weight = 50
		_, err := benchmark.NewCatalog([]*benchmark.FrameworkRuleSet{fs})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCatalogWeightSum.Code, apperrors.GetCode(err))
	})

	t.Run("Rule without triggers rejected", func(t *testing.T) {
		fs := valid()
		fs.Rules[1].Keywords = nil
		_, err := benchmark.NewCatalog([]*benchmark.FrameworkRuleSet{fs})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCatalogMalformed.Code, apperrors.GetCode(err))
	})

	t.Run("Duplicate rule id rejected", func(t *testing.T) {
		fs := valid()
		fs.Rules[1].ID = fs.Rules[0].ID
		_, err := benchmark.NewCatalog([]*benchmark.FrameworkRuleSet{fs})
		require.Error(t, err)
	})

	t.Run("Duplicate framework id rejected", func(t *testing.T) {
		_, err := benchmark.NewCatalog([]*benchmark.FrameworkRuleSet{valid(), valid()})
		require.Error(t, err)
	})

	t.Run("Invalid regex pattern rejected", func(t *testing.T) {
		fs := valid()
		fs.Rules[0].Patterns = []string{"[unclosed"}
		_, err := benchmark.NewCatalog([]*benchmark.FrameworkRuleSet{fs})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCatalogMalformed.Code, apperrors.GetCode(err))
	})

	t.Run("Non-positive weight rejected", func(t *testing.T) {
		fs := valid()
		fs.Rules[0].Weight = 0
		fs.Rules[1].Weight = 100
		_, err := benchmark.NewCatalog([]*benchmark.FrameworkRuleSet{fs})
		require.Error(t, err)
	})
}

func TestNormalizeFrameworkID(t *testing.T) {
	cases := map[string]string{
		"gdpr":      "GDPR",
		" GDPR ":    "GDPR",
		"pci dss":   "PCI_DSS",
		"PCI-DSS":   "PCI_DSS",
		"pci_dss":   "PCI_DSS",
		"iso 27001": "ISO_27001",
	}
	for in, want := range cases {
		assert.Equal(t, want, benchmark.NormalizeFrameworkID(in), "input %q", in)
	}
}

// TestCatalogOverrides tests merging a YAML override file over the builtin
// sets.
func TestCatalogOverrides(t *testing.T) {
	t.Run("Empty path yields builtin catalogue", func(t *testing.T) {
		c, err := benchmark.NewCatalogWithOverrides("")
		require.NoError(t, err)
		assert.Equal(t, 12, c.Len())
	})

	t.Run("Override replaces a builtin framework", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "catalog.yaml")
		data := `frameworks:
  - id: GDPR
    full_name: General Data Protection Regulation (override)
    rules:
      - id: gdpr_only
        requirement: Single override rule
        category: override
        keywords: ["lawful basis"]
        weight: 100
        remediation: Do the thing
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		c, err := benchmark.NewCatalogWithOverrides(path)
		require.NoError(t, err)
		assert.Equal(t, 12, c.Len())

		fs, ok := c.Get("GDPR")
		require.True(t, ok)
		assert.Len(t, fs.Rules, 1)
		assert.Contains(t, fs.FullName, "override")
	})

	t.Run("Missing file reported as configuration error", func(t *testing.T) {
		_, err := benchmark.NewCatalogWithOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCatalogFileUnreadable.Code, apperrors.GetCode(err))
	})
}

func TestBenchmarkOverrides(t *testing.T) {
	t.Run("File rows feed the engine table", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "benchmarks.yaml")
		data := `industries:
  - industry: Space Mining
    average: 42
    bottom_25: 30
  - industry: Technology
    average: 90
    bottom_25: 80
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		rows, err := benchmark.LoadBenchmarkFile(path)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		catalog, err := benchmark.NewCatalogWithOverrides("")
		require.NoError(t, err)
		engine := benchmark.NewEngine(catalog, benchmark.WithIndustryBenchmarks(rows))

		result := engine.PerformComprehensiveBenchmarking("", []string{"GDPR"}, "Space Mining")
		assert.Equal(t, 42.0, result.IndustryBenchmark.Average)
		for _, w := range result.Warnings {
			assert.NotEqual(t, benchmark.WarnUnknownIndustry, w.Code)
		}

		overlaid := engine.PerformComprehensiveBenchmarking("", []string{"GDPR"}, "Technology")
		assert.Equal(t, 90.0, overlaid.IndustryBenchmark.Average)
	})

	t.Run("Builtin rows still apply outside the overlay", func(t *testing.T) {
		catalog, err := benchmark.NewCatalogWithOverrides("")
		require.NoError(t, err)
		engine := benchmark.NewEngine(catalog, benchmark.WithIndustryBenchmarks(
			[]benchmark.IndustryBenchmark{{Industry: "Space Mining", Average: 42, Bottom25: 30}}))

		result := engine.PerformComprehensiveBenchmarking("", []string{"GDPR"}, "Healthcare")
		assert.Equal(t, 78.0, result.IndustryBenchmark.Average)
	})

	t.Run("Missing file reported as configuration error", func(t *testing.T) {
		_, err := benchmark.LoadBenchmarkFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCatalogFileUnreadable.Code, apperrors.GetCode(err))
	})

	t.Run("Row without industry label rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "benchmarks.yaml")
		require.NoError(t, os.WriteFile(path, []byte("industries:\n  - average: 50\n"), 0o600))

		_, err := benchmark.LoadBenchmarkFile(path)
		require.Error(t, err)
	})
}
