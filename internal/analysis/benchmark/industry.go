package benchmark

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/poligap/poligap/pkg/errors"
)

// defaultIndustryBenchmark is used when the requested industry has no row in
// the table; callers get a warning alongside it.
var defaultIndustryBenchmark = IndustryBenchmark{Industry: "General", Average: 75, Bottom25: 60}

// industryBenchmarks holds the static industry reference scores. Rows are
// keyed by the industry label as supplied by clients.
var industryBenchmarks = map[string]IndustryBenchmark{
	"Technology":         {Industry: "Technology", Average: 72, Bottom25: 58},
	"Healthcare":         {Industry: "Healthcare", Average: 78, Bottom25: 62},
	"Financial Services": {Industry: "Financial Services", Average: 80, Bottom25: 65},
	"Retail":             {Industry: "Retail", Average: 68, Bottom25: 52},
	"Education":          {Industry: "Education", Average: 65, Bottom25: 50},
	"Government":         {Industry: "Government", Average: 74, Bottom25: 60},
	"Manufacturing":      {Industry: "Manufacturing", Average: 66, Bottom25: 51},
	"Energy":             {Industry: "Energy", Average: 70, Bottom25: 55},
	"Insurance":          {Industry: "Insurance", Average: 76, Bottom25: 61},
	"Telecommunications": {Industry: "Telecommunications", Average: 71, Bottom25: 56},
}

// BenchmarkForIndustry returns the reference row for an industry label. The
// second return reports whether the industry was found; unknown industries
// get the general default row.
func BenchmarkForIndustry(industry string) (IndustryBenchmark, bool) {
	if b, ok := industryBenchmarks[industry]; ok {
		return b, true
	}
	return defaultIndustryBenchmark, false
}

// KnownIndustries returns the industries with dedicated benchmark rows.
func KnownIndustries() []string {
	out := make([]string, 0, len(industryBenchmarks))
	for k := range industryBenchmarks {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// benchmarkFile is the YAML shape of a benchmark override file.
type benchmarkFile struct {
	Industries []IndustryBenchmark `yaml:"industries"`
}

// LoadBenchmarkFile reads industry benchmark rows from a YAML file. Rows
// replace built-in rows for the industries they name and add any new ones,
// the same override contract the rule catalogue follows.
func LoadBenchmarkFile(path string) ([]IndustryBenchmark, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapConfigurationError(err, errors.ErrCatalogFileUnreadable.Code,
			fmt.Sprintf("cannot read benchmark file %s", path))
	}

	var file benchmarkFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapConfigurationError(err, errors.ErrCatalogFileUnreadable.Code,
			fmt.Sprintf("cannot parse benchmark file %s", path))
	}
	if len(file.Industries) == 0 {
		return nil, errors.NewFromCodef(errors.ErrCatalogFileUnreadable, "benchmark file %s defines no industries", path)
	}
	for _, row := range file.Industries {
		if row.Industry == "" {
			return nil, errors.NewFromCodef(errors.ErrCatalogFileUnreadable, "benchmark file %s has a row without an industry label", path)
		}
	}
	return file.Industries, nil
}
