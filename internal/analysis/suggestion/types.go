// Package suggestion recommends compliance frameworks for a document based
// on explicit mentions, jurisdiction mappings and content heuristics, and
// validates requested frameworks against the document's subject matter.
package suggestion

import "github.com/poligap/poligap/internal/analysis/extraction"

// Suggestion is one recommended framework with the evidence behind it.
type Suggestion struct {
	Framework  string  `json:"framework"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// SuggestionBundle is the result of one suggestion run. Suggestions are
// sorted by confidence descending; ties keep discovery order.
type SuggestionBundle struct {
	DetectedFrameworks    []extraction.FrameworkMention   `json:"detected_frameworks"`
	DetectedJurisdictions []extraction.JurisdictionEntity `json:"detected_jurisdictions"`
	Suggestions           []Suggestion                    `json:"suggestions"`
}

// ValidationBundle reports which requested frameworks fit the document.
// Frameworks without a validation predicate are always valid.
type ValidationBundle struct {
	ValidFrameworks   []string            `json:"valid_frameworks"`
	InvalidFrameworks []string            `json:"invalid_frameworks"`
	MissingElements   map[string][]string `json:"missing_elements"`
	Warnings          []string            `json:"warnings"`
}
