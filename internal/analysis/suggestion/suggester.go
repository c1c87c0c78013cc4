package suggestion

import (
	"fmt"
	"sort"
	"strings"

	"github.com/poligap/poligap/internal/analysis/extraction"
)

// Suggester derives framework recommendations from extracted entities. It is
// stateless beyond the shared extractor and safe for concurrent use.
type Suggester struct {
	extractor *extraction.Extractor
}

// NewSuggester builds a suggester over the given extractor. A nil extractor
// gets a fresh one with an in-process cache.
func NewSuggester(extractor *extraction.Extractor) *Suggester {
	if extractor == nil {
		extractor = extraction.NewExtractor(nil)
	}
	return &Suggester{extractor: extractor}
}

// SuggestFrameworks recommends compliance frameworks for the document. Three
// additive sources contribute, in order: explicit framework mentions,
// jurisdiction mappings, then content heuristics. A framework reached from
// several sources keeps its highest confidence and its first reasoning
// string.
func (s *Suggester) SuggestFrameworks(text string, opts extraction.Options) (*SuggestionBundle, error) {
	entities, err := s.extractor.ExtractEntities(text, opts)
	if err != nil {
		return nil, err
	}

	bundle := &SuggestionBundle{
		DetectedFrameworks:    entities.Frameworks,
		DetectedJurisdictions: entities.Jurisdictions,
		Suggestions:           []Suggestion{},
	}

	index := map[string]int{}
	add := func(framework string, confidence float64, reasoning string) {
		if i, ok := index[framework]; ok {
			if confidence > bundle.Suggestions[i].Confidence {
				bundle.Suggestions[i].Confidence = confidence
			}
			return
		}
		index[framework] = len(bundle.Suggestions)
		bundle.Suggestions = append(bundle.Suggestions, Suggestion{
			Framework:  framework,
			Confidence: confidence,
			Reasoning:  reasoning,
		})
	}

	for _, mention := range entities.Frameworks {
		add(mention.Framework, mention.Confidence, fmt.Sprintf("Detected explicit mention: %q", mention.Text))
	}

	for _, jurisdiction := range entities.Jurisdictions {
		for _, framework := range jurisdictionFrameworks[jurisdiction.Jurisdiction] {
			add(framework, jurisdiction.Confidence*0.8,
				fmt.Sprintf("Jurisdiction %q suggests %s", jurisdiction.Text, framework))
		}
	}

	lowered := strings.ToLower(text)
	for _, heuristic := range contentHeuristics {
		if heuristic.applies(lowered) {
			add(heuristic.framework, heuristic.confidence, heuristic.reason)
		}
	}

	sort.SliceStable(bundle.Suggestions, func(i, j int) bool {
		return bundle.Suggestions[i].Confidence > bundle.Suggestions[j].Confidence
	})

	return bundle, nil
}

// ValidateFrameworks checks each requested framework against its validation
// predicate. Unknown frameworks are permissively valid; ids are matched
// case-insensitively.
func (s *Suggester) ValidateFrameworks(frameworkIDs []string, text string) (*ValidationBundle, error) {
	entities, err := s.extractor.ExtractEntities(text, extraction.Options{})
	if err != nil {
		return nil, err
	}

	hasEU := false
	for _, j := range entities.Jurisdictions {
		if j.Jurisdiction == "european_union" {
			hasEU = true
			break
		}
	}

	bundle := &ValidationBundle{
		ValidFrameworks:   []string{},
		InvalidFrameworks: []string{},
		MissingElements:   map[string][]string{},
		Warnings:          []string{},
	}

	lowered := strings.ToLower(text)
	for _, raw := range frameworkIDs {
		id := strings.ToLower(strings.TrimSpace(raw))
		outcome := validateFramework(id, lowered, hasEU)
		bundle.Warnings = append(bundle.Warnings, outcome.warnings...)
		if outcome.valid {
			bundle.ValidFrameworks = append(bundle.ValidFrameworks, id)
			continue
		}
		bundle.InvalidFrameworks = append(bundle.InvalidFrameworks, id)
		bundle.MissingElements[id] = outcome.missingElements
	}

	return bundle, nil
}
