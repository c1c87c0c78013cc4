package extraction

import (
	"math"
	"sort"
	"strings"
)

// Context window sizes, in characters around the match start, per category.
const (
	dateContextWindow        = 100
	jurisdictionContextWin   = 150
	frameworkContextWindow   = 150
	roleContextWindow        = 120
	timelineContextWindow    = 120
	contactContextWindow     = 80
	requirementContextWindow = 200
)

// Extractor runs the category extractors over document text. It is safe for
// concurrent use; all mutable state lives in the injected cache.
type Extractor struct {
	cache ResultCache
}

// NewExtractor builds an extractor. A nil cache gets an in-process
// MemoryCache.
func NewExtractor(cache ResultCache) *Extractor {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Extractor{cache: cache}
}

// ExtractEntities extracts every entity category from the text. It never
// fails on arbitrary input, including empty strings; degenerate input just
// produces empty lists. The error return is reserved for infrastructure
// faults in injected dependencies.
func (e *Extractor) ExtractEntities(text string, opts Options) (*EntityBundle, error) {
	key := CacheKey(text, opts)
	if !opts.SkipCache {
		if cached, ok := e.cache.Get(key); ok {
			return cached, nil
		}
	}

	bundle := &EntityBundle{
		EffectiveDates:   e.extractDates(text),
		Jurisdictions:    e.extractJurisdictions(text),
		Frameworks:       e.extractFrameworks(text),
		Responsibilities: e.extractResponsibilities(text),
		Timelines:        e.extractTimelines(text),
		ContactInfo:      e.extractContactInfo(text),
		Requirements:     e.extractRequirements(text),
		Metadata:         e.extractMetadata(text),
	}
	truncateBundle(bundle, opts.MaxEntitiesPerCategory)

	if !opts.SkipCache {
		e.cache.Put(key, bundle)
	}
	return bundle, nil
}

// extractDates collects date expressions from all date patterns. The first
// pattern to match a given literal wins; later duplicates of the same
// lower-cased text are dropped.
func (e *Extractor) extractDates(text string) []DateEntity {
	dates := []DateEntity{}
	seen := map[string]bool{}

	for _, dp := range datePatterns {
		for _, m := range dp.re.FindAllStringSubmatchIndex(text, -1) {
			start, end := m[0], m[1]
			if dp.group > 0 && m[2*dp.group] >= 0 {
				start, end = m[2*dp.group], m[2*dp.group+1]
			}
			clean := strings.TrimSpace(text[start:end])
			lowered := strings.ToLower(clean)
			if clean == "" || seen[lowered] {
				continue
			}
			seen[lowered] = true

			context := contextAt(text, m[0], dateContextWindow)
			dates = append(dates, DateEntity{
				Text:       clean,
				Type:       classifyDateType(context),
				Context:    context,
				Confidence: dateConfidence(clean, context),
				Position:   m[0],
			})
		}
	}

	sortByConfidence(dates, func(d DateEntity) float64 { return d.Confidence })
	return dates
}

func (e *Extractor) extractJurisdictions(text string) []JurisdictionEntity {
	jurisdictions := []JurisdictionEntity{}
	seen := map[string]bool{}

	for _, entry := range jurisdictionPatterns {
		for _, re := range entry.patterns {
			for _, m := range re.FindAllStringIndex(text, -1) {
				matchText := text[m[0]:m[1]]
				key := entry.id + ":" + strings.ToLower(matchText)
				if seen[key] {
					continue
				}
				seen[key] = true

				jurisdictions = append(jurisdictions, JurisdictionEntity{
					Jurisdiction: entry.id,
					Text:         matchText,
					Context:      contextAt(text, m[0], jurisdictionContextWin),
					Confidence:   jurisdictionConfidence(matchText, entry.id),
					Position:     m[0],
				})
			}
		}
	}

	sortByConfidence(jurisdictions, func(j JurisdictionEntity) float64 { return j.Confidence })
	return jurisdictions
}

func (e *Extractor) extractFrameworks(text string) []FrameworkMention {
	frameworks := []FrameworkMention{}
	seen := map[string]bool{}

	for _, entry := range frameworkPatterns {
		for _, re := range entry.patterns {
			for _, m := range re.FindAllStringIndex(text, -1) {
				matchText := text[m[0]:m[1]]
				key := entry.id + ":" + strings.ToLower(matchText)
				if seen[key] {
					continue
				}
				seen[key] = true

				frameworks = append(frameworks, FrameworkMention{
					Framework:  entry.id,
					Text:       matchText,
					Context:    contextAt(text, m[0], frameworkContextWindow),
					Confidence: frameworkConfidence(matchText, entry.id),
					Position:   m[0],
				})
			}
		}
	}

	sortByConfidence(frameworks, func(f FrameworkMention) float64 { return f.Confidence })
	return frameworks
}

func (e *Extractor) extractResponsibilities(text string) []ResponsibilityEntity {
	responsibilities := []ResponsibilityEntity{}
	seen := map[string]bool{}

	for _, re := range responsibilityPatterns {
		for _, m := range re.FindAllStringIndex(text, -1) {
			matchText := text[m[0]:m[1]]
			lowered := strings.ToLower(matchText)
			if seen[lowered] {
				continue
			}
			seen[lowered] = true

			responsibilities = append(responsibilities, ResponsibilityEntity{
				Role:       matchText,
				Context:    contextAt(text, m[0], roleContextWindow),
				Confidence: 0.8,
				Position:   m[0],
			})
		}
	}

	sortByConfidence(responsibilities, func(r ResponsibilityEntity) float64 { return r.Confidence })
	return responsibilities
}

func (e *Extractor) extractTimelines(text string) []TimelineEntity {
	timelines := []TimelineEntity{}
	seen := map[string]bool{}

	for _, re := range timelinePatterns {
		for _, m := range re.FindAllStringIndex(text, -1) {
			matchText := text[m[0]:m[1]]
			lowered := strings.ToLower(matchText)
			if seen[lowered] {
				continue
			}
			seen[lowered] = true

			context := contextAt(text, m[0], timelineContextWindow)
			timelines = append(timelines, TimelineEntity{
				Text:       matchText,
				Type:       classifyTimelineType(matchText, context),
				Context:    context,
				Confidence: timelineConfidence(matchText),
				Position:   m[0],
			})
		}
	}

	sortByConfidence(timelines, func(t TimelineEntity) float64 { return t.Confidence })
	return timelines
}

func (e *Extractor) extractContactInfo(text string) ContactInfo {
	info := ContactInfo{Emails: []EmailEntity{}, Phones: []PhoneEntity{}, Websites: []WebsiteEntity{}}

	for _, m := range emailPattern.FindAllStringIndex(text, -1) {
		info.Emails = append(info.Emails, EmailEntity{
			Email:    text[m[0]:m[1]],
			Context:  contextAt(text, m[0], contactContextWindow),
			Position: m[0],
		})
	}
	for _, m := range phonePattern.FindAllStringIndex(text, -1) {
		info.Phones = append(info.Phones, PhoneEntity{
			Phone:    text[m[0]:m[1]],
			Context:  contextAt(text, m[0], contactContextWindow),
			Position: m[0],
		})
	}
	for _, m := range websitePattern.FindAllStringIndex(text, -1) {
		info.Websites = append(info.Websites, WebsiteEntity{
			Website:  text[m[0]:m[1]],
			Context:  contextAt(text, m[0], contactContextWindow),
			Position: m[0],
		})
	}
	return info
}

func (e *Extractor) extractRequirements(text string) []RequirementEntity {
	requirements := []RequirementEntity{}
	seen := map[string]bool{}

	for _, re := range requirementPatterns {
		for _, m := range re.FindAllStringIndex(text, -1) {
			matchText := text[m[0]:m[1]]
			lowered := strings.ToLower(matchText)
			if seen[lowered] {
				continue
			}
			seen[lowered] = true

			requirements = append(requirements, RequirementEntity{
				Text:       matchText,
				Type:       classifyRequirementType(matchText),
				Context:    contextAt(text, m[0], requirementContextWindow),
				Confidence: 0.75,
				Position:   m[0],
			})
		}
	}
	return requirements
}

func (e *Extractor) extractMetadata(text string) DocumentMetadata {
	words := strings.Fields(text)
	sentences := nonBlank(sentenceSplit.Split(text, -1))
	paragraphs := nonBlank(paragraphSplit.Split(text, -1))

	meta := DocumentMetadata{
		WordCount:      len(words),
		SentenceCount:  len(sentences),
		ParagraphCount: len(paragraphs),
		DocumentType:   classifyDocumentType(text),
		UrgencyLevel:   assessUrgency(text),
	}
	if len(sentences) > 0 {
		meta.AverageWordsPerSentence = round2(float64(len(words)) / float64(len(sentences)))
	}
	meta.ReadabilityScore = readabilityScore(len(words), len(sentences))
	meta.ComplexityScore = complexityScore(words)
	return meta
}

// Classification helpers. Each looks for fixed keywords in the match or its
// context window.

func classifyDateType(context string) DateType {
	lowered := strings.ToLower(context)
	switch {
	case strings.Contains(lowered, "effective") || strings.Contains(lowered, "implementation"):
		return DateEffective
	case strings.Contains(lowered, "deadline") || strings.Contains(lowered, "due") || strings.Contains(lowered, "expire"):
		return DateDeadline
	case strings.Contains(lowered, "review") || strings.Contains(lowered, "audit"):
		return DateReview
	case strings.Contains(lowered, "training") || strings.Contains(lowered, "certification"):
		return DateTraining
	}
	return DateGeneral
}

func classifyTimelineType(matchText, context string) TimelineType {
	text := strings.ToLower(matchText)
	ctx := strings.ToLower(context)
	switch {
	case strings.Contains(text, "immediate") || strings.Contains(text, "prompt"):
		return TimelineImmediate
	case strings.Contains(ctx, "report") || strings.Contains(ctx, "notify"):
		return TimelineNotification
	case strings.Contains(ctx, "review") || strings.Contains(ctx, "audit"):
		return TimelineReview
	case strings.Contains(ctx, "training") || strings.Contains(ctx, "education"):
		return TimelineTraining
	}
	return TimelineGeneral
}

func classifyRequirementType(matchText string) RequirementType {
	lowered := strings.ToLower(matchText)
	switch {
	case strings.Contains(lowered, "must") || strings.Contains(lowered, "shall"):
		return RequirementMandatory
	case strings.Contains(lowered, "prohibited") || strings.Contains(lowered, "forbidden"):
		return RequirementProhibition
	case strings.Contains(lowered, "ensure") || strings.Contains(lowered, "verify"):
		return RequirementVerification
	}
	return RequirementGeneral
}

func classifyDocumentType(text string) DocumentType {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "data protection") || strings.Contains(lowered, "privacy") || strings.Contains(lowered, "gdpr"):
		return DocTypeDataProtection
	case strings.Contains(lowered, "security") || strings.Contains(lowered, "cybersecurity"):
		return DocTypeSecurity
	case strings.Contains(lowered, "financial") || strings.Contains(lowered, "sox") || strings.Contains(lowered, "accounting"):
		return DocTypeFinancial
	case strings.Contains(lowered, "health") || strings.Contains(lowered, "hipaa") || strings.Contains(lowered, "medical"):
		return DocTypeHealthcare
	}
	return DocTypeGeneralCompliance
}

func assessUrgency(text string) UrgencyLevel {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "immediate") || strings.Contains(lowered, "urgent") || strings.Contains(lowered, "critical"):
		return UrgencyHigh
	case strings.Contains(lowered, "soon") || strings.Contains(lowered, "prompt") || strings.Contains(lowered, "timely"):
		return UrgencyMedium
	}
	return UrgencyNormal
}

// Confidence heuristics.

func dateConfidence(dateText, context string) float64 {
	confidence := 0.6
	if isoDatePattern.MatchString(dateText) {
		confidence += 0.2
	}
	if slashDatePattern.MatchString(dateText) {
		confidence += 0.15
	}
	lowered := strings.ToLower(context)
	if strings.Contains(lowered, "effective") {
		confidence += 0.15
	}
	if strings.Contains(lowered, "implementation") {
		confidence += 0.1
	}
	return math.Min(0.95, confidence)
}

func jurisdictionConfidence(matchText, jurisdiction string) float64 {
	confidence := 0.7
	lowered := strings.ToLower(matchText)
	if lowered == strings.ReplaceAll(jurisdiction, "_", " ") {
		confidence += 0.2
	}
	if (jurisdiction == "european_union" && lowered == "eu") ||
		(jurisdiction == "united_states" && lowered == "us") {
		confidence += 0.15
	}
	return math.Min(0.95, confidence)
}

func frameworkConfidence(matchText, framework string) float64 {
	confidence := 0.8
	if strings.ToLower(matchText) == strings.ReplaceAll(framework, "_", " ") {
		confidence += 0.15
	}
	// All-caps acronym, e.g. "GDPR" for the gdpr table entry.
	if matchText == strings.ToUpper(framework) {
		confidence += 0.1
	}
	return math.Min(0.95, confidence)
}

func timelineConfidence(matchText string) float64 {
	confidence := 0.6
	if numericPeriodCheck.MatchString(matchText) {
		confidence += 0.2
	}
	lowered := strings.ToLower(matchText)
	if strings.Contains(lowered, "72 hours") || strings.Contains(lowered, "24 hours") {
		confidence += 0.25
	}
	return math.Min(0.9, confidence)
}

func readabilityScore(wordCount, sentenceCount int) float64 {
	if sentenceCount == 0 {
		return 0
	}
	avg := float64(wordCount) / float64(sentenceCount)
	return round2(math.Max(0, math.Min(100, 100-avg*2)))
}

func complexityScore(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	complex := 0
	for _, w := range words {
		if len(w) > 6 && alphaWordPattern.MatchString(w) {
			complex++
		}
	}
	return round2(float64(complex) / float64(len(words)) * 100)
}

// contextAt returns the trimmed window of text around a match position.
func contextAt(text string, position, window int) string {
	start := position - window
	if start < 0 {
		start = 0
	}
	end := position + window
	if end > len(text) {
		end = len(text)
	}
	return strings.TrimSpace(text[start:end])
}

func nonBlank(parts []string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sortByConfidence orders entities by descending confidence; the sort is
// stable so equal-confidence entities keep extraction order.
func sortByConfidence[T any](items []T, confidence func(T) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return confidence(items[i]) > confidence(items[j])
	})
}

func truncateBundle(b *EntityBundle, limit int) {
	if limit <= 0 {
		return
	}
	if len(b.EffectiveDates) > limit {
		b.EffectiveDates = b.EffectiveDates[:limit]
	}
	if len(b.Jurisdictions) > limit {
		b.Jurisdictions = b.Jurisdictions[:limit]
	}
	if len(b.Frameworks) > limit {
		b.Frameworks = b.Frameworks[:limit]
	}
	if len(b.Responsibilities) > limit {
		b.Responsibilities = b.Responsibilities[:limit]
	}
	if len(b.Timelines) > limit {
		b.Timelines = b.Timelines[:limit]
	}
	if len(b.Requirements) > limit {
		b.Requirements = b.Requirements[:limit]
	}
}
