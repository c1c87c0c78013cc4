// Package extraction pulls structured entities out of compliance document
// text: dates, jurisdictions, framework mentions, responsible roles,
// timelines, contact details and requirement sentences, each with a
// heuristic confidence score. Extraction is pure pattern matching over the
// input string; the only process state is an optional result cache.
package extraction

// DateType classifies an extracted date by surrounding context.
type DateType string

const (
	DateEffective DateType = "effective_date"
	DateDeadline  DateType = "deadline"
	DateReview    DateType = "review_date"
	DateTraining  DateType = "training_date"
	DateGeneral   DateType = "general_date"
)

// TimelineType classifies an extracted timeline expression.
type TimelineType string

const (
	TimelineImmediate    TimelineType = "immediate"
	TimelineNotification TimelineType = "notification_timeline"
	TimelineReview       TimelineType = "review_timeline"
	TimelineTraining     TimelineType = "training_timeline"
	TimelineGeneral      TimelineType = "general_timeline"
)

// RequirementType classifies a requirement sentence by its modal keywords.
type RequirementType string

const (
	RequirementMandatory    RequirementType = "mandatory"
	RequirementProhibition  RequirementType = "prohibition"
	RequirementVerification RequirementType = "verification"
	RequirementGeneral      RequirementType = "general_requirement"
)

// DocumentType is the coarse subject classification of a document.
type DocumentType string

const (
	DocTypeDataProtection    DocumentType = "data_protection"
	DocTypeSecurity          DocumentType = "security"
	DocTypeFinancial         DocumentType = "financial"
	DocTypeHealthcare        DocumentType = "healthcare"
	DocTypeGeneralCompliance DocumentType = "general_compliance"
)

// UrgencyLevel grades how time-pressed the document's language is.
type UrgencyLevel string

const (
	UrgencyHigh   UrgencyLevel = "high"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyNormal UrgencyLevel = "normal"
)

// DateEntity is one extracted date expression.
type DateEntity struct {
	Text       string   `json:"text"`
	Type       DateType `json:"type"`
	Context    string   `json:"context"`
	Confidence float64  `json:"confidence"`
	Position   int      `json:"position"`
}

// JurisdictionEntity is one matched jurisdiction reference.
type JurisdictionEntity struct {
	Jurisdiction string  `json:"jurisdiction"`
	Text         string  `json:"text"`
	Context      string  `json:"context"`
	Confidence   float64 `json:"confidence"`
	Position     int     `json:"position"`
}

// FrameworkMention is an explicit compliance framework reference.
type FrameworkMention struct {
	Framework  string  `json:"framework"`
	Text       string  `json:"text"`
	Context    string  `json:"context"`
	Confidence float64 `json:"confidence"`
	Position   int     `json:"position"`
}

// ResponsibilityEntity is a matched role or accountable party.
type ResponsibilityEntity struct {
	Role       string  `json:"role"`
	Context    string  `json:"context"`
	Confidence float64 `json:"confidence"`
	Position   int     `json:"position"`
}

// TimelineEntity is a matched deadline or recurrence expression.
type TimelineEntity struct {
	Text       string       `json:"text"`
	Type       TimelineType `json:"type"`
	Context    string       `json:"context"`
	Confidence float64      `json:"confidence"`
	Position   int          `json:"position"`
}

// EmailEntity, PhoneEntity and WebsiteEntity carry contact matches with
// their surrounding context.
type EmailEntity struct {
	Email    string `json:"email"`
	Context  string `json:"context"`
	Position int    `json:"position"`
}

type PhoneEntity struct {
	Phone    string `json:"phone"`
	Context  string `json:"context"`
	Position int    `json:"position"`
}

type WebsiteEntity struct {
	Website  string `json:"website"`
	Context  string `json:"context"`
	Position int    `json:"position"`
}

// ContactInfo groups all extracted contact details.
type ContactInfo struct {
	Emails   []EmailEntity   `json:"emails"`
	Phones   []PhoneEntity   `json:"phones"`
	Websites []WebsiteEntity `json:"websites"`
}

// RequirementEntity is a matched obligation sentence.
type RequirementEntity struct {
	Text       string          `json:"text"`
	Type       RequirementType `json:"type"`
	Context    string          `json:"context"`
	Confidence float64         `json:"confidence"`
	Position   int             `json:"position"`
}

// DocumentMetadata is the derived scalar summary of one document.
type DocumentMetadata struct {
	WordCount               int          `json:"word_count"`
	SentenceCount           int          `json:"sentence_count"`
	ParagraphCount          int          `json:"paragraph_count"`
	AverageWordsPerSentence float64      `json:"average_words_per_sentence"`
	ReadabilityScore        float64      `json:"readability_score"`
	ComplexityScore         float64      `json:"complexity_score"`
	DocumentType            DocumentType `json:"document_type"`
	UrgencyLevel            UrgencyLevel `json:"urgency_level"`
}

// EntityBundle is the full result of one extraction call. All slices are
// sorted by confidence descending (stable) and never nil.
type EntityBundle struct {
	EffectiveDates   []DateEntity           `json:"effective_dates"`
	Jurisdictions    []JurisdictionEntity   `json:"jurisdictions"`
	Frameworks       []FrameworkMention     `json:"frameworks"`
	Responsibilities []ResponsibilityEntity `json:"responsibilities"`
	Timelines        []TimelineEntity       `json:"timelines"`
	ContactInfo      ContactInfo            `json:"contact_info"`
	Requirements     []RequirementEntity    `json:"requirements"`
	Metadata         DocumentMetadata       `json:"metadata"`
}

// Options tunes one extraction call. Fields that alter output take part in
// the cache key.
type Options struct {
	// MaxEntitiesPerCategory truncates each sorted entity list; zero keeps
	// everything.
	MaxEntitiesPerCategory int `json:"max_entities_per_category,omitempty"`

	// SkipCache bypasses the result cache for this call.
	SkipCache bool `json:"-"`
}
