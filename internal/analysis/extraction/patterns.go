package extraction

import "regexp"

// datePattern pairs a compiled expression with the capture group that holds
// the date text; group 0 uses the whole match.
type datePattern struct {
	re    *regexp.Regexp
	group int
}

var datePatterns = []datePattern{
	// Numeric formats: MM/DD/YYYY, DD.MM.YYYY, YYYY-MM-DD
	{re: regexp.MustCompile(`\b(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4})\b`), group: 1},
	{re: regexp.MustCompile(`\b(\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2})\b`), group: 1},

	// Month-name formats: January 1, 2024 or 1st January 2024
	{re: regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`)},
	{re: regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\b`)},

	// Contextual phrases: "effective date: ..." and "by March 1, 2024"
	{re: regexp.MustCompile(`(?i)\b(?:effective|implementation|compliance)\s+date:\s*([^.\n]{1,50})\b`), group: 1},
	{re: regexp.MustCompile(`(?i)\b(?:by|before|after|on|from)\s+([A-Za-z]+\s+\d{1,2},?\s+\d{4})\b`), group: 1},

	// Relative periods: "within 30 days"
	{re: regexp.MustCompile(`(?i)\b(?:within|in)\s+\d+\s+(?:days?|weeks?|months?|years?)\b`)},
}

// jurisdictionEntry keeps the pattern table ordered so extraction output is
// deterministic.
type jurisdictionEntry struct {
	id       string
	patterns []*regexp.Regexp
}

var jurisdictionPatterns = []jurisdictionEntry{
	{id: "european_union", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:european\s+union|eu|gdpr|eea|european\s+economic\s+area)\b`),
		regexp.MustCompile(`(?i)\b(?:regulation\s+\(eu\)\s+2016/679)\b`),
	}},
	{id: "united_states", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:united\s+states|usa|us|america|federal)\b`),
		regexp.MustCompile(`(?i)\b(?:hipaa|sox|sarbanes[-\s]?oxley|cfr)\b`),
	}},
	{id: "california", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:california|ca|ccpa|cpra|calif\.?)\b`),
		regexp.MustCompile(`(?i)\b(?:california\s+consumer\s+privacy\s+act)\b`),
	}},
	{id: "new_york", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:new\s+york|ny|nydfs|nycrr)\b`),
		regexp.MustCompile(`(?i)\b(?:new\s+york\s+state)\b`),
	}},
	{id: "united_kingdom", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:united\s+kingdom|uk|britain|british|ico)\b`),
		regexp.MustCompile(`(?i)\b(?:data\s+protection\s+act|dpa)\b`),
	}},
	{id: "canada", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:canada|canadian|pipeda|provincial)\b`),
		regexp.MustCompile(`(?i)\b(?:personal\s+information\s+protection)\b`),
	}},
	{id: "australia", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:australia|australian|privacy\s+act|oaic)\b`),
	}},
	{id: "singapore", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:singapore|singaporean|pdpa)\b`),
		regexp.MustCompile(`(?i)\b(?:personal\s+data\s+protection\s+act)\b`),
	}},
	{id: "international", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:international|global|worldwide|cross[-\s]?border)\b`),
		regexp.MustCompile(`(?i)\b(?:iso\s+\d+|international\s+organization)\b`),
	}},
}

type frameworkEntry struct {
	id       string
	patterns []*regexp.Regexp
}

var frameworkPatterns = []frameworkEntry{
	{id: "gdpr", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:gdpr|general\s+data\s+protection\s+regulation)\b`),
		regexp.MustCompile(`(?i)\b(?:regulation\s+\(eu\)\s+2016/679)\b`),
		regexp.MustCompile(`(?i)\b(?:data\s+protection\s+directive)\b`),
	}},
	{id: "hipaa", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:hipaa|health\s+insurance\s+portability)\b`),
		regexp.MustCompile(`(?i)\b(?:accountability\s+act|covered\s+entities)\b`),
		regexp.MustCompile(`(?i)\b(?:protected\s+health\s+information|phi)\b`),
	}},
	{id: "sox", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:sox|sarbanes[-\s]?oxley)\b`),
		regexp.MustCompile(`(?i)\b(?:public\s+company\s+accounting\s+reform)\b`),
		regexp.MustCompile(`(?i)\b(?:section\s+404|internal\s+controls)\b`),
	}},
	{id: "pci_dss", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:pci\s+dss|payment\s+card\s+industry)\b`),
		regexp.MustCompile(`(?i)\b(?:data\s+security\s+standard|cardholder\s+data)\b`),
	}},
	{id: "iso_27001", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:iso\s+27001|iso/iec\s+27001)\b`),
		regexp.MustCompile(`(?i)\b(?:information\s+security\s+management\s+system|isms)\b`),
	}},
	{id: "nist", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:nist|national\s+institute\s+of\s+standards)\b`),
		regexp.MustCompile(`(?i)\b(?:cybersecurity\s+framework|csf)\b`),
		regexp.MustCompile(`(?i)\b(?:sp\s+800[-\s]?\d+)\b`),
	}},
	{id: "ccpa", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:ccpa|california\s+consumer\s+privacy\s+act)\b`),
		regexp.MustCompile(`(?i)\b(?:cpra|california\s+privacy\s+rights\s+act)\b`),
	}},
	{id: "coppa", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:coppa|children['’]?s\s+online\s+privacy)\b`),
		regexp.MustCompile(`(?i)\b(?:protection\s+act|under\s+13)\b`),
	}},
	{id: "ferpa", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:ferpa|family\s+educational\s+rights)\b`),
		regexp.MustCompile(`(?i)\b(?:privacy\s+act|educational\s+records)\b`),
	}},
	{id: "glba", patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:glba|gramm[-\s]?leach[-\s]?bliley)\b`),
		regexp.MustCompile(`(?i)\b(?:financial\s+services\s+modernization)\b`),
	}},
}

var responsibilityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:data\s+protection\s+officer|dpo)\b`),
	regexp.MustCompile(`(?i)\b(?:chief\s+information\s+security\s+officer|ciso)\b`),
	regexp.MustCompile(`(?i)\b(?:chief\s+privacy\s+officer|cpo)\b`),
	regexp.MustCompile(`(?i)\b(?:compliance\s+officer|compliance\s+team)\b`),
	regexp.MustCompile(`(?i)\b(?:data\s+controller|controller)\b`),
	regexp.MustCompile(`(?i)\b(?:data\s+processor|processor)\b`),
	regexp.MustCompile(`(?i)\b(?:information\s+security\s+team|security\s+team)\b`),
	regexp.MustCompile(`(?i)\b(?:legal\s+department|legal\s+team)\b`),
	regexp.MustCompile(`(?i)\b(?:hr\s+department|human\s+resources)\b`),
	regexp.MustCompile(`(?i)\b(?:it\s+department|information\s+technology)\b`),
}

var timelinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:within|in)\s+\d+\s+(?:days?|weeks?|months?|years?)\b`),
	regexp.MustCompile(`(?i)\b(?:no\s+later\s+than|by|before)\s+[^.\n]{1,50}\b`),
	regexp.MustCompile(`(?i)\b(?:immediately|promptly|without\s+delay|forthwith)\b`),
	regexp.MustCompile(`(?i)\b(?:annually|quarterly|monthly|weekly|daily)\b`),
	regexp.MustCompile(`(?i)\b(?:72\s+hours?|24\s+hours?|30\s+days?)\b`),
}

var (
	emailPattern   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern   = regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}\b`)
	websitePattern = regexp.MustCompile(`\bhttps?://\S+\b`)
)

var requirementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:must|shall|required\s+to|obligated\s+to|mandated)\s+[\w\s]{10,100}\b`),
	regexp.MustCompile(`(?i)\b(?:prohibited\s+from|forbidden\s+to|not\s+permitted)\s+[\w\s]{10,100}\b`),
	regexp.MustCompile(`(?i)\b(?:ensure\s+that|verify\s+that|confirm\s+that)\s+[\w\s]{10,100}\b`),
}

var (
	isoDatePattern     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	slashDatePattern   = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)
	numericPeriodCheck = regexp.MustCompile(`\d+\s+(?:days?|weeks?|months?|years?)`)
	alphaWordPattern   = regexp.MustCompile(`^[a-zA-Z]+$`)
	sentenceSplit      = regexp.MustCompile(`[.!?]+`)
	paragraphSplit     = regexp.MustCompile(`\n\s*\n`)
)
