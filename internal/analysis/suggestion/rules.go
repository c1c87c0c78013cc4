package suggestion

import "strings"

// jurisdictionFrameworks maps a detected jurisdiction onto the frameworks it
// typically implies. Jurisdictions without a row contribute no suggestions.
var jurisdictionFrameworks = map[string][]string{
	"european_union": {"gdpr"},
	"united_states":  {"hipaa", "sox", "glba"},
	"california":     {"ccpa"},
	"international":  {"iso_27001", "nist"},
}

// contentHeuristic is one isolated keyword predicate suggesting a framework
// regardless of jurisdiction.
type contentHeuristic struct {
	framework  string
	confidence float64
	reason     string
	keywords   []string
}

var contentHeuristics = []contentHeuristic{
	{
		framework:  "hipaa",
		confidence: 0.7,
		reason:     "Healthcare-related content detected",
		keywords:   []string{"health", "medical", "patient", "healthcare"},
	},
	{
		framework:  "sox",
		confidence: 0.6,
		reason:     "Financial/accounting content detected",
		keywords:   []string{"financial", "accounting", "audit", "investor"},
	},
	{
		framework:  "pci_dss",
		confidence: 0.8,
		reason:     "Payment processing content detected",
		keywords:   []string{"payment", "credit card", "cardholder", "transaction"},
	},
	{
		framework:  "gdpr",
		confidence: 0.7,
		reason:     "Data protection/privacy content detected",
		keywords:   []string{"personal data", "privacy", "data subject", "consent"},
	},
	{
		framework:  "iso_27001",
		confidence: 0.6,
		reason:     "Information security content detected",
		keywords:   []string{"information security", "cybersecurity", "security controls", "risk management"},
	},
	{
		framework:  "coppa",
		confidence: 0.8,
		reason:     "Children's data protection content detected",
		keywords:   []string{"children", "minor", "under 13", "parental consent"},
	},
}

func (h contentHeuristic) applies(loweredText string) bool {
	for _, kw := range h.keywords {
		if strings.Contains(loweredText, kw) {
			return true
		}
	}
	return false
}

// validationOutcome is the result of one framework's validation predicate.
type validationOutcome struct {
	valid           bool
	missingElements []string
	warnings        []string
}

// validateFramework applies the hard-coded predicate for one framework id.
// HIPAA, PCI DSS and SOX require topical context or the framework is
// invalid; GDPR only warns; everything else passes.
func validateFramework(framework, loweredText string, hasEUJurisdiction bool) validationOutcome {
	outcome := validationOutcome{valid: true}

	switch framework {
	case "gdpr":
		if !hasEUJurisdiction {
			outcome.warnings = append(outcome.warnings, "GDPR typically applies to EU jurisdiction")
		}
		if !strings.Contains(loweredText, "personal data") {
			outcome.warnings = append(outcome.warnings, "GDPR document does not define personal data")
		}
	case "hipaa":
		if !strings.Contains(loweredText, "health") && !strings.Contains(loweredText, "medical") {
			outcome.valid = false
			outcome.missingElements = append(outcome.missingElements, "healthcare context")
		}
	case "pci_dss":
		if !strings.Contains(loweredText, "payment") && !strings.Contains(loweredText, "card") {
			outcome.valid = false
			outcome.missingElements = append(outcome.missingElements, "payment processing context")
		}
	case "sox":
		if !strings.Contains(loweredText, "financial") && !strings.Contains(loweredText, "audit") {
			outcome.valid = false
			outcome.missingElements = append(outcome.missingElements, "financial/audit context")
		}
	}

	return outcome
}
