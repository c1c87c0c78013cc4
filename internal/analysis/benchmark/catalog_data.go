package benchmark

// BuiltinRuleSets returns the built-in framework rule catalogues. Each call
// returns a fresh slice so callers can merge overrides without touching the
// shared data. Rule weights within each framework sum to WeightTotal.
func BuiltinRuleSets() []*FrameworkRuleSet {
	return []*FrameworkRuleSet{
		gdprRuleSet(),
		hipaaRuleSet(),
		soxRuleSet(),
		ccpaRuleSet(),
		pciDSSRuleSet(),
		iso27001RuleSet(),
		ferpaRuleSet(),
		glbaRuleSet(),
		coppaRuleSet(),
		nistCSFRuleSet(),
		canSpamRuleSet(),
		fismaRuleSet(),
	}
}

func gdprRuleSet() *FrameworkRuleSet {
	return &FrameworkRuleSet{
		ID:       "GDPR",
		FullName: "General Data Protection Regulation",
		IndustryMultipliers: map[string]float64{
			"Technology": 1.2,
		},
		Rules: []ComplianceRule{
			{
				ID:             "gdpr_lawful_basis",
				Requirement:    "Establish and document a lawful basis for processing personal data, including consent where required",
				Category:       "lawful basis",
				Keywords:       []string{"lawful basis", "legal basis", "consent", "legitimate interest"},
				Weight:         20,
				Remediation:    "Document the lawful basis for each processing activity and implement consent capture where consent is the basis",
				BusinessImpact: "Processing without a lawful basis exposes the organization to fines of up to 4% of global turnover",
				Timeframe:      "1-3 months",
				Effort:         "High",
			},
			{
				ID:             "gdpr_data_subject_rights",
				Requirement:    "Provide mechanisms for data subject rights: access, rectification, erasure, portability and objection",
				Category:       "data subject rights",
				Keywords:       []string{"data subject", "right to access", "right to erasure", "rectification", "data portability"},
				Weight:         15,
				Remediation:    "Implement request intake and fulfilment procedures covering all data subject rights with the one-month response deadline",
				BusinessImpact: "Unanswered subject requests are a common trigger for regulator complaints",
				Timeframe:      "1-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "gdpr_breach_notification",
				Requirement:    "Notify the supervisory authority of personal data breaches within 72 hours of awareness",
				Category:       "breach notification",
				Keywords:       []string{"72 hours", "breach notification", "supervisory authority", "data breach"},
				Weight:         15,
				Remediation:    "Adopt a breach response procedure with severity triage and a 72-hour authority notification path",
				BusinessImpact: "Late breach notification compounds regulatory penalties and reputational damage",
				Timeframe:      "1-2 months",
				Effort:         "Medium",
			},
			{
				ID:             "gdpr_dpo",
				Requirement:    "Designate a Data Protection Officer where core activities require regular and systematic monitoring",
				Category:       "governance",
				Keywords:       []string{"data protection officer", "dpo"},
				Weight:         10,
				Remediation:    "Appoint a DPO, publish their contact details, and register them with the supervisory authority",
				BusinessImpact: "Missing DPO designation signals weak accountability to regulators",
				Timeframe:      "1 month",
				Effort:         "Low",
			},
			{
				ID:             "gdpr_dpia",
				Requirement:    "Carry out data protection impact assessments for high-risk processing",
				Category:       "risk management",
				Keywords:       []string{"impact assessment", "dpia", "high-risk processing"},
				Weight:         10,
				Remediation:    "Define DPIA screening criteria and run assessments before launching high-risk processing",
				BusinessImpact: "High-risk processing without a DPIA invalidates the accountability record",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "gdpr_international_transfers",
				Requirement:    "Safeguard international data transfers with adequacy decisions or standard contractual clauses",
				Category:       "international transfers",
				Keywords:       []string{"international transfer", "standard contractual clauses", "adequacy decision", "cross-border"},
				Weight:         10,
				Remediation:    "Map cross-border data flows and put standard contractual clauses or another transfer mechanism in place",
				BusinessImpact: "Unprotected transfers can force suspension of data flows to third countries",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "gdpr_privacy_by_design",
				Requirement:    "Apply data protection by design and by default, including data minimization",
				Category:       "privacy engineering",
				Keywords:       []string{"privacy by design", "data protection by design", "data minimization", "data minimisation"},
				Weight:         10,
				Remediation:    "Embed privacy requirements into the development lifecycle and default configurations",
				BusinessImpact: "Retrofitting privacy controls is far costlier than designing them in",
				Timeframe:      "3-6 months",
				Effort:         "High",
			},
			{
				ID:             "gdpr_records_of_processing",
				Requirement:    "Maintain records of processing activities under Article 30",
				Category:       "accountability",
				Keywords:       []string{"records of processing", "processing activities", "article 30"},
				Weight:         6,
				Remediation:    "Build and maintain a register of processing activities covering purposes, categories and recipients",
				BusinessImpact: "Incomplete processing records slow every regulator interaction",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
			{
				ID:             "gdpr_staff_training",
				Requirement:    "Train staff handling personal data on data protection obligations",
				Category:       "awareness",
				Keywords:       []string{"privacy training", "data protection training", "awareness training"},
				Weight:         4,
				Remediation:    "Schedule recurring data protection training for all staff with access to personal data",
				BusinessImpact: "Untrained staff are the leading cause of avoidable breaches",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
		},
	}
}

func hipaaRuleSet() *FrameworkRuleSet {
	return &FrameworkRuleSet{
		ID:       "HIPAA",
		FullName: "Health Insurance Portability and Accountability Act",
		IndustryMultipliers: map[string]float64{
			"Healthcare": 1.5,
		},
		Rules: []ComplianceRule{
			{
				ID:             "hipaa_safeguards",
				Requirement:    "Implement administrative, physical and technical safeguards for protected health information",
				Category:       "security rule",
				Keywords:       []string{"administrative safeguards", "physical safeguards", "technical safeguards", "protected health information", "phi"},
				Weight:         20,
				Remediation:    "Document and implement the full safeguard triad required by the Security Rule",
				BusinessImpact: "Missing safeguards expose PHI and invite OCR enforcement",
				Timeframe:      "3-6 months",
				Effort:         "High",
			},
			{
				ID:             "hipaa_use_disclosure",
				Requirement:    "Limit uses and disclosures of PHI to those permitted by the Privacy Rule",
				Category:       "privacy rule",
				Keywords:       []string{"use and disclosure", "permitted disclosure", "privacy rule", "authorization"},
				Weight:         15,
				Remediation:    "Define permitted use and disclosure categories and require authorizations elsewhere",
				BusinessImpact: "Improper disclosures are the most common HIPAA complaint category",
				Timeframe:      "1-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "hipaa_breach_notification",
				Requirement:    "Notify affected individuals and HHS of breaches of unsecured PHI within 60 days",
				Category:       "breach notification",
				Keywords:       []string{"breach notification", "60 days", "unsecured phi", "notify affected individuals"},
				Weight:         15,
				Remediation:    "Stand up a breach assessment and notification workflow meeting the 60-day deadline",
				BusinessImpact: "Missed notification deadlines multiply settlement amounts",
				Timeframe:      "1-2 months",
				Effort:         "Medium",
			},
			{
				ID:             "hipaa_risk_analysis",
				Requirement:    "Conduct an accurate and thorough risk analysis of ePHI confidentiality, integrity and availability",
				Category:       "risk management",
				Keywords:       []string{"risk analysis", "risk assessment", "ephi"},
				Weight:         10,
				Remediation:    "Perform and document an enterprise-wide ePHI risk analysis and remediation plan",
				BusinessImpact: "Absent risk analysis is cited in nearly every OCR resolution agreement",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "hipaa_business_associates",
				Requirement:    "Execute business associate agreements before sharing PHI with vendors",
				Category:       "third parties",
				Keywords:       []string{"business associate", "business associate agreement", "baa"},
				Weight:         10,
				Remediation:    "Inventory vendors handling PHI and execute compliant business associate agreements",
				BusinessImpact: "PHI shared without a BAA is an automatic violation",
				Timeframe:      "1-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "hipaa_minimum_necessary",
				Requirement:    "Apply the minimum necessary standard to PHI access and disclosure",
				Category:       "privacy rule",
				Keywords:       []string{"minimum necessary"},
				Weight:         10,
				Remediation:    "Restrict PHI access by role and limit disclosures to the minimum necessary data set",
				BusinessImpact: "Over-broad access inflates the blast radius of any incident",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "hipaa_access_controls",
				Requirement:    "Enforce unique user identification, automatic logoff and encryption for ePHI systems",
				Category:       "technical controls",
				Keywords:       []string{"access control", "unique user identification", "encryption", "audit controls"},
				Weight:         10,
				Remediation:    "Deploy unique credentials, session timeouts, audit logging and encryption across ePHI systems",
				BusinessImpact: "Weak access controls turn single compromised accounts into reportable breaches",
				Timeframe:      "3-6 months",
				Effort:         "High",
			},
			{
				ID:             "hipaa_training",
				Requirement:    "Train workforce members on HIPAA policies and procedures",
				Category:       "awareness",
				Keywords:       []string{"workforce training", "hipaa training", "security awareness"},
				Weight:         6,
				Remediation:    "Deliver HIPAA training at onboarding and annually thereafter, with attestation records",
				BusinessImpact: "Training gaps undermine every other safeguard",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
			{
				ID:             "hipaa_contingency",
				Requirement:    "Maintain contingency plans including data backup and disaster recovery for ePHI",
				Category:       "resilience",
				Keywords:       []string{"contingency plan", "disaster recovery", "data backup"},
				Weight:         4,
				Remediation:    "Create and test backup and disaster recovery plans for systems holding ePHI",
				BusinessImpact: "Unrecoverable PHI is itself a breach of the availability requirement",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
		},
	}
}

func soxRuleSet() *FrameworkRuleSet {
	return &FrameworkRuleSet{
		ID:       "SOX",
		FullName: "Sarbanes-Oxley Act",
		IndustryMultipliers: map[string]float64{
			"Financial Services": 1.4,
		},
		Rules: []ComplianceRule{
			{
				ID:             "sox_internal_controls",
				Requirement:    "Establish and assess internal control over financial reporting under Section 404",
				Category:       "internal controls",
				Keywords:       []string{"internal controls", "internal control over financial reporting", "section 404", "icfr"},
				Weight:         25,
				Remediation:    "Document key financial reporting controls and run an annual Section 404 effectiveness assessment",
				BusinessImpact: "Material weaknesses in ICFR must be publicly disclosed and depress investor confidence",
				Timeframe:      "3-6 months",
				Effort:         "High",
			},
			{
				ID:             "sox_certification",
				Requirement:    "Obtain CEO/CFO certification of financial reports under Section 302",
				Category:       "certification",
				Keywords:       []string{"certification", "section 302", "certify"},
				Weight:         20,
				Remediation:    "Institute a quarterly sub-certification cascade supporting the executive Section 302 sign-off",
				BusinessImpact: "False certification carries personal criminal liability for executives",
				Timeframe:      "1-2 months",
				Effort:         "Medium",
			},
			{
				ID:             "sox_audit_trail",
				Requirement:    "Preserve complete audit trails for financial transactions and adjustments",
				Category:       "audit",
				Keywords:       []string{"audit trail", "audit log", "journal entry"},
				Weight:         15,
				Remediation:    "Enable immutable logging for all financial systems and review manual journal entries",
				BusinessImpact: "Broken audit trails prevent auditors from signing off on the financials",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "sox_segregation_of_duties",
				Requirement:    "Segregate duties across initiation, approval and recording of financial transactions",
				Category:       "internal controls",
				Keywords:       []string{"segregation of duties", "separation of duties"},
				Weight:         10,
				Remediation:    "Analyze role assignments for conflicts and split incompatible financial duties",
				BusinessImpact: "Concentrated duties enable undetected fraud",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "sox_whistleblower",
				Requirement:    "Provide confidential whistleblower channels for accounting and audit concerns",
				Category:       "governance",
				Keywords:       []string{"whistleblower", "anonymous reporting", "ethics hotline"},
				Weight:         10,
				Remediation:    "Stand up an independent, anonymous reporting channel overseen by the audit committee",
				BusinessImpact: "Retaliation claims and missed fraud signals follow from absent channels",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
			{
				ID:             "sox_records_retention",
				Requirement:    "Retain audit workpapers and relevant records for the mandated periods",
				Category:       "records",
				Keywords:       []string{"records retention", "retention period", "document retention"},
				Weight:         10,
				Remediation:    "Publish a retention schedule covering audit workpapers and enforce legal holds",
				BusinessImpact: "Destroying audit records is itself a criminal offense under Section 802",
				Timeframe:      "1-3 months",
				Effort:         "Low",
			},
			{
				ID:             "sox_it_general_controls",
				Requirement:    "Maintain IT general controls over change management and access to financial systems",
				Category:       "technology",
				Keywords:       []string{"it general controls", "change management", "access management"},
				Weight:         10,
				Remediation:    "Formalize change approval and access recertification for in-scope financial systems",
				BusinessImpact: "ITGC failures cascade into every automated financial control",
				Timeframe:      "3-6 months",
				Effort:         "High",
			},
		},
	}
}

func ccpaRuleSet() *FrameworkRuleSet {
	return &FrameworkRuleSet{
		ID:       "CCPA",
		FullName: "California Consumer Privacy Act",
		Rules: []ComplianceRule{
			{
				ID:             "ccpa_notice_at_collection",
				Requirement:    "Provide notice at collection describing categories of personal information and purposes",
				Category:       "transparency",
				Keywords:       []string{"notice at collection", "categories of personal information", "privacy notice"},
				Weight:         20,
				Remediation:    "Publish a notice at collection covering categories, purposes and retention at every intake point",
				BusinessImpact: "Collection without notice invalidates downstream processing",
				Timeframe:      "1-2 months",
				Effort:         "Medium",
			},
			{
				ID:             "ccpa_right_to_know",
				Requirement:    "Honor consumer requests to know what personal information is collected, used and shared",
				Category:       "consumer rights",
				Keywords:       []string{"right to know", "consumer request", "access request"},
				Weight:         15,
				Remediation:    "Implement verified request handling with the 45-day response window",
				BusinessImpact: "Unverifiable or late responses draw Attorney General scrutiny",
				Timeframe:      "1-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "ccpa_right_to_delete",
				Requirement:    "Honor consumer deletion requests across systems and service providers",
				Category:       "consumer rights",
				Keywords:       []string{"right to delete", "deletion request", "right to deletion"},
				Weight:         15,
				Remediation:    "Build deletion workflows that propagate to service providers and document exemptions",
				BusinessImpact: "Partial deletions create audit findings and consumer complaints",
				Timeframe:      "2-4 months",
				Effort:         "High",
			},
			{
				ID:             "ccpa_opt_out",
				Requirement:    "Offer a clear 'Do Not Sell or Share My Personal Information' opt-out",
				Category:       "consumer rights",
				Keywords:       []string{"do not sell", "opt-out", "opt out", "sale of personal information"},
				Weight:         15,
				Remediation:    "Add the opt-out link, honor global privacy control signals, and suppress sales for opted-out consumers",
				BusinessImpact: "Selling data after an opt-out is a per-consumer violation",
				Timeframe:      "1-2 months",
				Effort:         "Medium",
			},
			{
				ID:             "ccpa_non_discrimination",
				Requirement:    "Do not discriminate against consumers who exercise CCPA rights",
				Category:       "consumer rights",
				Keywords:       []string{"non-discrimination", "nondiscrimination", "discriminate"},
				Weight:         10,
				Remediation:    "Review pricing and service tiers to ensure parity for consumers exercising rights",
				BusinessImpact: "Discrimination claims attract class actions",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
			{
				ID:             "ccpa_service_providers",
				Requirement:    "Bind service providers with contracts restricting use of personal information",
				Category:       "third parties",
				Keywords:       []string{"service provider", "contractor agreement", "processing restrictions"},
				Weight:         10,
				Remediation:    "Amend vendor contracts with CCPA-required use restrictions and certification clauses",
				BusinessImpact: "Unrestricted vendor use converts disclosures into reportable sales",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "ccpa_minors",
				Requirement:    "Obtain opt-in consent before selling personal information of consumers under 16",
				Category:       "minors",
				Keywords:       []string{"under 16", "minor", "opt-in consent"},
				Weight:         10,
				Remediation:    "Implement age screening and opt-in consent flows for minors' data",
				BusinessImpact: "Sales of minors' data without opt-in carry tripled statutory exposure",
				Timeframe:      "2-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "ccpa_security",
				Requirement:    "Maintain reasonable security procedures protecting personal information",
				Category:       "security",
				Keywords:       []string{"reasonable security", "security procedures", "safeguards"},
				Weight:         5,
				Remediation:    "Map security controls to an accepted baseline and close identified gaps",
				BusinessImpact: "Breaches from unreasonable security trigger the private right of action",
				Timeframe:      "3-6 months",
				Effort:         "High",
			},
		},
	}
}

func pciDSSRuleSet() *FrameworkRuleSet {
	return &FrameworkRuleSet{
		ID:       "PCI_DSS",
		FullName: "Payment Card Industry Data Security Standard",
		IndustryMultipliers: map[string]float64{
			"Retail":             1.3,
			"Financial Services": 1.2,
		},
		Rules: []ComplianceRule{
			{
				ID:             "pci_cardholder_data_protection",
				Requirement:    "Protect stored cardholder data and render PAN unreadable wherever stored",
				Category:       "data protection",
				Keywords:       []string{"cardholder data", "primary account number", "pan", "tokenization"},
				Weight:         20,
				Remediation:    "Inventory cardholder data stores and apply encryption, truncation or tokenization",
				BusinessImpact: "Exposed PANs mean card brand fines and forensic audits",
				Timeframe:      "3-6 months",
				Effort:         "High",
			},
			{
				ID:             "pci_encryption_in_transit",
				Requirement:    "Encrypt transmission of cardholder data across open, public networks",
				Category:       "data protection",
				Keywords:       []string{"encryption in transit", "tls", "strong cryptography"},
				Weight:         15,
				Remediation:    "Enforce TLS with strong ciphers on every transmission path carrying cardholder data",
				BusinessImpact: "Plaintext card data in transit is trivially harvestable",
				Timeframe:      "1-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "pci_access_restriction",
				Requirement:    "Restrict access to cardholder data by business need to know with unique IDs",
				Category:       "access control",
				Keywords:       []string{"need to know", "unique id", "access restriction", "least privilege"},
				Weight:         15,
				Remediation:    "Apply role-based access with unique identifiers and quarterly access reviews",
				BusinessImpact: "Shared accounts defeat accountability for card data access",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "pci_network_segmentation",
				Requirement:    "Install and maintain network security controls isolating the cardholder data environment",
				Category:       "network security",
				Keywords:       []string{"firewall", "network segmentation", "cardholder data environment", "cde"},
				Weight:         15,
				Remediation:    "Segment the CDE behind maintained firewall rules and validate segmentation annually",
				BusinessImpact: "Flat networks pull the entire enterprise into PCI scope",
				Timeframe:      "3-6 months",
				Effort:         "High",
			},
			{
				ID:             "pci_vulnerability_management",
				Requirement:    "Maintain a vulnerability management program with anti-malware and secure development",
				Category:       "vulnerability management",
				Keywords:       []string{"vulnerability management", "anti-malware", "patch management", "secure development"},
				Weight:         10,
				Remediation:    "Schedule vulnerability scanning, patching SLAs and malware protection across the CDE",
				BusinessImpact: "Unpatched systems are the dominant card-breach entry point",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "pci_monitoring_testing",
				Requirement:    "Log and monitor all access to network resources and cardholder data; test security regularly",
				Category:       "monitoring",
				Keywords:       []string{"log monitoring", "penetration test", "security testing", "audit logs"},
				Weight:         15,
				Remediation:    "Centralize CDE logging with daily review and run annual penetration tests",
				BusinessImpact: "Breaches without logs take months longer to scope and contain",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "pci_security_policy",
				Requirement:    "Maintain an information security policy addressing PCI DSS for all personnel",
				Category:       "governance",
				Keywords:       []string{"security policy", "information security policy"},
				Weight:         10,
				Remediation:    "Publish and annually review a security policy with PCI-specific responsibilities",
				BusinessImpact: "Policy gaps fail the assessment even with strong technical controls",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
		},
	}
}

func iso27001RuleSet() *FrameworkRuleSet {
	return &FrameworkRuleSet{
		ID:       "ISO_27001",
		FullName: "ISO/IEC 27001 Information Security Management",
		Rules: []ComplianceRule{
			{
				ID:             "iso_isms_scope",
				Requirement:    "Define and document the scope of the information security management system",
				Category:       "isms",
				Keywords:       []string{"isms", "information security management system", "scope"},
				Weight:         15,
				Remediation:    "Document ISMS boundaries covering locations, assets and technologies",
				BusinessImpact: "Undefined scope makes certification and audits impossible",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
			{
				ID:             "iso_risk_assessment",
				Requirement:    "Perform information security risk assessment and treatment with defined criteria",
				Category:       "risk management",
				Keywords:       []string{"risk assessment", "risk treatment", "risk criteria"},
				Weight:         20,
				Remediation:    "Establish a risk methodology, run assessments and maintain a risk treatment plan",
				BusinessImpact: "Controls not driven by risk leave the highest exposures untreated",
				Timeframe:      "2-4 months",
				Effort:         "High",
			},
			{
				ID:             "iso_statement_of_applicability",
				Requirement:    "Maintain a Statement of Applicability justifying control inclusion and exclusion",
				Category:       "isms",
				Keywords:       []string{"statement of applicability", "annex a"},
				Weight:         10,
				Remediation:    "Produce an SoA mapping every Annex A control to inclusion rationale and status",
				BusinessImpact: "A stale SoA is a standard certification nonconformity",
				Timeframe:      "1-2 months",
				Effort:         "Medium",
			},
			{
				ID:             "iso_leadership_commitment",
				Requirement:    "Demonstrate top management leadership, policy and assigned security roles",
				Category:       "governance",
				Keywords:       []string{"management commitment", "security policy", "roles and responsibilities"},
				Weight:         10,
				Remediation:    "Have leadership approve the security policy and assign documented security roles",
				BusinessImpact: "Without management backing the ISMS decays after certification",
				Timeframe:      "1 month",
				Effort:         "Low",
			},
			{
				ID:             "iso_asset_management",
				Requirement:    "Inventory information assets and classify them by sensitivity",
				Category:       "asset management",
				Keywords:       []string{"asset inventory", "asset management", "classification"},
				Weight:         10,
				Remediation:    "Build an asset register with owners and classification-driven handling rules",
				BusinessImpact: "Unknown assets cannot be protected or audited",
				Timeframe:      "2-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "iso_access_control",
				Requirement:    "Control access to information based on business and security requirements",
				Category:       "access control",
				Keywords:       []string{"access control", "least privilege", "privileged access"},
				Weight:         10,
				Remediation:    "Implement role-based provisioning, privileged access management and periodic reviews",
				BusinessImpact: "Access sprawl is the most common audit finding",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "iso_incident_management",
				Requirement:    "Plan and respond to information security incidents with lessons learned",
				Category:       "incident management",
				Keywords:       []string{"incident response", "incident management", "security incident"},
				Weight:         10,
				Remediation:    "Adopt an incident response plan with classification, escalation and post-incident review",
				BusinessImpact: "Improvised response multiplies incident cost",
				Timeframe:      "1-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "iso_internal_audit",
				Requirement:    "Conduct internal ISMS audits and management reviews at planned intervals",
				Category:       "assurance",
				Keywords:       []string{"internal audit", "management review"},
				Weight:         10,
				Remediation:    "Schedule an internal audit programme and management reviews with tracked actions",
				BusinessImpact: "Unaudited controls drift silently out of conformity",
				Timeframe:      "2-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "iso_continual_improvement",
				Requirement:    "Track nonconformities and drive continual improvement of the ISMS",
				Category:       "improvement",
				Keywords:       []string{"continual improvement", "corrective action", "nonconformity"},
				Weight:         5,
				Remediation:    "Record nonconformities with root cause and verify corrective action effectiveness",
				BusinessImpact: "Repeat findings jeopardize certificate renewal",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
		},
	}
}

func ferpaRuleSet() *FrameworkRuleSet {
	return &FrameworkRuleSet{
		ID:       "FERPA",
		FullName: "Family Educational Rights and Privacy Act",
		IndustryMultipliers: map[string]float64{
			"Education": 1.5,
		},
		Rules: []ComplianceRule{
			{
				ID:             "ferpa_education_records",
				Requirement:    "Protect education records from unauthorized disclosure",
				Category:       "records protection",
				Keywords:       []string{"education records", "student records", "unauthorized disclosure"},
				Weight:         25,
				Remediation:    "Classify education records and restrict disclosure to authorized school officials",
				BusinessImpact: "Improper disclosures can cost an institution all federal education funding",
				Timeframe:      "2-4 months",
				Effort:         "High",
			},
			{
				ID:             "ferpa_parental_rights",
				Requirement:    "Grant parents and eligible students the right to inspect and review education records",
				Category:       "access rights",
				Keywords:       []string{"inspect and review", "parental rights", "eligible student"},
				Weight:         20,
				Remediation:    "Publish a records request procedure honoring the 45-day inspection window",
				BusinessImpact: "Denied inspection rights generate Department of Education complaints",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
			{
				ID:             "ferpa_consent",
				Requirement:    "Obtain written consent before disclosing personally identifiable information from records",
				Category:       "consent",
				Keywords:       []string{"written consent", "personally identifiable information", "prior consent"},
				Weight:         20,
				Remediation:    "Require signed consent forms before non-exempt disclosures of student PII",
				BusinessImpact: "Unconsented disclosures are the core FERPA violation",
				Timeframe:      "1-2 months",
				Effort:         "Medium",
			},
			{
				ID:             "ferpa_directory_information",
				Requirement:    "Give annual notice of directory information categories and honor opt-outs",
				Category:       "transparency",
				Keywords:       []string{"directory information", "annual notification", "opt out"},
				Weight:         15,
				Remediation:    "Send annual FERPA notices and maintain a directory-information opt-out register",
				BusinessImpact: "Directory releases without notice convert routine publications into violations",
				Timeframe:      "1 month",
				Effort:         "Low",
			},
			{
				ID:             "ferpa_amendment",
				Requirement:    "Provide a process to request amendment of inaccurate or misleading records",
				Category:       "access rights",
				Keywords:       []string{"amendment", "correct records", "hearing"},
				Weight:         10,
				Remediation:    "Define an amendment request and hearing procedure with documented outcomes",
				BusinessImpact: "Missing amendment channels escalate disputes to federal complaints",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
			{
				ID:             "ferpa_disclosure_log",
				Requirement:    "Record disclosures of education records and the legitimate interests involved",
				Category:       "accountability",
				Keywords:       []string{"record of disclosure", "disclosure log", "legitimate educational interest"},
				Weight:         10,
				Remediation:    "Log every non-exempt disclosure with recipient and purpose in the student file",
				BusinessImpact: "Audit failures follow from unlogged disclosures",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
		},
	}
}

func glbaRuleSet() *FrameworkRuleSet {
	return &FrameworkRuleSet{
		ID:       "GLBA",
		FullName: "Gramm-Leach-Bliley Act",
		IndustryMultipliers: map[string]float64{
			"Financial Services": 1.3,
			"Insurance":          1.2,
		},
		Rules: []ComplianceRule{
			{
				ID:             "glba_privacy_notice",
				Requirement:    "Deliver initial and annual privacy notices describing information sharing practices",
				Category:       "transparency",
				Keywords:       []string{"privacy notice", "annual notice", "information sharing"},
				Weight:         20,
				Remediation:    "Issue compliant initial and annual privacy notices through every customer channel",
				BusinessImpact: "Notice failures draw FTC and state regulator actions",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
			{
				ID:             "glba_opt_out",
				Requirement:    "Offer customers the right to opt out of sharing nonpublic personal information with nonaffiliated third parties",
				Category:       "consumer rights",
				Keywords:       []string{"opt out", "nonpublic personal information", "nonaffiliated third parties"},
				Weight:         20,
				Remediation:    "Provide opt-out mechanisms and suppress covered sharing for opted-out customers",
				BusinessImpact: "Sharing after opt-out is a direct statutory violation",
				Timeframe:      "1-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "glba_safeguards_program",
				Requirement:    "Implement a written information security program under the Safeguards Rule",
				Category:       "safeguards rule",
				Keywords:       []string{"safeguards rule", "information security program", "written security program"},
				Weight:         25,
				Remediation:    "Document a security program with a designated qualified individual and board reporting",
				BusinessImpact: "Safeguards Rule enforcement now carries substantial civil penalties",
				Timeframe:      "3-6 months",
				Effort:         "High",
			},
			{
				ID:             "glba_risk_assessment",
				Requirement:    "Base safeguards on a written risk assessment of customer information",
				Category:       "risk management",
				Keywords:       []string{"risk assessment", "customer information"},
				Weight:         15,
				Remediation:    "Run and document periodic risk assessments covering all customer information systems",
				BusinessImpact: "Controls without risk grounding fail examiner review",
				Timeframe:      "2-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "glba_vendor_oversight",
				Requirement:    "Oversee service providers and require them to maintain appropriate safeguards",
				Category:       "third parties",
				Keywords:       []string{"service provider", "vendor oversight", "due diligence"},
				Weight:         10,
				Remediation:    "Add safeguards clauses to vendor contracts and monitor provider compliance",
				BusinessImpact: "Vendor breaches of customer data land on the institution",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "glba_pretexting",
				Requirement:    "Protect against pretexting and unauthorized access to customer information",
				Category:       "fraud prevention",
				Keywords:       []string{"pretexting", "social engineering", "identity verification"},
				Weight:         10,
				Remediation:    "Train staff on pretexting and require caller identity verification before disclosures",
				BusinessImpact: "Social engineering bypasses technical controls entirely",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
		},
	}
}

func coppaRuleSet() *FrameworkRuleSet {
	return &FrameworkRuleSet{
		ID:       "COPPA",
		FullName: "Children's Online Privacy Protection Act",
		Rules: []ComplianceRule{
			{
				ID:             "coppa_parental_consent",
				Requirement:    "Obtain verifiable parental consent before collecting personal information from children under 13",
				Category:       "consent",
				Keywords:       []string{"parental consent", "verifiable parental consent", "under 13"},
				Weight:         25,
				Remediation:    "Deploy a verifiable parental consent flow before any collection from children",
				BusinessImpact: "Collection without consent carries per-child civil penalties",
				Timeframe:      "2-3 months",
				Effort:         "High",
			},
			{
				ID:             "coppa_privacy_notice",
				Requirement:    "Post a clear privacy notice describing practices for children's personal information",
				Category:       "transparency",
				Keywords:       []string{"children's privacy", "privacy notice", "privacy policy"},
				Weight:         15,
				Remediation:    "Publish a COPPA-specific notice covering collection, use and parental rights",
				BusinessImpact: "Defective notices void otherwise valid consent",
				Timeframe:      "1 month",
				Effort:         "Low",
			},
			{
				ID:             "coppa_parental_access",
				Requirement:    "Let parents review and delete their child's personal information and refuse further collection",
				Category:       "access rights",
				Keywords:       []string{"parental access", "review and delete", "refuse further collection"},
				Weight:         15,
				Remediation:    "Build parent-facing review and deletion workflows with identity verification",
				BusinessImpact: "Ignored parental requests escalate to FTC complaints",
				Timeframe:      "2-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "coppa_data_minimization",
				Requirement:    "Condition no activity on collecting more information from a child than reasonably necessary",
				Category:       "data minimization",
				Keywords:       []string{"reasonably necessary", "data minimization", "no more information"},
				Weight:         15,
				Remediation:    "Audit child-directed flows and strip collection beyond what each activity needs",
				BusinessImpact: "Over-collection converts every record into liability",
				Timeframe:      "2-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "coppa_retention_deletion",
				Requirement:    "Retain children's personal information only as long as necessary and delete it securely",
				Category:       "retention",
				Keywords:       []string{"retention", "secure deletion", "as long as necessary"},
				Weight:         10,
				Remediation:    "Set retention limits for children's data and automate secure deletion",
				BusinessImpact: "Stale children's data compounds breach exposure",
				Timeframe:      "1-3 months",
				Effort:         "Medium",
			},
			{
				ID:             "coppa_confidentiality",
				Requirement:    "Maintain the confidentiality, security and integrity of children's personal information",
				Category:       "security",
				Keywords:       []string{"confidentiality", "security and integrity", "safeguards"},
				Weight:         10,
				Remediation:    "Apply access controls and encryption to systems holding children's data",
				BusinessImpact: "Breaches of children's data attract maximal enforcement attention",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "coppa_no_behavioral_ads",
				Requirement:    "Do not serve behavioral advertising to children without separate verifiable consent",
				Category:       "advertising",
				Keywords:       []string{"behavioral advertising", "targeted advertising", "persistent identifier"},
				Mode:           ModeForbid,
				Weight:         10,
				Remediation:    "Disable interest-based ad targeting for child-directed content and audiences",
				BusinessImpact: "Behavioral ads to children are a headline enforcement trigger",
				Timeframe:      "1-2 months",
				Effort:         "Medium",
			},
		},
	}
}

func nistCSFRuleSet() *FrameworkRuleSet {
	return &FrameworkRuleSet{
		ID:       "NIST_CSF",
		FullName: "NIST Cybersecurity Framework",
		IndustryMultipliers: map[string]float64{
			"Government": 1.2,
		},
		Rules: []ComplianceRule{
			{
				ID:             "nist_identify",
				Requirement:    "Identify and inventory assets, business environment and cybersecurity risks",
				Category:       "identify",
				Keywords:       []string{"asset inventory", "risk identification", "business environment"},
				Weight:         20,
				Remediation:    "Build asset and data-flow inventories and a maintained risk register",
				BusinessImpact: "Unknown assets and risks cannot be defended",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "nist_protect",
				Requirement:    "Implement protective safeguards: access control, awareness, data security and maintenance",
				Category:       "protect",
				Keywords:       []string{"access control", "data security", "protective technology", "awareness and training"},
				Weight:         20,
				Remediation:    "Deploy layered protective controls mapped to the Protect function categories",
				BusinessImpact: "Protection gaps are the direct path to incidents",
				Timeframe:      "3-6 months",
				Effort:         "High",
			},
			{
				ID:             "nist_detect",
				Requirement:    "Detect anomalies and events through continuous security monitoring",
				Category:       "detect",
				Keywords:       []string{"continuous monitoring", "anomaly detection", "detection processes"},
				Weight:         20,
				Remediation:    "Stand up centralized monitoring with tuned detection and alerting coverage",
				BusinessImpact: "Undetected intrusions dwell for months",
				Timeframe:      "3-6 months",
				Effort:         "High",
			},
			{
				ID:             "nist_respond",
				Requirement:    "Maintain response planning, communications, analysis and mitigation capability",
				Category:       "respond",
				Keywords:       []string{"incident response", "response plan", "mitigation"},
				Weight:         20,
				Remediation:    "Write and exercise an incident response plan with defined communications paths",
				BusinessImpact: "Slow response converts incidents into crises",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "nist_recover",
				Requirement:    "Plan recovery and improvements to restore capabilities after incidents",
				Category:       "recover",
				Keywords:       []string{"recovery plan", "disaster recovery", "resilience"},
				Weight:         15,
				Remediation:    "Document recovery procedures with RTO/RPO targets and test them",
				BusinessImpact: "Unplanned recovery extends outages by orders of magnitude",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "nist_governance",
				Requirement:    "Establish cybersecurity governance with policy, roles and supply chain risk management",
				Category:       "govern",
				Keywords:       []string{"governance", "supply chain risk", "cybersecurity policy"},
				Weight:         5,
				Remediation:    "Assign cybersecurity accountability and extend risk management to suppliers",
				BusinessImpact: "Ungoverned programs fragment and decay",
				Timeframe:      "1-3 months",
				Effort:         "Low",
			},
		},
	}
}

func canSpamRuleSet() *FrameworkRuleSet {
	return &FrameworkRuleSet{
		ID:       "CAN_SPAM",
		FullName: "Controlling the Assault of Non-Solicited Pornography and Marketing Act",
		Rules: []ComplianceRule{
			{
				ID:             "canspam_unsubscribe",
				Requirement:    "Provide a clear, working unsubscribe mechanism honored within 10 business days",
				Category:       "consumer rights",
				Keywords:       []string{"unsubscribe", "opt-out", "opt out"},
				Weight:         25,
				Remediation:    "Add a one-step unsubscribe link and honor requests within 10 business days",
				BusinessImpact: "Broken unsubscribe links generate per-message penalties",
				Timeframe:      "1 month",
				Effort:         "Low",
			},
			{
				ID:             "canspam_sender_identification",
				Requirement:    "Identify the message as an advertisement and include a valid physical postal address",
				Category:       "transparency",
				Keywords:       []string{"physical address", "postal address", "advertisement"},
				Weight:         20,
				Remediation:    "Add accurate sender identification and a postal address to every commercial message footer",
				BusinessImpact: "Missing identification fails the most basic compliance screen",
				Timeframe:      "1 month",
				Effort:         "Low",
			},
			{
				ID:             "canspam_accurate_headers",
				Requirement:    "Use accurate header information identifying the originating sender and domain",
				Category:       "transparency",
				Keywords:       []string{"header information", "from line", "originating domain"},
				Weight:         20,
				Remediation:    "Authenticate sending domains and keep routing headers truthful",
				BusinessImpact: "Falsified headers escalate civil violations into criminal exposure",
				Timeframe:      "1-2 months",
				Effort:         "Medium",
			},
			{
				ID:             "canspam_no_deceptive_subjects",
				Requirement:    "Subject lines must not be deceptive or misleading about the message content",
				Category:       "content",
				Keywords:       []string{"deceptive subject", "misleading subject"},
				Mode:           ModeForbid,
				Weight:         15,
				Remediation:    "Review campaign subject lines against content before every send",
				BusinessImpact: "Deceptive subjects void any otherwise-compliant campaign",
				Timeframe:      "1 month",
				Effort:         "Low",
			},
			{
				ID:             "canspam_suppression_list",
				Requirement:    "Maintain a suppression list preventing mail to opted-out recipients",
				Category:       "consumer rights",
				Keywords:       []string{"suppression list", "opted-out recipients", "do-not-email"},
				Weight:         10,
				Remediation:    "Centralize suppression across all sending platforms and vendors",
				BusinessImpact: "Mail sent past an opt-out is a strict-liability violation",
				Timeframe:      "1-2 months",
				Effort:         "Medium",
			},
			{
				ID:             "canspam_vendor_liability",
				Requirement:    "Monitor third parties sending mail on the organization's behalf",
				Category:       "third parties",
				Keywords:       []string{"third-party sender", "email vendor", "on our behalf"},
				Weight:         10,
				Remediation:    "Contractually require CAN-SPAM compliance from mail vendors and audit their sends",
				BusinessImpact: "The advertised business is liable for its vendors' violations",
				Timeframe:      "1-3 months",
				Effort:         "Low",
			},
		},
	}
}

func fismaRuleSet() *FrameworkRuleSet {
	return &FrameworkRuleSet{
		ID:       "FISMA",
		FullName: "Federal Information Security Management Act",
		IndustryMultipliers: map[string]float64{
			"Government": 1.5,
		},
		Rules: []ComplianceRule{
			{
				ID:             "fisma_categorization",
				Requirement:    "Categorize information systems by impact level under FIPS 199",
				Category:       "categorization",
				Keywords:       []string{"fips 199", "impact level", "system categorization"},
				Weight:         15,
				Remediation:    "Categorize each system for confidentiality, integrity and availability impact",
				BusinessImpact: "Miscategorized systems receive controls mismatched to their risk",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
			{
				ID:             "fisma_control_baseline",
				Requirement:    "Select and implement NIST SP 800-53 control baselines appropriate to the categorization",
				Category:       "controls",
				Keywords:       []string{"800-53", "control baseline", "security controls"},
				Weight:         25,
				Remediation:    "Tailor and implement the 800-53 baseline matching each system's impact level",
				BusinessImpact: "Baseline gaps block authority to operate",
				Timeframe:      "4-8 months",
				Effort:         "High",
			},
			{
				ID:             "fisma_assessment",
				Requirement:    "Assess security controls for effectiveness and document results",
				Category:       "assessment",
				Keywords:       []string{"control assessment", "security assessment", "assessment report"},
				Weight:         15,
				Remediation:    "Run independent control assessments and track findings to closure",
				BusinessImpact: "Unassessed controls cannot support authorization decisions",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "fisma_authorization",
				Requirement:    "Obtain authorization to operate from a senior official based on residual risk",
				Category:       "authorization",
				Keywords:       []string{"authorization to operate", "ato", "authorizing official"},
				Weight:         15,
				Remediation:    "Assemble authorization packages and obtain explicit risk acceptance",
				BusinessImpact: "Operating without an ATO is itself a reportable violation",
				Timeframe:      "2-4 months",
				Effort:         "Medium",
			},
			{
				ID:             "fisma_continuous_monitoring",
				Requirement:    "Continuously monitor controls, configurations and vulnerabilities",
				Category:       "monitoring",
				Keywords:       []string{"continuous monitoring", "ongoing assessment", "configuration monitoring"},
				Weight:         15,
				Remediation:    "Automate control and configuration monitoring feeding the risk posture dashboard",
				BusinessImpact: "Point-in-time compliance decays within months",
				Timeframe:      "3-6 months",
				Effort:         "High",
			},
			{
				ID:             "fisma_poam",
				Requirement:    "Maintain plans of action and milestones for known weaknesses",
				Category:       "remediation",
				Keywords:       []string{"plan of action", "poa&m", "milestones"},
				Weight:         10,
				Remediation:    "Track every weakness in a POA&M with owners, resources and completion dates",
				BusinessImpact: "Untracked weaknesses resurface in every audit cycle",
				Timeframe:      "1-2 months",
				Effort:         "Low",
			},
			{
				ID:             "fisma_incident_reporting",
				Requirement:    "Report security incidents to US-CERT within mandated timeframes",
				Category:       "incident reporting",
				Keywords:       []string{"us-cert", "incident reporting", "report incidents"},
				Weight:         5,
				Remediation:    "Wire incident response procedures to US-CERT reporting with required timelines",
				BusinessImpact: "Unreported federal incidents carry agency-level consequences",
				Timeframe:      "1 month",
				Effort:         "Low",
			},
		},
	}
}
