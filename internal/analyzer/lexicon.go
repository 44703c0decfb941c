// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package analyzer

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/parse-guard/models"
)

type topic struct {
	name    string
	pattern *regexp.Regexp
}

type riskIndicator struct {
	label   string
	action  string
	weight  float64
	pattern *regexp.Regexp
}

// words compiles a case-insensitive, word-bounded alternation of terms.
func words(terms ...string) *regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

var topics = []topic{
	{"GDPR", words("gdpr", "general data protection regulation", "data subject", "data protection officer")},
	{"HIPAA", words("hipaa", "protected health information", "phi", "health records")},
	{"SOX", words("sox", "sarbanes-oxley", "sarbanes oxley", "financial reporting controls")},
	{"PCI DSS", words("pci dss", "pci-dss", "pci", "cardholder data", "card data")},
	{"ISO 27001", words("iso 27001", "iso/iec 27001", "isms")},
	{"SOC 2", words("soc 2", "soc2", "trust services criteria")},
	{"AML/KYC", words("aml", "kyc", "anti-money laundering", "know your customer", "sanctions screening")},
	{"Data retention", words("data retention", "retention period", "retention policy", "record retention")},
	{"Access control", words("access control", "least privilege", "mfa", "multi-factor", "role-based access", "access review")},
	{"Incident response", words("incident response", "security incident", "breach notification")},
	{"Vendor management", words("vendor", "vendors", "third-party", "third party", "supplier", "subprocessor")},
	{"Privacy", words("privacy", "personal data", "pii", "consent", "personally identifiable")},
}

var riskIndicators = []riskIndicator{
	{"Possible data breach", "Review breach response and notification duties", 1.0, words("breach", "breaches", "data leak", "leaked")},
	{"Litigation exposure", "Assess legal exposure with counsel", 0.9, words("lawsuit", "litigation", "legal action")},
	{"Non-compliance reported", "Close identified compliance gaps", 0.8, words("non-compliance", "noncompliance", "non-compliant", "not compliant")},
	{"Regulatory violation", "Remediate the reported violation", 0.8, words("violation", "violations", "violated")},
	{"Penalties mentioned", "Quantify penalty exposure", 0.7, words("penalty", "penalties", "sanction", "sanctions")},
	{"Unencrypted data", "Enforce encryption at rest and in transit", 0.7, words("unencrypted", "plaintext", "plain text", "not encrypted")},
	{"Fines mentioned", "Budget for potential regulatory fines", 0.6, words("fine", "fines", "fined")},
	{"Open audit findings", "Resolve open audit findings", 0.6, words("audit finding", "audit findings", "material weakness")},
	{"Overdue obligations", "Prioritise overdue obligations", 0.5, words("overdue", "past due", "lapsed")},
	{"Expired controls or certificates", "Renew expired controls and certificates", 0.4, words("expired", "expiring", "out of date", "outdated")},
	{"Upcoming deadline", "Plan work ahead of the deadline", 0.3, words("deadline", "deadlines", "due date")},
}

// levelForWeight maps an indicator weight to the risk level of the item it
// suggests.
func levelForWeight(w float64) models.RiskLevel {
	switch {
	case w >= 0.75:
		return models.RiskHigh
	case w >= 0.45:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// levelForScore maps an assessment score in [0,1] to a risk level.
func levelForScore(score float64) models.RiskLevel {
	switch {
	case score >= 0.66:
		return models.RiskHigh
	case score >= 0.33:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

var recommendations = map[models.RiskLevel][]string{
	models.RiskHigh: {
		"Assign an owner and start remediation immediately",
		"Escalate to the compliance officer",
		"Document remediation steps and keep evidence for auditors",
		"Re-assess within 7 days",
	},
	models.RiskMedium: {
		"Schedule a review within 30 days",
		"Track progress in the compliance register",
		"Confirm controls with the responsible team",
	},
	models.RiskLow: {
		"Monitor during the next periodic review",
		"Keep supporting documentation up to date",
	},
}

// Recommendations returns a copy of the fixed recommendations for level.
func Recommendations(level models.RiskLevel) []string {
	src := recommendations[level]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
