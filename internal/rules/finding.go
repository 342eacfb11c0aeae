package rules

// Severity classifies a finding.
type Severity string

const (
	SeverityPass Severity = "pass"
	SeverityWarn Severity = "warn"
	SeverityFail Severity = "fail"
)

// Finding is one rule verdict with an explanatory message and an optional
// page reference (0 means the finding applies to the section or document
// as a whole). Findings are immutable value records; they are never
// mutated after creation.
type Finding struct {
	Rule     string   `json:"rule"`
	Section  string   `json:"section"`
	Page     int      `json:"page,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Fail builds a failing finding.
func Fail(rule, sectionName string, page int, message string) Finding {
	return Finding{Rule: rule, Section: sectionName, Page: page, Severity: SeverityFail, Message: message}
}

// Warn builds an informational finding.
func Warn(rule, sectionName string, page int, message string) Finding {
	return Finding{Rule: rule, Section: sectionName, Page: page, Severity: SeverityWarn, Message: message}
}

// Pass builds an explicit pass finding for callers that want one.
func Pass(rule, sectionName string) Finding {
	return Finding{Rule: rule, Section: sectionName, Severity: SeverityPass, Message: "ok"}
}
