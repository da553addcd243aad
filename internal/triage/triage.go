package triage

import "strings"

// RiskLevel is the classifier's output category.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Duration buckets how long symptoms have been present, in days.
type Duration string

const (
	DurationUnderOne   Duration = "<1"
	DurationOneToThree Duration = "1-3"
	DurationOverThree  Duration = ">3"
)

// Severity is the caller's own rating of how bad the symptoms feel.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// ParseDuration maps a raw token to a Duration. Unrecognized or empty tokens
// fall back to the lowest bucket rather than failing; malformed client input
// is scored, not rejected.
func ParseDuration(raw string) Duration {
	switch Duration(raw) {
	case DurationOneToThree, DurationOverThree:
		return Duration(raw)
	default:
		return DurationUnderOne
	}
}

// ParseSeverity maps a raw token to a Severity with the same fallback policy
// as ParseDuration. Tokens are exact: only free-text keyword matching is
// case-insensitive.
func ParseSeverity(raw string) Severity {
	switch Severity(raw) {
	case SeverityModerate, SeveritySevere:
		return Severity(raw)
	default:
		return SeverityMild
	}
}

// Report is the transient input to the classifier.
type Report struct {
	Symptoms string
	Duration Duration
	Severity Severity
}

// Assessment is the classifier's deterministic output.
type Assessment struct {
	Level   RiskLevel
	Message string
	Score   int
}

// Keyword weights. Matching is case-insensitive substring containment, and
// every matching phrase contributes independently.
var (
	highKeywords   = []string{"chest pain", "shortness of breath", "breathing difficulty", "severe bleeding"}
	mediumKeywords = []string{"high fever", "vomiting", "dizziness", "continuous pain"}
	lowKeywords    = []string{"headache", "cough", "mild fever", "cold"}
)

const (
	highKeywordWeight   = 5
	mediumKeywordWeight = 3
	lowKeywordWeight    = 1

	highThreshold   = 9
	mediumThreshold = 4
)

var severityBonus = map[Severity]int{
	SeverityMild:     0,
	SeverityModerate: 2,
	SeveritySevere:   4,
}

var durationBonus = map[Duration]int{
	DurationUnderOne:   0,
	DurationOneToThree: 1,
	DurationOverThree:  2,
}

var riskMessages = map[RiskLevel]string{
	RiskHigh:   "Immediate medical attention recommended. Contact emergency services.",
	RiskMedium: "Consult a doctor soon and monitor your symptoms closely.",
	RiskLow:    "Symptoms appear mild. Rest, hydrate, and keep monitoring.",
}

// Assess maps a symptom report to a risk level and advisory message. It is
// pure and total: any free text and any bucket values produce a result.
func Assess(report Report) Assessment {
	text := strings.ToLower(report.Symptoms)

	score := 0
	for _, kw := range highKeywords {
		if strings.Contains(text, kw) {
			score += highKeywordWeight
		}
	}
	for _, kw := range mediumKeywords {
		if strings.Contains(text, kw) {
			score += mediumKeywordWeight
		}
	}
	for _, kw := range lowKeywords {
		if strings.Contains(text, kw) {
			score += lowKeywordWeight
		}
	}

	score += severityBonus[report.Severity]
	score += durationBonus[report.Duration]

	level := RiskLow
	switch {
	case score >= highThreshold:
		level = RiskHigh
	case score >= mediumThreshold:
		level = RiskMedium
	}

	return Assessment{Level: level, Message: riskMessages[level], Score: score}
}
