package authenticity

import (
	"github.com/sravani557/quantum-recruiter/internal/models"
)

// Flag weights and risk thresholds. A red flag weighs three times a yellow
// one; the thresholds below map the weighted total to a risk classification.
const (
	redFlagWeight = 3

	criticalThreshold = 5
	highThreshold     = 3
	mediumThreshold   = 1
)

// Verification suggestions emitted from fixed templates.
var redFlagSuggestions = []string{
	"Verify education and employment records",
	"Request official transcripts",
	"Conduct technical skill assessment",
}

const referenceCheckSuggestion = "Standard reference check recommended"

// Detect runs the full battery of checks over one resume and classifies the
// aggregate risk. The checks are independent and order-insensitive; timeline,
// education and company-role issues are red flags, the rest are yellow.
// Empty text yields zero flags and a "Likely Authentic" verdict.
func Detect(resumeText string) models.AuthenticityReport {
	red := make([]string, 0, 4)
	yellow := make([]string, 0, 4)

	red = append(red, CheckTimeline(resumeText)...)
	red = append(red, CheckEducation(resumeText)...)
	yellow = append(yellow, CheckSkillConsistency(resumeText)...)
	yellow = append(yellow, CheckWritingPatterns(resumeText)...)
	yellow = append(yellow, CheckOverqualification(resumeText)...)
	red = append(red, CheckCompanyRoles(resumeText)...)

	report := models.AuthenticityReport{
		RedFlags:    red,
		YellowFlags: yellow,
	}

	riskScore := redFlagWeight*len(red) + len(yellow)
	report.ConfidenceScore = confidenceFor(riskScore)

	switch {
	case riskScore >= criticalThreshold:
		report.RiskLevel = models.RiskCritical
		report.IsSuspicious = true
		report.OverallVerdict = models.VerdictHighlySus
	case riskScore >= highThreshold:
		report.RiskLevel = models.RiskHigh
		report.IsSuspicious = true
		report.OverallVerdict = models.VerdictSuspicious
	case riskScore >= mediumThreshold:
		report.RiskLevel = models.RiskMedium
		report.OverallVerdict = models.VerdictModerateRisk
	default:
		report.RiskLevel = models.RiskLow
		report.OverallVerdict = models.VerdictAuthentic
	}

	report.VerificationSuggestions = suggestionsFor(report)

	return report
}

// confidenceFor maps the weighted risk score to a 0-100 confidence value,
// monotonically non-increasing in the score.
func confidenceFor(riskScore int) int {
	penalty := riskScore * 10
	if penalty > 100 {
		penalty = 100
	}
	confidence := 100 - penalty
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}

func suggestionsFor(report models.AuthenticityReport) []string {
	suggestions := make([]string, 0, len(redFlagSuggestions)+1)
	if len(report.RedFlags) > 0 {
		suggestions = append(suggestions, redFlagSuggestions...)
	}
	if report.RiskLevel == models.RiskLow || report.RiskLevel == models.RiskMedium {
		suggestions = append(suggestions, referenceCheckSuggestion)
	}
	return suggestions
}
