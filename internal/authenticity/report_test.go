package authenticity

import (
	"reflect"
	"testing"

	"github.com/sravani557/quantum-recruiter/internal/models"
)

func TestDetectEmptyText(t *testing.T) {
	report := Detect("")

	if len(report.RedFlags) != 0 || len(report.YellowFlags) != 0 {
		t.Errorf("flags = %v / %v, want none", report.RedFlags, report.YellowFlags)
	}
	if report.ConfidenceScore != 100 {
		t.Errorf("ConfidenceScore = %d, want 100", report.ConfidenceScore)
	}
	if report.RiskLevel != models.RiskLow {
		t.Errorf("RiskLevel = %q, want %q", report.RiskLevel, models.RiskLow)
	}
	if report.OverallVerdict != models.VerdictAuthentic {
		t.Errorf("OverallVerdict = %q, want %q", report.OverallVerdict, models.VerdictAuthentic)
	}
	if report.IsSuspicious {
		t.Error("IsSuspicious = true, want false")
	}
	if !reflect.DeepEqual(report.VerificationSuggestions, []string{referenceCheckSuggestion}) {
		t.Errorf("VerificationSuggestions = %v, want reference check only", report.VerificationSuggestions)
	}
}

func TestDetectCleanResume(t *testing.T) {
	resume := "Python, AWS, Docker, 5 years experience. " +
		"Bachelor of Science from State University. Software Engineer, 2018 - present."

	report := Detect(resume)

	if len(report.RedFlags) != 0 || len(report.YellowFlags) != 0 {
		t.Errorf("flags = %v / %v, want none", report.RedFlags, report.YellowFlags)
	}
	if report.ConfidenceScore != 100 {
		t.Errorf("ConfidenceScore = %d, want 100", report.ConfidenceScore)
	}
	if report.RiskLevel != models.RiskLow {
		t.Errorf("RiskLevel = %q, want %q", report.RiskLevel, models.RiskLow)
	}
}

func TestDetectYellowOnly(t *testing.T) {
	report := Detect("University researcher in machine learning")

	if len(report.RedFlags) != 0 {
		t.Errorf("RedFlags = %v, want none", report.RedFlags)
	}
	if len(report.YellowFlags) != 1 {
		t.Fatalf("YellowFlags = %v, want one", report.YellowFlags)
	}
	if report.RiskLevel != models.RiskMedium {
		t.Errorf("RiskLevel = %q, want %q", report.RiskLevel, models.RiskMedium)
	}
	if report.OverallVerdict != models.VerdictModerateRisk {
		t.Errorf("OverallVerdict = %q, want %q", report.OverallVerdict, models.VerdictModerateRisk)
	}
	if report.ConfidenceScore != 90 {
		t.Errorf("ConfidenceScore = %d, want 90", report.ConfidenceScore)
	}
	if report.IsSuspicious {
		t.Error("IsSuspicious = true, want false")
	}
	if !reflect.DeepEqual(report.VerificationSuggestions, []string{referenceCheckSuggestion}) {
		t.Errorf("VerificationSuggestions = %v, want reference check only", report.VerificationSuggestions)
	}
}

func TestDetectSingleRedFlag(t *testing.T) {
	report := Detect("Worked at Google on various projects")

	if len(report.RedFlags) != 1 {
		t.Fatalf("RedFlags = %v, want one", report.RedFlags)
	}
	if report.RiskLevel != models.RiskHigh {
		t.Errorf("RiskLevel = %q, want %q", report.RiskLevel, models.RiskHigh)
	}
	if report.OverallVerdict != models.VerdictSuspicious {
		t.Errorf("OverallVerdict = %q, want %q", report.OverallVerdict, models.VerdictSuspicious)
	}
	if !report.IsSuspicious {
		t.Error("IsSuspicious = false, want true")
	}
	if report.ConfidenceScore != 70 {
		t.Errorf("ConfidenceScore = %d, want 70", report.ConfidenceScore)
	}
	if !reflect.DeepEqual(report.VerificationSuggestions, redFlagSuggestions) {
		t.Errorf("VerificationSuggestions = %v, want red-flag set", report.VerificationSuggestions)
	}
}

func TestDetectCritical(t *testing.T) {
	report := Detect("Joined Google in 1950, contract runs to 2030")

	if len(report.RedFlags) < 4 {
		t.Fatalf("RedFlags = %v, want at least four", report.RedFlags)
	}
	if report.RiskLevel != models.RiskCritical {
		t.Errorf("RiskLevel = %q, want %q", report.RiskLevel, models.RiskCritical)
	}
	if report.OverallVerdict != models.VerdictHighlySus {
		t.Errorf("OverallVerdict = %q, want %q", report.OverallVerdict, models.VerdictHighlySus)
	}
	if report.ConfidenceScore != 0 {
		t.Errorf("ConfidenceScore = %d, want 0", report.ConfidenceScore)
	}
	if !report.IsSuspicious {
		t.Error("IsSuspicious = false, want true")
	}
}

func TestConfidenceFor(t *testing.T) {
	tests := []struct {
		riskScore int
		want      int
	}{
		{0, 100},
		{1, 90},
		{3, 70},
		{5, 50},
		{10, 0},
		{12, 0},
	}
	for _, tt := range tests {
		if got := confidenceFor(tt.riskScore); got != tt.want {
			t.Errorf("confidenceFor(%d) = %d, want %d", tt.riskScore, got, tt.want)
		}
	}

	prev := 100
	for score := 0; score <= 15; score++ {
		got := confidenceFor(score)
		if got > prev {
			t.Errorf("confidenceFor(%d) = %d, rose above confidenceFor(%d) = %d", score, got, score-1, prev)
		}
		prev = got
	}
}
