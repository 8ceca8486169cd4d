// Package insight combines skill-gap analysis, cultural fit and authenticity
// results into a single hiring recommendation per candidate.
package insight

import (
	"math"

	"github.com/sravani557/quantum-recruiter/internal/authenticity"
	"github.com/sravani557/quantum-recruiter/internal/models"
	"github.com/sravani557/quantum-recruiter/internal/skills"
)

// Synthesize scores one resume against a job description. The overall score
// is the mean of skill match rate and cultural fit, discounted by the
// authenticity confidence.
func Synthesize(jobDescription, resumeText string) models.CandidateInsight {
	skillGaps := skills.AnalyzeGaps(jobDescription, resumeText)
	culturalFit := skills.CulturalFit(jobDescription, resumeText)
	fakeDetection := authenticity.Detect(resumeText)

	baseScore := (skillGaps.SkillMatchRate + culturalFit.Score) / 2
	authenticityFactor := float64(fakeDetection.ConfidenceScore) / 100
	overallScore := baseScore * authenticityFactor

	recommendation, priority := recommend(overallScore, fakeDetection.RiskLevel)

	return models.CandidateInsight{
		OverallScore:         overallScore,
		HiringRecommendation: recommendation,
		PriorityLevel:        priority,
		SkillGapAnalysis:     skillGaps,
		CulturalFit:          culturalFit,
		FakeResumeDetection:  fakeDetection,
	}
}

// recommend maps overall score and risk level to a recommendation and
// priority. Evaluated in order; first match wins.
func recommend(overallScore float64, riskLevel string) (string, string) {
	lowRisk := riskLevel == models.RiskLow || riskLevel == models.RiskMedium

	switch {
	case overallScore >= 80 && lowRisk:
		return models.RecommendStrongHire, models.PriorityHigh
	case overallScore >= 60:
		return models.RecommendPotentialHire, models.PriorityMedium
	case riskLevel == models.RiskHigh || riskLevel == models.RiskCritical:
		return models.RecommendVerify, models.PriorityHighRisk
	default:
		return models.RecommendConsiderLater, models.PriorityLow
	}
}

// PredictSuccess estimates the probability that a candidate succeeds in the
// role. Weighted 50% skill match, 30% cultural fit, 20% authenticity, capped
// at 95. Auxiliary metric only; not used for ranking.
func PredictSuccess(jobDescription, resumeText string) models.SuccessPrediction {
	skillMatch := skills.AnalyzeGaps(jobDescription, resumeText).SkillMatchRate / 100
	culturalFit := skills.CulturalFit(jobDescription, resumeText).Score / 100
	confidence := float64(authenticity.Detect(resumeText).ConfidenceScore) / 100

	base := skillMatch*0.5 + culturalFit*0.3 + confidence*0.2
	probability := math.Min(base*100, 95)
	probability = math.Round(probability*10) / 10

	level := "Low"
	switch {
	case probability > 75:
		level = "High"
	case probability > 50:
		level = "Medium"
	}

	return models.SuccessPrediction{
		SuccessProbability: probability,
		ConfidenceLevel:    level,
	}
}
