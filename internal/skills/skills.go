package skills

import (
	"strings"

	"github.com/sravani557/quantum-recruiter/internal/models"
)

// vocabulary is the fixed set of skill terms the extractor knows about.
// Matching is exact substring containment, case-folded. No fuzzy matching.
var vocabulary = []string{
	"python", "javascript", "java", "sql", "react", "node.js", "flask", "django",
	"aws", "docker", "kubernetes", "git", "devops", "leadership", "communication",
}

// companyValues is the fixed set of value terms used for cultural-fit scoring.
var companyValues = []string{"innovation", "teamwork", "growth", "quality", "leadership"}

// DefaultCulturalFitScore is used when the job description names no value terms.
const DefaultCulturalFitScore = 70

// Extract returns every vocabulary term contained in text, in vocabulary
// order. The empty string yields an empty set.
func Extract(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(vocabulary))
	for _, skill := range vocabulary {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// AnalyzeGaps compares the skills required by the job description with the
// skills present in the resume. The match rate is the share of required
// skills the candidate has, or 0 when the job names none.
func AnalyzeGaps(jobDescription, resumeText string) models.SkillGapAnalysis {
	required := Extract(jobDescription)
	got := Extract(resumeText)

	gotSet := make(map[string]bool, len(got))
	for _, s := range got {
		gotSet[s] = true
	}

	missing := make([]string, 0, len(required))
	strong := make([]string, 0, len(required))
	for _, s := range required {
		if gotSet[s] {
			strong = append(strong, s)
		} else {
			missing = append(missing, s)
		}
	}

	matchRate := 0.0
	if len(required) > 0 {
		matchRate = float64(len(strong)) / float64(len(required)) * 100
	}

	return models.SkillGapAnalysis{
		MissingSkills:  missing,
		StrongSkills:   strong,
		SkillMatchRate: matchRate,
	}
}

// CulturalFit scores the overlap between value terms in the job description
// and in the resume. SharedValues is always a subset of both sides.
func CulturalFit(jobDescription, resumeText string) models.CulturalFit {
	jobLower := strings.ToLower(jobDescription)
	resumeLower := strings.ToLower(resumeText)

	shared := make([]string, 0, len(companyValues))
	companyCount := 0
	for _, v := range companyValues {
		inJob := strings.Contains(jobLower, v)
		if inJob {
			companyCount++
		}
		if inJob && strings.Contains(resumeLower, v) {
			shared = append(shared, v)
		}
	}

	score := float64(DefaultCulturalFitScore)
	if companyCount > 0 {
		score = float64(len(shared)) / float64(companyCount) * 100
	}

	return models.CulturalFit{Score: score, SharedValues: shared}
}
