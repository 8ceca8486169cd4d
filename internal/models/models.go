package models

// Risk levels assigned by the authenticity engine.
const (
	RiskLow      = "Low"
	RiskMedium   = "Medium"
	RiskHigh     = "High"
	RiskCritical = "Critical"
)

// Overall verdicts paired with the risk levels above.
const (
	VerdictAuthentic    = "Likely Authentic"
	VerdictModerateRisk = "Moderate Risk"
	VerdictSuspicious   = "Suspicious"
	VerdictHighlySus    = "Highly Suspicious"
)

// Hiring recommendations and priorities produced by the insight synthesizer.
const (
	RecommendStrongHire    = "STRONG HIRE"
	RecommendPotentialHire = "POTENTIAL HIRE"
	RecommendVerify        = "VERIFY AUTHENTICITY"
	RecommendConsiderLater = "CONSIDER LATER"

	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
	PriorityHighRisk = "High Risk"
)

// Match statuses bucketed from the similarity percentage.
const (
	StatusPerfectMatch = "Perfect Match"
	StatusStrongMatch  = "Strong Match"
	StatusGoodMatch    = "Good Match"
	StatusPartialMatch = "Partial Match"
)

// SkillGapAnalysis compares the skills required by the job description
// against the skills found in a resume.
type SkillGapAnalysis struct {
	MissingSkills  []string `json:"missing_skills"`
	StrongSkills   []string `json:"strong_skills"`
	SkillMatchRate float64  `json:"skill_match_rate"`
}

// CulturalFit captures the overlap between company values named in the job
// description and values found in the resume.
type CulturalFit struct {
	Score        float64  `json:"score"`
	SharedValues []string `json:"shared_values"`
}

// AuthenticityReport is the aggregated output of the fake-resume checks.
type AuthenticityReport struct {
	IsSuspicious            bool     `json:"is_suspicious"`
	ConfidenceScore         int      `json:"confidence_score"`
	RedFlags                []string `json:"red_flags"`
	YellowFlags             []string `json:"yellow_flags"`
	VerificationSuggestions []string `json:"verification_suggestions"`
	RiskLevel               string   `json:"risk_level"`
	OverallVerdict          string   `json:"overall_verdict"`
}

// CandidateInsight combines skill gaps, cultural fit and authenticity into a
// single recommendation.
type CandidateInsight struct {
	OverallScore         float64            `json:"overall_score"`
	HiringRecommendation string             `json:"hiring_recommendation"`
	PriorityLevel        string             `json:"priority_level"`
	SkillGapAnalysis     SkillGapAnalysis   `json:"skill_gap_analysis"`
	CulturalFit          CulturalFit        `json:"cultural_fit"`
	FakeResumeDetection  AuthenticityReport `json:"fake_resume_detection"`
}

// SuccessPrediction is an auxiliary estimator, independent of the hiring
// recommendation and not used for ranking.
type SuccessPrediction struct {
	SuccessProbability float64 `json:"success_probability"`
	ConfidenceLevel    string  `json:"confidence_level"`
}

// Candidate is one scored resume within a ranking run.
type Candidate struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Filename        string             `json:"filename"`
	Score           int                `json:"score"`
	Status          string             `json:"status"`
	MatchedKeywords []string           `json:"matched_keywords"`
	Experience      string             `json:"experience"`
	AIInsights      CandidateInsight   `json:"ai_insights"`
	FakeDetection   AuthenticityReport `json:"fake_detection"`
	ResumeText      string             `json:"resume_text"`
}

// SearchResults is the outcome of one ranking run. Candidates are ordered by
// score descending; the counters are derived from that ordering.
type SearchResults struct {
	JobDescription    string      `json:"job_description"`
	TotalResumes      int         `json:"total_resumes"`
	MatchedCandidates int         `json:"matched_candidates"`
	Shortlisted       int         `json:"shortlisted"`
	Candidates        []Candidate `json:"candidates"`
}
