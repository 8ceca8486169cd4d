// Package ranking orchestrates the scoring of a batch of resumes against a
// single job description.
package ranking

import (
	"context"
	"math"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sravani557/quantum-recruiter/internal/embedding"
	"github.com/sravani557/quantum-recruiter/internal/insight"
	"github.com/sravani557/quantum-recruiter/internal/models"
)

// Embedder produces an embedding vector for text, or nil when the text is
// empty or the provider fails.
type Embedder interface {
	Embed(ctx context.Context, text string) []float32
}

// Document is one extracted resume entering a ranking run.
type Document struct {
	Filename string
	Text     string
}

// Similarity-percentage thresholds for the match status buckets.
const (
	perfectThreshold = 85
	strongThreshold  = 70
	goodThreshold    = 50
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

var titleCaser = cases.Title(language.English)

// Pipeline ranks a batch of resumes. Stateless; one Rank call is one run.
type Pipeline struct {
	embedder Embedder
	logger   *zap.Logger
}

func NewPipeline(embedder Embedder, logger *zap.Logger) *Pipeline {
	return &Pipeline{embedder: embedder, logger: logger}
}

// Rank scores every document against the job description and returns the
// candidates ordered by score descending, ties keeping input order. The job
// embedding is computed once and shared across the batch; a document whose
// embedding is absent contributes a zero score but never aborts the run.
func (p *Pipeline) Rank(ctx context.Context, jobDescription string, docs []Document) *models.SearchResults {
	p.logger.Info("starting resume ranking", zap.Int("resumes", len(docs)))

	jobVector := p.embedder.Embed(ctx, jobDescription)
	if jobVector == nil {
		p.logger.Warn("job description embedding unavailable, similarity scores will be zero")
	}

	candidates := make([]models.Candidate, 0, len(docs))
	for i, doc := range docs {
		candidate := p.scoreDocument(ctx, jobDescription, jobVector, doc)
		p.logger.Info("scored resume",
			zap.Int("index", i+1),
			zap.Int("total", len(docs)),
			zap.String("file", doc.Filename),
			zap.Int("score", candidate.Score),
			zap.String("status", candidate.Status),
		)
		candidates = append(candidates, candidate)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	matched, shortlisted := 0, 0
	for _, c := range candidates {
		if c.Score >= goodThreshold {
			matched++
		}
		if c.Score >= perfectThreshold {
			shortlisted++
		}
	}

	p.logger.Info("ranking complete",
		zap.Int("candidates", len(candidates)),
		zap.Int("matched", matched),
		zap.Int("shortlisted", shortlisted),
	)

	return &models.SearchResults{
		JobDescription:    jobDescription,
		TotalResumes:      len(candidates),
		MatchedCandidates: matched,
		Shortlisted:       shortlisted,
		Candidates:        candidates,
	}
}

func (p *Pipeline) scoreDocument(ctx context.Context, jobDescription string, jobVector []float32, doc Document) models.Candidate {
	resumeVector := p.embedder.Embed(ctx, doc.Text)
	similarity := embedding.Cosine(jobVector, resumeVector)
	score := int(math.Round(similarity * 100))

	name := DisplayName(doc.Filename)
	insights := insight.Synthesize(jobDescription, doc.Text)

	return models.Candidate{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           ExtractEmail(doc.Text, name),
		Filename:        doc.Filename,
		Score:           score,
		Status:          StatusForScore(score),
		MatchedKeywords: insights.SkillGapAnalysis.StrongSkills,
		Experience:      experienceBucket(score),
		AIInsights:      insights,
		FakeDetection:   insights.FakeResumeDetection,
		ResumeText:      doc.Text,
	}
}

// StatusForScore buckets a similarity percentage into a match status.
func StatusForScore(score int) string {
	switch {
	case score >= perfectThreshold:
		return models.StatusPerfectMatch
	case score >= strongThreshold:
		return models.StatusStrongMatch
	case score >= goodThreshold:
		return models.StatusGoodMatch
	default:
		return models.StatusPartialMatch
	}
}

// DisplayName derives a candidate name from an uploaded filename: extension
// stripped, separators replaced with spaces, title-cased.
func DisplayName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return titleCaser.String(strings.Join(strings.Fields(base), " "))
}

// ExtractEmail returns the first email address found in the resume text, or
// synthesizes one from the display name when none is present.
func ExtractEmail(resumeText, displayName string) string {
	if match := emailPattern.FindString(resumeText); match != "" {
		return match
	}
	return strings.ReplaceAll(strings.ToLower(displayName), " ", ".") + "@email.com"
}

func experienceBucket(score int) string {
	if score > strongThreshold {
		return "3+ years"
	}
	return "1-3 years"
}
