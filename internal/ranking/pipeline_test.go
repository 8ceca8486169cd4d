package ranking

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/sravani557/quantum-recruiter/internal/models"
)

// fakeEmbedder returns canned vectors keyed by the exact input text; unknown
// text gets nil, mimicking a provider failure.
type fakeEmbedder struct {
	vectors map[string][]float32
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) []float32 {
	return f.vectors[text]
}

func TestRank(t *testing.T) {
	job := "Python developer"
	aliceText := "Python engineer, alice@corp.com, State University, 2019 - present"
	bobText := "Generalist consultant"
	carolText := "Generalist advisor"
	danText := "Unreadable scan"

	embedder := &fakeEmbedder{vectors: map[string][]float32{
		job:       {1, 0},
		aliceText: {1, 0},
		bobText:   {0.8, 0.6},
		carolText: {0.8, 0.6},
		// danText deliberately missing.
	}}
	pipeline := NewPipeline(embedder, zap.NewNop())

	results := pipeline.Rank(context.Background(), job, []Document{
		{Filename: "bob_jones.txt", Text: bobText},
		{Filename: "alice_smith.txt", Text: aliceText},
		{Filename: "carol_white.txt", Text: carolText},
		{Filename: "dan_brown.txt", Text: danText},
	})

	if results.TotalResumes != 4 {
		t.Fatalf("TotalResumes = %d, want 4", results.TotalResumes)
	}
	if results.JobDescription != job {
		t.Errorf("JobDescription = %q, want %q", results.JobDescription, job)
	}

	wantOrder := []struct {
		name   string
		score  int
		status string
	}{
		{"Alice Smith", 100, models.StatusPerfectMatch},
		{"Bob Jones", 80, models.StatusStrongMatch},
		{"Carol White", 80, models.StatusStrongMatch},
		{"Dan Brown", 0, models.StatusPartialMatch},
	}
	for i, want := range wantOrder {
		got := results.Candidates[i]
		if got.Name != want.name || got.Score != want.score || got.Status != want.status {
			t.Errorf("candidate[%d] = (%q, %d, %q), want (%q, %d, %q)",
				i, got.Name, got.Score, got.Status, want.name, want.score, want.status)
		}
	}

	if results.MatchedCandidates != 3 {
		t.Errorf("MatchedCandidates = %d, want 3", results.MatchedCandidates)
	}
	if results.Shortlisted != 1 {
		t.Errorf("Shortlisted = %d, want 1", results.Shortlisted)
	}

	seen := make(map[string]bool)
	for _, c := range results.Candidates {
		if c.ID == "" {
			t.Errorf("candidate %q has empty ID", c.Name)
		}
		if seen[c.ID] {
			t.Errorf("duplicate candidate ID %q", c.ID)
		}
		seen[c.ID] = true
	}

	alice := results.Candidates[0]
	if alice.Email != "alice@corp.com" {
		t.Errorf("alice email = %q, want alice@corp.com", alice.Email)
	}
	if alice.Experience != "3+ years" {
		t.Errorf("alice experience = %q, want 3+ years", alice.Experience)
	}
	if len(alice.MatchedKeywords) != 1 || alice.MatchedKeywords[0] != "python" {
		t.Errorf("alice matched keywords = %v, want [python]", alice.MatchedKeywords)
	}

	bob := results.Candidates[1]
	if bob.Email != "bob.jones@email.com" {
		t.Errorf("bob email = %q, want synthesized bob.jones@email.com", bob.Email)
	}

	dan := results.Candidates[3]
	if dan.Experience != "1-3 years" {
		t.Errorf("dan experience = %q, want 1-3 years", dan.Experience)
	}
	if dan.ResumeText != danText {
		t.Errorf("dan resume text = %q, want original text", dan.ResumeText)
	}
}

func TestRankEmptyBatch(t *testing.T) {
	pipeline := NewPipeline(&fakeEmbedder{}, zap.NewNop())

	results := pipeline.Rank(context.Background(), "any job", nil)

	if results.TotalResumes != 0 || results.MatchedCandidates != 0 || results.Shortlisted != 0 {
		t.Errorf("counts = %d/%d/%d, want 0/0/0",
			results.TotalResumes, results.MatchedCandidates, results.Shortlisted)
	}
	if len(results.Candidates) != 0 {
		t.Errorf("Candidates = %v, want empty", results.Candidates)
	}
}

func TestStatusForScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, models.StatusPerfectMatch},
		{85, models.StatusPerfectMatch},
		{84, models.StatusStrongMatch},
		{70, models.StatusStrongMatch},
		{69, models.StatusGoodMatch},
		{50, models.StatusGoodMatch},
		{49, models.StatusPartialMatch},
		{0, models.StatusPartialMatch},
	}
	for _, tt := range tests {
		if got := StatusForScore(tt.score); got != tt.want {
			t.Errorf("StatusForScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"john_doe-resume.pdf", "John Doe Resume"},
		{"resume.pdf", "Resume"},
		{"/uploads/jane-doe.txt", "Jane Doe"},
		{"ANNA__LEE.docx", "Anna Lee"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.filename); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name        string
		resume      string
		displayName string
		want        string
	}{
		{"Email present", "Contact: jane.d@corp.example.org for details", "Jane Doe", "jane.d@corp.example.org"},
		{"Synthesized", "No contact details here", "Jane Doe", "jane.doe@email.com"},
		{"First of several", "a@x.com then b@y.com", "Jane Doe", "a@x.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractEmail(tt.resume, tt.displayName); got != tt.want {
				t.Errorf("ExtractEmail = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExperienceBucket(t *testing.T) {
	if got := experienceBucket(71); got != "3+ years" {
		t.Errorf("experienceBucket(71) = %q, want 3+ years", got)
	}
	if got := experienceBucket(70); got != "1-3 years" {
		t.Errorf("experienceBucket(70) = %q, want 1-3 years", got)
	}
}
