// Package outreach drafts and sends interview-invitation emails for scored
// candidates.
package outreach

import (
	"fmt"
	"strings"
)

// InviteParams feed the invitation template. Zero values fall back to the
// generic wording.
type InviteParams struct {
	CandidateName  string
	CandidateEmail string
	Score          int
	Experience     string
	MatchedSkills  []string
	RecruiterName  string
}

// Invite is a drafted email, ready for review before sending.
type Invite struct {
	To      string
	Subject string
	Body    string
}

// GenerateInvite renders the invitation from fixed score-banded templates:
// one variant for scores of 90 and up, one for 75 and up, one for the rest.
func GenerateInvite(p InviteParams) Invite {
	name := p.CandidateName
	if name == "" {
		name = "Candidate"
	}
	experience := p.Experience
	if experience == "" {
		experience = "3+ years"
	}
	recruiter := p.RecruiterName
	if recruiter == "" {
		recruiter = "Recruitment Team"
	}

	skillsText := "relevant technical skills"
	if len(p.MatchedSkills) > 0 {
		top := p.MatchedSkills
		if len(top) > 3 {
			top = top[:3]
		}
		skillsText = strings.Join(top, ", ")
	}

	var greeting, interest string
	switch {
	case p.Score >= 90:
		greeting = "We are extremely impressed with your exceptional profile"
		interest = "strongly believe you would be an outstanding addition"
	case p.Score >= 75:
		greeting = "We were very impressed with your strong profile"
		interest = "believe you would be a great fit"
	default:
		greeting = "We found your profile interesting"
		interest = "think you could be a good match"
	}

	body := fmt.Sprintf(`Dear %s,

%s and would like to invite you for an interview opportunity.

Your resume achieved an impressive %d%% match with our requirements, particularly highlighting your expertise in %s with %s of relevant experience.

We %s for our team and would love to discuss this opportunity in more detail.

Interview Details:
- Format: Initial screening call (30 minutes)
- Next Steps: Technical assessment & team interview
- Timeline: We're looking to fill this position within 2-3 weeks

Would you be available for a conversation in the coming week? Please share your preferred time slots and we'll schedule accordingly.

Looking forward to connecting with you!

Best regards,
%s
Quantum Recruitment System

---
This is an automated invitation. If you have any questions, please reply to this email.`,
		name, greeting, p.Score, skillsText, experience, interest, recruiter)

	return Invite{
		To:      p.CandidateEmail,
		Subject: fmt.Sprintf("Interview Invitation - %d%% Match | Exciting Opportunity", p.Score),
		Body:    body,
	}
}
