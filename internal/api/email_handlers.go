package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/sravani557/quantum-recruiter/internal/outreach"
	"github.com/sravani557/quantum-recruiter/internal/session"
)

type generateEmailRequest struct {
	CandidateName  string   `json:"candidate_name"`
	CandidateEmail string   `json:"candidate_email"`
	Score          int      `json:"score"`
	Experience     string   `json:"experience"`
	MatchedSkills  []string `json:"matched_skills"`
}

func (s *Server) handleGenerateEmail(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req generateEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	invite := outreach.GenerateInvite(outreach.InviteParams{
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		Score:          req.Score,
		Experience:     req.Experience,
		MatchedSkills:  req.MatchedSkills,
		RecruiterName:  sess.RecruiterName,
	})

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"email_content":   invite.Body,
		"candidate_email": invite.To,
		"subject":         invite.Subject,
	})
}

type sendEmailRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

func (s *Server) handleSendEmail(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req sendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	invite := outreach.Invite{To: req.Email, Subject: req.Subject, Body: req.Content}
	if err := s.mailer.Send(sess.RecruiterEmail, invite); err != nil {
		s.logger.Warn("failed to send email", zap.String("to", req.Email), zap.Error(err))
		s.respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": fmt.Sprintf("Failed to send email: %v", err),
		})
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Email sent successfully to %s", req.Email),
	})
}
