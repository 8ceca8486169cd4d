package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sravani557/quantum-recruiter/internal/export"
	"github.com/sravani557/quantum-recruiter/internal/ingestion"
	"github.com/sravani557/quantum-recruiter/internal/models"
	"github.com/sravani557/quantum-recruiter/internal/ranking"
	"github.com/sravani557/quantum-recruiter/internal/session"
)

const maxUploadBytes = 32 << 20 // 32 MB

func (s *Server) handleSearchPage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	s.render(w, "search.html", map[string]interface{}{
		"RecruiterName": sess.RecruiterName,
	})
}

// handleSearch runs one ranking batch: save uploads, extract text, rank, and
// store the result on the session, replacing any previous run.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}

	jobDescription := strings.TrimSpace(r.FormValue("job_description"))
	if jobDescription == "" {
		s.respondError(w, http.StatusBadRequest, "job_description is required")
		return
	}

	uploads := r.MultipartForm.File["resumes"]
	if len(uploads) == 0 {
		s.respondError(w, http.StatusBadRequest, "no resumes uploaded")
		return
	}

	var docs []ranking.Document
	for _, header := range uploads {
		if !ingestion.AllowedFile(header.Filename) {
			s.logger.Info("skipping unsupported file type", zap.String("file", header.Filename))
			continue
		}

		file, err := header.Open()
		if err != nil {
			s.logger.Warn("failed to open upload", zap.String("file", header.Filename), zap.Error(err))
			continue
		}

		path, err := s.files.SaveUpload(header.Filename, file)
		file.Close()
		if err != nil {
			s.logger.Warn("failed to save upload", zap.String("file", header.Filename), zap.Error(err))
			continue
		}

		docs = append(docs, ranking.Document{
			Filename: header.Filename,
			Text:     s.extractor.ExtractText(path, header.Filename),
		})
	}

	if len(docs) == 0 {
		s.respondError(w, http.StatusBadRequest, "no supported resumes uploaded")
		return
	}

	results := s.pipeline.Rank(r.Context(), jobDescription, docs)
	s.sessions.SetResults(sess.Token, results)

	http.Redirect(w, r, "/results", http.StatusSeeOther)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	results, ok := s.sessions.Results(sess.Token)
	if !ok {
		results = &models.SearchResults{
			JobDescription: "No search performed yet",
			Candidates:     []models.Candidate{},
		}
	}
	s.render(w, "results.html", results)
}

// handleScorecard shows one candidate's detail page. Lookup is by unique id
// with a display-name fallback; names are not unique, first match wins.
func (s *Server) handleScorecard(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	key := r.PathValue("id")

	candidate, ok := s.sessions.CandidateByID(sess.Token, key)
	if !ok {
		candidate, ok = s.sessions.CandidateByName(sess.Token, key)
	}
	if !ok {
		http.Redirect(w, r, "/results", http.StatusFound)
		return
	}

	results, _ := s.sessions.Results(sess.Token)
	s.render(w, "scorecard.html", map[string]interface{}{
		"Candidate":      candidate,
		"JobDescription": results.JobDescription,
	})
}

func (s *Server) handleCandidateDetails(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	key := r.PathValue("id")

	candidate, ok := s.sessions.CandidateByID(sess.Token, key)
	if !ok {
		candidate, ok = s.sessions.CandidateByName(sess.Token, key)
	}
	if !ok {
		s.respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "Candidate not found",
		})
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"candidate": candidate,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	results, ok := s.sessions.Results(sess.Token)
	if !ok {
		s.respondError(w, http.StatusNotFound, "no search results to export")
		return
	}

	filename := fmt.Sprintf("quantum-search-%s.xlsx", time.Now().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteReport(w, results); err != nil {
		s.logger.Error("failed to export results", zap.Error(err))
	}
}
