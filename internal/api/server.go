// Package api serves the recruiter-facing web application.
package api

import (
	"encoding/json"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/sravani557/quantum-recruiter/internal/auth"
	"github.com/sravani557/quantum-recruiter/internal/config"
	"github.com/sravani557/quantum-recruiter/internal/ingestion"
	"github.com/sravani557/quantum-recruiter/internal/outreach"
	"github.com/sravani557/quantum-recruiter/internal/ranking"
	"github.com/sravani557/quantum-recruiter/internal/session"
	"github.com/sravani557/quantum-recruiter/web"
)

const sessionCookie = "qr_session"

// Server handles HTTP requests.
type Server struct {
	cfg        *config.Config
	logger     *zap.Logger
	sessions   *session.Store
	recruiters *auth.Directory
	google     *auth.GoogleAuth
	pipeline   *ranking.Pipeline
	files      *ingestion.FileHandler
	extractor  *ingestion.Extractor
	mailer     *outreach.Mailer
	templates  *template.Template
}

// NewServer wires the application together.
func NewServer(cfg *config.Config, logger *zap.Logger, pipeline *ranking.Pipeline, mailer *outreach.Mailer) (*Server, error) {
	templates, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	recruiters := auth.NewDirectory(map[string]auth.Recruiter{
		cfg.AdminEmail: {Name: cfg.AdminName, Password: cfg.AdminPassword},
	})

	return &Server{
		cfg:        cfg,
		logger:     logger,
		sessions:   session.NewStore(),
		recruiters: recruiters,
		google:     auth.NewGoogleAuth(cfg.OAuth.ClientID, cfg.OAuth.ClientSecret, cfg.OAuth.RedirectURL),
		pipeline:   pipeline,
		files:      ingestion.NewFileHandler(cfg.UploadsDir),
		extractor:  ingestion.NewExtractor(logger),
		mailer:     mailer,
		templates:  templates,
	}, nil
}

// Router returns the HTTP router.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /logout", s.handleLogout)
	mux.HandleFunc("GET /google-login", s.handleGoogleLogin)
	mux.HandleFunc("GET /google-auth-callback", s.handleGoogleCallback)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /dashboard", s.requireLogin(s.handleDashboard))
	mux.HandleFunc("GET /search", s.requireLogin(s.handleSearchPage))
	mux.HandleFunc("POST /search", s.requireLogin(s.handleSearch))
	mux.HandleFunc("GET /results", s.requireLogin(s.handleResults))
	mux.HandleFunc("GET /scorecard/{id}", s.requireLogin(s.handleScorecard))
	mux.HandleFunc("GET /export", s.requireLogin(s.handleExport))
	mux.HandleFunc("GET /api/candidate-details/{id}", s.requireLogin(s.handleCandidateDetails))
	mux.HandleFunc("POST /api/generate-email", s.requireLogin(s.handleGenerateEmail))
	mux.HandleFunc("POST /api/send-email", s.requireLogin(s.handleSendEmail))

	return s.loggingMiddleware(mux)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// currentSession returns the session for the request cookie, creating an
// anonymous one (and setting the cookie) when absent.
func (s *Server) currentSession(w http.ResponseWriter, r *http.Request) *session.Session {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := s.sessions.Get(cookie.Value); ok {
			return sess
		}
	}

	sess := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// requireLogin redirects anonymous sessions to the login page for page
// requests and answers 401 JSON for API requests.
func (s *Server) requireLogin(next func(http.ResponseWriter, *http.Request, *session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.currentSession(w, r)
		if !sess.Authenticated() {
			if isAPIRequest(r) {
				s.respondJSON(w, http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"message": "login required",
				})
				return
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r, sess)
	}
}

func isAPIRequest(r *http.Request) bool {
	return len(r.URL.Path) >= 5 && r.URL.Path[:5] == "/api/"
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("failed to render template", zap.String("template", name), zap.Error(err))
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode json response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
		)
		next.ServeHTTP(w, r)
	})
}
