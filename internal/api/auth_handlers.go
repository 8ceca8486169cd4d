package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sravani557/quantum-recruiter/internal/auth"
	"github.com/sravani557/quantum-recruiter/internal/session"
)

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess.Authenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	s.render(w, "login.html", map[string]interface{}{
		"GoogleEnabled": s.google.Enabled(),
	})
}

// handleLogin checks email/password credentials and answers JSON, matching
// the login page's fetch-based form submit.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)

	if err := r.ParseForm(); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	email := r.FormValue("email")
	password := r.FormValue("password")

	recruiter, ok := s.recruiters.Authenticate(email, password)
	if !ok {
		s.respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	s.sessions.Authenticate(sess.Token, email, recruiter.Name, "email")
	s.logger.Info("recruiter logged in", zap.String("email", email))

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"redirect": "/dashboard",
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		s.sessions.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (s *Server) handleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.google.Enabled() {
		http.Error(w, "Google sign-in is not configured", http.StatusNotFound)
		return
	}

	sess := s.currentSession(w, r)
	state, err := auth.RandomState()
	if err != nil {
		s.logger.Error("failed to generate oauth state", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.sessions.SetOAuthState(sess.Token, state)

	http.Redirect(w, r, s.google.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		http.Error(w, "Google OAuth error: "+errParam, http.StatusBadRequest)
		return
	}

	saved, ok := s.sessions.TakeOAuthState(sess.Token)
	if !ok || saved != r.URL.Query().Get("state") {
		http.Error(w, "Security error: state mismatch.", http.StatusBadRequest)
		return
	}

	token, err := s.google.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		s.logger.Warn("oauth token exchange failed", zap.Error(err))
		http.Error(w, "Token exchange failed", http.StatusBadRequest)
		return
	}

	email, name, err := s.google.FetchUserInfo(r.Context(), token)
	if err != nil {
		s.logger.Warn("oauth userinfo fetch failed", zap.Error(err))
		http.Error(w, "Failed to get user info from Google", http.StatusBadRequest)
		return
	}

	s.recruiters.Register(email, name)
	s.sessions.Authenticate(sess.Token, email, name, "google")
	s.logger.Info("recruiter logged in via google", zap.String("email", email))

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	s.render(w, "dashboard.html", map[string]interface{}{
		"RecruiterName":   sess.RecruiterName,
		"RecruiterEmail":  sess.RecruiterEmail,
		"TotalCandidates": 156,
		"Interviews":      42,
		"Hired":           18,
	})
}
