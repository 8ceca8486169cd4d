package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// GoogleAuth performs the Google OAuth identity handshake: redirect, code
// exchange, userinfo lookup. Disabled when no client id is configured.
type GoogleAuth struct {
	config *oauth2.Config
}

func NewGoogleAuth(clientID, clientSecret, redirectURL string) *GoogleAuth {
	return &GoogleAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Enabled reports whether Google sign-in is configured.
func (g *GoogleAuth) Enabled() bool {
	return g.config.ClientID != ""
}

// AuthCodeURL builds the consent-page redirect carrying the anti-forgery state.
func (g *GoogleAuth) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades the callback code for a token.
func (g *GoogleAuth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	return token, nil
}

// FetchUserInfo resolves the signed-in user's email and display name.
func (g *GoogleAuth) FetchUserInfo(ctx context.Context, token *oauth2.Token) (email, name string, err error) {
	svc, err := goauth2.NewService(ctx, option.WithTokenSource(g.config.TokenSource(ctx, token)))
	if err != nil {
		return "", "", fmt.Errorf("failed to create userinfo service: %w", err)
	}

	info, err := svc.Userinfo.Get().Do()
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch user info: %w", err)
	}
	if info.Email == "" {
		return "", "", fmt.Errorf("google returned no email for user")
	}

	name = info.Name
	if name == "" {
		name = "Google User"
	}
	return info.Email, name, nil
}
