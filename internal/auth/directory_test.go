package auth

import "testing"

func seedDirectory() *Directory {
	return NewDirectory(map[string]Recruiter{
		"admin@company.com": {Name: "Admin User", Password: "admin123"},
		"oauth@company.com": {Name: "OAuth Only"},
	})
}

func TestAuthenticate(t *testing.T) {
	d := seedDirectory()

	tests := []struct {
		name     string
		email    string
		password string
		wantOK   bool
	}{
		{"Valid credentials", "admin@company.com", "admin123", true},
		{"Wrong password", "admin@company.com", "nope", false},
		{"Unknown email", "ghost@company.com", "admin123", false},
		{"OAuth-only account", "oauth@company.com", "", false},
		{"Empty password against seeded account", "admin@company.com", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := d.Authenticate(tt.email, tt.password)
			if ok != tt.wantOK {
				t.Fatalf("Authenticate(%q, %q) ok = %v, want %v", tt.email, tt.password, ok, tt.wantOK)
			}
			if ok && r.Name == "" {
				t.Error("authenticated recruiter has no name")
			}
		})
	}
}

func TestRegisterKeepsExisting(t *testing.T) {
	d := seedDirectory()

	got := d.Register("admin@company.com", "Impostor")
	if got.Name != "Admin User" {
		t.Errorf("Register over existing account returned %q, want Admin User", got.Name)
	}

	// The seeded password login still works afterwards.
	if _, ok := d.Authenticate("admin@company.com", "admin123"); !ok {
		t.Error("password login broken after Register on existing account")
	}
}

func TestRegisterNewAccount(t *testing.T) {
	d := seedDirectory()

	d.Register("new@company.com", "New Recruiter")

	r, ok := d.Get("new@company.com")
	if !ok || r.Name != "New Recruiter" {
		t.Fatalf("Get after Register = (%+v, %v)", r, ok)
	}
	if _, ok := d.Authenticate("new@company.com", ""); ok {
		t.Error("OAuth-registered account authenticated with empty password")
	}
}

func TestRandomState(t *testing.T) {
	first, err := RandomState()
	if err != nil {
		t.Fatalf("RandomState: %v", err)
	}
	second, err := RandomState()
	if err != nil {
		t.Fatalf("RandomState: %v", err)
	}

	if first == "" || second == "" {
		t.Fatal("RandomState returned empty token")
	}
	if first == second {
		t.Error("two RandomState calls returned the same token")
	}
}
