package auth_test

import (
	"testing"
	"time"

	"github.com/ualcz/exame-backend-dtlabs-2025/internal/auth"
)

func TestIssueResolve_RoundTrip(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", 30*time.Minute)

	token, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	username, err := issuer.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if username != "alice" {
		t.Errorf("expected subject alice, got %q", username)
	}
}

func TestResolve_Failures(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", 30*time.Minute)

	expired := auth.NewIssuer("test-secret", -time.Minute)
	expiredToken, err := expired.Issue("alice")
	if err != nil {
		t.Fatalf("Issue expired: %v", err)
	}

	other := auth.NewIssuer("other-secret", 30*time.Minute)
	foreignToken, err := other.Issue("alice")
	if err != nil {
		t.Fatalf("Issue foreign: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "not-a-jwt"},
		{name: "empty", token: ""},
		{name: "expired", token: expiredToken},
		{name: "wrong secret", token: foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := issuer.Resolve(tt.token); err == nil {
				t.Error("expected resolve to fail")
			}
		})
	}
}
