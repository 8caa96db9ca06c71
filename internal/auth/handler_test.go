package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ualcz/exame-backend-dtlabs-2025/internal/auth"
)

func testRouter(store *auth.Store, issuer *auth.Issuer) chi.Router {
	handler := auth.NewHandler(store, issuer)

	r := chi.NewRouter()
	r.Post("/auth/register", handler.Register)
	r.Post("/auth/login", handler.Login)

	// A minimal protected endpoint to exercise the middleware.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser(store, issuer))
		r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
			user, _ := auth.UserFrom(r.Context())
			w.Write([]byte(user.Username))
		})
	})
	return r
}

func TestRegisterHandler(t *testing.T) {
	db := testDB(t)
	store := auth.NewStore(db)
	issuer := auth.NewIssuer("test-secret", 30*time.Minute)
	r := testRouter(store, issuer)

	body := `{"username":"alice","email":"alice@example.com","full_name":"Alice Doe","password":"s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["username"] != "alice" || resp["email"] != "alice@example.com" || resp["full_name"] != "Alice Doe" {
		t.Errorf("unexpected response: %v", resp)
	}
	for _, forbidden := range []string{"password", "hashed_password"} {
		if _, present := resp[forbidden]; present {
			t.Errorf("response leaks %q", forbidden)
		}
	}

	// Same username again.
	req = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate username, got %d", w.Code)
	}
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	db := testDB(t)
	store := auth.NewStore(db)
	issuer := auth.NewIssuer("test-secret", 30*time.Minute)
	r := testRouter(store, issuer)

	tests := []struct {
		name string
		body string
	}{
		{name: "no username", body: `{"email":"a@b.c","password":"x"}`},
		{name: "no email", body: `{"username":"a","password":"x"}`},
		{name: "no password", body: `{"username":"a","email":"a@b.c"}`},
		{name: "bad JSON", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func login(t *testing.T, r chi.Router, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler(t *testing.T) {
	db := testDB(t)
	store := auth.NewStore(db)
	issuer := auth.NewIssuer("test-secret", 30*time.Minute)
	r := testRouter(store, issuer)

	if _, err := store.CreateUser(context.Background(), "alice", "alice@example.com", nil, "s3cret"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	w := login(t, r, "alice", "s3cret")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp auth.TokenResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("expected token_type bearer, got %q", resp.TokenType)
	}

	// The issued token must resolve back to the same identity.
	username, err := issuer.Resolve(resp.AccessToken)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if username != "alice" {
		t.Errorf("token resolves to %q, want alice", username)
	}

	if w := login(t, r, "alice", "wrong"); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: expected 401, got %d", w.Code)
	}
	if w := login(t, r, "nobody", "s3cret"); w.Code != http.StatusUnauthorized {
		t.Errorf("unknown user: expected 401, got %d", w.Code)
	}
}

func TestRequireUser(t *testing.T) {
	db := testDB(t)
	store := auth.NewStore(db)
	issuer := auth.NewIssuer("test-secret", 30*time.Minute)
	r := testRouter(store, issuer)

	if _, err := store.CreateUser(context.Background(), "alice", "alice@example.com", nil, "s3cret"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := store.CreateUser(context.Background(), "dave", "dave@example.com", nil, "s3cret"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := db.ExecContext(context.Background(), `UPDATE users SET disabled = TRUE WHERE username = 'dave'`); err != nil {
		t.Fatalf("disable user: %v", err)
	}

	validToken, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	disabledToken, err := issuer.Issue("dave")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	ghostToken, err := issuer.Issue("nobody")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid token", header: "Bearer " + validToken, status: http.StatusOK},
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "not bearer form", header: validToken, status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer garbage", status: http.StatusUnauthorized},
		{name: "valid token, unknown user", header: "Bearer " + ghostToken, status: http.StatusUnauthorized},
		{name: "disabled user", header: "Bearer " + disabledToken, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
			if tt.status == http.StatusOK && w.Body.String() != "alice" {
				t.Errorf("expected body alice, got %q", w.Body.String())
			}
		})
	}
}
