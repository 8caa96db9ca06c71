package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ualcz/exame-backend-dtlabs-2025/internal/httpx"
)

// Handler exposes the /auth HTTP endpoints.
type Handler struct {
	store  *Store
	issuer *Issuer
}

// NewHandler creates a Handler backed by the given Store and token Issuer.
func NewHandler(store *Store, issuer *Issuer) *Handler {
	return &Handler{store: store, issuer: issuer}
}

// ---------------------------------------------------------------------------
// Request / Response types
// ---------------------------------------------------------------------------

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string  `json:"username" example:"alice"`
	Email    string  `json:"email" example:"alice@example.com"`
	FullName *string `json:"full_name,omitempty" example:"Alice Doe"`
	Password string  `json:"password" example:"s3cret"`
}

// UserResponse is the account shape returned to clients. It deliberately has
// no field for the password hash.
type UserResponse struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Disabled bool    `json:"disabled"`
}

// TokenResponse is returned by POST /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// ---------------------------------------------------------------------------
// POST /auth/register
// ---------------------------------------------------------------------------

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Creates an account with a bcrypt-hashed password and returns it without the credential.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		RegisterRequest	true	"Account to create"
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Router			/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if req.Username == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username is required")
		return
	}
	if req.Email == "" {
		httpx.WriteError(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "password is required")
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Username, req.Email, req.FullName, req.Password)
	switch {
	case errors.Is(err, ErrUsernameTaken):
		httpx.WriteError(w, http.StatusBadRequest, "Username already registered")
		return
	case errors.Is(err, ErrEmailTaken):
		httpx.WriteError(w, http.StatusBadRequest, "Email already registered")
		return
	case err != nil:
		slog.Error("register user", "username", req.Username, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	slog.Info("user registered", "username", user.Username)

	httpx.WriteJSON(w, http.StatusOK, UserResponse{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Disabled: user.Disabled,
	})
}

// ---------------------------------------------------------------------------
// POST /auth/login
// ---------------------------------------------------------------------------

// Login godoc
//
//	@Summary		Log in
//	@Description	Exchanges a form-encoded username/password pair for a bearer token.
//	@Tags			auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Success		200			{object}	TokenResponse
//	@Failure		401			{object}	httpx.ErrorResponse
//	@Router			/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.store.Authenticate(r.Context(), username, password)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		httpx.WriteError(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	case err != nil:
		slog.Error("login", "username", username, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	token, err := h.issuer.Issue(user.Username)
	if err != nil {
		slog.Error("issue token", "username", user.Username, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
