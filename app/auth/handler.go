package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/nikhil748/munch-admin-portal/app/api"
)

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type AuthHandler struct {
	tokens       *TokenService
	adminEmail   string
	passwordHash []byte
	log          *slog.Logger
}

// NewAuthHandler hashes the configured admin password once at
// construction; login requests compare against the hash.
func NewAuthHandler(tokens *TokenService, adminEmail, adminPassword string, log *slog.Logger) (*AuthHandler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &AuthHandler{
		tokens:       tokens,
		adminEmail:   strings.ToLower(adminEmail),
		passwordHash: hash,
		log:          log,
	}, nil
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if strings.ToLower(input.Email) != h.adminEmail ||
		bcrypt.CompareHashAndPassword(h.passwordHash, []byte(input.Password)) != nil {
		h.log.Warn("failed login attempt", "email", input.Email)
		api.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.tokens.Generate(h.adminEmail)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.log.Info("admin logged in", "email", h.adminEmail)
	api.WriteJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		Email: h.adminEmail,
	})
}

// HandleLogout exists for symmetry with the login surface; the session
// token is stateless, so the client discards it.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if email, ok := EmailFromContext(r.Context()); ok {
		h.log.Info("admin logged out", "email", email)
	}
	api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	email, ok := EmailFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{
		"email": email,
	})
}
