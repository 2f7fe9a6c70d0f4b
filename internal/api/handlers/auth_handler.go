package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/moodbrew/moodbrew-backend/internal/application/services"
)

// AuthHandler handles account endpoints.
type AuthHandler struct {
	accounts    *services.AccountService
	development bool
}

// NewAuthHandler creates a new auth handler. In development mode the reset
// verification code is echoed in the response instead of being delivered
// out of band.
func NewAuthHandler(accounts *services.AccountService, development bool) *AuthHandler {
	return &AuthHandler{accounts: accounts, development: development}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.accounts.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		respondWithServiceError(w, err, "login failed")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"user": user.Sanitized()})
}

type googleLoginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginWithGoogle handles POST /api/auth/google
func (h *AuthHandler) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	var payload googleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if strings.TrimSpace(payload.Email) == "" || strings.TrimSpace(payload.Name) == "" {
		respondWithError(w, http.StatusBadRequest, "email and name are required")
		return
	}

	user, err := h.accounts.LoginWithGoogle(r.Context(), payload.Email, payload.Name)
	if err != nil {
		respondWithServiceError(w, err, "login failed")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"user": user.Sanitized()})
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.accounts.Register(r.Context(), payload.Email, payload.Password, payload.Name, payload.PhoneNumber)
	if err != nil {
		respondWithServiceError(w, err, "registration failed")
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"user": user.Sanitized()})
}

type resetStartRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// StartPasswordReset handles POST /api/auth/reset/start
func (h *AuthHandler) StartPasswordReset(w http.ResponseWriter, r *http.Request) {
	var payload resetStartRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	code, err := h.accounts.StartPasswordReset(r.Context(), payload.Email, payload.PhoneNumber)
	if err != nil {
		respondWithServiceError(w, err, "failed to start password reset")
		return
	}

	response := map[string]string{"status": "code_sent"}
	if h.development {
		response["code"] = code
	}
	respondWithJSON(w, http.StatusOK, response)
}

type resetCompleteRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

// CompletePasswordReset handles POST /api/auth/reset/complete
func (h *AuthHandler) CompletePasswordReset(w http.ResponseWriter, r *http.Request) {
	var payload resetCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	err := h.accounts.CompletePasswordReset(r.Context(), payload.Email, payload.PhoneNumber, payload.Code, payload.NewPassword)
	if err != nil {
		respondWithServiceError(w, err, "failed to reset password")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "password_updated"})
}
