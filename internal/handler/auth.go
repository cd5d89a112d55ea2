package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizmatchke/bizmatchke/internal/auth"
	"github.com/bizmatchke/bizmatchke/internal/handler/dto"
	"github.com/bizmatchke/bizmatchke/internal/model"
	"github.com/bizmatchke/bizmatchke/internal/service"
)

// AuthHandler handles HTTP requests for account operations.
type AuthHandler struct {
	svc      *service.AuthService
	sessions *auth.SessionCodec
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, sessions *auth.SessionCodec, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		sessions: sessions,
		logger:   logger,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	profile, err := h.svc.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if err := h.issueSession(w, profile); err != nil {
		h.logger.Error("session_issue_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	h.logger.Info("user_registered", "user_id", profile.ID)

	writeJSON(w, http.StatusCreated, dto.AuthResponse{User: dto.ToUserResponse(profile)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	profile, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if err := h.issueSession(w, profile); err != nil {
		h.logger.Error("session_issue_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	h.logger.Info("user_logged_in", "user_id", profile.ID)

	writeJSON(w, http.StatusOK, dto.AuthResponse{User: dto.ToUserResponse(profile)})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

// Signout handles POST /api/auth/signout. Same effect as Logout with a
// bare 204, kept for clients that expect that contract.
func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	profile, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProfileResponse(profile))
}

// UpdateProfile handles POST /api/auth/update-profile. The session cookie
// is re-issued so the embedded name stays current.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	userID := auth.UserIDFromContext(r.Context())

	profile, err := h.svc.UpdateProfile(r.Context(), userID, req.FullName)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if err := h.issueSession(w, profile); err != nil {
		h.logger.Error("session_issue_failed", "error", err)
	}

	h.logger.Info("profile_updated", "user_id", profile.ID)

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

// UpdatePassword handles POST /api/auth/update-password.
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	userID := auth.UserIDFromContext(r.Context())

	if err := h.svc.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("password_updated", "user_id", userID)

	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

// issueSession writes a fresh session cookie for the profile.
func (h *AuthHandler) issueSession(w http.ResponseWriter, profile *model.Profile) error {
	session := h.sessions.NewSession(model.SessionUserFromProfile(profile))
	return h.sessions.SetCookie(w, session)
}

// handleServiceError maps auth service errors to HTTP responses.
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, "EMAIL_TAKEN", "Email is already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, service.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, "PROFILE_NOT_FOUND", "Profile not found")
	case errors.Is(err, service.ErrWrongPassword):
		writeError(w, http.StatusBadRequest, "WRONG_PASSWORD", "Current password is incorrect")
	case errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrFullNameRequired),
		errors.Is(err, auth.ErrPasswordTooLong):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
