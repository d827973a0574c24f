package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bizlingo/bizlingo-be/internal/auth"
	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/bizlingo/bizlingo-be/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for accounts and sessions.
type UserHandler struct {
	users         services.UserServiceProvider
	sessions      services.SessionServiceProvider
	notifications services.NotificationServiceProvider
	sessionTTL    time.Duration
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users services.UserServiceProvider, sessions services.SessionServiceProvider, notifications services.NotificationServiceProvider, sessionTTL time.Duration) *UserHandler {
	return &UserHandler{
		users:         users,
		sessions:      sessions,
		notifications: notifications,
		sessionTTL:    sessionTTL,
	}
}

// AuthPayload defines the structure for login requests.
type AuthPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse bundles the issued token with the user record.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// startSession creates the session row, issues the JWT and sets the cookie.
func (h *UserHandler) startSession(w http.ResponseWriter, user models.User) (AuthResponse, error) {
	session, err := h.sessions.StartSession(user.ID, h.sessionTTL)
	if err != nil {
		return AuthResponse{}, err
	}

	token, err := auth.GenerateJWT(user, session)
	if err != nil {
		return AuthResponse{}, err
	}

	http.SetCookie(w, auth.SessionCookie(token, session.ExpiresAt))
	return AuthResponse{Token: token, User: user}, nil
}

// Register handles new user registration. A successful registration logs the
// user straight in.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.users.Register(payload.Name, payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		writeError(w, err)
		return
	}

	resp, err := h.startSession(w, user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to start session after registration")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles user authentication and session issue.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload AuthPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed authentication attempt")
		writeError(w, err)
		return
	}

	resp, err := h.startSession(w, user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to start session after login")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Logout revokes the current session and clears the cookie. Logging out
// twice is harmless.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		http.Error(w, "Could not retrieve session from token", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.EndSession(claims.ID); err != nil {
		log.Error().Err(err).Str("session_id", claims.ID).Msg("Failed to end session")
		writeError(w, err)
		return
	}

	// Expire the cookie immediately.
	cookie := auth.SessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	h.notifications.Notify("success", "Logged out successfully", &claims.UserID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// GetMe retrieves the currently authenticated user from the token.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	user, err := h.users.GetUserByID(claims.UserID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Msg("User from token not found")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile handles partial profile updates for the authenticated user.
// An email field in the payload is ignored: email is immutable.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var update services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.users.UpdateProfile(claims.UserID, update)
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Msg("Failed to update profile")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// ChangePassword is a stub: password changes are not supported yet, the
// stored hash is immutable after registration.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, ErrorResponse{
		Error:   "not_implemented",
		Message: "password change is not available yet",
	})
}
