package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bookstore/auth"
	"bookstore/models"
	"bookstore/repository"
)

type AuthHandler struct {
	Auth  *auth.Manager
	Users repository.UserRepository
	// Debug controls whether the reset token is echoed back by
	// ForgotPassword. Development only; in production the token must
	// travel out of band.
	Debug bool
}

type userProjection struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// failureMessage keeps backend error text out of responses.
func failureMessage(err error) string {
	if errors.Is(err, auth.ErrStorage) {
		return "Internal server error"
	}
	return err.Error()
}

func failureStatus(err error, defaultStatus int) int {
	if errors.Is(err, auth.ErrStorage) {
		return http.StatusInternalServerError
	}
	return defaultStatus
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{Success: false, Message: "Invalid request method"})
		return
	}

	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload"})
		return
	}
	if req.Email == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "email is required"})
		return
	}
	if req.Password == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "password is required"})
		return
	}

	userID, err := h.Auth.Register(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		writeJSON(w, failureStatus(err, http.StatusBadRequest), ApiResponse{
			Success: false,
			Message: failureMessage(err),
		})
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		UserID  int64  `json:"user_id"`
	}{true, "User registered successfully", userID})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{Success: false, Message: "Invalid request method"})
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload"})
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "email and password are required"})
		return
	}

	token, user, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		writeJSON(w, failureStatus(err, http.StatusUnauthorized), ApiResponse{
			Success: false,
			Message: failureMessage(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Token   string         `json:"token"`
		User    userProjection `json:"user"`
	}{true, "Login successful", token, userProjection{user.ID, user.Email, user.Role}})
}

// Profile handles GET /api/auth/profile. It runs behind RequireAuth.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{Success: false, Message: "Authentication token is missing"})
		return
	}

	userID, err := claims.UserID()
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{Success: false, Message: "Invalid token"})
		return
	}

	user, err := h.Users.GetUserByID(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: "Error retrieving profile"})
		return
	}
	if user == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "User not found"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool        `json:"success"`
		User    profileUser `json:"user"`
	}{true, newProfileUser(user)})
}

type profileUser struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"`
	Role      string     `json:"role"`
}

func newProfileUser(user *models.User) profileUser {
	return profileUser{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
		Role:      user.Role,
	}
}

// VerifyToken handles POST /api/auth/verify-token.
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{Success: false, Message: "Invalid request method"})
		return
	}

	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Token is required"})
		return
	}

	claims, err := h.Auth.VerifyToken(req.Token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	userID, err := claims.UserID()
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{Success: false, Message: "Invalid token"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		UserID  int64  `json:"user_id"`
		Email   string `json:"email"`
		Role    string `json:"role"`
	}{true, userID, claims.Email, claims.Role})
}

// ForgotPassword handles POST /api/auth/forgot-password. It answers 200
// whether or not the email exists.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{Success: false, Message: "Invalid request method"})
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Email is required"})
		return
	}

	token, err := h.Auth.CreatePasswordResetToken(req.Email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: failureMessage(err)})
		return
	}

	resp := struct {
		Success    bool   `json:"success"`
		Message    string `json:"message"`
		DebugToken string `json:"debug_token,omitempty"`
	}{Success: true}

	if token == "" {
		resp.Message = "If your email is registered, you'll receive a password reset link"
	} else {
		// The real delivery channel is email; echoing the token is a
		// development convenience and stays off in production.
		resp.Message = "Password reset link has been sent"
		if h.Debug {
			resp.DebugToken = token
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// VerifyResetToken handles GET /api/auth/reset-password/{token}.
func (h *AuthHandler) VerifyResetToken(w http.ResponseWriter, r *http.Request, token string) {
	userID, err := h.Auth.VerifyResetToken(token)
	if err != nil {
		writeJSON(w, failureStatus(err, http.StatusBadRequest), ApiResponse{
			Success: false,
			Message: failureMessage(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool  `json:"success"`
		UserID  int64 `json:"user_id"`
	}{true, userID})
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{Success: false, Message: "Invalid request method"})
		return
	}

	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload"})
		return
	}
	if req.Token == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "token is required"})
		return
	}
	if req.Password == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "password is required"})
		return
	}

	if err := h.Auth.ResetPassword(req.Token, req.Password); err != nil {
		writeJSON(w, failureStatus(err, http.StatusBadRequest), ApiResponse{
			Success: false,
			Message: failureMessage(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Password has been reset successfully",
	})
}
