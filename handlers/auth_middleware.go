package handlers

import (
	"context"
	"net/http"
	"strings"

	"bookstore/auth"
	"bookstore/models"
)

type contextKey string

const claimsKey contextKey = "authClaims"

// ClaimsFromContext returns the verified claims a guard stored on the
// request.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RequireAuth rejects the request unless it carries a valid bearer
// token, then passes the verified claims downstream via the context.
func (h *AuthHandler) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := h.authenticate(w, r)
		if !ok {
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

// RequireAdmin is RequireAuth plus a role check.
func (h *AuthHandler) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := h.authenticate(w, r)
		if !ok {
			return
		}
		if claims.Role != models.RoleAdmin {
			writeJSON(w, http.StatusForbidden, ApiResponse{
				Success: false,
				Message: "Admin privileges required",
			})
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

func (h *AuthHandler) authenticate(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	token := bearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: "Authentication token is missing",
		})
		return nil, false
	}

	claims, err := h.Auth.VerifyToken(token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
		return nil, false
	}
	return claims, true
}
