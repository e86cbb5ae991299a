package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/ahmadqo/school-attendance/internal/response"
)

type contextKey string

const (
	ContextKeyAdminID   contextKey = "admin_id"
	ContextKeyUsername  contextKey = "username"
	ContextKeySessionID contextKey = "session_id"
)

// TokenAuthenticator memvalidasi access token beserta sesinya
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*model.JWTClaims, error)
}

// Authenticate memvalidasi JWT dari Authorization header
func Authenticate(auth TokenAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Token tidak ditemukan")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				response.Unauthorized(w, "Format token tidak valid, gunakan: Bearer <token>")
				return
			}

			claims, err := auth.Authenticate(r.Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				response.Unauthorized(w, "Token tidak valid atau sudah expired")
				return
			}

			// Simpan claims ke context
			ctx := r.Context()
			ctx = context.WithValue(ctx, ContextKeyAdminID, claims.AdminID)
			ctx = context.WithValue(ctx, ContextKeyUsername, claims.Username)
			ctx = context.WithValue(ctx, ContextKeySessionID, claims.SessionID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminIDFromContext helper untuk ambil admin ID dari context
func GetAdminIDFromContext(ctx context.Context) string {
	val, _ := ctx.Value(ContextKeyAdminID).(string)
	return val
}

func GetUsernameFromContext(ctx context.Context) string {
	val, _ := ctx.Value(ContextKeyUsername).(string)
	return val
}

func GetSessionIDFromContext(ctx context.Context) string {
	val, _ := ctx.Value(ContextKeySessionID).(string)
	return val
}
