package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msomdec/searchproxy/internal/domain"
	"github.com/msomdec/searchproxy/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// RequireBasicAuth guards a handler with HTTP Basic authentication. It
// validates the credentials against the user store, rejects disabled
// users, and injects the authenticated user into the request context.
// Unauthenticated requests are answered with 401 and a Basic challenge.
func RequireBasicAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			rejectBasic(w, "Not authenticated")
			return
		}

		user, err := auth.Authenticate(r.Context(), username, password)
		if err != nil {
			if errors.Is(err, domain.ErrStoreUnavailable) {
				slog.Error("basic auth store failure", "error", err)
				writeDetail(w, http.StatusServiceUnavailable, "Storage unavailable")
				return
			}
			rejectBasic(w, "Incorrect username or password")
			return
		}

		if user.Disabled {
			writeDetail(w, http.StatusBadRequest, "Inactive user")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireBearerAuth guards a handler with bearer-token authentication.
// The token binds only the username; the full record is re-fetched from
// the store on every request so a freshly set disabled flag takes effect
// immediately, even while the token itself still verifies.
func RequireBearerAuth(tokens *service.TokenService, users domain.UserRepository, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r)
		if !ok {
			rejectBearer(w, "Not authenticated")
			return
		}

		username, err := tokens.Verify(tokenString)
		if err != nil {
			rejectBearer(w, "Could not validate credentials")
			return
		}

		user, err := users.FindByUsername(r.Context(), username)
		if err != nil {
			if errors.Is(err, domain.ErrStoreUnavailable) {
				slog.Error("bearer auth store failure", "error", err)
				writeDetail(w, http.StatusServiceUnavailable, "Storage unavailable")
				return
			}
			rejectBearer(w, "Could not validate credentials")
			return
		}

		if user.Disabled {
			writeDetail(w, http.StatusBadRequest, "Inactive user")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func rejectBasic(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="search"`)
	writeDetail(w, http.StatusUnauthorized, message)
}

func rejectBearer(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeDetail(w, http.StatusUnauthorized, message)
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// RequestLogger assigns each request an ID, echoes it in X-Request-ID,
// and logs method, path, status, and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		slog.Info("request",
			"id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
