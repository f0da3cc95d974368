package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"articlehub/internal/domain/entity"
	"articlehub/internal/handler/http/respond"
)

// UserLoader loads a user with its current roles. It returns nil for an
// unknown id. repository.UserRepository satisfies it.
type UserLoader interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
}

// Authenticator turns the Authorization header into a request principal.
type Authenticator struct {
	Secret []byte
	Users  UserLoader
	Now    func() time.Time
}

func (a *Authenticator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Middleware resolves the principal and stores it in the request context.
//
// A request without an Authorization header continues anonymously. A header
// that is present but not a valid token is answered with 401. When the user
// exists in the store its stored roles replace the roles in the token.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		header := r.Header.Get("Authorization")
		if header == "" {
			recordAuth("anonymous", time.Since(start).Seconds())
			next.ServeHTTP(w, r)
			return
		}

		p, result, err := a.resolve(r.Context(), header)
		recordAuth(result, time.Since(start).Seconds())
		if err != nil {
			if result == "error" {
				respond.SafeError(w, http.StatusInternalServerError, err)
				return
			}
			w.Header().Set("WWW-Authenticate", `Bearer realm="articlehub"`)
			respond.Refuse(w, http.StatusUnauthorized, "unauthorized: "+err.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
	})
}

func (a *Authenticator) resolve(ctx context.Context, header string) (entity.Principal, string, error) {
	raw, err := bearerToken(header)
	if err != nil {
		return entity.Principal{}, "invalid_token", err
	}
	claims, err := ParseToken(raw, a.Secret, a.now())
	if err != nil {
		return entity.Principal{}, "invalid_token", err
	}
	p, err := principalFromClaims(claims)
	if err != nil {
		return entity.Principal{}, "invalid_token", err
	}

	if a.Users == nil {
		return p, "success", nil
	}
	user, err := a.Users.Get(ctx, p.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load user roles",
			slog.Int64("user_id", p.UserID),
			slog.Any("error", err))
		return entity.Principal{}, "error", errors.New("failed to load user")
	}
	if user == nil {
		return p, "unknown_user", nil
	}
	p.Roles = append([]entity.Role(nil), user.Roles...)
	return p, "success", nil
}

// Require answers 401 unless the request has an authenticated principal.
func Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !PrincipalFrom(r.Context()).Authenticated() {
			w.Header().Set("WWW-Authenticate", `Bearer realm="articlehub"`)
			respond.Refuse(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
