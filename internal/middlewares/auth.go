package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/career-toolkit/internal/jwt"
	"github.com/sbilibin2017/career-toolkit/internal/logger"
	"github.com/sbilibin2017/career-toolkit/internal/models"
	"github.com/sbilibin2017/career-toolkit/internal/services"
)

// Tokener extracts the bearer token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// AccountResolver maps a token to the account it was issued for.
type AccountResolver interface {
	CurrentAccount(ctx context.Context, token string) (*models.Account, error)
}

type accountKey struct{}

// WithAccount stores the authenticated account in ctx.
func WithAccount(ctx context.Context, account *models.Account) context.Context {
	return context.WithValue(ctx, accountKey{}, account)
}

// AccountFromContext returns the account stored by AuthMiddleware, or nil.
func AccountFromContext(ctx context.Context) *models.Account {
	account, _ := ctx.Value(accountKey{}).(*models.Account)
	return account
}

// AuthMiddleware returns a middleware that resolves the bearer token to an
// account and stores it in the request context. Requests without a usable
// token get 401.
func AuthMiddleware(tokener Tokener, resolver AccountResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			account, err := resolver.CurrentAccount(ctx, tokenString)
			switch {
			case err == nil:
			case errors.Is(err, services.ErrAccountNotFound):
				logger.Log.Infow("authorization failed", "err", err)
				writeError(w, http.StatusNotFound, "Account not found")
				return
			case isTokenError(err):
				logger.Log.Infow("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			default:
				logger.Log.Errorw("failed to resolve account", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccount(ctx, account)))
		})
	}
}

func isTokenError(err error) bool {
	return errors.Is(err, jwt.ErrTokenInvalid) || errors.Is(err, jwt.ErrTokenExpired)
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, "Could not validate credentials")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
