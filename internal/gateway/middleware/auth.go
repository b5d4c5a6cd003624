package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/juliocloud/s206-projeto-final/internal/modules/auth/domain"
	"github.com/juliocloud/s206-projeto-final/internal/modules/auth/infrastructure/jwt"
	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
	"github.com/juliocloud/s206-projeto-final/internal/shared/utils"
)

type contextKey string

const ContextKeyIdentity contextKey = "identity"

type AuthMiddleWare struct {
	jwtSecret string
}

// NewAuthMiddleware creates and returns a new instance of AuthMiddleWare.
// The jwtSecret must be the same secret the auth service signs tokens with.
func NewAuthMiddleware(jwtSecret string) *AuthMiddleWare {
	return &AuthMiddleWare{jwtSecret: jwtSecret}
}

// RequireAuth rejects requests without a usable bearer token. A missing
// token is answered with 401; a token that fails signature, expiry or
// subject checks is answered with 403. On success the caller's identity is
// stored in the request context and on the request logger.
func (m *AuthMiddleWare) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearerToken(r.Header.Get("Authorization"))
		if tokenStr == "" {
			utils.WriteAppError(w, r, domain.ErrMissingToken)
			return
		}

		claims, err := jwt.ValidateToken(tokenStr, m.jwtSecret)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("rejected bearer token")
			utils.WriteAppError(w, r, domain.ErrInvalidToken)
			return
		}
		identity, err := claims.Identity()
		if err != nil {
			utils.WriteAppError(w, r, domain.ErrInvalidToken)
			return
		}

		ctx := ContextWithIdentity(r.Context(), identity)
		l := logging.Ctx(ctx).With().Int64("user_id", identity.UserID).Logger()
		ctx = logging.ContextWithLogger(ctx, l)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// ContextWithIdentity stores the authenticated caller in ctx.
func ContextWithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, ContextKeyIdentity, id)
}

// IdentityFromContext returns the caller set by RequireAuth.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(ContextKeyIdentity).(domain.Identity)
	return id, ok
}
