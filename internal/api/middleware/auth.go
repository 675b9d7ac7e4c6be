package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/integrations/authservice"
)

const (
	msgMissingAuth = "требуется заголовок X-User-ID или Authorization"
	msgInvalidAuth = "некорректные данные аутентификации"
)

type userIDContextKey struct{}

// TokenValidator интерфейс клиента auth-сервиса
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*authservice.Identity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth аутентифицирует запрос и кладет ID пользователя в контекст.
// Поддерживаются два способа: заголовок X-User-ID (внутренние вызовы
// из доверенной сети) и Bearer токен, проверяемый через auth-сервис.
func Auth(validator TokenValidator, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userIDStr := r.Header.Get("X-User-ID"); userIDStr != "" {
				userID, err := strconv.ParseInt(userIDStr, 10, 64)
				if err != nil || userID <= 0 {
					log.Warn("Auth: invalid X-User-ID header: %q", userIDStr)
					handlers.RespondUnauthorized(w, msgInvalidAuth)
					return
				}

				next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
				return
			}

			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				log.Warn("Auth: request without credentials: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingAuth)
				return
			}

			identity, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				log.Warn("Auth: token validation failed: %v", err)
				handlers.RespondUnauthorized(w, msgInvalidAuth)
				return
			}

			next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), identity.UserID)))
		})
	}
}

func withUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// UserID возвращает ID аутентифицированного пользователя из контекста
func UserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
