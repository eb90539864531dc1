package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
)

// HeaderUserID заголовок с ID действующего пользователя
const HeaderUserID = "X-User-ID"

const (
	msgUnknownUser    = "Unknown user."
	msgDirectoryError = "Something went wrong. Please try again."
)

type contextKey struct{}

// UserDirectory интерфейс справочника пользователей
type UserDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth определяет действующего пользователя по заголовку X-User-ID
// Без заголовка используется пользователь по умолчанию; неизвестный пользователь получает 401
// Аутентификации нет: пользователи офиса доверенные
func Auth(directory UserDirectory, defaultUserID string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
			if userID == "" {
				userID = defaultUserID
			}

			ok, err := directory.Exists(r.Context(), userID)
			if err != nil {
				logger.Error("%s %s - Failed to look up user: user_id=%s, error=%v", r.Method, r.URL.Path, userID, err)
				handlers.RespondError(w, http.StatusInternalServerError, msgDirectoryError)
				return
			}
			if !ok {
				logger.Warn("%s %s - Unknown user: user_id=%s", r.Method, r.URL.Path, userID)
				handlers.RespondUnauthorized(w, msgUnknownUser)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID кладёт ID пользователя в контекст
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(contextKey{}).(string)
	return userID, ok && userID != ""
}
