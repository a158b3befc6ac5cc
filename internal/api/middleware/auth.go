package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

// UserIDKey ключ контекста с идентификатором пользователя
const UserIDKey contextKey = "userID"

// HeaderUserID заголовок аутентификации внутреннего API
const HeaderUserID = "X-User-ID"

// Auth проверяет наличие заголовка X-User-ID и кладет его значение в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "falta el encabezado X-User-ID"})
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает идентификатор пользователя из контекста
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
