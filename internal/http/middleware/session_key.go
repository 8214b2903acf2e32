package middleware

import (
	"context"
	"net/http"
	"strings"
)

// ctxKeySessionKey — ключ контекста для ключа сессии.
type ctxKeySessionKey struct{}

// SessionBearer извлекает ключ сессии из Authorization: Bearer <key>
// и кладет его в контекст. Отсутствие заголовка не является ошибкой:
// проверка обязательности остается за хендлерами.
func SessionBearer() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")

			if auth != "" {
				const prefix = "Bearer "
				if strings.HasPrefix(auth, prefix) && len(auth) > len(prefix) {
					key := strings.TrimSpace(auth[len(prefix):])

					if key != "" {
						ctx := context.WithValue(r.Context(), ctxKeySessionKey{}, key)
						r = r.WithContext(ctx)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionKeyFrom возвращает ключ сессии из контекста ("" — ключа нет).
func SessionKeyFrom(ctx context.Context) string {
	key, _ := ctx.Value(ctxKeySessionKey{}).(string)
	return key
}
