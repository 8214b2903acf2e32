package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/navolotsky/phone-book/internal/http/middleware"
	"github.com/navolotsky/phone-book/internal/service"
)

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	svc *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// sessionKey достает ключ сессии, положенный мидлваром SessionBearer.
// Отсутствие ключа для защищенных операций эквивалентно недействительной сессии.
func sessionKey(r *http.Request) (string, error) {
	key := middleware.SessionKeyFrom(r.Context())
	if key == "" {
		return "", fmt.Errorf("missing bearer key: %w", service.ErrInvalidSession)
	}

	return key, nil
}
