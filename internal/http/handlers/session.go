package handlers

import (
	"fmt"
	"net/http"

	apierrors "github.com/navolotsky/phone-book/internal/errors"
	"github.com/navolotsky/phone-book/internal/http/middleware"
	"github.com/navolotsky/phone-book/internal/models"
	logctx "github.com/navolotsky/phone-book/internal/pkg/log"
)

type registerRequest struct {
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	BirthDate models.Date `json:"birth_date"`
}

type registerResponse struct {
	// Password — одноразовый пароль, сгенерированный сервером.
	// Возвращается единственный раз; доставка по почте не реализована.
	Password string `json:"password"`
}

// Register — POST /auth/register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("decode: %w", apierrors.ErrBadRequest))
		return
	}

	password, err := h.svc.Register(r.Context(), in.Username, in.Email, in.BirthDate)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{Password: password})
}

type loginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

type loginResponse struct {
	SessionKey string `json:"session_key"`
	// UpcomingBirthdays заполняется сразу при входе, если напоминания
	// включены в конфигурации.
	UpcomingBirthdays []models.Contact `json:"upcoming_birthdays,omitempty"`
}

// LogIn — POST /auth/login.
func (h *Handlers) LogIn(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("decode: %w", apierrors.ErrBadRequest))
		return
	}

	key, err := h.svc.LogIn(r.Context(), in.UsernameOrEmail, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := loginResponse{SessionKey: key}

	if h.svc.BirthdaysEnabled() {
		birthdays, err := h.svc.UpcomingBirthdays(r.Context(), key)
		if err != nil {
			// Вход уже состоялся: напоминания не стоят отказа в сессии.
			logctx.From(r.Context()).Warn("upcoming birthdays fetch failed",
				"err", err.Error())
		} else {
			out.UpcomingBirthdays = birthdays
		}
	}

	writeJSON(w, http.StatusOK, out)
}

// LogOut — POST /auth/logout.
func (h *Handlers) LogOut(w http.ResponseWriter, r *http.Request) {
	key, err := sessionKey(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.LogOut(r.Context(), key); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type sessionResponse struct {
	Valid bool `json:"valid"`
}

// Session — GET /auth/session: проверка сохраненного ключа сессии.
// Отсутствующий ключ дает valid=false, а не ошибку.
func (h *Handlers) Session(w http.ResponseWriter, r *http.Request) {
	key := middleware.SessionKeyFrom(r.Context())
	if key == "" {
		writeJSON(w, http.StatusOK, sessionResponse{Valid: false})
		return
	}

	ok, err := h.svc.CheckSession(r.Context(), key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Valid: ok})
}

// Me — GET /users/me: данные владельца сессии.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	key, err := sessionKey(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	info, err := h.svc.UserInfo(r.Context(), key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}
