// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку сервисного слоя, а на выход дает:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: комментарии к переменным ошибок
// в пакетах service и storage.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/navolotsky/phone-book/internal/service"
	"github.com/navolotsky/phone-book/internal/storage"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// ErrBadRequest — некорректное тело или параметры запроса (ошибка
// декодирования, нечисловой ID). Транспорт: HTTP 400.
var ErrBadRequest = errors.New("bad request")

// APIError — единый формат ошибки для клиента.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// ContactID — при конфликте 409 идентификатор контакта, с которым
// обнаружен конфликт (его возвращают процедуры add_contact/edit_contact).
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	ContactID int64  `json:"contact_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и
// унифицированный ответ.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - ошибки соединения отдаются как 503: клиенту предлагается повторить
//     попытку позже, прочие ошибки БД не детализируются (500).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)

	resp := ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}

	var conflict *service.ConflictError
	if errors.As(err, &conflict) {
		resp.Error.ContactID = conflict.ContactID
	}

	return status, resp
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// base — маппинг ошибок сервисного слоя на HTTP/код/сообщение.
func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"

	case errors.Is(err, ErrBadRequest),
		errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrInvalidBirthDate):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"

	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials", "invalid credentials"

	case errors.Is(err, service.ErrInvalidSession):
		return http.StatusUnauthorized, "invalid_session", "invalid session key"

	case errors.Is(err, service.ErrNoAuthority):
		return http.StatusForbidden, "permission_denied", "permission denied"

	case errors.Is(err, service.ErrContactNotFound),
		errors.Is(err, service.ErrUnknownPage):
		return http.StatusNotFound, "not_found", "not found"

	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrContactExists),
		errors.Is(err, service.ErrSameDataContact):
		return http.StatusConflict, "already_exists", "already exists"

	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"

	case errors.Is(err, storage.ErrConnection):
		return http.StatusServiceUnavailable, "unavailable", "database unavailable, try again later"

	default:
		// storage.ErrStatement, ErrTransaction, ErrUnknown и все прочее.
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
