package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/navolotsky/phone-book/internal/models"
	"github.com/navolotsky/phone-book/internal/pkg/log"
	"github.com/navolotsky/phone-book/internal/storage"
)

// minRegisterAge — минимальный возраст пользователя при регистрации, лет.
const minRegisterAge = 16

// Register регистрирует нового пользователя. Пароль генерируется сервером
// и возвращается единственный раз; доставка по почте не реализована.
func (s *Service) Register(ctx context.Context, username, email string, birthDate models.Date) (string, error) {
	const op = "service.session.Register"

	username = strings.TrimSpace(username)
	if username == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidUsername)
	}

	normEmail, err := validateEmail(email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if birthDate.IsZero() || birthDate.After(models.DateOf(time.Now().UTC().AddDate(-minRegisterAge, 0, 0))) {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidBirthDate)
	}

	result, password, err := s.storage.Register(ctx, username, normEmail, birthDate)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	switch result {
	case models.RegisterSuccess:
		return password, nil
	case models.RegisterUsernameExists:
		return "", fmt.Errorf("%s: %w", op, ErrUsernameTaken)
	case models.RegisterEmailExists:
		return "", fmt.Errorf("%s: %w", op, ErrEmailTaken)
	default:
		return "", fmt.Errorf("%s: %w: result %q", op, storage.ErrUnknown, result)
	}
}

// LogIn открывает сессию по имени пользователя или e-mail.
// Пустой ключ от хранилища означает "учетные данные не найдены" и
// переводится в ErrInvalidCredentials.
func (s *Service) LogIn(ctx context.Context, usernameOrEmail, password string) (string, error) {
	const op = "service.session.LogIn"

	usernameOrEmail = strings.TrimSpace(usernameOrEmail)
	if usernameOrEmail == "" || password == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	key, err := s.storage.LogIn(ctx, usernameOrEmail, password)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if key == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	return key, nil
}

// LogOut закрывает сессию. Ошибки соединения подавляются: локальная сессия
// клиента уже отброшена, а серверная очистится по сроку истечения.
func (s *Service) LogOut(ctx context.Context, key string) error {
	const op = "service.session.LogOut"

	if err := s.storage.LogOut(ctx, key); err != nil {
		if errors.Is(err, storage.ErrConnection) {
			log.From(ctx).Warn("logout failed, relying on server-side expiry",
				"err", err.Error())
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CheckSession проверяет, действителен ли ключ сессии.
func (s *Service) CheckSession(ctx context.Context, key string) (bool, error) {
	const op = "service.session.CheckSession"

	ok, err := s.storage.CheckSession(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

// UserInfo возвращает данные владельца сессии.
func (s *Service) UserInfo(ctx context.Context, key string) (*models.UserInfo, error) {
	const op = "service.session.UserInfo"

	info, err := s.storage.UserInfo(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if info == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSession)
	}

	return info, nil
}

// validateEmail нормализует и проверяет формат e-mail.
func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(email), nil
}
