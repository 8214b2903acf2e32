package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/navolotsky/phone-book/internal/models"
	"github.com/navolotsky/phone-book/internal/storage"
)

// CheckSession проверяет, действителен ли ключ сессии.
func (s *Storage) CheckSession(ctx context.Context, key string) (bool, error) {
	const op = "storage.postgres.CheckSession"

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, classify(err))
	}
	defer conn.Release()

	var exists bool
	if err := conn.QueryRow(ctx, `SELECT check_session($1)`, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, classify(err))
	}

	return exists, nil
}

// Register создает учетную запись через процедуру register.
// Пароль генерируется на стороне БД и возвращается только при успехе.
func (s *Storage) Register(ctx context.Context, username, email string, birthDate models.Date) (models.RegisterResult, string, error) {
	const op = "storage.postgres.Register"

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, classify(err))
	}
	defer conn.Release()

	query := `SELECT result_msg, password FROM register($1, $2, $3)`

	var (
		resultMsg string
		password  *string
	)
	err = conn.QueryRow(ctx, query, username, email, birthDate.Time()).Scan(&resultMsg, &password)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, classify(err))
	}

	result := models.RegisterResult(resultMsg)
	if !result.Known() {
		return "", "", fmt.Errorf("%s: %w: unrecognized result %q", op, storage.ErrUnknown, resultMsg)
	}

	if password == nil {
		return result, "", nil
	}

	return result, *password, nil
}

// LogIn открывает сессию. Пустой ключ означает "учетные данные не найдены";
// это нормальный исход, а не ошибка.
func (s *Storage) LogIn(ctx context.Context, usernameOrEmail, password string) (string, error) {
	const op = "storage.postgres.LogIn"

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, classify(err))
	}
	defer conn.Release()

	var key *string
	err = conn.QueryRow(ctx, `SELECT log_in($1, $2)`, usernameOrEmail, password).Scan(&key)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, classify(err))
	}

	if key == nil {
		return "", nil
	}

	return *key, nil
}

// LogOut закрывает сессию по ключу.
func (s *Storage) LogOut(ctx context.Context, key string) error {
	const op = "storage.postgres.LogOut"

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, classify(err))
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT log_out($1)`, key); err != nil {
		return fmt.Errorf("%s: %w", op, classify(err))
	}

	return nil
}

// UserInfo возвращает данные владельца сессии.
// Недействительный ключ дает пустой результат (nil, nil).
func (s *Storage) UserInfo(ctx context.Context, key string) (*models.UserInfo, error) {
	const op = "storage.postgres.UserInfo"

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	defer conn.Release()

	query := `SELECT username, email FROM get_user_info($1)`

	var info models.UserInfo
	err = conn.QueryRow(ctx, query, key).Scan(&info.Username, &info.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	return &info, nil
}
