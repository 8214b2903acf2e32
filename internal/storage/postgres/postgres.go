package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/navolotsky/phone-book/internal/storage"
)

type Storage struct {
	db *pgxpool.Pool
}

// New создает новое подключение к PostgreSQL.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	return &Storage{db: db}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.db.Close()
}

// classify сводит ошибку нижнего уровня к одному из четырех классов
// хранилища. Ошибки соединения выделяются отдельно: их вызывающая
// сторона показывает пользователю как "попробуйте позже".
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsConnectionException(pgErr.Code):
			return fmt.Errorf("%w: %v", storage.ErrConnection, err)
		case pgerrcode.IsSyntaxErrororAccessRuleViolation(pgErr.Code),
			pgerrcode.IsInvalidSQLStatementName(pgErr.Code),
			pgerrcode.IsDataException(pgErr.Code):
			return fmt.Errorf("%w: %v", storage.ErrStatement, err)
		case pgerrcode.IsTransactionRollback(pgErr.Code):
			return fmt.Errorf("%w: %v", storage.ErrTransaction, err)
		}

		return fmt.Errorf("%w: %v", storage.ErrUnknown, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", storage.ErrConnection, err)
	}

	return fmt.Errorf("%w: %v", storage.ErrUnknown, err)
}

// Проверка на соответствие интерфейсу Storage.
var _ storage.Storage = (*Storage)(nil)
