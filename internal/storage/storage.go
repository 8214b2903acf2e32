package storage

import (
	"context"
	"errors"

	"github.com/navolotsky/phone-book/internal/models"
)

var (
	// ErrConnection — сбой соединения с БД (dial, обрыв, исчерпание пула).
	ErrConnection = errors.New("connection error")
	// ErrStatement — ошибка в самом запросе или его параметрах.
	ErrStatement = errors.New("statement error")
	// ErrTransaction — сбой транзакции (serialization failure, deadlock).
	ErrTransaction = errors.New("transaction error")
	// ErrUnknown — прочие ошибки, включая нераспознанные ответы процедур.
	ErrUnknown = errors.New("unknown error")
)

// SessionStorage выполняет операции над учетными записями и сессиями.
type SessionStorage interface {
	// CheckSession проверяет, действителен ли ключ сессии.
	CheckSession(ctx context.Context, key string) (bool, error)
	// Register создает учетную запись; при успехе возвращает сгенерированный
	// сервером одноразовый пароль.
	Register(ctx context.Context, username, email string, birthDate models.Date) (models.RegisterResult, string, error)
	// LogIn открывает сессию; при неверных учетных данных возвращает пустой ключ.
	LogIn(ctx context.Context, usernameOrEmail, password string) (key string, err error)
	// LogOut закрывает сессию по ключу.
	LogOut(ctx context.Context, key string) error
	// UserInfo возвращает данные владельца сессии или nil при недействительном ключе.
	UserInfo(ctx context.Context, key string) (*models.UserInfo, error)
}

// ContactStorage выполняет операции над контактами владельца сессии.
type ContactStorage interface {
	// Contacts возвращает контакты, чьи имена начинаются (exclude=false)
	// либо не начинаются (exclude=true) с букв строки letterSet.
	Contacts(ctx context.Context, key, letterSet string, exclude bool) ([]models.Contact, error)
	// AddContact создает контакт; при успехе возвращает его ID.
	AddContact(ctx context.Context, key, name, phone string, birthDate models.Date) (models.AddContactResult, int64, error)
	// EditContact изменяет контакт; при конфликте возвращает ID контакта
	// с такими же данными.
	EditContact(ctx context.Context, key string, id int64, name, phone string, birthDate models.Date) (models.EditContactResult, int64, error)
	// DeleteContact удаляет контакт по его ID.
	DeleteContact(ctx context.Context, key string, id int64) (models.DeleteContactResult, error)
	// ContactsWithBirthdayWithin возвращает контакты, у которых день рождения
	// наступает в ближайшие seconds секунд.
	ContactsWithBirthdayWithin(ctx context.Context, key string, seconds int64) ([]models.Contact, error)
}

// Storage задает контракт работы с БД.
type Storage interface {
	SessionStorage
	ContactStorage
	Close()
}
