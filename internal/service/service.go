// service содержит бизнес-логику телефонной книжки: сессии пользователей,
// страничный справочник контактов и напоминания о днях рождения.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Бизнес-исходы хранимых процедур (result-коды) переводятся в переменные
//     ошибок ниже и далее маппятся транспортом на HTTP-статусы.
package service

import (
	"errors"
	"fmt"

	"github.com/navolotsky/phone-book/internal/config"
	"github.com/navolotsky/phone-book/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSession — ключ сессии недействителен или просрочен.
	// Транспорт: HTTP 401.
	ErrInvalidSession = errors.New("invalid session key")

	// ErrUsernameTaken — имя пользователя уже занято. Транспорт: HTTP 409.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken — e-mail уже занят другим пользователем. Транспорт: HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrContactExists — контакт с такими данными уже есть у владельца.
	// Транспорт: HTTP 409.
	ErrContactExists = errors.New("contact already exists")

	// ErrSameDataContact — у владельца уже есть другой контакт с такими же
	// данными. Транспорт: HTTP 409.
	ErrSameDataContact = errors.New("same data contact already exists")

	// ErrContactNotFound — контакт с данным ID не существует. Транспорт: HTTP 404.
	ErrContactNotFound = errors.New("contact not found")

	// ErrNoAuthority — контакт принадлежит другому пользователю. Транспорт: HTTP 403.
	ErrNoAuthority = errors.New("no authority over given contact")

	// ErrUnknownPage — запрошена несуществующая страница справочника.
	// Транспорт: HTTP 404.
	ErrUnknownPage = errors.New("unknown page")

	// ErrInvalidName — имя контакта пустое или длиннее 255 символов.
	// Транспорт: HTTP 400.
	ErrInvalidName = errors.New("invalid contact name")

	// ErrInvalidPhone — номер телефона не соответствует российскому мобильному
	// формату. Транспорт: HTTP 400.
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidBirthDate — дата рождения в будущем либо не проходит возрастное
	// ограничение при регистрации. Транспорт: HTTP 400.
	ErrInvalidBirthDate = errors.New("invalid birth date")

	// ErrInvalidUsername — имя пользователя пустое. Транспорт: HTTP 400.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidEmail — e-mail имеет некорректный формат. Транспорт: HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")
)

// ConflictError дополняет ErrContactExists/ErrSameDataContact
// идентификатором контакта, с которым обнаружен конфликт. Процедуры
// add_contact/edit_contact возвращают этот ID вместе с result-кодом;
// транспорт отдает его клиенту в теле ответа 409.
// Через errors.Is разворачивается в обычную переменную ошибки.
type ConflictError struct {
	Err       error
	ContactID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v (contact %d)", e.Err, e.ContactID)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// Service описывает бизнес-логику телефонной книжки.
type Service struct {
	storage   storage.Storage
	birthdays config.BirthdaysConfig
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, birthdays config.BirthdaysConfig) *Service {
	return &Service{
		storage:   storage,
		birthdays: birthdays,
	}
}
