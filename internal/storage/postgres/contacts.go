package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/navolotsky/phone-book/internal/models"
	"github.com/navolotsky/phone-book/internal/storage"
)

// Contacts возвращает контакты владельца сессии, чьи имена начинаются
// (exclude=false) либо не начинаются (exclude=true) с букв строки letterSet.
// Двухрежимный параметр exclude закрывает страницу "Другое" без отдельной
// процедуры.
func (s *Storage) Contacts(ctx context.Context, key, letterSet string, exclude bool) ([]models.Contact, error) {
	const op = "storage.postgres.Contacts"

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	defer conn.Release()

	query := `SELECT id, name, phone_number, birth_date FROM get_contacts($1, $2, $3)`

	rows, err := conn.Query(ctx, query, key, letterSet, exclude)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var (
			c         models.Contact
			birthDate time.Time
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &birthDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, classify(err))
		}

		c.BirthDate = models.DateOf(birthDate)
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	return contacts, nil
}

// AddContact создает контакт; при успехе возвращает его ID.
func (s *Storage) AddContact(ctx context.Context, key, name, phone string, birthDate models.Date) (models.AddContactResult, int64, error) {
	const op = "storage.postgres.AddContact"

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w", op, classify(err))
	}
	defer conn.Release()

	query := `SELECT result_msg, contact_id FROM add_contact($1, $2, $3, $4)`

	var (
		resultMsg string
		contactID *int64
	)
	err = conn.QueryRow(ctx, query, key, name, phone, birthDate.Time()).Scan(&resultMsg, &contactID)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w", op, classify(err))
	}

	result := models.AddContactResult(resultMsg)
	if !result.Known() {
		return "", 0, fmt.Errorf("%s: %w: unrecognized result %q", op, storage.ErrUnknown, resultMsg)
	}

	if contactID == nil {
		return result, 0, nil
	}

	return result, *contactID, nil
}

// EditContact изменяет контакт по его ID. При конфликте данных возвращает
// ID контакта, у которого такие же имя, телефон и дата рождения.
func (s *Storage) EditContact(ctx context.Context, key string, id int64, name, phone string, birthDate models.Date) (models.EditContactResult, int64, error) {
	const op = "storage.postgres.EditContact"

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w", op, classify(err))
	}
	defer conn.Release()

	query := `SELECT result_msg, same_data_contact_id FROM edit_contact($1, $2, $3, $4, $5)`

	var (
		resultMsg  string
		sameDataID *int64
	)
	err = conn.QueryRow(ctx, query, key, id, name, phone, birthDate.Time()).Scan(&resultMsg, &sameDataID)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w", op, classify(err))
	}

	result := models.EditContactResult(resultMsg)
	if !result.Known() {
		return "", 0, fmt.Errorf("%s: %w: unrecognized result %q", op, storage.ErrUnknown, resultMsg)
	}

	if sameDataID == nil {
		return result, 0, nil
	}

	return result, *sameDataID, nil
}

// DeleteContact удаляет контакт по его ID.
func (s *Storage) DeleteContact(ctx context.Context, key string, id int64) (models.DeleteContactResult, error) {
	const op = "storage.postgres.DeleteContact"

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, classify(err))
	}
	defer conn.Release()

	var resultMsg string
	err = conn.QueryRow(ctx, `SELECT delete_contact($1, $2)`, key, id).Scan(&resultMsg)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, classify(err))
	}

	result := models.DeleteContactResult(resultMsg)
	if !result.Known() {
		return "", fmt.Errorf("%s: %w: unrecognized result %q", op, storage.ErrUnknown, resultMsg)
	}

	return result, nil
}

// ContactsWithBirthdayWithin возвращает контакты, у которых день рождения
// наступает в ближайшие seconds секунд.
func (s *Storage) ContactsWithBirthdayWithin(ctx context.Context, key string, seconds int64) ([]models.Contact, error) {
	const op = "storage.postgres.ContactsWithBirthdayWithin"

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	defer conn.Release()

	query := `SELECT id, name, phone_number, birth_date FROM get_contacts_having_birthday_in_range($1, $2)`

	rows, err := conn.Query(ctx, query, key, seconds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var (
			c         models.Contact
			birthDate time.Time
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &birthDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, classify(err))
		}

		c.BirthDate = models.DateOf(birthDate)
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	return contacts, nil
}
