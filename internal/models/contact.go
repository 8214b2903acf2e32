// models содержит доменные сущности телефонной книжки.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout — формат обмена датами с БД и клиентами ("yyyy.MM.dd").
const DateLayout = "2006.01.02"

// Date — календарная дата без времени суток.
// Сериализуется строкой формата DateLayout и в JSON, и в параметрах
// хранимых процедур.
type Date struct {
	t time.Time
}

// ParseDate разбирает строку формата DateLayout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}

	return Date{t: t}, nil
}

// DateOf обрезает время суток, оставляя календарную дату в UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// String возвращает дату в формате DateLayout.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Time возвращает полночь UTC соответствующего дня.
func (d Date) Time() time.Time {
	return d.t
}

// IsZero сообщает, что дата не была задана.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// After сравнивает календарные даты.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal — поэлементное равенство дат (используется при определении
// no-op редактирования контакта).
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Contact — внутренняя доменная модель контакта.
// ID назначается сервером (БД) и непрозрачен для клиента.
type Contact struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	BirthDate Date   `json:"birth_date"`
}

// SameData сообщает, совпадают ли пользовательские поля контакта
// с переданными (идентификатор не участвует в сравнении).
func (c Contact) SameData(name, phone string, birthDate Date) bool {
	return c.Name == name && c.Phone == phone && c.BirthDate.Equal(birthDate)
}
