package service

import (
	"context"
	"fmt"

	"github.com/navolotsky/phone-book/internal/models"
)

const secondsPerDay = 24 * 3600

// BirthdaysEnabled сообщает, включены ли напоминания о днях рождения.
func (s *Service) BirthdaysEnabled() bool {
	return s.birthdays.TurnedOn
}

// UpcomingBirthdays возвращает контакты, у которых день рождения наступает
// в настроенном окне напоминаний. Значение диапазона переводится в секунды
// до обращения к серверу; тип диапазона проверен конфигурацией на старте.
func (s *Service) UpcomingBirthdays(ctx context.Context, key string) ([]models.Contact, error) {
	const op = "service.birthdays.UpcomingBirthdays"

	seconds := int64(s.birthdays.RangeValue) * secondsPerDay

	contacts, err := s.storage.ContactsWithBirthdayWithin(ctx, key, seconds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contacts, nil
}
