package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/navolotsky/phone-book/internal/models"
	"github.com/navolotsky/phone-book/internal/storage"
)

// OtherPage — страница-ловушка для имен, чья первая буква не входит
// ни в один буквенный набор.
const OtherPage = "Другое"

// letterSets — фиксированный порядок буквенных страниц справочника.
// Вместе со страницей OtherPage наборы покрывают весь алфавит, поэтому
// каждый контакт попадает ровно на одну страницу.
var letterSets = []string{
	"АБ", "ВГ", "ДЕЁ", "ЖЗИЙ", "КЛ", "МН", "ОП",
	"РС", "ТУ", "ФХ", "ЦЧШЩ", "ЪЫЬЭ", "ЮЯ",
}

// allLetters — конкатенация всех буквенных наборов; с exclude=true
// дает содержимое страницы OtherPage.
var allLetters = strings.Join(letterSets, "")

// maxNameLength — предел длины имени контакта в символах.
const maxNameLength = 255

// phonePattern — российский мобильный номер: необязательный префикс
// +7/7/8 и десять цифр.
var phonePattern = regexp.MustCompile(`^(\+7|7|8)?\d{10}$`)

// MutationResult — итог успешной мутации: контакт, его страница и
// перечитанное после записи содержимое затронутых страниц.
type MutationResult struct {
	Contact models.Contact
	Page    string
	Pages   map[string][]models.Contact
}

// EditResult — итог редактирования контакта. Cancelled означает, что
// переданные поля совпали с сохраненными и мутация не выполнялась
// ("ОК с теми же данными" равносильно отмене).
type EditResult struct {
	Cancelled bool
	Contact   models.Contact
	OldPage   string
	NewPage   string
	Pages     map[string][]models.Contact
}

// PageNames возвращает имена страниц в порядке объявления,
// включая замыкающую OtherPage.
func PageNames() []string {
	names := make([]string, 0, len(letterSets)+1)
	names = append(names, letterSets...)
	return append(names, OtherPage)
}

// DetectPage определяет страницу контакта по первой букве имени.
// Чистая функция: просматривает наборы в порядке объявления и возвращает
// первый, содержащий букву; иначе OtherPage.
func DetectPage(name string) string {
	first, _ := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return OtherPage
	}

	upper := strings.ToUpper(string(first))
	for _, set := range letterSets {
		if strings.Contains(set, upper) {
			return set
		}
	}

	return OtherPage
}

// pageQuery переводит имя страницы в параметры процедуры get_contacts.
func pageQuery(page string) (letters string, exclude, ok bool) {
	if page == OtherPage {
		return allLetters, true, true
	}

	for _, set := range letterSets {
		if set == page {
			return set, false, true
		}
	}

	return "", false, false
}

// ListPage возвращает содержимое страницы справочника.
func (s *Service) ListPage(ctx context.Context, key, page string) ([]models.Contact, error) {
	const op = "service.contacts.ListPage"

	letters, exclude, ok := pageQuery(page)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", op, ErrUnknownPage, page)
	}

	contacts, err := s.storage.Contacts(ctx, key, letters, exclude)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contacts, nil
}

// AddContact создает контакт и перечитывает его страницу, чтобы ответ
// был согласован с только что выполненной записью.
func (s *Service) AddContact(ctx context.Context, key, name, phone string, birthDate models.Date) (*MutationResult, error) {
	const op = "service.contacts.AddContact"

	if err := validateContact(name, phone, birthDate); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, id, err := s.storage.AddContact(ctx, key, name, phone, birthDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch result {
	case models.AddContactSuccess:
	case models.AddContactExists:
		return nil, fmt.Errorf("%s: %w", op, &ConflictError{Err: ErrContactExists, ContactID: id})
	case models.AddContactInvalidSession:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSession)
	default:
		return nil, fmt.Errorf("%s: %w: result %q", op, storage.ErrUnknown, result)
	}

	page := DetectPage(name)
	pages, err := s.refreshPages(ctx, key, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &MutationResult{
		Contact: models.Contact{ID: id, Name: name, Phone: phone, BirthDate: birthDate},
		Page:    page,
		Pages:   pages,
	}, nil
}

// EditContact изменяет контакт. Перед мутацией разыскивает сохраненные
// значения: совпадение всех полей превращает вызов в отмену без обращения
// к процедуре edit_contact. После успешной правки перечитываются старая и
// новая страницы, поскольку смена имени может перенести контакт.
func (s *Service) EditContact(ctx context.Context, key string, id int64, name, phone string, birthDate models.Date) (*EditResult, error) {
	const op = "service.contacts.EditContact"

	if err := validateContact(name, phone, birthDate); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	current, found, err := s.locateContact(ctx, key, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if found && current.SameData(name, phone, birthDate) {
		page := DetectPage(current.Name)
		return &EditResult{
			Cancelled: true,
			Contact:   current,
			OldPage:   page,
			NewPage:   page,
		}, nil
	}

	result, sameDataID, err := s.storage.EditContact(ctx, key, id, name, phone, birthDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch result {
	case models.EditContactSuccess:
	case models.EditContactSameDataExists:
		return nil, fmt.Errorf("%s: %w", op, &ConflictError{Err: ErrSameDataContact, ContactID: sameDataID})
	case models.EditContactDoesntExist:
		return nil, fmt.Errorf("%s: %w", op, ErrContactNotFound)
	case models.EditContactNoAuthority:
		return nil, fmt.Errorf("%s: %w", op, ErrNoAuthority)
	case models.EditContactInvalidSession:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSession)
	default:
		return nil, fmt.Errorf("%s: %w: result %q", op, storage.ErrUnknown, result)
	}

	newPage := DetectPage(name)
	oldPage := newPage
	if found {
		oldPage = DetectPage(current.Name)
	}

	pages, err := s.refreshPages(ctx, key, oldPage, newPage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &EditResult{
		Contact: models.Contact{ID: id, Name: name, Phone: phone, BirthDate: birthDate},
		OldPage: oldPage,
		NewPage: newPage,
		Pages:   pages,
	}, nil
}

// DeleteContact удаляет контакт и перечитывает его страницу.
func (s *Service) DeleteContact(ctx context.Context, key string, id int64) (*MutationResult, error) {
	const op = "service.contacts.DeleteContact"

	current, found, err := s.locateContact(ctx, key, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := s.storage.DeleteContact(ctx, key, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch result {
	case models.DeleteContactSuccess:
	case models.DeleteContactDoesntExist:
		return nil, fmt.Errorf("%s: %w", op, ErrContactNotFound)
	case models.DeleteContactNoAuthority:
		return nil, fmt.Errorf("%s: %w", op, ErrNoAuthority)
	case models.DeleteContactInvalidSession:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSession)
	default:
		return nil, fmt.Errorf("%s: %w: result %q", op, storage.ErrUnknown, result)
	}

	res := &MutationResult{Contact: current, Pages: map[string][]models.Contact{}}
	if found {
		res.Page = DetectPage(current.Name)
		res.Pages, err = s.refreshPages(ctx, key, res.Page)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return res, nil
}

// locateContact разыскивает контакт по ID среди всех страниц владельца.
// Полный перебор закрывается двумя вызовами get_contacts: буквенные
// страницы одним набором и страница OtherPage через exclude.
func (s *Service) locateContact(ctx context.Context, key string, id int64) (models.Contact, bool, error) {
	const op = "service.contacts.locateContact"

	for _, exclude := range []bool{false, true} {
		contacts, err := s.storage.Contacts(ctx, key, allLetters, exclude)
		if err != nil {
			return models.Contact{}, false, fmt.Errorf("%s: %w", op, err)
		}

		for _, c := range contacts {
			if c.ID == id {
				return c, true, nil
			}
		}
	}

	return models.Contact{}, false, nil
}

// refreshPages перечитывает перечисленные страницы (без дублей).
func (s *Service) refreshPages(ctx context.Context, key string, names ...string) (map[string][]models.Contact, error) {
	pages := make(map[string][]models.Contact, len(names))
	for _, name := range names {
		if _, ok := pages[name]; ok {
			continue
		}

		contacts, err := s.ListPage(ctx, key, name)
		if err != nil {
			return nil, err
		}

		pages[name] = contacts
	}

	return pages, nil
}

// validateContact проверяет пользовательские поля контакта.
func validateContact(name, phone string, birthDate models.Date) error {
	if n := utf8.RuneCountInString(name); n == 0 || n > maxNameLength {
		return ErrInvalidName
	}

	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}

	if birthDate.IsZero() || birthDate.After(models.DateOf(time.Now().UTC())) {
		return ErrInvalidBirthDate
	}

	return nil
}
