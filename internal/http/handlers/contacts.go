package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/navolotsky/phone-book/internal/errors"
	"github.com/navolotsky/phone-book/internal/models"
	"github.com/navolotsky/phone-book/internal/service"
)

type pagesResponse struct {
	Pages []string `json:"pages"`
}

// Pages — GET /contacts/pages: имена страниц справочника в порядке
// объявления, включая замыкающую "Другое".
func (h *Handlers) Pages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pagesResponse{Pages: service.PageNames()})
}

type pageContactsResponse struct {
	Page     string           `json:"page"`
	Contacts []models.Contact `json:"contacts"`
}

// PageContacts — GET /contacts/pages/{page}: содержимое одной страницы.
func (h *Handlers) PageContacts(w http.ResponseWriter, r *http.Request) {
	key, err := h.validSessionKey(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page := chi.URLParam(r, "page")

	contacts, err := h.svc.ListPage(r.Context(), key, page)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageContactsResponse{Page: page, Contacts: notNil(contacts)})
}

type contactRequest struct {
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	BirthDate models.Date `json:"birth_date"`
}

type mutationResponse struct {
	Contact models.Contact              `json:"contact"`
	Page    string                      `json:"page"`
	Pages   map[string][]models.Contact `json:"pages"`
}

// AddContact — POST /contacts. В ответе сам контакт, его страница и
// перечитанное после записи содержимое страницы.
func (h *Handlers) AddContact(w http.ResponseWriter, r *http.Request) {
	key, err := sessionKey(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in contactRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("decode: %w", apierrors.ErrBadRequest))
		return
	}

	res, err := h.svc.AddContact(r.Context(), key, in.Name, in.Phone, in.BirthDate)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, mutationResponse{
		Contact: res.Contact,
		Page:    res.Page,
		Pages:   res.Pages,
	})
}

type editResponse struct {
	Cancelled bool                        `json:"cancelled"`
	Contact   models.Contact              `json:"contact"`
	OldPage   string                      `json:"old_page"`
	NewPage   string                      `json:"new_page"`
	Pages     map[string][]models.Contact `json:"pages,omitempty"`
}

// EditContact — PUT /contacts/{id}. Поля, совпавшие с сохраненными,
// превращают запрос в отмену: cancelled=true и мутация не выполняется.
func (h *Handlers) EditContact(w http.ResponseWriter, r *http.Request) {
	key, err := sessionKey(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	id, err := contactID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in contactRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("decode: %w", apierrors.ErrBadRequest))
		return
	}

	res, err := h.svc.EditContact(r.Context(), key, id, in.Name, in.Phone, in.BirthDate)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, editResponse{
		Cancelled: res.Cancelled,
		Contact:   res.Contact,
		OldPage:   res.OldPage,
		NewPage:   res.NewPage,
		Pages:     res.Pages,
	})
}

// DeleteContact — DELETE /contacts/{id}.
func (h *Handlers) DeleteContact(w http.ResponseWriter, r *http.Request) {
	key, err := sessionKey(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	id, err := contactID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.DeleteContact(r.Context(), key, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse{
		Contact: res.Contact,
		Page:    res.Page,
		Pages:   res.Pages,
	})
}

type birthdaysResponse struct {
	Contacts []models.Contact `json:"contacts"`
}

// Birthdays — GET /contacts/birthdays: контакты с днем рождения в
// настроенном окне напоминаний.
func (h *Handlers) Birthdays(w http.ResponseWriter, r *http.Request) {
	key, err := h.validSessionKey(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	contacts, err := h.svc.UpcomingBirthdays(r.Context(), key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, birthdaysResponse{Contacts: notNil(contacts)})
}

// validSessionKey — ключ сессии с проверкой действительности.
// Процедуры чтения отдают пустую выборку для чужого ключа, поэтому
// недействительная сессия отсекается явной проверкой до запроса.
func (h *Handlers) validSessionKey(r *http.Request) (string, error) {
	key, err := sessionKey(r)
	if err != nil {
		return "", err
	}

	ok, err := h.svc.CheckSession(r.Context(), key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("stale session key: %w", service.ErrInvalidSession)
	}

	return key, nil
}

// contactID разбирает {id} из пути.
func contactID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("contact id %q: %w", raw, apierrors.ErrBadRequest)
	}

	return id, nil
}

// notNil заменяет nil-выборку пустым срезом, чтобы в JSON уходил [].
func notNil(contacts []models.Contact) []models.Contact {
	if contacts == nil {
		return []models.Contact{}
	}

	return contacts
}
