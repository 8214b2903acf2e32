package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/navolotsky/phone-book/internal/config"
	"github.com/navolotsky/phone-book/internal/models"
	"github.com/navolotsky/phone-book/internal/service"
	"github.com/navolotsky/phone-book/internal/storage"
	"github.com/navolotsky/phone-book/mocks"
)

// Файл unit-тестов HTTP-слоя: роутер + хендлеры поверх настоящего
// сервисного слоя с gomock-хранилищем. Каждый тест собирает свой роутер.

// testAllLetters — конкатенация всех буквенных наборов страниц;
// с ней сервис разыскивает контакт перед редактированием/удалением.
const testAllLetters = "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"

// newAPI — роутер поверх service.New с gomock-хранилищем.
func newAPI(t *testing.T) (http.Handler, *mocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := service.New(st, config.BirthdaysConfig{
		TurnedOn:   true,
		RangeType:  "day",
		RangeValue: 7,
	})

	return NewRouter(svc, Options{}), st
}

// doJSON выполняет запрос к роутеру. Пустой bearer означает запрос
// без заголовка Authorization.
func doJSON(t *testing.T, h http.Handler, method, target, bearer, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

type apiError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	ContactID int64  `json:"contact_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type errEnvelope struct {
	Error apiError `json:"error"`
}

func decodeErr(t *testing.T, rr *httptest.ResponseRecorder) apiError {
	t.Helper()
	var env errEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env.Error
}

func TestRegister_OK(t *testing.T) {
	h, st := newAPI(t)

	d := mustDate(t, "1990.04.12")
	st.EXPECT().
		Register(gomock.Any(), "alice", "alice@example.com", d).
		Return(models.RegisterSuccess, "pw-one-time", nil)

	rr := doJSON(t, h, http.MethodPost, "/auth/register", "",
		`{"username":"alice","email":"alice@example.com","birth_date":"1990.04.12"}`)

	require.Equal(t, http.StatusCreated, rr.Code)

	var out struct {
		Password string `json:"password"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, "pw-one-time", out.Password)
}

func TestRegister_UsernameTaken_Conflict(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.RegisterUsernameExists, "", nil)

	rr := doJSON(t, h, http.MethodPost, "/auth/register", "",
		`{"username":"alice","email":"alice@example.com","birth_date":"1990.04.12"}`)

	require.Equal(t, http.StatusConflict, rr.Code)
	require.Equal(t, "already_exists", decodeErr(t, rr).Code)
}

func TestRegister_BrokenBody_BadRequest(t *testing.T) {
	h, _ := newAPI(t)

	rr := doJSON(t, h, http.MethodPost, "/auth/register", "", `{"username":`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_argument", decodeErr(t, rr).Code)
}

func TestRegister_InvalidEmail_BadRequest(t *testing.T) {
	h, _ := newAPI(t)

	rr := doJSON(t, h, http.MethodPost, "/auth/register", "",
		`{"username":"alice","email":"not-an-email","birth_date":"1990.04.12"}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_argument", decodeErr(t, rr).Code)
}

func TestLogIn_OK_EmbedsUpcomingBirthdays(t *testing.T) {
	h, st := newAPI(t)

	soon := []models.Contact{
		{ID: 3, Name: "Борис", Phone: "+79991234567", BirthDate: mustDate(t, "1991.09.03")},
	}
	st.EXPECT().
		LogIn(gomock.Any(), "alice", "secret").
		Return("key-1", nil)
	st.EXPECT().
		ContactsWithBirthdayWithin(gomock.Any(), "key-1", int64(7*24*3600)).
		Return(soon, nil)

	rr := doJSON(t, h, http.MethodPost, "/auth/login", "",
		`{"username_or_email":"alice","password":"secret"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		SessionKey        string           `json:"session_key"`
		UpcomingBirthdays []models.Contact `json:"upcoming_birthdays"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, "key-1", out.SessionKey)
	require.Len(t, out.UpcomingBirthdays, 1)
	require.Equal(t, int64(3), out.UpcomingBirthdays[0].ID)
}

// Сбой выборки напоминаний не отменяет состоявшийся вход.
func TestLogIn_OK_BirthdaysFetchFailure_Ignored(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().
		LogIn(gomock.Any(), "alice", "secret").
		Return("key-1", nil)
	st.EXPECT().
		ContactsWithBirthdayWithin(gomock.Any(), "key-1", gomock.Any()).
		Return(nil, fmt.Errorf("boom: %w", storage.ErrConnection))

	rr := doJSON(t, h, http.MethodPost, "/auth/login", "",
		`{"username_or_email":"alice","password":"secret"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotContains(t, rr.Body.String(), "upcoming_birthdays")
	require.Contains(t, rr.Body.String(), `"session_key":"key-1"`)
}

func TestLogIn_WrongPassword_Unauthorized(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().
		LogIn(gomock.Any(), "alice", "wrong").
		Return("", nil)

	rr := doJSON(t, h, http.MethodPost, "/auth/login", "",
		`{"username_or_email":"alice","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "invalid_credentials", decodeErr(t, rr).Code)
}

func TestLogOut_OK_NoContent(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().LogOut(gomock.Any(), "key-1").Return(nil)

	rr := doJSON(t, h, http.MethodPost, "/auth/logout", "key-1", "")

	require.Equal(t, http.StatusNoContent, rr.Code)
}

func TestLogOut_WithoutBearer_Unauthorized(t *testing.T) {
	h, _ := newAPI(t)

	rr := doJSON(t, h, http.MethodPost, "/auth/logout", "", "")

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "invalid_session", decodeErr(t, rr).Code)
}

func TestSession_WithoutKey_Invalid(t *testing.T) {
	h, _ := newAPI(t)

	rr := doJSON(t, h, http.MethodGet, "/auth/session", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"valid":false`)
}

func TestSession_WithKey_Valid(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().CheckSession(gomock.Any(), "key-1").Return(true, nil)

	rr := doJSON(t, h, http.MethodGet, "/auth/session", "key-1", "")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"valid":true`)
}

func TestSession_StorageUnavailable_503(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().
		CheckSession(gomock.Any(), "key-1").
		Return(false, fmt.Errorf("ping: %w", storage.ErrConnection))

	rr := doJSON(t, h, http.MethodGet, "/auth/session", "key-1", "")

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	require.Equal(t, "unavailable", decodeErr(t, rr).Code)
}

func TestMe_OK(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().
		UserInfo(gomock.Any(), "key-1").
		Return(&models.UserInfo{Username: "alice", Email: "alice@example.com"}, nil)

	rr := doJSON(t, h, http.MethodGet, "/users/me", "key-1", "")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"username":"alice"`)
	require.Contains(t, rr.Body.String(), `"email":"alice@example.com"`)
}

func TestMe_StaleKey_Unauthorized(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().UserInfo(gomock.Any(), "key-stale").Return(nil, nil)

	rr := doJSON(t, h, http.MethodGet, "/users/me", "key-stale", "")

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "invalid_session", decodeErr(t, rr).Code)
}

func TestPages_StaticList(t *testing.T) {
	h, _ := newAPI(t)

	rr := doJSON(t, h, http.MethodGet, "/contacts/pages", "", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Pages []string `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Len(t, out.Pages, 14)
	require.Equal(t, "АБ", out.Pages[0])
	require.Equal(t, "Другое", out.Pages[len(out.Pages)-1])
}

func TestPageContacts_OK(t *testing.T) {
	h, st := newAPI(t)

	contacts := []models.Contact{
		{ID: 1, Name: "Анна", Phone: "89161234567", BirthDate: mustDate(t, "1985.01.20")},
	}
	st.EXPECT().CheckSession(gomock.Any(), "key-1").Return(true, nil)
	st.EXPECT().Contacts(gomock.Any(), "key-1", "АБ", false).Return(contacts, nil)

	rr := doJSON(t, h, http.MethodGet, "/contacts/pages/"+url.PathEscape("АБ"), "key-1", "")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"page":"АБ"`)
	require.Contains(t, rr.Body.String(), `"Анна"`)
}

// Пустая страница отдается как [], а не null.
func TestPageContacts_EmptyPage_EmptyArray(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().CheckSession(gomock.Any(), "key-1").Return(true, nil)
	st.EXPECT().Contacts(gomock.Any(), "key-1", "ЮЯ", false).Return(nil, nil)

	rr := doJSON(t, h, http.MethodGet, "/contacts/pages/"+url.PathEscape("ЮЯ"), "key-1", "")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"contacts":[]`)
}

func TestPageContacts_UnknownPage_NotFound(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().CheckSession(gomock.Any(), "key-1").Return(true, nil)

	rr := doJSON(t, h, http.MethodGet, "/contacts/pages/XYZ", "key-1", "")

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "not_found", decodeErr(t, rr).Code)
}

func TestPageContacts_StaleKey_Unauthorized(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().CheckSession(gomock.Any(), "key-stale").Return(false, nil)

	rr := doJSON(t, h, http.MethodGet, "/contacts/pages/"+url.PathEscape("АБ"), "key-stale", "")

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "invalid_session", decodeErr(t, rr).Code)
}

func TestAddContact_OK_RefreshesPage(t *testing.T) {
	h, st := newAPI(t)

	d := mustDate(t, "1990.04.12")
	added := models.Contact{ID: 42, Name: "Борис", Phone: "+79991234567", BirthDate: d}

	st.EXPECT().
		AddContact(gomock.Any(), "key-1", "Борис", "+79991234567", d).
		Return(models.AddContactSuccess, int64(42), nil)
	st.EXPECT().
		Contacts(gomock.Any(), "key-1", "АБ", false).
		Return([]models.Contact{added}, nil)

	rr := doJSON(t, h, http.MethodPost, "/contacts", "key-1",
		`{"name":"Борис","phone":"+79991234567","birth_date":"1990.04.12"}`)

	require.Equal(t, http.StatusCreated, rr.Code)

	var out struct {
		Contact models.Contact              `json:"contact"`
		Page    string                      `json:"page"`
		Pages   map[string][]models.Contact `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, int64(42), out.Contact.ID)
	require.Equal(t, "АБ", out.Page)
	require.Len(t, out.Pages["АБ"], 1)
}

func TestAddContact_Duplicate_Conflict(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().
		AddContact(gomock.Any(), "key-1", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AddContactExists, int64(42), nil)

	rr := doJSON(t, h, http.MethodPost, "/contacts", "key-1",
		`{"name":"Борис","phone":"+79991234567","birth_date":"1990.04.12"}`)

	require.Equal(t, http.StatusConflict, rr.Code)

	apiErr := decodeErr(t, rr)
	require.Equal(t, "already_exists", apiErr.Code)
	require.Equal(t, int64(42), apiErr.ContactID)
}

// Конфликт "такие же данные у другого контакта" отдает 409 с его ID.
func TestEditContact_SameDataElsewhere_ConflictCarriesID(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().
		Contacts(gomock.Any(), "key-1", testAllLetters, false).
		Return(nil, nil)
	st.EXPECT().
		Contacts(gomock.Any(), "key-1", testAllLetters, true).
		Return(nil, nil)
	st.EXPECT().
		EditContact(gomock.Any(), "key-1", int64(9), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.EditContactSameDataExists, int64(12), nil)

	rr := doJSON(t, h, http.MethodPut, "/contacts/9", "key-1",
		`{"name":"Олег","phone":"+79991234567","birth_date":"1990.04.12"}`)

	require.Equal(t, http.StatusConflict, rr.Code)

	apiErr := decodeErr(t, rr)
	require.Equal(t, "already_exists", apiErr.Code)
	require.Equal(t, int64(12), apiErr.ContactID)
}

func TestAddContact_BadPhone_BadRequest(t *testing.T) {
	h, _ := newAPI(t)

	rr := doJSON(t, h, http.MethodPost, "/contacts", "key-1",
		`{"name":"Борис","phone":"12345","birth_date":"1990.04.12"}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_argument", decodeErr(t, rr).Code)
}

// Совпадение всех полей с сохраненными превращает правку в отмену:
// процедура edit_contact не вызывается вовсе.
func TestEditContact_SameData_Cancelled(t *testing.T) {
	h, st := newAPI(t)

	d := mustDate(t, "1990.04.12")
	current := models.Contact{ID: 5, Name: "Борис", Phone: "+79991234567", BirthDate: d}

	st.EXPECT().
		Contacts(gomock.Any(), "key-1", testAllLetters, false).
		Return([]models.Contact{current}, nil)

	rr := doJSON(t, h, http.MethodPut, "/contacts/5", "key-1",
		`{"name":"Борис","phone":"+79991234567","birth_date":"1990.04.12"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Cancelled bool   `json:"cancelled"`
		OldPage   string `json:"old_page"`
		NewPage   string `json:"new_page"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.True(t, out.Cancelled)
	require.Equal(t, "АБ", out.OldPage)
	require.Equal(t, "АБ", out.NewPage)
	require.NotContains(t, rr.Body.String(), `"pages"`)
}

func TestEditContact_OK_MovesBetweenPages(t *testing.T) {
	h, st := newAPI(t)

	d := mustDate(t, "1990.04.12")
	current := models.Contact{ID: 5, Name: "Борис", Phone: "+79991234567", BirthDate: d}

	st.EXPECT().
		Contacts(gomock.Any(), "key-1", testAllLetters, false).
		Return([]models.Contact{current}, nil)
	st.EXPECT().
		EditContact(gomock.Any(), "key-1", int64(5), "Олег", "+79991234567", d).
		Return(models.EditContactSuccess, int64(0), nil)
	st.EXPECT().
		Contacts(gomock.Any(), "key-1", "АБ", false).
		Return(nil, nil)
	st.EXPECT().
		Contacts(gomock.Any(), "key-1", "ОП", false).
		Return([]models.Contact{{ID: 5, Name: "Олег", Phone: "+79991234567", BirthDate: d}}, nil)

	rr := doJSON(t, h, http.MethodPut, "/contacts/5", "key-1",
		`{"name":"Олег","phone":"+79991234567","birth_date":"1990.04.12"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Cancelled bool                        `json:"cancelled"`
		OldPage   string                      `json:"old_page"`
		NewPage   string                      `json:"new_page"`
		Pages     map[string][]models.Contact `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.False(t, out.Cancelled)
	require.Equal(t, "АБ", out.OldPage)
	require.Equal(t, "ОП", out.NewPage)
	require.Len(t, out.Pages, 2)
}

func TestEditContact_NoAuthority_Forbidden(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().
		Contacts(gomock.Any(), "key-1", testAllLetters, false).
		Return(nil, nil)
	st.EXPECT().
		Contacts(gomock.Any(), "key-1", testAllLetters, true).
		Return(nil, nil)
	st.EXPECT().
		EditContact(gomock.Any(), "key-1", int64(9), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.EditContactNoAuthority, int64(0), nil)

	rr := doJSON(t, h, http.MethodPut, "/contacts/9", "key-1",
		`{"name":"Олег","phone":"+79991234567","birth_date":"1990.04.12"}`)

	require.Equal(t, http.StatusForbidden, rr.Code)
	require.Equal(t, "permission_denied", decodeErr(t, rr).Code)
}

func TestEditContact_NonNumericID_BadRequest(t *testing.T) {
	h, _ := newAPI(t)

	rr := doJSON(t, h, http.MethodPut, "/contacts/abc", "key-1",
		`{"name":"Олег","phone":"+79991234567","birth_date":"1990.04.12"}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_argument", decodeErr(t, rr).Code)
}

func TestDeleteContact_OK(t *testing.T) {
	h, st := newAPI(t)

	d := mustDate(t, "1990.04.12")
	current := models.Contact{ID: 7, Name: "Борис", Phone: "+79991234567", BirthDate: d}

	st.EXPECT().
		Contacts(gomock.Any(), "key-1", testAllLetters, false).
		Return([]models.Contact{current}, nil)
	st.EXPECT().
		DeleteContact(gomock.Any(), "key-1", int64(7)).
		Return(models.DeleteContactSuccess, nil)
	st.EXPECT().
		Contacts(gomock.Any(), "key-1", "АБ", false).
		Return(nil, nil)

	rr := doJSON(t, h, http.MethodDelete, "/contacts/7", "key-1", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Contact models.Contact              `json:"contact"`
		Page    string                      `json:"page"`
		Pages   map[string][]models.Contact `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, int64(7), out.Contact.ID)
	require.Equal(t, "АБ", out.Page)
	require.Empty(t, out.Pages["АБ"])
}

func TestDeleteContact_NoAuthority_Forbidden(t *testing.T) {
	h, st := newAPI(t)

	st.EXPECT().
		Contacts(gomock.Any(), "key-1", testAllLetters, false).
		Return(nil, nil)
	st.EXPECT().
		Contacts(gomock.Any(), "key-1", testAllLetters, true).
		Return(nil, nil)
	st.EXPECT().
		DeleteContact(gomock.Any(), "key-1", int64(7)).
		Return(models.DeleteContactNoAuthority, nil)

	rr := doJSON(t, h, http.MethodDelete, "/contacts/7", "key-1", "")

	require.Equal(t, http.StatusForbidden, rr.Code)
	require.Equal(t, "permission_denied", decodeErr(t, rr).Code)
}

func TestBirthdays_OK(t *testing.T) {
	h, st := newAPI(t)

	soon := []models.Contact{
		{ID: 3, Name: "Борис", Phone: "+79991234567", BirthDate: mustDate(t, "1991.09.03")},
	}
	st.EXPECT().CheckSession(gomock.Any(), "key-1").Return(true, nil)
	st.EXPECT().
		ContactsWithBirthdayWithin(gomock.Any(), "key-1", int64(7*24*3600)).
		Return(soon, nil)

	rr := doJSON(t, h, http.MethodGet, "/contacts/birthdays", "key-1", "")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"Борис"`)
}

func TestRouter_ResponseCarriesRequestID(t *testing.T) {
	h, _ := newAPI(t)

	rr := doJSON(t, h, http.MethodGet, "/contacts/pages", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestRouter_BasePathMount(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := service.New(st, config.BirthdaysConfig{TurnedOn: false, RangeType: "day"})

	h := NewRouter(svc, Options{BasePath: "/api"})

	rr := doJSON(t, h, http.MethodGet, "/api/contacts/pages", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/contacts/pages", "", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}
