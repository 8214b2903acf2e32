package models

// Коды бизнес-исходов операций. Строковые значения — это ровно те
// result-сообщения, которые возвращают хранимые процедуры; неизвестное
// значение трактуется хранилищем как программная ошибка, а не как исход.

// RegisterResult — исход регистрации пользователя.
type RegisterResult string

const (
	RegisterSuccess        RegisterResult = "registered_successfully"
	RegisterUsernameExists RegisterResult = "username_already_exists"
	RegisterEmailExists    RegisterResult = "email_already_exists"
	RegisterUnknownError   RegisterResult = "unknown_error"
)

// Known сообщает, что значение входит в контракт процедуры register.
func (r RegisterResult) Known() bool {
	switch r {
	case RegisterSuccess, RegisterUsernameExists, RegisterEmailExists, RegisterUnknownError:
		return true
	}
	return false
}

// AddContactResult — исход добавления контакта.
type AddContactResult string

const (
	AddContactSuccess        AddContactResult = "added_successfully"
	AddContactExists         AddContactResult = "contact_already_exists"
	AddContactInvalidSession AddContactResult = "invalid_session_key"
	AddContactUnknownError   AddContactResult = "unknown_error"
)

func (r AddContactResult) Known() bool {
	switch r {
	case AddContactSuccess, AddContactExists, AddContactInvalidSession, AddContactUnknownError:
		return true
	}
	return false
}

// EditContactResult — исход редактирования контакта.
//
// EditContactCancelled — клиентский исход: данные не изменились,
// вызов edit_contact не выполнялся ("ОК с теми же данными" = "Отмена").
// Хранимая процедура такого значения не возвращает.
type EditContactResult string

const (
	EditContactSuccess        EditContactResult = "edited_successfully"
	EditContactSameDataExists EditContactResult = "same_data_contact_already_exists"
	EditContactDoesntExist    EditContactResult = "given_contact_doesnt_exist"
	EditContactNoAuthority    EditContactResult = "no_authority_to_edit_given_contact"
	EditContactInvalidSession EditContactResult = "invalid_session_key"
	EditContactUnknownError   EditContactResult = "unknown_error"
	EditContactCancelled      EditContactResult = "edit_cancelled"
)

// Known сообщает, что значение может прийти от процедуры edit_contact
// (клиентский EditContactCancelled сюда не входит).
func (r EditContactResult) Known() bool {
	switch r {
	case EditContactSuccess, EditContactSameDataExists, EditContactDoesntExist,
		EditContactNoAuthority, EditContactInvalidSession, EditContactUnknownError:
		return true
	}
	return false
}

// DeleteContactResult — исход удаления контакта.
type DeleteContactResult string

const (
	DeleteContactSuccess        DeleteContactResult = "deleted_successfully"
	DeleteContactDoesntExist    DeleteContactResult = "given_contact_doesnt_exist"
	DeleteContactNoAuthority    DeleteContactResult = "no_authority_to_delete_given_contact"
	DeleteContactInvalidSession DeleteContactResult = "invalid_session_key"
	DeleteContactUnknownError   DeleteContactResult = "unknown_error"
)

func (r DeleteContactResult) Known() bool {
	switch r {
	case DeleteContactSuccess, DeleteContactDoesntExist, DeleteContactNoAuthority,
		DeleteContactInvalidSession, DeleteContactUnknownError:
		return true
	}
	return false
}
