package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/navolotsky/phone-book/internal/config"
	"github.com/navolotsky/phone-book/internal/models"
	"github.com/navolotsky/phone-book/internal/storage"
	"github.com/navolotsky/phone-book/mocks"
)

func testBirthdaysCfg() config.BirthdaysConfig {
	return config.BirthdaysConfig{
		TurnedOn:   true,
		RangeType:  "day",
		RangeValue: 7,
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := New(st, testBirthdaysCfg())
	return svc, st, ctrl
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestRegister_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	birthDate := mustDate(t, "1990.01.01")

	st.EXPECT().
		Register(gomock.Any(), "alice", "alice@example.com", birthDate).
		Return(models.RegisterSuccess, "generated-pw", nil)

	password, err := svc.Register(ctx, "alice", "Alice@Example.com", birthDate)
	require.NoError(t, err)
	require.Equal(t, "generated-pw", password)
}

func TestRegister_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	birthDate := mustDate(t, "1990.01.01")

	_, err := svc.Register(ctx, "   ", "alice@example.com", birthDate)
	require.ErrorIs(t, err, ErrInvalidUsername)

	_, err = svc.Register(ctx, "alice", "not-an-email", birthDate)
	require.ErrorIs(t, err, ErrInvalidEmail)

	// Моложе минимального возраста.
	_, err = svc.Register(ctx, "alice", "alice@example.com", mustDate(t, "2024.01.01"))
	require.ErrorIs(t, err, ErrInvalidBirthDate)

	_, err = svc.Register(ctx, "alice", "alice@example.com", models.Date{})
	require.ErrorIs(t, err, ErrInvalidBirthDate)
}

func TestRegister_Conflicts(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	birthDate := mustDate(t, "1990.01.01")

	st.EXPECT().
		Register(gomock.Any(), "alice", "alice@example.com", birthDate).
		Return(models.RegisterUsernameExists, "", nil)

	_, err := svc.Register(ctx, "alice", "alice@example.com", birthDate)
	require.ErrorIs(t, err, ErrUsernameTaken)

	st.EXPECT().
		Register(gomock.Any(), "alice", "alice@example.com", birthDate).
		Return(models.RegisterEmailExists, "", nil)

	_, err = svc.Register(ctx, "alice", "alice@example.com", birthDate)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_UnknownResult(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	birthDate := mustDate(t, "1990.01.01")

	st.EXPECT().
		Register(gomock.Any(), "alice", "alice@example.com", birthDate).
		Return(models.RegisterUnknownError, "", nil)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", birthDate)
	require.ErrorIs(t, err, storage.ErrUnknown)
}

func TestLogIn_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().
		LogIn(gomock.Any(), "alice", "pw").
		Return("session-key", nil)

	key, err := svc.LogIn(context.Background(), " alice ", "pw")
	require.NoError(t, err)
	require.Equal(t, "session-key", key)
}

func TestLogIn_CredentialsNotFound(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Пустой ключ от хранилища — нормальный исход "не найдено".
	st.EXPECT().
		LogIn(gomock.Any(), "alice", "wrong").
		Return("", nil)

	_, err := svc.LogIn(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogIn_EmptyInput(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.LogIn(context.Background(), "", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LogIn(context.Background(), "alice", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogIn_StorageError(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().
		LogIn(gomock.Any(), "alice", "pw").
		Return("", fmt.Errorf("boom: %w", storage.ErrConnection))

	_, err := svc.LogIn(context.Background(), "alice", "pw")
	require.ErrorIs(t, err, storage.ErrConnection)
}

func TestLogOut_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().LogOut(gomock.Any(), "key").Return(nil)

	require.NoError(t, svc.LogOut(context.Background(), "key"))
}

func TestLogOut_ConnectionErrorSuppressed(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().
		LogOut(gomock.Any(), "key").
		Return(fmt.Errorf("dial: %w", storage.ErrConnection))

	// Выход считается успешным: сессия истечет на сервере сама.
	require.NoError(t, svc.LogOut(context.Background(), "key"))
}

func TestLogOut_OtherErrorPropagates(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().
		LogOut(gomock.Any(), "key").
		Return(fmt.Errorf("bad call: %w", storage.ErrStatement))

	err := svc.LogOut(context.Background(), "key")
	require.ErrorIs(t, err, storage.ErrStatement)
}

func TestCheckSession(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().CheckSession(gomock.Any(), "live").Return(true, nil)
	st.EXPECT().CheckSession(gomock.Any(), "dead").Return(false, nil)

	ok, err := svc.CheckSession(context.Background(), "live")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.CheckSession(context.Background(), "dead")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUserInfo_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	want := &models.UserInfo{Username: "alice", Email: "alice@example.com"}
	st.EXPECT().UserInfo(gomock.Any(), "key").Return(want, nil)

	got, err := svc.UserInfo(context.Background(), "key")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestUserInfo_InvalidSession(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserInfo(gomock.Any(), "stale").Return(nil, nil)

	_, err := svc.UserInfo(context.Background(), "stale")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestUserInfo_StorageError(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserInfo(gomock.Any(), "key").Return(nil, errors.New("boom"))

	_, err := svc.UserInfo(context.Background(), "key")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidSession)
}
