package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	sessionout "studyrank/internal/modules/session/adapter/out"
	"studyrank/internal/modules/session/domain"
	sessiondto "studyrank/internal/modules/session/dto"
	"studyrank/internal/modules/session/service"
	"studyrank/internal/modules/session/usecase"
	"studyrank/internal/platform/clock"
	apperrors "studyrank/internal/platform/errors"
)

type fakeAccountAPI struct {
	calls int
	user  domain.User
	err   error
}

func (f *fakeAccountAPI) CreateUser(_ context.Context, name, email string) (domain.User, error) {
	f.calls++
	if f.err != nil {
		return domain.User{}, f.err
	}
	user := f.user
	user.Name = name
	user.Email = email
	return user, nil
}

func newInteractor(t *testing.T, api *fakeAccountAPI) sessionUsecase {
	t.Helper()
	store, err := sessionout.NewSQLiteSessionStore(filepath.Join(t.TempDir(), "studyrank.db"), clock.SystemClock{})
	if err != nil {
		t.Fatalf("new session store: %v", err)
	}
	return usecase.NewInteractor(service.NewSessionService(api), store)
}

type sessionUsecase interface {
	Login(ctx context.Context, input sessiondto.LoginInput) (sessiondto.UserOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (sessiondto.UserOutput, error)
}

func TestLoginPersistsIdentityAndCurrentReadsItBack(t *testing.T) {
	t.Parallel()
	api := &fakeAccountAPI{user: domain.User{
		ID:        "u-1",
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}}
	uc := newInteractor(t, api)

	out, err := uc.Login(context.Background(), sessiondto.LoginInput{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if api.calls != 1 {
		t.Fatalf("expected exactly one create-user call, got %d", api.calls)
	}
	if out.ID != "u-1" || out.Name != "Ana" {
		t.Fatalf("unexpected login output: %+v", out)
	}

	current, err := uc.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.ID != out.ID || current.Name != out.Name || current.Email != out.Email || !current.CreatedAt.Equal(out.CreatedAt) {
		t.Fatalf("round-trip mismatch: %+v vs %+v", current, out)
	}
}

func TestLoginRejectsEmptyFieldsWithoutNetworkCall(t *testing.T) {
	t.Parallel()
	for _, input := range []sessiondto.LoginInput{
		{Name: "", Email: "ana@example.com"},
		{Name: "Ana", Email: ""},
		{Name: "   ", Email: "ana@example.com"},
	} {
		api := &fakeAccountAPI{user: domain.User{ID: "u-1"}}
		uc := newInteractor(t, api)
		if _, err := uc.Login(context.Background(), input); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", input, err)
		}
		if api.calls != 0 {
			t.Fatalf("input %+v: expected zero network calls, got %d", input, api.calls)
		}
	}
}

func TestLoginFailureLeavesNoSession(t *testing.T) {
	t.Parallel()
	api := &fakeAccountAPI{err: apperrors.NewAPIError("create user", 409, "email already taken")}
	uc := newInteractor(t, api)

	_, err := uc.Login(context.Background(), sessiondto.LoginInput{Name: "Ana", Email: "ana@example.com"})
	if err == nil || err.Error() != "email already taken" {
		t.Fatalf("expected server message surfaced, got %v", err)
	}
	if _, err := uc.Current(context.Background()); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("expected no session after failed login, got %v", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	t.Parallel()
	api := &fakeAccountAPI{user: domain.User{ID: "u-1"}}
	uc := newInteractor(t, api)
	if _, err := uc.Login(context.Background(), sessiondto.LoginInput{Name: "Ana", Email: "ana@example.com"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := uc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := uc.Current(context.Background()); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("expected no session after logout, got %v", err)
	}
}
