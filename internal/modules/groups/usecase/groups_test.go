package usecase_test

import (
	"context"
	"errors"
	"testing"

	"studyrank/internal/modules/groups/domain"
	groupsdto "studyrank/internal/modules/groups/dto"
	"studyrank/internal/modules/groups/service"
	"studyrank/internal/modules/groups/usecase"
	sessiondto "studyrank/internal/modules/session/dto"
	apperrors "studyrank/internal/platform/errors"
)

type fakeSession struct {
	user sessiondto.UserOutput
	err  error
}

func (f *fakeSession) Login(context.Context, sessiondto.LoginInput) (sessiondto.UserOutput, error) {
	return f.user, f.err
}
func (f *fakeSession) Logout(context.Context) error { return nil }
func (f *fakeSession) Current(context.Context) (sessiondto.UserOutput, error) {
	return f.user, f.err
}

type fakeGroupAPI struct {
	listCalls   int
	createCalls int
	joinCalls   int
	groups      []domain.Group
	created     domain.Group
	joinErr     error
	lastOwnerID string
	lastGoal    int
}

func (f *fakeGroupAPI) ListUserGroups(context.Context, string) ([]domain.Group, error) {
	f.listCalls++
	return f.groups, nil
}

func (f *fakeGroupAPI) CreateGroup(_ context.Context, name, ownerID string, goalDays int) (domain.Group, error) {
	f.createCalls++
	f.lastOwnerID = ownerID
	f.lastGoal = goalDays
	created := f.created
	created.Name = name
	return created, nil
}

func (f *fakeGroupAPI) JoinGroup(context.Context, string, string) error {
	f.joinCalls++
	return f.joinErr
}

func (f *fakeGroupAPI) ListMembers(context.Context, string) ([]domain.Member, error) {
	return []domain.Member{{ID: "u-1", Name: "Ana", Email: "ana@example.com"}}, nil
}

func newUsecase(api *fakeGroupAPI, session *fakeSession) interface {
	List(ctx context.Context) ([]groupsdto.GroupOutput, error)
	Create(ctx context.Context, input groupsdto.CreateInput) (groupsdto.GroupOutput, error)
	Join(ctx context.Context, groupID string) ([]groupsdto.GroupOutput, error)
	Members(ctx context.Context, groupID string) ([]groupsdto.MemberOutput, error)
} {
	return usecase.NewInteractor(service.NewGroupService(api), session)
}

func TestCreateRejectsBadGoalDaysWithoutNetworkCall(t *testing.T) {
	t.Parallel()
	for _, goal := range []string{"0", "-3", "abc", ""} {
		api := &fakeGroupAPI{}
		uc := newUsecase(api, &fakeSession{user: sessiondto.UserOutput{ID: "u-1"}})
		_, err := uc.Create(context.Background(), groupsdto.CreateInput{Name: "21 days", GoalDays: goal})
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("goal %q: expected ErrInvalidInput, got %v", goal, err)
		}
		if api.createCalls != 0 {
			t.Fatalf("goal %q: expected zero create calls, got %d", goal, api.createCalls)
		}
	}
}

func TestCreateUsesSessionUserAsOwner(t *testing.T) {
	t.Parallel()
	api := &fakeGroupAPI{created: domain.Group{ID: "g-1", OwnerID: "u-9", GoalDays: 21}}
	uc := newUsecase(api, &fakeSession{user: sessiondto.UserOutput{ID: "u-9"}})

	out, err := uc.Create(context.Background(), groupsdto.CreateInput{Name: "21 days", GoalDays: "21"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if api.lastOwnerID != "u-9" || api.lastGoal != 21 {
		t.Fatalf("expected owner u-9 goal 21, got %s/%d", api.lastOwnerID, api.lastGoal)
	}
	if out.ID != "g-1" || out.Name != "21 days" {
		t.Fatalf("unexpected created group: %+v", out)
	}
	if api.listCalls != 0 {
		t.Fatalf("create must not refetch the group list, got %d list calls", api.listCalls)
	}
}

func TestJoinRefetchesFullListExactlyOnce(t *testing.T) {
	t.Parallel()
	api := &fakeGroupAPI{groups: []domain.Group{{ID: "g-1"}, {ID: "g-2"}}}
	uc := newUsecase(api, &fakeSession{user: sessiondto.UserOutput{ID: "u-1"}})

	groups, err := uc.Join(context.Background(), "g-2")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if api.joinCalls != 1 || api.listCalls != 1 {
		t.Fatalf("expected one join and one list call, got %d/%d", api.joinCalls, api.listCalls)
	}
	if len(groups) != 2 {
		t.Fatalf("expected refreshed list of 2 groups, got %d", len(groups))
	}
}

func TestJoinRejectsEmptyIDLocally(t *testing.T) {
	t.Parallel()
	api := &fakeGroupAPI{}
	uc := newUsecase(api, &fakeSession{user: sessiondto.UserOutput{ID: "u-1"}})
	if _, err := uc.Join(context.Background(), "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if api.joinCalls != 0 || api.listCalls != 0 {
		t.Fatalf("expected zero network calls, got join=%d list=%d", api.joinCalls, api.listCalls)
	}
}

func TestJoinFailureSkipsRefetch(t *testing.T) {
	t.Parallel()
	api := &fakeGroupAPI{joinErr: apperrors.NewAPIError("join group", 404, "group not found")}
	uc := newUsecase(api, &fakeSession{user: sessiondto.UserOutput{ID: "u-1"}})
	if _, err := uc.Join(context.Background(), "g-404"); err == nil || err.Error() != "group not found" {
		t.Fatalf("expected server message, got %v", err)
	}
	if api.listCalls != 0 {
		t.Fatalf("failed join must not refetch, got %d list calls", api.listCalls)
	}
}

func TestEveryOperationRequiresSession(t *testing.T) {
	t.Parallel()
	api := &fakeGroupAPI{}
	uc := newUsecase(api, &fakeSession{err: apperrors.ErrNoSession})

	if _, err := uc.List(context.Background()); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("list: expected ErrNoSession, got %v", err)
	}
	if _, err := uc.Create(context.Background(), groupsdto.CreateInput{Name: "x", GoalDays: "1"}); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("create: expected ErrNoSession, got %v", err)
	}
	if _, err := uc.Join(context.Background(), "g-1"); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("join: expected ErrNoSession, got %v", err)
	}
	if _, err := uc.Members(context.Background(), "g-1"); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("members: expected ErrNoSession, got %v", err)
	}
	if api.listCalls+api.createCalls+api.joinCalls != 0 {
		t.Fatal("no operation may reach the network without a session")
	}
}
