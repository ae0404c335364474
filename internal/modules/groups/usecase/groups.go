package usecase

import (
	"context"

	"studyrank/internal/modules/groups/domain"
	groupsdto "studyrank/internal/modules/groups/dto"
	groupsin "studyrank/internal/modules/groups/port/in"
	"studyrank/internal/modules/groups/service"
	sessionin "studyrank/internal/modules/session/port/in"
)

// Interactor resolves the session user for every operation; a missing
// session surfaces as apperrors.ErrNoSession, which the UI turns into a
// login redirect.
type Interactor struct {
	svc     *service.GroupService
	session sessionin.Usecase
}

func NewInteractor(svc *service.GroupService, session sessionin.Usecase) groupsin.Usecase {
	return &Interactor{svc: svc, session: session}
}

func (i *Interactor) List(ctx context.Context) ([]groupsdto.GroupOutput, error) {
	user, err := i.session.Current(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := i.svc.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return toOutputs(groups), nil
}

func (i *Interactor) Create(ctx context.Context, input groupsdto.CreateInput) (groupsdto.GroupOutput, error) {
	user, err := i.session.Current(ctx)
	if err != nil {
		return groupsdto.GroupOutput{}, err
	}
	group, err := i.svc.Create(ctx, user.ID, input.Name, input.GoalDays)
	if err != nil {
		return groupsdto.GroupOutput{}, err
	}
	return toOutput(group), nil
}

// Join refetches the full list after joining: the joined group's record is
// not otherwise known to the client, so an optimistic append is impossible.
func (i *Interactor) Join(ctx context.Context, groupID string) ([]groupsdto.GroupOutput, error) {
	user, err := i.session.Current(ctx)
	if err != nil {
		return nil, err
	}
	if err := i.svc.Join(ctx, groupID, user.ID); err != nil {
		return nil, err
	}
	groups, err := i.svc.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return toOutputs(groups), nil
}

func (i *Interactor) Members(ctx context.Context, groupID string) ([]groupsdto.MemberOutput, error) {
	if _, err := i.session.Current(ctx); err != nil {
		return nil, err
	}
	members, err := i.svc.Members(ctx, groupID)
	if err != nil {
		return nil, err
	}
	out := make([]groupsdto.MemberOutput, len(members))
	for idx, m := range members {
		out[idx] = groupsdto.MemberOutput{ID: m.ID, Name: m.Name, Email: m.Email}
	}
	return out, nil
}

func toOutput(group domain.Group) groupsdto.GroupOutput {
	return groupsdto.GroupOutput{
		ID:        group.ID,
		Name:      group.Name,
		OwnerID:   group.OwnerID,
		GoalDays:  group.GoalDays,
		CreatedAt: group.CreatedAt,
	}
}

func toOutputs(groups []domain.Group) []groupsdto.GroupOutput {
	out := make([]groupsdto.GroupOutput, len(groups))
	for idx, g := range groups {
		out[idx] = toOutput(g)
	}
	return out
}
