package usecase

import (
	"context"

	"studyrank/internal/modules/session/domain"
	sessiondto "studyrank/internal/modules/session/dto"
	sessionin "studyrank/internal/modules/session/port/in"
	sessionout "studyrank/internal/modules/session/port/out"
	"studyrank/internal/modules/session/service"
)

// Interactor is the only component allowed to read or write session
// identity; every other module reaches it through port/in.
type Interactor struct {
	svc   *service.SessionService
	store sessionout.SessionStore
}

func NewInteractor(svc *service.SessionService, store sessionout.SessionStore) sessionin.Usecase {
	return &Interactor{svc: svc, store: store}
}

func (i *Interactor) Login(ctx context.Context, input sessiondto.LoginInput) (sessiondto.UserOutput, error) {
	user, err := i.svc.Register(ctx, input.Name, input.Email)
	if err != nil {
		return sessiondto.UserOutput{}, err
	}
	if err := i.store.Save(ctx, user); err != nil {
		return sessiondto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.store.Clear(ctx)
}

func (i *Interactor) Current(ctx context.Context) (sessiondto.UserOutput, error) {
	user, err := i.store.Load(ctx)
	if err != nil {
		return sessiondto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func toOutput(user domain.User) sessiondto.UserOutput {
	return sessiondto.UserOutput{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
