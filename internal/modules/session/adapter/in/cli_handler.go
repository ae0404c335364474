package in

import (
	"context"

	sessiondto "studyrank/internal/modules/session/dto"
	sessionin "studyrank/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, name, email string) (sessiondto.UserOutput, error) {
	return h.usecase.Login(ctx, sessiondto.LoginInput{Name: name, Email: email})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (sessiondto.UserOutput, error) {
	return h.usecase.Current(ctx)
}
