package in

import (
	"context"

	"studyrank/internal/modules/session/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.UserOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (dto.UserOutput, error)
}
