package in

import (
	"context"

	groupsdto "studyrank/internal/modules/groups/dto"
	groupsin "studyrank/internal/modules/groups/port/in"
)

type CLIHandler struct {
	usecase groupsin.Usecase
}

func NewCLIHandler(usecase groupsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]groupsdto.GroupOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Create(ctx context.Context, name, goalDays string) (groupsdto.GroupOutput, error) {
	return h.usecase.Create(ctx, groupsdto.CreateInput{Name: name, GoalDays: goalDays})
}

func (h CLIHandler) Join(ctx context.Context, groupID string) ([]groupsdto.GroupOutput, error) {
	return h.usecase.Join(ctx, groupID)
}

func (h CLIHandler) Members(ctx context.Context, groupID string) ([]groupsdto.MemberOutput, error) {
	return h.usecase.Members(ctx, groupID)
}
