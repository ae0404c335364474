package in

import (
	"context"

	activitydto "studyrank/internal/modules/activity/dto"
	activityin "studyrank/internal/modules/activity/port/in"
)

type CLIHandler struct {
	usecase activityin.Usecase
}

func NewCLIHandler(usecase activityin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Overview(ctx context.Context, groupID string) (activitydto.OverviewOutput, error) {
	return h.usecase.Overview(ctx, groupID)
}

func (h CLIHandler) Log(ctx context.Context, groupID, description string) (activitydto.SummaryOutput, error) {
	return h.usecase.Log(ctx, activitydto.LogInput{GroupID: groupID, Description: description})
}

func (h CLIHandler) Feed(ctx context.Context, groupID string) ([]activitydto.ActivityOutput, error) {
	return h.usecase.Feed(ctx, groupID)
}
