package in

import (
	"context"

	"studyrank/internal/modules/activity/dto"
)

type Usecase interface {
	// Overview loads members and the activity summary together; if either
	// fetch fails the whole load fails, so the view never renders half a
	// pair.
	Overview(ctx context.Context, groupID string) (dto.OverviewOutput, error)
	// Log records an activity, then refetches only the summary.
	Log(ctx context.Context, input dto.LogInput) (dto.SummaryOutput, error)
	Feed(ctx context.Context, groupID string) ([]dto.ActivityOutput, error)
}
