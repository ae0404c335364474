package out

import (
	"context"

	"studyrank/internal/modules/activity/domain"
)

// ActivityAPI is the remote activity surface. CreateActivity succeeds with
// no payload.
type ActivityAPI interface {
	GetSummary(ctx context.Context, groupID string) (domain.Summary, error)
	CreateActivity(ctx context.Context, groupID, userID, description string) error
	ListActivities(ctx context.Context, groupID string) ([]domain.Activity, error)
}
