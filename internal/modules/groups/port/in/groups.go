package in

import (
	"context"

	"studyrank/internal/modules/groups/dto"
)

type Usecase interface {
	// List returns the session user's groups.
	List(ctx context.Context) ([]dto.GroupOutput, error)
	// Create validates locally, creates the group, and returns it for a
	// local append; callers do not refetch.
	Create(ctx context.Context, input dto.CreateInput) (dto.GroupOutput, error)
	// Join joins the group then refetches and returns the full group list.
	Join(ctx context.Context, groupID string) ([]dto.GroupOutput, error)
	Members(ctx context.Context, groupID string) ([]dto.MemberOutput, error)
}
