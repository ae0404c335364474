package out

import (
	"context"

	"studyrank/internal/modules/groups/domain"
)

// GroupAPI is the remote group surface. JoinGroup succeeds with no payload.
type GroupAPI interface {
	ListUserGroups(ctx context.Context, userID string) ([]domain.Group, error)
	CreateGroup(ctx context.Context, name, ownerID string, goalDays int) (domain.Group, error)
	JoinGroup(ctx context.Context, groupID, userID string) error
	ListMembers(ctx context.Context, groupID string) ([]domain.Member, error)
}
