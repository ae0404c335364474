package service

import (
	"context"
	"strconv"
	"strings"

	"studyrank/internal/modules/groups/domain"
	groupsout "studyrank/internal/modules/groups/port/out"
	apperrors "studyrank/internal/platform/errors"
)

type GroupService struct {
	api groupsout.GroupAPI
}

func NewGroupService(api groupsout.GroupAPI) *GroupService {
	return &GroupService{api: api}
}

func (s *GroupService) ListForUser(ctx context.Context, userID string) ([]domain.Group, error) {
	return s.api.ListUserGroups(ctx, userID)
}

// Create rejects an empty name or a goal that is not a positive integer
// before touching the network.
func (s *GroupService) Create(ctx context.Context, ownerID, name, goalDays string) (domain.Group, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Group{}, apperrors.Invalid("group name is required")
	}
	goal, err := strconv.Atoi(strings.TrimSpace(goalDays))
	if err != nil || goal <= 0 {
		return domain.Group{}, apperrors.Invalid("goal days must be a positive integer")
	}
	return s.api.CreateGroup(ctx, name, ownerID, goal)
}

func (s *GroupService) Join(ctx context.Context, groupID, userID string) error {
	if strings.TrimSpace(groupID) == "" {
		return apperrors.Invalid("group id is required")
	}
	return s.api.JoinGroup(ctx, groupID, userID)
}

func (s *GroupService) Members(ctx context.Context, groupID string) ([]domain.Member, error) {
	if strings.TrimSpace(groupID) == "" {
		return nil, apperrors.Invalid("group id is required")
	}
	return s.api.ListMembers(ctx, groupID)
}
