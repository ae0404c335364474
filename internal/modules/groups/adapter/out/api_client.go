package out

import (
	"context"

	"studyrank/internal/modules/groups/domain"
	groupsout "studyrank/internal/modules/groups/port/out"
	"studyrank/internal/platform/rest"
)

type APIClient struct {
	rest *rest.Client
}

func NewAPIClient(client *rest.Client) groupsout.GroupAPI {
	return &APIClient{rest: client}
}

type createGroupRequest struct {
	Name     string `json:"name"`
	OwnerID  string `json:"owner_id"`
	GoalDays int    `json:"goal_days"`
}

type joinGroupRequest struct {
	UserID string `json:"user_id"`
}

func (c *APIClient) ListUserGroups(ctx context.Context, userID string) ([]domain.Group, error) {
	var groups []domain.Group
	if err := c.rest.GetJSON(ctx, "list groups", "/users/"+userID+"/groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *APIClient) CreateGroup(ctx context.Context, name, ownerID string, goalDays int) (domain.Group, error) {
	var group domain.Group
	body := createGroupRequest{Name: name, OwnerID: ownerID, GoalDays: goalDays}
	if err := c.rest.PostJSON(ctx, "create group", "/groups", body, &group); err != nil {
		return domain.Group{}, err
	}
	return group, nil
}

func (c *APIClient) JoinGroup(ctx context.Context, groupID, userID string) error {
	return c.rest.PostJSON(ctx, "join group", "/groups/"+groupID+"/join", joinGroupRequest{UserID: userID}, nil)
}

func (c *APIClient) ListMembers(ctx context.Context, groupID string) ([]domain.Member, error) {
	var members []domain.Member
	if err := c.rest.GetJSON(ctx, "list members", "/groups/"+groupID+"/members", &members); err != nil {
		return nil, err
	}
	return members, nil
}
