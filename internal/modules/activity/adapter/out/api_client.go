package out

import (
	"context"

	"studyrank/internal/modules/activity/domain"
	activityout "studyrank/internal/modules/activity/port/out"
	"studyrank/internal/platform/rest"
)

type APIClient struct {
	rest *rest.Client
}

func NewAPIClient(client *rest.Client) activityout.ActivityAPI {
	return &APIClient{rest: client}
}

type createActivityRequest struct {
	UserID      string `json:"user_id"`
	Description string `json:"description"`
}

func (c *APIClient) GetSummary(ctx context.Context, groupID string) (domain.Summary, error) {
	var summary domain.Summary
	if err := c.rest.GetJSON(ctx, "fetch summary", "/groups/"+groupID+"/activities/summary", &summary); err != nil {
		return domain.Summary{}, err
	}
	return summary, nil
}

func (c *APIClient) CreateActivity(ctx context.Context, groupID, userID, description string) error {
	body := createActivityRequest{UserID: userID, Description: description}
	return c.rest.PostJSON(ctx, "create activity", "/groups/"+groupID+"/activities", body, nil)
}

func (c *APIClient) ListActivities(ctx context.Context, groupID string) ([]domain.Activity, error) {
	var activities []domain.Activity
	if err := c.rest.GetJSON(ctx, "list activities", "/groups/"+groupID+"/activities", &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
