package service

import (
	"context"
	"strings"

	"studyrank/internal/modules/activity/domain"
	activityout "studyrank/internal/modules/activity/port/out"
	apperrors "studyrank/internal/platform/errors"
)

type ActivityService struct {
	api activityout.ActivityAPI
}

func NewActivityService(api activityout.ActivityAPI) *ActivityService {
	return &ActivityService{api: api}
}

// Summary fetches the group's bundle and imposes display order on it.
func (s *ActivityService) Summary(ctx context.Context, groupID string) (domain.Summary, error) {
	summary, err := s.api.GetSummary(ctx, groupID)
	if err != nil {
		return domain.Summary{}, err
	}
	return summary.Ordered(), nil
}

// Log validates the trimmed description before any network call.
func (s *ActivityService) Log(ctx context.Context, groupID, userID, description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return apperrors.Invalid("activity description is required")
	}
	return s.api.CreateActivity(ctx, groupID, userID, trimmed)
}

func (s *ActivityService) Feed(ctx context.Context, groupID string) ([]domain.Activity, error) {
	activities, err := s.api.ListActivities(ctx, groupID)
	if err != nil {
		return nil, err
	}
	domain.SortFeed(activities)
	return activities, nil
}
