package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"studyrank/internal/modules/activity/domain"
	activitydto "studyrank/internal/modules/activity/dto"
	activityin "studyrank/internal/modules/activity/port/in"
	"studyrank/internal/modules/activity/service"
	groupsdto "studyrank/internal/modules/groups/dto"
	groupsin "studyrank/internal/modules/groups/port/in"
	sessionin "studyrank/internal/modules/session/port/in"
)

type Interactor struct {
	svc     *service.ActivityService
	groups  groupsin.Usecase
	session sessionin.Usecase
}

func NewInteractor(svc *service.ActivityService, groups groupsin.Usecase, session sessionin.Usecase) activityin.Usecase {
	return &Interactor{svc: svc, groups: groups, session: session}
}

func (i *Interactor) Overview(ctx context.Context, groupID string) (activitydto.OverviewOutput, error) {
	if _, err := i.session.Current(ctx); err != nil {
		return activitydto.OverviewOutput{}, err
	}

	var (
		members []groupsdto.MemberOutput
		summary domain.Summary
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		members, err = i.groups.Members(egCtx, groupID)
		return err
	})
	eg.Go(func() error {
		var err error
		summary, err = i.svc.Summary(egCtx, groupID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return activitydto.OverviewOutput{}, err
	}

	out := activitydto.OverviewOutput{Summary: toSummaryOutput(summary)}
	out.Members = make([]activitydto.MemberOutput, len(members))
	for idx, m := range members {
		out.Members[idx] = activitydto.MemberOutput{ID: m.ID, Name: m.Name, Email: m.Email}
	}
	return out, nil
}

func (i *Interactor) Log(ctx context.Context, input activitydto.LogInput) (activitydto.SummaryOutput, error) {
	user, err := i.session.Current(ctx)
	if err != nil {
		return activitydto.SummaryOutput{}, err
	}
	if err := i.svc.Log(ctx, input.GroupID, user.ID, input.Description); err != nil {
		return activitydto.SummaryOutput{}, err
	}
	// Only the summary is refetched; the membership list cannot have
	// changed as a result of logging.
	summary, err := i.svc.Summary(ctx, input.GroupID)
	if err != nil {
		return activitydto.SummaryOutput{}, err
	}
	return toSummaryOutput(summary), nil
}

func (i *Interactor) Feed(ctx context.Context, groupID string) ([]activitydto.ActivityOutput, error) {
	if _, err := i.session.Current(ctx); err != nil {
		return nil, err
	}
	activities, err := i.svc.Feed(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return toActivityOutputs(activities), nil
}

func toSummaryOutput(summary domain.Summary) activitydto.SummaryOutput {
	out := activitydto.SummaryOutput{
		GroupID:         summary.GroupID,
		TotalActivities: summary.TotalActivities,
		Activities:      toActivityOutputs(summary.Activities),
	}
	out.PerUser = make([]activitydto.RankingRowOutput, len(summary.PerUser))
	for idx, row := range summary.PerUser {
		out.PerUser[idx] = activitydto.RankingRowOutput{
			UserID:          row.UserID,
			UserName:        row.UserName,
			ActivitiesCount: row.ActivitiesCount,
		}
	}
	return out
}

func toActivityOutputs(activities []domain.Activity) []activitydto.ActivityOutput {
	out := make([]activitydto.ActivityOutput, len(activities))
	for idx, a := range activities {
		out[idx] = activitydto.ActivityOutput{
			ID:          a.ID,
			UserID:      a.UserID,
			UserName:    a.UserName,
			Description: a.Description,
			CreatedAt:   a.CreatedAt,
		}
	}
	return out
}
