package dto

import "time"

type ActivityOutput struct {
	ID          string
	UserID      string
	UserName    string
	Description string
	CreatedAt   time.Time
}

type RankingRowOutput struct {
	UserID          string
	UserName        string
	ActivitiesCount int
}

type SummaryOutput struct {
	GroupID         string
	TotalActivities int
	Activities      []ActivityOutput
	PerUser         []RankingRowOutput
}

// OverviewOutput is the atomic result of the group detail load: members and
// summary arrive together or not at all.
type OverviewOutput struct {
	Members []MemberOutput
	Summary SummaryOutput
}

type MemberOutput struct {
	ID    string
	Name  string
	Email string
}

type LogInput struct {
	GroupID     string
	Description string
}
