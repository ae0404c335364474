package domain

import (
	"sort"
	"time"
)

// Activity is one logged study event attributed to a user within a group.
// UserName is denormalized by the server and may be empty on older rows.
type Activity struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	GroupID     string    `json:"group_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// PerUserRanking is the server-computed aggregate, one row per member.
type PerUserRanking struct {
	UserID          string `json:"user_id"`
	UserName        string `json:"user_name"`
	ActivitiesCount int    `json:"activities_count"`
}

// Summary is the denormalized bundle driving the group detail view,
// recomputed in full by the server on every fetch. The payload guarantees
// no ordering; display order is imposed here.
type Summary struct {
	GroupID         string           `json:"group_id"`
	TotalActivities int              `json:"total_activities"`
	Activities      []Activity       `json:"activities"`
	PerUser         []PerUserRanking `json:"per_user"`
}

// SortRanking orders rows by descending activity count. Ties keep the
// server's order.
func SortRanking(rows []PerUserRanking) {
	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].ActivitiesCount > rows[b].ActivitiesCount
	})
}

// SortFeed orders activities newest first.
func SortFeed(activities []Activity) {
	sort.SliceStable(activities, func(a, b int) bool {
		return activities[a].CreatedAt.After(activities[b].CreatedAt)
	})
}

// Ordered returns the summary with both collections in display order.
func (s Summary) Ordered() Summary {
	SortFeed(s.Activities)
	SortRanking(s.PerUser)
	return s
}
