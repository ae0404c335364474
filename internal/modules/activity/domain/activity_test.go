package domain_test

import (
	"testing"
	"time"

	"studyrank/internal/modules/activity/domain"
)

func TestSortRankingDescendingByCount(t *testing.T) {
	t.Parallel()
	rows := []domain.PerUserRanking{
		{UserID: "a", ActivitiesCount: 5},
		{UserID: "b", ActivitiesCount: 9},
		{UserID: "c", ActivitiesCount: 2},
	}
	domain.SortRanking(rows)
	got := []string{rows[0].UserID, rows[1].UserID, rows[2].UserID}
	if got[0] != "b" || got[1] != "a" || got[2] != "c" {
		t.Fatalf("expected b,a,c, got %v", got)
	}
}

func TestSortRankingKeepsServerOrderOnTies(t *testing.T) {
	t.Parallel()
	rows := []domain.PerUserRanking{
		{UserID: "first", ActivitiesCount: 4},
		{UserID: "second", ActivitiesCount: 4},
		{UserID: "top", ActivitiesCount: 7},
	}
	domain.SortRanking(rows)
	if rows[0].UserID != "top" || rows[1].UserID != "first" || rows[2].UserID != "second" {
		t.Fatalf("tie order not preserved: %v", rows)
	}
}

func TestSortFeedNewestFirst(t *testing.T) {
	t.Parallel()
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	activities := []domain.Activity{
		{ID: "old", CreatedAt: t1},
		{ID: "new", CreatedAt: t2},
	}
	domain.SortFeed(activities)
	if activities[0].ID != "new" || activities[1].ID != "old" {
		t.Fatalf("expected newest first, got %v then %v", activities[0].ID, activities[1].ID)
	}
}

func TestOrderedSortsBothCollections(t *testing.T) {
	t.Parallel()
	summary := domain.Summary{
		Activities: []domain.Activity{
			{ID: "old", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "new", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
		PerUser: []domain.PerUserRanking{
			{UserID: "a", ActivitiesCount: 1},
			{UserID: "b", ActivitiesCount: 3},
		},
	}
	ordered := summary.Ordered()
	if ordered.Activities[0].ID != "new" {
		t.Fatalf("feed not ordered: %v", ordered.Activities)
	}
	if ordered.PerUser[0].UserID != "b" {
		t.Fatalf("ranking not ordered: %v", ordered.PerUser)
	}
}
