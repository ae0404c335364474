package dto

import "time"

type GroupOutput struct {
	ID        string
	Name      string
	OwnerID   string
	GoalDays  int
	CreatedAt time.Time
}

type MemberOutput struct {
	ID    string
	Name  string
	Email string
}

// CreateInput carries the raw form values; GoalDays stays a string so the
// positive-integer check happens in one place, before any network call.
type CreateInput struct {
	Name     string
	GoalDays string
}
