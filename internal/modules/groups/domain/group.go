package domain

import "time"

// Group is a study cohort with a day-goal. The creator becomes the owner;
// other users join with the group id shared out-of-band.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	GoalDays  int       `json:"goal_days"`
	CreatedAt time.Time `json:"created_at"`
}

// Member is a user's public projection within a group's membership list.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
