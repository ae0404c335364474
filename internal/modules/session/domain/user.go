package domain

import "time"

// User is the identity created by the ranking service. Field tags match the
// wire format; the same shape is persisted as the session payload, so the
// store survives reloads without a translation layer.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
