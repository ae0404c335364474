package dto

import "time"

type LoginInput struct {
	Name  string
	Email string
}

type UserOutput struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}
