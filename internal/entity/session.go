package entity

import "time"

type Session struct {
	ID        string     `json:"id"`
	Match     MatchState `json:"match"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
