package rating

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("rating not found")

type Rating struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	ShowID    string    `json:"showId"`
	Stars     int       `json:"rating"`
	Review    string    `json:"review,omitempty"`
	Reviewer  string    `json:"reviewer,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
