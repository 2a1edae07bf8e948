package domain

import "time"

// Event is a single accreditable event (summit, conference, match day).
type Event struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Prefix    string    `json:"prefix"`
	Venue     string    `json:"venue"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedOn time.Time `json:"created_on"`
}
