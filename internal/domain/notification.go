package domain

import "time"

// Notification is an in-app message for an organizer-side user, created
// alongside workflow emails (rejections, finalizations, quota exhaustion).
type Notification struct {
	ID         int32             `json:"id"`
	UserID     int32             `json:"user_id"`
	EventID    int32             `json:"event_id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"is_read"`
	Attributes map[string]string `json:"attributes"`
	CreatedOn  time.Time         `json:"created_on"`
}
