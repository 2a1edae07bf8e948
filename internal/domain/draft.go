package domain

import "time"

// Draft is a per-user in-progress registration context. A user has at most
// one active draft; stale drafts are removed by a scheduled TTL sweep rather
// than implicitly on next access.
type Draft struct {
	ID             string    `json:"id"`
	UserID         int32     `json:"user_id"`
	EventID        int32     `json:"event_id"`
	InvitationCode string    `json:"invitation_code"`
	Payload        string    `json:"payload"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}
