package domain

import "time"

type ParticipantStatus string

const (
	ParticipantStatusPending    ParticipantStatus = "PENDING"
	ParticipantStatusInProgress ParticipantStatus = "INPROGRESS"
	ParticipantStatusApproved   ParticipantStatus = "APPROVED"
	ParticipantStatusRejected   ParticipantStatus = "REJECTED"
	ParticipantStatusCancelled  ParticipantStatus = "CANCELLED"
	ParticipantStatusPrinted    ParticipantStatus = "PRINTED"
	ParticipantStatusNotified   ParticipantStatus = "NOTIFIED"
	ParticipantStatusArchived   ParticipantStatus = "ARCHIVED"
	ParticipantStatusBypassed   ParticipantStatus = "BYPASSED"
)

// Participant is the subject moving through an accreditation workflow.
// CurrentStepID and Status are mutated only by the workflow engine.
type Participant struct {
	ID                int32             `json:"id"`
	EventID           int32             `json:"event_id"`
	RegistrationCode  string            `json:"registration_code"`
	FirstName         string            `json:"first_name"`
	LastName          string            `json:"last_name"`
	Email             string            `json:"email"`
	Organization      string            `json:"organization"`
	ParticipantTypeID int32             `json:"participant_type_id"`
	InvitationID      *int32            `json:"invitation_id,omitempty"`
	CurrentStepID     *int32            `json:"current_step_id,omitempty"`
	Status            ParticipantStatus `json:"status"`
	AccessLevel       string            `json:"access_level"`
	CreatedOn         time.Time         `json:"created_on"`
	UpdatedOn         time.Time         `json:"updated_on"`
}

// ParticipantType classifies participants (e.g. "Press / Media", "Delegate").
// Prefix feeds the registration code; Priority and QuotaExempt influence
// workflow special-casing and quota evaluation.
type ParticipantType struct {
	ID          int32  `json:"id"`
	EventID     int32  `json:"event_id"`
	Name        string `json:"name"`
	Prefix      string `json:"prefix"`
	Priority    int32  `json:"priority"`
	QuotaExempt bool   `json:"quota_exempt"`
}

// WishlistEntry marks a participant as requested for a closed session by an
// organization. "Closed Session" constraints count these instead of
// participant-type matches.
type WishlistEntry struct {
	ID           int32     `json:"id"`
	EventID      int32     `json:"event_id"`
	Organization string    `json:"organization"`
	Email        string    `json:"email"`
	CreatedOn    time.Time `json:"created_on"`
}
