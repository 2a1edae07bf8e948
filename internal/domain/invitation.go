package domain

import "time"

// Invitation ties an organization/email pair to a participant type, with an
// optional organization-wide quota and an optional restriction. MaximumQuota
// is evaluated before any per-type constraint: once the organization's
// participant count reaches it, no participant type is selectable.
type Invitation struct {
	ID                int32     `json:"id"`
	EventID           int32     `json:"event_id"`
	Code              string    `json:"code"`
	Organization      string    `json:"organization"`
	Email             string    `json:"email"`
	ParticipantTypeID int32     `json:"participant_type_id"`
	MaximumQuota      *int32    `json:"maximum_quota,omitempty"`
	RestrictionID     *int32    `json:"restriction_id,omitempty"`
	CreatedBy         int32     `json:"created_by"`
	CreatedOn         time.Time `json:"created_on"`
}

// Restriction groups constraints applied to an invitation.
type Restriction struct {
	ID          int32        `json:"id"`
	EventID     int32        `json:"event_id"`
	Name        string       `json:"name"`
	Constraints []Constraint `json:"constraints,omitempty"`
}

// Constraint caps the count of participants of a given type and access level
// for an event, scoped by organization.
type Constraint struct {
	ID                int32  `json:"id"`
	RestrictionID     int32  `json:"restriction_id"`
	Name              string `json:"name"`
	ParticipantTypeID int32  `json:"participant_type_id"`
	AccessLevel       string `json:"access_level"`
	Quota             int32  `json:"quota"`
}
