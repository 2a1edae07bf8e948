package domain

import "time"

type ApprovalResult string

const (
	ApprovalResultSuccess ApprovalResult = "SUCCESS"
	ApprovalResultFailure ApprovalResult = "FAILURE"
)

// Approval is an append-only audit record of one action taken on one
// participant at one step. Rows are never updated or deleted.
type Approval struct {
	ID            int32          `json:"id"`
	ParticipantID int32          `json:"participant_id"`
	StepID        *int32         `json:"step_id,omitempty"`
	UserID        int32          `json:"user_id"`
	Action        Action         `json:"action"`
	Result        ApprovalResult `json:"result"`
	Remarks       string         `json:"remarks"`
	CreatedAt     time.Time      `json:"created_at"`
}
