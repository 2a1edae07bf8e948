package domain

// Action is the verb an authorized role applies to a participant at their
// current step.
type Action string

const (
	ActionApprove Action = "APPROVE"
	ActionReject  Action = "REJECT"
	ActionPrint   Action = "PRINT"
	ActionNotify  Action = "NOTIFY"
	ActionArchive Action = "ARCHIVE"
)

// Workflow is an ordered chain of steps scoped to one event and one
// participant type. Steps form a singly linked list via NextStepID; exactly
// one step has no successor.
type Workflow struct {
	ID                int32  `json:"id"`
	EventID           int32  `json:"event_id"`
	ParticipantTypeID int32  `json:"participant_type_id"`
	Name              string `json:"name"`
	FirstStepID       *int32 `json:"first_step_id,omitempty"`
}

// Step is a gate in a workflow, owned by a Role and reached via an Action.
// Steps are created by administrators and are immutable during a run.
type Step struct {
	ID         int32  `json:"id"`
	WorkflowID int32  `json:"workflow_id"`
	OrderIndex int32  `json:"order_index"`
	Name       string `json:"name"`
	Action     Action `json:"action"`
	Role       string `json:"role"`
	NextStepID *int32 `json:"next_step_id,omitempty"`
}
