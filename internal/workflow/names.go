package workflow

// Name-addressed workflow edges. Most step transitions follow the explicit
// NextStepID chain; the two below are resolved by searching the participant's
// own workflow for a step with a specific name. The literals must match the
// step and type names seeded by administrators exactly, including spacing.
const (
	// TypeNamePressMedia participants branch off the default chain when
	// approved at the review step.
	TypeNamePressMedia = "Press / Media"

	// StepNameReviewRequest is the step at which the press branch applies.
	StepNameReviewRequest = "Review Request"

	// StepNameETBroadcastApproval is the target of the press branch.
	StepNameETBroadcastApproval = "ET Broadcast Approval"

	// StepNameMOFAApproval is the fixed checkpoint a rejection routes back
	// to (the approve-actioned step of that name in the same workflow).
	StepNameMOFAApproval = "MOFA Approval"

	// ConstraintNameClosedSession marks constraints whose usage is counted
	// against closed-session wishlist membership instead of participant
	// type matches.
	ConstraintNameClosedSession = "Closed Session"
)
