package workflow

import (
	"context"
	"database/sql"
	"errors"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/logger"
	"accreditation-backend/internal/repository"
)

// Notifier delivers participant-facing notices. Failures are logged and
// swallowed; a transition is never rolled back because an email failed.
type Notifier interface {
	SendRejectionNotice(ctx context.Context, p *domain.Participant, remarks string) error
	SendFinalizationNotice(ctx context.Context, p *domain.Participant) error
}

// Engine moves participants through their accreditation workflow. It owns
// Participant.CurrentStepID and Participant.Status exclusively: every
// mutation of those fields goes through ProcessParticipant.
type Engine struct {
	participants repository.ParticipantRepository
	workflows    repository.WorkflowRepository
	approvals    repository.ApprovalRepository
	types        repository.ParticipantTypeRepository
	notifier     Notifier
}

func NewEngine(
	participants repository.ParticipantRepository,
	workflows repository.WorkflowRepository,
	approvals repository.ApprovalRepository,
	types repository.ParticipantTypeRepository,
	notifier Notifier,
) *Engine {
	return &Engine{
		participants: participants,
		workflows:    workflows,
		approvals:    approvals,
		types:        types,
		notifier:     notifier,
	}
}

var defaultRemarks = map[domain.Action]string{
	domain.ActionApprove: "Accreditation request approved",
	domain.ActionReject:  "Accreditation request rejected",
	domain.ActionPrint:   "Badge printed",
	domain.ActionNotify:  "Participant notified for collection",
	domain.ActionArchive: "Accreditation archived",
}

// transition is the resolved outcome of one action: the step/status pair to
// persist, or a no-op.
type transition struct {
	nextStepID *int32
	status     domain.ParticipantStatus
	apply      bool
}

// ProcessParticipant records the decision and applies the step transition
// for one action on one participant. The approval row is committed before
// the transition handler runs and is not rolled back if the transition
// no-ops or fails. Missing name lookups resolve to a no-op; an unsupported
// action is the only fatal input.
func (e *Engine) ProcessParticipant(ctx context.Context, participantID, userID int32, action domain.Action, remarks string) (*domain.Participant, error) {
	if _, ok := defaultRemarks[action]; !ok {
		return nil, ErrUnsupportedAction
	}

	p, err := e.participants.GetByID(ctx, participantID)
	if err != nil {
		return nil, err
	}

	var step *domain.Step
	if p.CurrentStepID != nil {
		step, err = e.workflows.GetStep(ctx, *p.CurrentStepID)
		if err != nil {
			return nil, err
		}
	}

	if err := e.record(ctx, p, userID, action, remarks); err != nil {
		return nil, err
	}

	var tr transition
	switch action {
	case domain.ActionApprove:
		tr, err = e.resolveApprove(ctx, p, step)
	case domain.ActionReject:
		tr, err = e.resolveReject(ctx, step)
	case domain.ActionPrint:
		tr = advanceTo(step, domain.ParticipantStatusPrinted)
	case domain.ActionNotify:
		tr = advanceTo(step, domain.ParticipantStatusNotified)
	case domain.ActionArchive:
		tr = transition{nextStepID: p.CurrentStepID, status: domain.ParticipantStatusArchived, apply: true}
	default:
		return nil, ErrUnsupportedAction
	}
	if err != nil {
		return nil, err
	}

	if !tr.apply {
		logger.Debug("Transition resolved to no-op",
			"participant_id", p.ID, "action", action, "status", p.Status)
		return p, nil
	}

	if err := e.participants.UpdateProgress(ctx, p.ID, tr.nextStepID, tr.status); err != nil {
		return nil, err
	}
	p.CurrentStepID = tr.nextStepID
	p.Status = tr.status

	switch action {
	case domain.ActionReject:
		if nerr := e.notifier.SendRejectionNotice(ctx, p, remarks); nerr != nil {
			logger.Error("Failed to send rejection notice", "participant_id", p.ID, "error", nerr)
		}
	case domain.ActionArchive:
		if nerr := e.notifier.SendFinalizationNotice(ctx, p); nerr != nil {
			logger.Error("Failed to send finalization notice", "participant_id", p.ID, "error", nerr)
		}
	}

	logger.Info("Participant transitioned",
		"participant_id", p.ID, "action", action, "status", tr.status)
	return p, nil
}

// record appends the audit row for the decision. REJECT maps to FAILURE,
// every other action to SUCCESS; empty remarks fall back to the fixed
// per-action string.
func (e *Engine) record(ctx context.Context, p *domain.Participant, userID int32, action domain.Action, remarks string) error {
	result := domain.ApprovalResultSuccess
	if action == domain.ActionReject {
		result = domain.ApprovalResultFailure
	}
	if remarks == "" {
		remarks = defaultRemarks[action]
	}
	return e.approvals.Create(ctx, &domain.Approval{
		ParticipantID: p.ID,
		StepID:        p.CurrentStepID,
		UserID:        userID,
		Action:        action,
		Result:        result,
		Remarks:       remarks,
	})
}

// resolveApprove follows the explicit next-step edge, except for the press
// branch: a "Press / Media" participant approved at "Review Request" is
// routed to the step named "ET Broadcast Approval" in the same workflow.
// A terminal step, or an absent branch target, resolves to a no-op.
func (e *Engine) resolveApprove(ctx context.Context, p *domain.Participant, step *domain.Step) (transition, error) {
	if step == nil {
		return transition{}, nil
	}

	pt, err := e.types.GetByID(ctx, p.ParticipantTypeID)
	if err != nil {
		return transition{}, err
	}

	if pt.Name == TypeNamePressMedia && step.Name == StepNameReviewRequest {
		branch, err := e.workflows.GetStepByName(ctx, step.WorkflowID, StepNameETBroadcastApproval)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return transition{}, nil
			}
			return transition{}, err
		}
		return transition{nextStepID: &branch.ID, status: domain.ParticipantStatusInProgress, apply: true}, nil
	}

	if step.NextStepID == nil {
		return transition{}, nil
	}
	return transition{nextStepID: step.NextStepID, status: domain.ParticipantStatusInProgress, apply: true}, nil
}

// resolveReject routes the participant back to the "MOFA Approval" checkpoint
// of its own workflow. No checkpoint means no-op: the participant keeps its
// step and status, only the audit row remains.
func (e *Engine) resolveReject(ctx context.Context, step *domain.Step) (transition, error) {
	if step == nil {
		return transition{}, nil
	}

	checkpoint, err := e.workflows.GetStepByNameAndAction(ctx, step.WorkflowID, StepNameMOFAApproval, domain.ActionApprove)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return transition{}, nil
		}
		return transition{}, err
	}

	return transition{nextStepID: &checkpoint.ID, status: domain.ParticipantStatusRejected, apply: true}, nil
}

func advanceTo(step *domain.Step, status domain.ParticipantStatus) transition {
	if step == nil || step.NextStepID == nil {
		return transition{}
	}
	return transition{nextStepID: step.NextStepID, status: status, apply: true}
}
