package service

import (
	"context"
	"fmt"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/logger"
	"accreditation-backend/internal/repository"
	"accreditation-backend/internal/workflow"
)

type accreditationService struct {
	engine       *workflow.Engine
	participants repository.ParticipantRepository
	workflows    repository.WorkflowRepository
	approvals    repository.ApprovalRepository
	invitations  repository.InvitationRepository
	users        repository.UserRepository
	noteRepo     repository.NotificationRepository
}

func NewAccreditationService(
	engine *workflow.Engine,
	participants repository.ParticipantRepository,
	workflows repository.WorkflowRepository,
	approvals repository.ApprovalRepository,
	invitations repository.InvitationRepository,
	users repository.UserRepository,
	noteRepo repository.NotificationRepository,
) AccreditationService {
	return &accreditationService{
		engine:       engine,
		participants: participants,
		workflows:    workflows,
		approvals:    approvals,
		invitations:  invitations,
		users:        users,
		noteRepo:     noteRepo,
	}
}

func (s *accreditationService) Approve(ctx context.Context, userID, participantID int32, remarks string) (*domain.Participant, error) {
	return s.act(ctx, userID, participantID, domain.ActionApprove, remarks)
}

func (s *accreditationService) Reject(ctx context.Context, userID, participantID int32, remarks string) (*domain.Participant, error) {
	p, err := s.act(ctx, userID, participantID, domain.ActionReject, remarks)
	if err != nil {
		return nil, err
	}

	// Let the invitation owner see the rejection in-app.
	if p.InvitationID != nil {
		if inv, ierr := s.invitations.GetByID(ctx, *p.InvitationID); ierr == nil {
			_ = s.noteRepo.Create(ctx, &domain.Notification{
				UserID:  inv.CreatedBy,
				EventID: p.EventID,
				Title:   "Accreditation Rejected",
				Message: fmt.Sprintf("Request %s for %s %s was rejected", p.RegistrationCode, p.FirstName, p.LastName),
				Attributes: map[string]string{
					"type":           "ACCREDITATION_REJECTED",
					"participant_id": fmt.Sprintf("%d", p.ID),
				},
			})
		}
	}
	return p, nil
}

func (s *accreditationService) Print(ctx context.Context, userID, participantID int32, remarks string) (*domain.Participant, error) {
	return s.act(ctx, userID, participantID, domain.ActionPrint, remarks)
}

func (s *accreditationService) Notify(ctx context.Context, userID, participantID int32, remarks string) (*domain.Participant, error) {
	return s.act(ctx, userID, participantID, domain.ActionNotify, remarks)
}

func (s *accreditationService) Archive(ctx context.Context, userID, participantID int32, remarks string) (*domain.Participant, error) {
	return s.act(ctx, userID, participantID, domain.ActionArchive, remarks)
}

// act gates the action on the role owning the participant's current step,
// then hands off to the engine. The engine itself performs no authorization.
func (s *accreditationService) act(ctx context.Context, userID, participantID int32, action domain.Action, remarks string) (*domain.Participant, error) {
	log := logger.WithMethod("accreditationService.act")
	log.Debug("Processing action", "participant_id", participantID, "user_id", userID, "action", action)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, err := s.participants.GetByID(ctx, participantID)
	if err != nil {
		return nil, err
	}

	if p.CurrentStepID != nil {
		step, err := s.workflows.GetStep(ctx, *p.CurrentStepID)
		if err != nil {
			return nil, err
		}
		if !user.HasRole(domain.Role(step.Role)) {
			return nil, ErrForbidden
		}
	} else if !user.HasRole(domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	return s.engine.ProcessParticipant(ctx, participantID, userID, action, remarks)
}

func (s *accreditationService) GetParticipant(ctx context.Context, participantID int32) (*domain.Participant, error) {
	return s.participants.GetByID(ctx, participantID)
}

func (s *accreditationService) ListParticipants(ctx context.Context, eventID int32, status string, page, pageSize int32) ([]domain.Participant, int32, error) {
	return s.participants.ListByEvent(ctx, eventID, status, page, pageSize)
}

func (s *accreditationService) ListApprovals(ctx context.Context, participantID int32) ([]domain.Approval, error) {
	return s.approvals.ListByParticipant(ctx, participantID)
}
