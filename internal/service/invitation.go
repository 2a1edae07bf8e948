package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/logger"
	"accreditation-backend/internal/repository"
)

type invitationService struct {
	invitations repository.InvitationRepository
}

func NewInvitationService(invitations repository.InvitationRepository) InvitationService {
	return &invitationService{invitations: invitations}
}

func (s *invitationService) CreateInvitation(ctx context.Context, inv *domain.Invitation) error {
	if inv.Code == "" {
		inv.Code = strings.ToUpper(uuid.NewString()[:8])
	}
	if err := s.invitations.Create(ctx, inv); err != nil {
		return err
	}
	logger.Info("Invitation created", "invitation_id", inv.ID, "organization", inv.Organization, "event_id", inv.EventID)
	return nil
}

func (s *invitationService) ListInvitations(ctx context.Context, eventID int32) ([]domain.Invitation, error) {
	return s.invitations.ListByEvent(ctx, eventID)
}

func (s *invitationService) CreateRestriction(ctx context.Context, r *domain.Restriction) error {
	return s.invitations.CreateRestriction(ctx, r)
}
