package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/logger"
	"accreditation-backend/internal/registration"
	"accreditation-backend/internal/repository"
	"accreditation-backend/internal/workflow"
)

// ErrRegistrationClosed is returned when no slots remain for the requested
// participant type (or the invitation's organization-wide cap is reached).
var ErrRegistrationClosed = errors.New("registration closed for this participant type")

type registrationService struct {
	participants repository.ParticipantRepository
	invitations  repository.InvitationRepository
	types        repository.ParticipantTypeRepository
	workflows    repository.WorkflowRepository
	events       repository.EventRepository
	drafts       repository.DraftRepository
	quota        *workflow.QuotaEvaluator
	codes        *registration.CodeIssuer
	emailSvc     EmailService
}

func NewRegistrationService(
	participants repository.ParticipantRepository,
	invitations repository.InvitationRepository,
	types repository.ParticipantTypeRepository,
	workflows repository.WorkflowRepository,
	events repository.EventRepository,
	drafts repository.DraftRepository,
	quota *workflow.QuotaEvaluator,
	codes *registration.CodeIssuer,
	emailSvc EmailService,
) RegistrationService {
	return &registrationService{
		participants: participants,
		invitations:  invitations,
		types:        types,
		workflows:    workflows,
		events:       events,
		drafts:       drafts,
		quota:        quota,
		codes:        codes,
		emailSvc:     emailSvc,
	}
}

func (s *registrationService) SelectableTypes(ctx context.Context, invitationCode string) ([]domain.ParticipantType, error) {
	inv, err := s.invitations.GetByCode(ctx, invitationCode)
	if err != nil {
		return nil, err
	}

	restriction, err := s.restrictionFor(ctx, inv)
	if err != nil {
		return nil, err
	}

	return s.quota.SelectableTypes(ctx, inv, restriction)
}

// Register validates the invitation and quota, issues a registration code,
// and admits the participant. The form-level quota check here only shapes
// the error; admission itself rechecks the counts inside the repository's
// serializable transaction, so concurrent submissions cannot oversubscribe
// a slot.
func (s *registrationService) Register(ctx context.Context, req *RegisterRequest) (*domain.Participant, error) {
	inv, err := s.invitations.GetByCode(ctx, req.InvitationCode)
	if err != nil {
		return nil, err
	}

	pt, err := s.types.GetByID(ctx, req.ParticipantTypeID)
	if err != nil {
		return nil, err
	}

	restriction, err := s.restrictionFor(ctx, inv)
	if err != nil {
		return nil, err
	}

	constraint := workflow.ConstraintForType(restriction, pt.ID)
	if !pt.QuotaExempt {
		slots, err := s.quota.AvailableSlots(ctx, inv, constraint)
		if err != nil {
			return nil, err
		}
		if slots != workflow.NoLimit && slots <= 0 {
			return nil, ErrRegistrationClosed
		}
	}

	ev, err := s.events.GetByID(ctx, inv.EventID)
	if err != nil {
		return nil, err
	}

	code, err := s.codes.Issue(ctx, ev.Prefix, pt.Prefix)
	if err != nil {
		return nil, err
	}

	p := &domain.Participant{
		EventID:           inv.EventID,
		RegistrationCode:  code,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Organization:      inv.Organization,
		ParticipantTypeID: pt.ID,
		InvitationID:      &inv.ID,
		Status:            domain.ParticipantStatusPending,
		AccessLevel:       req.AccessLevel,
	}

	// Start at the first step of the workflow for this event and type; a
	// participant type without a workflow registers with no step and waits
	// for an administrator.
	wf, err := s.workflows.GetByEventAndType(ctx, inv.EventID, pt.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if wf != nil {
		p.CurrentStepID = wf.FirstStepID
	}

	var maxQuota *int32
	if !pt.QuotaExempt {
		maxQuota = inv.MaximumQuota
	}
	if err := s.participants.AdmitParticipant(ctx, p, maxQuota, constraint); err != nil {
		if errors.Is(err, repository.ErrQuotaExceeded) {
			return nil, ErrRegistrationClosed
		}
		return nil, err
	}

	if serr := s.emailSvc.SendRegistrationConfirmation(ctx, p, ev.Name); serr != nil {
		logger.Error("Failed to send registration confirmation", "participant_id", p.ID, "error", serr)
	}

	logger.Info("Participant registered", "participant_id", p.ID, "code", p.RegistrationCode, "event_id", p.EventID)
	return p, nil
}

func (s *registrationService) restrictionFor(ctx context.Context, inv *domain.Invitation) (*domain.Restriction, error) {
	if inv.RestrictionID == nil {
		return nil, nil
	}
	return s.invitations.GetRestriction(ctx, *inv.RestrictionID)
}

func (s *registrationService) SaveDraft(ctx context.Context, userID int32, eventID int32, invitationCode, payload string) (*domain.Draft, error) {
	d := &domain.Draft{
		ID:             uuid.NewString(),
		UserID:         userID,
		EventID:        eventID,
		InvitationCode: invitationCode,
		Payload:        payload,
	}
	if err := s.drafts.Upsert(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *registrationService) GetDraft(ctx context.Context, userID int32) (*domain.Draft, error) {
	return s.drafts.GetByUser(ctx, userID)
}

func (s *registrationService) DiscardDraft(ctx context.Context, userID int32) error {
	d, err := s.drafts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	return s.drafts.Delete(ctx, d.ID)
}
