package service

import (
	"context"
	"errors"

	"accreditation-backend/internal/domain"
)

// ErrForbidden is returned when the acting user lacks the role owning the
// participant's current step.
var ErrForbidden = errors.New("user is not authorized for this step")

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, error) // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	CreateUser(ctx context.Context, name, email, password string, roles []domain.Role) (*domain.User, error)
}

// AccreditationService is the role-gated entry point to the workflow engine.
type AccreditationService interface {
	Approve(ctx context.Context, userID, participantID int32, remarks string) (*domain.Participant, error)
	Reject(ctx context.Context, userID, participantID int32, remarks string) (*domain.Participant, error)
	Print(ctx context.Context, userID, participantID int32, remarks string) (*domain.Participant, error)
	Notify(ctx context.Context, userID, participantID int32, remarks string) (*domain.Participant, error)
	Archive(ctx context.Context, userID, participantID int32, remarks string) (*domain.Participant, error)

	GetParticipant(ctx context.Context, participantID int32) (*domain.Participant, error)
	ListParticipants(ctx context.Context, eventID int32, status string, page, pageSize int32) ([]domain.Participant, int32, error)
	ListApprovals(ctx context.Context, participantID int32) ([]domain.Approval, error)
}

type RegistrationService interface {
	// SelectableTypes returns the participant types still open under the
	// invitation, used to populate the registration form.
	SelectableTypes(ctx context.Context, invitationCode string) ([]domain.ParticipantType, error)
	// Register admits a participant under an invitation. The quota recheck
	// and insert run in one serializable transaction.
	Register(ctx context.Context, req *RegisterRequest) (*domain.Participant, error)

	SaveDraft(ctx context.Context, userID int32, eventID int32, invitationCode, payload string) (*domain.Draft, error)
	GetDraft(ctx context.Context, userID int32) (*domain.Draft, error)
	DiscardDraft(ctx context.Context, userID int32) error
}

// RegisterRequest carries one registration submission.
type RegisterRequest struct {
	InvitationCode    string `json:"invitation_code"`
	ParticipantTypeID int32  `json:"participant_type_id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	AccessLevel       string `json:"access_level"`
}

type InvitationService interface {
	CreateInvitation(ctx context.Context, inv *domain.Invitation) error
	ListInvitations(ctx context.Context, eventID int32) ([]domain.Invitation, error)
	CreateRestriction(ctx context.Context, r *domain.Restriction) error
}

type EventService interface {
	CreateEvent(ctx context.Context, ev *domain.Event) error
	GetEvent(ctx context.Context, id int32) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	CreateParticipantType(ctx context.Context, pt *domain.ParticipantType) error
	ListParticipantTypes(ctx context.Context, eventID int32) ([]domain.ParticipantType, error)
	CreateWorkflow(ctx context.Context, wf *domain.Workflow, steps []domain.Step) error
	ListWorkflows(ctx context.Context, eventID int32) ([]domain.Workflow, error)
	ListSteps(ctx context.Context, workflowID int32) ([]domain.Step, error)
}

// ExportService renders participant rosters as spreadsheet workbooks.
type ExportService interface {
	ExportRoster(ctx context.Context, eventID int32) ([]byte, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

// EmailService delivers outbound mail. Callers treat failures as
// fire-and-forget: a failed send never rolls back the action behind it.
type EmailService interface {
	Send(ctx context.Context, toEmail, toName, subject, plainText, htmlContent string) error

	SendRejectionNotice(ctx context.Context, p *domain.Participant, remarks string) error
	SendFinalizationNotice(ctx context.Context, p *domain.Participant) error
	SendRegistrationConfirmation(ctx context.Context, p *domain.Participant, eventName string) error
}
