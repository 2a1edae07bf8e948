package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"accreditation-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockParticipantRepo
type MockParticipantRepo struct {
	mock.Mock
}

func (m *MockParticipantRepo) Create(ctx context.Context, p *domain.Participant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockParticipantRepo) GetByID(ctx context.Context, id int32) (*domain.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}
func (m *MockParticipantRepo) GetByCode(ctx context.Context, code string) (*domain.Participant, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}
func (m *MockParticipantRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}
func (m *MockParticipantRepo) UpdateProgress(ctx context.Context, id int32, stepID *int32, status domain.ParticipantStatus) error {
	args := m.Called(ctx, id, stepID, status)
	return args.Error(0)
}
func (m *MockParticipantRepo) ListByEvent(ctx context.Context, eventID int32, status string, page, pageSize int32) ([]domain.Participant, int32, error) {
	args := m.Called(ctx, eventID, status, page, pageSize)
	return args.Get(0).([]domain.Participant), args.Get(1).(int32), args.Error(2)
}
func (m *MockParticipantRepo) CountByTypeAndOrganization(ctx context.Context, eventID, participantTypeID int32, organization string) (int32, error) {
	args := m.Called(ctx, eventID, participantTypeID, organization)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockParticipantRepo) CountByOrganization(ctx context.Context, eventID int32, organization string) (int32, error) {
	args := m.Called(ctx, eventID, organization)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockParticipantRepo) AdmitParticipant(ctx context.Context, p *domain.Participant, maxQuota *int32, constraint *domain.Constraint) error {
	args := m.Called(ctx, p, maxQuota, constraint)
	return args.Error(0)
}

// MockWorkflowRepo
type MockWorkflowRepo struct {
	mock.Mock
}

func (m *MockWorkflowRepo) Create(ctx context.Context, wf *domain.Workflow, steps []domain.Step) error {
	args := m.Called(ctx, wf, steps)
	return args.Error(0)
}
func (m *MockWorkflowRepo) GetByID(ctx context.Context, id int32) (*domain.Workflow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workflow), args.Error(1)
}
func (m *MockWorkflowRepo) GetByEventAndType(ctx context.Context, eventID, participantTypeID int32) (*domain.Workflow, error) {
	args := m.Called(ctx, eventID, participantTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workflow), args.Error(1)
}
func (m *MockWorkflowRepo) ListByEvent(ctx context.Context, eventID int32) ([]domain.Workflow, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.Workflow), args.Error(1)
}
func (m *MockWorkflowRepo) GetStep(ctx context.Context, stepID int32) (*domain.Step, error) {
	args := m.Called(ctx, stepID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Step), args.Error(1)
}
func (m *MockWorkflowRepo) GetStepByName(ctx context.Context, workflowID int32, name string) (*domain.Step, error) {
	args := m.Called(ctx, workflowID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Step), args.Error(1)
}
func (m *MockWorkflowRepo) GetStepByNameAndAction(ctx context.Context, workflowID int32, name string, action domain.Action) (*domain.Step, error) {
	args := m.Called(ctx, workflowID, name, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Step), args.Error(1)
}
func (m *MockWorkflowRepo) ListSteps(ctx context.Context, workflowID int32) ([]domain.Step, error) {
	args := m.Called(ctx, workflowID)
	return args.Get(0).([]domain.Step), args.Error(1)
}

// MockApprovalRepo
type MockApprovalRepo struct {
	mock.Mock
}

func (m *MockApprovalRepo) Create(ctx context.Context, a *domain.Approval) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockApprovalRepo) ListByParticipant(ctx context.Context, participantID int32) ([]domain.Approval, error) {
	args := m.Called(ctx, participantID)
	return args.Get(0).([]domain.Approval), args.Error(1)
}

// MockInvitationRepo
type MockInvitationRepo struct {
	mock.Mock
}

func (m *MockInvitationRepo) Create(ctx context.Context, inv *domain.Invitation) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvitationRepo) GetByID(ctx context.Context, id int32) (*domain.Invitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}
func (m *MockInvitationRepo) GetByCode(ctx context.Context, code string) (*domain.Invitation, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}
func (m *MockInvitationRepo) ListByEvent(ctx context.Context, eventID int32) ([]domain.Invitation, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.Invitation), args.Error(1)
}
func (m *MockInvitationRepo) GetRestriction(ctx context.Context, restrictionID int32) (*domain.Restriction, error) {
	args := m.Called(ctx, restrictionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restriction), args.Error(1)
}
func (m *MockInvitationRepo) CreateRestriction(ctx context.Context, r *domain.Restriction) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// MockParticipantTypeRepo
type MockParticipantTypeRepo struct {
	mock.Mock
}

func (m *MockParticipantTypeRepo) Create(ctx context.Context, pt *domain.ParticipantType) error {
	args := m.Called(ctx, pt)
	return args.Error(0)
}
func (m *MockParticipantTypeRepo) GetByID(ctx context.Context, id int32) (*domain.ParticipantType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParticipantType), args.Error(1)
}
func (m *MockParticipantTypeRepo) ListByEvent(ctx context.Context, eventID int32) ([]domain.ParticipantType, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.ParticipantType), args.Error(1)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, ev *domain.Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) List(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockDraftRepo
type MockDraftRepo struct {
	mock.Mock
}

func (m *MockDraftRepo) Upsert(ctx context.Context, d *domain.Draft) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDraftRepo) GetByUser(ctx context.Context, userID int32) (*domain.Draft, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Draft), args.Error(1)
}
func (m *MockDraftRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockDraftRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockWishlistRepo
type MockWishlistRepo struct {
	mock.Mock
}

func (m *MockWishlistRepo) Create(ctx context.Context, w *domain.WishlistEntry) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}
func (m *MockWishlistRepo) CountByOrganization(ctx context.Context, eventID int32, organization string) (int32, error) {
	args := m.Called(ctx, eventID, organization)
	return args.Get(0).(int32), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Send(ctx context.Context, toEmail, toName, subject, plainText, htmlContent string) error {
	args := m.Called(ctx, toEmail, toName, subject, plainText, htmlContent)
	return args.Error(0)
}
func (m *MockEmailService) SendRejectionNotice(ctx context.Context, p *domain.Participant, remarks string) error {
	args := m.Called(ctx, p, remarks)
	return args.Error(0)
}
func (m *MockEmailService) SendFinalizationNotice(ctx context.Context, p *domain.Participant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockEmailService) SendRegistrationConfirmation(ctx context.Context, p *domain.Participant, eventName string) error {
	args := m.Called(ctx, p, eventName)
	return args.Error(0)
}

func int32Ptr(v int32) *int32 { return &v }
