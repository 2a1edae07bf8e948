package workflow

import (
	"context"

	"github.com/stretchr/testify/mock"

	"accreditation-backend/internal/domain"
)

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

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendRejectionNotice(ctx context.Context, p *domain.Participant, remarks string) error {
	args := m.Called(ctx, p, remarks)
	return args.Error(0)
}
func (m *MockNotifier) SendFinalizationNotice(ctx context.Context, p *domain.Participant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func int32Ptr(v int32) *int32 { return &v }
