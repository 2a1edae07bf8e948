package service

import (
	"context"
	"errors"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/repository"
)

// ErrInvalidWorkflow is returned when a workflow is created with no steps.
var ErrInvalidWorkflow = errors.New("workflow requires at least one step")

type eventService struct {
	events    repository.EventRepository
	types     repository.ParticipantTypeRepository
	workflows repository.WorkflowRepository
}

func NewEventService(
	events repository.EventRepository,
	types repository.ParticipantTypeRepository,
	workflows repository.WorkflowRepository,
) EventService {
	return &eventService{events: events, types: types, workflows: workflows}
}

func (s *eventService) CreateEvent(ctx context.Context, ev *domain.Event) error {
	return s.events.Create(ctx, ev)
}

func (s *eventService) GetEvent(ctx context.Context, id int32) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *eventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}

func (s *eventService) CreateParticipantType(ctx context.Context, pt *domain.ParticipantType) error {
	return s.types.Create(ctx, pt)
}

func (s *eventService) ListParticipantTypes(ctx context.Context, eventID int32) ([]domain.ParticipantType, error) {
	return s.types.ListByEvent(ctx, eventID)
}

func (s *eventService) CreateWorkflow(ctx context.Context, wf *domain.Workflow, steps []domain.Step) error {
	if len(steps) == 0 {
		return ErrInvalidWorkflow
	}
	return s.workflows.Create(ctx, wf, steps)
}

func (s *eventService) ListWorkflows(ctx context.Context, eventID int32) ([]domain.Workflow, error) {
	return s.workflows.ListByEvent(ctx, eventID)
}

func (s *eventService) ListSteps(ctx context.Context, workflowID int32) ([]domain.Step, error) {
	return s.workflows.ListSteps(ctx, workflowID)
}
