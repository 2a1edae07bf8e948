package registration

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
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

// fixedGenerator returns canned codes in order, repeating the last one.
type fixedGenerator struct {
	codes []string
	calls int
}

func (g *fixedGenerator) Generate(eventPrefix, typePrefix string) string {
	idx := g.calls
	if idx >= len(g.codes) {
		idx = len(g.codes) - 1
	}
	g.calls++
	return g.codes[idx]
}

func TestCodeGenerator_Format(t *testing.T) {
	gen := NewCodeGenerator()
	pattern := regexp.MustCompile(`^[A-Z0-9]+-[A-Z0-9]+-\d{2}-\d{6}$`)

	for i := 0; i < 20; i++ {
		code := gen.Generate("wef25", "prs")
		assert.Regexp(t, pattern, code)
		assert.Contains(t, code, "WEF25-PRS-")
	}
}

func TestCodeIssuer_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("First Code Free", func(t *testing.T) {
		repo := new(MockParticipantRepo)
		gen := &fixedGenerator{codes: []string{"WEF25-PRS-26-000001"}}
		issuer := NewCodeIssuer(gen, repo)

		repo.On("ExistsByCode", ctx, "WEF25-PRS-26-000001").Return(false, nil)

		code, err := issuer.Issue(ctx, "WEF25", "PRS")
		assert.NoError(t, err)
		assert.Equal(t, "WEF25-PRS-26-000001", code)
	})

	t.Run("Retries On Collision", func(t *testing.T) {
		repo := new(MockParticipantRepo)
		gen := &fixedGenerator{codes: []string{
			"WEF25-PRS-26-000001",
			"WEF25-PRS-26-000002",
			"WEF25-PRS-26-000003",
		}}
		issuer := NewCodeIssuer(gen, repo)

		repo.On("ExistsByCode", ctx, "WEF25-PRS-26-000001").Return(true, nil)
		repo.On("ExistsByCode", ctx, "WEF25-PRS-26-000002").Return(true, nil)
		repo.On("ExistsByCode", ctx, "WEF25-PRS-26-000003").Return(false, nil)

		code, err := issuer.Issue(ctx, "WEF25", "PRS")
		assert.NoError(t, err)
		assert.Equal(t, "WEF25-PRS-26-000003", code)
		assert.Equal(t, 3, gen.calls)
	})

	t.Run("Exhausts After Max Attempts", func(t *testing.T) {
		repo := new(MockParticipantRepo)
		gen := &fixedGenerator{codes: []string{"WEF25-PRS-26-999999"}}
		issuer := NewCodeIssuer(gen, repo)

		repo.On("ExistsByCode", ctx, "WEF25-PRS-26-999999").Return(true, nil)

		code, err := issuer.Issue(ctx, "WEF25", "PRS")
		assert.ErrorIs(t, err, ErrCodeExhausted)
		assert.Empty(t, code)
		assert.Equal(t, 5, gen.calls)
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		repo := new(MockParticipantRepo)
		gen := &fixedGenerator{codes: []string{"WEF25-PRS-26-000001"}}
		issuer := NewCodeIssuer(gen, repo)

		repo.On("ExistsByCode", ctx, "WEF25-PRS-26-000001").Return(false, fmt.Errorf("connection reset"))

		_, err := issuer.Issue(ctx, "WEF25", "PRS")
		assert.EqualError(t, err, "connection reset")
		assert.Equal(t, 1, gen.calls)
	})
}
