package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"accreditation-backend/internal/domain"
)

func TestQuotaEvaluator_AvailableSlots(t *testing.T) {
	ctx := context.Background()
	inv := &domain.Invitation{ID: 1, EventID: 9, Organization: "Acme Broadcasting"}

	t.Run("Counts Type Usage Against Quota", func(t *testing.T) {
		participants := new(MockParticipantRepo)
		wishlist := new(MockWishlistRepo)
		types := new(MockParticipantTypeRepo)
		q := NewQuotaEvaluator(participants, wishlist, types, true)

		c := &domain.Constraint{Name: "Delegates", ParticipantTypeID: 5, Quota: 5}
		participants.On("CountByTypeAndOrganization", ctx, int32(9), int32(5), "Acme Broadcasting").Return(int32(5), nil)

		slots, err := q.AvailableSlots(ctx, inv, c)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), slots)
	})

	t.Run("Over Quota Goes Negative", func(t *testing.T) {
		participants := new(MockParticipantRepo)
		q := NewQuotaEvaluator(participants, new(MockWishlistRepo), new(MockParticipantTypeRepo), true)

		c := &domain.Constraint{Name: "Delegates", ParticipantTypeID: 5, Quota: 5}
		participants.On("CountByTypeAndOrganization", ctx, int32(9), int32(5), "Acme Broadcasting").Return(int32(6), nil)

		slots, err := q.AvailableSlots(ctx, inv, c)
		assert.NoError(t, err)
		assert.Equal(t, int32(-1), slots)
	})

	t.Run("No Constraint Means Unlimited By Default", func(t *testing.T) {
		q := NewQuotaEvaluator(new(MockParticipantRepo), new(MockWishlistRepo), new(MockParticipantTypeRepo), true)

		slots, err := q.AvailableSlots(ctx, inv, nil)
		assert.NoError(t, err)
		assert.Equal(t, NoLimit, slots)
	})

	t.Run("No Constraint Closed By Policy", func(t *testing.T) {
		q := NewQuotaEvaluator(new(MockParticipantRepo), new(MockWishlistRepo), new(MockParticipantTypeRepo), false)

		slots, err := q.AvailableSlots(ctx, inv, nil)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), slots)
	})

	t.Run("Closed Session Counts Wishlist", func(t *testing.T) {
		participants := new(MockParticipantRepo)
		wishlist := new(MockWishlistRepo)
		q := NewQuotaEvaluator(participants, wishlist, new(MockParticipantTypeRepo), true)

		c := &domain.Constraint{Name: ConstraintNameClosedSession, ParticipantTypeID: 5, Quota: 3}
		wishlist.On("CountByOrganization", ctx, int32(9), "Acme Broadcasting").Return(int32(1), nil)

		slots, err := q.AvailableSlots(ctx, inv, c)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), slots)
		participants.AssertNotCalled(t, "CountByTypeAndOrganization", ctx, int32(9), int32(5), "Acme Broadcasting")
	})
}

func TestQuotaEvaluator_SelectableTypes(t *testing.T) {
	ctx := context.Background()

	allTypes := []domain.ParticipantType{
		{ID: 5, EventID: 9, Name: "Delegate"},
		{ID: 6, EventID: 9, Name: TypeNamePressMedia},
		{ID: 7, EventID: 9, Name: "Security Liaison", QuotaExempt: true},
	}

	t.Run("Maximum Quota Reached Collapses Set", func(t *testing.T) {
		participants := new(MockParticipantRepo)
		q := NewQuotaEvaluator(participants, new(MockWishlistRepo), new(MockParticipantTypeRepo), true)

		inv := &domain.Invitation{ID: 1, EventID: 9, Organization: "Acme Broadcasting", MaximumQuota: int32Ptr(10)}
		participants.On("CountByOrganization", ctx, int32(9), "Acme Broadcasting").Return(int32(10), nil)

		types, err := q.SelectableTypes(ctx, inv, nil)
		assert.NoError(t, err)
		assert.Empty(t, types)
	})

	t.Run("Filters Exhausted Constraints", func(t *testing.T) {
		participants := new(MockParticipantRepo)
		typeRepo := new(MockParticipantTypeRepo)
		q := NewQuotaEvaluator(participants, new(MockWishlistRepo), typeRepo, true)

		inv := &domain.Invitation{ID: 1, EventID: 9, Organization: "Acme Broadcasting"}
		restriction := &domain.Restriction{
			ID: 2,
			Constraints: []domain.Constraint{
				{Name: "Delegates", ParticipantTypeID: 5, Quota: 5},
				{Name: "Press", ParticipantTypeID: 6, Quota: 2},
			},
		}

		typeRepo.On("ListByEvent", ctx, int32(9)).Return(allTypes, nil)
		// Delegate quota exhausted, press still open.
		participants.On("CountByTypeAndOrganization", ctx, int32(9), int32(5), "Acme Broadcasting").Return(int32(5), nil)
		participants.On("CountByTypeAndOrganization", ctx, int32(9), int32(6), "Acme Broadcasting").Return(int32(1), nil)

		types, err := q.SelectableTypes(ctx, inv, restriction)
		assert.NoError(t, err)
		assert.Len(t, types, 2)
		assert.Equal(t, TypeNamePressMedia, types[0].Name)
		assert.Equal(t, "Security Liaison", types[1].Name)
	})

	t.Run("Unconstrained Types Selectable By Default", func(t *testing.T) {
		typeRepo := new(MockParticipantTypeRepo)
		q := NewQuotaEvaluator(new(MockParticipantRepo), new(MockWishlistRepo), typeRepo, true)

		inv := &domain.Invitation{ID: 1, EventID: 9, Organization: "Acme Broadcasting"}
		typeRepo.On("ListByEvent", ctx, int32(9)).Return(allTypes, nil)

		types, err := q.SelectableTypes(ctx, inv, nil)
		assert.NoError(t, err)
		assert.Len(t, types, 3)
	})

	t.Run("Quota Exempt Always Selectable", func(t *testing.T) {
		participants := new(MockParticipantRepo)
		typeRepo := new(MockParticipantTypeRepo)
		q := NewQuotaEvaluator(participants, new(MockWishlistRepo), typeRepo, false)

		inv := &domain.Invitation{ID: 1, EventID: 9, Organization: "Acme Broadcasting"}
		typeRepo.On("ListByEvent", ctx, int32(9)).Return(allTypes, nil)

		// Policy closes unconstrained types; only the exempt one survives.
		types, err := q.SelectableTypes(ctx, inv, nil)
		assert.NoError(t, err)
		assert.Len(t, types, 1)
		assert.Equal(t, "Security Liaison", types[0].Name)
	})
}

func TestConstraintForType(t *testing.T) {
	restriction := &domain.Restriction{
		Constraints: []domain.Constraint{
			{ParticipantTypeID: 5, Quota: 5},
			{ParticipantTypeID: 6, Quota: 2},
		},
	}

	assert.Equal(t, int32(2), ConstraintForType(restriction, 6).Quota)
	assert.Nil(t, ConstraintForType(restriction, 99))
	assert.Nil(t, ConstraintForType(nil, 5))
}
