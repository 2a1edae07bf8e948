package workflow

import (
	"context"
	"math"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/repository"
)

// NoLimit is the sentinel returned by AvailableSlots when no constraint caps
// a participant type. Availability is unbounded, not merely large; callers
// must compare against NoLimit rather than treat it as a count.
const NoLimit = int32(math.MaxInt32)

// QuotaEvaluator computes remaining registration slots per invitation and
// participant type. It is read-only over participant, wishlist and
// constraint aggregates; admission itself is enforced transactionally by the
// participant repository.
//
// Policy: a participant type with no matching constraint is UNLIMITED by
// default. That default is deliberate and easy to misuse — it means an
// unconstrained type admits without bound. It is controlled by the
// registration.unlimited_when_unconstrained config flag so it can be
// toggled and tested independently.
type QuotaEvaluator struct {
	participants repository.ParticipantRepository
	wishlist     repository.WishlistRepository
	types        repository.ParticipantTypeRepository

	unlimitedWhenUnconstrained bool
}

func NewQuotaEvaluator(
	participants repository.ParticipantRepository,
	wishlist repository.WishlistRepository,
	types repository.ParticipantTypeRepository,
	unlimitedWhenUnconstrained bool,
) *QuotaEvaluator {
	return &QuotaEvaluator{
		participants:               participants,
		wishlist:                   wishlist,
		types:                      types,
		unlimitedWhenUnconstrained: unlimitedWhenUnconstrained,
	}
}

// AvailableSlots returns the remaining slots under the given constraint for
// the invitation's organization. The result may be negative, signaling
// over-quota admission that has already happened. A nil constraint yields
// NoLimit (or 0 when the unlimited-when-unconstrained policy is off).
//
// "Closed Session" constraints count closed-session wishlist membership for
// the organization instead of participant-type matches.
func (q *QuotaEvaluator) AvailableSlots(ctx context.Context, inv *domain.Invitation, c *domain.Constraint) (int32, error) {
	if c == nil {
		if q.unlimitedWhenUnconstrained {
			return NoLimit, nil
		}
		return 0, nil
	}

	var used int32
	var err error
	if c.Name == ConstraintNameClosedSession {
		used, err = q.wishlist.CountByOrganization(ctx, inv.EventID, inv.Organization)
	} else {
		used, err = q.participants.CountByTypeAndOrganization(ctx, inv.EventID, c.ParticipantTypeID, inv.Organization)
	}
	if err != nil {
		return 0, err
	}
	return c.Quota - used, nil
}

// SelectableTypes returns the participant types a registrant under this
// invitation may still choose. The invitation's MaximumQuota is evaluated
// first: once the organization-wide count reaches it, the set is empty
// regardless of per-type constraints. Quota-exempt types are always
// selectable below that cap.
func (q *QuotaEvaluator) SelectableTypes(ctx context.Context, inv *domain.Invitation, restriction *domain.Restriction) ([]domain.ParticipantType, error) {
	if inv.MaximumQuota != nil {
		total, err := q.participants.CountByOrganization(ctx, inv.EventID, inv.Organization)
		if err != nil {
			return nil, err
		}
		if total >= *inv.MaximumQuota {
			return nil, nil
		}
	}

	all, err := q.types.ListByEvent(ctx, inv.EventID)
	if err != nil {
		return nil, err
	}

	selectable := make([]domain.ParticipantType, 0, len(all))
	for _, pt := range all {
		if pt.QuotaExempt {
			selectable = append(selectable, pt)
			continue
		}
		slots, err := q.AvailableSlots(ctx, inv, constraintForType(restriction, pt.ID))
		if err != nil {
			return nil, err
		}
		if slots == NoLimit || slots > 0 {
			selectable = append(selectable, pt)
		}
	}
	return selectable, nil
}

// ConstraintForType exposes the restriction lookup used by SelectableTypes so
// the registration path can recheck the same constraint transactionally.
func ConstraintForType(restriction *domain.Restriction, participantTypeID int32) *domain.Constraint {
	return constraintForType(restriction, participantTypeID)
}

func constraintForType(restriction *domain.Restriction, participantTypeID int32) *domain.Constraint {
	if restriction == nil {
		return nil
	}
	for i := range restriction.Constraints {
		if restriction.Constraints[i].ParticipantTypeID == participantTypeID {
			return &restriction.Constraints[i]
		}
	}
	return nil
}
