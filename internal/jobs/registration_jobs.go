package jobs

import (
	"context"
	"time"

	"accreditation-backend/internal/logger"
)

// ExpireStaleDrafts removes registration drafts untouched past the TTL
func (jr *JobRunner) ExpireStaleDrafts() {
	jr.runWithRecovery("ExpireStaleDrafts", func() {
		ctx := context.Background()

		ttl := time.Duration(jr.config.Registration.DraftTTLHours) * time.Hour
		cutoff := time.Now().Add(-ttl)

		deleted, err := jr.store.DraftRepository.DeleteExpired(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to expire stale drafts", "error", err)
			return
		}

		logger.Info("Expired stale drafts", "count", deleted, "cutoff", cutoff)
	})
}
