package jobs

import (
	"context"
	"fmt"
	"time"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/logger"
)

// SendPendingReminders notifies invitation owners about participants that
// have sat in PENDING or INPROGRESS past the reminder age
func (jr *JobRunner) SendPendingReminders() {
	jr.runWithRecovery("SendPendingReminders", func() {
		ctx := context.Background()

		cutoff := time.Now().AddDate(0, 0, -jr.config.Registration.PendingReminderDays)

		query := `
			SELECT p.event_id, i.created_by, u.email, u.name, COUNT(*)
			FROM participants p
			JOIN invitations i ON i.id = p.invitation_id
			JOIN users u ON u.id = i.created_by
			WHERE p.status IN ('PENDING', 'INPROGRESS')
			  AND p.created_on < $1
			GROUP BY p.event_id, i.created_by, u.email, u.name
		`

		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to query pending participants", "error", err)
			return
		}
		defer rows.Close()

		reminders := 0
		for rows.Next() {
			var eventID, createdBy, count int32
			var ownerEmail, ownerName string
			if err := rows.Scan(&eventID, &createdBy, &ownerEmail, &ownerName, &count); err != nil {
				logger.Error("Failed to scan pending reminder row", "error", err)
				continue
			}

			message := fmt.Sprintf("%d participant(s) have been awaiting review for more than %d days", count, jr.config.Registration.PendingReminderDays)

			note := &domain.Notification{
				UserID:  createdBy,
				EventID: eventID,
				Title:   "Pending accreditations need review",
				Message: message,
				Attributes: map[string]string{
					"pending_count": fmt.Sprintf("%d", count),
				},
			}
			if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
				logger.Error("Failed to create pending reminder", "user_id", createdBy, "error", err)
				continue
			}

			// Email delivery is best-effort; the in-app notification already landed.
			if err := jr.services.Email.Send(ctx, ownerEmail, ownerName, "Pending accreditations need review", message, "<p>"+message+"</p>"); err != nil {
				logger.Error("Failed to email pending reminder", "user_id", createdBy, "error", err)
			}
			reminders++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating pending participants", "error", err)
			return
		}

		logger.Info("Sent pending reminders", "count", reminders)
	})
}

// ArchiveNotifiedParticipants archives participants that have stayed in
// NOTIFIED past the housekeeping age. The sweep runs through the workflow
// engine so every archival leaves an audit row.
func (jr *JobRunner) ArchiveNotifiedParticipants() {
	jr.runWithRecovery("ArchiveNotifiedParticipants", func() {
		ctx := context.Background()

		cutoff := time.Now().AddDate(0, 0, -jr.config.Registration.ArchiveAfterDays)

		query := `
			SELECT id
			FROM participants
			WHERE status = 'NOTIFIED'
			  AND updated_on < $1
		`

		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to query notified participants", "error", err)
			return
		}
		defer rows.Close()

		var ids []int32
		for rows.Next() {
			var id int32
			if err := rows.Scan(&id); err != nil {
				logger.Error("Failed to scan participant id", "error", err)
				continue
			}
			ids = append(ids, id)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating notified participants", "error", err)
			return
		}

		archived := 0
		for _, id := range ids {
			// User 0 marks system-initiated actions in the audit trail.
			if _, err := jr.engine.ProcessParticipant(ctx, id, 0, domain.ActionArchive, "Archived by scheduled housekeeping"); err != nil {
				logger.Error("Failed to archive participant", "participant_id", id, "error", err)
				continue
			}
			archived++
		}

		logger.Info("Archived notified participants", "count", archived)
	})
}
