package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"accreditation-backend/internal/logger"
	"accreditation-backend/internal/repository"
)

type exportService struct {
	participants repository.ParticipantRepository
	types        repository.ParticipantTypeRepository
	events       repository.EventRepository
}

func NewExportService(
	participants repository.ParticipantRepository,
	types repository.ParticipantTypeRepository,
	events repository.EventRepository,
) ExportService {
	return &exportService{participants: participants, types: types, events: events}
}

// ExportRoster renders every participant of the event into a single-sheet
// workbook, one row per participant, newest first.
func (s *exportService) ExportRoster(ctx context.Context, eventID int32) ([]byte, error) {
	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	participants, total, err := s.participants.ListByEvent(ctx, eventID, "", 1, 10000)
	if err != nil {
		return nil, err
	}

	typeNames := map[int32]string{}
	types, err := s.types.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for _, pt := range types {
		typeNames[pt.ID] = pt.Name
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Roster"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Registration Code", "First Name", "Last Name", "Email", "Organization", "Participant Type", "Access Level", "Status", "Registered On"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, p := range participants {
		values := []interface{}{
			p.RegistrationCode,
			p.FirstName,
			p.LastName,
			p.Email,
			p.Organization,
			typeNames[p.ParticipantTypeID],
			p.AccessLevel,
			string(p.Status),
			p.CreatedOn.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	logger.Info("Roster exported", "event", ev.Name, "participants", total)
	return buf.Bytes(), nil
}
