package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qrworks/qrworks-backend-go/internal/domain/holiday"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/database"
	"github.com/qrworks/qrworks-backend-go/internal/service/timesheet"
)

type HolidayServiceImpl struct {
	db          *database.DB
	holidayRepo holiday.WorkEntryRepository
	location    *time.Location
}

func NewHolidayService(db *database.DB, holidayRepo holiday.WorkEntryRepository, location *time.Location) holiday.HolidayService {
	return &HolidayServiceImpl{
		db:          db,
		holidayRepo: holidayRepo,
		location:    location,
	}
}

// CreateEntry implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateEntry(ctx context.Context, req holiday.CreateEntryRequest) (holiday.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.EntryResponse{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, s.location)
	if err != nil {
		return holiday.EntryResponse{}, fmt.Errorf("failed to parse date %q: %w", req.Date, err)
	}

	created, err := s.holidayRepo.Create(ctx, holiday.WorkEntry{
		ID:                   uuid.NewString(),
		Date:                 date,
		AllottedMinutes:      req.AllottedMinutes,
		ExtraOvertimeMinutes: req.ExtraOvertimeMinutes,
		Description:          req.Description,
	})
	if err != nil {
		return holiday.EntryResponse{}, err
	}

	return toEntryResponse(created), nil
}

// ListEntries implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListEntries(ctx context.Context, year, month int) ([]holiday.EntryResponse, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.location)
	to := from.AddDate(0, 1, 0)

	entries, err := s.holidayRepo.ListByRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday entries: %w", err)
	}

	responses := make([]holiday.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toEntryResponse(entry))
	}
	return responses, nil
}

// DeleteEntry implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

func toEntryResponse(entry holiday.WorkEntry) holiday.EntryResponse {
	return holiday.EntryResponse{
		ID:                   entry.ID,
		Date:                 entry.Date.Format("2006-01-02"),
		AllottedMinutes:      entry.AllottedMinutes,
		ExtraOvertimeMinutes: entry.ExtraOvertimeMinutes,
		Description:          entry.Description,
		IsExceeded:           entry.AllottedMinutes > timesheet.StatutoryHolidayMinutes,
	}
}
