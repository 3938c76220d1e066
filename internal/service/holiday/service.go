package holiday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: holidayRepo}
}

func mapHolidayToResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:   h.ID,
		Date: h.Date.Format(validator.DateLayout),
		Name: h.Name,
	}
}

func toHoliday(req holiday.CreateHolidayRequest) holiday.Holiday {
	date, _ := validator.IsValidDate(req.Date)
	return holiday.Holiday{Date: date, Name: strings.TrimSpace(req.Name)}
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	if year < 1 || year > 9999 {
		return nil, validator.ValidationErrors{{
			Field:   "year",
			Message: "year must be between 1 and 9999",
		}}
	}

	holidays, err := s.HolidayRepository.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapHolidayToResponse(h))
	}
	return responses, nil
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := s.HolidayRepository.Create(ctx, toHoliday(req))
	if err != nil {
		if errors.Is(err, holiday.ErrHolidayExists) {
			return holiday.HolidayResponse{}, err
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	slog.Info("holiday created", "holiday_id", created.ID, "date", req.Date)
	return mapHolidayToResponse(created), nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return holiday.ErrHolidayNotFound
	}

	if err := s.HolidayRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	slog.Info("holiday deleted", "holiday_id", id)
	return nil
}

// Import implements holiday.HolidayService.
func (s *HolidayServiceImpl) Import(ctx context.Context, cal holiday.Calendar) (holiday.ImportResult, error) {
	result := holiday.ImportResult{}

	for i, entry := range cal.Holidays {
		if err := entry.Validate(); err != nil {
			result.Failed = append(result.Failed, fmt.Sprintf("entry %d (%s): %v", i+1, entry.Date, err))
			continue
		}
		if _, err := s.HolidayRepository.Upsert(ctx, toHoliday(entry)); err != nil {
			return result, fmt.Errorf("failed to import holiday %s: %w", entry.Date, err)
		}
		result.Imported++
	}

	slog.Info("holiday calendar imported", "imported", result.Imported, "failed", len(result.Failed))
	return result, nil
}
