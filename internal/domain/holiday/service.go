package holiday

import (
	"context"
)

type HolidayService interface {
	List(ctx context.Context, year int) ([]HolidayResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	// Import upserts every entry of a calendar; invalid entries are reported and skipped
	Import(ctx context.Context, cal Calendar) (ImportResult, error)
}
