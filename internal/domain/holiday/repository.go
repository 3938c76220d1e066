package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// GetByDate returns nil, nil when date is not a holiday
	GetByDate(ctx context.Context, date time.Time) (*Holiday, error)
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	Create(ctx context.Context, h Holiday) (Holiday, error)
	// Upsert creates the holiday or renames the one already on that date
	Upsert(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
