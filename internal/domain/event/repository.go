package event

import (
	"context"
	"time"
)

type EventRepository interface {
	GetByID(ctx context.Context, id string) (Event, error)
	Create(ctx context.Context, newEvent Event) (Event, error)
	Update(ctx context.Context, id string, req UpdateEventRequest) error
	List(ctx context.Context, filter EventFilter) ([]Event, int64, error)
	// ListBetween returns non-deleted events overlapping [from, to),
	// shift templates included.
	ListBetween(ctx context.Context, from, to time.Time) ([]Event, error)
	SoftDelete(ctx context.Context, id string) error

	ReplaceShiftTemplates(ctx context.Context, eventID string, templates []ShiftTemplate) error
	GetShiftTemplates(ctx context.Context, eventID string) ([]ShiftTemplate, error)
}
