package event

import "context"

// EventService defines business logic for event operations
type EventService interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (EventResponse, error)
	GetEvent(ctx context.Context, id string) (EventResponse, error)
	UpdateEvent(ctx context.Context, req UpdateEventRequest) (EventResponse, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context, filter EventFilter) (ListEventResponse, error)

	// Calendar returns the month's events grouped per calendar day,
	// for the admin calendar screen.
	Calendar(ctx context.Context, year, month int) (CalendarResponse, error)
}
