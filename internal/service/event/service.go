package event

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/client"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/event"
	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/database"
	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/validator"
	"github.com/staffdeck/staffdeck-backend-go/internal/repository/postgresql"
)

type EventServiceImpl struct {
	db         *database.DB
	eventRepo  event.EventRepository
	clientRepo client.ClientRepository
}

func NewEventService(
	db *database.DB,
	eventRepo event.EventRepository,
	clientRepo client.ClientRepository,
) event.EventService {
	return &EventServiceImpl{
		db:         db,
		eventRepo:  eventRepo,
		clientRepo: clientRepo,
	}
}

func (s *EventServiceImpl) CreateEvent(ctx context.Context, req event.CreateEventRequest) (event.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return event.EventResponse{}, err
	}

	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return event.EventResponse{}, event.ErrClientNotFound
	}

	startAt, _ := time.Parse(time.RFC3339, req.StartAt)
	endAt, _ := time.Parse(time.RFC3339, req.EndAt)

	status := event.StatusDraft
	if req.Status != nil {
		status = event.Status(*req.Status)
	}

	newEvent := event.Event{
		ClientID:   req.ClientID,
		Title:      req.Title,
		Location:   req.Location,
		StartAt:    startAt,
		EndAt:      endAt,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
		Status:     status,
		Notes:      req.Notes,
	}

	var created event.Event
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.eventRepo.Create(txCtx, newEvent)
		if err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}

		templates := toShiftTemplates(created.ID, req.ShiftTemplates)
		if err := s.eventRepo.ReplaceShiftTemplates(txCtx, created.ID, templates); err != nil {
			return fmt.Errorf("failed to store shift templates: %w", err)
		}
		created.ShiftTemplates = templates
		return nil
	})
	if err != nil {
		return event.EventResponse{}, err
	}

	return event.ToEventResponse(created), nil
}

func (s *EventServiceImpl) GetEvent(ctx context.Context, id string) (event.EventResponse, error) {
	found, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return event.EventResponse{}, err
	}

	return event.ToEventResponse(found), nil
}

func (s *EventServiceImpl) UpdateEvent(ctx context.Context, req event.UpdateEventRequest) (event.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return event.EventResponse{}, err
	}

	current, err := s.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		return event.EventResponse{}, err
	}

	if req.ClientID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *req.ClientID); err != nil {
			return event.EventResponse{}, event.ErrClientNotFound
		}
	}

	// The range must stay ordered after a partial update.
	startAt := current.StartAt
	endAt := current.EndAt
	if req.StartAt != nil {
		startAt, _ = time.Parse(time.RFC3339, *req.StartAt)
	}
	if req.EndAt != nil {
		endAt, _ = time.Parse(time.RFC3339, *req.EndAt)
	}
	if !endAt.After(startAt) {
		return event.EventResponse{}, event.ErrInvalidDateRange
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.eventRepo.Update(txCtx, req.ID, req); err != nil {
			return err
		}

		if req.ShiftTemplates != nil {
			templates := toShiftTemplates(req.ID, *req.ShiftTemplates)
			if err := s.eventRepo.ReplaceShiftTemplates(txCtx, req.ID, templates); err != nil {
				return fmt.Errorf("failed to replace shift templates: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return event.EventResponse{}, err
	}

	return s.GetEvent(ctx, req.ID)
}

func (s *EventServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	if _, err := s.eventRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.eventRepo.SoftDelete(ctx, id)
}

func (s *EventServiceImpl) ListEvents(ctx context.Context, filter event.EventFilter) (event.ListEventResponse, error) {
	if err := filter.Validate(); err != nil {
		return event.ListEventResponse{}, err
	}

	events, totalCount, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return event.ListEventResponse{}, err
	}

	result := make([]event.EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, event.ToEventResponse(e))
	}

	return event.ListEventResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Events:     result,
	}, nil
}

func (s *EventServiceImpl) Calendar(ctx context.Context, year, month int) (event.CalendarResponse, error) {
	if month < 1 || month > 12 {
		return event.CalendarResponse{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be between 1 and 12",
		}}
	}
	if year < 1 {
		return event.CalendarResponse{}, validator.ValidationErrors{{
			Field:   "year",
			Message: "year must be a positive number",
		}}
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	events, err := s.eventRepo.ListBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return event.CalendarResponse{}, err
	}

	days := make([]event.CalendarDay, 0)
	for d := monthStart; d.Before(monthEnd); d = d.AddDate(0, 0, 1) {
		dayEnd := d.AddDate(0, 0, 1)

		var onDay []event.EventResponse
		for _, e := range events {
			if e.StartAt.Before(dayEnd) && e.EndAt.After(d) {
				onDay = append(onDay, event.ToEventResponse(e))
			}
		}
		if len(onDay) > 0 {
			days = append(days, event.CalendarDay{
				Date:   d.Format("2006-01-02"),
				Events: onDay,
			})
		}
	}

	return event.CalendarResponse{
		Year:  year,
		Month: month,
		Days:  days,
	}, nil
}

func toShiftTemplates(eventID string, reqs []event.ShiftTemplateRequest) []event.ShiftTemplate {
	templates := make([]event.ShiftTemplate, 0, len(reqs))
	for i, r := range reqs {
		templates = append(templates, event.ShiftTemplate{
			EventID:   eventID,
			DayToken:  event.DayToken(r.DayToken),
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Position:  i,
		})
	}
	return templates
}
