package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/event"
	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/database"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepositoryImpl{db: db}
}

const eventColumns = `e.id, e.client_id, e.title, e.location, e.start_at, e.end_at,
	e.break_start, e.break_end, e.status, e.notes, e.created_at, e.updated_at`

func scanEvent(row pgx.Row) (event.Event, error) {
	var e event.Event
	err := row.Scan(&e.ID, &e.ClientID, &e.Title, &e.Location, &e.StartAt, &e.EndAt,
		&e.BreakStart, &e.BreakEnd, &e.Status, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// GetByID implements event.EventRepository.
func (r *eventRepositoryImpl) GetByID(ctx context.Context, id string) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `, c.name
		FROM events e
		JOIN clients c ON c.id = e.client_id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	var found event.Event
	var clientName string
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.ClientID, &found.Title, &found.Location, &found.StartAt, &found.EndAt,
		&found.BreakStart, &found.BreakEnd, &found.Status, &found.Notes, &found.CreatedAt, &found.UpdatedAt,
		&clientName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return event.Event{}, event.ErrEventNotFound
		}
		return event.Event{}, fmt.Errorf("failed to get event with id %s: %w", id, err)
	}
	found.ClientName = &clientName

	found.ShiftTemplates, err = r.GetShiftTemplates(ctx, found.ID)
	if err != nil {
		return event.Event{}, err
	}
	return found, nil
}

// Create implements event.EventRepository.
func (r *eventRepositoryImpl) Create(ctx context.Context, newEvent event.Event) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO events (client_id, title, location, start_at, end_at, break_start, break_end, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, client_id, title, location, start_at, end_at,
			break_start, break_end, status, notes, created_at, updated_at
	`

	created, err := scanEvent(q.QueryRow(ctx, query,
		newEvent.ClientID, newEvent.Title, newEvent.Location, newEvent.StartAt, newEvent.EndAt,
		newEvent.BreakStart, newEvent.BreakEnd, newEvent.Status, newEvent.Notes))
	if err != nil {
		return event.Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

// Update implements event.EventRepository.
func (r *eventRepositoryImpl) Update(ctx context.Context, id string, req event.UpdateEventRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.ClientID != nil {
		updates["client_id"] = *req.ClientID
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.StartAt != nil {
		startAt, _ := time.Parse(time.RFC3339, *req.StartAt)
		updates["start_at"] = startAt
	}
	if req.EndAt != nil {
		endAt, _ := time.Parse(time.RFC3339, *req.EndAt)
		updates["end_at"] = endAt
	}
	if req.BreakStart != nil {
		// An empty string clears the break window.
		if *req.BreakStart == "" {
			updates["break_start"] = nil
		} else {
			updates["break_start"] = *req.BreakStart
		}
	}
	if req.BreakEnd != nil {
		if *req.BreakEnd == "" {
			updates["break_end"] = nil
		} else {
			updates["break_end"] = *req.BreakEnd
		}
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE events SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL", i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return event.ErrEventNotFound
		}
		return fmt.Errorf("failed to update event with id %s: %w", id, err)
	}
	return nil
}

// List implements event.EventRepository.
func (r *eventRepositoryImpl) List(ctx context.Context, filter event.EventFilter) ([]event.Event, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"e.deleted_at IS NULL"}
	args := []interface{}{}
	i := 1

	if filter.ClientID != nil {
		where = append(where, fmt.Sprintf("e.client_id = $%d", i))
		args = append(args, *filter.ClientID)
		i++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("e.status = $%d", i))
		args = append(args, *filter.Status)
		i++
	}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("e.end_at > $%d", i))
		args = append(args, *filter.From)
		i++
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("e.start_at < $%d", i))
		args = append(args, *filter.To)
		i++
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM events e"+whereClause, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query := "SELECT " + eventColumns + ", c.name FROM events e JOIN clients c ON c.id = e.client_id" +
		whereClause + fmt.Sprintf(" ORDER BY e.start_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events, err := collectEventsWithClient(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachShiftTemplates(ctx, events); err != nil {
		return nil, 0, err
	}

	return events, totalCount, nil
}

// ListBetween implements event.EventRepository.
func (r *eventRepositoryImpl) ListBetween(ctx context.Context, from, to time.Time) ([]event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `, c.name
		FROM events e
		JOIN clients c ON c.id = e.client_id
		WHERE e.deleted_at IS NULL AND e.start_at < $2 AND e.end_at > $1
		ORDER BY e.start_at
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events between %s and %s: %w",
			from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}
	defer rows.Close()

	events, err := collectEventsWithClient(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachShiftTemplates(ctx, events); err != nil {
		return nil, err
	}

	return events, nil
}

// SoftDelete implements event.EventRepository.
func (r *eventRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE events
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return event.ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event with id %s: %w", id, err)
	}
	return nil
}

// ReplaceShiftTemplates implements event.EventRepository. Callers run
// this inside WithTransaction together with the event write so a failed
// insert never leaves the event without its templates.
func (r *eventRepositoryImpl) ReplaceShiftTemplates(ctx context.Context, eventID string, templates []event.ShiftTemplate) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM event_shift_templates WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("failed to clear shift templates for event %s: %w", eventID, err)
	}

	query := `
		INSERT INTO event_shift_templates (event_id, day_token, start_time, end_time, position)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, tpl := range templates {
		if _, err := q.Exec(ctx, query, eventID, tpl.DayToken, tpl.StartTime, tpl.EndTime, tpl.Position); err != nil {
			return fmt.Errorf("failed to insert shift template for event %s: %w", eventID, err)
		}
	}
	return nil
}

// GetShiftTemplates implements event.EventRepository.
func (r *eventRepositoryImpl) GetShiftTemplates(ctx context.Context, eventID string) ([]event.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, event_id, day_token, start_time, end_time, position, created_at, updated_at
		FROM event_shift_templates
		WHERE event_id = $1
		ORDER BY position
	`

	rows, err := q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift templates for event %s: %w", eventID, err)
	}
	defer rows.Close()

	var templates []event.ShiftTemplate
	for rows.Next() {
		var t event.ShiftTemplate
		if err := rows.Scan(&t.ID, &t.EventID, &t.DayToken, &t.StartTime, &t.EndTime,
			&t.Position, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift template row: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func collectEventsWithClient(rows pgx.Rows) ([]event.Event, error) {
	var events []event.Event
	for rows.Next() {
		var e event.Event
		var clientName string
		if err := rows.Scan(&e.ID, &e.ClientID, &e.Title, &e.Location, &e.StartAt, &e.EndAt,
			&e.BreakStart, &e.BreakEnd, &e.Status, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
			&clientName); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		e.ClientName = &clientName
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepositoryImpl) attachShiftTemplates(ctx context.Context, events []event.Event) error {
	for i := range events {
		templates, err := r.GetShiftTemplates(ctx, events[i].ID)
		if err != nil {
			return err
		}
		events[i].ShiftTemplates = templates
	}
	return nil
}
