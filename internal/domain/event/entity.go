package event

import "time"

// Event is a scheduled engagement for a client, spanning one or more
// calendar days. When ShiftTemplates is empty the crew is assumed to work
// the full StartAt..EndAt span; otherwise the templates describe the
// recurring working hours within that span.
type Event struct {
	ID         string
	ClientID   string
	Title      string
	Location   *string
	StartAt    time.Time
	EndAt      time.Time
	BreakStart *string // "HH:MM", applied once per calendar day
	BreakEnd   *string // "HH:MM"
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time

	ShiftTemplates []ShiftTemplate

	// DTO
	ClientName *string
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var StatusValues = []string{
	string(StatusDraft),
	string(StatusConfirmed),
	string(StatusCancelled),
	string(StatusCompleted),
}

// ShiftTemplate is a recurring working window within an event span.
// EndTime earlier than StartTime means the shift runs past midnight into
// the following calendar day. Templates may overlap; their hours add up.
type ShiftTemplate struct {
	ID        string
	EventID   string
	DayToken  DayToken
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayToken selects which calendar days of the event span a shift
// template applies to.
type DayToken string

const (
	DayMonday    DayToken = "monday"
	DayTuesday   DayToken = "tuesday"
	DayWednesday DayToken = "wednesday"
	DayThursday  DayToken = "thursday"
	DayFriday    DayToken = "friday"
	DaySaturday  DayToken = "saturday"
	DaySunday    DayToken = "sunday"
	DayWeekdays  DayToken = "weekday-range" // Mon-Fri
	DayWeekend   DayToken = "weekend-range" // Sat-Sun
	DayAll       DayToken = "all-days"
)

var DayTokenValues = []string{
	string(DayMonday),
	string(DayTuesday),
	string(DayWednesday),
	string(DayThursday),
	string(DayFriday),
	string(DaySaturday),
	string(DaySunday),
	string(DayWeekdays),
	string(DayWeekend),
	string(DayAll),
}

// Weekday maps a specific-day token to its time.Weekday. The second
// return value is false for range tokens and unknown tokens.
func (d DayToken) Weekday() (time.Weekday, bool) {
	switch d {
	case DayMonday:
		return time.Monday, true
	case DayTuesday:
		return time.Tuesday, true
	case DayWednesday:
		return time.Wednesday, true
	case DayThursday:
		return time.Thursday, true
	case DayFriday:
		return time.Friday, true
	case DaySaturday:
		return time.Saturday, true
	case DaySunday:
		return time.Sunday, true
	}
	return time.Sunday, false
}
