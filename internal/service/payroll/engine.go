package payroll

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdeck/staffdeck-backend-go/internal/config"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/assignment"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/event"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/payroll"
)

// Engine computes hours and payroll figures for assignments. All
// methods are pure: identical inputs produce identical outputs, nothing
// is read or written outside the arguments, so a single Engine is safe
// to share across requests.
//
// The engine never fails. Malformed clock strings, inverted date ranges
// and unknown day tokens degrade to documented defaults so a single bad
// record cannot block a payroll screen.
type Engine struct {
	cfg config.PayrollConfig
}

func NewEngine(cfg config.PayrollConfig) *Engine {
	return &Engine{cfg: cfg}
}

// DefaultEngineConfig returns the standard business fallback constants.
// Production code overrides these through the environment.
func DefaultEngineConfig() config.PayrollConfig {
	return config.PayrollConfig{
		DefaultHourlyRateCost: decimal.NewFromInt(15),
		SellRateMargin:        decimal.RequireFromString("1.667"),
		MealAllowance:         decimal.NewFromInt(10),
		MealAllowanceMinHours: 5,
		TravelAllowance:       decimal.Zero,
	}
}

// InclusiveDayCount returns how many calendar days the range touches,
// both endpoints included: a same-day range counts 1. Inverted ranges
// also floor at 1; this is a defensive floor, validation happens at the
// form layer.
func InclusiveDayCount(start, end time.Time) int {
	s := midnight(start)
	e := midnight(end)

	days := int(math.Ceil(e.Sub(s).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}

// MatchingDayCount returns how many calendar days in the inclusive
// range match the day token. Unknown tokens match nothing.
func MatchingDayCount(token event.DayToken, start, end time.Time) int {
	if token == event.DayAll {
		return InclusiveDayCount(start, end)
	}

	s := midnight(start)
	e := midnight(end)

	count := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		switch token {
		case event.DayWeekdays:
			if d.Weekday() >= time.Monday && d.Weekday() <= time.Friday {
				count++
			}
		case event.DayWeekend:
			if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
				count++
			}
		default:
			if wd, ok := token.Weekday(); ok && d.Weekday() == wd {
				count++
			}
		}
	}
	return count
}

// BreakDurationHours returns the length of a daily break window in
// hours. Malformed clock strings and windows that do not move forward
// within the same day (including ones that would cross midnight) yield 0.
func BreakDurationHours(startClock, endClock string) float64 {
	start, err := parseClock(startClock)
	if err != nil {
		return 0
	}
	end, err := parseClock(endClock)
	if err != nil {
		return 0
	}

	minutes := end - start
	if minutes <= 0 {
		return 0
	}
	return float64(minutes) / 60
}

// CombineDateAndTime puts a "HH:MM" clock onto a calendar date, seconds
// zeroed. A malformed clock falls back to midnight.
func CombineDateAndTime(date time.Time, clock string) time.Time {
	minutes, err := parseClock(clock)
	if err != nil {
		return midnight(date)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}

// GrossHours computes the total scheduled working hours of an event.
//
// Without shift templates the crew works the whole start..end span and
// the raw instant difference is the answer, reported exactly (multi-day
// spans included, no rounding). With templates the span only bounds the
// calendar; actual hours are each template's per-occurrence duration
// times the days it matches, rounded to 2 decimals, so days the crew is
// not scheduled do not inflate the total.
func GrossHours(ev event.Event) float64 {
	if len(ev.ShiftTemplates) == 0 {
		hours := ev.EndAt.Sub(ev.StartAt).Hours()
		if hours < 0 {
			return 0
		}
		return hours
	}

	total := 0.0
	for _, tpl := range ev.ShiftTemplates {
		total += shiftHours(tpl) * float64(MatchingDayCount(tpl.DayToken, ev.StartAt, ev.EndAt))
	}
	return round2(total)
}

// shiftHours is the duration of one occurrence of a shift template. An
// end clock earlier than the start clock means the shift wraps past
// midnight into the next calendar day.
func shiftHours(tpl event.ShiftTemplate) float64 {
	start, err := parseClock(tpl.StartTime)
	if err != nil {
		return 0
	}
	end, err := parseClock(tpl.EndTime)
	if err != nil {
		return 0
	}

	if end >= start {
		return float64(end-start) / 60
	}
	return float64(24*60-start+end) / 60
}

// NetHours deducts the daily break from gross hours, once per calendar
// day of the event, floored at zero.
func NetHours(grossHours, breakPerDayHours float64, eventDays int) float64 {
	net := round2(grossHours - breakPerDayHours*float64(eventDays))
	if net < 0 {
		return 0
	}
	return net
}

// Calculate produces the payroll record for one assignment on an event.
// Persisted overrides on the assignment win over computed values at
// every stage: gross hours, net hours, and finally actual worked hours.
func (e *Engine) Calculate(ev event.Event, a assignment.Assignment) payroll.Calculation {
	gross := GrossHours(ev)
	if a.GrossHoursOverride != nil {
		gross = round2(*a.GrossHoursOverride)
	}

	eventDays := InclusiveDayCount(ev.StartAt, ev.EndAt)

	breakPerDay := 0.0
	if ev.BreakStart != nil && ev.BreakEnd != nil {
		breakPerDay = BreakDurationHours(*ev.BreakStart, *ev.BreakEnd)
	}

	net := NetHours(gross, breakPerDay, eventDays)
	if a.NetHoursOverride != nil {
		net = round2(*a.NetHoursOverride)
	}

	effective := net
	if a.ActualHours != nil {
		effective = round2(*a.ActualHours)
	}

	rateCost := e.cfg.DefaultHourlyRateCost
	if a.HourlyRateCost != nil {
		rateCost = *a.HourlyRateCost
	}

	rateSell := rateCost.Mul(e.cfg.SellRateMargin).Round(2)
	if a.HourlyRateSell != nil {
		rateSell = *a.HourlyRateSell
	}

	meal := decimal.Zero
	switch {
	case a.MealAllowance != nil:
		meal = *a.MealAllowance
	case gross > e.cfg.MealAllowanceMinHours:
		meal = e.cfg.MealAllowance
	}

	travel := e.cfg.TravelAllowance
	if a.TravelAllowance != nil {
		travel = *a.TravelAllowance
	}

	operatorName := ""
	if a.OperatorName != nil {
		operatorName = *a.OperatorName
	}

	effectiveDec := decimal.NewFromFloat(effective)

	return payroll.Calculation{
		AssignmentID:     a.ID,
		EventID:          ev.ID,
		OperatorID:       a.OperatorID,
		OperatorName:     operatorName,
		GrossHours:       gross,
		NetHours:         net,
		EffectiveHours:   effective,
		HourlyRateCost:   rateCost,
		HourlyRateSell:   rateSell,
		Compensation:     effectiveDec.Mul(rateCost).Round(2),
		MealAllowance:    meal,
		TravelAllowance:  travel,
		TotalRevenue:     effectiveDec.Mul(rateSell).Round(2),
		AttendanceStatus: a.AttendanceStatus,
	}
}

// Summarize folds calculations into totals. Only payable attendance
// statuses (present, late, completed) contribute; absent and unset
// entries are counted as excluded. The fold is commutative, so input
// order never changes the result.
func Summarize(calcs []payroll.Calculation) payroll.Summary {
	s := payroll.Summary{
		TotalCompensation: decimal.Zero,
		TotalAllowances:   decimal.Zero,
		TotalRevenue:      decimal.Zero,
	}

	for _, c := range calcs {
		if !c.AttendanceStatus.Payable() {
			s.ExcludedCount++
			continue
		}
		s.PayableCount++
		s.TotalGrossHours += c.GrossHours
		s.TotalEffectiveHours += c.EffectiveHours
		s.TotalCompensation = s.TotalCompensation.Add(c.Compensation)
		s.TotalAllowances = s.TotalAllowances.Add(c.MealAllowance).Add(c.TravelAllowance)
		s.TotalRevenue = s.TotalRevenue.Add(c.TotalRevenue)
	}

	s.TotalGrossHours = round2(s.TotalGrossHours)
	s.TotalEffectiveHours = round2(s.TotalEffectiveHours)
	return s
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
