package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdeck/staffdeck-backend-go/internal/domain/assignment"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/event"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/payroll"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Mon 2024-03-04 09:00 to Fri 2024-03-08 18:00, used across scenarios.
func weekEvent() event.Event {
	return event.Event{
		ID:      "ev-1",
		StartAt: date(2024, time.March, 4, 9, 0),
		EndAt:   date(2024, time.March, 8, 18, 0),
		Status:  event.StatusConfirmed,
	}
}

func TestInclusiveDayCount(t *testing.T) {
	start := date(2024, time.March, 4, 9, 0)

	assert.Equal(t, 5, InclusiveDayCount(start, date(2024, time.March, 8, 18, 0)))
	assert.Equal(t, 1, InclusiveDayCount(start, start), "same-day range counts one day")
	assert.Equal(t, 1, InclusiveDayCount(start, date(2024, time.March, 4, 23, 59)))

	// Inverted ranges floor at 1 instead of failing.
	assert.Equal(t, 1, InclusiveDayCount(date(2024, time.March, 8, 0, 0), start))

	// Time of day is irrelevant, only calendar dates count.
	assert.Equal(t, 2, InclusiveDayCount(date(2024, time.March, 4, 23, 0), date(2024, time.March, 5, 1, 0)))
}

func TestMatchingDayCount(t *testing.T) {
	// 2024-01-01 is a Monday, 2024-01-07 a Sunday.
	start := date(2024, time.January, 1, 0, 0)
	end := date(2024, time.January, 7, 0, 0)

	assert.Equal(t, 5, MatchingDayCount(event.DayWeekdays, start, end))
	assert.Equal(t, 2, MatchingDayCount(event.DayWeekend, start, end))
	assert.Equal(t, 7, MatchingDayCount(event.DayAll, start, end))
	assert.Equal(t, 1, MatchingDayCount(event.DayMonday, start, end))
	assert.Equal(t, 1, MatchingDayCount(event.DaySunday, start, end))

	// Two full weeks double every count.
	end2 := date(2024, time.January, 14, 0, 0)
	assert.Equal(t, 10, MatchingDayCount(event.DayWeekdays, start, end2))
	assert.Equal(t, 2, MatchingDayCount(event.DayThursday, start, end2))

	// Unknown tokens match nothing.
	assert.Equal(t, 0, MatchingDayCount(event.DayToken("fortnightly"), start, end))
	assert.Equal(t, 0, MatchingDayCount(event.DayToken(""), start, end))

	// Same-day interval.
	assert.Equal(t, 1, MatchingDayCount(event.DayMonday, start, start))
	assert.Equal(t, 0, MatchingDayCount(event.DayTuesday, start, start))
}

func TestBreakDurationHours(t *testing.T) {
	assert.Equal(t, 1.0, BreakDurationHours("13:00", "14:00"))
	assert.Equal(t, 0.5, BreakDurationHours("12:15", "12:45"))
	assert.Equal(t, 0.0, BreakDurationHours("14:00", "14:00"))

	// A window that runs backwards within the day (which is also how a
	// midnight-crossing break presents) collapses to zero.
	assert.Equal(t, 0.0, BreakDurationHours("14:00", "13:00"))
	assert.Equal(t, 0.0, BreakDurationHours("23:30", "00:30"))

	// Malformed clocks degrade to zero rather than failing.
	assert.Equal(t, 0.0, BreakDurationHours("lunch", "14:00"))
	assert.Equal(t, 0.0, BreakDurationHours("13:00", ""))
	assert.Equal(t, 0.0, BreakDurationHours("25:00", "26:00"))
}

func TestCombineDateAndTime(t *testing.T) {
	d := date(2024, time.March, 4, 17, 45)

	combined := CombineDateAndTime(d, "09:30")
	assert.Equal(t, date(2024, time.March, 4, 9, 30), combined)
	assert.Equal(t, 0, combined.Second())

	// Malformed clock falls back to midnight.
	assert.Equal(t, date(2024, time.March, 4, 0, 0), CombineDateAndTime(d, "nope"))
}

func TestGrossHours_SimpleMode(t *testing.T) {
	// Scenario: Mon 09:00 .. Fri 18:00 without templates is worked
	// continuously: 4 full days plus 9 hours.
	assert.Equal(t, 105.0, GrossHours(weekEvent()))

	// Single-day event.
	ev := event.Event{
		StartAt: date(2024, time.March, 4, 9, 0),
		EndAt:   date(2024, time.March, 4, 17, 30),
	}
	assert.Equal(t, 8.5, GrossHours(ev))

	// Inverted range floors at zero.
	ev = event.Event{
		StartAt: date(2024, time.March, 4, 9, 0),
		EndAt:   date(2024, time.March, 3, 9, 0),
	}
	assert.Equal(t, 0.0, GrossHours(ev))
}

func TestGrossHours_SimpleModeExactMinutes(t *testing.T) {
	// Templateless spans report the exact instant difference. 09:00 to
	// 18:10 is 9h10m = 9.1666..., never the 9.17 a 2-decimal rounding
	// would produce.
	ev := event.Event{
		StartAt: date(2024, time.March, 4, 9, 0),
		EndAt:   date(2024, time.March, 4, 18, 10),
	}

	got := GrossHours(ev)
	assert.Equal(t, 9.0+10.0/60.0, got)
	assert.NotEqual(t, 9.17, got)
}

func TestGrossHours_TemplateMode(t *testing.T) {
	ev := weekEvent()
	ev.ShiftTemplates = []event.ShiftTemplate{
		{DayToken: event.DayWeekdays, StartTime: "09:00", EndTime: "18:00"},
	}

	// 9h x 5 weekdays, instead of the raw 105h span.
	assert.Equal(t, 45.0, GrossHours(ev))
}

func TestGrossHours_OvernightShift(t *testing.T) {
	ev := event.Event{
		StartAt: date(2024, time.March, 4, 0, 0),
		EndAt:   date(2024, time.March, 4, 23, 59),
		ShiftTemplates: []event.ShiftTemplate{
			{DayToken: event.DayMonday, StartTime: "22:00", EndTime: "06:00"},
		},
	}

	assert.Equal(t, 8.0, GrossHours(ev))
}

func TestGrossHours_MultipleTemplatesSum(t *testing.T) {
	ev := weekEvent()
	ev.ShiftTemplates = []event.ShiftTemplate{
		{DayToken: event.DayWeekdays, StartTime: "09:00", EndTime: "13:00"},
		{DayToken: event.DayWeekdays, StartTime: "14:00", EndTime: "18:00"},
		{DayToken: event.DayMonday, StartTime: "18:00", EndTime: "20:30"},
	}

	// 4h x 5 + 4h x 5 + 2.5h x 1. Overlap is not deduplicated.
	assert.Equal(t, 42.5, GrossHours(ev))
}

func TestGrossHours_BadTemplateDegrades(t *testing.T) {
	ev := weekEvent()
	ev.ShiftTemplates = []event.ShiftTemplate{
		{DayToken: event.DayWeekdays, StartTime: "09:00", EndTime: "18:00"},
		{DayToken: event.DayToken("someday"), StartTime: "09:00", EndTime: "18:00"},
		{DayToken: event.DayWeekend, StartTime: "bad", EndTime: "18:00"},
	}

	// The two broken templates contribute zero, the good one survives.
	assert.Equal(t, 45.0, GrossHours(ev))
}

func TestNetHours(t *testing.T) {
	// Scenario: 45h gross, 1h daily break over a 5-day event.
	assert.Equal(t, 40.0, NetHours(45.0, 1.0, 5))

	// Break exceeding gross floors at zero.
	assert.Equal(t, 0.0, NetHours(2.0, 1.0, 5))
	assert.Equal(t, 0.0, NetHours(0, 8, 3))

	// No break, gross passes through.
	assert.Equal(t, 45.0, NetHours(45.0, 0, 5))

	// Rounding to two decimals.
	assert.Equal(t, 7.17, NetHours(7.92, 0.25, 3))
}

func TestEngineCalculate_Defaults(t *testing.T) {
	eng := NewEngine(DefaultEngineConfig())

	ev := weekEvent()
	ev.BreakStart = strPtr("13:00")
	ev.BreakEnd = strPtr("14:00")

	a := assignment.Assignment{
		ID:               "as-1",
		EventID:          ev.ID,
		OperatorID:       "op-1",
		AttendanceStatus: assignment.AttendancePresent,
	}

	c := eng.Calculate(ev, a)

	assert.Equal(t, 105.0, c.GrossHours)
	assert.Equal(t, 100.0, c.NetHours, "1h break deducted per each of the 5 days")
	assert.Equal(t, 100.0, c.EffectiveHours)
	assert.Equal(t, "15", c.HourlyRateCost.String())
	assert.Equal(t, "25.01", c.HourlyRateSell.String(), "sell rate defaults to cost x margin")
	assert.Equal(t, "1500", c.Compensation.String())
	assert.Equal(t, "10", c.MealAllowance.String(), "gross over threshold grants the meal allowance")
	assert.Equal(t, "0", c.TravelAllowance.String())
	assert.Equal(t, "2501", c.TotalRevenue.String())
}

func TestEngineCalculate_ScenarioChain(t *testing.T) {
	// Weekday 09:00-18:00 templates, 13:00-14:00 daily break, default
	// cost rate: gross 45, net 40, compensation 600.
	eng := NewEngine(DefaultEngineConfig())

	ev := weekEvent()
	ev.BreakStart = strPtr("13:00")
	ev.BreakEnd = strPtr("14:00")
	ev.ShiftTemplates = []event.ShiftTemplate{
		{DayToken: event.DayWeekdays, StartTime: "09:00", EndTime: "18:00"},
	}

	a := assignment.Assignment{
		ID:               "as-1",
		OperatorID:       "op-1",
		HourlyRateCost:   decPtr("15"),
		AttendanceStatus: assignment.AttendancePresent,
	}

	c := eng.Calculate(ev, a)

	assert.Equal(t, 45.0, c.GrossHours)
	assert.Equal(t, 40.0, c.NetHours)
	assert.Equal(t, 40.0, c.EffectiveHours)
	assert.Equal(t, "600", c.Compensation.String())
	assert.Equal(t, "10", c.MealAllowance.String())
}

func TestEngineCalculate_Overrides(t *testing.T) {
	eng := NewEngine(DefaultEngineConfig())
	ev := weekEvent()

	a := assignment.Assignment{
		ID:                 "as-1",
		OperatorID:         "op-1",
		GrossHoursOverride: floatPtr(50),
		NetHoursOverride:   floatPtr(44),
		ActualHours:        floatPtr(41.5),
		HourlyRateCost:     decPtr("20"),
		HourlyRateSell:     decPtr("35"),
		MealAllowance:      decPtr("12.5"),
		TravelAllowance:    decPtr("25"),
		AttendanceStatus:   assignment.AttendanceLate,
	}

	c := eng.Calculate(ev, a)

	assert.Equal(t, 50.0, c.GrossHours, "stored gross override wins over recomputation")
	assert.Equal(t, 44.0, c.NetHours, "net override wins over break deduction")
	assert.Equal(t, 41.5, c.EffectiveHours, "actual hours win over net hours")
	assert.Equal(t, "830", c.Compensation.String())
	assert.Equal(t, "1452.5", c.TotalRevenue.String())
	assert.Equal(t, "12.5", c.MealAllowance.String())
	assert.Equal(t, "25", c.TravelAllowance.String())
}

func TestEngineCalculate_MealAllowanceThreshold(t *testing.T) {
	eng := NewEngine(DefaultEngineConfig())

	short := event.Event{
		StartAt: date(2024, time.March, 4, 9, 0),
		EndAt:   date(2024, time.March, 4, 13, 0),
	}
	a := assignment.Assignment{AttendanceStatus: assignment.AttendancePresent}

	c := eng.Calculate(short, a)
	assert.Equal(t, 4.0, c.GrossHours)
	assert.Equal(t, "0", c.MealAllowance.String(), "4h stays under the 5h threshold")

	// Exactly 5h is not over the threshold.
	short.EndAt = date(2024, time.March, 4, 14, 0)
	c = eng.Calculate(short, a)
	assert.Equal(t, "0", c.MealAllowance.String())

	short.EndAt = date(2024, time.March, 4, 14, 30)
	c = eng.Calculate(short, a)
	assert.Equal(t, "10", c.MealAllowance.String())
}

func TestEngineCalculate_ConfigOverride(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.DefaultHourlyRateCost = decimal.NewFromInt(22)
	cfg.SellRateMargin = decimal.NewFromInt(2)
	cfg.TravelAllowance = decimal.NewFromInt(7)
	eng := NewEngine(cfg)

	ev := event.Event{
		StartAt: date(2024, time.March, 4, 9, 0),
		EndAt:   date(2024, time.March, 4, 19, 0),
	}
	c := eng.Calculate(ev, assignment.Assignment{AttendanceStatus: assignment.AttendancePresent})

	assert.Equal(t, "22", c.HourlyRateCost.String())
	assert.Equal(t, "44", c.HourlyRateSell.String())
	assert.Equal(t, "220", c.Compensation.String())
	assert.Equal(t, "7", c.TravelAllowance.String())
}

func TestSummarize_AttendanceFilter(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	calcs := []payroll.Calculation{
		{Compensation: hundred, TotalRevenue: hundred, GrossHours: 10, EffectiveHours: 9, MealAllowance: decimal.NewFromInt(10), TravelAllowance: decimal.Zero, AttendanceStatus: assignment.AttendanceAbsent},
		{Compensation: hundred, TotalRevenue: hundred, GrossHours: 10, EffectiveHours: 9, MealAllowance: decimal.Zero, TravelAllowance: decimal.Zero, AttendanceStatus: assignment.AttendanceUnset},
	}

	s := Summarize(calcs)

	assert.Equal(t, 0, s.PayableCount)
	assert.Equal(t, 2, s.ExcludedCount)
	assert.Equal(t, "0", s.TotalCompensation.String(), "absent and unset entries never reach the totals")
	assert.Equal(t, 0.0, s.TotalGrossHours)
}

func TestSummarize_Totals(t *testing.T) {
	calcs := []payroll.Calculation{
		{
			GrossHours:       45,
			EffectiveHours:   40,
			Compensation:     decimal.NewFromInt(600),
			MealAllowance:    decimal.NewFromInt(10),
			TravelAllowance:  decimal.NewFromInt(5),
			TotalRevenue:     decimal.NewFromInt(1000),
			AttendanceStatus: assignment.AttendancePresent,
		},
		{
			GrossHours:       45,
			EffectiveHours:   44,
			Compensation:     decimal.NewFromInt(660),
			MealAllowance:    decimal.NewFromInt(10),
			TravelAllowance:  decimal.Zero,
			TotalRevenue:     decimal.NewFromInt(1100),
			AttendanceStatus: assignment.AttendanceLate,
		},
		{
			GrossHours:       45,
			EffectiveHours:   45,
			Compensation:     decimal.NewFromInt(675),
			MealAllowance:    decimal.Zero,
			TravelAllowance:  decimal.Zero,
			TotalRevenue:     decimal.NewFromInt(1125),
			AttendanceStatus: assignment.AttendanceAbsent,
		},
		{
			GrossHours:       45,
			EffectiveHours:   45,
			Compensation:     decimal.NewFromInt(675),
			MealAllowance:    decimal.NewFromInt(10),
			TravelAllowance:  decimal.NewFromInt(5),
			TotalRevenue:     decimal.NewFromInt(1125),
			AttendanceStatus: assignment.AttendanceCompleted,
		},
	}

	s := Summarize(calcs)

	require.Equal(t, 3, s.PayableCount)
	require.Equal(t, 1, s.ExcludedCount)
	assert.Equal(t, 135.0, s.TotalGrossHours)
	assert.Equal(t, 129.0, s.TotalEffectiveHours)
	assert.Equal(t, "1935", s.TotalCompensation.String())
	assert.Equal(t, "40", s.TotalAllowances.String())
	assert.Equal(t, "3225", s.TotalRevenue.String())
}

func TestSummarize_OrderIndependent(t *testing.T) {
	calcs := []payroll.Calculation{
		{GrossHours: 8, EffectiveHours: 7, Compensation: decimal.NewFromInt(105), MealAllowance: decimal.NewFromInt(10), TravelAllowance: decimal.Zero, TotalRevenue: decimal.NewFromInt(175), AttendanceStatus: assignment.AttendancePresent},
		{GrossHours: 12, EffectiveHours: 11, Compensation: decimal.NewFromInt(165), MealAllowance: decimal.Zero, TravelAllowance: decimal.NewFromInt(5), TotalRevenue: decimal.NewFromInt(275), AttendanceStatus: assignment.AttendanceLate},
		{GrossHours: 6, EffectiveHours: 6, Compensation: decimal.NewFromInt(90), MealAllowance: decimal.NewFromInt(10), TravelAllowance: decimal.Zero, TotalRevenue: decimal.NewFromInt(150), AttendanceStatus: assignment.AttendanceAbsent},
	}

	reversed := make([]payroll.Calculation, len(calcs))
	for i, c := range calcs {
		reversed[len(calcs)-1-i] = c
	}

	a := Summarize(calcs)
	b := Summarize(reversed)

	assert.Equal(t, a.TotalGrossHours, b.TotalGrossHours)
	assert.Equal(t, a.TotalEffectiveHours, b.TotalEffectiveHours)
	assert.True(t, a.TotalCompensation.Equal(b.TotalCompensation))
	assert.True(t, a.TotalAllowances.Equal(b.TotalAllowances))
	assert.True(t, a.TotalRevenue.Equal(b.TotalRevenue))
	assert.Equal(t, a.PayableCount, b.PayableCount)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.PayableCount)
	assert.Equal(t, 0, s.ExcludedCount)
	assert.Equal(t, "0", s.TotalCompensation.String())
	assert.Equal(t, 0.0, s.TotalGrossHours)
}
