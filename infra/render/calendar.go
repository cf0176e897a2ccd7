package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hfrick/leaveplan/core/model"
)

// DayKind classifies a horizon day for display. The order of the constants
// is the display priority: a public holiday outranks a weekend, which
// outranks a planned day off. This total order exists only for rendering;
// the optimizer never consults it.
type DayKind int

const (
	DayRegular DayKind = iota
	DayOff
	DayWeekend
	DayPublicHoliday
)

func (k DayKind) String() string {
	switch k {
	case DayOff:
		return "day_off"
	case DayWeekend:
		return "weekend"
	case DayPublicHoliday:
		return "public_holiday"
	default:
		return "regular"
	}
}

// Classify tags every day of the horizon by membership in the plan's days,
// the weekend set and the holiday set, keeping the highest-priority kind.
func Classify(h model.Horizon, plan *model.Plan, holidayDates []time.Time) map[time.Time]DayKind {
	holidays := make(map[time.Time]struct{}, len(holidayDates))
	for _, d := range holidayDates {
		holidays[model.Midnight(d)] = struct{}{}
	}
	kinds := make(map[time.Time]DayKind, h.Length())
	for _, day := range h.Days() {
		kind := DayRegular
		if plan != nil && plan.Covers(day) {
			kind = DayOff
		}
		if model.IsWeekend(day) {
			kind = DayWeekend
		}
		if _, ok := holidays[day]; ok {
			kind = DayPublicHoliday
		}
		kinds[day] = kind
	}
	return kinds
}

var (
	monthStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headerStyle  = lipgloss.NewStyle().Faint(true)
	regularStyle = lipgloss.NewStyle()
	dayOffStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true)
	weekendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	holidayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func styleFor(k DayKind) lipgloss.Style {
	switch k {
	case DayOff:
		return dayOffStyle
	case DayWeekend:
		return weekendStyle
	case DayPublicHoliday:
		return holidayStyle
	default:
		return regularStyle
	}
}

// Calendar renders the horizon as month grids with one styled cell per day.
func Calendar(h model.Horizon, kinds map[time.Time]DayKind) string {
	var b strings.Builder
	month := model.Date(h.Start.Year(), h.Start.Month(), 1)
	for !month.After(h.End) {
		renderMonth(&b, h, month, kinds)
		month = month.AddDate(0, 1, 0)
	}
	b.WriteString("\n")
	b.WriteString(legend())
	return b.String()
}

func renderMonth(b *strings.Builder, h model.Horizon, month time.Time, kinds map[time.Time]DayKind) {
	b.WriteString(monthStyle.Render(month.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	// Leading blanks up to the month's first weekday, Monday-based.
	offset := (int(month.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("   ", offset))
	col := offset

	for day := month; day.Month() == month.Month(); day = day.AddDate(0, 0, 1) {
		cell := fmt.Sprintf("%2d", day.Day())
		if h.Contains(day) {
			cell = styleFor(kinds[day]).Render(cell)
		} else {
			cell = headerStyle.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func legend() string {
	parts := []string{
		dayOffStyle.Render("day off"),
		weekendStyle.Render("weekend"),
		holidayStyle.Render("public holiday"),
	}
	return strings.Join(parts, "  ") + "\n"
}
