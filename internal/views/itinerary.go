package views

import (
	"fmt"
	"math"
	"time"

	"journeys/internal/models/db_models"
	"journeys/pkg/utils"
)

type DayGroup struct {
	Date      string                    `json:"date"`
	DayNumber int                       `json:"day_number"`
	Items     []db_models.ItineraryItem `json:"items"`
}

// GroupItemsByDate buckets items by their date string in first-seen order.
// It does not sort: the data source already returns a chronological list.
// DayNumber is the 1-based position of the group.
func GroupItemsByDate(items []db_models.ItineraryItem) []DayGroup {
	groups := make([]DayGroup, 0)
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Date]
		if !ok {
			i = len(groups)
			index[item.Date] = i
			groups = append(groups, DayGroup{Date: item.Date, DayNumber: i + 1})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

func dateSpan(start, end string) (time.Duration, error) {
	s, err := utils.ParseCalendarDate(start)
	if err != nil {
		return 0, err
	}
	e, err := utils.ParseCalendarDate(end)
	if err != nil {
		return 0, err
	}
	d := e.Sub(s)
	if d < 0 {
		return 0, fmt.Errorf("%w: %s to %s", utils.ErrInvalidDateRange, start, end)
	}
	return d, nil
}

// ElapsedDayCount is ceil((end-start) / 1 day). The trip list and the
// trip overview show this number: a Jun 15 to Jun 22 trip is 7 days.
func ElapsedDayCount(start, end string) (int, error) {
	d, err := dateSpan(start, end)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(d.Hours() / 24)), nil
}

// InclusiveDayCount is ceil((end-start) / 1 day) + 1, counting both end
// dates. The itinerary header shows this number: Jun 15 to Jun 22 is 8 days.
func InclusiveDayCount(start, end string) (int, error) {
	n, err := ElapsedDayCount(start, end)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

// FormatDateRangeLabel renders the itinerary header, e.g.
// "8 days • Jun 15 - Jun 22".
func FormatDateRangeLabel(start, end string) (string, error) {
	days, err := InclusiveDayCount(start, end)
	if err != nil {
		return "", err
	}
	s, _ := utils.ParseCalendarDate(start)
	e, _ := utils.ParseCalendarDate(end)
	return fmt.Sprintf("%d days • %s - %s", days, utils.FormatShortDate(s), utils.FormatShortDate(e)), nil
}

// CompactDateRange renders the trip card range: "15-22" inside one month,
// "Jun 28 - Jul 3" across months.
func CompactDateRange(start, end string) (string, error) {
	s, err := utils.ParseCalendarDate(start)
	if err != nil {
		return "", err
	}
	e, err := utils.ParseCalendarDate(end)
	if err != nil {
		return "", err
	}
	if s.Year() == e.Year() && s.Month() == e.Month() {
		return fmt.Sprintf("%d-%d", s.Day(), e.Day()), nil
	}
	return fmt.Sprintf("%s - %s", utils.FormatShortDate(s), utils.FormatShortDate(e)), nil
}

func FormatDayCount(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// ItemEndTime adds the item's duration to its start time. The result wraps
// past midnight.
func ItemEndTime(item db_models.ItineraryItem) (string, error) {
	if item.Duration <= 0 {
		return "", fmt.Errorf("%w: duration must be positive", utils.ErrInvalidInput)
	}
	start, err := utils.ParseClock(item.StartTime)
	if err != nil {
		return "", err
	}
	end := (start + time.Duration(item.Duration)*time.Minute) % (24 * time.Hour)
	return fmt.Sprintf("%02d:%02d", int(end.Hours()), int(end.Minutes())%60), nil
}

type DayHeading struct {
	Weekday   string `json:"weekday"`
	ShortDate string `json:"short_date"`
}

func HeadingForDate(date string) (DayHeading, error) {
	d, err := utils.ParseCalendarDate(date)
	if err != nil {
		return DayHeading{}, err
	}
	return DayHeading{Weekday: utils.FormatWeekday(d), ShortDate: utils.FormatShortDate(d)}, nil
}

// DateWithinTrip reports whether date falls on or between the trip's start
// and end calendar dates.
func DateWithinTrip(date string, trip db_models.Trip) (bool, error) {
	d, err := utils.ParseCalendarDate(date)
	if err != nil {
		return false, err
	}
	s, err := utils.ParseCalendarDate(trip.StartDate)
	if err != nil {
		return false, err
	}
	e, err := utils.ParseCalendarDate(trip.EndDate)
	if err != nil {
		return false, err
	}
	day := utils.CalendarDay(d)
	return !day.Before(utils.CalendarDay(s)) && !day.After(utils.CalendarDay(e)), nil
}
