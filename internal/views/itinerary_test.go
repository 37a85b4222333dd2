package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journeys/internal/models/db_models"
	"journeys/pkg/utils"
)

func TestGroupItemsByDatePreservesOrder(t *testing.T) {
	items := []db_models.ItineraryItem{
		{ID: "item0", Date: "A"},
		{ID: "item1", Date: "B"},
		{ID: "item2", Date: "A"},
	}
	groups := GroupItemsByDate(items)

	require.Len(t, groups, 2)
	assert.Equal(t, "A", groups[0].Date)
	assert.Equal(t, 1, groups[0].DayNumber)
	assert.Equal(t, []string{"item0", "item2"}, []string{groups[0].Items[0].ID, groups[0].Items[1].ID})
	assert.Equal(t, "B", groups[1].Date)
	assert.Equal(t, 2, groups[1].DayNumber)
	assert.Equal(t, "item1", groups[1].Items[0].ID)
}

func TestGroupItemsByDateDoesNotSort(t *testing.T) {
	items := []db_models.ItineraryItem{
		{ID: "late", Date: "2024-06-17"},
		{ID: "early", Date: "2024-06-15"},
	}
	groups := GroupItemsByDate(items)
	require.Len(t, groups, 2)
	assert.Equal(t, "2024-06-17", groups[0].Date)
}

func TestGroupItemsByDateEmpty(t *testing.T) {
	groups := GroupItemsByDate(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestDayCountFormulas(t *testing.T) {
	inclusive, err := InclusiveDayCount("2024-06-15", "2024-06-22")
	require.NoError(t, err)
	assert.Equal(t, 8, inclusive)

	elapsed, err := ElapsedDayCount("2024-06-15", "2024-06-22")
	require.NoError(t, err)
	assert.Equal(t, 7, elapsed)
}

func TestDayCountSingleDay(t *testing.T) {
	inclusive, err := InclusiveDayCount("2024-06-15", "2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, 1, inclusive)

	elapsed, err := ElapsedDayCount("2024-06-15", "2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, 0, elapsed)
}

func TestDayCountRoundsPartialDaysUp(t *testing.T) {
	elapsed, err := ElapsedDayCount("2024-06-15T00:00:00Z", "2024-06-16T06:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2, elapsed)
}

func TestDayCountRejectsBadInput(t *testing.T) {
	_, err := InclusiveDayCount("nope", "2024-06-22")
	assert.ErrorIs(t, err, utils.ErrInvalidDate)

	_, err = ElapsedDayCount("2024-06-22", "2024-06-15")
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestFormatDateRangeLabel(t *testing.T) {
	label, err := FormatDateRangeLabel("2024-06-15", "2024-06-22")
	require.NoError(t, err)
	assert.Equal(t, "8 days • Jun 15 - Jun 22", label)
}

func TestCompactDateRange(t *testing.T) {
	same, err := CompactDateRange("2024-06-15", "2024-06-22")
	require.NoError(t, err)
	assert.Equal(t, "15-22", same)

	across, err := CompactDateRange("2024-06-28", "2024-07-03")
	require.NoError(t, err)
	assert.Equal(t, "Jun 28 - Jul 3", across)

	years, err := CompactDateRange("2023-06-28", "2024-06-30")
	require.NoError(t, err)
	assert.Equal(t, "Jun 28 - Jun 30", years)
}

func TestFormatDayCount(t *testing.T) {
	assert.Equal(t, "1 day", FormatDayCount(1))
	assert.Equal(t, "7 days", FormatDayCount(7))
	assert.Equal(t, "0 days", FormatDayCount(0))
}

func TestItemEndTime(t *testing.T) {
	end, err := ItemEndTime(db_models.ItineraryItem{StartTime: "09:30", Duration: 90})
	require.NoError(t, err)
	assert.Equal(t, "11:00", end)

	wrapped, err := ItemEndTime(db_models.ItineraryItem{StartTime: "23:00", Duration: 120})
	require.NoError(t, err)
	assert.Equal(t, "01:00", wrapped)

	_, err = ItemEndTime(db_models.ItineraryItem{StartTime: "09:00", Duration: 0})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = ItemEndTime(db_models.ItineraryItem{StartTime: "9am", Duration: 30})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestHeadingForDate(t *testing.T) {
	h, err := HeadingForDate("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, DayHeading{Weekday: "Saturday", ShortDate: "Jun 15"}, h)
}

func TestDateWithinTrip(t *testing.T) {
	tr := db_models.Trip{StartDate: "2024-06-15", EndDate: "2024-06-22"}

	for date, want := range map[string]bool{
		"2024-06-15": true,
		"2024-06-22": true,
		"2024-06-18": true,
		"2024-06-14": false,
		"2024-06-23": false,
	} {
		got, err := DateWithinTrip(date, tr)
		require.NoError(t, err)
		assert.Equal(t, want, got, date)
	}

	_, err := DateWithinTrip("someday", tr)
	assert.ErrorIs(t, err, utils.ErrInvalidDate)
}
