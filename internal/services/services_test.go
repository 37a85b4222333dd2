package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"journeys/internal/models/db_models"
	"journeys/internal/models/request_models"
	"journeys/internal/repositories"
	"journeys/internal/seed"
	"journeys/internal/views"
	"journeys/pkg/utils"
)

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

type fixture struct {
	catalog   CatalogServiceInterface
	trips     TripServiceInterface
	itinerary ItineraryServiceInterface
	social    *SocialService
}

func newFixture() fixture {
	db := repositories.NewMockDB(seed.Default(), 0)
	db.Clock = func() time.Time { return testNow }
	logger := zap.NewNop()

	cities := repositories.NewCityRepository(db)
	places := repositories.NewPlaceRepository(db)
	trips := repositories.NewTripRepository(db)
	items := repositories.NewItineraryRepository(db)

	social := NewSocialService(
		repositories.NewUserRepository(db),
		repositories.NewConversationRepository(db),
		repositories.NewActivityRepository(db),
		seed.CurrentUserID,
		logger,
	).(*SocialService)
	social.now = func() time.Time { return testNow }

	return fixture{
		catalog:   NewCatalogService(cities, places, views.DefaultSeasonTable(), logger),
		trips:     NewTripService(trips, items, logger),
		itinerary: NewItineraryService(trips, items, places, logger),
		social:    social,
	}
}

func ptr[T any](v T) *T { return &v }

func TestListCitiesBySeason(t *testing.T) {
	f := newFixture()
	resp, err := f.catalog.ListCities(context.Background(), request_models.CitySearchRequest{Season: ptr(2)})
	require.NoError(t, err)

	var ids []string
	for _, c := range resp.Cities {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{"barcelona", "lisbon", "bangkok"}, ids)
	require.NotNil(t, resp.Season)
	assert.Equal(t, "Summer Vibes", resp.Season.Label)
	assert.Len(t, resp.Seasons, 4)
}

func TestListCitiesByTag(t *testing.T) {
	f := newFixture()
	resp, err := f.catalog.ListCities(context.Background(), request_models.CitySearchRequest{Query: "beach"})
	require.NoError(t, err)
	require.Len(t, resp.Cities, 1)
	assert.Equal(t, "barcelona", resp.Cities[0].ID)
	assert.Nil(t, resp.Season)
}

func TestListCitiesBadSeason(t *testing.T) {
	f := newFixture()
	_, err := f.catalog.ListCities(context.Background(), request_models.CitySearchRequest{Season: ptr(7)})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCityDetail(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	detail, err := f.catalog.GetCityDetail(ctx, "tokyo")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", detail.City.Name)
	assert.Len(t, detail.Places, 7)
	for _, p := range detail.Places {
		assert.Equal(t, "tokyo", p.CityID)
	}

	_, err = f.catalog.GetCityDetail(ctx, "atlantis")
	assert.ErrorIs(t, err, utils.ErrCityNotFound)
}

func TestGetPlaceNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.catalog.GetPlace(context.Background(), "nowhere")
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)
}

func TestMapPlaces(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	all, err := f.catalog.MapPlaces(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 20)

	cafes, err := f.catalog.MapPlaces(ctx, []db_models.Category{db_models.CategoryCafe})
	require.NoError(t, err)
	assert.Len(t, cafes, 2)
}

func TestListTrips(t *testing.T) {
	f := newFixture()
	resp, err := f.trips.ListTrips(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, views.TripFilterAll, resp.Filter)
	assert.Equal(t, views.TripTabCounts{All: 6, Upcoming: 3, Past: 2, Shared: 4}, resp.Tabs)

	var labels []string
	for _, g := range resp.Groups {
		labels = append(labels, g.Label)
	}
	assert.Equal(t, []string{"March 2026", "June 2026", "October 2026", "December 2026", "January 2027", "February 2027"}, labels)

	tokyo := resp.Groups[3].Trips[0]
	assert.Equal(t, "trip-1", tokyo.ID)
	assert.Equal(t, 7, tokyo.DayCount)
	assert.Equal(t, "15-22", tokyo.DateRange)
	assert.True(t, tokyo.IsShared)
	assert.Equal(t, 3, tokyo.TravelerCount)
}

func TestListTripsPastKeepsAllTabCounts(t *testing.T) {
	f := newFixture()
	resp, err := f.trips.ListTrips(context.Background(), "past")
	require.NoError(t, err)

	assert.Equal(t, 6, resp.Tabs.All)
	require.Len(t, resp.Groups, 2)
	assert.Equal(t, "trip-5", resp.Groups[0].Trips[0].ID)
	assert.Equal(t, "trip-3", resp.Groups[1].Trips[0].ID)
}

func TestListTripsBadFilter(t *testing.T) {
	f := newFixture()
	_, err := f.trips.ListTrips(context.Background(), "archived")
	assert.ErrorIs(t, err, utils.ErrInvalidFilter)
}

func TestTripDetail(t *testing.T) {
	f := newFixture()
	detail, err := f.trips.GetTripDetail(context.Background(), "trip-1")
	require.NoError(t, err)

	assert.Equal(t, "7 days", detail.Duration)
	assert.Equal(t, "December 15, 2026", detail.StartDate)
	assert.Equal(t, "December 22, 2026", detail.EndDate)
	assert.Equal(t, 6, detail.ActivityCount)
	require.NotNil(t, detail.Budget)
	assert.Equal(t, 1800.0, detail.Budget.Accommodation)
	assert.Equal(t, 450.0, detail.Budget.Transportation)

	noBudget, err := f.trips.GetTripDetail(context.Background(), "trip-4")
	require.NoError(t, err)
	assert.Nil(t, noBudget.Budget)

	_, err = f.trips.GetTripDetail(context.Background(), "trip-404")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestCreateTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.trips.CreateTrip(ctx, request_models.CreateTripRequest{
		Name: "Kyoto Spring", Destination: "Kyoto", StartDate: "2027-04-01", EndDate: "2027-04-05",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.TripStatusPlanning, created.Status)

	list, err := f.trips.ListTrips(ctx, "upcoming")
	require.NoError(t, err)
	assert.Equal(t, 7, list.Tabs.All)
	last := list.Groups[len(list.Groups)-1]
	assert.Equal(t, "April 2027", last.Label)
}

func TestCreateTripValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	base := request_models.CreateTripRequest{Name: "X", Destination: "Y", StartDate: "2027-04-05", EndDate: "2027-04-01"}

	_, err := f.trips.CreateTrip(ctx, base)
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)

	bad := base
	bad.StartDate = "April 1st"
	_, err = f.trips.CreateTrip(ctx, bad)
	assert.ErrorIs(t, err, utils.ErrInvalidDate)

	bad = base
	bad.EndDate = "2027-04-10"
	bad.Status = "cancelled"
	_, err = f.trips.CreateTrip(ctx, bad)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUpdateTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	updated, err := f.trips.UpdateTrip(ctx, "trip-2", request_models.UpdateTripRequest{
		Status: ptr(db_models.TripStatusUpcoming),
		Budget: ptr(2000.0),
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.TripStatusUpcoming, updated.Status)
	assert.Equal(t, 2000.0, *updated.Budget)
	assert.Equal(t, testNow, updated.UpdatedAt)

	_, err = f.trips.UpdateTrip(ctx, "trip-404", request_models.UpdateTripRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	_, err = f.trips.UpdateTrip(ctx, "trip-2", request_models.UpdateTripRequest{EndDate: ptr("2026-01-01")})
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)

	detail, err := f.trips.GetTripDetail(ctx, "trip-2")
	require.NoError(t, err)
	assert.Equal(t, "2027-01-15", detail.Trip.EndDate)
}

func TestTimeline(t *testing.T) {
	f := newFixture()
	tl, err := f.itinerary.GetTimeline(context.Background(), "trip-1")
	require.NoError(t, err)

	assert.Equal(t, "8 days • Dec 15 - Dec 22", tl.DateRangeLabel)
	assert.Equal(t, 6, tl.ItemCount)
	require.Len(t, tl.Days, 3)

	day1 := tl.Days[0]
	assert.Equal(t, 1, day1.DayNumber)
	assert.Equal(t, "Tuesday", day1.Weekday)
	assert.Equal(t, "Dec 15", day1.ShortDate)
	require.Len(t, day1.Entries, 3)
	assert.Equal(t, "09:30", day1.Entries[0].EndTime)
	assert.Equal(t, "23:30", day1.Entries[2].EndTime)
	require.NotNil(t, day1.Entries[1].Place)
	assert.Equal(t, "Senso-ji Temple", day1.Entries[1].Place.Name)

	assert.Equal(t, 3, tl.Days[2].DayNumber)
}

func TestTimelineEmptyTrip(t *testing.T) {
	f := newFixture()
	tl, err := f.itinerary.GetTimeline(context.Background(), "trip-2")
	require.NoError(t, err)
	assert.Empty(t, tl.Days)
	assert.NotNil(t, tl.Days)
	assert.Equal(t, "6 days • Jan 10 - Jan 15", tl.DateRangeLabel)
}

func TestAddItem(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req := request_models.AddItineraryItemRequest{PlaceID: "shinjuku-station", Date: "2026-12-22", StartTime: "07:00", Duration: 30}

	added, err := f.itinerary.AddItem(ctx, "trip-1", req)
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	tl, err := f.itinerary.GetTimeline(ctx, "trip-1")
	require.NoError(t, err)
	assert.Equal(t, 7, tl.ItemCount)
	assert.Equal(t, "2026-12-22", tl.Days[len(tl.Days)-1].Date)
}

func TestAddItemValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ok := request_models.AddItineraryItemRequest{PlaceID: "senso-ji", Date: "2026-12-16", StartTime: "07:00", Duration: 30}

	_, err := f.itinerary.AddItem(ctx, "trip-404", ok)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	outside := ok
	outside.Date = "2026-12-23"
	_, err = f.itinerary.AddItem(ctx, "trip-1", outside)
	assert.ErrorIs(t, err, utils.ErrItemOutsideTrip)

	unknown := ok
	unknown.PlaceID = "nowhere"
	_, err = f.itinerary.AddItem(ctx, "trip-1", unknown)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	badClock := ok
	badClock.StartTime = "7am"
	_, err = f.itinerary.AddItem(ctx, "trip-1", badClock)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUpdateAndDeleteItem(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	updated, err := f.itinerary.UpdateItem(ctx, "item-2", request_models.UpdateItineraryItemRequest{Duration: ptr(60), Notes: ptr("Go early")})
	require.NoError(t, err)
	assert.Equal(t, 60, updated.Duration)
	assert.Equal(t, "senso-ji", updated.PlaceID)

	_, err = f.itinerary.UpdateItem(ctx, "item-2", request_models.UpdateItineraryItemRequest{Date: ptr("2027-01-01")})
	assert.ErrorIs(t, err, utils.ErrItemOutsideTrip)

	_, err = f.itinerary.UpdateItem(ctx, "item-404", request_models.UpdateItineraryItemRequest{Duration: ptr(10)})
	assert.ErrorIs(t, err, utils.ErrItineraryItemNotFound)

	require.NoError(t, f.itinerary.DeleteItem(ctx, "item-2"))
	require.NoError(t, f.itinerary.DeleteItem(ctx, "item-2"))

	tl, err := f.itinerary.GetTimeline(ctx, "trip-1")
	require.NoError(t, err)
	assert.Equal(t, 5, tl.ItemCount)
}

func TestListConversations(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	all, err := f.social.ListConversations(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, c := range all {
		for _, p := range c.Participants {
			assert.NotEqual(t, seed.CurrentUserID, p.ID)
		}
	}
	assert.Equal(t, "8:05 AM", all[0].LastMessageTime)
	assert.True(t, all[1].IsGroup)
	assert.Equal(t, "Mon", all[1].LastMessageTime)

	sarah, err := f.social.ListConversations(ctx, "SARAH")
	require.NoError(t, err)
	require.Len(t, sarah, 1)
	assert.Equal(t, "conv-1", sarah[0].ID)

	self, err := f.social.ListConversations(ctx, "Alex")
	require.NoError(t, err)
	assert.Empty(t, self)
}

func TestGetMessages(t *testing.T) {
	f := newFixture()
	msgs, err := f.social.GetMessages(context.Background(), "conv-2")
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	_, err = f.social.GetMessages(context.Background(), "conv-404")
	assert.ErrorIs(t, err, utils.ErrConversationNotFound)
}

func TestActivityFeed(t *testing.T) {
	f := newFixture()
	feed, err := f.social.ActivityFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 5)

	assert.Equal(t, "Sarah Chen saved Senso-ji Temple", feed[0].Description)
	assert.Equal(t, "4h ago", feed[0].RelativeTime)
	assert.Equal(t, "Jun 9", feed[4].RelativeTime)
}

func TestGetUser(t *testing.T) {
	f := newFixture()
	u, err := f.social.GetUser(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", u.Name)

	_, err = f.social.GetUser(context.Background(), "user-99")
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}
