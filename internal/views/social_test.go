package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"journeys/internal/models/db_models"
)

func TestFilterConversations(t *testing.T) {
	me := db_models.User{ID: "me", Name: "Alex Rivera"}
	convs := []db_models.Conversation{
		{ID: "c1", Participants: []db_models.User{me, {ID: "u1", Name: "Sarah Chen"}}},
		{ID: "c2", Participants: []db_models.User{me, {ID: "u2", Name: "Mike Johnson"}, {ID: "u3", Name: "Emma Wilson"}}},
	}

	assert.Len(t, FilterConversations(convs, "me", ""), 2)

	got := FilterConversations(convs, "me", "emma")
	assert.Len(t, got, 1)
	assert.Equal(t, "c2", got[0].ID)

	assert.Empty(t, FilterConversations(convs, "me", "alex"))
	assert.Len(t, OtherParticipants(convs[1], "me"), 2)
}

func TestDescribeActivity(t *testing.T) {
	cases := []struct {
		payload db_models.ActivityPayload
		want    string
	}{
		{db_models.TripCreated{TripName: "Tokyo Adventure"}, "Sarah created a trip to Tokyo Adventure"},
		{db_models.TripCompleted{TripName: "Paris"}, "Sarah completed Paris"},
		{db_models.PlaceSaved{PlaceName: "Senso-ji Temple"}, "Sarah saved Senso-ji Temple"},
		{db_models.FriendAdded{FriendName: "Mike"}, "Sarah became friends with Mike"},
		{nil, "Activity"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DescribeActivity(db_models.Activity{UserName: "Sarah", Payload: tc.payload}))
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "15m ago", RelativeTime(now.Add(-15*time.Minute), now))
	assert.Equal(t, "5h ago", RelativeTime(now.Add(-5*time.Hour), now))
	assert.Equal(t, "3d ago", RelativeTime(now.Add(-72*time.Hour), now))
	assert.Equal(t, "Jun 1", RelativeTime(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), now))
}

func TestConversationTime(t *testing.T) {
	now := time.Date(2024, 6, 20, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "2:05 PM", ConversationTime(time.Date(2024, 6, 20, 14, 5, 0, 0, time.UTC), now))
	assert.Equal(t, "Yesterday", ConversationTime(now.Add(-30*time.Hour), now))
	assert.Equal(t, "Mon", ConversationTime(time.Date(2024, 6, 17, 10, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Jun 2", ConversationTime(time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC), now))
}

func TestBudgetBreakdown(t *testing.T) {
	assert.Nil(t, BudgetBreakdown(db_models.Trip{}))

	total := 3333.0
	b := BudgetBreakdown(db_models.Trip{Budget: &total})
	assert.Equal(t, &Budget{Total: 3333, Accommodation: 1333, FoodAndDining: 999, Activities: 666, Transportation: 333}, b)
}
