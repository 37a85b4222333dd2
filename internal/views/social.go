package views

import (
	"fmt"
	"time"

	"journeys/internal/models/db_models"
)

// FilterConversations keeps conversations where some participant other
// than the current user has a name containing query.
func FilterConversations(convs []db_models.Conversation, currentUserID, query string) []db_models.Conversation {
	out := make([]db_models.Conversation, 0, len(convs))
	for _, c := range convs {
		for _, p := range c.Participants {
			if p.ID != currentUserID && containsFold(p.Name, query) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func OtherParticipants(c db_models.Conversation, currentUserID string) []db_models.User {
	out := make([]db_models.User, 0, len(c.Participants))
	for _, p := range c.Participants {
		if p.ID != currentUserID {
			out = append(out, p)
		}
	}
	return out
}

func DescribeActivity(a db_models.Activity) string {
	switch p := a.Payload.(type) {
	case db_models.TripCreated:
		return fmt.Sprintf("%s created a trip to %s", a.UserName, p.TripName)
	case db_models.TripCompleted:
		return fmt.Sprintf("%s completed %s", a.UserName, p.TripName)
	case db_models.TripShared:
		return fmt.Sprintf("%s shared %s", a.UserName, p.TripName)
	case db_models.PlaceSaved:
		return fmt.Sprintf("%s saved %s", a.UserName, p.PlaceName)
	case db_models.FriendAdded:
		return fmt.Sprintf("%s became friends with %s", a.UserName, p.FriendName)
	}
	return "Activity"
}

// RelativeTime renders feed timestamps: "12m ago", "5h ago", "3d ago", then
// "Jan 2" after a week.
func RelativeTime(ts, now time.Time) string {
	diff := now.Sub(ts)
	hours := int(diff / time.Hour)
	days := hours / 24
	switch {
	case hours < 1:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	}
	return ts.Format("Jan 2")
}

// ConversationTime renders the inbox timestamp: clock time today,
// "Yesterday", weekday within a week, then "Jan 2".
func ConversationTime(ts, now time.Time) string {
	days := int(now.Sub(ts) / (24 * time.Hour))
	switch {
	case days <= 0:
		return ts.Format("3:04 PM")
	case days == 1:
		return "Yesterday"
	case days < 7:
		return ts.Format("Mon")
	}
	return ts.Format("Jan 2")
}
