// Package seed holds the canned collections the mock data service serves.
// Every accessor returns a fresh copy.
package seed

import (
	"time"

	"journeys/internal/models/db_models"
)

const CurrentUserID = "user-1"

type Data struct {
	Cities        []db_models.City
	Places        []db_models.Place
	Users         []db_models.User
	Trips         []db_models.Trip
	Itineraries   map[string][]db_models.ItineraryItem
	Conversations []db_models.Conversation
	Messages      []db_models.Message
	Activities    []db_models.Activity
}

func Default() Data {
	return Data{
		Cities:        Cities(),
		Places:        Places(),
		Users:         Users(),
		Trips:         Trips(),
		Itineraries:   Itineraries(),
		Conversations: Conversations(),
		Messages:      Messages(),
		Activities:    Activities(),
	}
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func budget(v float64) *float64 { return &v }

func Cities() []db_models.City {
	return []db_models.City{
		{ID: "tokyo", Name: "Tokyo", Country: "Japan", Description: "Neon streets, quiet shrines and the best food markets on earth.", Tags: []string{"Food", "Culture", "Nightlife"}, ImageURL: "https://images.example.com/cities/tokyo.jpg", Lat: 35.6762, Lng: 139.6503},
		{ID: "paris", Name: "Paris", Country: "France", Description: "Museums, cafes and long walks along the Seine.", Tags: []string{"Art", "Romance", "Cafes"}, ImageURL: "https://images.example.com/cities/paris.jpg", Lat: 48.8566, Lng: 2.3522},
		{ID: "barcelona", Name: "Barcelona", Country: "Spain", Description: "Gaudi, tapas and a beach inside the city.", Tags: []string{"Architecture", "Beach", "Food"}, ImageURL: "https://images.example.com/cities/barcelona.jpg", Lat: 41.3874, Lng: 2.1686},
		{ID: "lisbon", Name: "Lisbon", Country: "Portugal", Description: "Hills, trams and custard tarts.", Tags: []string{"Coastal", "Food", "History"}, ImageURL: "https://images.example.com/cities/lisbon.jpg", Lat: 38.7223, Lng: -9.1393},
		{ID: "istanbul", Name: "Istanbul", Country: "Turkey", Description: "Where two continents meet over tea.", Tags: []string{"History", "Markets", "Culture"}, ImageURL: "https://images.example.com/cities/istanbul.jpg", Lat: 41.0082, Lng: 28.9784},
		{ID: "mexico-city", Name: "Mexico City", Country: "Mexico", Description: "Murals, mezcal and some of the best tacos anywhere.", Tags: []string{"Art", "Food", "Nightlife"}, ImageURL: "https://images.example.com/cities/mexico-city.jpg", Lat: 19.4326, Lng: -99.1332},
		{ID: "bangkok", Name: "Bangkok", Country: "Thailand", Description: "Temples by the river and street food on every corner.", Tags: []string{"Street Food", "Temples", "Markets"}, ImageURL: "https://images.example.com/cities/bangkok.jpg", Lat: 13.7563, Lng: 100.5018},
	}
}

func Places() []db_models.Place {
	return []db_models.Place{
		{ID: "senso-ji", Name: "Senso-ji Temple", CityID: "tokyo", Category: db_models.CategoryLandmark, Description: "Tokyo's oldest temple, reached through the Nakamise shopping street.", Lat: 35.7148, Lng: 139.7967},
		{ID: "tsukiji-outer-market", Name: "Tsukiji Outer Market", CityID: "tokyo", Category: db_models.CategoryFood, Description: "Sushi breakfasts, tamagoyaki and knife shops.", Lat: 35.6654, Lng: 139.7707},
		{ID: "teamlab-borderless", Name: "TeamLab Borderless", CityID: "tokyo", Category: db_models.CategoryMuseum, Description: "Immersive digital art museum.", Lat: 35.6604, Lng: 139.7292},
		{ID: "meiji-jingu", Name: "Meiji Jingu", CityID: "tokyo", Category: db_models.CategoryLandmark, Description: "Forest shrine next to Harajuku, often confused with a temple.", Lat: 35.6764, Lng: 139.6993},
		{ID: "golden-gai", Name: "Golden Gai", CityID: "tokyo", Category: db_models.CategoryNightlife, Description: "Tiny bars packed into six narrow alleys.", Lat: 35.6938, Lng: 139.7044},
		{ID: "shinjuku-station", Name: "Shinjuku Station", CityID: "tokyo", Category: db_models.CategoryTransit, Description: "The busiest station in the world.", Lat: 35.6896, Lng: 139.7006},
		{ID: "blue-bottle-kiyosumi", Name: "Blue Bottle Kiyosumi", CityID: "tokyo", Category: db_models.CategoryCafe, Description: "Roastery cafe in a converted warehouse.", Lat: 35.6803, Lng: 139.7990},
		{ID: "louvre", Name: "Louvre Museum", CityID: "paris", Category: db_models.CategoryMuseum, Description: "The world's most visited museum.", Lat: 48.8606, Lng: 2.3376},
		{ID: "cafe-de-flore", Name: "Cafe de Flore", CityID: "paris", Category: db_models.CategoryCafe, Description: "Classic Saint-Germain cafe.", Lat: 48.8540, Lng: 2.3326},
		{ID: "eiffel-tower", Name: "Eiffel Tower", CityID: "paris", Category: db_models.CategoryLandmark, Description: "Iron lattice tower on the Champ de Mars.", Lat: 48.8584, Lng: 2.2945},
		{ID: "sagrada-familia", Name: "Sagrada Familia", CityID: "barcelona", Category: db_models.CategoryLandmark, Description: "Gaudi's unfinished basilica.", Lat: 41.4036, Lng: 2.1744},
		{ID: "la-boqueria", Name: "La Boqueria", CityID: "barcelona", Category: db_models.CategoryFood, Description: "Covered market off La Rambla.", Lat: 41.3817, Lng: 2.1716},
		{ID: "picasso-museum", Name: "Museu Picasso", CityID: "barcelona", Category: db_models.CategoryMuseum, Description: "Early Picasso works in medieval palaces.", Lat: 41.3852, Lng: 2.1809},
		{ID: "pasteis-de-belem", Name: "Pasteis de Belem", CityID: "lisbon", Category: db_models.CategoryFood, Description: "The original custard tart bakery since 1837.", Lat: 38.6975, Lng: -9.2032},
		{ID: "lx-factory", Name: "LX Factory", CityID: "lisbon", Category: db_models.CategoryShopping, Description: "Shops and studios in an old textile complex.", Lat: 38.7033, Lng: -9.1788},
		{ID: "grand-bazaar", Name: "Grand Bazaar", CityID: "istanbul", Category: db_models.CategoryShopping, Description: "One of the oldest covered markets in the world.", Lat: 41.0106, Lng: 28.9681},
		{ID: "hagia-sophia", Name: "Hagia Sophia", CityID: "istanbul", Category: db_models.CategoryLandmark, Description: "Sixth-century church, mosque and museum.", Lat: 41.0086, Lng: 28.9802},
		{ID: "casa-azul", Name: "Museo Frida Kahlo", CityID: "mexico-city", Category: db_models.CategoryMuseum, Description: "The blue house in Coyoacan.", Lat: 19.3551, Lng: -99.1624},
		{ID: "wat-arun", Name: "Wat Arun", CityID: "bangkok", Category: db_models.CategoryLandmark, Description: "Riverside temple of dawn.", Lat: 13.7437, Lng: 100.4888},
		{ID: "chatuchak", Name: "Chatuchak Weekend Market", CityID: "bangkok", Category: db_models.CategoryShopping, Description: "Fifteen thousand stalls, open weekends.", Lat: 13.7999, Lng: 100.5500},
	}
}

func Users() []db_models.User {
	return []db_models.User{
		{ID: "user-1", Name: "Alex Rivera", Email: "alex@example.com", Avatar: "🧑🏽"},
		{ID: "user-2", Name: "Sarah Chen", Email: "sarah@example.com", Avatar: "👩🏻‍💻"},
		{ID: "user-3", Name: "Mike Johnson", Email: "mike@example.com", Avatar: "👨🏽‍🎨"},
		{ID: "user-4", Name: "Emma Wilson", Email: "emma@example.com", Avatar: "👩🏼"},
		{ID: "user-5", Name: "Lisa Park", Avatar: "👩🏻"},
		{ID: "user-6", Name: "Tom Brown", Avatar: "👨🏼‍🦱"},
	}
}

func usersByID(ids ...string) []db_models.User {
	all := Users()
	out := make([]db_models.User, 0, len(ids))
	for _, id := range ids {
		for _, u := range all {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out
}

func Trips() []db_models.Trip {
	return []db_models.Trip{
		{
			ID: "trip-1", Name: "Tokyo Adventure", Destination: "Tokyo", CityID: "tokyo",
			StartDate: "2026-12-15", EndDate: "2026-12-22",
			CoverImage: "https://images.example.com/trips/tokyo.jpg",
			Travelers:  usersByID("user-1", "user-2", "user-3"),
			Budget:     budget(4500), Status: db_models.TripStatusUpcoming,
			CreatedAt: ts("2026-08-01T10:00:00Z"), UpdatedAt: ts("2026-09-12T08:30:00Z"),
		},
		{
			ID: "trip-2", Name: "Lisbon Getaway", Destination: "Lisbon", CityID: "lisbon",
			StartDate: "2027-01-10", EndDate: "2027-01-15",
			Travelers: usersByID("user-1", "user-4"),
			Budget:    budget(1800), Status: db_models.TripStatusPlanning,
			CreatedAt: ts("2026-09-20T17:45:00Z"), UpdatedAt: ts("2026-09-20T17:45:00Z"),
		},
		{
			ID: "trip-3", Name: "Barcelona Summer", Destination: "Barcelona", CityID: "barcelona",
			StartDate: "2026-06-02", EndDate: "2026-06-08",
			CoverImage: "https://images.example.com/trips/barcelona.jpg",
			Travelers:  usersByID("user-1"),
			Budget:     budget(2200), Status: db_models.TripStatusCompleted,
			CreatedAt: ts("2026-03-04T09:00:00Z"), UpdatedAt: ts("2026-06-09T21:10:00Z"),
		},
		{
			ID: "trip-4", Name: "Paris Weekend", Destination: "Paris", CityID: "paris",
			StartDate: "2027-02-03", EndDate: "2027-02-05",
			Travelers: usersByID("user-1", "user-5", "user-6", "user-2"),
			Status:    db_models.TripStatusUpcoming,
			CreatedAt: ts("2026-10-01T12:00:00Z"), UpdatedAt: ts("2026-10-02T07:15:00Z"),
		},
		{
			ID: "trip-5", Name: "Bangkok Street Food", Destination: "Bangkok", CityID: "bangkok",
			StartDate: "2026-03-10", EndDate: "2026-03-18",
			Travelers: usersByID("user-1"),
			Status:    db_models.TripStatusCompleted,
			CreatedAt: ts("2026-01-15T14:20:00Z"), UpdatedAt: ts("2026-03-19T06:00:00Z"),
		},
		{
			ID: "trip-6", Name: "Istanbul Markets", Destination: "Istanbul", CityID: "istanbul",
			StartDate: "2026-10-14", EndDate: "2026-10-20",
			Travelers: usersByID("user-1", "user-3"),
			Budget:    budget(1500), Status: db_models.TripStatusActive,
			CreatedAt: ts("2026-07-30T11:00:00Z"), UpdatedAt: ts("2026-10-14T05:00:00Z"),
		},
	}
}

// Itineraries maps trip id to its items, already in chronological order.
func Itineraries() map[string][]db_models.ItineraryItem {
	return map[string][]db_models.ItineraryItem{
		"trip-1": {
			{ID: "item-1", PlaceID: "tsukiji-outer-market", Date: "2026-12-15", StartTime: "08:00", Duration: 90, Notes: "Tamagoyaki at the corner stall"},
			{ID: "item-2", PlaceID: "senso-ji", Date: "2026-12-15", StartTime: "10:30", Duration: 120},
			{ID: "item-3", PlaceID: "golden-gai", Date: "2026-12-15", StartTime: "21:00", Duration: 150},
			{ID: "item-4", PlaceID: "meiji-jingu", Date: "2026-12-16", StartTime: "09:00", Duration: 90},
			{ID: "item-5", PlaceID: "teamlab-borderless", Date: "2026-12-16", StartTime: "14:00", Duration: 180, Notes: "Tickets booked for 14:00 entry"},
			{ID: "item-6", PlaceID: "blue-bottle-kiyosumi", Date: "2026-12-17", StartTime: "10:00", Duration: 60},
		},
		"trip-3": {
			{ID: "item-7", PlaceID: "sagrada-familia", Date: "2026-06-02", StartTime: "09:00", Duration: 120},
			{ID: "item-8", PlaceID: "la-boqueria", Date: "2026-06-02", StartTime: "12:30", Duration: 60},
			{ID: "item-9", PlaceID: "picasso-museum", Date: "2026-06-03", StartTime: "11:00", Duration: 120},
		},
	}
}

func Messages() []db_models.Message {
	return []db_models.Message{
		{ID: "msg-1", ConversationID: "conv-1", SenderID: "user-2", SenderName: "Sarah Chen", SenderAvatar: "👩🏻‍💻", Text: "Added Senso-ji to day one!", Timestamp: ts("2026-10-16T09:12:00Z"), Read: true},
		{ID: "msg-2", ConversationID: "conv-1", SenderID: "user-1", SenderName: "Alex Rivera", Text: "Perfect, let's go early before the crowds.", Timestamp: ts("2026-10-16T09:20:00Z"), Read: true},
		{ID: "msg-3", ConversationID: "conv-1", SenderID: "user-2", SenderName: "Sarah Chen", SenderAvatar: "👩🏻‍💻", Text: "Breakfast at Tsukiji first?", Timestamp: ts("2026-10-17T08:05:00Z"), Read: false},
		{ID: "msg-4", ConversationID: "conv-2", SenderID: "user-3", SenderName: "Mike Johnson", SenderAvatar: "👨🏽‍🎨", Text: "Who's in for Lisbon in January?", Timestamp: ts("2026-10-12T18:40:00Z"), Read: true},
		{ID: "msg-5", ConversationID: "conv-2", SenderID: "user-4", SenderName: "Emma Wilson", SenderAvatar: "👩🏼", Text: "Me! Pasteis de Belem on day one.", Timestamp: ts("2026-10-12T19:02:00Z"), Read: false},
		{ID: "msg-6", ConversationID: "conv-3", SenderID: "user-5", SenderName: "Lisa Park", SenderAvatar: "👩🏻", Text: "Thanks for the Paris invite!", Timestamp: ts("2026-09-28T11:00:00Z"), Read: true},
	}
}

func lastMessage(convID string) *db_models.Message {
	var last *db_models.Message
	for _, m := range Messages() {
		if m.ConversationID == convID {
			msg := m
			last = &msg
		}
	}
	return last
}

func Conversations() []db_models.Conversation {
	return []db_models.Conversation{
		{ID: "conv-1", Participants: usersByID("user-1", "user-2"), LastMessage: lastMessage("conv-1"), UnreadCount: 1},
		{ID: "conv-2", Participants: usersByID("user-1", "user-3", "user-4"), LastMessage: lastMessage("conv-2"), UnreadCount: 1},
		{ID: "conv-3", Participants: usersByID("user-1", "user-5"), LastMessage: lastMessage("conv-3"), UnreadCount: 0},
	}
}

func Activities() []db_models.Activity {
	return []db_models.Activity{
		{ID: "act-1", UserID: "user-2", UserName: "Sarah Chen", UserAvatar: "👩🏻‍💻", Payload: db_models.PlaceSaved{PlaceID: "senso-ji", PlaceName: "Senso-ji Temple"}, Timestamp: ts("2026-10-17T07:30:00Z")},
		{ID: "act-2", UserID: "user-4", UserName: "Emma Wilson", UserAvatar: "👩🏼", Payload: db_models.TripCreated{TripID: "trip-2", TripName: "Lisbon Getaway"}, Timestamp: ts("2026-10-16T15:00:00Z")},
		{ID: "act-3", UserID: "user-3", UserName: "Mike Johnson", UserAvatar: "👨🏽‍🎨", Payload: db_models.FriendAdded{FriendID: "user-6", FriendName: "Tom Brown"}, Timestamp: ts("2026-10-14T10:00:00Z")},
		{ID: "act-4", UserID: "user-1", UserName: "Alex Rivera", Payload: db_models.TripShared{TripID: "trip-4", TripName: "Paris Weekend"}, Timestamp: ts("2026-10-02T07:15:00Z")},
		{ID: "act-5", UserID: "user-1", UserName: "Alex Rivera", Payload: db_models.TripCompleted{TripID: "trip-3", TripName: "Barcelona Summer"}, Timestamp: ts("2026-06-09T21:10:00Z")},
	}
}
