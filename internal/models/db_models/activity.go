package db_models

import (
	"encoding/json"
	"fmt"
	"time"
)

type ActivityType string

const (
	ActivityTripCreated   ActivityType = "trip_created"
	ActivityTripCompleted ActivityType = "trip_completed"
	ActivityTripShared    ActivityType = "trip_shared"
	ActivityPlaceSaved    ActivityType = "place_saved"
	ActivityFriendAdded   ActivityType = "friend_added"
)

// ActivityPayload is the tag-specific part of a feed entry. Each tag has
// exactly one payload type.
type ActivityPayload interface {
	ActivityType() ActivityType
}

type TripCreated struct {
	TripID   string `json:"trip_id"`
	TripName string `json:"trip_name"`
}

type TripCompleted struct {
	TripID   string `json:"trip_id"`
	TripName string `json:"trip_name"`
}

type TripShared struct {
	TripID   string `json:"trip_id"`
	TripName string `json:"trip_name"`
}

type PlaceSaved struct {
	PlaceID   string `json:"place_id"`
	PlaceName string `json:"place_name"`
}

type FriendAdded struct {
	FriendID   string `json:"friend_id"`
	FriendName string `json:"friend_name"`
}

func (TripCreated) ActivityType() ActivityType   { return ActivityTripCreated }
func (TripCompleted) ActivityType() ActivityType { return ActivityTripCompleted }
func (TripShared) ActivityType() ActivityType    { return ActivityTripShared }
func (PlaceSaved) ActivityType() ActivityType    { return ActivityPlaceSaved }
func (FriendAdded) ActivityType() ActivityType   { return ActivityFriendAdded }

type Activity struct {
	ID         string
	UserID     string
	UserName   string
	UserAvatar string
	Payload    ActivityPayload
	Timestamp  time.Time
}

type activityJSON struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	UserName   string          `json:"user_name"`
	UserAvatar string          `json:"user_avatar,omitempty"`
	Type       ActivityType    `json:"type"`
	Data       json.RawMessage `json:"data"`
	Timestamp  time.Time       `json:"timestamp"`
}

func (a Activity) Type() ActivityType {
	if a.Payload == nil {
		return ""
	}
	return a.Payload.ActivityType()
}

func (a Activity) MarshalJSON() ([]byte, error) {
	if a.Payload == nil {
		return nil, fmt.Errorf("activity %s has no payload", a.ID)
	}
	data, err := json.Marshal(a.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(activityJSON{
		ID:         a.ID,
		UserID:     a.UserID,
		UserName:   a.UserName,
		UserAvatar: a.UserAvatar,
		Type:       a.Payload.ActivityType(),
		Data:       data,
		Timestamp:  a.Timestamp,
	})
}

func (a *Activity) UnmarshalJSON(b []byte) error {
	var raw activityJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var payload ActivityPayload
	switch raw.Type {
	case ActivityTripCreated:
		payload = &TripCreated{}
	case ActivityTripCompleted:
		payload = &TripCompleted{}
	case ActivityTripShared:
		payload = &TripShared{}
	case ActivityPlaceSaved:
		payload = &PlaceSaved{}
	case ActivityFriendAdded:
		payload = &FriendAdded{}
	default:
		return fmt.Errorf("unknown activity type %q", raw.Type)
	}
	if len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", raw.Type, err)
		}
	}

	// Store the value, not the pointer, so type switches on Payload see
	// the same types the seed uses.
	switch p := payload.(type) {
	case *TripCreated:
		a.Payload = *p
	case *TripCompleted:
		a.Payload = *p
	case *TripShared:
		a.Payload = *p
	case *PlaceSaved:
		a.Payload = *p
	case *FriendAdded:
		a.Payload = *p
	}

	a.ID = raw.ID
	a.UserID = raw.UserID
	a.UserName = raw.UserName
	a.UserAvatar = raw.UserAvatar
	a.Timestamp = raw.Timestamp
	return nil
}
