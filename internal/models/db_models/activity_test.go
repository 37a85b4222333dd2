package db_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityDecodesPayloadAsValue(t *testing.T) {
	raw := `{"id":"act-1","user_id":"user-2","user_name":"Sarah Chen","type":"trip_created",
		"data":{"trip_id":"trip-1","trip_name":"Tokyo Adventure"},"timestamp":"2026-10-17T07:30:00Z"}`

	var a Activity
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	assert.Equal(t, ActivityTripCreated, a.Type())
	assert.Equal(t, TripCreated{TripID: "trip-1", TripName: "Tokyo Adventure"}, a.Payload)
}

func TestActivityRejectsUnknownType(t *testing.T) {
	var a Activity
	err := json.Unmarshal([]byte(`{"id":"x","type":"trip_deleted","data":{}}`), &a)
	assert.ErrorContains(t, err, "unknown activity type")
}

func TestActivityWithoutPayloadFailsToEncode(t *testing.T) {
	_, err := json.Marshal(Activity{ID: "act-9"})
	assert.Error(t, err)
}
