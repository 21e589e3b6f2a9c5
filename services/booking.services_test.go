package services_test

import (
	"net/http"
	"testing"

	"NAKAMA_server/global"
	"NAKAMA_server/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookHotel(t *testing.T) {
	app, stub := newTestApp(t)

	userID, token := signup(t, app, stub, "nami@strawhat.com", "Nami", "cat_burglar")

	status, body := request(t, app, http.MethodPost, "/v1/hotels/book", token, map[string]interface{}{
		"hotelId":   "hotel-7",
		"hotelName": "Grand Line Inn",
		"checkIn":   "2026-09-01",
		"checkOut":  "2026-09-04",
		"price":     240.5,
	})
	require.Equal(t, http.StatusOK, status)
	booking := body["booking"].(map[string]interface{})
	assert.Equal(t, userID, booking["userId"])
	assert.Equal(t, "confirmed", booking["status"])
	assert.Equal(t, 240.5, booking["price"])

	bookings, err := kv.GetList(global.Context, global.Store, kv.BookingsKey(userID))
	require.NoError(t, err)
	assert.Equal(t, []string{booking["id"].(string)}, bookings)
}

func TestRsvpEvent(t *testing.T) {
	app, stub := newTestApp(t)

	userID, token := signup(t, app, stub, "nami@strawhat.com", "Nami", "cat_burglar")

	status, body := request(t, app, http.MethodPost, "/v1/events/rsvp", token, map[string]interface{}{
		"eventId":   "event-3",
		"eventName": "Fire Festival",
	})
	require.Equal(t, http.StatusOK, status)
	rsvp := body["rsvp"].(map[string]interface{})
	assert.Equal(t, "going", rsvp["status"])
	assert.Equal(t, "Fire Festival", rsvp["eventName"])

	rsvps, err := kv.GetList(global.Context, global.Store, kv.RsvpsKey(userID))
	require.NoError(t, err)
	assert.Len(t, rsvps, 1)
}

func TestBookingRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := request(t, app, http.MethodPost, "/v1/hotels/book", "", map[string]interface{}{
		"hotelId":   "hotel-7",
		"hotelName": "Grand Line Inn",
		"checkIn":   "2026-09-01",
		"checkOut":  "2026-09-04",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}
