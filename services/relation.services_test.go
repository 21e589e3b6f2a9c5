package services_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buddyIDs(t *testing.T, body map[string]interface{}) []string {
	t.Helper()
	raw, ok := body["buddies"].([]interface{})
	require.True(t, ok, "response missing buddies: %v", body)
	ids := []string{}
	for _, b := range raw {
		ids = append(ids, b.(map[string]interface{})["id"].(string))
	}
	return ids
}

func TestBuddyRequestAcceptFlow(t *testing.T) {
	app, stub := newTestApp(t)

	luffyID, luffyToken := signup(t, app, stub, "luffy@strawhat.com", "Luffy", "captain_luffy")
	zoroID, zoroToken := signup(t, app, stub, "zoro@strawhat.com", "Zoro", "pirate_hunter")

	status, body := request(t, app, http.MethodPost, "/v1/buddies/add", luffyToken, map[string]interface{}{
		"buddyId": zoroID,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	requestID := body["requestId"].(string)
	require.NotEmpty(t, requestID)

	status, body = request(t, app, http.MethodGet, "/v1/buddies/requests", zoroToken, nil)
	require.Equal(t, http.StatusOK, status)
	requests := body["requests"].([]interface{})
	require.Len(t, requests, 1)
	entry := requests[0].(map[string]interface{})
	assert.Equal(t, requestID, entry["id"])
	assert.Equal(t, luffyID, entry["from"])
	assert.Equal(t, "Luffy", entry["name"])
	assert.Equal(t, "Wants to be your buddy", entry["status"])

	status, body = request(t, app, http.MethodPost, "/v1/buddies/accept", zoroToken, map[string]interface{}{
		"requestId": requestID,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, body = request(t, app, http.MethodGet, "/v1/buddies", luffyToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{zoroID}, buddyIDs(t, body))

	status, body = request(t, app, http.MethodGet, "/v1/buddies", zoroToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{luffyID}, buddyIDs(t, body))

	// accepted requests disappear from the pending listing
	status, body = request(t, app, http.MethodGet, "/v1/buddies/requests", zoroToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["requests"])
}

func TestAcceptIsIdempotentOnBuddyLists(t *testing.T) {
	app, stub := newTestApp(t)

	_, luffyToken := signup(t, app, stub, "luffy@strawhat.com", "Luffy", "captain_luffy")
	zoroID, zoroToken := signup(t, app, stub, "zoro@strawhat.com", "Zoro", "pirate_hunter")

	status, body := request(t, app, http.MethodPost, "/v1/buddies/add", luffyToken, map[string]interface{}{
		"buddyId": zoroID,
	})
	require.Equal(t, http.StatusOK, status)
	requestID := body["requestId"].(string)

	for i := 0; i < 2; i++ {
		status, _ = request(t, app, http.MethodPost, "/v1/buddies/accept", zoroToken, map[string]interface{}{
			"requestId": requestID,
		})
		require.Equal(t, http.StatusOK, status)
	}

	status, body = request(t, app, http.MethodGet, "/v1/buddies", luffyToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, buddyIDs(t, body), 1, "re-accept must not duplicate list entries")
}

func TestAcceptRequiresRecipient(t *testing.T) {
	app, stub := newTestApp(t)

	_, luffyToken := signup(t, app, stub, "luffy@strawhat.com", "Luffy", "captain_luffy")
	zoroID, _ := signup(t, app, stub, "zoro@strawhat.com", "Zoro", "pirate_hunter")
	_, namiToken := signup(t, app, stub, "nami@strawhat.com", "Nami", "cat_burglar")

	status, body := request(t, app, http.MethodPost, "/v1/buddies/add", luffyToken, map[string]interface{}{
		"buddyId": zoroID,
	})
	require.Equal(t, http.StatusOK, status)
	requestID := body["requestId"].(string)

	// the sender cannot accept their own request
	status, _ = request(t, app, http.MethodPost, "/v1/buddies/accept", luffyToken, map[string]interface{}{
		"requestId": requestID,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// neither can a third party
	status, _ = request(t, app, http.MethodPost, "/v1/buddies/accept", namiToken, map[string]interface{}{
		"requestId": requestID,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = request(t, app, http.MethodPost, "/v1/buddies/accept", namiToken, map[string]interface{}{
		"requestId": "no-such-request",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDeclineLeavesListsUntouched(t *testing.T) {
	app, stub := newTestApp(t)

	_, luffyToken := signup(t, app, stub, "luffy@strawhat.com", "Luffy", "captain_luffy")
	zoroID, zoroToken := signup(t, app, stub, "zoro@strawhat.com", "Zoro", "pirate_hunter")

	status, body := request(t, app, http.MethodPost, "/v1/buddies/add", luffyToken, map[string]interface{}{
		"buddyId": zoroID,
	})
	require.Equal(t, http.StatusOK, status)
	requestID := body["requestId"].(string)

	status, body = request(t, app, http.MethodPost, "/v1/buddies/decline", zoroToken, map[string]interface{}{
		"requestId": requestID,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, body = request(t, app, http.MethodGet, "/v1/buddies", luffyToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, buddyIDs(t, body))

	status, body = request(t, app, http.MethodGet, "/v1/buddies", zoroToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, buddyIDs(t, body))

	status, body = request(t, app, http.MethodGet, "/v1/buddies/requests", zoroToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["requests"], "declined request leaves the pending listing")
}

func TestSelfBuddyRequestRejected(t *testing.T) {
	app, stub := newTestApp(t)

	luffyID, luffyToken := signup(t, app, stub, "luffy@strawhat.com", "Luffy", "captain_luffy")

	status, _ := request(t, app, http.MethodPost, "/v1/buddies/add", luffyToken, map[string]interface{}{
		"buddyId": luffyID,
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestBuddiesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := request(t, app, http.MethodGet, "/v1/buddies", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = request(t, app, http.MethodPost, "/v1/buddies/add", "", map[string]interface{}{"buddyId": "x"})
	assert.Equal(t, http.StatusUnauthorized, status)
}
