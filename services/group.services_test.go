package services_test

import (
	"fmt"
	"net/http"
	"testing"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGroup(t *testing.T, app *fiber.App, token string, name string, members []string) string {
	t.Helper()
	status, body := request(t, app, http.MethodPost, "/v1/groups/create", token, map[string]interface{}{
		"name":    name,
		"members": members,
	})
	require.Equal(t, http.StatusOK, status, "group create failed: %v", body)
	group := body["group"].(map[string]interface{})
	return group["id"].(string)
}

func TestGroupMembershipGate(t *testing.T) {
	app, stub := newTestApp(t)

	_, luffyToken := signup(t, app, stub, "luffy@strawhat.com", "Luffy", "captain_luffy")
	zoroID, zoroToken := signup(t, app, stub, "zoro@strawhat.com", "Zoro", "pirate_hunter")
	_, crocodileToken := signup(t, app, stub, "crocodile@baroque.works", "Crocodile", "mr_zero")

	groupID := createGroup(t, app, luffyToken, "Straw Hats", []string{zoroID})

	status, body := request(t, app, http.MethodGet, "/v1/groups/"+groupID, luffyToken, nil)
	require.Equal(t, http.StatusOK, status)
	group := body["group"].(map[string]interface{})
	assert.Equal(t, "Straw Hats", group["name"])
	assert.Len(t, group["members"], 2)

	status, _ = request(t, app, http.MethodGet, "/v1/groups/"+groupID, zoroToken, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = request(t, app, http.MethodGet, "/v1/groups/"+groupID, crocodileToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = request(t, app, http.MethodGet, "/v1/groups/no-such-group", luffyToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = request(t, app, http.MethodGet, "/v1/groups/"+groupID+"/messages", crocodileToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = request(t, app, http.MethodPost, "/v1/groups/"+groupID+"/messages/send", crocodileToken, map[string]interface{}{
		"message": "let me in",
	})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestGroupsListing(t *testing.T) {
	app, stub := newTestApp(t)

	_, luffyToken := signup(t, app, stub, "luffy@strawhat.com", "Luffy", "captain_luffy")
	zoroID, zoroToken := signup(t, app, stub, "zoro@strawhat.com", "Zoro", "pirate_hunter")

	groupID := createGroup(t, app, luffyToken, "Straw Hats", []string{zoroID})

	// both the creator and the invited member see the group
	for _, token := range []string{luffyToken, zoroToken} {
		status, body := request(t, app, http.MethodGet, "/v1/groups", token, nil)
		require.Equal(t, http.StatusOK, status)
		groups := body["groups"].([]interface{})
		require.Len(t, groups, 1)
		summary := groups[0].(map[string]interface{})
		assert.Equal(t, groupID, summary["id"])
		assert.Equal(t, float64(2), summary["memberCount"])
	}
}

func TestGroupMessageRetentionWindow(t *testing.T) {
	app, stub := newTestApp(t)

	_, luffyToken := signup(t, app, stub, "luffy@strawhat.com", "Luffy", "captain_luffy")

	groupID := createGroup(t, app, luffyToken, "Solo Fleet", nil)

	for i := 1; i <= 101; i++ {
		status, _ := request(t, app, http.MethodPost, "/v1/groups/"+groupID+"/messages/send", luffyToken, map[string]interface{}{
			"message": fmt.Sprintf("m%d", i),
		})
		require.Equal(t, http.StatusOK, status)
	}

	status, body := request(t, app, http.MethodGet, "/v1/groups/"+groupID+"/messages", luffyToken, nil)
	require.Equal(t, http.StatusOK, status)
	messages := body["messages"].([]interface{})
	require.Len(t, messages, 100, "retention window is exactly 100")
	assert.Equal(t, "m2", messages[0].(map[string]interface{})["content"], "oldest message evicted first")
	assert.Equal(t, "m101", messages[99].(map[string]interface{})["content"])
}

func TestGroupMessageSenderSnapshot(t *testing.T) {
	app, stub := newTestApp(t)

	luffyID, luffyToken := signup(t, app, stub, "luffy@strawhat.com", "Monkey D. Luffy", "captain_luffy")

	groupID := createGroup(t, app, luffyToken, "Solo Fleet", nil)

	status, body := request(t, app, http.MethodPost, "/v1/groups/"+groupID+"/messages/send", luffyToken, map[string]interface{}{
		"message": "set sail",
	})
	require.Equal(t, http.StatusOK, status)
	message := body["message"].(map[string]interface{})
	assert.Equal(t, luffyID, message["senderId"])
	assert.Equal(t, "Monkey D. Luffy", message["senderName"])
	assert.NotEmpty(t, message["senderColor"])
	assert.Equal(t, "set sail", message["content"])
}
