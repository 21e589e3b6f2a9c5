package services_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := request(t, app, http.MethodGet, "/v1/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestPublicUserLookup(t *testing.T) {
	app, stub := newTestApp(t)

	userID, _ := signup(t, app, stub, "robin@strawhat.com", "Nico Robin", "Devil_Child")

	// lookup is case-insensitive and exposes only the public subset
	status, body := request(t, app, http.MethodGet, "/v1/public/user?username=DEVIL_CHILD&refresh=true", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, userID, body["id"])
	assert.Equal(t, "Nico Robin", body["name"])
	assert.Equal(t, "devil_child", body["username"])
	assert.NotContains(t, body, "email")

	status, _ = request(t, app, http.MethodGet, "/v1/public/user?username=nobody&refresh=true", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = request(t, app, http.MethodGet, "/v1/public/user?refresh=true", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
