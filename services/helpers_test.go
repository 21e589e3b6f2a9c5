package services_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"NAKAMA_server/config"
	"NAKAMA_server/global"
	"NAKAMA_server/identity"
	"NAKAMA_server/kv"
	"NAKAMA_server/routes"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// stubProvider satisfies identity.Provider without a running auth service.
// Tokens are opaque strings it hands out itself.
type stubProvider struct {
	mu     sync.Mutex
	seq    int
	emails map[string]string // email -> user id
	tokens map[string]string // token -> user id
}

func newStubProvider() *stubProvider {
	return &stubProvider{
		emails: make(map[string]string),
		tokens: make(map[string]string),
	}
}

func (p *stubProvider) ResolveToken(token string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	userID, ok := p.tokens[token]
	if !ok {
		return "", identity.ErrInvalidToken
	}
	return userID, nil
}

func (p *stubProvider) AdminCreateUser(ctx context.Context, email string, password string, meta identity.UserMetadata) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.emails[email]; exists {
		return "", identity.ErrDuplicate
	}
	p.seq++
	userID := fmt.Sprintf("user-%d", p.seq)
	p.emails[email] = userID
	p.tokens["token-"+userID] = userID
	return userID, nil
}

// tokenFor returns the bearer token the stub issued for a user id
func (p *stubProvider) tokenFor(userID string) string {
	return "token-" + userID
}

func newTestApp(t *testing.T) (*fiber.App, *stubProvider) {
	t.Helper()

	config.Config.Version = "/v1"
	config.Config.Auth.ServiceKey = "service-key"
	global.Store = kv.NewMemoryStore()
	global.Locks = new(kv.Locks)
	global.InternalLogger = log.New(ioutil.Discard, "", 0)
	global.MonitorLogger = log.New(ioutil.Discard, "", 0)

	stub := newStubProvider()
	global.Identity = stub

	app := fiber.New()
	routes.SetRoutes(app)
	return app, stub
}

func request(t *testing.T, app *fiber.App, method string, path string, token string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func newServiceKeyRequest(t *testing.T, key string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/init-demo", nil)
	req.Header.Set("x-service-key", key)
	return req
}

// signup creates a user through the real endpoint and returns its id and a
// token the stub provider will resolve
func signup(t *testing.T, app *fiber.App, stub *stubProvider, email string, name string, username string) (string, string) {
	t.Helper()

	status, body := request(t, app, http.MethodPost, "/v1/signup", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
		"name":     name,
		"username": username,
	})
	require.Equal(t, http.StatusOK, status, "signup failed: %v", body)

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok, "signup response missing user: %v", body)
	userID := user["id"].(string)
	return userID, stub.tokenFor(userID)
}
