package integration

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMe(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp, err := http.Post(app.Server.URL+"/api/users/signup", "application/json",
		strings.NewReader(`{"name":"Alice","email":"alice@x.com","password":"secret1"}`))
	require.NoError(t, err)
	resp.Body.Close()

	// Roles are stored and echoed, never enforced.
	_, err = app.DB.Exec("UPDATE users SET roles = $1 WHERE email = $2", pq.Array([]string{"member", "admin"}), "alice@x.com")
	require.NoError(t, err)

	resp, err = http.Post(app.Server.URL+"/api/users/login", "application/json",
		strings.NewReader(`{"email":"alice@x.com","password":"secret1"}`))
	require.NoError(t, err)
	var login loginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodGet, app.Server.URL+"/api/users/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login.Token)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me struct {
		Name  string   `json:"name"`
		Email string   `json:"email"`
		Roles []string `json:"roles"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, "Alice", me.Name)
	assert.Equal(t, "alice@x.com", me.Email)
	assert.Equal(t, []string{"member", "admin"}, me.Roles)
}

func TestGetMe_Unauthorized(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp, err := http.Get(app.Server.URL + "/api/users/me")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_IsCaseInsensitiveOnEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp, err := http.Post(app.Server.URL+"/api/users/signup", "application/json",
		strings.NewReader(`{"name":"Alice","email":"Alice@X.com","password":"secret1"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Post(app.Server.URL+"/api/users/login", "application/json",
		strings.NewReader(`{"email":"ALICE@x.COM","password":"secret1"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
