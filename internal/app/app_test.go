package app

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"realty-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateApp_WithoutBackingServices(t *testing.T) {
	app, db, rdb, err := CreateApp(&config.Config{Env: "test", Port: "0"})
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.Nil(t, rdb)

	// Health endpoint works and reports disconnected dependencies
	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "issue", out["status"])

	// API routes are not mounted without a database
	resp, err = app.Test(httptest.NewRequest("GET", "/api/properties", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCreateApp_RejectsBadRedisURL(t *testing.T) {
	_, _, _, err := CreateApp(&config.Config{Env: "test", RedisURL: "not-a-url"})
	assert.Error(t, err)
}
