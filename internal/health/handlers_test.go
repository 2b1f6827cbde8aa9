package health

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"realty-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealthHandlers(t *testing.T) (*Handlers, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return &Handlers{
		Rdb:            rdb,
		DB:             nil,
		HealthAdminKey: "test-admin-key",
	}, mr
}

func TestJSON_ReportsTraffic(t *testing.T) {
	h, mr := setupHealthHandlers(t)
	mr.Set(middleware.KeyReqTotal, "10")
	mr.Set(middleware.KeyReqErrors, "2")

	app := fiber.New()
	app.Get("/health/json", h.JSON)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "realty-api", out["service"])
	traffic := out["traffic"].(map[string]interface{})
	assert.Equal(t, float64(10), traffic["totalRequests"])
	assert.Equal(t, float64(2), traffic["failedCount"])
	assert.Equal(t, float64(8), traffic["successCount"])

	deps := out["dependencies"].(map[string]interface{})
	assert.Equal(t, "connected", deps["redis"].(map[string]interface{})["status"])
	assert.Equal(t, "disconnected", deps["database"].(map[string]interface{})["status"])
}

func TestReset_Unauthorized(t *testing.T) {
	h, _ := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/health/reset", h.Reset)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Unauthorized", out["error"])

	resp2, err := app.Test(httptest.NewRequest("GET", "/health/reset?key=wrong", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp2.StatusCode)
}

func TestReset_Success(t *testing.T) {
	h, mr := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/health/reset", h.Reset)

	mr.Set(middleware.KeyReqTotal, "42")

	resp, err := app.Test(httptest.NewRequest("GET", "/health/reset?key=test-admin-key", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	ctx := context.Background()
	_, err = h.Rdb.Get(ctx, middleware.KeyReqTotal).Result()
	assert.Equal(t, redis.Nil, err)
	// Start time is re-seeded so uptime restarts
	startTime, err := h.Rdb.Get(ctx, middleware.KeyStartTime).Result()
	require.NoError(t, err)
	assert.NotEmpty(t, startTime)
}

func TestErrors_RequiresKeyAndReturnsLog(t *testing.T) {
	h, mr := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/health/errors", h.Errors)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/errors", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	entry, _ := json.Marshal(map[string]interface{}{"path": "/api/properties", "status": 500})
	mr.Lpush(middleware.KeyErrorLog, string(entry))

	resp, err = app.Test(httptest.NewRequest("GET", "/health/errors?key=test-admin-key", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "/api/properties", out[0]["path"])
}

func TestCollectHealth_WithNilRedis(t *testing.T) {
	ctx := context.Background()
	result := CollectHealth(ctx, nil, nil)
	assert.Equal(t, "issue", result.Status)
	assert.Equal(t, "disconnected", result.Dependencies["database"].Status)
	assert.Equal(t, "disconnected", result.Dependencies["redis"].Status)
	assert.Equal(t, 0, result.Traffic.TotalRequests)
	assert.Equal(t, "100", result.Traffic.SuccessRate)
}

func TestCollectHealth_ComputesRates(t *testing.T) {
	h, mr := setupHealthHandlers(t)
	ctx := context.Background()

	mr.Set(middleware.KeyReqTotal, "10")
	mr.Set(middleware.KeyReqErrors, "2")
	mr.Set(middleware.KeyResTime, "150.5")
	mr.Set(middleware.KeyResCount, "10")
	mr.Set(middleware.KeyStartTime, "1000000")

	result := CollectHealth(ctx, h.Rdb, nil)
	assert.Equal(t, 10, result.Traffic.TotalRequests)
	assert.Equal(t, 2, result.Traffic.FailedCount)
	assert.Equal(t, 8, result.Traffic.SuccessCount)
	assert.Equal(t, "80.0", result.Traffic.SuccessRate)
	assert.Equal(t, "15.05", result.Traffic.AvgResponseTime)
}
