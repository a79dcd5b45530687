package health

import (
	"context"
	"runtime"
	"time"

	"invites-backend/internal/middleware"
	"invites-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// SheetsChecker reports whether the spreadsheet backend has credentials.
type SheetsChecker interface {
	Configured() bool
}

type Handlers struct {
	Rdb    *redis.Client
	Sheets SheetsChecker
	start  time.Time
}

func NewHandlers(rdb *redis.Client, sheets SheetsChecker) *Handlers {
	return &Handlers{Rdb: rdb, Sheets: sheets, start: time.Now()}
}

type depStatus struct {
	Status string      `json:"status"`
	PingMs interface{} `json:"pingMs"`
}

// GET /health/json
func (h *Handlers) JSON(c *fiber.Ctx) error {
	ctx := context.Background()
	deps := map[string]depStatus{}

	redisStatus := depStatus{Status: "disconnected", PingMs: nil}
	if h.Rdb != nil {
		start := time.Now()
		if err := h.Rdb.Ping(ctx).Err(); err == nil {
			redisStatus = depStatus{Status: "connected", PingMs: time.Since(start).Milliseconds()}
		}
	}
	deps["redis"] = redisStatus

	sheetsStatus := depStatus{Status: "unconfigured", PingMs: nil}
	if h.Sheets != nil && h.Sheets.Configured() {
		sheetsStatus.Status = "configured"
	}
	deps["sheets"] = sheetsStatus

	var total, errs int
	if h.Rdb != nil {
		total, _ = h.Rdb.Get(ctx, middleware.KeyReqTotal).Int()
		errs, _ = h.Rdb.Get(ctx, middleware.KeyReqErrors).Int()
	}

	return response.Success(c, "Health collected", fiber.Map{
		"status":        "ok",
		"uptimeSeconds": int64(time.Since(h.start).Seconds()),
		"goVersion":     runtime.Version(),
		"traffic": fiber.Map{
			"totalRequests": total,
			"failedCount":   errs,
		},
		"dependencies": deps,
	})
}

// GET /health/reset clears the request counters.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	if h.Rdb != nil {
		ctx := context.Background()
		h.Rdb.Del(ctx,
			middleware.KeyReqTotal,
			middleware.KeyReqErrors,
			middleware.KeyResTime,
			middleware.KeyResCount,
			middleware.KeyLastReq,
		)
	}
	return response.Success(c, "Health counters reset", nil)
}
