package health

import (
	"time"

	"agromart-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Pinger abstracts the DB connection check so tests can stub it.
type Pinger interface {
	Ping() error
}

type Handlers struct {
	DB  Pinger
	Rdb *redis.Client
}

// GET /health/json
func (h *Handlers) JSON(c *fiber.Ctx) error {
	dbStatus := "not configured"
	if h.DB != nil {
		dbStatus = "ok"
		if err := h.DB.Ping(); err != nil {
			dbStatus = "down"
		}
	}

	redisStatus := "not configured"
	if h.Rdb != nil {
		redisStatus = "ok"
		if err := h.Rdb.Ping(c.Context()).Err(); err != nil {
			redisStatus = "down"
		}
	}

	return response.Success(c, "Health check", fiber.Map{
		"database": dbStatus,
		"redis":    redisStatus,
		"time":     time.Now().UTC().Format(time.RFC3339),
	}, nil)
}
