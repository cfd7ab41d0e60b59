package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	serviceName    = "workforce analytics api"
	serviceVersion = "1.0.0"
)

// HealthHandler handles GET /health — liveness probe for load balancers.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: serviceVersion,
	})
}

// HealthDetailedHandler handles GET /health/detailed — checks MongoDB and
// Redis connectivity. A failing dependency degrades the status but still
// returns 200: the probe reports, it does not gate traffic.
type HealthDetailedHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewHealthDetailedHandler(db *mongo.Database, rdb *redis.Client) *HealthDetailedHandler {
	return &HealthDetailedHandler{
		mongo: db,
		redis: rdb,
	}
}

type detailedHealthResponse struct {
	Status       string            `json:"status"`
	Service      string            `json:"service"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies"`
}

func (h *HealthDetailedHandler) Detailed(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]string)
	status := "healthy"

	if err := h.mongo.Client().Ping(ctx, nil); err != nil {
		deps["database"] = "unhealthy: " + err.Error()
		status = "degraded"
	} else {
		deps["database"] = "healthy"
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		deps["redis"] = "unhealthy: " + err.Error()
		status = "degraded"
	} else {
		deps["redis"] = "healthy"
	}

	return c.JSON(http.StatusOK, detailedHealthResponse{
		Status:       status,
		Service:      serviceName,
		Version:      serviceVersion,
		Dependencies: deps,
	})
}
