package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// InfoHandler serves the root and API version discovery endpoints.
type InfoHandler struct{}

func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

type rootResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
	Health  string `json:"health"`
	Metrics string `json:"metrics"`
}

type versionResponse struct {
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Root handles GET / — basic service info and links.
func (h *InfoHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Name:    serviceName,
		Version: serviceVersion,
		Status:  "operational",
		Health:  "/health",
		Metrics: "/metrics",
	})
}

// V1 handles GET /v1 — lists the v1 resource roots.
func (h *InfoHandler) V1(c echo.Context) error {
	return c.JSON(http.StatusOK, versionResponse{
		Version: serviceVersion,
		Endpoints: map[string]string{
			"auth":   "/v1/auth",
			"jobs":   "/v1/jobs",
			"skills": "/v1/skills",
		},
	})
}
