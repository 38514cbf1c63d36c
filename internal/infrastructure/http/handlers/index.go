package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// IndexHandler handles GET / — a human-readable map of the API surface.
type IndexHandler struct{}

func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

type indexResponse struct {
	Message   string                       `json:"message"`
	Version   string                       `json:"version"`
	Endpoints map[string]map[string]string `json:"endpoints"`
}

func (h *IndexHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, indexResponse{
		Message: "Welcome to Sweet Shop API",
		Version: "1.0.0",
		Endpoints: map[string]map[string]string{
			"auth": {
				"signup":         "POST /api/auth/signup",
				"login":          "POST /api/auth/login",
				"profile":        "GET /api/auth/profile",
				"changePassword": "PUT /api/auth/profile/password",
			},
			"sweets": {
				"getAll":   "GET /api/sweets",
				"search":   "GET /api/sweets/search",
				"add":      "POST /api/sweets",
				"update":   "PUT /api/sweets/:id",
				"delete":   "DELETE /api/sweets/:id",
				"purchase": "POST /api/sweets/:id/purchase",
				"restock":  "POST /api/sweets/:id/restock",
			},
		},
	})
}
