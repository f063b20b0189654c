package health

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common/http"
)

type healthHandler struct{}

// New health handler will initialize the health/ resources endpoint
func New(app *echo.Group) {
	hh := healthHandler{}
	app.GET("/health", hh.healthCheck)
}

type DoHealthCheckLivenessResponse struct {
	Kind   string `json:"kind" example:"health"`
	Status string `json:"status" example:"server is up and running"`
}

func (th healthHandler) healthCheck(c echo.Context) error {
	return http.RestSuccessResponse(c, nethttp.StatusOK, DoHealthCheckLivenessResponse{
		Kind:   "health",
		Status: "server is up and running",
	})
}
