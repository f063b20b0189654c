package settings

import (
	"errors"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common/http"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/validation"
	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
	"github.com/rommsen/BudgetBuddy-sub000/internal/services"
)

type settingHandler struct {
	settingSvc services.SettingService
}

// New setting handler will initialize the settings/ resources endpoint
func New(app *echo.Group, settingSvc services.SettingService) {
	handler := settingHandler{
		settingSvc: settingSvc,
	}
	api := app.Group("/settings")
	api.GET("", handler.listSettings)
	api.GET("/:key", handler.getSetting)
	api.PUT("/:key", handler.upsertSetting)
	api.DELETE("/:key", handler.deleteSetting)
}

func (h *settingHandler) listSettings(c echo.Context) error {
	res, err := h.settingSvc.List(c.Request().Context())
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, res, len(res))
}

func (h *settingHandler) getSetting(c echo.Context) error {
	res, err := h.settingSvc.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return settingErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *settingHandler) upsertSetting(c echo.Context) error {
	req := new(models.UpsertSettingRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.settingSvc.Upsert(c.Request().Context(), c.Param("key"), *req)
	if err != nil {
		return settingErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *settingHandler) deleteSetting(c echo.Context) error {
	if err := h.settingSvc.Delete(c.Request().Context(), c.Param("key")); err != nil {
		return settingErrorResponse(c, err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}

func settingErrorResponse(c echo.Context, err error) error {
	var detail models.ErrorDetail
	if errors.As(err, &detail) && detail.Code == models.ErrKeySettingNotFound {
		return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
	}

	return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
}
