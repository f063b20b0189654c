package rules

import (
	"errors"
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common/http"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/validation"
	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
	"github.com/rommsen/BudgetBuddy-sub000/internal/services"
)

type ruleHandler struct {
	ruleSvc services.RuleService
}

// New rule handler will initialize the rules/ resources endpoint
func New(app *echo.Group, ruleSvc services.RuleService) {
	handler := ruleHandler{
		ruleSvc: ruleSvc,
	}
	api := app.Group("/rules")
	api.POST("", handler.createRule)
	api.GET("", handler.listRules)
	api.GET("/:id", handler.getRule)
	api.PUT("/:id", handler.updateRule)
	api.DELETE("/:id", handler.deleteRule)
}

func (h *ruleHandler) createRule(c echo.Context) error {
	req := new(models.CreateRuleRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.ruleSvc.Create(c.Request().Context(), req.ConvertToCreateRuleIn())
	if err != nil {
		return ruleErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res)
}

func (h *ruleHandler) listRules(c echo.Context) error {
	opts := models.ListRulesOptions{
		EnabledOnly: c.QueryParam("enabled") == "true",
	}

	res, err := h.ruleSvc.List(c.Request().Context(), opts)
	if err != nil {
		return ruleErrorResponse(c, err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, res, len(res))
}

func (h *ruleHandler) getRule(c echo.Context) error {
	id, err := parseRuleID(c)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	res, err := h.ruleSvc.Get(c.Request().Context(), id)
	if err != nil {
		return ruleErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *ruleHandler) updateRule(c echo.Context) error {
	id, err := parseRuleID(c)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	req := new(models.CreateRuleRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.ruleSvc.Update(c.Request().Context(), models.UpdateRuleIn{
		ID:           id,
		CreateRuleIn: req.ConvertToCreateRuleIn(),
	})
	if err != nil {
		return ruleErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *ruleHandler) deleteRule(c echo.Context) error {
	id, err := parseRuleID(c)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := h.ruleSvc.Delete(c.Request().Context(), id); err != nil {
		return ruleErrorResponse(c, err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}

func parseRuleID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func ruleErrorResponse(c echo.Context, err error) error {
	var detail models.ErrorDetail
	if errors.As(err, &detail) {
		switch detail.Code {
		case models.ErrKeyRuleNotFound:
			return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
		case models.ErrKeyRulePatternInvalid:
			return http.RestErrorResponse(c, nethttp.StatusUnprocessableEntity, err)
		}
	}

	return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
}
