package sync

import (
	"errors"
	nethttp "net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/http"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/validation"
	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
	"github.com/rommsen/BudgetBuddy-sub000/internal/services"
)

type syncHandler struct {
	syncSvc services.SyncService
}

// New sync handler will initialize the sync/ resources endpoint
func New(app *echo.Group, syncSvc services.SyncService) {
	handler := syncHandler{
		syncSvc: syncSvc,
	}
	api := app.Group("/sync")
	api.POST("", handler.startSync)
	api.GET("", handler.currentSession)
	api.DELETE("", handler.clearSession)
	api.POST("/challenge", handler.beginChallenge)
	api.POST("/challenge/confirm", handler.confirmChallenge)
	api.PATCH("/transactions/:id", handler.updateTransaction)
	api.PUT("/transactions/:id/splits", handler.setSplits)
	api.DELETE("/transactions/:id/splits", handler.clearSplits)
	api.POST("/import", handler.importSession)
	api.POST("/reimport", handler.reimportSession)
	api.POST("/cancel", handler.cancelSession)
}

func (h *syncHandler) startSync(c echo.Context) error {
	res, err := h.syncSvc.Start(c.Request().Context())
	if err != nil {
		return syncErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res)
}

func (h *syncHandler) currentSession(c echo.Context) error {
	res, err := h.syncSvc.Current(c.Request().Context())
	if err != nil {
		return syncErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *syncHandler) clearSession(c echo.Context) error {
	if err := h.syncSvc.Clear(c.Request().Context()); err != nil {
		return syncErrorResponse(c, err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}

func (h *syncHandler) beginChallenge(c echo.Context) error {
	res, err := h.syncSvc.BeginChallenge(c.Request().Context())
	if err != nil {
		return syncErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *syncHandler) confirmChallenge(c echo.Context) error {
	res, err := h.syncSvc.ConfirmChallenge(c.Request().Context())
	if err != nil {
		return syncErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *syncHandler) updateTransaction(c echo.Context) error {
	req := new(models.UpdateTransactionRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.syncSvc.UpdateTransaction(c.Request().Context(), c.Param("id"), *req)
	if err != nil {
		return syncErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *syncHandler) setSplits(c echo.Context) error {
	req := new(models.CreateSplitsRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.syncSvc.SetSplits(c.Request().Context(), c.Param("id"), *req)
	if err != nil {
		return syncErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *syncHandler) clearSplits(c echo.Context) error {
	res, err := h.syncSvc.ClearSplits(c.Request().Context(), c.Param("id"))
	if err != nil {
		return syncErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *syncHandler) importSession(c echo.Context) error {
	res, err := h.syncSvc.Import(c.Request().Context())
	if err != nil {
		return syncErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *syncHandler) reimportSession(c echo.Context) error {
	req := new(models.ReimportRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.syncSvc.Reimport(c.Request().Context(), *req)
	if err != nil {
		return syncErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *syncHandler) cancelSession(c echo.Context) error {
	res, err := h.syncSvc.Cancel(c.Request().Context())
	if err != nil {
		return syncErrorResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

// syncErrorResponse maps orchestrator errors onto the HTTP surface: session
// lifecycle conflicts become 409, unknown ids 404, split/amount problems 422
// and upstream bank or ledger failures 502.
func syncErrorResponse(c echo.Context, err error) error {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return http.RestErrorValidationResponse(c, merr)
	}

	var detail models.ErrorDetail
	if errors.As(err, &detail) {
		switch detail.Code {
		case models.ErrKeySessionAlreadyActive,
			models.ErrKeySessionInvalidState,
			models.ErrKeySessionNotCancellable,
			models.ErrKeyTransactionNotRejected:
			return http.RestErrorResponse(c, nethttp.StatusConflict, err)
		case models.ErrKeySessionNotFound,
			models.ErrKeyTransactionNotFound:
			return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
		}
	}

	switch {
	case errors.Is(err, common.ErrValidation):
		return http.RestErrorResponse(c, nethttp.StatusUnprocessableEntity, err)
	case errors.Is(err, common.ErrBankAuthFailed),
		errors.Is(err, common.ErrBankChallengeFailed),
		errors.Is(err, common.ErrBankFetchFailed),
		errors.Is(err, common.ErrLedgerUnavailable):
		return http.RestErrorResponse(c, nethttp.StatusBadGateway, err)
	}

	return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
}
