package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"geoportal/internal/errors"
	"geoportal/internal/service"
)

// LogHandler handles audit log endpoints.
type LogHandler struct {
	svc service.LogService
}

// NewLogHandler creates a new log handler.
func NewLogHandler(svc service.LogService) *LogHandler {
	return &LogHandler{svc: svc}
}

// CreateLogRequest represents an audit entry creation request. The acting
// user is taken from the verified token, never from the body.
type CreateLogRequest struct {
	ActionType    string `json:"actionType" validate:"required"`
	ActionDetails string `json:"actionDetails"`
	IsSuccess     *bool  `json:"isSuccess"`
	Device        string `json:"device"`
}

// List godoc
// @Summary List audit log entries with user name and role
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.LogView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logs [get]
func (h *LogHandler) List(c echo.Context) error {
	views, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, views)
}

// Create godoc
// @Summary Record a user action
// @Tags logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLogRequest true "Action data"
// @Success 201 {object} model.Log
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logs [post]
func (h *LogHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
	}

	entry, err := h.svc.Record(c.Request().Context(), claims.UserID, service.RecordLogInput{
		ActionType:    req.ActionType,
		ActionDetails: req.ActionDetails,
		IsSuccess:     req.IsSuccess,
		Device:        req.Device,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, entry)
}

// Delete godoc
// @Summary Delete an audit log entry
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Log ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logs/{id} [delete]
func (h *LogHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid id",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id), claims.Role); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Log deleted successfully"})
}
