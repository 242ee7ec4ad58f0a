package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"geoportal/internal/errors"
	"geoportal/internal/model"
	"geoportal/internal/service"
)

// SpatialDataHandler handles layer metadata endpoints.
type SpatialDataHandler struct {
	svc service.SpatialDataService
}

// NewSpatialDataHandler creates a new spatial data handler.
func NewSpatialDataHandler(svc service.SpatialDataService) *SpatialDataHandler {
	return &SpatialDataHandler{svc: svc}
}

// CreateSpatialDataRequest represents a layer creation request.
type CreateSpatialDataRequest struct {
	Name        string         `json:"name" validate:"required"`
	Category    model.Category `json:"category" validate:"required,oneof=green_area building road poi other"`
	Description string         `json:"description"`
	Group       string         `json:"group"`
	WFSGetURL   string         `json:"wfsGetUrl"`
	WFSPostURL  string         `json:"wfsPostUrl"`
}

// UpdateSpatialDataRequest is a partial layer update. Omitted fields keep
// their stored values; fields sent as empty strings are cleared, except
// name and category which must stay non-empty.
type UpdateSpatialDataRequest struct {
	Name        *string         `json:"name"`
	Category    *model.Category `json:"category"`
	Description *string         `json:"description"`
	Group       *string         `json:"group"`
	WFSGetURL   *string         `json:"wfsGetUrl"`
	WFSPostURL  *string         `json:"wfsPostUrl"`
}

// MessageResponse is the payload of destructive operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// List godoc
// @Summary List all spatial layers
// @Tags spatial-data
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.SpatialData
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /spatial-data [get]
func (h *SpatialDataHandler) List(c echo.Context) error {
	layers, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, layers)
}

// Create godoc
// @Summary Create a spatial layer
// @Tags spatial-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSpatialDataRequest true "Layer metadata"
// @Success 201 {object} model.SpatialData
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /spatial-data [post]
func (h *SpatialDataHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateSpatialDataRequest
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

	layer, err := h.svc.Create(c.Request().Context(), service.CreateSpatialDataInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Group:       req.Group,
		WFSGetURL:   req.WFSGetURL,
		WFSPostURL:  req.WFSPostURL,
	}, claims.Role)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, layer)
}

// Update godoc
// @Summary Update a spatial layer
// @Tags spatial-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Layer ID"
// @Param request body UpdateSpatialDataRequest true "Fields to update"
// @Success 200 {object} model.SpatialData
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /spatial-data/{id} [put]
func (h *SpatialDataHandler) Update(c echo.Context) error {
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

	var req UpdateSpatialDataRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	layer, err := h.svc.Update(c.Request().Context(), uint(id), service.UpdateSpatialDataInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Group:       req.Group,
		WFSGetURL:   req.WFSGetURL,
		WFSPostURL:  req.WFSPostURL,
	}, claims.Role)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, layer)
}

// Delete godoc
// @Summary Delete a spatial layer
// @Tags spatial-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Layer ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /spatial-data/{id} [delete]
func (h *SpatialDataHandler) Delete(c echo.Context) error {
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

	return c.JSON(http.StatusOK, MessageResponse{Message: "Data deleted successfully"})
}
