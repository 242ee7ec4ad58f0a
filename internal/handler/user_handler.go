package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"geoportal/internal/errors"
	"geoportal/internal/service"
)

// UserHandler bundles user HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CountResponse represents the user count payload.
type CountResponse struct {
	Count int64 `json:"count"`
}

// Count godoc
// @Summary Number of registered users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CountResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/count [get]
func (h *UserHandler) Count(c echo.Context) error {
	count, err := h.svc.Count(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, CountResponse{Count: count})
}
