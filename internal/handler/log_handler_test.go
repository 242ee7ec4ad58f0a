package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"geoportal/internal/auth"
	apperrors "geoportal/internal/errors"
	"geoportal/internal/model"
	"geoportal/internal/service"
)

// stubLogService returns canned results so the tests exercise only the
// HTTP mapping.
type stubLogService struct {
	entry     *model.Log
	views     []model.LogView
	recordErr error
	deleteErr error

	lastUserID uint
	lastInput  service.RecordLogInput
}

func (s *stubLogService) Record(ctx context.Context, userID uint, in service.RecordLogInput) (*model.Log, error) {
	s.lastUserID = userID
	s.lastInput = in
	if s.recordErr != nil {
		return nil, s.recordErr
	}
	return s.entry, nil
}

func (s *stubLogService) List(ctx context.Context) ([]model.LogView, error) {
	return s.views, nil
}

func (s *stubLogService) Delete(ctx context.Context, id uint, callerRole model.Role) error {
	return s.deleteErr
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newContext(t *testing.T, method, target, body string, claims *auth.Claims) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, claims))
	}
	return c, rec
}

func TestLogHandler_Delete_NonAdminGets403(t *testing.T) {
	svc := &stubLogService{deleteErr: apperrors.ErrForbidden}
	h := NewLogHandler(svc)

	c, _ := newContext(t, http.MethodDelete, "/api/logs/1", "", &auth.Claims{UserID: 2, Role: model.RoleUser})
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.Delete(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestLogHandler_Delete_MissingClaimsGets401(t *testing.T) {
	h := NewLogHandler(&stubLogService{})

	c, _ := newContext(t, http.MethodDelete, "/api/logs/1", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.Delete(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestLogHandler_Create_UsesTokenUserID(t *testing.T) {
	svc := &stubLogService{entry: &model.Log{
		ID:         7,
		UserID:     3,
		ActionType: "copy",
		IsSuccess:  true,
		Device:     "Unknown",
		Timestamp:  time.Now(),
	}}
	h := NewLogHandler(svc)

	c, rec := newContext(t, http.MethodPost, "/api/logs", `{"actionType":"copy"}`, &auth.Claims{UserID: 3, Role: model.RoleUser})

	err := h.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, uint(3), svc.lastUserID)
	assert.Equal(t, "copy", svc.lastInput.ActionType)
	assert.Contains(t, rec.Body.String(), `"isSuccess":true`)
	assert.Contains(t, rec.Body.String(), `"device":"Unknown"`)
}

func TestLogHandler_Create_MissingActionTypeGets400(t *testing.T) {
	h := NewLogHandler(&stubLogService{})

	c, _ := newContext(t, http.MethodPost, "/api/logs", `{"actionDetails":"no type"}`, &auth.Claims{UserID: 3, Role: model.RoleUser})

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
