package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/middleware"
	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
	"github.com/iliyamo/expo-management/internal/repository/memory"
	"github.com/iliyamo/expo-management/internal/service"
)

func newService(t *testing.T) (*service.Service, policy.Actor) {
	t.Helper()
	svc := service.New(memory.New(), memory.NewTokenRepo(), service.Config{
		StoreTimeout: time.Second,
		BcryptCost:   bcrypt.MinCost,
		JWTSecret:    "test-secret",
	})
	u, err := svc.CreateAdmin(context.Background(), service.RegisterInput{
		Username: "root", Email: "admin@expo.test", Password: "admin-pass", Address: "HQ",
	})
	require.NoError(t, err)
	return svc, policy.Actor{ID: u.ID, Role: u.Role}
}

// call runs h with the given actor and body, bypassing routing.
func call(h echo.HandlerFunc, method, body string, who policy.Actor, params ...string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	middleware.SetActor(c, who)
	_ = h(c)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestWriteErrorStatuses(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperr.Validation("bad"), http.StatusBadRequest},
		{apperr.Conflict("dup"), http.StatusConflict},
		{apperr.NotFound("gone"), http.StatusNotFound},
		{apperr.Forbidden("no"), http.StatusForbidden},
		{apperr.Unauthenticated("who"), http.StatusUnauthorized},
		{apperr.Timeout(context.DeadlineExceeded, "slow"), http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := call(func(c echo.Context) error { return writeError(c, tc.err) }, http.MethodGet, "", policy.Anonymous)
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
	}

	rec := call(func(c echo.Context) error { return writeError(c, errors.New("socket closed")) }, http.MethodGet, "", policy.Anonymous)
	assert.Equal(t, "internal error", decode(t, rec)["error"])
}

func TestWriteErrorReportsPartialCascade(t *testing.T) {
	warn := &service.IntegrityWarning{
		Op:        "user",
		Completed: []string{"session_rosters", "feedback"},
		Failed:    "messages",
		Err:       errors.New("store down"),
	}
	rec := call(func(c echo.Context) error { return writeError(c, warn) }, http.MethodDelete, "", policy.Anonymous)

	assert.Equal(t, http.StatusMultiStatus, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "messages", body["failed"])
	assert.Equal(t, []any{"session_rosters", "feedback"}, body["completed"])
}

func TestBindJSONRejectsUnknownFields(t *testing.T) {
	var patch model.ExpoPatch
	rec := call(func(c echo.Context) error {
		if err := bindJSON(c, &patch); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}, http.MethodPut, `{"title":"x","exhibitors":[]}`, policy.Anonymous)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "unknown field")
}

func TestBindJSONRequiresBody(t *testing.T) {
	var in service.ExpoInput
	rec := call(func(c echo.Context) error { return writeError(c, bindJSON(c, &in)) }, http.MethodPost, "", policy.Anonymous)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var opt refreshReq
	rec = call(func(c echo.Context) error {
		if err := bindOptionalJSON(c, &opt); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}, http.MethodPost, "", policy.Anonymous)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestExpoHandlerLifecycle(t *testing.T) {
	svc, admin := newService(t)
	h := NewExpoHandler(svc)

	body := `{"title":"Tech Expo","description":"d","theme":"AI","date":"2030-05-01T09:00:00Z","location":"Hall A"}`
	rec := call(h.CreateExpo, http.MethodPost, body, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decode(t, rec)["id"].(string)

	rec = call(h.ListExpos, http.MethodGet, "", policy.Anonymous)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["items"], 1)

	rec = call(h.UpdateExpo, http.MethodPut, `{"theme":"Robotics"}`, admin, "id", id)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Robotics", decode(t, rec)["theme"])

	rec = call(h.GetExpo, http.MethodGet, "", policy.Anonymous, "id", "not-an-id")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(h.DeleteExpo, http.MethodDelete, "", admin, "id", id)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(h.GetExpo, http.MethodGet, "", policy.Anonymous, "id", id)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListingsAreNeverNull(t *testing.T) {
	svc, admin := newService(t)

	rec := call(NewEngagementHandler(svc).ListFeedback, http.MethodGet, "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestMessagesFilteredBySenderRole(t *testing.T) {
	svc, admin := newService(t)
	ctx := context.Background()
	u, err := svc.CreateUser(ctx, policy.Anonymous, service.RegisterInput{
		Username: "ann", Email: "ann@expo.test", Password: "secret-pw", Address: "Street 1", Role: "attendee",
	})
	require.NoError(t, err)
	ann := policy.Actor{ID: u.ID, Role: u.Role}
	h := NewEngagementHandler(svc)

	body := `{"receiverId":"` + admin.ID.Hex() + `","message":"hello","senderName":"Ann","senderEmail":"ann@expo.test"}`
	rec := call(h.SendMessage, http.MethodPost, body, ann)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(h.AttendeeMessages, http.MethodGet, "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["items"], 1)

	rec = call(h.ExhibitorMessages, http.MethodGet, "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["items"], 0)

	rec = call(h.AttendeeMessages, http.MethodGet, "", ann)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestForgotPasswordExposesTokenOnlyInDev(t *testing.T) {
	svc, _ := newService(t)
	body := `{"email":"admin@expo.test"}`

	rec := call(NewAuthHandler(svc, false).ForgotPassword, http.MethodPost, body, policy.Anonymous)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, decode(t, rec), "resetToken")

	rec = call(NewAuthHandler(svc, true).ForgotPassword, http.MethodPost, body, policy.Anonymous)
	require.Equal(t, http.StatusOK, rec.Code)
	token, _ := decode(t, rec)["resetToken"].(string)
	require.NotEmpty(t, token)

	rec = call(NewAuthHandler(svc, true).ResetPassword, http.MethodPost, `{"password":"new-secret"}`, policy.Anonymous, "token", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := call((&HealthHandler{}).Health, http.MethodGet, "", policy.Anonymous)
	assert.Equal(t, http.StatusOK, rec.Code)

	down := &HealthHandler{Ping: func(context.Context) error { return errors.New("no primary") }}
	rec = call(down.Health, http.MethodGet, "", policy.Anonymous)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
