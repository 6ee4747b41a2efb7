package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/expo-management/internal/config"
	"github.com/iliyamo/expo-management/internal/handler"
	"github.com/iliyamo/expo-management/internal/metrics"
	"github.com/iliyamo/expo-management/internal/repository/memory"
	"github.com/iliyamo/expo-management/internal/service"
)

type api struct {
	t *testing.T
	e *echo.Echo
}

func newAPI(t *testing.T, with ...func(*Options)) *api {
	t.Helper()
	reg := prometheus.NewRegistry()
	svc := service.New(memory.New(), memory.NewTokenRepo(), service.Config{
		StoreTimeout: time.Second,
		BcryptCost:   bcrypt.MinCost,
		JWTSecret:    "router-secret",
	}, service.WithMetrics(metrics.New(reg)))
	_, err := svc.CreateAdmin(context.Background(), service.RegisterInput{
		Username: "root", Email: "admin@expo.test", Password: "admin-pass", Address: "HQ",
	})
	require.NoError(t, err)

	opts := Options{
		JWTSecret:   "router-secret",
		CORSOrigins: []string{"*"},
		Logger:      zerolog.Nop(),
		Gatherer:    reg,
	}
	for _, fn := range with {
		fn(&opts)
	}
	e := New(Handlers{
		Health:     &handler.HealthHandler{},
		Auth:       handler.NewAuthHandler(svc, false),
		Expo:       handler.NewExpoHandler(svc),
		Exhibitor:  handler.NewExhibitorHandler(svc),
		Engagement: handler.NewEngagementHandler(svc),
		Analytics:  handler.NewAnalyticsHandler(svc),
	}, opts)
	return &api{t: t, e: e}
}

func (a *api) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *api) login(email, password string) string {
	rec := a.do(http.MethodPost, "/v1/auth/login", "", `{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())
	var out struct {
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.Access.Token
}

func (a *api) register(role, email string) string {
	body := `{"username":"u","email":"` + email + `","password":"secret-pw","address":"Street 1","role":"` + role + `"}`
	rec := a.do(http.MethodPost, "/v1/auth/register", "", body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return a.login(email, "secret-pw")
}

func TestHealthAndMetrics(t *testing.T) {
	a := newAPI(t)

	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/healthz", "", "").Code)

	rec := a.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "expo_users_created_total")
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	a := newAPI(t)

	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, "/v1/auth/profile", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, "/v1/bookmarks", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodGet, "/v1/bookmarks", "garbage", "").Code)
}

func TestRolesFollowPolicyTable(t *testing.T) {
	a := newAPI(t)
	attendee := a.register("attendee", "ann@expo.test")
	exhibitor := a.register("exhibitor", "acme@expo.test")
	admin := a.login("admin@expo.test", "admin-pass")

	assert.Equal(t, http.StatusForbidden, a.do(http.MethodGet, "/v1/analytics/dashboard", attendee, "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/v1/analytics/dashboard", admin, "").Code)

	assert.Equal(t, http.StatusForbidden, a.do(http.MethodGet, "/v1/bookmarks", exhibitor, "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/v1/bookmarks", attendee, "").Code)

	assert.Equal(t, http.StatusForbidden, a.do(http.MethodDelete, "/v1/auth/delete-account", exhibitor, "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/v1/auth/profile", exhibitor, "").Code)
}

func TestCatalogFlow(t *testing.T) {
	a := newAPI(t)
	admin := a.login("admin@expo.test", "admin-pass")
	exhibitor := a.register("exhibitor", "acme@expo.test")

	rec := a.do(http.MethodPost, "/v1/expos", admin,
		`{"title":"Tech Expo","description":"d","theme":"AI","date":"2030-05-01T09:00:00Z","location":"Hall A"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var expo struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &expo))

	rec = a.do(http.MethodPost, "/v1/expos", exhibitor,
		`{"title":"Other","description":"d","theme":"AI","date":"2030-05-01T09:00:00Z","location":"Hall B"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = a.do(http.MethodPut, "/v1/expos/"+expo.ID, admin, `{"createdAt":"2020-01-01T00:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, "/v1/expos", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tech Expo")

	rec = a.do(http.MethodPost, "/v1/booths", admin, `{"expoId":"`+expo.ID+`","boothNumber":"A-1","location":"First Floor"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(http.MethodGet, "/v1/booths/available", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "A-1")

	rec = a.do(http.MethodPost, "/v1/exhibitors", exhibitor,
		`{"companyName":"Acme","productsOrServices":"Widgets","contactInfo":"acme@expo.test"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(http.MethodGet, "/v1/exhibitors?search=widg", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme")

	rec = a.do(http.MethodGet, "/v1/booths/my", exhibitor, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestLogoutRevokesRefreshTokens(t *testing.T) {
	a := newAPI(t)
	body := `{"username":"u","email":"ann@expo.test","password":"secret-pw","address":"Street 1","role":"attendee"}`
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/v1/auth/register", "", body).Code)

	rec := a.do(http.MethodPost, "/v1/auth/login", "", `{"email":"ann@expo.test","password":"secret-pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Access  struct{ Token string } `json:"access"`
		Refresh struct{ Token string } `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodPost, "/v1/auth/logout", out.Access.Token, "").Code)

	rec = a.do(http.MethodPost, "/v1/auth/refresh", "", `{"refresh_token":"`+out.Refresh.Token+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func withRedisCache(t *testing.T) func(*Options) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return func(o *Options) {
		o.Redis = rdb
		o.Cache = config.CacheConfig{
			Enabled:      true,
			Methods:      map[string]bool{http.MethodGet: true},
			TTL:          time.Minute,
			Prefix:       "cache",
			MaxBodyBytes: 1 << 20,
		}
	}
}

func (a *api) created(method, path, token, body string) string {
	rec := a.do(method, path, token, body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.ID
}

func TestBoothListingsFollowAssignments(t *testing.T) {
	a := newAPI(t, withRedisCache(t))
	admin := a.login("admin@expo.test", "admin-pass")
	exhibitor := a.register("exhibitor", "acme@expo.test")

	expoID := a.created(http.MethodPost, "/v1/expos", admin,
		`{"title":"Tech Expo","description":"d","theme":"AI","date":"2030-05-01T09:00:00Z","location":"Hall A"}`)
	exhibitorID := a.created(http.MethodPost, "/v1/exhibitors", exhibitor,
		`{"companyName":"Acme","productsOrServices":"Widgets","contactInfo":"acme@expo.test"}`)
	boothID := a.created(http.MethodPost, "/v1/booths", admin,
		`{"expoId":"`+expoID+`","boothNumber":"A-1","location":"First Floor"}`)

	// the catalog listings do go through the cache
	assert.Equal(t, "MISS", a.do(http.MethodGet, "/v1/expos", "", "").Header().Get("X-Cache"))
	assert.Equal(t, "HIT", a.do(http.MethodGet, "/v1/expos", "", "").Header().Get("X-Cache"))

	for i := 0; i < 2; i++ {
		rec := a.do(http.MethodGet, "/v1/booths/available", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "A-1")
		assert.Empty(t, rec.Header().Get("X-Cache"))
	}

	rec := a.do(http.MethodPut, "/v1/booths/"+boothID, admin, `{"exhibitorId":"`+exhibitorID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(http.MethodGet, "/v1/booths/available", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())

	rec = a.do(http.MethodGet, "/v1/booths/reserved", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "A-1")
	assert.Empty(t, rec.Header().Get("X-Cache"))
}
