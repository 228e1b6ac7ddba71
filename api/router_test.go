package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api_i "github.com/beka-birhanu/aisle/api/i"
	routeapi "github.com/beka-birhanu/aisle/api/route"
	sessionapi "github.com/beka-birhanu/aisle/api/session"
	"github.com/beka-birhanu/aisle/catalog"
	"github.com/beka-birhanu/aisle/infrastruture/sessionstore"
	"github.com/beka-birhanu/aisle/infrastruture/token"
	"github.com/beka-birhanu/aisle/maze"
	"github.com/beka-birhanu/aisle/render"
	"github.com/beka-birhanu/aisle/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m, err := maze.Store()
	require.NoError(t, err)
	c, err := catalog.Default()
	require.NoError(t, err)

	routes, err := service.NewRouteService(m, c, render.New(), nopLogger{}, nil)
	require.NoError(t, err)
	tokenizer := token.NewJwtService("test-secret", "aisle-test")
	sessions, err := service.NewSessionService(service.SessionConfig{
		Store:     sessionstore.NewMemoryStore(),
		Routes:    routes,
		Catalog:   c,
		Tokenizer: tokenizer,
		Logger:    nopLogger{},
	})
	require.NoError(t, err)

	return NewRouter(Config{
		BaseURL: "/api",
		Controllers: []api_i.Controller{
			routeapi.NewController(routes),
			sessionapi.NewController(sessions),
		},
		AuthorizationMiddleware: sessionapi.Authorize(tokenizer),
	}).Engine()
}

func do(t *testing.T, e *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

var list = []routeapi.ItemDTO{
	{ID: "pulses-1", Name: "Flour"},
	{ID: "spices-2", Name: "Sugar"},
	{ID: "dairy-1", Name: "Eggs"},
	{ID: "dairy-4", Name: "Butter"},
}

func TestHealth(t *testing.T) {
	e := newTestEngine(t)
	w := do(t, e, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRoutes(t *testing.T) {
	e := newTestEngine(t)

	t.Run("compute", func(t *testing.T) {
		w := do(t, e, http.MethodPost, "/api/v1/routes", "", routeapi.RouteRequest{Items: list, CollectedCount: 2})
		require.Equal(t, http.StatusOK, w.Code)

		res := decode[routeapi.RouteResponse](t, w)
		assert.True(t, res.Success)
		assert.Equal(t, "Sugar", res.CollectItem)
		assert.Equal(t, 53, res.Target)
		assert.Equal(t, 77, res.Path[0])
		assert.Equal(t, int64(17), res.Cost)
		assert.Equal(t, 4, res.ItemsCount)
		assert.Equal(t, 2, res.CollectedCount)
		assert.Equal(t, []string{"dairy-4", "dairy-1", "spices-2", "pulses-1"}, res.Order)
		assert.Contains(t, res.SVG, "<svg")
	})

	errorCases := []struct {
		name string
		body interface{}
		code int
	}{
		{"unknown item", routeapi.RouteRequest{Items: []routeapi.ItemDTO{{ID: "caviar-1"}}}, http.StatusBadRequest},
		{"collected out of range", routeapi.RouteRequest{Items: list, CollectedCount: 9}, http.StatusBadRequest},
		{"missing id", map[string]interface{}{"items": []map[string]string{{"name": "Eggs"}}}, http.StatusBadRequest},
		{"not json", "nope", http.StatusBadRequest},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, e, http.MethodPost, "/api/v1/routes", "", tc.body)
			assert.Equal(t, tc.code, w.Code)
			res := decode[routeapi.ErrorResponse](t, w)
			assert.False(t, res.Success)
			assert.NotEmpty(t, res.Error)
		})
	}

	t.Run("layout", func(t *testing.T) {
		w := do(t, e, http.MethodGet, "/api/v1/routes/layout.svg", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), `viewBox="0 0 1718 1918"`)
	})
}

func TestSessions(t *testing.T) {
	e := newTestEngine(t)

	w := do(t, e, http.MethodPost, "/api/v1/sessions", "", sessionapi.StartRequest{Items: list})
	require.Equal(t, http.StatusCreated, w.Code)
	started := decode[sessionapi.StartResponse](t, w)
	require.NotEmpty(t, started.Token)
	base := "/api/v1/sessions/" + started.ID

	t.Run("requires a token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(t, e, http.MethodGet, base, "", nil).Code)
		assert.Equal(t, http.StatusUnauthorized, do(t, e, http.MethodGet, base, "forged", nil).Code)
	})

	t.Run("token is bound to its session", func(t *testing.T) {
		w := do(t, e, http.MethodPost, "/api/v1/sessions", "", sessionapi.StartRequest{Items: list[:1]})
		require.Equal(t, http.StatusCreated, w.Code)
		other := decode[sessionapi.StartResponse](t, w)
		assert.Equal(t, http.StatusForbidden, do(t, e, http.MethodGet, base, other.Token, nil).Code)
		assert.Equal(t, http.StatusBadRequest, do(t, e, http.MethodGet, "/api/v1/sessions/not-a-uuid", started.Token, nil).Code)
	})

	t.Run("walk the list", func(t *testing.T) {
		w := do(t, e, http.MethodGet, base, started.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		s := decode[sessionapi.SessionResponse](t, w)
		assert.Equal(t, 4, s.ItemsCount)
		assert.Equal(t, 0, s.CollectedCount)

		w = do(t, e, http.MethodPost, base+"/prev", started.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, decode[sessionapi.SessionResponse](t, w).CollectedCount)

		for k := 0; k < 2; k++ {
			w = do(t, e, http.MethodPost, base+"/next", started.Token, nil)
			require.Equal(t, http.StatusOK, w.Code)
		}
		assert.Equal(t, 2, decode[sessionapi.SessionResponse](t, w).CollectedCount)

		w = do(t, e, http.MethodGet, base+"/route", started.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[routeapi.RouteResponse](t, w)
		assert.Equal(t, "Sugar", res.CollectItem)
		assert.Equal(t, 2, res.CollectedCount)
	})

	t.Run("empty list", func(t *testing.T) {
		w := do(t, e, http.MethodPost, "/api/v1/sessions", "", sessionapi.StartRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
