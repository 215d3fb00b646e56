package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/config"
	deliveryhttp "github.com/zoo-visit-planner/internal/delivery/http"
	"github.com/zoo-visit-planner/internal/delivery/http/handler"
	"github.com/zoo-visit-planner/internal/repository/cache"
	"github.com/zoo-visit-planner/internal/repository/catalog"
	"github.com/zoo-visit-planner/internal/repository/memory"
	"github.com/zoo-visit-planner/internal/repository/plans"
	"github.com/zoo-visit-planner/internal/usecase"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *deliveryhttp.Server {
	t.Helper()
	log := zap.NewNop()

	cat, err := catalog.NewDefault(log)
	require.NoError(t, err)
	planRepo := plans.NewPlanRepository(memory.NewKVStore(), "", log)
	noop := cache.NewNoopCacheRepository()
	sessions := usecase.NewSessionStore(time.Hour, nil, log)

	handlers := deliveryhttp.Handlers{
		Catalog: handler.NewCatalogHandler(usecase.NewCatalogUseCase(cat, log), log),
		Session: handler.NewSessionHandler(usecase.NewPlannerUseCase(sessions, cat, log), log),
		Plan:    handler.NewPlanHandler(usecase.NewPlanUseCase(planRepo, cat, sessions, noop, nil, log), log),
		Map:     handler.NewMapHandler(usecase.NewMapUseCase(sessions, cat, noop, usecase.MapOptions{}, log), log),
		Stats:   handler.NewStatsHandler(usecase.NewStatsUseCase(plans.NewStatsRepository(cat, planRepo, log), noop, 0, log), log),
	}
	return deliveryhttp.NewServer(&config.Config{}, log, handlers, func(context.Context) error { return nil })
}

func do(t *testing.T, s *deliveryhttp.Server, method, path, body string) (int, envelope, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp.StatusCode, env, string(raw)
}

func TestServer_Health(t *testing.T) {
	status, _, body := do(t, newTestServer(t), http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "healthy")
}

func TestServer_Catalog(t *testing.T) {
	s := newTestServer(t)

	status, env, _ := do(t, s, http.MethodGet, "/api/v1/locations?filter=dining", "")
	require.Equal(t, http.StatusOK, status)
	var locations struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &locations))
	assert.Equal(t, 3, locations.Total)

	status, env, _ = do(t, s, http.MethodGet, "/api/v1/locations/nessie", "")
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "LOCATION_NOT_FOUND", env.Error.Code)

	status, _, body := do(t, s, http.MethodGet, "/api/v1/tours", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Wildlife Explorer")
}

func TestServer_PlanningFlow(t *testing.T) {
	s := newTestServer(t)

	status, env, _ := do(t, s, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, status)
	var session struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	base := "/api/v1/sessions/" + session.SessionID

	status, env, _ = do(t, s, http.MethodPost, base+"/route", "")
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "EMPTY_SELECTION", env.Error.Code)

	status, _, _ = do(t, s, http.MethodPost, base+"/selection/toggle", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)

	for _, id := range []string{"lion", "giraffe", "elephant"} {
		status, _, _ = do(t, s, http.MethodPost, base+"/selection/toggle", `{"location_id":"`+id+`"}`)
		require.Equal(t, http.StatusOK, status)
	}

	status, env, _ = do(t, s, http.MethodPost, base+"/route", "")
	require.Equal(t, http.StatusOK, status)
	var route struct {
		Route []struct {
			ID string `json:"id"`
		} `json:"route"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &route))
	require.Len(t, route.Route, 3)
	assert.Equal(t, "lion", route.Route[0].ID)
	assert.Equal(t, "giraffe", route.Route[1].ID)
	assert.Equal(t, "elephant", route.Route[2].ID)

	status, _, svg := do(t, s, http.MethodGet, base+"/map.svg?width=400&dpr=2", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="350" viewBox="0 0 400 175">`))

	status, _, _ = do(t, s, http.MethodGet, base+"/map/hit?x=10", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, env, _ = do(t, s, http.MethodGet, base+"/map/hit?x=385.44&y=73.07", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"hit":true`)

	status, env, _ = do(t, s, http.MethodPost, base+"/plans", `{"name":"Big cats","visitors":3}`)
	require.Equal(t, http.StatusCreated, status)
	var plan struct {
		ID    int64    `json:"id"`
		Route []string `json:"route"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &plan))
	assert.Equal(t, []string{"lion", "giraffe", "elephant"}, plan.Route)

	status, _, _ = do(t, s, http.MethodPost, base+"/plans", `{"date":"tomorrow"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _, body := do(t, s, http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"lion"`)

	status, _, _ = do(t, s, http.MethodPost, "/api/v1/stats/refresh", "")
	assert.Equal(t, http.StatusOK, status)

	status, env, _ = do(t, s, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, status)
	var other struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &other))
	status, env, _ = do(t, s, http.MethodPost, "/api/v1/sessions/"+other.SessionID+"/plans/"+jsonInt(plan.ID)+"/load", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"count":3`)

	status, _, _ = do(t, s, http.MethodDelete, "/api/v1/plans/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _, _ = do(t, s, http.MethodDelete, "/api/v1/plans/"+jsonInt(plan.ID), "")
	assert.Equal(t, http.StatusOK, status)

	status, env, _ = do(t, s, http.MethodGet, "/api/v1/plans", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"total":0`)
}

func TestServer_UnknownSession(t *testing.T) {
	status, env, _ := do(t, newTestServer(t), http.MethodGet, "/api/v1/sessions/0b6f4c4e-0000-4000-8000-000000000000/selection", "")
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SESSION_NOT_FOUND", env.Error.Code)
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
