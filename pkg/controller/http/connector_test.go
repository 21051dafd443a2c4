package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	controller "github.com/m-mizutani/rtcfetch/pkg/controller/http"
	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
	"github.com/m-mizutani/rtcfetch/pkg/usecase"
)

// mockFetchUseCase records fetch requests
type mockFetchUseCase struct {
	mu     sync.Mutex
	params []*model.ConnectionParams
	done   chan struct{}
}

func (m *mockFetchUseCase) Fetch(ctx context.Context, params *model.ConnectionParams) (*model.FetchResult, error) {
	m.mu.Lock()
	m.params = append(m.params, params)
	m.mu.Unlock()
	if m.done != nil {
		m.done <- struct{}{}
	}
	return &model.FetchResult{Status: model.FetchStatusSucceeded}, nil
}

func (m *mockFetchUseCase) FetchAll(ctx context.Context, sources []*model.Source) []*model.FetchResult {
	return nil
}

func newTestServer(t *testing.T, fetchUC *mockFetchUseCase) http.Handler {
	t.Helper()
	server, err := controller.NewServer(context.Background(), fetchUC, usecase.NewMetadata())
	gt.NoError(t, err)
	return server.Handler
}

func TestConnectionDataEndpoint(t *testing.T) {
	handler := newTestServer(t, &mockFetchUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/connection", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	gt.Equal(t, w.Code, http.StatusOK)

	var data model.ConnectionData
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&data))
	gt.Equal(t, data.ConnectionType, "RationalTeamConcert")
	gt.Value(t, data.Fields).Equal([]string{
		"server_url", "project_area", "repository_workspace", "username", "password", "target_directory",
	})
}

func TestIconEndpoint(t *testing.T) {
	handler := newTestServer(t, &mockFetchUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/icon.svg", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	gt.Equal(t, w.Code, http.StatusOK)
	gt.Equal(t, w.Header().Get("Content-Type"), "image/svg+xml")
	gt.Equal(t, w.Body.String(), usecase.DefaultIcon)
}

func TestFetchEndpoint(t *testing.T) {
	t.Run("accepts complete parameters", func(t *testing.T) {
		fetchUC := &mockFetchUseCase{done: make(chan struct{}, 1)}
		handler := newTestServer(t, fetchUC)

		body := `{
			"server_url": "https://rtc.example.com/ccm",
			"project_area": "Core Platform",
			"repository_workspace": "Core Stream Workspace",
			"target_directory": "/srv/rtc/core",
			"username": "alice",
			"password": "s3cret"
		}`
		req := httptest.NewRequest(http.MethodPost, "/fetch", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusAccepted)

		select {
		case <-fetchUC.done:
		case <-time.After(time.Second):
			t.Fatal("fetch was not dispatched")
		}

		fetchUC.mu.Lock()
		defer fetchUC.mu.Unlock()
		gt.Equal(t, len(fetchUC.params), 1)
		gt.Equal(t, fetchUC.params[0].RepositoryWorkspace, "Core Stream Workspace")
		gt.Equal(t, fetchUC.params[0].Password, model.Password("s3cret"))
	})

	t.Run("rejects missing parameters", func(t *testing.T) {
		fetchUC := &mockFetchUseCase{}
		handler := newTestServer(t, fetchUC)

		req := httptest.NewRequest(http.MethodPost, "/fetch", strings.NewReader(`{"server_url": "https://rtc.example.com/ccm"}`))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusBadRequest)
		gt.String(t, w.Body.String()).Contains("target_directory")
		gt.Equal(t, len(fetchUC.params), 0)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		handler := newTestServer(t, &mockFetchUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/fetch", strings.NewReader(`{not json`))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusBadRequest)
		gt.String(t, w.Body.String()).Contains("invalid JSON payload")
	})
}
