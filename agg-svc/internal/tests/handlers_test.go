package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "restaurant-digital/agg-svc/internal/api/http"
	"restaurant-digital/agg-svc/internal/domain"
	"restaurant-digital/agg-svc/internal/mocks"
	"restaurant-digital/agg-svc/internal/service"
)

func newTestRouter(analytics service.AnalyticsServiceInterface) *mux.Router {
	r := mux.NewRouter()
	httpapi.NewHandler(analytics).RegisterRoutes(r)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	w := get(newTestRouter(mocks.NewAnalyticsServiceInterface(t)), "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "agg-svc", body["service"])
}

func TestTopItemsHandler(t *testing.T) {
	ranked := []domain.TopItem{{ItemID: 1, Category: "repas", Name: "Burger Classic", Ordered: 5}}

	tests := []struct {
		name        string
		path        string
		setupMock   func(*mocks.AnalyticsServiceInterface)
		wantCode    int
		wantRanking bool
	}{
		{
			name: "defaults",
			path: "/api/analytics/top-items",
			setupMock: func(m *mocks.AnalyticsServiceInterface) {
				m.On("TopItems", mock.Anything, "", 0).Return(ranked, nil)
			},
			wantCode:    http.StatusOK,
			wantRanking: true,
		},
		{
			name: "period and limit",
			path: "/api/analytics/top-items?period=all&limit=3",
			setupMock: func(m *mocks.AnalyticsServiceInterface) {
				m.On("TopItems", mock.Anything, "all", 3).Return(ranked, nil)
			},
			wantCode:    http.StatusOK,
			wantRanking: true,
		},
		{
			name:      "non numeric limit",
			path:      "/api/analytics/top-items?limit=many",
			setupMock: func(m *mocks.AnalyticsServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "invalid period",
			path: "/api/analytics/top-items?period=week",
			setupMock: func(m *mocks.AnalyticsServiceInterface) {
				m.On("TopItems", mock.Anything, "week", 0).Return(nil, service.ErrInvalidPeriod)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			path: "/api/analytics/top-items",
			setupMock: func(m *mocks.AnalyticsServiceInterface) {
				m.On("TopItems", mock.Anything, "", 0).Return(nil, errors.New("redis down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			analytics := mocks.NewAnalyticsServiceInterface(t)
			testCase.setupMock(analytics)

			w := get(newTestRouter(analytics), testCase.path)
			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantRanking {
				var items []domain.TopItem
				require.NoError(t, json.NewDecoder(w.Body).Decode(&items))
				assert.Equal(t, ranked, items)
			}
		})
	}
}

func TestServedHandler(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(*mocks.AnalyticsServiceInterface)
		wantCode  int
	}{
		{
			name: "explicit date",
			path: "/api/analytics/served?date=2026-10-18",
			setupMock: func(m *mocks.AnalyticsServiceInterface) {
				m.On("Served", mock.Anything, "2026-10-18").
					Return(domain.ServedCount{Date: "2026-10-18", Orders: 2, Revenue: 10000}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "malformed date",
			path: "/api/analytics/served?date=yesterday",
			setupMock: func(m *mocks.AnalyticsServiceInterface) {
				m.On("Served", mock.Anything, "yesterday").Return(domain.ServedCount{}, service.ErrInvalidDate)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			analytics := mocks.NewAnalyticsServiceInterface(t)
			testCase.setupMock(analytics)

			w := get(newTestRouter(analytics), testCase.path)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}
