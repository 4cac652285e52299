package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetSalesOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockAnalyzer(ctrl)

	var captured domain.AnalyticsFilters

	mockService.EXPECT().
		SalesOverview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters domain.AnalyticsFilters) (*domain.SalesOverview, error) {
			captured = filters
			return &domain.SalesOverview{
				TotalSales:     12,
				CompletedSales: 10,
				CancelledSales: 2,
				TotalRevenue:   1000,
				AverageTicket:  100,
			}, nil
		})

	request := httptest.NewRequest(http.MethodGet,
		"/v1/analytics/overview?start_date=2024-01-01&end_date=2024-01-31&store_ids=1,2&channel_ids=7", nil)
	recorder := httptest.NewRecorder()

	GetSalesOverview(mockService).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var overview domain.SalesOverview
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&overview))
	assert.Equal(t, 12, overview.TotalSales)
	assert.Equal(t, 1000.0, overview.TotalRevenue)

	require.NotNil(t, captured.StartDate)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *captured.StartDate)

	// A data final é inclusiva: vai até o fim do dia
	require.NotNil(t, captured.EndDate)
	assert.Equal(t, 31, captured.EndDate.Day())
	assert.Equal(t, 23, captured.EndDate.Hour())

	assert.Equal(t, []int64{1, 2}, captured.StoreIDs)
	assert.Equal(t, []int64{7}, captured.ChannelIDs)
}

func TestGetSalesOverview_ParametrosInvalidos(t *testing.T) {
	ctrl := gomock.NewController(t)
	// Sem EXPECT: o serviço não pode ser chamado com parâmetros inválidos
	mockService := mocks.NewMockAnalyzer(ctrl)

	tests := []struct {
		name  string
		query string
	}{
		{name: "Data mal formada", query: "start_date=01/01/2024"},
		{name: "IDs de loja não numéricos", query: "store_ids=a,b"},
		{name: "Limite não numérico", query: "limit=muitos"},
		{name: "Dia da semana não numérico", query: "day_of_week=segunda"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/v1/analytics/overview?"+tt.query, nil)
			recorder := httptest.NewRecorder()

			GetSalesOverview(mockService).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var apiErr struct {
				Code string `json:"code"`
			}
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
			assert.Equal(t, "VAL_003", apiErr.Code)
		})
	}
}

func TestGetSalesOverview_ErrosDoMotor(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Intervalo inválido devolve 400",
			serviceErr: domain.ErrInvalidRange,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VAL_001",
		},
		{
			name:       "Timeout da consulta devolve 504",
			serviceErr: analyzing.NewAnalyticsError(analyzing.ErrQueryTimeout, domain.ViewOverview, "15s"),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "ANL_001",
		},
		{
			name:       "Fact store indisponível devolve 503",
			serviceErr: analyzing.NewAnalyticsError(analyzing.ErrStoreUnavailable, domain.ViewOverview, "connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "ANL_002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockAnalyzer(ctrl)

			mockService.EXPECT().
				SalesOverview(gomock.Any(), gomock.Any()).
				Return(nil, tt.serviceErr)

			request := httptest.NewRequest(http.MethodGet, "/v1/analytics/overview", nil)
			recorder := httptest.NewRecorder()

			GetSalesOverview(mockService).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var apiErr struct {
				Code string `json:"code"`
			}
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestGetProductRanking_EnvelopaLista(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockAnalyzer(ctrl)

	mockService.EXPECT().
		ProductRanking(gomock.Any(), gomock.Any()).
		Return([]*domain.ProductRankingItem{
			{ProductID: 1, ProductName: "Pizza Margherita", TotalQuantity: 40},
			{ProductID: 2, ProductName: "Burger da Casa", TotalQuantity: 22},
		}, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/analytics/products/ranking", nil)
	recorder := httptest.NewRecorder()

	GetProductRanking(mockService).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Data  []*domain.ProductRankingItem `json:"data"`
		Count int                          `json:"count"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Data, 2)
	assert.Equal(t, "Pizza Margherita", response.Data[0].ProductName)
}

func TestGetCustomerRetention_AplicaDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockAnalyzer(ctrl)

	var captured domain.AnalyticsFilters

	mockService.EXPECT().
		CustomerRetention(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters domain.AnalyticsFilters) ([]*domain.CustomerRetentionItem, error) {
			captured = filters
			return []*domain.CustomerRetentionItem{}, nil
		})

	request := httptest.NewRequest(http.MethodGet, "/v1/analytics/customers/retention", nil)
	recorder := httptest.NewRecorder()

	GetCustomerRetention(mockService).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 3, captured.MinOrders)
	assert.Equal(t, 30, captured.DaysInactive)
}

func TestGetCustomerRetention_CortesExplicitos(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockAnalyzer(ctrl)

	var captured domain.AnalyticsFilters

	mockService.EXPECT().
		CustomerRetention(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters domain.AnalyticsFilters) ([]*domain.CustomerRetentionItem, error) {
			captured = filters
			return []*domain.CustomerRetentionItem{}, nil
		})

	request := httptest.NewRequest(http.MethodGet,
		"/v1/analytics/customers/retention?min_orders=5&days_inactive=0", nil)
	recorder := httptest.NewRecorder()

	GetCustomerRetention(mockService).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 5, captured.MinOrders)
	// Zero explícito é um valor válido, não dispara o default
	assert.Equal(t, 0, captured.DaysInactive)
}

func TestGetHourlyPerformance_FiltroDeDia(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockAnalyzer(ctrl)

	var captured domain.AnalyticsFilters

	mockService.EXPECT().
		HourlyPerformance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters domain.AnalyticsFilters) ([]*domain.HourlyPerformanceItem, error) {
			captured = filters
			return []*domain.HourlyPerformanceItem{}, nil
		})

	request := httptest.NewRequest(http.MethodGet, "/v1/analytics/sales/hourly?day_of_week=0", nil)
	recorder := httptest.NewRecorder()

	GetHourlyPerformance(mockService).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, captured.DayOfWeek)
	assert.Equal(t, 0, *captured.DayOfWeek)
}
