package analyzing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/cache"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, cacheEnabled bool) (*Service, *mocks.MockAnalyticsRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)

	cfg := &config.Config{
		Analytics: config.Analytics{
			QueryTimeout: time.Second,
			CacheTTL:     time.Minute,
			CacheEnabled: cacheEnabled,
		},
	}

	service := NewService(cfg, mockRepo)
	if cacheEnabled {
		service = service.WithCache(cache.NewResultCache(cfg.Analytics.CacheTTL))
	}

	return service, mockRepo
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func intPtr(i int) *int {
	return &i
}

func TestService_SalesOverview(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	mockRepo.EXPECT().
		OverviewTotals(gomock.Any(), gomock.Any()).
		Return(&domain.OverviewTotals{
			TotalSales:           10,
			CompletedSales:       8,
			CancelledSales:       2,
			CompletedRevenue:     800,
			CompletedDiscount:    50,
			CompletedDeliveryFee: 40,
		}, nil)

	overview, err := service.SalesOverview(context.Background(), domain.AnalyticsFilters{})
	require.NoError(t, err)
	require.NotNil(t, overview)

	assert.Equal(t, 10, overview.TotalSales)
	assert.Equal(t, 8, overview.CompletedSales)
	assert.Equal(t, 2, overview.CancelledSales)
	assert.Equal(t, 800.0, overview.TotalRevenue)
	assert.Equal(t, 100.0, overview.AverageTicket)
	assert.Equal(t, 50.0, overview.TotalDiscount)
	assert.Equal(t, 40.0, overview.TotalDeliveryFee)
}

func TestService_SalesOverview_SemVendas(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	mockRepo.EXPECT().
		OverviewTotals(gomock.Any(), gomock.Any()).
		Return(&domain.OverviewTotals{}, nil)

	overview, err := service.SalesOverview(context.Background(), domain.AnalyticsFilters{})
	require.NoError(t, err)
	require.NotNil(t, overview)

	// Loja sem vendas devolve métricas zeradas, nunca erro nem divisão
	// por zero
	assert.Zero(t, overview.TotalSales)
	assert.Zero(t, overview.AverageTicket)
	assert.Zero(t, overview.TotalRevenue)
}

func TestService_SalesOverview_Timeout(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	mockRepo.EXPECT().
		OverviewTotals(gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	overview, err := service.SalesOverview(context.Background(), domain.AnalyticsFilters{})
	require.Error(t, err)
	assert.Nil(t, overview)
	assert.ErrorIs(t, err, ErrQueryTimeout)

	var analyticsErr *AnalyticsError
	require.ErrorAs(t, err, &analyticsErr)
	assert.Equal(t, domain.ViewOverview, analyticsErr.View)
}

func TestService_SalesOverview_FactStoreIndisponivel(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	mockRepo.EXPECT().
		OverviewTotals(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	overview, err := service.SalesOverview(context.Background(), domain.AnalyticsFilters{})
	require.Error(t, err)
	assert.Nil(t, overview)

	// Falha de execução nunca vira resultado vazio
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestService_FiltrosInvalidosNaoConsultamOFactStore(t *testing.T) {
	// Sem EXPECT configurado: qualquer chamada ao repositório falha o teste
	service, _ := newTestService(t, false)

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.SalesOverview(context.Background(), domain.AnalyticsFilters{
		StartDate: datePtr(start),
		EndDate:   datePtr(end),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = service.ProductRanking(context.Background(), domain.AnalyticsFilters{Limit: intPtr(-1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestService_SalesOverview_CacheReusaResultado(t *testing.T) {
	service, mockRepo := newTestService(t, true)

	// Uma única ida ao fact store para duas chamadas idênticas
	mockRepo.EXPECT().
		OverviewTotals(gomock.Any(), gomock.Any()).
		Times(1).
		Return(&domain.OverviewTotals{TotalSales: 5, CompletedSales: 5, CompletedRevenue: 500}, nil)

	filters := domain.AnalyticsFilters{
		StoreIDs: []int64{2, 1},
	}

	first, err := service.SalesOverview(context.Background(), filters)
	require.NoError(t, err)

	// Mesmos filtros em ordem diferente normalizam para a mesma chave
	second, err := service.SalesOverview(context.Background(), domain.AnalyticsFilters{
		StoreIDs: []int64{1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_SalesOverview_CacheNaoArmazenaErro(t *testing.T) {
	service, mockRepo := newTestService(t, true)

	gomock.InOrder(
		mockRepo.EXPECT().
			OverviewTotals(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused")),
		mockRepo.EXPECT().
			OverviewTotals(gomock.Any(), gomock.Any()).
			Return(&domain.OverviewTotals{TotalSales: 1, CompletedSales: 1, CompletedRevenue: 10}, nil),
	)

	_, err := service.SalesOverview(context.Background(), domain.AnalyticsFilters{})
	require.Error(t, err)

	// A falha não ficou em cache: a próxima chamada volta ao fact store
	overview, err := service.SalesOverview(context.Background(), domain.AnalyticsFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, overview.TotalSales)
}

func TestService_ProductRanking(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	mockRepo.EXPECT().
		ProductTotals(gomock.Any(), gomock.Any()).
		Return([]*domain.ProductRankingItem{
			{ProductID: 1, ProductName: "Pizza Margherita", TotalQuantity: 40, TotalRevenue: 1600, OrderCount: 35},
			{ProductID: 7, ProductName: "Brinde", TotalQuantity: 0, TotalRevenue: 0, OrderCount: 3},
		}, nil)

	items, err := service.ProductRanking(context.Background(), domain.AnalyticsFilters{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 40.0, items[0].AveragePrice)
	// Quantidade zerada não divide por zero
	assert.Zero(t, items[1].AveragePrice)
}

func TestService_ProductRanking_TetoDeLimiteChegaAoFactStore(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	var captured *domain.AnalyticsFilters

	mockRepo.EXPECT().
		ProductTotals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters *domain.AnalyticsFilters) ([]*domain.ProductRankingItem, error) {
			captured = filters
			return []*domain.ProductRankingItem{}, nil
		})

	_, err := service.ProductRanking(context.Background(), domain.AnalyticsFilters{Limit: intPtr(10_000)})
	require.NoError(t, err)

	// O LIMIT da consulta recebe o valor já rebaixado ao teto
	require.NotNil(t, captured)
	require.NotNil(t, captured.Limit)
	assert.Equal(t, domain.MaxLimit, *captured.Limit)
}

func TestService_ChannelPerformance_Percentuais(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	mockRepo.EXPECT().
		ChannelTotals(gomock.Any(), gomock.Any()).
		Return([]*domain.ChannelPerformanceItem{
			{ChannelID: 1, ChannelName: "iFood", TotalSales: 30, TotalRevenue: 750},
			{ChannelID: 2, ChannelName: "Balcão", TotalSales: 20, TotalRevenue: 250},
		}, nil)

	items, err := service.ChannelPerformance(context.Background(), domain.AnalyticsFilters{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 75.0, items[0].RevenuePercentage)
	assert.Equal(t, 25.0, items[1].RevenuePercentage)
	assert.Equal(t, 25.0, items[0].AverageTicket)
	assert.Equal(t, 12.5, items[1].AverageTicket)

	var totalPercentage float64
	for _, item := range items {
		totalPercentage += item.RevenuePercentage
	}
	assert.InDelta(t, 100.0, totalPercentage, 0.2)
}

func TestService_ChannelPerformance_ReceitaZerada(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	mockRepo.EXPECT().
		ChannelTotals(gomock.Any(), gomock.Any()).
		Return([]*domain.ChannelPerformanceItem{
			{ChannelID: 1, ChannelName: "iFood", TotalSales: 0, TotalRevenue: 0},
		}, nil)

	items, err := service.ChannelPerformance(context.Background(), domain.AnalyticsFilters{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Zero(t, items[0].RevenuePercentage)
	assert.Zero(t, items[0].AverageTicket)
}

func TestService_StorePerformance_Percentuais(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	mockRepo.EXPECT().
		StoreTotals(gomock.Any(), gomock.Any()).
		Return([]*domain.StorePerformanceItem{
			{StoreID: 1, StoreName: "Centro", TotalSales: 10, TotalRevenue: 600},
			{StoreID: 2, StoreName: "Bairro", TotalSales: 10, TotalRevenue: 400},
		}, nil)

	items, err := service.StorePerformance(context.Background(), domain.AnalyticsFilters{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 60.0, items[0].RevenuePercentage)
	assert.Equal(t, 40.0, items[1].RevenuePercentage)
}

func TestService_TimeSeries_PreencheLacunasDiarias(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		SalesBuckets(gomock.Any(), gomock.Any()).
		Return([]*domain.SalesBucket{
			{Bucket: day1, SalesCount: 4, Revenue: 200},
			{Bucket: day3, SalesCount: 2, Revenue: 80},
		}, nil)

	points, err := service.TimeSeries(context.Background(), domain.AnalyticsFilters{
		StartDate: datePtr(day1),
		EndDate:   datePtr(day3),
	})
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, day1, points[0].Date)
	assert.Equal(t, 4, points[0].SalesCount)
	assert.Equal(t, 50.0, points[0].AverageTicket)

	// O dia sem vendas aparece zerado
	assert.Equal(t, day1.AddDate(0, 0, 1), points[1].Date)
	assert.Zero(t, points[1].SalesCount)
	assert.Zero(t, points[1].Revenue)
	assert.Zero(t, points[1].AverageTicket)

	assert.Equal(t, day3, points[2].Date)
	assert.Equal(t, 2, points[2].SalesCount)
}

func TestService_TimeSeries_ConclusaoDepoisDoFimDoIntervalo(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	// O filtro de datas corta por criação, o bucket agrupa por conclusão:
	// uma venda criada às 23h50 do último dia e concluída na madrugada
	// seguinte cai em um bucket depois de end_date
	mockRepo.EXPECT().
		SalesBuckets(gomock.Any(), gomock.Any()).
		Return([]*domain.SalesBucket{
			{Bucket: day1, SalesCount: 1, Revenue: 50},
			{Bucket: day3, SalesCount: 1, Revenue: 70},
		}, nil)

	points, err := service.TimeSeries(context.Background(), domain.AnalyticsFilters{
		StartDate: datePtr(day1),
		EndDate:   datePtr(day2),
	})
	require.NoError(t, err)

	// A série se alarga até o bucket observado; nenhuma venda contada
	// pelo fact store some da soma
	require.Len(t, points, 3)

	total := 0
	for _, point := range points {
		total += point.SalesCount
	}
	assert.Equal(t, 2, total)

	assert.Equal(t, day3, points[2].Date)
	assert.Equal(t, 1, points[2].SalesCount)
}

func TestService_TimeSeries_SemanaComecaNaSegunda(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	// 3 de janeiro de 2024 é uma quarta-feira; a semana dela começa em
	// 1º de janeiro (segunda)
	monday1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	monday2 := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		SalesBuckets(gomock.Any(), gomock.Any()).
		Return([]*domain.SalesBucket{
			{Bucket: monday2, SalesCount: 3, Revenue: 90},
		}, nil)

	points, err := service.TimeSeries(context.Background(), domain.AnalyticsFilters{
		StartDate: datePtr(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
		EndDate:   datePtr(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
		Period:    domain.PeriodWeekly,
	})
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, monday1, points[0].Date)
	assert.Zero(t, points[0].SalesCount)
	assert.Equal(t, monday2, points[1].Date)
	assert.Equal(t, 3, points[1].SalesCount)
}

func TestService_TimeSeries_MensalDelimitadaPelosBuckets(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	january := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		SalesBuckets(gomock.Any(), gomock.Any()).
		Return([]*domain.SalesBucket{
			{Bucket: january, SalesCount: 10, Revenue: 1000},
			{Bucket: march, SalesCount: 5, Revenue: 600},
		}, nil)

	// Sem datas nos filtros, o intervalo vem dos próprios buckets
	points, err := service.TimeSeries(context.Background(), domain.AnalyticsFilters{
		Period: domain.PeriodMonthly,
	})
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, january, points[0].Date)
	assert.Zero(t, points[1].SalesCount) // fevereiro
	assert.Equal(t, march, points[2].Date)
}

func TestService_TimeSeries_SemDadosESemIntervalo(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	mockRepo.EXPECT().
		SalesBuckets(gomock.Any(), gomock.Any()).
		Return([]*domain.SalesBucket{}, nil)

	points, err := service.TimeSeries(context.Background(), domain.AnalyticsFilters{})
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestService_CustomerRetention(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	mockRepo.EXPECT().
		CustomerActivity(gomock.Any(), gomock.Any()).
		Return([]*domain.CustomerActivity{
			{
				CustomerID:    1,
				CustomerName:  "Ana",
				TotalOrders:   4,
				TotalSpent:    400,
				LastOrderDate: now.AddDate(0, 0, -30), // exatamente no corte
			},
			{
				CustomerID:    2,
				CustomerName:  "Bruno",
				TotalOrders:   5,
				TotalSpent:    250,
				LastOrderDate: now.AddDate(0, 0, -20), // ativo, fora da lista
			},
			{
				CustomerID:    3,
				CustomerName:  "Carla",
				TotalOrders:   3,
				TotalSpent:    90,
				LastOrderDate: now.AddDate(0, 0, -90), // inativo há mais tempo
			},
		}, nil)

	items, err := service.CustomerRetention(context.Background(), domain.AnalyticsFilters{
		MinOrders:    3,
		DaysInactive: 30,
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Mais tempo inativo primeiro
	assert.Equal(t, int64(3), items[0].CustomerID)
	assert.Equal(t, 90, items[0].DaysSinceLastOrder)

	// Inatividade exatamente igual ao corte é incluída
	assert.Equal(t, int64(1), items[1].CustomerID)
	assert.Equal(t, 30, items[1].DaysSinceLastOrder)
	assert.Equal(t, 100.0, items[1].AverageTicket)
}

func TestService_CustomerRetention_EmpateOrdenaPorCliente(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	lastOrder := now.AddDate(0, 0, -45)

	mockRepo.EXPECT().
		CustomerActivity(gomock.Any(), gomock.Any()).
		Return([]*domain.CustomerActivity{
			{CustomerID: 9, TotalOrders: 3, TotalSpent: 300, LastOrderDate: lastOrder},
			{CustomerID: 4, TotalOrders: 3, TotalSpent: 150, LastOrderDate: lastOrder},
		}, nil)

	items, err := service.CustomerRetention(context.Background(), domain.AnalyticsFilters{
		MinOrders:    3,
		DaysInactive: 30,
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, int64(4), items[0].CustomerID)
	assert.Equal(t, int64(9), items[1].CustomerID)
}

func TestService_CustomerRetention_ParametrosInvalidos(t *testing.T) {
	service, _ := newTestService(t, false)

	_, err := service.CustomerRetention(context.Background(), domain.AnalyticsFilters{
		MinOrders:    0,
		DaysInactive: 30,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = service.CustomerRetention(context.Background(), domain.AnalyticsFilters{
		MinOrders:    3,
		DaysInactive: -1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestService_DeliveryPerformance(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	mockRepo.EXPECT().
		DeliveryRegionTotals(gomock.Any(), gomock.Any()).
		Return([]*domain.DeliveryPerformanceItem{
			{
				Neighborhood:             "Centro",
				City:                     "Florianópolis",
				TotalDeliveries:          12,
				AvgDeliveryTimeMinutes:   30.333333,
				AvgProductionTimeMinutes: 10.111111,
			},
		}, nil)

	items, err := service.DeliveryPerformance(context.Background(), domain.AnalyticsFilters{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, 30.33, items[0].AvgDeliveryTimeMinutes)
	assert.Equal(t, 10.11, items[0].AvgProductionTimeMinutes)
	// O total soma as médias antes do arredondamento
	assert.Equal(t, 40.44, items[0].TotalDeliveryTimeMinutes)
}

func TestService_DeliveryPerformance_CorteDeLimite(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	// O corte de entregas mínimas por região acontece no HAVING da
	// consulta; aqui só chegam regiões que já passaram por ele
	mockRepo.EXPECT().
		DeliveryRegionTotals(gomock.Any(), gomock.Any()).
		Return([]*domain.DeliveryPerformanceItem{
			{Neighborhood: "Centro", TotalDeliveries: 20, AvgDeliveryTimeMinutes: 45},
			{Neighborhood: "Trindade", TotalDeliveries: 15, AvgDeliveryTimeMinutes: 38},
			{Neighborhood: "Campeche", TotalDeliveries: 10, AvgDeliveryTimeMinutes: 30},
		}, nil)

	items, err := service.DeliveryPerformance(context.Background(), domain.AnalyticsFilters{
		Limit: intPtr(2),
	})
	require.NoError(t, err)

	// A visão corta no limite preservando a ordem pior-primeiro
	require.Len(t, items, 2)
	assert.Equal(t, "Centro", items[0].Neighborhood)
	assert.Equal(t, "Trindade", items[1].Neighborhood)
}

func TestService_HourlyPerformance_GradeCompleta(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	mockRepo.EXPECT().
		HourlyTotals(gomock.Any(), gomock.Any()).
		Return([]*domain.HourlyBucket{
			{Hour: 12, DayOfWeek: 1, SalesCount: 6, Revenue: 300},
		}, nil)

	items, err := service.HourlyPerformance(context.Background(), domain.AnalyticsFilters{})
	require.NoError(t, err)

	// 7 dias × 24 horas, sempre
	require.Len(t, items, 7*24)

	var filled *domain.HourlyPerformanceItem
	for _, item := range items {
		if item.Hour == 12 && item.DayOfWeek != nil && *item.DayOfWeek == 1 {
			filled = item
			break
		}
	}

	require.NotNil(t, filled)
	assert.Equal(t, 6, filled.SalesCount)
	assert.Equal(t, 50.0, filled.AverageTicket)
	assert.Equal(t, "Segunda", filled.DayName)

	assert.Zero(t, items[0].SalesCount)
	assert.Equal(t, "Domingo", items[0].DayName)
}

func TestService_HourlyPerformance_ComFiltroDeDia(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	mockRepo.EXPECT().
		HourlyTotals(gomock.Any(), gomock.Any()).
		Return([]*domain.HourlyBucket{
			{Hour: 20, DayOfWeek: 6, SalesCount: 9, Revenue: 540},
		}, nil)

	items, err := service.HourlyPerformance(context.Background(), domain.AnalyticsFilters{
		DayOfWeek: intPtr(6),
	})
	require.NoError(t, err)
	require.Len(t, items, 24)

	for _, item := range items {
		require.NotNil(t, item.DayOfWeek)
		assert.Equal(t, 6, *item.DayOfWeek)
		assert.Equal(t, "Sábado", item.DayName)
	}

	assert.Equal(t, 9, items[20].SalesCount)
}

func TestService_ProductMargin(t *testing.T) {
	service, mockRepo := newTestService(t, false)

	mockRepo.EXPECT().
		ProductMarginTotals(gomock.Any(), gomock.Any()).
		Return([]*domain.ProductMarginItem{
			{
				ProductID:            3,
				ProductName:          "Burger da Casa",
				BasePrice:            29.9,
				CustomizationRevenue: 150.555,
				TotalRevenue:         1200.008,
				OrderCount:           40,
			},
		}, nil)

	items, err := service.ProductMargin(context.Background(), domain.AnalyticsFilters{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Preço base e receita de adicionais permanecem separados
	assert.Equal(t, 29.9, items[0].BasePrice)
	assert.Equal(t, 150.56, items[0].CustomizationRevenue)
	assert.Equal(t, 1200.01, items[0].TotalRevenue)
}
