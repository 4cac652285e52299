// Package analyzing implementa o motor de agregação analítica: as nove
// visões compartilham o mesmo contexto de filtros, o mesmo orçamento de
// execução e o mesmo cache de resultados.
package analyzing

import (
	"context"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

// Analyzer expõe as visões analíticas do dashboard. Os filtros são
// normalizados internamente; o chamador pode passar o contexto cru.
type Analyzer interface {
	SalesOverview(ctx context.Context, filters domain.AnalyticsFilters) (*domain.SalesOverview, error)
	ProductRanking(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.ProductRankingItem, error)
	ChannelPerformance(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.ChannelPerformanceItem, error)
	StorePerformance(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.StorePerformanceItem, error)
	TimeSeries(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.TimeSeriesPoint, error)
	CustomerRetention(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.CustomerRetentionItem, error)
	DeliveryPerformance(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.DeliveryPerformanceItem, error)
	HourlyPerformance(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.HourlyPerformanceItem, error)
	ProductMargin(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.ProductMarginItem, error)
}
