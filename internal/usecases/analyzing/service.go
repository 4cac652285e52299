package analyzing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/cache"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

// Service implementa a interface Analyzer
type Service struct {
	cfg                 *config.Config
	analyticsRepository repository.AnalyticsRepository
	resultCache         *cache.ResultCache
	useCache            bool

	// Relógio injetável: a análise de retenção depende de "hoje" e os
	// testes precisam de um relógio fixo
	now func() time.Time
}

// NewService cria uma nova instância do motor analítico, sem cache
func NewService(
	cfg *config.Config,
	analyticsRepo repository.AnalyticsRepository,
) *Service {
	return &Service{
		cfg:                 cfg,
		analyticsRepository: analyticsRepo,
		useCache:            false,
		now:                 time.Now,
	}
}

// WithCache habilita o cache de resultados por visão e filtros
func (s *Service) WithCache(resultCache *cache.ResultCache) *Service {
	s.resultCache = resultCache
	s.useCache = resultCache != nil && s.cfg.Analytics.CacheEnabled
	return s
}

// execute é o caminho comum das nove visões: aplica o orçamento de
// execução, consulta o fact store e, com cache habilitado, deduplica
// consultas idênticas em voo e reusa resultados dentro do TTL. O load
// recebido já devolve o resultado pós-processado, pronto para o cache.
func (s *Service) execute(
	ctx context.Context,
	view domain.View,
	filters *domain.AnalyticsFilters,
	load func(context.Context) (interface{}, error),
) (interface{}, error) {
	run := func() (interface{}, error) {
		queryCtx, cancel := context.WithTimeout(ctx, s.cfg.Analytics.QueryTimeout)
		defer cancel()

		result, err := load(queryCtx)
		if err != nil {
			return nil, s.classifyError(view, err)
		}

		return result, nil
	}

	if !s.useCache {
		return run()
	}

	key := string(view) + "|" + filters.CacheKey()

	result, hit, err := s.resultCache.Do(key, run)
	if err != nil {
		return nil, err
	}

	if hit {
		logrus.WithFields(logrus.Fields{
			"view": string(view),
		}).Debug("Resultado analítico servido do cache")
	}

	return result, nil
}

// classifyError traduz a falha de execução para a taxonomia de erros do
// motor. Resultado vazio nunca passa por aqui: vazio é sucesso.
func (s *Service) classifyError(view domain.View, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		logrus.WithFields(logrus.Fields{
			"view":    string(view),
			"timeout": s.cfg.Analytics.QueryTimeout.String(),
		}).Warn("Consulta analítica excedeu o tempo limite")

		return NewAnalyticsError(ErrQueryTimeout, view, s.cfg.Analytics.QueryTimeout.String())
	case errors.Is(err, context.Canceled):
		// O chamador desistiu; não é falha do fact store
		return err
	default:
		logrus.WithFields(logrus.Fields{
			"view": string(view),
		}).WithError(err).Error("Falha ao consultar o fact store")

		return NewAnalyticsError(ErrStoreUnavailable, view, err.Error())
	}
}

// SalesOverview consolida contadores e somas financeiras do período
func (s *Service) SalesOverview(ctx context.Context, filters domain.AnalyticsFilters) (*domain.SalesOverview, error) {
	normalized, err := filters.Normalize()
	if err != nil {
		return nil, err
	}

	result, err := s.execute(ctx, domain.ViewOverview, normalized, func(queryCtx context.Context) (interface{}, error) {
		totals, err := s.analyticsRepository.OverviewTotals(queryCtx, normalized)
		if err != nil {
			return nil, err
		}

		return buildOverview(totals), nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.SalesOverview), nil
}

func buildOverview(totals *domain.OverviewTotals) *domain.SalesOverview {
	overview := &domain.SalesOverview{
		TotalSales:       totals.TotalSales,
		CompletedSales:   totals.CompletedSales,
		CancelledSales:   totals.CancelledSales,
		TotalRevenue:     utils.RoundWithTwoDecimalPlace(totals.CompletedRevenue),
		TotalDiscount:    utils.RoundWithTwoDecimalPlace(totals.CompletedDiscount),
		TotalDeliveryFee: utils.RoundWithTwoDecimalPlace(totals.CompletedDeliveryFee),
	}

	// Ticket médio sobre vendas concluídas; sem vendas, fica zerado em
	// vez de dividir por zero
	if totals.CompletedSales > 0 {
		overview.AverageTicket = utils.RoundWithTwoDecimalPlace(
			totals.CompletedRevenue / float64(totals.CompletedSales),
		)
	}

	return overview
}

// ProductRanking lista os produtos mais vendidos por quantidade
func (s *Service) ProductRanking(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.ProductRankingItem, error) {
	normalized, err := filters.Normalize()
	if err != nil {
		return nil, err
	}

	result, err := s.execute(ctx, domain.ViewProductRanking, normalized, func(queryCtx context.Context) (interface{}, error) {
		items, err := s.analyticsRepository.ProductTotals(queryCtx, normalized)
		if err != nil {
			return nil, err
		}

		for _, item := range items {
			if item.TotalQuantity > 0 {
				item.AveragePrice = utils.RoundWithTwoDecimalPlace(item.TotalRevenue / item.TotalQuantity)
			}
			item.TotalRevenue = utils.RoundWithTwoDecimalPlace(item.TotalRevenue)
		}

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*domain.ProductRankingItem), nil
}

// ChannelPerformance compara os canais de venda; o percentual de cada
// canal é relativo à receita total do período filtrado
func (s *Service) ChannelPerformance(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.ChannelPerformanceItem, error) {
	normalized, err := filters.Normalize()
	if err != nil {
		return nil, err
	}

	result, err := s.execute(ctx, domain.ViewChannelPerformance, normalized, func(queryCtx context.Context) (interface{}, error) {
		items, err := s.analyticsRepository.ChannelTotals(queryCtx, normalized)
		if err != nil {
			return nil, err
		}

		var totalRevenue float64
		for _, item := range items {
			totalRevenue += item.TotalRevenue
		}

		for _, item := range items {
			if item.TotalSales > 0 {
				item.AverageTicket = utils.RoundWithTwoDecimalPlace(item.TotalRevenue / float64(item.TotalSales))
			}
			if totalRevenue > 0 {
				item.RevenuePercentage = utils.RoundWithOneDecimalPlace(item.TotalRevenue / totalRevenue * 100)
			}
			item.TotalRevenue = utils.RoundWithTwoDecimalPlace(item.TotalRevenue)
		}

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*domain.ChannelPerformanceItem), nil
}

// StorePerformance compara as lojas da rede
func (s *Service) StorePerformance(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.StorePerformanceItem, error) {
	normalized, err := filters.Normalize()
	if err != nil {
		return nil, err
	}

	result, err := s.execute(ctx, domain.ViewStorePerformance, normalized, func(queryCtx context.Context) (interface{}, error) {
		items, err := s.analyticsRepository.StoreTotals(queryCtx, normalized)
		if err != nil {
			return nil, err
		}

		var totalRevenue float64
		for _, item := range items {
			totalRevenue += item.TotalRevenue
		}

		for _, item := range items {
			if item.TotalSales > 0 {
				item.AverageTicket = utils.RoundWithTwoDecimalPlace(item.TotalRevenue / float64(item.TotalSales))
			}
			if totalRevenue > 0 {
				item.RevenuePercentage = utils.RoundWithOneDecimalPlace(item.TotalRevenue / totalRevenue * 100)
			}
			item.TotalRevenue = utils.RoundWithTwoDecimalPlace(item.TotalRevenue)
		}

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*domain.StorePerformanceItem), nil
}

// TimeSeries devolve a série temporal de vendas concluídas, com buckets
// vazios preenchidos com zero dentro do intervalo
func (s *Service) TimeSeries(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.TimeSeriesPoint, error) {
	normalized, err := filters.Normalize()
	if err != nil {
		return nil, err
	}

	result, err := s.execute(ctx, domain.ViewTimeSeries, normalized, func(queryCtx context.Context) (interface{}, error) {
		buckets, err := s.analyticsRepository.SalesBuckets(queryCtx, normalized)
		if err != nil {
			return nil, err
		}

		return fillSeries(normalized, buckets), nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*domain.TimeSeriesPoint), nil
}

// fillSeries materializa os buckets vazios do intervalo. Sem datas nos
// filtros, o intervalo é delimitado pelos buckets existentes; sem datas
// e sem vendas não há como delimitar e a série sai vazia.
func fillSeries(filters *domain.AnalyticsFilters, buckets []*domain.SalesBucket) []*domain.TimeSeriesPoint {
	points := make([]*domain.TimeSeriesPoint, 0)

	if len(buckets) == 0 && (filters.StartDate == nil || filters.EndDate == nil) {
		return points
	}

	byBucket := make(map[int64]*domain.SalesBucket, len(buckets))
	for _, bucket := range buckets {
		byBucket[bucketStart(bucket.Bucket, filters.Period).Unix()] = bucket
	}

	start := filters.StartDate
	if start == nil {
		start = &buckets[0].Bucket
	}

	end := filters.EndDate
	if end == nil {
		end = &buckets[len(buckets)-1].Bucket
	}

	cursor := bucketStart(*start, filters.Period)
	last := bucketStart(*end, filters.Period)

	// O filtro de datas corta por created_at, mas os buckets agrupam por
	// completed_at: uma venda criada dentro do intervalo pode concluir
	// depois do fim. O intervalo se alarga para cobrir todo bucket
	// observado; nenhuma venda contada fica fora da série.
	for _, bucket := range buckets {
		aligned := bucketStart(bucket.Bucket, filters.Period)
		if aligned.Before(cursor) {
			cursor = aligned
		}
		if aligned.After(last) {
			last = aligned
		}
	}

	for !cursor.After(last) {
		point := &domain.TimeSeriesPoint{Date: cursor}

		if bucket, ok := byBucket[cursor.Unix()]; ok {
			point.SalesCount = bucket.SalesCount
			point.Revenue = utils.RoundWithTwoDecimalPlace(bucket.Revenue)
			if bucket.SalesCount > 0 {
				point.AverageTicket = utils.RoundWithTwoDecimalPlace(bucket.Revenue / float64(bucket.SalesCount))
			}
		}

		points = append(points, point)
		cursor = nextBucket(cursor, filters.Period)
	}

	return points
}

// bucketStart alinha um instante ao início do seu bucket. Semanas
// começam na segunda-feira, mesma convenção do date_trunc do Postgres.
func bucketStart(t time.Time, period domain.Period) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	switch period {
	case domain.PeriodWeekly:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case domain.PeriodMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return day
	}
}

func nextBucket(t time.Time, period domain.Period) time.Time {
	switch period {
	case domain.PeriodWeekly:
		return t.AddDate(0, 0, 7)
	case domain.PeriodMonthly:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// CustomerRetention lista clientes recorrentes que pararam de comprar,
// ordenados do mais tempo inativo para o menos
func (s *Service) CustomerRetention(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.CustomerRetentionItem, error) {
	normalized, err := filters.Normalize()
	if err != nil {
		return nil, err
	}

	if normalized.MinOrders < 1 {
		return nil, fmt.Errorf("%w: min_orders deve ser ao menos 1, recebido %d",
			domain.ErrInvalidParameter, normalized.MinOrders)
	}

	if normalized.DaysInactive < 0 {
		return nil, fmt.Errorf("%w: days_inactive deve ser não negativo, recebido %d",
			domain.ErrInvalidParameter, normalized.DaysInactive)
	}

	result, err := s.execute(ctx, domain.ViewCustomerRetention, normalized, func(queryCtx context.Context) (interface{}, error) {
		activities, err := s.analyticsRepository.CustomerActivity(queryCtx, normalized)
		if err != nil {
			return nil, err
		}

		return s.buildRetention(normalized, activities), nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*domain.CustomerRetentionItem), nil
}

func (s *Service) buildRetention(filters *domain.AnalyticsFilters, activities []*domain.CustomerActivity) []*domain.CustomerRetentionItem {
	now := s.now()
	items := make([]*domain.CustomerRetentionItem, 0)

	for _, activity := range activities {
		daysSinceLastOrder := int(now.Sub(activity.LastOrderDate).Hours() / 24)

		// Inatividade exatamente igual ao corte ainda conta como inativo
		if daysSinceLastOrder < filters.DaysInactive {
			continue
		}

		items = append(items, &domain.CustomerRetentionItem{
			CustomerID:         activity.CustomerID,
			CustomerName:       activity.CustomerName,
			Email:              activity.Email,
			PhoneNumber:        activity.PhoneNumber,
			TotalOrders:        activity.TotalOrders,
			TotalSpent:         utils.RoundWithTwoDecimalPlace(activity.TotalSpent),
			AverageTicket:      utils.RoundWithTwoDecimalPlace(activity.TotalSpent / float64(activity.TotalOrders)),
			FirstOrderDate:     activity.FirstOrderDate,
			LastOrderDate:      activity.LastOrderDate,
			DaysSinceLastOrder: daysSinceLastOrder,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].DaysSinceLastOrder != items[j].DaysSinceLastOrder {
			return items[i].DaysSinceLastOrder > items[j].DaysSinceLastOrder
		}
		return items[i].CustomerID < items[j].CustomerID
	})

	if len(items) > *filters.Limit {
		items = items[:*filters.Limit]
	}

	return items
}

// DeliveryPerformance ranqueia as regiões de entrega da mais lenta para
// a mais rápida
func (s *Service) DeliveryPerformance(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.DeliveryPerformanceItem, error) {
	normalized, err := filters.Normalize()
	if err != nil {
		return nil, err
	}

	result, err := s.execute(ctx, domain.ViewDeliveryPerformance, normalized, func(queryCtx context.Context) (interface{}, error) {
		items, err := s.analyticsRepository.DeliveryRegionTotals(queryCtx, normalized)
		if err != nil {
			return nil, err
		}

		for _, item := range items {
			// O total soma as médias antes do arredondamento
			item.TotalDeliveryTimeMinutes = utils.RoundWithTwoDecimalPlace(
				item.AvgDeliveryTimeMinutes + item.AvgProductionTimeMinutes,
			)
			item.AvgDeliveryTimeMinutes = utils.RoundWithTwoDecimalPlace(item.AvgDeliveryTimeMinutes)
			item.AvgProductionTimeMinutes = utils.RoundWithTwoDecimalPlace(item.AvgProductionTimeMinutes)
		}

		if len(items) > *normalized.Limit {
			items = items[:*normalized.Limit]
		}

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*domain.DeliveryPerformanceItem), nil
}

// HourlyPerformance devolve o perfil hora×dia-da-semana das vendas,
// sempre com a grade completa de horas (0..23) preenchida com zeros
func (s *Service) HourlyPerformance(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.HourlyPerformanceItem, error) {
	normalized, err := filters.Normalize()
	if err != nil {
		return nil, err
	}

	result, err := s.execute(ctx, domain.ViewHourlyPerformance, normalized, func(queryCtx context.Context) (interface{}, error) {
		buckets, err := s.analyticsRepository.HourlyTotals(queryCtx, normalized)
		if err != nil {
			return nil, err
		}

		return fillHourlyGrid(normalized, buckets), nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*domain.HourlyPerformanceItem), nil
}

func fillHourlyGrid(filters *domain.AnalyticsFilters, buckets []*domain.HourlyBucket) []*domain.HourlyPerformanceItem {
	byBucket := make(map[int]*domain.HourlyBucket, len(buckets))
	for _, bucket := range buckets {
		byBucket[bucket.DayOfWeek*24+bucket.Hour] = bucket
	}

	days := []int{0, 1, 2, 3, 4, 5, 6}
	if filters.DayOfWeek != nil {
		days = []int{*filters.DayOfWeek}
	}

	items := make([]*domain.HourlyPerformanceItem, 0, len(days)*24)

	for _, day := range days {
		for hour := 0; hour < 24; hour++ {
			dayOfWeek := day
			item := &domain.HourlyPerformanceItem{
				Hour:      hour,
				DayOfWeek: &dayOfWeek,
				DayName:   domain.DayNames[day],
			}

			if bucket, ok := byBucket[day*24+hour]; ok {
				item.SalesCount = bucket.SalesCount
				item.Revenue = utils.RoundWithTwoDecimalPlace(bucket.Revenue)
				if bucket.SalesCount > 0 {
					item.AverageTicket = utils.RoundWithTwoDecimalPlace(bucket.Revenue / float64(bucket.SalesCount))
				}
			}

			items = append(items, item)
		}
	}

	return items
}

// ProductMargin expõe preço base e receita de adicionais lado a lado
func (s *Service) ProductMargin(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.ProductMarginItem, error) {
	normalized, err := filters.Normalize()
	if err != nil {
		return nil, err
	}

	result, err := s.execute(ctx, domain.ViewProductMargin, normalized, func(queryCtx context.Context) (interface{}, error) {
		items, err := s.analyticsRepository.ProductMarginTotals(queryCtx, normalized)
		if err != nil {
			return nil, err
		}

		for _, item := range items {
			item.BasePrice = utils.RoundWithTwoDecimalPlace(item.BasePrice)
			item.CustomizationRevenue = utils.RoundWithTwoDecimalPlace(item.CustomizationRevenue)
			item.TotalRevenue = utils.RoundWithTwoDecimalPlace(item.TotalRevenue)
		}

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*domain.ProductMarginItem), nil
}
