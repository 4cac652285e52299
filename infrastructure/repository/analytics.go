package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const (
	salesTable      = "sales s"
	saleItemsTable  = "sale_items si"
	categoriesTable = "categories cat"
	channelsTable   = "channels ch"
	storesTable     = "stores st"
)

// AnalyticsRepository expõe as consultas agregadas sobre o fact store.
// Todas as operações são somente leitura e recebem o contexto de filtros
// já normalizado.
type AnalyticsRepository interface {
	OverviewTotals(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.OverviewTotals, error)
	ProductTotals(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.ProductRankingItem, error)
	ChannelTotals(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.ChannelPerformanceItem, error)
	StoreTotals(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.StorePerformanceItem, error)
	SalesBuckets(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.SalesBucket, error)
	CustomerActivity(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.CustomerActivity, error)
	DeliveryRegionTotals(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.DeliveryPerformanceItem, error)
	HourlyTotals(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.HourlyBucket, error)
	ProductMarginTotals(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.ProductMarginItem, error)
}

type analyticsRepository struct {
	conn *postgres.Connection

	// Amostra mínima de entregas por região; regiões abaixo do corte são
	// omitidas para não ranquear médias sem significância
	minDeliveries int
}

func NewAnalyticsRepository(conn *postgres.Connection, minDeliveries int) AnalyticsRepository {
	return &analyticsRepository{
		conn:          conn,
		minDeliveries: minDeliveries,
	}
}

// applySaleFilters aplica o contexto de filtros compartilhado sobre a
// tabela de vendas. Listas vazias de lojas/canais não adicionam cláusula.
func applySaleFilters(builder squirrel.SelectBuilder, filters *domain.AnalyticsFilters) squirrel.SelectBuilder {
	if filters.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"s.created_at": *filters.StartDate})
	}

	if filters.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"s.created_at": *filters.EndDate})
	}

	if len(filters.StoreIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"s.store_id": filters.StoreIDs})
	}

	if len(filters.ChannelIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"s.channel_id": filters.ChannelIDs})
	}

	return builder
}

func (r *analyticsRepository) OverviewTotals(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.OverviewTotals, error) {
	queryBuilder := squirrel.
		Select(
			"COUNT(s.id)",
			"COALESCE(SUM(CASE WHEN s.status = 'COMPLETED' THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN s.status = 'CANCELLED' THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN s.status = 'COMPLETED' THEN s.total_amount ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN s.status = 'COMPLETED' THEN s.total_discount ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN s.status = 'COMPLETED' THEN s.delivery_fee ELSE 0 END), 0)",
		).
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySaleFilters(queryBuilder, filters)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a consulta de visão geral")
	}

	totals := &domain.OverviewTotals{}

	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(
		&totals.TotalSales,
		&totals.CompletedSales,
		&totals.CancelledSales,
		&totals.CompletedRevenue,
		&totals.CompletedDiscount,
		&totals.CompletedDeliveryFee,
	); err != nil {
		return nil, errors.Wrap(err, "erro ao executar a consulta de visão geral")
	}

	return totals, nil
}

func (r *analyticsRepository) ProductTotals(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.ProductRankingItem, error) {
	queryBuilder := squirrel.
		Select(
			"p.id",
			"p.name",
			"COALESCE(cat.name, '')",
			"COALESCE(SUM(si.quantity), 0)",
			"COALESCE(SUM(si.total_price), 0)",
			"COUNT(DISTINCT s.id)",
		).
		From(saleItemsTable).
		Join("sales s ON s.id = si.sale_id").
		Join("products p ON p.id = si.product_id").
		LeftJoin("categories cat ON cat.id = p.category_id").
		Where(squirrel.Eq{"s.status": domain.SaleStatusCompleted}).
		GroupBy("p.id", "p.name", "cat.name").
		OrderBy("SUM(si.quantity) DESC", "p.id ASC").
		Limit(uint64(*filters.Limit)).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySaleFilters(queryBuilder, filters)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a consulta de ranking de produtos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a consulta de ranking de produtos")
	}
	defer rows.Close()

	items := make([]*domain.ProductRankingItem, 0)

	for rows.Next() {
		item := &domain.ProductRankingItem{}
		if err := rows.Scan(
			&item.ProductID,
			&item.ProductName,
			&item.CategoryName,
			&item.TotalQuantity,
			&item.TotalRevenue,
			&item.OrderCount,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha do ranking de produtos")
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *analyticsRepository) ChannelTotals(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.ChannelPerformanceItem, error) {
	queryBuilder := squirrel.
		Select(
			"ch.id",
			"ch.name",
			"COALESCE(ch.type, '')",
			"COUNT(s.id)",
			"COALESCE(SUM(s.total_amount), 0)",
		).
		From(salesTable).
		Join("channels ch ON ch.id = s.channel_id").
		Where(squirrel.Eq{"s.status": domain.SaleStatusCompleted}).
		GroupBy("ch.id", "ch.name", "ch.type").
		OrderBy("SUM(s.total_amount) DESC", "ch.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySaleFilters(queryBuilder, filters)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a consulta de desempenho por canal")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a consulta de desempenho por canal")
	}
	defer rows.Close()

	items := make([]*domain.ChannelPerformanceItem, 0)

	for rows.Next() {
		item := &domain.ChannelPerformanceItem{}
		if err := rows.Scan(
			&item.ChannelID,
			&item.ChannelName,
			&item.ChannelType,
			&item.TotalSales,
			&item.TotalRevenue,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha do desempenho por canal")
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *analyticsRepository) StoreTotals(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.StorePerformanceItem, error) {
	queryBuilder := squirrel.
		Select(
			"st.id",
			"st.name",
			"COALESCE(st.city, '')",
			"COALESCE(st.state, '')",
			"COUNT(s.id)",
			"COALESCE(SUM(s.total_amount), 0)",
		).
		From(salesTable).
		Join("stores st ON st.id = s.store_id").
		Where(squirrel.Eq{"s.status": domain.SaleStatusCompleted}).
		GroupBy("st.id", "st.name", "st.city", "st.state").
		OrderBy("SUM(s.total_amount) DESC", "st.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySaleFilters(queryBuilder, filters)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a consulta de desempenho por loja")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a consulta de desempenho por loja")
	}
	defer rows.Close()

	items := make([]*domain.StorePerformanceItem, 0)

	for rows.Next() {
		item := &domain.StorePerformanceItem{}
		if err := rows.Scan(
			&item.StoreID,
			&item.StoreName,
			&item.City,
			&item.State,
			&item.TotalSales,
			&item.TotalRevenue,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha do desempenho por loja")
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

// truncUnit traduz a granularidade para o argumento do date_trunc. O
// período já foi validado na normalização, mas o default protege contra
// interpolação de valor arbitrário na query.
func truncUnit(period domain.Period) string {
	switch period {
	case domain.PeriodWeekly:
		return "week"
	case domain.PeriodMonthly:
		return "month"
	default:
		return "day"
	}
}

func (r *analyticsRepository) SalesBuckets(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.SalesBucket, error) {
	bucketExpr := fmt.Sprintf("date_trunc('%s', s.completed_at)", truncUnit(filters.Period))

	queryBuilder := squirrel.
		Select(
			bucketExpr+" AS bucket",
			"COUNT(s.id)",
			"COALESCE(SUM(s.total_amount), 0)",
		).
		From(salesTable).
		Where(squirrel.Eq{"s.status": domain.SaleStatusCompleted}).
		GroupBy("bucket").
		OrderBy("bucket ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySaleFilters(queryBuilder, filters)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a consulta da série temporal")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a consulta da série temporal")
	}
	defer rows.Close()

	buckets := make([]*domain.SalesBucket, 0)

	for rows.Next() {
		bucket := &domain.SalesBucket{}
		if err := rows.Scan(
			&bucket.Bucket,
			&bucket.SalesCount,
			&bucket.Revenue,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler bucket da série temporal")
		}

		buckets = append(buckets, bucket)
	}

	return buckets, rows.Err()
}

func (r *analyticsRepository) CustomerActivity(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.CustomerActivity, error) {
	queryBuilder := squirrel.
		Select(
			"c.id",
			"COALESCE(c.name, '')",
			"COALESCE(c.email, '')",
			"COALESCE(c.phone_number, '')",
			"COUNT(s.id)",
			"COALESCE(SUM(s.total_amount), 0)",
			"MIN(s.completed_at)",
			"MAX(s.completed_at)",
		).
		From(salesTable).
		Join("customers c ON c.id = s.customer_id").
		Where(squirrel.Eq{"s.status": domain.SaleStatusCompleted}).
		GroupBy("c.id", "c.name", "c.email", "c.phone_number").
		Having("COUNT(s.id) >= ?", filters.MinOrders).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySaleFilters(queryBuilder, filters)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a consulta de atividade de clientes")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a consulta de atividade de clientes")
	}
	defer rows.Close()

	activities := make([]*domain.CustomerActivity, 0)

	for rows.Next() {
		activity := &domain.CustomerActivity{}
		if err := rows.Scan(
			&activity.CustomerID,
			&activity.CustomerName,
			&activity.Email,
			&activity.PhoneNumber,
			&activity.TotalOrders,
			&activity.TotalSpent,
			&activity.FirstOrderDate,
			&activity.LastOrderDate,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha de atividade de cliente")
		}

		activities = append(activities, activity)
	}

	return activities, rows.Err()
}

func (r *analyticsRepository) DeliveryRegionTotals(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.DeliveryPerformanceItem, error) {
	queryBuilder := squirrel.
		Select(
			"COALESCE(da.neighborhood, '')",
			"COALESCE(da.city, '')",
			"COUNT(s.id)",
			"AVG(s.delivery_seconds / 60.0)",
			"AVG(s.production_seconds / 60.0)",
		).
		From(salesTable).
		Join("delivery_addresses da ON da.sale_id = s.id").
		Where(squirrel.Eq{"s.status": domain.SaleStatusCompleted}).
		Where("s.delivery_seconds IS NOT NULL").
		Where("s.production_seconds IS NOT NULL").
		GroupBy("da.neighborhood", "da.city").
		Having("COUNT(s.id) >= ?", r.minDeliveries).
		OrderBy(
			"AVG(s.delivery_seconds / 60.0) + AVG(s.production_seconds / 60.0) DESC",
			"da.neighborhood ASC",
		).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySaleFilters(queryBuilder, filters)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a consulta de desempenho de entrega")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a consulta de desempenho de entrega")
	}
	defer rows.Close()

	items := make([]*domain.DeliveryPerformanceItem, 0)

	for rows.Next() {
		item := &domain.DeliveryPerformanceItem{}
		if err := rows.Scan(
			&item.Neighborhood,
			&item.City,
			&item.TotalDeliveries,
			&item.AvgDeliveryTimeMinutes,
			&item.AvgProductionTimeMinutes,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha do desempenho de entrega")
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *analyticsRepository) HourlyTotals(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.HourlyBucket, error) {
	queryBuilder := squirrel.
		Select(
			"EXTRACT(HOUR FROM s.completed_at)::int AS hour",
			"EXTRACT(DOW FROM s.completed_at)::int AS dow",
			"COUNT(s.id)",
			"COALESCE(SUM(s.total_amount), 0)",
		).
		From(salesTable).
		Where(squirrel.Eq{"s.status": domain.SaleStatusCompleted}).
		GroupBy("hour", "dow").
		OrderBy("dow ASC", "hour ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.DayOfWeek != nil {
		queryBuilder = queryBuilder.Where("EXTRACT(DOW FROM s.completed_at)::int = ?", *filters.DayOfWeek)
	}

	queryBuilder = applySaleFilters(queryBuilder, filters)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a consulta de desempenho horário")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a consulta de desempenho horário")
	}
	defer rows.Close()

	buckets := make([]*domain.HourlyBucket, 0)

	for rows.Next() {
		bucket := &domain.HourlyBucket{}
		if err := rows.Scan(
			&bucket.Hour,
			&bucket.DayOfWeek,
			&bucket.SalesCount,
			&bucket.Revenue,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler bucket do desempenho horário")
		}

		buckets = append(buckets, bucket)
	}

	return buckets, rows.Err()
}

func (r *analyticsRepository) ProductMarginTotals(ctx context.Context, filters *domain.AnalyticsFilters) ([]*domain.ProductMarginItem, error) {
	// Os adicionais são agregados em subconsulta por item para não
	// multiplicar as linhas de sale_items no join
	queryBuilder := squirrel.
		Select(
			"p.id",
			"p.name",
			"COALESCE(cat.name, '')",
			"p.base_price",
			"COALESCE(SUM(cz.additional_total), 0)",
			"COALESCE(SUM(si.total_price), 0)",
			"COUNT(DISTINCT s.id)",
		).
		From(saleItemsTable).
		Join("sales s ON s.id = si.sale_id").
		Join("products p ON p.id = si.product_id").
		LeftJoin("categories cat ON cat.id = p.category_id").
		LeftJoin(`(
			SELECT sale_item_id, SUM(additional_price) AS additional_total
			FROM customizations
			GROUP BY sale_item_id
		) cz ON cz.sale_item_id = si.id`).
		Where(squirrel.Eq{"s.status": domain.SaleStatusCompleted}).
		GroupBy("p.id", "p.name", "cat.name", "p.base_price").
		OrderBy("SUM(si.total_price) DESC", "p.id ASC").
		Limit(uint64(*filters.Limit)).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySaleFilters(queryBuilder, filters)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a consulta de margem por produto")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a consulta de margem por produto")
	}
	defer rows.Close()

	items := make([]*domain.ProductMarginItem, 0)

	for rows.Next() {
		item := &domain.ProductMarginItem{}
		if err := rows.Scan(
			&item.ProductID,
			&item.ProductName,
			&item.CategoryName,
			&item.BasePrice,
			&item.CustomizationRevenue,
			&item.TotalRevenue,
			&item.OrderCount,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha da margem por produto")
		}

		items = append(items, item)
	}

	return items, rows.Err()
}
