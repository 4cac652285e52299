package domain

import "time"

// View identifica cada uma das nove visões analíticas. Usada como
// discriminante da chave do cache de resultados e no roteamento interno
// do executor — acrescentar uma décima visão é uma mudança fechada aqui.
type View string

const (
	ViewOverview            View = "overview"
	ViewProductRanking      View = "product_ranking"
	ViewChannelPerformance  View = "channel_performance"
	ViewStorePerformance    View = "store_performance"
	ViewTimeSeries          View = "time_series"
	ViewCustomerRetention   View = "customer_retention"
	ViewDeliveryPerformance View = "delivery_performance"
	ViewHourlyPerformance   View = "hourly_performance"
	ViewProductMargin       View = "product_margin"
)

// DayNames traduz o dia da semana (0=domingo .. 6=sábado, convenção do
// EXTRACT(DOW) do Postgres) para o nome em português
var DayNames = [7]string{"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}

// SalesOverview consolida as métricas gerais de vendas. Receita,
// desconto e taxa de entrega somam apenas vendas concluídas; os
// contadores consideram todas as vendas do filtro.
type SalesOverview struct {
	TotalSales       int     `json:"total_sales"`
	CompletedSales   int     `json:"completed_sales"`
	CancelledSales   int     `json:"cancelled_sales"`
	TotalRevenue     float64 `json:"total_revenue"`
	AverageTicket    float64 `json:"average_ticket"`
	TotalDiscount    float64 `json:"total_discount"`
	TotalDeliveryFee float64 `json:"total_delivery_fee"`
}

// ProductRankingItem representa um produto no ranking por quantidade vendida
type ProductRankingItem struct {
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	CategoryName  string  `json:"category_name,omitempty"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	OrderCount    int     `json:"order_count"`
	AveragePrice  float64 `json:"average_price"`
}

// ChannelPerformanceItem representa o desempenho de um canal de venda
type ChannelPerformanceItem struct {
	ChannelID         int64   `json:"channel_id"`
	ChannelName       string  `json:"channel_name"`
	ChannelType       string  `json:"channel_type"`
	TotalSales        int     `json:"total_sales"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageTicket     float64 `json:"average_ticket"`
	RevenuePercentage float64 `json:"revenue_percentage"`
}

// StorePerformanceItem representa o desempenho de uma loja
type StorePerformanceItem struct {
	StoreID           int64   `json:"store_id"`
	StoreName         string  `json:"store_name"`
	City              string  `json:"city,omitempty"`
	State             string  `json:"state,omitempty"`
	TotalSales        int     `json:"total_sales"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageTicket     float64 `json:"average_ticket"`
	RevenuePercentage float64 `json:"revenue_percentage"`
}

// TimeSeriesPoint é um bucket da série temporal de vendas. Buckets sem
// vendas dentro do intervalo são emitidos com valores zerados.
type TimeSeriesPoint struct {
	Date          time.Time `json:"date"`
	SalesCount    int       `json:"sales_count"`
	Revenue       float64   `json:"revenue"`
	AverageTicket float64   `json:"average_ticket"`
}

// CustomerRetentionItem representa um cliente em risco de churn
type CustomerRetentionItem struct {
	CustomerID         int64     `json:"customer_id"`
	CustomerName       string    `json:"customer_name"`
	Email              string    `json:"email,omitempty"`
	PhoneNumber        string    `json:"phone_number,omitempty"`
	TotalOrders        int       `json:"total_orders"`
	TotalSpent         float64   `json:"total_spent"`
	AverageTicket      float64   `json:"average_ticket"`
	FirstOrderDate     time.Time `json:"first_order_date"`
	LastOrderDate      time.Time `json:"last_order_date"`
	DaysSinceLastOrder int       `json:"days_since_last_order"`
}

// DeliveryPerformanceItem representa o desempenho de entrega em uma
// região. Os tempos são médias em minutos; total_delivery_time_minutes
// é a soma das duas médias e é a chave de ordenação (pior região primeiro).
type DeliveryPerformanceItem struct {
	Neighborhood             string  `json:"neighborhood"`
	City                     string  `json:"city"`
	TotalDeliveries          int     `json:"total_deliveries"`
	AvgDeliveryTimeMinutes   float64 `json:"avg_delivery_time_minutes"`
	AvgProductionTimeMinutes float64 `json:"avg_production_time_minutes"`
	TotalDeliveryTimeMinutes float64 `json:"total_delivery_time_minutes"`
}

// HourlyPerformanceItem representa as vendas em um bucket hora×dia.
// DayOfWeek é nulo quando a consulta agrega todos os dias em um único
// perfil horário.
type HourlyPerformanceItem struct {
	Hour          int     `json:"hour"`
	DayOfWeek     *int    `json:"day_of_week,omitempty"`
	DayName       string  `json:"day_name,omitempty"`
	SalesCount    int     `json:"sales_count"`
	Revenue       float64 `json:"revenue"`
	AverageTicket float64 `json:"average_ticket"`
}

// ProductMarginItem expõe o preço base do produto e a receita de
// adicionais como campos separados, nunca somados — é essa separação que
// revela produtos cuja margem real é mascarada pelos adicionais. Não há
// custo de produção no fact store: margem aqui é relativa ao preço base.
type ProductMarginItem struct {
	ProductID            int64   `json:"product_id"`
	ProductName          string  `json:"product_name"`
	CategoryName         string  `json:"category_name,omitempty"`
	BasePrice            float64 `json:"base_price"`
	CustomizationRevenue float64 `json:"customization_revenue"`
	TotalRevenue         float64 `json:"total_revenue"`
	OrderCount           int     `json:"order_count"`
}

// Linhas brutas devolvidas pelo fact store, antes do pós-processamento
// do executor (percentuais, preenchimento de lacunas, predicados).

// OverviewTotals é a linha única da consulta de visão geral
type OverviewTotals struct {
	TotalSales           int
	CompletedSales       int
	CancelledSales       int
	CompletedRevenue     float64
	CompletedDiscount    float64
	CompletedDeliveryFee float64
}

// SalesBucket é um bucket não vazio da série temporal
type SalesBucket struct {
	Bucket     time.Time
	SalesCount int
	Revenue    float64
}

// HourlyBucket é um bucket não vazio hora×dia-da-semana
type HourlyBucket struct {
	Hour       int
	DayOfWeek  int
	SalesCount int
	Revenue    float64
}

// CustomerActivity é o agregado janelado por cliente: contagem e datas
// calculadas em uma única passada para manter contagem e recência
// consistentes entre si
type CustomerActivity struct {
	CustomerID     int64
	CustomerName   string
	Email          string
	PhoneNumber    string
	TotalOrders    int
	TotalSpent     float64
	FirstOrderDate time.Time
	LastOrderDate  time.Time
}
