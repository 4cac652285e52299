package handler

import (
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/analyzing"
)

func Healthcheck(checker HealthChecker) []router.Route {
	return []router.Route{
		router.GET("/healthcheck", HealthcheckHandler(checker)),
	}
}

// Analytics devolve as rotas das nove visões analíticas
func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		router.GET("/v1/analytics/overview", GetSalesOverview(service)),
		router.GET("/v1/analytics/products/ranking", GetProductRanking(service)),
		router.GET("/v1/analytics/channels/performance", GetChannelPerformance(service)),
		router.GET("/v1/analytics/stores/performance", GetStorePerformance(service)),
		router.GET("/v1/analytics/sales/time-series", GetTimeSeries(service)),
		router.GET("/v1/analytics/customers/retention", GetCustomerRetention(service)),
		router.GET("/v1/analytics/delivery/performance", GetDeliveryPerformance(service)),
		router.GET("/v1/analytics/sales/hourly", GetHourlyPerformance(service)),
		router.GET("/v1/analytics/products/margin", GetProductMargin(service)),
	}
}

// Metadata devolve as rotas das dimensões da barra de filtros
func Metadata(repo repository.MetadataRepository) []router.Route {
	return []router.Route{
		router.GET("/v1/metadata", GetMetadata(repo)),
		router.GET("/v1/metadata/stores", ListStores(repo)),
		router.GET("/v1/metadata/channels", ListChannels(repo)),
		router.GET("/v1/metadata/categories", ListCategories(repo)),
	}
}
