package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-analytics-api/pkg/log"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Defaults da análise de retenção quando o chamador não informa os cortes
const (
	defaultRetentionMinOrders    = 3
	defaultRetentionDaysInactive = 30
)

// listResponse envelopa as visões que devolvem listas
type listResponse struct {
	Data  any `json:"data"`
	Count int `json:"count"`
}

// parseAnalyticsFilters monta o contexto de filtros compartilhado a
// partir da query string. A validação semântica acontece na
// normalização, dentro do serviço; aqui só se rejeita o que não parseia.
func parseAnalyticsFilters(r *http.Request) (domain.AnalyticsFilters, error) {
	filters := domain.AnalyticsFilters{}
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return filters, fmt.Errorf("start_date inválida: %q", query.Get("start_date"))
	}
	filters.StartDate = startDate

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return filters, fmt.Errorf("end_date inválida: %q", query.Get("end_date"))
	}
	if endDate != nil {
		// A data final é inclusiva: o filtro vai até o fim do dia
		end := utils.EndOfDay(*endDate)
		filters.EndDate = &end
	}

	filters.StoreIDs, err = parseIDList(query.Get("store_ids"))
	if err != nil {
		return filters, fmt.Errorf("store_ids inválido: %v", err)
	}

	filters.ChannelIDs, err = parseIDList(query.Get("channel_ids"))
	if err != nil {
		return filters, fmt.Errorf("channel_ids inválido: %v", err)
	}

	// Ausente fica nil: a normalização aplica o default e rejeita
	// valores explícitos fora do intervalo
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filters, fmt.Errorf("limit inválido: %q", raw)
		}
		filters.Limit = &limit
	}

	filters.Page, err = parseInt(query.Get("page"), 0)
	if err != nil {
		return filters, fmt.Errorf("page inválida: %q", query.Get("page"))
	}

	filters.Period = domain.Period(query.Get("period"))

	if raw := query.Get("day_of_week"); raw != "" {
		dayOfWeek, err := strconv.Atoi(raw)
		if err != nil {
			return filters, fmt.Errorf("day_of_week inválido: %q", raw)
		}
		filters.DayOfWeek = &dayOfWeek
	}

	filters.MinOrders, err = parseInt(query.Get("min_orders"), defaultRetentionMinOrders)
	if err != nil {
		return filters, fmt.Errorf("min_orders inválido: %q", query.Get("min_orders"))
	}

	filters.DaysInactive, err = parseInt(query.Get("days_inactive"), defaultRetentionDaysInactive)
	if err != nil {
		return filters, fmt.Errorf("days_inactive inválido: %q", query.Get("days_inactive"))
	}

	return filters, nil
}

func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("identificador inválido: %q", part)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func parseInt(raw string, defaultValue int) (int, error) {
	if raw == "" {
		return defaultValue, nil
	}

	return strconv.Atoi(raw)
}

// writeAnalyticsError traduz a taxonomia de erros do motor para a
// resposta HTTP padronizada
func writeAnalyticsError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRange), errors.Is(err, domain.ErrInvalidParameter):
		logger.WithError(err).Warn("analytics: invalid filter parameters")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, analyzing.ErrQueryTimeout):
		apiErrors.WriteError(w, apiErrors.ErrQueryTimeout, err.Error(), nil)
	case errors.Is(err, analyzing.ErrStoreUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrStoreUnavailable, err.Error(), nil)
	default:
		logger.WithError(err).Error("analytics: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

func respondJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("analytics: failed to encode response")
	}
}

// analyticsHandler concentra o fluxo comum das nove visões: parse dos
// filtros, chamada ao serviço e resposta JSON
func analyticsHandler(
	view string,
	fetch func(r *http.Request, filters domain.AnalyticsFilters) (any, error),
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForView(r.Context(), view)

		filters, err := parseAnalyticsFilters(r)
		if err != nil {
			logger.WithError(err).Warn("analytics: failed to parse query parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := fetch(r, filters)
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		respondJSON(w, logger, result)
	})
}

func GetSalesOverview(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("overview", func(r *http.Request, filters domain.AnalyticsFilters) (any, error) {
		return service.SalesOverview(r.Context(), filters)
	})
}

func GetProductRanking(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("product_ranking", func(r *http.Request, filters domain.AnalyticsFilters) (any, error) {
		items, err := service.ProductRanking(r.Context(), filters)
		if err != nil {
			return nil, err
		}
		return listResponse{Data: items, Count: len(items)}, nil
	})
}

func GetChannelPerformance(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("channel_performance", func(r *http.Request, filters domain.AnalyticsFilters) (any, error) {
		items, err := service.ChannelPerformance(r.Context(), filters)
		if err != nil {
			return nil, err
		}
		return listResponse{Data: items, Count: len(items)}, nil
	})
}

func GetStorePerformance(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("store_performance", func(r *http.Request, filters domain.AnalyticsFilters) (any, error) {
		items, err := service.StorePerformance(r.Context(), filters)
		if err != nil {
			return nil, err
		}
		return listResponse{Data: items, Count: len(items)}, nil
	})
}

func GetTimeSeries(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("time_series", func(r *http.Request, filters domain.AnalyticsFilters) (any, error) {
		points, err := service.TimeSeries(r.Context(), filters)
		if err != nil {
			return nil, err
		}
		return listResponse{Data: points, Count: len(points)}, nil
	})
}

func GetCustomerRetention(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("customer_retention", func(r *http.Request, filters domain.AnalyticsFilters) (any, error) {
		items, err := service.CustomerRetention(r.Context(), filters)
		if err != nil {
			return nil, err
		}
		return listResponse{Data: items, Count: len(items)}, nil
	})
}

func GetDeliveryPerformance(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("delivery_performance", func(r *http.Request, filters domain.AnalyticsFilters) (any, error) {
		items, err := service.DeliveryPerformance(r.Context(), filters)
		if err != nil {
			return nil, err
		}
		return listResponse{Data: items, Count: len(items)}, nil
	})
}

func GetHourlyPerformance(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("hourly_performance", func(r *http.Request, filters domain.AnalyticsFilters) (any, error) {
		items, err := service.HourlyPerformance(r.Context(), filters)
		if err != nil {
			return nil, err
		}
		return listResponse{Data: items, Count: len(items)}, nil
	})
}

func GetProductMargin(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("product_margin", func(r *http.Request, filters domain.AnalyticsFilters) (any, error) {
		items, err := service.ProductMargin(r.Context(), filters)
		if err != nil {
			return nil, err
		}
		return listResponse{Data: items, Count: len(items)}, nil
	})
}
