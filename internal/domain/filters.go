package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Granularidade dos buckets da série temporal
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

const (
	// DefaultLimit é o limite aplicado quando o chamador não informa um
	DefaultLimit = 20
	// MaxLimit é o teto rígido de linhas por consulta, para limitar o
	// custo do executor
	MaxLimit = 500
)

// Erros de validação do contexto de filtros, detectados antes de
// qualquer acesso ao fact store
var (
	ErrInvalidRange     = errors.New("data final anterior à data inicial")
	ErrInvalidParameter = errors.New("parâmetro de filtro inválido")
)

// AnalyticsFilters é o contexto de filtros compartilhado pelas nove
// visões analíticas. Listas vazias de lojas/canais significam "sem
// restrição", nunca "não casar com nada". Limit é ponteiro para
// distinguir "ausente" (recebe o default) de "zero explícito"
// (rejeitado na normalização).
type AnalyticsFilters struct {
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	StoreIDs   []int64    `json:"store_ids,omitempty"`
	ChannelIDs []int64    `json:"channel_ids,omitempty"`
	Limit      *int       `json:"limit,omitempty"`
	Page       int        `json:"page,omitempty"`

	// Parâmetros específicos por visão
	Period       Period `json:"period,omitempty"`        // série temporal
	DayOfWeek    *int   `json:"day_of_week,omitempty"`   // horária: 0=domingo .. 6=sábado
	MinOrders    int    `json:"min_orders,omitempty"`    // retenção
	DaysInactive int    `json:"days_inactive,omitempty"` // retenção
}

// Normalize valida o contexto e devolve uma cópia canônica: limites com
// default e teto aplicados, listas de IDs ordenadas e sem duplicatas.
// A operação é idempotente e sem efeitos colaterais sobre o receptor;
// filtros logicamente idênticos normalizam para a mesma chave de cache.
func (f AnalyticsFilters) Normalize() (*AnalyticsFilters, error) {
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			f.StartDate.Format(time.DateOnly), f.EndDate.Format(time.DateOnly))
	}

	switch {
	case f.Limit == nil:
		f.Limit = intPtr(DefaultLimit)
	case *f.Limit <= 0:
		return nil, fmt.Errorf("%w: limit deve ser positivo, recebido %d", ErrInvalidParameter, *f.Limit)
	case *f.Limit > MaxLimit:
		// Novo ponteiro: o teto não pode vazar para o contexto original
		f.Limit = intPtr(MaxLimit)
	}

	if f.Page < 0 {
		return nil, fmt.Errorf("%w: page deve ser positiva, recebida %d", ErrInvalidParameter, f.Page)
	}
	if f.Page == 0 {
		f.Page = 1
	}

	switch f.Period {
	case "", PeriodDaily:
		f.Period = PeriodDaily
	case PeriodWeekly, PeriodMonthly:
	default:
		return nil, fmt.Errorf("%w: período desconhecido %q", ErrInvalidParameter, f.Period)
	}

	if f.DayOfWeek != nil && (*f.DayOfWeek < 0 || *f.DayOfWeek > 6) {
		return nil, fmt.Errorf("%w: day_of_week fora do intervalo 0..6: %d", ErrInvalidParameter, *f.DayOfWeek)
	}

	f.StoreIDs = normalizeIDs(f.StoreIDs)
	f.ChannelIDs = normalizeIDs(f.ChannelIDs)

	return &f, nil
}

// CacheKey devolve a representação canônica do contexto, usada como
// chave do cache de resultados. Depende apenas de campos normalizados.
func (f *AnalyticsFilters) CacheKey() string {
	var b strings.Builder

	b.WriteString("s=")
	b.WriteString(formatDatePtr(f.StartDate))
	b.WriteString("|e=")
	b.WriteString(formatDatePtr(f.EndDate))
	b.WriteString("|st=")
	b.WriteString(joinIDs(f.StoreIDs))
	b.WriteString("|ch=")
	b.WriteString(joinIDs(f.ChannelIDs))
	b.WriteString("|l=")
	if f.Limit != nil {
		b.WriteString(strconv.Itoa(*f.Limit))
	}
	b.WriteString("|p=")
	b.WriteString(strconv.Itoa(f.Page))
	b.WriteString("|per=")
	b.WriteString(string(f.Period))
	b.WriteString("|dow=")
	if f.DayOfWeek != nil {
		b.WriteString(strconv.Itoa(*f.DayOfWeek))
	}
	b.WriteString("|mo=")
	b.WriteString(strconv.Itoa(f.MinOrders))
	b.WriteString("|di=")
	b.WriteString(strconv.Itoa(f.DaysInactive))

	return b.String()
}

// normalizeIDs ordena e remove duplicatas preservando a semântica de
// "lista vazia = sem restrição"
func normalizeIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}

	out := make([]int64, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	dedup := out[:1]
	for _, id := range out[1:] {
		if id != dedup[len(dedup)-1] {
			dedup = append(dedup, id)
		}
	}

	return dedup
}

func joinIDs(ids []int64) string {
	if len(ids) == 0 {
		return ""
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, ",")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func intPtr(i int) *int {
	return &i
}
