package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestAnalyticsFilters_Normalize(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name     string
		filters  AnalyticsFilters
		wantErr  error
		validate func(t *testing.T, normalized *AnalyticsFilters)
	}{
		{
			name:    "Filtros vazios recebem os defaults",
			filters: AnalyticsFilters{},
			validate: func(t *testing.T, normalized *AnalyticsFilters) {
				require.NotNil(t, normalized.Limit)
				assert.Equal(t, DefaultLimit, *normalized.Limit)
				assert.Equal(t, 1, normalized.Page)
				assert.Equal(t, PeriodDaily, normalized.Period)
			},
		},
		{
			name: "Limite acima do teto é rebaixado para o máximo",
			filters: AnalyticsFilters{
				Limit: intPtr(10_000),
			},
			validate: func(t *testing.T, normalized *AnalyticsFilters) {
				require.NotNil(t, normalized.Limit)
				assert.Equal(t, MaxLimit, *normalized.Limit)
			},
		},
		{
			name: "Limite zero explícito é rejeitado",
			filters: AnalyticsFilters{
				Limit: intPtr(0),
			},
			wantErr: ErrInvalidParameter,
		},
		{
			name: "Limite negativo é rejeitado",
			filters: AnalyticsFilters{
				Limit: intPtr(-5),
			},
			wantErr: ErrInvalidParameter,
		},
		{
			name: "Página negativa é rejeitada",
			filters: AnalyticsFilters{
				Page: -1,
			},
			wantErr: ErrInvalidParameter,
		},
		{
			name: "Data final anterior à inicial é rejeitada",
			filters: AnalyticsFilters{
				StartDate: datePtr(end),
				EndDate:   datePtr(start),
			},
			wantErr: ErrInvalidRange,
		},
		{
			name: "Período desconhecido é rejeitado",
			filters: AnalyticsFilters{
				Period: Period("hourly"),
			},
			wantErr: ErrInvalidParameter,
		},
		{
			name: "Dia da semana fora do intervalo é rejeitado",
			filters: AnalyticsFilters{
				DayOfWeek: intPtr(7),
			},
			wantErr: ErrInvalidParameter,
		},
		{
			name: "IDs são ordenados e deduplicados",
			filters: AnalyticsFilters{
				StoreIDs:   []int64{3, 1, 3, 2},
				ChannelIDs: []int64{5, 5},
			},
			validate: func(t *testing.T, normalized *AnalyticsFilters) {
				assert.Equal(t, []int64{1, 2, 3}, normalized.StoreIDs)
				assert.Equal(t, []int64{5}, normalized.ChannelIDs)
			},
		},
		{
			name: "Lista vazia de IDs permanece sem restrição",
			filters: AnalyticsFilters{
				StoreIDs: []int64{},
			},
			validate: func(t *testing.T, normalized *AnalyticsFilters) {
				assert.Nil(t, normalized.StoreIDs)
			},
		},
		{
			name: "Intervalo de um único dia é válido",
			filters: AnalyticsFilters{
				StartDate: datePtr(start),
				EndDate:   datePtr(start),
			},
			validate: func(t *testing.T, normalized *AnalyticsFilters) {
				assert.Equal(t, start, *normalized.StartDate)
				assert.Equal(t, start, *normalized.EndDate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := tt.filters.Normalize()

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, normalized)
			tt.validate(t, normalized)
		})
	}
}

func TestAnalyticsFilters_Normalize_Idempotente(t *testing.T) {
	filters := AnalyticsFilters{
		StartDate:  datePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:    datePtr(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)),
		StoreIDs:   []int64{9, 2, 2},
		ChannelIDs: []int64{4, 1},
		Limit:      intPtr(2_000),
		Period:     PeriodWeekly,
	}

	once, err := filters.Normalize()
	require.NoError(t, err)

	twice, err := once.Normalize()
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, once.CacheKey(), twice.CacheKey())
}

func TestAnalyticsFilters_Normalize_NaoAlteraOriginal(t *testing.T) {
	original := AnalyticsFilters{
		StoreIDs: []int64{3, 1},
	}

	normalized, err := original.Normalize()
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 1}, original.StoreIDs)
	assert.Equal(t, []int64{1, 3}, normalized.StoreIDs)
	assert.Nil(t, original.Limit)
}

func TestAnalyticsFilters_CacheKey(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Filtros logicamente idênticos geram a mesma chave", func(t *testing.T) {
		first, err := (AnalyticsFilters{
			StartDate: datePtr(start),
			EndDate:   datePtr(end),
			StoreIDs:  []int64{2, 1},
		}).Normalize()
		require.NoError(t, err)

		second, err := (AnalyticsFilters{
			StartDate: datePtr(start),
			EndDate:   datePtr(end),
			StoreIDs:  []int64{1, 2, 2},
			Limit:     intPtr(DefaultLimit),
		}).Normalize()
		require.NoError(t, err)

		assert.Equal(t, first.CacheKey(), second.CacheKey())
	})

	t.Run("Filtros diferentes geram chaves diferentes", func(t *testing.T) {
		first, err := (AnalyticsFilters{StoreIDs: []int64{1}}).Normalize()
		require.NoError(t, err)

		second, err := (AnalyticsFilters{StoreIDs: []int64{2}}).Normalize()
		require.NoError(t, err)

		assert.NotEqual(t, first.CacheKey(), second.CacheKey())
	})

	t.Run("Período e dia da semana participam da chave", func(t *testing.T) {
		daily, err := (AnalyticsFilters{Period: PeriodDaily}).Normalize()
		require.NoError(t, err)

		weekly, err := (AnalyticsFilters{Period: PeriodWeekly}).Normalize()
		require.NoError(t, err)

		assert.NotEqual(t, daily.CacheKey(), weekly.CacheKey())

		withDay, err := (AnalyticsFilters{DayOfWeek: intPtr(0)}).Normalize()
		require.NoError(t, err)

		assert.NotEqual(t, daily.CacheKey(), withDay.CacheKey())
	})
}
