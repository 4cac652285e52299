package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD. String vazia
// significa filtro ausente e devolve nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// EndOfDay desloca a data para o último instante do dia, tornando o
// filtro de data final inclusivo.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
