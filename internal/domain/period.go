package domain

import "time"

// Periods agrupa as janelas de tempo usadas pelos fetchers do dashboard.
type Periods struct {
	Now            time.Time
	MonthStart     time.Time
	MonthEnd       time.Time
	LastMonthStart time.Time
	LastMonthEnd   time.Time
	WeekEnd        time.Time
}

// ResolvePeriods calcula os limites do mês corrente, do mês anterior e da
// próxima semana a partir do instante informado. Função pura do relógio:
// sem cache, sem validação — o relógio é confiado como está. Como os fetchers
// rodam concorrentes, cada um resolve a própria janela e pequenos desvios de
// relógio entre eles são tolerados dentro de um mesmo snapshot.
func ResolvePeriods(now time.Time) Periods {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	return Periods{
		Now:            now,
		MonthStart:     monthStart,
		MonthEnd:       nextMonthStart.Add(-time.Nanosecond),
		LastMonthStart: monthStart.AddDate(0, -1, 0),
		LastMonthEnd:   monthStart.Add(-time.Nanosecond),
		WeekEnd:        now.AddDate(0, 0, 7),
	}
}
