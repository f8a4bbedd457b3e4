package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriods(t *testing.T) {
	tests := []struct {
		name               string
		now                time.Time
		wantMonthStart     time.Time
		wantMonthEnd       time.Time
		wantLastMonthStart time.Time
		wantLastMonthEnd   time.Time
		wantWeekEnd        time.Time
	}{
		{
			name:               "Meio do mês",
			now:                time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
			wantMonthStart:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			wantMonthEnd:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
			wantLastMonthStart: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			wantLastMonthEnd:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
			wantWeekEnd:        time.Date(2025, 6, 22, 10, 30, 0, 0, time.UTC),
		},
		{
			name:               "Dezembro vira o ano",
			now:                time.Date(2025, 12, 28, 23, 59, 0, 0, time.UTC),
			wantMonthStart:     time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			wantMonthEnd:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
			wantLastMonthStart: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			wantLastMonthEnd:   time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
			wantWeekEnd:        time.Date(2026, 1, 4, 23, 59, 0, 0, time.UTC),
		},
		{
			name:               "Janeiro olha para dezembro do ano anterior",
			now:                time.Date(2026, 1, 3, 8, 0, 0, 0, time.UTC),
			wantMonthStart:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			wantMonthEnd:       time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
			wantLastMonthStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			wantLastMonthEnd:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
			wantWeekEnd:        time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			name:               "Fevereiro em ano bissexto",
			now:                time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
			wantMonthStart:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantMonthEnd:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
			wantLastMonthStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantLastMonthEnd:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
			wantWeekEnd:        time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods := ResolvePeriods(tt.now)

			assert.Equal(t, tt.now, periods.Now)
			assert.Equal(t, tt.wantMonthStart, periods.MonthStart)
			assert.Equal(t, tt.wantMonthEnd, periods.MonthEnd)
			assert.Equal(t, tt.wantLastMonthStart, periods.LastMonthStart)
			assert.Equal(t, tt.wantLastMonthEnd, periods.LastMonthEnd)
			assert.Equal(t, tt.wantWeekEnd, periods.WeekEnd)
		})
	}
}

func TestResolvePeriods_JanelasNaoSeSobrepoem(t *testing.T) {
	periods := ResolvePeriods(time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC))

	assert.True(t, periods.LastMonthEnd.Before(periods.MonthStart))
	assert.True(t, periods.MonthStart.Before(periods.MonthEnd))
}
