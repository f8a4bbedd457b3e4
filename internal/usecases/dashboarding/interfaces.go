package dashboarding

import (
	"context"
	"time"

	"github.com/prosocial/zen-api/internal/domain"
)

// Dashboarder é a superfície de leitura do dashboard de um estúdio: o
// snapshot completo, os sete acessores independentes (úteis para atualizar um
// widget sem recalcular o resto) e o gancho de invalidação de cache.
type Dashboarder interface {
	// ComposeSnapshot agrega todos os widgets numa passada só: os fetchers
	// rodam concorrentes e o resultado é tudo-ou-nada.
	ComposeSnapshot(ctx context.Context, studioID int) (*domain.DashboardSnapshot, error)

	// GetMonthlyEvents retorna até 10 itens de agenda do mês corrente.
	GetMonthlyEvents(ctx context.Context, studioID int) ([]domain.EventoDelMes, error)

	// GetFinancialBalance retorna o balance de faturado/pago/pendente.
	GetFinancialBalance(ctx context.Context, studioID int) (*domain.BalanceFinanciero, error)

	// GetNewProspects retorna até 8 prospectos criados no mês corrente.
	GetNewProspects(ctx context.Context, studioID int) ([]domain.ProspectoNuevo, error)

	// GetStageDistribution retorna a distribuição de eventos por etapa.
	GetStageDistribution(ctx context.Context, studioID int) ([]domain.EtapaDistribucion, error)

	// GetUpcomingAppointments retorna até 6 citas dos próximos 7 dias.
	GetUpcomingAppointments(ctx context.Context, studioID int) ([]domain.CitaProxima, error)

	// GetPerformanceMetrics retorna os indicadores de desempenho do mês.
	GetPerformanceMetrics(ctx context.Context, studioID int) (*domain.MetricasRendimiento, error)

	// GetQuickStats retorna o resumo leve do cabeçalho, fora do snapshot.
	GetQuickStats(ctx context.Context, studioID int) (*domain.StatsRapidas, error)

	// InvalidateSnapshot descarta o snapshot em cache do estúdio, se houver.
	InvalidateSnapshot(ctx context.Context, studioID int) error
}

// SnapshotCache é o contrato mínimo de cache de snapshots. A implementação
// Redis vive em infrastructure/cache.
type SnapshotCache interface {
	Get(ctx context.Context, studioID int) (*domain.DashboardSnapshot, error)
	Set(ctx context.Context, studioID int, snapshot *domain.DashboardSnapshot, ttl time.Duration) error
	Invalidate(ctx context.Context, studioID int) error
}
