package dashboarding

import (
	"context"
	"errors"
	"time"

	"github.com/prosocial/zen-api/infrastructure/repository"
	"github.com/prosocial/zen-api/internal/config"
	"github.com/prosocial/zen-api/internal/domain"
	"github.com/prosocial/zen-api/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrDashboardUnavailable é o único erro visível ao chamador quando qualquer
// fetcher falha: sem snapshot parcial, sem degradação por seção. A causa
// original fica apenas nos logs.
var ErrDashboardUnavailable = errors.New("erro ao carregar os dados do dashboard")

// Service implementa Dashboarder sobre os repositórios do estúdio.
//
// Os fetchers são independentes e somente leitura; cada um resolve a própria
// janela de tempo no momento em que roda, então dentro de um snapshot pode
// haver um pequeno desvio de relógio entre seções. Também não há isolamento
// transacional entre os fetchers: se os dados mudam durante a composição, as
// seções podem observar instantes levemente diferentes. É uma janela de
// inconsistência aceita, não um defeito a corrigir.
type Service struct {
	cfg         *config.Config
	agendaRepo  repository.AgendaRepository
	eventoRepo  repository.EventoRepository
	cotRepo     repository.CotizacionRepository
	pagoRepo    repository.PagoRepository
	clienteRepo repository.ClienteRepository
	etapaRepo   repository.EtapaRepository
	citaRepo    repository.CitaRepository
	cache       SnapshotCache
	umbralSaldo float64
	now         func() time.Time
}

// NewService cria o serviço de dashboard sem cache.
func NewService(
	cfg *config.Config,
	agendaRepo repository.AgendaRepository,
	eventoRepo repository.EventoRepository,
	cotRepo repository.CotizacionRepository,
	pagoRepo repository.PagoRepository,
	clienteRepo repository.ClienteRepository,
	etapaRepo repository.EtapaRepository,
	citaRepo repository.CitaRepository,
) *Service {
	umbral := cfg.Dashboard.BalanceThreshold
	if umbral <= 0 {
		umbral = domain.DefaultBalanceThreshold
	}

	return &Service{
		cfg:         cfg,
		agendaRepo:  agendaRepo,
		eventoRepo:  eventoRepo,
		cotRepo:     cotRepo,
		pagoRepo:    pagoRepo,
		clienteRepo: clienteRepo,
		etapaRepo:   etapaRepo,
		citaRepo:    citaRepo,
		umbralSaldo: umbral,
		now:         time.Now,
	}
}

// WithCache habilita o cache de snapshots. O cache nunca guarda falhas e um
// erro de cache degrada para recomputar, nunca para falhar a requisição.
func (s *Service) WithCache(cache SnapshotCache) *Service {
	s.cache = cache
	return s
}

// ComposeSnapshot dispara os seis fetchers de widget concorrentes e espera
// todos terminarem: qualquer falha derruba a composição inteira. O timestamp
// do snapshot é capturado na mesclagem, não por fetcher.
func (s *Service) ComposeSnapshot(ctx context.Context, studioID int) (*domain.DashboardSnapshot, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, studioID)
		if err != nil {
			logrus.WithError(err).WithField("studio_id", studioID).
				Warn("Erro ao consultar cache de snapshot, recomputando")
		} else if cached != nil {
			return cached, nil
		}
	}

	snapshot := &domain.DashboardSnapshot{StudioID: studioID}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		eventos, err := s.GetMonthlyEvents(gctx, studioID)
		if err != nil {
			return err
		}
		snapshot.Eventos = eventos
		return nil
	})

	g.Go(func() error {
		balance, err := s.GetFinancialBalance(gctx, studioID)
		if err != nil {
			return err
		}
		snapshot.Balance = balance
		return nil
	})

	g.Go(func() error {
		prospectos, err := s.GetNewProspects(gctx, studioID)
		if err != nil {
			return err
		}
		snapshot.Prospectos = prospectos
		return nil
	})

	g.Go(func() error {
		etapas, err := s.GetStageDistribution(gctx, studioID)
		if err != nil {
			return err
		}
		snapshot.Etapas = etapas
		return nil
	})

	g.Go(func() error {
		citas, err := s.GetUpcomingAppointments(gctx, studioID)
		if err != nil {
			return err
		}
		snapshot.Citas = citas
		return nil
	})

	g.Go(func() error {
		rendimiento, err := s.GetPerformanceMetrics(gctx, studioID)
		if err != nil {
			return err
		}
		snapshot.Rendimiento = rendimiento
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).WithField("studio_id", studioID).
			Error("Erro ao compor snapshot do dashboard")
		return nil, ErrDashboardUnavailable
	}

	snapshot.GeneratedAt = s.now()

	if s.cache != nil {
		if err := s.cache.Set(ctx, studioID, snapshot, s.cfg.Dashboard.CacheTTL); err != nil {
			logrus.WithError(err).WithField("studio_id", studioID).
				Warn("Erro ao guardar snapshot no cache")
		}
	}

	return snapshot, nil
}

// InvalidateSnapshot descarta o snapshot em cache do estúdio. Sem cache
// habilitado é um no-op.
func (s *Service) InvalidateSnapshot(ctx context.Context, studioID int) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, studioID)
}

// GetMonthlyEvents retorna até 10 itens de agenda do mês corrente, em ordem
// cronológica, com nome e etapa resolvidos com fallback.
func (s *Service) GetMonthlyEvents(ctx context.Context, studioID int) ([]domain.EventoDelMes, error) {
	periods := domain.ResolvePeriods(s.now())

	rows, err := s.agendaRepo.ListByPeriod(ctx, studioID, periods.MonthStart, periods.MonthEnd, domain.MaxEventosDelMes)
	if err != nil {
		return nil, err
	}

	eventos := make([]domain.EventoDelMes, 0, len(rows))
	for _, row := range rows {
		eventos = append(eventos, domain.ResolveEventoDelMes(row))
	}

	return eventos, nil
}

// GetFinancialBalance calcula o balance financeiro. As duas somas usam
// recortes diferentes de propósito: o pago considera só o mês corrente, o
// faturado/pendente considera as cotizações de eventos até o fim do mês,
// incluindo meses anteriores com saldo em aberto.
func (s *Service) GetFinancialBalance(ctx context.Context, studioID int) (*domain.BalanceFinanciero, error) {
	periods := domain.ResolvePeriods(s.now())

	cotizaciones, err := s.cotRepo.ListAprobadasConSaldo(ctx, studioID, periods.MonthEnd)
	if err != nil {
		return nil, err
	}

	pagadoMes, err := s.pagoRepo.SumPagadoByPeriod(ctx, studioID, periods.MonthStart, periods.MonthEnd)
	if err != nil {
		return nil, err
	}

	return domain.BuildBalanceFinanciero(cotizaciones, pagadoMes, s.umbralSaldo), nil
}

// GetNewProspects retorna até 8 prospectos do mês, dos mais recentes para os
// mais antigos.
func (s *Service) GetNewProspects(ctx context.Context, studioID int) ([]domain.ProspectoNuevo, error) {
	periods := domain.ResolvePeriods(s.now())

	rows, err := s.clienteRepo.ListProspectosByPeriod(ctx, studioID, periods.MonthStart, periods.MonthEnd, domain.MaxProspectosNuevos)
	if err != nil {
		return nil, err
	}

	prospectos := make([]domain.ProspectoNuevo, 0, len(rows))
	for _, row := range rows {
		prospectos = append(prospectos, domain.ResolveProspectoNuevo(row))
	}

	return prospectos, nil
}

// GetStageDistribution retorna a participação de cada etapa no total de
// eventos não arquivados. Etapas sem eventos são omitidas, não zeradas.
func (s *Service) GetStageDistribution(ctx context.Context, studioID int) ([]domain.EtapaDistribucion, error) {
	conteos, err := s.etapaRepo.CountEventosPorEtapa(ctx, studioID)
	if err != nil {
		return nil, err
	}

	return domain.BuildDistribucionEtapas(conteos), nil
}

// GetUpcomingAppointments retorna até 6 citas dos próximos 7 dias, por data e
// hora, marcando as que ainda requerem confirmação.
func (s *Service) GetUpcomingAppointments(ctx context.Context, studioID int) ([]domain.CitaProxima, error) {
	periods := domain.ResolvePeriods(s.now())

	rows, err := s.citaRepo.ListProximas(ctx, studioID, periods.Now, periods.WeekEnd, domain.MaxCitasProximas)
	if err != nil {
		return nil, err
	}

	citas := make([]domain.CitaProxima, 0, len(rows))
	for _, row := range rows {
		citas = append(citas, domain.ResolveCitaProxima(row))
	}

	return citas, nil
}

// GetPerformanceMetrics agrega os indicadores do mês: conversão de
// cotizações, tipo de evento mais popular, efetividade de citas, tendência
// mês a mês e canal principal de aquisição.
func (s *Service) GetPerformanceMetrics(ctx context.Context, studioID int) (*domain.MetricasRendimiento, error) {
	periods := domain.ResolvePeriods(s.now())

	cotConteo, err := s.cotRepo.CountByPeriod(ctx, studioID, periods.MonthStart, periods.MonthEnd)
	if err != nil {
		return nil, err
	}

	eventosActual, err := s.eventoRepo.CountByPeriod(ctx, studioID, periods.MonthStart, periods.MonthEnd)
	if err != nil {
		return nil, err
	}

	eventosAnterior, err := s.eventoRepo.CountByPeriod(ctx, studioID, periods.LastMonthStart, periods.LastMonthEnd)
	if err != nil {
		return nil, err
	}

	topTipo, err := s.eventoRepo.TopTipoByPeriod(ctx, studioID, periods.MonthStart, periods.MonthEnd)
	if err != nil {
		return nil, err
	}

	citaConteo, err := s.citaRepo.CountByPeriod(ctx, studioID, periods.MonthStart, periods.MonthEnd)
	if err != nil {
		return nil, err
	}

	topCanal, err := s.clienteRepo.TopCanalByPeriod(ctx, studioID, periods.MonthStart, periods.MonthEnd)
	if err != nil {
		return nil, err
	}

	metricas := &domain.MetricasRendimiento{
		TasaConversion:       domain.TasaConversion(cotConteo.Aprobadas, cotConteo.Total),
		TiempoPromedioCierre: domain.TiempoPromedioCierreDias,
		EfectividadCitas:     domain.EfectividadCitas(citaConteo.Completadas, citaConteo.Total),
		Tendencia:            domain.ClassifyTendencia(eventosActual, eventosAnterior),
	}

	if topTipo != nil {
		// participação calculada sobre o total de cotizações do mês
		porcentaje := 0.0
		if cotConteo.Total > 0 {
			porcentaje = utils.RoundWithOneDecimalPlace(float64(topTipo.Cantidad) / float64(cotConteo.Total) * 100)
		}
		metricas.TipoEventoPopular = &domain.TipoEventoPopular{
			Nombre:     topTipo.Nombre,
			Cantidad:   topTipo.Cantidad,
			Porcentaje: porcentaje,
		}
	}

	if topCanal != nil {
		metricas.CanalPrincipal = &domain.CanalPrincipal{
			Nombre:         topCanal.Nombre,
			ClientesNuevos: topCanal.Cantidad,
		}
	}

	return metricas, nil
}

// GetQuickStats retorna o resumo do cabeçalho: totais do mês, citas da semana
// e pagamentos pendentes há 30 dias ou mais.
func (s *Service) GetQuickStats(ctx context.Context, studioID int) (*domain.StatsRapidas, error) {
	periods := domain.ResolvePeriods(s.now())

	eventosActivos, err := s.eventoRepo.CountActivos(ctx, studioID)
	if err != nil {
		return nil, err
	}

	eventosDelMes, err := s.agendaRepo.CountByPeriod(ctx, studioID, periods.MonthStart, periods.MonthEnd)
	if err != nil {
		return nil, err
	}

	prospectos, err := s.clienteRepo.CountProspectosByPeriod(ctx, studioID, periods.MonthStart, periods.MonthEnd)
	if err != nil {
		return nil, err
	}

	citasSemana, err := s.citaRepo.CountProximas(ctx, studioID, periods.Now, periods.WeekEnd)
	if err != nil {
		return nil, err
	}

	pagosVencidos, err := s.pagoRepo.CountPendientesVencidos(ctx, studioID, periods.Now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	return &domain.StatsRapidas{
		EventosActivos:   eventosActivos,
		EventosDelMes:    eventosDelMes,
		ProspectosNuevos: prospectos,
		CitasSemana:      citasSemana,
		PagosVencidos:    pagosVencidos,
	}, nil
}
