package dashboarding

import (
	"context"
	"testing"
	"time"

	"github.com/prosocial/zen-api/infrastructure/repository/mocks"
	"github.com/prosocial/zen-api/internal/config"
	"github.com/prosocial/zen-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testStudioID = 7

// relógio fixo dos testes: 15 de junho de 2025, 10h
var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

type serviceMocks struct {
	agenda     *mocks.MockAgendaRepository
	evento     *mocks.MockEventoRepository
	cotizacion *mocks.MockCotizacionRepository
	pago       *mocks.MockPagoRepository
	cliente    *mocks.MockClienteRepository
	etapa      *mocks.MockEtapaRepository
	cita       *mocks.MockCitaRepository
}

func newTestService(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		agenda:     mocks.NewMockAgendaRepository(ctrl),
		evento:     mocks.NewMockEventoRepository(ctrl),
		cotizacion: mocks.NewMockCotizacionRepository(ctrl),
		pago:       mocks.NewMockPagoRepository(ctrl),
		cliente:    mocks.NewMockClienteRepository(ctrl),
		etapa:      mocks.NewMockEtapaRepository(ctrl),
		cita:       mocks.NewMockCitaRepository(ctrl),
	}

	service := &Service{
		cfg:         &config.Config{},
		agendaRepo:  m.agenda,
		eventoRepo:  m.evento,
		cotRepo:     m.cotizacion,
		pagoRepo:    m.pago,
		clienteRepo: m.cliente,
		etapaRepo:   m.etapa,
		citaRepo:    m.cita,
		umbralSaldo: domain.DefaultBalanceThreshold,
		now:         func() time.Time { return testNow },
	}

	return service, m
}

// expectAllFetchers prepara respostas vazias bem-sucedidas para os seis
// fetchers do snapshot.
func expectAllFetchers(m *serviceMocks) {
	m.agenda.EXPECT().
		ListByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any(), uint64(domain.MaxEventosDelMes)).
		Return(nil, nil).AnyTimes()
	m.cotizacion.EXPECT().
		ListAprobadasConSaldo(gomock.Any(), testStudioID, gomock.Any()).
		Return(nil, nil).AnyTimes()
	m.pago.EXPECT().
		SumPagadoByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any()).
		Return(0.0, nil).AnyTimes()
	m.cliente.EXPECT().
		ListProspectosByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any(), uint64(domain.MaxProspectosNuevos)).
		Return(nil, nil).AnyTimes()
	m.etapa.EXPECT().
		CountEventosPorEtapa(gomock.Any(), testStudioID).
		Return(nil, nil).AnyTimes()
	m.cita.EXPECT().
		ListProximas(gomock.Any(), testStudioID, gomock.Any(), gomock.Any(), uint64(domain.MaxCitasProximas)).
		Return(nil, nil).AnyTimes()
	m.cotizacion.EXPECT().
		CountByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any()).
		Return(&domain.CotizacionConteo{}, nil).AnyTimes()
	m.evento.EXPECT().
		CountByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any()).
		Return(0, nil).AnyTimes()
	m.evento.EXPECT().
		TopTipoByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()
	m.cita.EXPECT().
		CountByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any()).
		Return(&domain.CitaConteo{}, nil).AnyTimes()
	m.cliente.EXPECT().
		TopCanalByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()
}

func TestComposeSnapshot_TimestampCapturadoNaMesclagem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	expectAllFetchers(m)

	snapshot, err := service.ComposeSnapshot(context.Background(), testStudioID)

	assert.NoError(t, err)
	assert.Equal(t, testStudioID, snapshot.StudioID)
	assert.Equal(t, testNow, snapshot.GeneratedAt)
}

func TestComposeSnapshot_FalhaDeUmFetcherDerrubaTudo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	expectAllFetchers(m)

	// sobrescreve a etapa com uma falha de banco
	m.etapa = mocks.NewMockEtapaRepository(ctrl)
	m.etapa.EXPECT().
		CountEventosPorEtapa(gomock.Any(), testStudioID).
		Return(nil, assert.AnError).AnyTimes()
	service.etapaRepo = m.etapa

	snapshot, err := service.ComposeSnapshot(context.Background(), testStudioID)

	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, ErrDashboardUnavailable)
}

func TestComposeSnapshot_Idempotente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	expectAllFetchers(m)

	first, err := service.ComposeSnapshot(context.Background(), testStudioID)
	assert.NoError(t, err)

	second, err := service.ComposeSnapshot(context.Background(), testStudioID)
	assert.NoError(t, err)

	// mesmo relógio e mesmos dados: snapshots idênticos, sem mutação
	assert.Equal(t, first, second)
}

func TestComposeSnapshot_CacheHitEvitaFetchers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	cached := &domain.DashboardSnapshot{StudioID: testStudioID, GeneratedAt: testNow}
	cache := &fakeCache{snapshot: cached}
	service.cache = cache

	snapshot, err := service.ComposeSnapshot(context.Background(), testStudioID)

	assert.NoError(t, err)
	assert.Equal(t, cached, snapshot)
	assert.Equal(t, 0, cache.setCalls)
}

func TestComposeSnapshot_ErroDeCacheRecomputa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	expectAllFetchers(m)

	cache := &fakeCache{getErr: assert.AnError}
	service.cache = cache

	snapshot, err := service.ComposeSnapshot(context.Background(), testStudioID)

	assert.NoError(t, err)
	assert.NotNil(t, snapshot)
	assert.Equal(t, 1, cache.setCalls)
}

func TestComposeSnapshot_FalhaNaoEntraNoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	expectAllFetchers(m)

	m.pago = mocks.NewMockPagoRepository(ctrl)
	m.pago.EXPECT().
		SumPagadoByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any()).
		Return(0.0, assert.AnError).AnyTimes()
	service.pagoRepo = m.pago

	cache := &fakeCache{}
	service.cache = cache

	_, err := service.ComposeSnapshot(context.Background(), testStudioID)

	assert.ErrorIs(t, err, ErrDashboardUnavailable)
	assert.Equal(t, 0, cache.setCalls)
}

func TestGetMonthlyEvents_AplicaLimiteEJanela(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	periods := domain.ResolvePeriods(testNow)

	rows := []*domain.AgendaItemRow{
		{ID: 1, EventoNombre: "Boda García", ClienteNombre: "Carlos García"},
		{ID: 2, EventoNombre: "XV Años López", ClienteNombre: "María López"},
	}

	m.agenda.EXPECT().
		ListByPeriod(gomock.Any(), testStudioID, periods.MonthStart, periods.MonthEnd, uint64(domain.MaxEventosDelMes)).
		Return(rows, nil)

	eventos, err := service.GetMonthlyEvents(context.Background(), testStudioID)

	assert.NoError(t, err)
	assert.Len(t, eventos, 2)
	assert.Equal(t, "Boda García", eventos[0].Nombre)
	assert.Equal(t, "Sin etapa", eventos[0].Etapa)
}

func TestGetFinancialBalance_RecortesDistintos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	periods := domain.ResolvePeriods(testNow)

	cotizaciones := []*domain.CotizacionBalance{
		{CotizacionID: 1, EventoNombre: "Boda García", ClienteNombre: "Carlos García", Precio: 10000, TotalPagado: 4000},
	}

	// o faturado corta por fecha_evento até o fim do mês; o pago corta por
	// created_at dentro do mês
	m.cotizacion.EXPECT().
		ListAprobadasConSaldo(gomock.Any(), testStudioID, periods.MonthEnd).
		Return(cotizaciones, nil)
	m.pago.EXPECT().
		SumPagadoByPeriod(gomock.Any(), testStudioID, periods.MonthStart, periods.MonthEnd).
		Return(2500.0, nil)

	balance, err := service.GetFinancialBalance(context.Background(), testStudioID)

	assert.NoError(t, err)
	assert.Equal(t, 10000.0, balance.TotalFacturado)
	assert.Equal(t, 2500.0, balance.TotalPagado)
	assert.Equal(t, 6000.0, balance.TotalPendiente)
	assert.Len(t, balance.PagosPendientes, 1)
	assert.InDelta(t, 25.0, balance.PorcentajePagado, 1e-9)
}

func TestGetNewProspects_AplicaLimite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	periods := domain.ResolvePeriods(testNow)

	m.cliente.EXPECT().
		ListProspectosByPeriod(gomock.Any(), testStudioID, periods.MonthStart, periods.MonthEnd, uint64(domain.MaxProspectosNuevos)).
		Return([]*domain.ProspectoRow{{ID: 1, Nombre: "Ana Martínez"}}, nil)

	prospectos, err := service.GetNewProspects(context.Background(), testStudioID)

	assert.NoError(t, err)
	assert.Len(t, prospectos, 1)
	assert.Equal(t, "Sin etapa", prospectos[0].Etapa)
}

func TestGetUpcomingAppointments_JanelaDeSeteDias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.cita.EXPECT().
		ListProximas(gomock.Any(), testStudioID, testNow, testNow.AddDate(0, 0, 7), uint64(domain.MaxCitasProximas)).
		Return([]*domain.CitaRow{{ID: 1, Asunto: "Reunión inicial", Status: domain.CitaStatusScheduled}}, nil)

	citas, err := service.GetUpcomingAppointments(context.Background(), testStudioID)

	assert.NoError(t, err)
	assert.Len(t, citas, 1)
	assert.True(t, citas[0].RequiereConfirmacion)
}

func TestGetPerformanceMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	periods := domain.ResolvePeriods(testNow)

	m.cotizacion.EXPECT().
		CountByPeriod(gomock.Any(), testStudioID, periods.MonthStart, periods.MonthEnd).
		Return(&domain.CotizacionConteo{Total: 10, Aprobadas: 4}, nil)
	m.evento.EXPECT().
		CountByPeriod(gomock.Any(), testStudioID, periods.MonthStart, periods.MonthEnd).
		Return(12, nil)
	m.evento.EXPECT().
		CountByPeriod(gomock.Any(), testStudioID, periods.LastMonthStart, periods.LastMonthEnd).
		Return(10, nil)
	m.evento.EXPECT().
		TopTipoByPeriod(gomock.Any(), testStudioID, periods.MonthStart, periods.MonthEnd).
		Return(&domain.EventoTipoConteo{Nombre: "Boda", Cantidad: 5}, nil)
	m.cita.EXPECT().
		CountByPeriod(gomock.Any(), testStudioID, periods.MonthStart, periods.MonthEnd).
		Return(&domain.CitaConteo{Total: 8, Completadas: 6}, nil)
	m.cliente.EXPECT().
		TopCanalByPeriod(gomock.Any(), testStudioID, periods.MonthStart, periods.MonthEnd).
		Return(&domain.CanalConteo{Nombre: "Instagram", Cantidad: 3}, nil)

	metricas, err := service.GetPerformanceMetrics(context.Background(), testStudioID)

	assert.NoError(t, err)
	assert.Equal(t, 40.0, metricas.TasaConversion)
	assert.Equal(t, domain.TiempoPromedioCierreDias, metricas.TiempoPromedioCierre)
	assert.Equal(t, 75.0, metricas.EfectividadCitas)

	// tendência: 12 sobre 10 = +20%
	assert.Equal(t, domain.TendenciaUp, metricas.Tendencia.Direccion)
	assert.Equal(t, 20.0, metricas.Tendencia.Porcentaje)

	// participação do tipo popular sobre o total de cotizações do mês
	assert.Equal(t, "Boda", metricas.TipoEventoPopular.Nombre)
	assert.Equal(t, 50.0, metricas.TipoEventoPopular.Porcentaje)

	assert.Equal(t, "Instagram", metricas.CanalPrincipal.Nombre)
	assert.Equal(t, 3, metricas.CanalPrincipal.ClientesNuevos)
}

func TestGetPerformanceMetrics_SemDados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.cotizacion.EXPECT().
		CountByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any()).
		Return(&domain.CotizacionConteo{}, nil)
	m.evento.EXPECT().
		CountByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any()).
		Return(0, nil).Times(2)
	m.evento.EXPECT().
		TopTipoByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.cita.EXPECT().
		CountByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any()).
		Return(&domain.CitaConteo{}, nil)
	m.cliente.EXPECT().
		TopCanalByPeriod(gomock.Any(), testStudioID, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	metricas, err := service.GetPerformanceMetrics(context.Background(), testStudioID)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, metricas.TasaConversion)
	assert.Equal(t, domain.TendenciaStable, metricas.Tendencia.Direccion)
	assert.Nil(t, metricas.TipoEventoPopular)
	assert.Nil(t, metricas.CanalPrincipal)
}

func TestGetQuickStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	periods := domain.ResolvePeriods(testNow)

	m.evento.EXPECT().
		CountActivos(gomock.Any(), testStudioID).
		Return(14, nil)
	m.agenda.EXPECT().
		CountByPeriod(gomock.Any(), testStudioID, periods.MonthStart, periods.MonthEnd).
		Return(5, nil)
	m.cliente.EXPECT().
		CountProspectosByPeriod(gomock.Any(), testStudioID, periods.MonthStart, periods.MonthEnd).
		Return(3, nil)
	m.cita.EXPECT().
		CountProximas(gomock.Any(), testStudioID, testNow, testNow.AddDate(0, 0, 7)).
		Return(2, nil)
	m.pago.EXPECT().
		CountPendientesVencidos(gomock.Any(), testStudioID, testNow.AddDate(0, 0, -30)).
		Return(1, nil)

	stats, err := service.GetQuickStats(context.Background(), testStudioID)

	assert.NoError(t, err)
	assert.Equal(t, 14, stats.EventosActivos)
	assert.Equal(t, 5, stats.EventosDelMes)
	assert.Equal(t, 3, stats.ProspectosNuevos)
	assert.Equal(t, 2, stats.CitasSemana)
	assert.Equal(t, 1, stats.PagosVencidos)
}

func TestInvalidateSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	// sem cache é no-op
	assert.NoError(t, service.InvalidateSnapshot(context.Background(), testStudioID))

	cache := &fakeCache{}
	service.cache = cache

	assert.NoError(t, service.InvalidateSnapshot(context.Background(), testStudioID))
	assert.Equal(t, 1, cache.invalidateCalls)
}

// fakeCache é um SnapshotCache em memória para os testes do serviço.
type fakeCache struct {
	snapshot        *domain.DashboardSnapshot
	getErr          error
	setCalls        int
	invalidateCalls int
}

func (f *fakeCache) Get(ctx context.Context, studioID int) (*domain.DashboardSnapshot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.snapshot, nil
}

func (f *fakeCache) Set(ctx context.Context, studioID int, snapshot *domain.DashboardSnapshot, ttl time.Duration) error {
	f.setCalls++
	f.snapshot = snapshot
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, studioID int) error {
	f.invalidateCalls++
	f.snapshot = nil
	return nil
}
