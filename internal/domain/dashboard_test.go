package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

func TestResolveEventoDelMes(t *testing.T) {
	fecha := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		row        *AgendaItemRow
		wantNombre string
		wantEtapa  string
	}{
		{
			name: "Concepto presente tem prioridade sobre o nome do evento",
			row: &AgendaItemRow{
				ID:           1,
				Fecha:        fecha,
				Concepto:     stringPtr("Sesión de fotos"),
				EventoNombre: "Boda García",
				EtapaNombre:  stringPtr("Edición"),
			},
			wantNombre: "Sesión de fotos",
			wantEtapa:  "Edición",
		},
		{
			name: "Sem concepto cai para o nome do evento",
			row: &AgendaItemRow{
				ID:           2,
				Fecha:        fecha,
				EventoNombre: "Boda García",
				EtapaNombre:  stringPtr("Contrato"),
			},
			wantNombre: "Boda García",
			wantEtapa:  "Contrato",
		},
		{
			name: "Concepto vazio também cai para o nome do evento",
			row: &AgendaItemRow{
				ID:           3,
				Fecha:        fecha,
				Concepto:     stringPtr(""),
				EventoNombre: "XV Años López",
			},
			wantNombre: "XV Años López",
			wantEtapa:  "Sin etapa",
		},
		{
			name: "Evento sem etapa usa o sentinela",
			row: &AgendaItemRow{
				ID:           4,
				Fecha:        fecha,
				EventoNombre: "Evento corporativo",
				EtapaNombre:  nil,
			},
			wantNombre: "Evento corporativo",
			wantEtapa:  "Sin etapa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evento := ResolveEventoDelMes(tt.row)
			assert.Equal(t, tt.wantNombre, evento.Nombre)
			assert.Equal(t, tt.wantEtapa, evento.Etapa)
		})
	}
}

func TestResolveProspectoNuevo(t *testing.T) {
	row := &ProspectoRow{
		ID:          10,
		Nombre:      "Ana Martínez",
		Canal:       stringPtr("Instagram"),
		TipoEvento:  stringPtr("Boda"),
		EtapaEvento: nil,
	}

	prospecto := ResolveProspectoNuevo(row)

	assert.Equal(t, "Ana Martínez", prospecto.Nombre)
	assert.Equal(t, "Sin etapa", prospecto.Etapa)
	assert.Equal(t, "Boda", *prospecto.TipoEvento)
}

func TestResolveCitaProxima(t *testing.T) {
	tests := []struct {
		name         string
		status       string
		wantRequiere bool
	}{
		{"Cita agendada requer confirmação", CitaStatusScheduled, true},
		{"Cita confirmada não requer confirmação", CitaStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cita := ResolveCitaProxima(&CitaRow{ID: 1, Asunto: "Reunión inicial", Status: tt.status})
			assert.Equal(t, tt.wantRequiere, cita.RequiereConfirmacion)
		})
	}
}

func TestBuildBalanceFinanciero(t *testing.T) {
	cotizaciones := []*CotizacionBalance{
		{
			CotizacionID:  1,
			EventoNombre:  "Boda García",
			ClienteNombre: "Carlos García",
			Precio:        10000,
			Descuento:     1000,
			TotalPagado:   4000,
		},
		{
			CotizacionID:  2,
			EventoNombre:  "XV Años López",
			ClienteNombre: "María López",
			Precio:        5000,
			Descuento:     0,
			TotalPagado:   5000,
		},
		{
			// pago acima do faturado: pendente vira zero, nunca negativo
			CotizacionID:  3,
			EventoNombre:  "Sesión familiar",
			ClienteNombre: "Pedro Ruiz",
			Precio:        2000,
			Descuento:     0,
			TotalPagado:   2500,
		},
		{
			// saldo residual abaixo do umbral fica fora da lista
			CotizacionID:  4,
			EventoNombre:  "Evento corporativo",
			ClienteNombre: "Empresa SA",
			Precio:        3000,
			Descuento:     0,
			TotalPagado:   2999.50,
		},
	}

	balance := BuildBalanceFinanciero(cotizaciones, 6500, DefaultBalanceThreshold)

	assert.Equal(t, 19000.0, balance.TotalFacturado)
	assert.Equal(t, 6500.0, balance.TotalPagado)
	assert.Equal(t, 5000.0, balance.TotalPendiente)

	// somente a cotização 1 supera o umbral
	assert.Len(t, balance.PagosPendientes, 1)
	assert.Equal(t, 1, balance.PagosPendientes[0].CotizacionID)
	assert.Equal(t, 5000.0, balance.PagosPendientes[0].Monto)

	// percentual pago fica sem arredondamento
	assert.InDelta(t, 6500.0/19000.0*100, balance.PorcentajePagado, 1e-9)
}

func TestBuildBalanceFinanciero_SemCotizaciones(t *testing.T) {
	balance := BuildBalanceFinanciero(nil, 0, DefaultBalanceThreshold)

	assert.Equal(t, 0.0, balance.TotalFacturado)
	assert.Equal(t, 0.0, balance.TotalPendiente)
	assert.Equal(t, 0.0, balance.PorcentajePagado)
	assert.Empty(t, balance.PagosPendientes)
	assert.NotNil(t, balance.PagosPendientes)
}

func TestPorcentajePagado(t *testing.T) {
	assert.Equal(t, 0.0, PorcentajePagado(500, 0))
	assert.Equal(t, 50.0, PorcentajePagado(500, 1000))
	assert.InDelta(t, 33.333333, PorcentajePagado(1, 3), 1e-4)
}

func TestBuildDistribucionEtapas(t *testing.T) {
	conteos := []*EtapaConteo{
		{EtapaID: 1, Nombre: "Contrato", Posicion: 1, Cantidad: 3},
		{EtapaID: 2, Nombre: "Sesión", Posicion: 2, Cantidad: 2},
		{EtapaID: 3, Nombre: "Entrega", Posicion: 4, Cantidad: 1},
	}

	distribucion := BuildDistribucionEtapas(conteos)

	assert.Len(t, distribucion, 3)
	assert.Equal(t, 50.0, distribucion[0].Porcentaje)
	assert.Equal(t, 33.3, distribucion[1].Porcentaje)
	assert.Equal(t, 16.7, distribucion[2].Porcentaje)

	// as cantidades somam o total usado como denominador
	total := 0
	for _, d := range distribucion {
		total += d.Cantidad
	}
	assert.Equal(t, 6, total)
}

func TestBuildDistribucionEtapas_SemEventos(t *testing.T) {
	assert.Empty(t, BuildDistribucionEtapas(nil))
	assert.Empty(t, BuildDistribucionEtapas([]*EtapaConteo{}))
}

func TestTasaConversion(t *testing.T) {
	assert.Equal(t, 0.0, TasaConversion(0, 0))
	assert.Equal(t, 50.0, TasaConversion(5, 10))
	assert.InDelta(t, 66.666666, TasaConversion(2, 3), 1e-4)
}

func TestEfectividadCitas(t *testing.T) {
	assert.Equal(t, 0.0, EfectividadCitas(0, 0))
	assert.Equal(t, 75.0, EfectividadCitas(3, 4))
}

func TestClassifyTendencia(t *testing.T) {
	tests := []struct {
		name           string
		actual         int
		anterior       int
		wantDireccion  string
		wantPorcentaje float64
	}{
		{
			name:           "Mês anterior zerado é estável com variação zero",
			actual:         12,
			anterior:       0,
			wantDireccion:  TendenciaStable,
			wantPorcentaje: 0,
		},
		{
			name:           "Exatamente +5 por cento ainda é estável",
			actual:         21,
			anterior:       20,
			wantDireccion:  TendenciaStable,
			wantPorcentaje: 5,
		},
		{
			name:           "Exatamente -5 por cento ainda é estável",
			actual:         19,
			anterior:       20,
			wantDireccion:  TendenciaStable,
			wantPorcentaje: -5,
		},
		{
			name:           "Acima de +5 por cento sobe",
			actual:         11,
			anterior:       10,
			wantDireccion:  TendenciaUp,
			wantPorcentaje: 10,
		},
		{
			name:           "Abaixo de -5 por cento desce",
			actual:         8,
			anterior:       10,
			wantDireccion:  TendenciaDown,
			wantPorcentaje: -20,
		},
		{
			name:           "Meses iguais são estáveis",
			actual:         10,
			anterior:       10,
			wantDireccion:  TendenciaStable,
			wantPorcentaje: 0,
		},
		{
			// 17/16 = +6.25%, exibido como 6.3 mas classificado antes de arredondar
			name:           "Percentual exibido arredonda a 1 decimal",
			actual:         17,
			anterior:       16,
			wantDireccion:  TendenciaUp,
			wantPorcentaje: 6.3,
		},
		{
			// 20/19 ~ +5.26%: acima da faixa mesmo arredondando perto dela
			name:           "Classificação usa a variação sem arredondamento",
			actual:         20,
			anterior:       19,
			wantDireccion:  TendenciaUp,
			wantPorcentaje: 5.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tendencia := ClassifyTendencia(tt.actual, tt.anterior)

			assert.Equal(t, tt.wantDireccion, tendencia.Direccion)
			assert.Equal(t, tt.wantPorcentaje, tendencia.Porcentaje)
			assert.Equal(t, tt.actual, tendencia.EventosActual)
			assert.Equal(t, tt.anterior, tendencia.EventosAnterior)
		})
	}
}
