package domain

import (
	"time"

	"github.com/prosocial/zen-api/pkg/utils"
)

// Limites de itens por widget do dashboard
const (
	MaxEventosDelMes    = 10
	MaxProspectosNuevos = 8
	MaxCitasProximas    = 6
)

// DefaultBalanceThreshold é o piso (em unidades de moeda) abaixo do qual um
// saldo pendente é descartado. Absorve ruído de ponto flutuante herdado do
// pipeline de preços, não é regra de negócio. Assume moeda com 2 decimais.
const DefaultBalanceThreshold = 1.0

// TiempoPromedioCierreDias é um placeholder assumido, não calculado.
// TODO: calcular a partir dos timestamps de criação/aprovação das cotizações.
const TiempoPromedioCierreDias = 15

// Direções de tendência mês a mês
const (
	TendenciaUp     = "up"
	TendenciaDown   = "down"
	TendenciaStable = "stable"
)

// tendenciaBand é a faixa percentual (+/-) dentro da qual a variação mês a
// mês ainda conta como estável. Exatamente +5 ou -5 é estável.
const tendenciaBand = 5.0

// EventoDelMes é um item de agenda do mês com os nomes de exibição resolvidos.
type EventoDelMes struct {
	ID      int       `json:"id"`
	Nombre  string    `json:"nombre"`
	Fecha   time.Time `json:"fecha"`
	Hora    string    `json:"hora"`
	Sede    *string   `json:"sede,omitempty"`
	Cliente string    `json:"cliente"`
	Etapa   string    `json:"etapa"`
}

// PagoPendiente é uma linha de saldo em aberto de uma cotização.
type PagoPendiente struct {
	CotizacionID int     `json:"cotizacionId"`
	Evento       string  `json:"evento"`
	Cliente      string  `json:"cliente"`
	Monto        float64 `json:"monto"`
}

// BalanceFinanciero resume o faturado, o pago no mês e o pendente por cotização.
type BalanceFinanciero struct {
	TotalFacturado   float64         `json:"totalFacturado"`
	TotalPagado      float64         `json:"totalPagado"`
	TotalPendiente   float64         `json:"totalPendiente"`
	PorcentajePagado float64         `json:"porcentajePagado"`
	PagosPendientes  []PagoPendiente `json:"pagosPendientes"`
}

// ProspectoNuevo é um cliente prospecto/new criado no mês, enriquecido com o
// canal e com o tipo e a etapa do evento mais recente.
type ProspectoNuevo struct {
	ID         int       `json:"id"`
	Nombre     string    `json:"nombre"`
	Email      *string   `json:"email,omitempty"`
	Telefono   *string   `json:"telefono,omitempty"`
	Canal      *string   `json:"canal,omitempty"`
	TipoEvento *string   `json:"tipoEvento,omitempty"`
	Etapa      string    `json:"etapa"`
	CreatedAt  time.Time `json:"created_at"`
}

// EtapaDistribucion é a participação de uma etapa no total de eventos contados.
type EtapaDistribucion struct {
	EtapaID    int     `json:"etapaId"`
	Nombre     string  `json:"nombre"`
	Posicion   int     `json:"posicion"`
	Cantidad   int     `json:"cantidad"`
	Porcentaje float64 `json:"porcentaje"`
}

// CitaProxima é uma cita agendada/confirmada dos próximos 7 dias.
type CitaProxima struct {
	ID                   int       `json:"id"`
	Asunto               string    `json:"asunto"`
	Fecha                time.Time `json:"fecha"`
	Hora                 string    `json:"hora"`
	Tipo                 string    `json:"tipo"`
	Modalidad            string    `json:"modalidad"`
	Cliente              string    `json:"cliente"`
	Evento               string    `json:"evento"`
	RequiereConfirmacion bool      `json:"requiere_confirmacion"`
}

// TendenciaEventos classifica a variação de eventos mês a mês.
type TendenciaEventos struct {
	Direccion       string  `json:"direccion"`
	Porcentaje      float64 `json:"porcentaje"`
	EventosActual   int     `json:"eventosActual"`
	EventosAnterior int     `json:"eventosAnterior"`
}

// TipoEventoPopular é o tipo de evento com mais eventos ativos no mês.
type TipoEventoPopular struct {
	Nombre     string  `json:"nombre"`
	Cantidad   int     `json:"cantidad"`
	Porcentaje float64 `json:"porcentaje"`
}

// CanalPrincipal é o canal de aquisição com mais clientes novos no mês.
type CanalPrincipal struct {
	Nombre         string `json:"nombre"`
	ClientesNuevos int    `json:"clientesNuevos"`
}

// MetricasRendimiento agrega os indicadores de desempenho do mês.
type MetricasRendimiento struct {
	TasaConversion       float64            `json:"tasaConversion"`
	TiempoPromedioCierre int                `json:"tiempoPromedioCierre"`
	TipoEventoPopular    *TipoEventoPopular `json:"tipoEventoPopular,omitempty"`
	EfectividadCitas     float64            `json:"efectividadCitas"`
	Tendencia            TendenciaEventos   `json:"tendencia"`
	CanalPrincipal       *CanalPrincipal    `json:"canalPrincipal,omitempty"`
}

// StatsRapidas é o resumo leve do cabeçalho, fora do snapshot completo.
type StatsRapidas struct {
	EventosActivos   int `json:"eventosActivos"`
	EventosDelMes    int `json:"eventosDelMes"`
	ProspectosNuevos int `json:"prospectosNuevos"`
	CitasSemana      int `json:"citasSemana"`
	PagosVencidos    int `json:"pagosVencidos"`
}

// DashboardSnapshot é o resultado imutável de uma passada completa de
// agregação para um estúdio.
type DashboardSnapshot struct {
	StudioID    int                  `json:"studioId"`
	Eventos     []EventoDelMes       `json:"eventosDelMes"`
	Balance     *BalanceFinanciero   `json:"balanceFinanciero"`
	Prospectos  []ProspectoNuevo     `json:"prospectosNuevos"`
	Etapas      []EtapaDistribucion  `json:"distribucionEtapas"`
	Citas       []CitaProxima        `json:"citasProximas"`
	Rendimiento *MetricasRendimiento `json:"metricasRendimiento"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

// ResolveEventoDelMes converte a linha de agenda num item de exibição.
// O nome cai do concepto da agenda para o nome do evento quando ausente;
// a etapa cai para o sentinela "Sin etapa".
func ResolveEventoDelMes(row *AgendaItemRow) EventoDelMes {
	nombre := row.EventoNombre
	if row.Concepto != nil && *row.Concepto != "" {
		nombre = *row.Concepto
	}

	etapa := EtapaSinNombre
	if row.EtapaNombre != nil && *row.EtapaNombre != "" {
		etapa = *row.EtapaNombre
	}

	return EventoDelMes{
		ID:      row.ID,
		Nombre:  nombre,
		Fecha:   row.Fecha,
		Hora:    row.Hora,
		Sede:    row.Sede,
		Cliente: row.ClienteNombre,
		Etapa:   etapa,
	}
}

// ResolveProspectoNuevo converte a linha de prospecto num item de exibição,
// aplicando o sentinela de etapa quando o evento mais recente não tem uma.
func ResolveProspectoNuevo(row *ProspectoRow) ProspectoNuevo {
	etapa := EtapaSinNombre
	if row.EtapaEvento != nil && *row.EtapaEvento != "" {
		etapa = *row.EtapaEvento
	}

	return ProspectoNuevo{
		ID:         row.ID,
		Nombre:     row.Nombre,
		Email:      row.Email,
		Telefono:   row.Telefono,
		Canal:      row.Canal,
		TipoEvento: row.TipoEvento,
		Etapa:      etapa,
		CreatedAt:  row.CreatedAt,
	}
}

// ResolveCitaProxima converte a linha de cita num item de exibição. Citas
// ainda não confirmadas pelo cliente ficam marcadas para confirmação.
func ResolveCitaProxima(row *CitaRow) CitaProxima {
	return CitaProxima{
		ID:                   row.ID,
		Asunto:               row.Asunto,
		Fecha:                row.Fecha,
		Hora:                 row.Hora,
		Tipo:                 row.Tipo,
		Modalidad:            row.Modalidad,
		Cliente:              row.ClienteNombre,
		Evento:               row.EventoNombre,
		RequiereConfirmacion: row.Status == CitaStatusScheduled,
	}
}

// BuildBalanceFinanciero calcula o balance a partir das cotizações
// aprovadas/autorizadas e do total pago no mês. O saldo por cotização é
// max(0, (precio - descuento) - pagado acumulado) e só entra na lista quando
// supera o umbral; o valor exibido é arredondado a 2 decimais. O percentual
// pago não é arredondado.
func BuildBalanceFinanciero(cotizaciones []*CotizacionBalance, totalPagadoMes float64, umbral float64) *BalanceFinanciero {
	balance := &BalanceFinanciero{
		TotalPagado:     utils.RoundWithTwoDecimalPlace(totalPagadoMes),
		PagosPendientes: make([]PagoPendiente, 0, len(cotizaciones)),
	}

	totalFacturado := 0.0
	totalPendiente := 0.0

	for _, cot := range cotizaciones {
		facturado := cot.Precio - cot.Descuento
		totalFacturado += facturado

		pendiente := facturado - cot.TotalPagado
		if pendiente < 0 {
			pendiente = 0
		}

		if pendiente > umbral {
			totalPendiente += pendiente
			balance.PagosPendientes = append(balance.PagosPendientes, PagoPendiente{
				CotizacionID: cot.CotizacionID,
				Evento:       cot.EventoNombre,
				Cliente:      cot.ClienteNombre,
				Monto:        utils.RoundWithTwoDecimalPlace(pendiente),
			})
		}
	}

	balance.TotalFacturado = utils.RoundWithTwoDecimalPlace(totalFacturado)
	balance.TotalPendiente = utils.RoundWithTwoDecimalPlace(totalPendiente)
	balance.PorcentajePagado = PorcentajePagado(totalPagadoMes, totalFacturado)

	return balance
}

// PorcentajePagado retorna pagado/facturado em percentual, 0 quando nada foi
// faturado (nunca NaN/Inf).
func PorcentajePagado(totalPagado, totalFacturado float64) float64 {
	if totalFacturado == 0 {
		return 0
	}
	return totalPagado / totalFacturado * 100
}

// BuildDistribucionEtapas calcula a participação percentual de cada etapa no
// total de eventos contados, a 1 decimal. Etapas sem eventos já não vêm do
// repositório e seguem omitidas aqui.
func BuildDistribucionEtapas(conteos []*EtapaConteo) []EtapaDistribucion {
	total := 0
	for _, c := range conteos {
		total += c.Cantidad
	}

	distribucion := make([]EtapaDistribucion, 0, len(conteos))
	if total == 0 {
		return distribucion
	}

	for _, c := range conteos {
		if c.Cantidad == 0 {
			continue
		}
		distribucion = append(distribucion, EtapaDistribucion{
			EtapaID:    c.EtapaID,
			Nombre:     c.Nombre,
			Posicion:   c.Posicion,
			Cantidad:   c.Cantidad,
			Porcentaje: utils.RoundWithOneDecimalPlace(float64(c.Cantidad) / float64(total) * 100),
		})
	}

	return distribucion
}

// TasaConversion retorna aprobadas/total em percentual, 0 quando não houve
// cotizações no mês. Sem arredondamento.
func TasaConversion(aprobadas, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(aprobadas) / float64(total) * 100
}

// EfectividadCitas retorna completadas/total em percentual, 0 sem citas.
func EfectividadCitas(completadas, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completadas) / float64(total) * 100
}

// ClassifyTendencia classifica a variação de eventos mês a mês. Variação
// estritamente acima de +5% sobe, estritamente abaixo de -5% desce, o resto
// (inclusive os limites exatos) é estável. Mês anterior zerado é estável com
// variação 0, qualquer que seja o mês atual.
func ClassifyTendencia(actual, anterior int) TendenciaEventos {
	tendencia := TendenciaEventos{
		Direccion:       TendenciaStable,
		EventosActual:   actual,
		EventosAnterior: anterior,
	}

	if anterior == 0 {
		return tendencia
	}

	variacion := float64(actual-anterior) / float64(anterior) * 100
	tendencia.Porcentaje = utils.RoundWithOneDecimalPlace(variacion)

	switch {
	case variacion > tendenciaBand:
		tendencia.Direccion = TendenciaUp
	case variacion < -tendenciaBand:
		tendencia.Direccion = TendenciaDown
	}

	return tendencia
}
