package domain

import "time"

// Status de cotizações que contam como faturadas
const (
	CotizacionStatusDraft      = "draft"
	CotizacionStatusApproved   = "approved"
	CotizacionStatusAuthorized = "authorized"
	CotizacionStatusRejected   = "rejected"
)

// Status de pagamentos
const (
	PagoStatusPaid      = "paid"
	PagoStatusCompleted = "completed"
	PagoStatusPending   = "pending"
	PagoStatusCancelled = "cancelled"
)

// Cotizacion é uma proposta precificada para um evento. Ao ser aprovada ou
// autorizada passa a contar no total faturado do estúdio.
type Cotizacion struct {
	ID        int       `json:"id"`
	StudioID  int       `json:"studio_id"`
	EventoID  int       `json:"evento_id"`
	Nombre    string    `json:"nombre"`
	Precio    float64   `json:"precio"`
	Descuento float64   `json:"descuento"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Pago é um pagamento associado a uma cotização.
type Pago struct {
	ID           int       `json:"id"`
	StudioID     int       `json:"studio_id"`
	CotizacionID int       `json:"cotizacion_id"`
	Concepto     string    `json:"concepto"`
	Monto        float64   `json:"monto"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// CotizacionBalance é a projeção usada no cálculo de saldo pendente: uma
// cotização aprovada/autorizada com a soma acumulada dos pagamentos quitados
// (sem recorte de mês — o saldo considera toda a vida da cotização).
type CotizacionBalance struct {
	CotizacionID  int
	EventoNombre  string
	ClienteNombre string
	Precio        float64
	Descuento     float64
	TotalPagado   float64
}

// CotizacionConteo agrega contagens de cotizações num período.
type CotizacionConteo struct {
	Total     int
	Aprobadas int
}
