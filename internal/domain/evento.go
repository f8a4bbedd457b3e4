package domain

import "time"

// Status de eventos
const (
	EventoStatusActive    = "active"
	EventoStatusArchived  = "archived"
	EventoStatusCancelled = "cancelled"
)

// Status de itens de agenda
const (
	AgendaStatusScheduled = "scheduled"
	AgendaStatusDone      = "done"
	AgendaStatusCancelled = "cancelled"
)

// Evento é um trabalho contratado (ou em negociação) de um cliente do estúdio.
type Evento struct {
	ID           int        `json:"id"`
	StudioID     int        `json:"studio_id"`
	ClienteID    int        `json:"cliente_id"`
	EtapaID      *int       `json:"etapa_id,omitempty"`
	EventoTipoID int        `json:"evento_tipo_id"`
	Nombre       string     `json:"nombre"`
	Sede         *string    `json:"sede,omitempty"`
	Direccion    *string    `json:"direccion,omitempty"`
	FechaEvento  time.Time  `json:"fecha_evento"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// EventoTipo categoriza eventos (boda, XV años, sesión, etc).
type EventoTipo struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// AgendaItemRow é a projeção de um item de agenda com os nomes já resolvidos
// por join (evento, cliente e etapa). Campos opcionais vêm como ponteiro e a
// resolução de fallback acontece na camada de derivação.
type AgendaItemRow struct {
	ID            int
	Fecha         time.Time
	Hora          string
	Concepto      *string
	EventoID      int
	EventoNombre  string
	Sede          *string
	ClienteNombre string
	EtapaNombre   *string
}

// EventoTipoConteo é a projeção de contagem de eventos por tipo num período.
type EventoTipoConteo struct {
	Nombre   string
	Cantidad int
}
