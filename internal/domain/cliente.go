package domain

import "time"

// Status de clientes considerados prospectos no funil
const (
	ClienteStatusProspect = "prospect"
	ClienteStatusNew      = "new"
	ClienteStatusActive   = "active"
)

// Cliente representa um contato/cliente do estúdio.
type Cliente struct {
	ID        int       `json:"id"`
	StudioID  int       `json:"studio_id"`
	Nombre    string    `json:"nombre"`
	Email     *string   `json:"email,omitempty"`
	Telefono  *string   `json:"telefono,omitempty"`
	Status    string    `json:"status"`
	CanalID   *int      `json:"canal_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Canal é a origem de aquisição de um cliente (Instagram, indicação, etc).
type Canal struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// ProspectoRow é a projeção de um prospecto criado no mês, enriquecido com o
// canal de aquisição e com o tipo e a etapa do evento mais recente, quando há.
type ProspectoRow struct {
	ID          int
	Nombre      string
	Email       *string
	Telefono    *string
	Canal       *string
	CreatedAt   time.Time
	TipoEvento  *string
	EtapaEvento *string
}

// CanalConteo é a projeção de contagem de clientes novos por canal num período.
type CanalConteo struct {
	Nombre   string
	Cantidad int
}
