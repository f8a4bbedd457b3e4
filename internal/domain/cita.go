package domain

import "time"

// Status de citas
const (
	CitaStatusScheduled = "scheduled"
	CitaStatusConfirmed = "confirmed"
	CitaStatusCompleted = "completed"
	CitaStatusCancelled = "cancelled"
)

// Cita é um compromisso comercial (reunião, sesión previa, entrega) ligado a
// um evento e, por ele, a um cliente.
type Cita struct {
	ID        int       `json:"id"`
	StudioID  int       `json:"studio_id"`
	EventoID  int       `json:"evento_id"`
	Asunto    string    `json:"asunto"`
	Fecha     time.Time `json:"fecha"`
	Hora      string    `json:"hora"`
	Tipo      string    `json:"tipo"`
	Modalidad string    `json:"modalidad"`
	Status    string    `json:"status"`
}

// CitaRow é a projeção de uma cita próxima com nomes de evento e cliente
// resolvidos por join.
type CitaRow struct {
	ID            int
	Asunto        string
	Fecha         time.Time
	Hora          string
	Tipo          string
	Modalidad     string
	Status        string
	EventoNombre  string
	ClienteNombre string
}

// CitaConteo agrega contagens de citas num período para o cálculo de
// efetividade (completadas sobre o total).
type CitaConteo struct {
	Total       int
	Completadas int
}
