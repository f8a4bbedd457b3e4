package domain

// Etapa é uma posição do pipeline comercial/de produção, ordenada por Posicion.
type Etapa struct {
	ID       int    `json:"id"`
	StudioID int    `json:"studio_id"`
	Nombre   string `json:"nombre"`
	Posicion int    `json:"posicion"`
}

// EtapaSinNombre é o sentinela exibido quando um evento não tem etapa atribuída.
const EtapaSinNombre = "Sin etapa"

// EtapaConteo é a projeção de contagem de eventos não arquivados por etapa,
// já ordenada por posição. Etapas sem eventos não aparecem.
type EtapaConteo struct {
	EtapaID  int
	Nombre   string
	Posicion int
	Cantidad int
}
