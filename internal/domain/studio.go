package domain

import "time"

// Studio é o tenant: toda consulta do dashboard é particionada pelo seu ID.
type Studio struct {
	ID        int       `json:"id"`
	Nombre    string    `json:"nombre"`
	Slug      string    `json:"slug"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}
