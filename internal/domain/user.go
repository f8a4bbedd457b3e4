package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int        `json:"id"`
	StudioID     *int       `json:"studio_id,omitempty"` // nulo para admins da plataforma
	Nombre       string     `json:"nombre"`
	Apellido     string     `json:"apellido"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Activo       bool       `json:"activo"`
	RoleID       int        `json:"role_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type Claims struct {
	UserID       int    `json:"user_id"`
	UserNombre   string `json:"user_nombre"`
	UserEmail    string `json:"user_email"`
	UserActivo   bool   `json:"user_activo"`
	UserRoleID   int    `json:"user_role_id"`
	UserStudioID *int   `json:"user_studio_id,omitempty"`
	jwt.RegisteredClaims
}
