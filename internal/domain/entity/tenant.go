package entity

import "time"

// Tenant representa un inquilino (persona que arrienda una habitación).
type Tenant struct {
	ID        string
	UserID    string // opcional: usuario asociado para autoservicio
	FullName  string
	Document  string // documento de identidad
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
