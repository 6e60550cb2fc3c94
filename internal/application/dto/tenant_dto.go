package dto

import "time"

// CreateTenantRequest alta de inquilino.
type CreateTenantRequest struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// UpdateTenantRequest edición de inquilino.
type UpdateTenantRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// TenantResponse inquilino en respuestas.
type TenantResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	FullName  string    `json:"full_name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TenantListResponse listado paginado de inquilinos.
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
