package dto

import "time"

// CreateHouseRequest alta de casa.
type CreateHouseRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	ManagerID string `json:"manager_id"`
}

// UpdateHouseRequest edición de casa.
type UpdateHouseRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	ManagerID string `json:"manager_id"`
}

// HouseResponse casa en respuestas.
type HouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	ManagerID string    `json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HouseListResponse listado paginado de casas.
type HouseListResponse struct {
	Items []HouseResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
