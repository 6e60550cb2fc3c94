package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Errores del flujo de inventario (bodega por casa).
	ErrStorageNotFound     = errors.New("el equipo no está en bodega")
	ErrInsufficientStorage = errors.New("cantidad insuficiente en bodega")

	// Errores de contratos.
	ErrRoomOccupied      = errors.New("la habitación ya está ocupada")
	ErrContractNotActive = errors.New("el contrato no está activo")
)
