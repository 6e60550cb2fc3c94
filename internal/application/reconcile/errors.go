package reconcile

import (
	"errors"
	"fmt"
)

// Errores del flujo de reconciliación, en el orden en que abortan la secuencia.
var (
	// ErrStorageNotFound el equipo no tiene fila de bodega en la casa; se aborta antes de mutar nada.
	ErrStorageNotFound = errors.New("el equipo no está en bodega")
	// ErrInsufficientStorage la cantidad pedida excede lo disponible; se aborta antes de mutar nada.
	ErrInsufficientStorage = errors.New("cantidad insuficiente en bodega")
	// ErrInvalidInput entrada inconsistente (flags de aumento y disminución a la vez, cantidad <= 0...).
	ErrInvalidInput = errors.New("entrada inválida")
)

// RequestError envuelve cualquier fallo REST (red, 4xx/5xx o success:false del envelope)
// conservando el mensaje del servidor para mostrarlo al usuario.
type RequestError struct {
	Op      string // operación REST que falló, ej. "create room-equipment"
	Message string // mensaje del payload de error (o del transporte)
	Err     error  // causa subyacente, puede ser nil para success:false
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// PartialReconciliationError indica que la bodega quedó mutada pero la mutación
// dependiente falló Y la compensación también falló. Lleva el journal de acciones
// aplicadas para que quien llama pueda mostrar exactamente qué quedó inconsistente.
type PartialReconciliationError struct {
	// Cause es el fallo de la mutación dependiente que disparó la compensación.
	Cause error
	// CompensateErr es el fallo de la compensación misma.
	CompensateErr error
	// Applied acciones de bodega que quedaron aplicadas sin deshacer.
	Applied []Action
}

func (e *PartialReconciliationError) Error() string {
	return fmt.Sprintf("reconciliación parcial: %v (compensación falló: %v, %d acciones sin deshacer)",
		e.Cause, e.CompensateErr, len(e.Applied))
}

func (e *PartialReconciliationError) Unwrap() error { return e.Cause }
