// Package reconcile coordina la secuencia de llamadas REST que mantiene
// consistente una asignación de equipo (room-equipment) con la fila de bodega
// de la que salió su cantidad. No hay transacción del lado servidor: la
// consistencia se mantiene secuenciando las llamadas en orden estricto y
// compensando la mutación de bodega si la mutación dependiente falla.
//
// Dos editores concurrentes sobre el mismo par (equipo, casa) pueden pisarse
// (lost update): el API es last-write-wins y este coordinador no lo evita.
package reconcile

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/hostal-pro/pkg/logger"
)

// CreateInput entrada para crear una asignación de equipo a una habitación.
type CreateInput struct {
	RoomID      string
	EquipmentID string
	Quantity    int
	Price       decimal.Decimal
	Description string
	Source      string // "storage": descuenta de bodega; "custom": sin vínculo con bodega
	// HouseID opcional; si está vacío y Source es storage se resuelve vía la habitación.
	HouseID string
}

// UpdateInput cambios sobre una asignación existente. Los flags vienen de la
// decisión explícita del usuario en el formulario: aumentar tomando de bodega
// (UseStorage) o devolver a bodega al disminuir (UpdateStorage). Nunca se toca
// la bodega automáticamente.
type UpdateInput struct {
	Quantity    int
	Price       *decimal.Decimal
	Description *string

	IsQuantityIncrease bool // mutuamente excluyente con IsQuantityDecrease
	IsQuantityDecrease bool
	UseStorage         bool // en aumento: tomar la diferencia de bodega
	UpdateStorage      bool // en disminución: devolver la diferencia a bodega
}

// Coordinator orquesta las secuencias crear/actualizar/borrar contra el Gateway.
// Cada operación es una cadena corta de llamadas esperadas en orden; ningún
// paso se reordena ni se paraleliza porque el resultado de cada uno condiciona
// el siguiente.
type Coordinator struct {
	gw  Gateway
	log *logger.Logger
}

// NewCoordinator construye el coordinador. log puede ser logger.Nop().
func NewCoordinator(gw Gateway, log *logger.Logger) *Coordinator {
	if log == nil {
		log = logger.Nop()
	}
	return &Coordinator{gw: gw, log: log}
}

// CreateAssignment crea una asignación. Con Source=storage primero descuenta
// de la fila de bodega (clampeado en cero, nunca negativo) y solo después crea
// el room-equipment; si la creación falla se repone lo descontado.
// Con Source=custom crea directo, sin ninguna llamada a bodega.
func (c *Coordinator) CreateAssignment(ctx context.Context, in CreateInput) (*Assignment, error) {
	if in.Quantity <= 0 || in.RoomID == "" || in.EquipmentID == "" {
		return nil, ErrInvalidInput
	}
	if in.Source != "storage" && in.Source != "custom" {
		return nil, ErrInvalidInput
	}

	asg := Assignment{
		RoomID:      in.RoomID,
		EquipmentID: in.EquipmentID,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Description: in.Description,
		Source:      in.Source,
	}

	if in.Source == "custom" {
		return c.gw.CreateRoomEquipment(ctx, asg)
	}

	houseID := in.HouseID
	if houseID == "" {
		room, err := c.gw.GetRoomWithHouse(ctx, in.RoomID)
		if err != nil {
			return nil, err
		}
		houseID = room.HouseID
	}

	row, err := c.gw.FindStorage(ctx, in.EquipmentID, houseID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrStorageNotFound
	}

	// Descuento clampeado en cero: pedir más de lo disponible no se rechaza
	// aquí (el formulario de aumento sí valida; ver UpdateAssignment).
	newQty := row.Quantity - in.Quantity
	if newQty < 0 {
		newQty = 0
	}

	j := &journal{}
	if err := c.gw.UpdateStorageQuantity(ctx, row.ID, newQty); err != nil {
		return nil, err
	}
	j.record(Action{
		StorageID:    row.ID,
		EquipmentID:  in.EquipmentID,
		HouseID:      houseID,
		PrevQuantity: row.Quantity,
		NewQuantity:  newQty,
	})

	created, err := c.gw.CreateRoomEquipment(ctx, asg)
	if err != nil {
		return nil, c.rollback(ctx, j, err)
	}
	return created, nil
}

// UpdateAssignment actualiza una asignación. Solo toca la bodega cuando el
// origen de la asignación es storage Y el usuario lo pidió con los flags;
// en cualquier otro caso la bodega queda intacta. El ajuste de bodega va
// primero y la actualización del room-equipment después; si esta última falla
// se deshace el ajuste.
func (c *Coordinator) UpdateAssignment(ctx context.Context, assignmentID string, in UpdateInput) error {
	if assignmentID == "" || in.Quantity < 0 {
		return ErrInvalidInput
	}
	if in.IsQuantityIncrease && in.IsQuantityDecrease {
		return ErrInvalidInput
	}

	asg, err := c.gw.GetRoomEquipment(ctx, assignmentID)
	if err != nil {
		return err
	}

	j := &journal{}
	if asg.Source == "storage" {
		switch {
		case in.IsQuantityIncrease && in.UseStorage:
			delta := in.Quantity - asg.Quantity
			if delta > 0 {
				if err := c.drawFromStorage(ctx, j, asg, delta); err != nil {
					return err
				}
			}
		case in.IsQuantityDecrease && in.UpdateStorage:
			delta := asg.Quantity - in.Quantity
			if delta > 0 {
				if err := c.returnToStorage(ctx, j, asg, delta); err != nil {
					return err
				}
			}
		}
	}

	qty := in.Quantity
	changes := AssignmentChanges{
		Quantity:    &qty,
		Price:       in.Price,
		Description: in.Description,
	}
	if err := c.gw.UpdateRoomEquipment(ctx, assignmentID, changes); err != nil {
		return c.rollback(ctx, j, err)
	}
	return nil
}

// ExecuteDelete ejecuta un DeleteFlow ya decidido (ver delete_flow.go).
// Si el usuario eligió devolver a bodega, primero incrementa la fila
// (find-or-create) y solo después borra el room-equipment; un fallo en la
// devolución aborta conservando el registro, y un fallo del borrado repone
// la bodega.
func (c *Coordinator) ExecuteDelete(ctx context.Context, flow *DeleteFlow) error {
	if flow.State() != StateReady {
		return ErrInvalidInput
	}
	asg := flow.Assignment()

	j := &journal{}
	if flow.ReturnToStorage() {
		if err := c.returnToStorage(ctx, j, asg, asg.Quantity); err != nil {
			return err
		}
	}

	if err := c.gw.DeleteRoomEquipment(ctx, asg.ID); err != nil {
		return c.rollback(ctx, j, err)
	}
	flow.markDone()
	return nil
}

// DeleteAssignment flujo de borrado en dos pasos guiado por un Decider:
// confirmación de borrado y, aparte, decisión de devolver la cantidad a la
// bodega. Devuelve false sin efectos si el usuario declina el borrado.
// La devolución se ofrece también para Source=custom: el equipo del mismo
// ítem de catálogo se trata como fungible con el de bodega.
func (c *Coordinator) DeleteAssignment(ctx context.Context, assignmentID string, d Decider) (bool, error) {
	asg, err := c.gw.GetRoomEquipment(ctx, assignmentID)
	if err != nil {
		return false, err
	}

	flow := NewDeleteFlow(asg)
	if err := flow.ConfirmDelete(d.ConfirmDelete(asg)); err != nil {
		return false, err
	}
	if flow.State() == StateCancelled {
		return false, nil
	}
	if err := flow.ConfirmReturn(d.ConfirmReturnToStorage(asg)); err != nil {
		return false, err
	}

	if err := c.ExecuteDelete(ctx, flow); err != nil {
		return false, err
	}
	return true, nil
}

// drawFromStorage descuenta delta de la fila de bodega del par (equipo, casa).
// Resuelve la casa vía la habitación, hace find-or-create de la fila y valida
// disponibilidad ANTES de mutar: si no alcanza, falla sin tocar nada.
func (c *Coordinator) drawFromStorage(ctx context.Context, j *journal, asg *Assignment, delta int) error {
	row, err := c.findOrCreateStorage(ctx, asg)
	if err != nil {
		return err
	}
	if row.Quantity < delta {
		return ErrInsufficientStorage
	}
	newQty := row.Quantity - delta
	if err := c.gw.UpdateStorageQuantity(ctx, row.ID, newQty); err != nil {
		return err
	}
	j.record(Action{
		StorageID:    row.ID,
		EquipmentID:  row.EquipmentID,
		HouseID:      row.HouseID,
		PrevQuantity: row.Quantity,
		NewQuantity:  newQty,
	})
	return nil
}

// returnToStorage devuelve delta a la fila de bodega del par (equipo, casa),
// creándola con cantidad cero si es la primera devolución.
func (c *Coordinator) returnToStorage(ctx context.Context, j *journal, asg *Assignment, delta int) error {
	row, err := c.findOrCreateStorage(ctx, asg)
	if err != nil {
		return err
	}
	newQty := row.Quantity + delta
	if err := c.gw.UpdateStorageQuantity(ctx, row.ID, newQty); err != nil {
		return err
	}
	j.record(Action{
		StorageID:    row.ID,
		EquipmentID:  row.EquipmentID,
		HouseID:      row.HouseID,
		PrevQuantity: row.Quantity,
		NewQuantity:  newQty,
	})
	return nil
}

// findOrCreateStorage busca la fila (equipo, casa de la habitación); si no
// existe la crea con cantidad 0 y el precio original de la asignación. Si la
// creación falla, la operación completa aborta sin haber mutado nada.
func (c *Coordinator) findOrCreateStorage(ctx context.Context, asg *Assignment) (*StorageRow, error) {
	room, err := c.gw.GetRoomWithHouse(ctx, asg.RoomID)
	if err != nil {
		return nil, err
	}
	row, err := c.gw.FindStorage(ctx, asg.EquipmentID, room.HouseID)
	if err != nil {
		return nil, err
	}
	if row != nil {
		return row, nil
	}
	return c.gw.CreateStorage(ctx, StorageRow{
		EquipmentID: asg.EquipmentID,
		HouseID:     room.HouseID,
		Quantity:    0,
		Price:       asg.Price,
	})
}

// rollback deshace las acciones de bodega del journal tras un fallo de la
// mutación dependiente. Si la compensación también falla, devuelve
// PartialReconciliationError con las acciones que quedaron aplicadas.
func (c *Coordinator) rollback(ctx context.Context, j *journal, cause error) error {
	if j.empty() {
		return cause
	}
	remaining, cerr := j.compensate(ctx, c.gw)
	if cerr != nil {
		c.log.Error().Err(cerr).Int("acciones_pendientes", len(remaining)).
			Msg("compensación de bodega falló: estado parcial")
		return &PartialReconciliationError{Cause: cause, CompensateErr: cerr, Applied: remaining}
	}
	c.log.Warn().Err(cause).Msg("mutación dependiente falló: bodega repuesta")
	return cause
}
