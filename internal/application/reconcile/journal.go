package reconcile

import "context"

// Action es una mutación de cantidad aplicada a una fila de bodega durante la
// operación en curso, con la información necesaria para deshacerla.
type Action struct {
	StorageID    string
	EquipmentID  string
	HouseID      string
	PrevQuantity int
	NewQuantity  int
}

// journal acumula las mutaciones de bodega de una operación. Si la mutación
// dependiente (room-equipment) falla, se reproducen los inversos en orden
// inverso. No es transaccional: es el registro de acciones compensables que
// reemplaza el estado parcial sin manejar del sistema original.
type journal struct {
	actions []Action
}

func (j *journal) record(a Action) {
	j.actions = append(j.actions, a)
}

func (j *journal) empty() bool { return len(j.actions) == 0 }

// compensate deshace las acciones registradas restaurando la cantidad previa.
// Devuelve el primer error; las acciones que no alcanzaron a deshacerse quedan
// en remaining para reportarlas en PartialReconciliationError.
func (j *journal) compensate(ctx context.Context, gw Gateway) (remaining []Action, err error) {
	for i := len(j.actions) - 1; i >= 0; i-- {
		a := j.actions[i]
		if uerr := gw.UpdateStorageQuantity(ctx, a.StorageID, a.PrevQuantity); uerr != nil {
			return j.actions[:i+1], uerr
		}
	}
	return nil, nil
}
