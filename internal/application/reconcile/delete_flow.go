package reconcile

// DeleteState estado del flujo de borrado en dos pasos.
type DeleteState int

const (
	// StateConfirmDelete esperando la confirmación "¿borrar este equipo de la habitación?".
	StateConfirmDelete DeleteState = iota
	// StateConfirmReturn esperando la decisión "¿devolver la cantidad a la bodega?".
	StateConfirmReturn
	// StateReady decisiones tomadas; listo para ExecuteDelete.
	StateReady
	// StateCancelled el usuario declinó el borrado; sin efectos.
	StateCancelled
	// StateDone el borrado se ejecutó.
	StateDone
)

// Decider responde las dos preguntas del flujo de borrado. La UI lo implementa
// con diálogos; los tests con respuestas fijas.
type Decider interface {
	// ConfirmDelete "¿borrar este equipo de la habitación?"
	ConfirmDelete(a *Assignment) bool
	// ConfirmReturnToStorage "¿devolver la cantidad a la bodega?"
	// Se pregunta siempre, también para Source=custom (ver nota en DeleteFlow).
	ConfirmReturnToStorage(a *Assignment) bool
}

// DeleteFlow es la máquina de decisión del borrado: dos preguntas secuenciales
// y luego la ejecución. Declinar la primera cancela todo sin efectos; la
// segunda decide si la cantidad vuelve a la bodega.
//
// La devolución se ofrece también para asignaciones custom, que nunca salieron
// de bodega: una vez el operador decide que ese equipo va a la bodega de la
// casa, pasa a ser stock de bodega del mismo ítem de catálogo.
type DeleteFlow struct {
	state           DeleteState
	assignment      *Assignment
	returnToStorage bool
}

// NewDeleteFlow arranca el flujo para una asignación ya cargada.
func NewDeleteFlow(a *Assignment) *DeleteFlow {
	return &DeleteFlow{state: StateConfirmDelete, assignment: a}
}

// State devuelve el estado actual.
func (f *DeleteFlow) State() DeleteState { return f.state }

// Assignment devuelve la asignación sobre la que opera el flujo.
func (f *DeleteFlow) Assignment() *Assignment { return f.assignment }

// ReturnToStorage devuelve la decisión del segundo paso.
func (f *DeleteFlow) ReturnToStorage() bool { return f.returnToStorage }

// ConfirmDelete registra la respuesta del primer paso. Declinar cancela el
// flujo; confirmar pasa a la pregunta de devolución.
func (f *DeleteFlow) ConfirmDelete(confirm bool) error {
	if f.state != StateConfirmDelete {
		return ErrInvalidInput
	}
	if !confirm {
		f.state = StateCancelled
		return nil
	}
	f.state = StateConfirmReturn
	return nil
}

// ConfirmReturn registra la respuesta del segundo paso y deja el flujo listo
// para ejecutar.
func (f *DeleteFlow) ConfirmReturn(returnToStorage bool) error {
	if f.state != StateConfirmReturn {
		return ErrInvalidInput
	}
	f.returnToStorage = returnToStorage
	f.state = StateReady
	return nil
}

func (f *DeleteFlow) markDone() { f.state = StateDone }
