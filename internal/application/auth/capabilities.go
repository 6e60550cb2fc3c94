package auth

import "github.com/tu-usuario/hostal-pro/internal/domain/entity"

// Principal es la identidad autenticada de la sesión, parseada una sola vez
// del token al iniciar.
type Principal struct {
	UserID string
	Role   string // admin | manager | tenant
}

// Capabilities evalúa qué puede hacer un principal. Reemplaza los flags
// booleanos dispersos por vista: cada operación consulta un predicado una vez.
// managedHouses son las casas a cargo de un manager (vacío para otros roles).
type Capabilities struct {
	principal     Principal
	managedHouses map[string]struct{}
}

// NewCapabilities construye el conjunto de capacidades de la sesión.
func NewCapabilities(p Principal, managedHouseIDs []string) *Capabilities {
	m := make(map[string]struct{}, len(managedHouseIDs))
	for _, id := range managedHouseIDs {
		m[id] = struct{}{}
	}
	return &Capabilities{principal: p, managedHouses: m}
}

// Principal devuelve la identidad de la sesión.
func (c *Capabilities) Principal() Principal { return c.principal }

// CanReconcileInventory reporta si el principal puede mover equipo entre
// bodega y habitaciones de la casa dada: admin siempre, manager solo en sus
// casas, tenant nunca.
func (c *Capabilities) CanReconcileInventory(houseID string) bool {
	switch c.principal.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleManager:
		_, ok := c.managedHouses[houseID]
		return ok
	default:
		return false
	}
}

// CanManageTenants reporta si puede crear/editar inquilinos y contratos.
func (c *Capabilities) CanManageTenants() bool {
	return c.principal.Role == entity.RoleAdmin || c.principal.Role == entity.RoleManager
}

// CanViewDashboard reporta si puede ver el dashboard de ocupación e ingresos.
func (c *Capabilities) CanViewDashboard() bool {
	return c.principal.Role == entity.RoleAdmin || c.principal.Role == entity.RoleManager
}

// CanManageHouses reporta si puede crear/editar casas (solo admin).
func (c *Capabilities) CanManageHouses() bool {
	return c.principal.Role == entity.RoleAdmin
}

// CanViewOwnContracts reporta si el principal puede ver sus propios contratos
// y facturas (autoservicio de inquilinos; admin y manager también).
func (c *Capabilities) CanViewOwnContracts() bool {
	switch c.principal.Role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleTenant:
		return true
	default:
		return false
	}
}
