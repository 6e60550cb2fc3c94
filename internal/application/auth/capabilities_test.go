package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
)

func TestCapabilities_MatrizDeRoles(t *testing.T) {
	admin := NewCapabilities(Principal{UserID: "u1", Role: entity.RoleAdmin}, nil)
	manager := NewCapabilities(Principal{UserID: "u2", Role: entity.RoleManager}, []string{"house-A"})
	tenant := NewCapabilities(Principal{UserID: "u3", Role: entity.RoleTenant}, nil)

	// Reconciliación de inventario: admin en cualquier casa, manager solo en las suyas.
	assert.True(t, admin.CanReconcileInventory("house-A"))
	assert.True(t, admin.CanReconcileInventory("house-B"))
	assert.True(t, manager.CanReconcileInventory("house-A"))
	assert.False(t, manager.CanReconcileInventory("house-B"), "casa que no administra")
	assert.False(t, tenant.CanReconcileInventory("house-A"))

	// Gestión de inquilinos y dashboard: admin y manager.
	assert.True(t, admin.CanManageTenants())
	assert.True(t, manager.CanManageTenants())
	assert.False(t, tenant.CanManageTenants())
	assert.True(t, manager.CanViewDashboard())
	assert.False(t, tenant.CanViewDashboard())

	// Casas: solo admin.
	assert.True(t, admin.CanManageHouses())
	assert.False(t, manager.CanManageHouses())

	// Autoservicio: todos los roles conocidos.
	assert.True(t, tenant.CanViewOwnContracts())

	// Rol desconocido: nada.
	unknown := NewCapabilities(Principal{UserID: "u4", Role: "intruso"}, nil)
	assert.False(t, unknown.CanReconcileInventory("house-A"))
	assert.False(t, unknown.CanViewOwnContracts())
}
