package policy

import (
	"testing"

	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name   string
		role   enum.Role
		action Action
		want   bool
	}{
		{"admin manages payroll", enum.RoleAdmin, ActionManagePayroll, true},
		{"admin manages users", enum.RoleAdmin, ActionManageUsers, true},
		{"manager manages stock", enum.RoleManager, ActionManageStock, true},
		{"manager sets rates", enum.RoleManager, ActionManageRates, true},
		{"manager denied payroll", enum.RoleManager, ActionManagePayroll, false},
		{"manager denied users", enum.RoleManager, ActionManageUsers, false},
		{"cashier creates sales", enum.RoleCashier, ActionCreateSale, true},
		{"cashier views stock", enum.RoleCashier, ActionViewStock, true},
		{"cashier denied stock writes", enum.RoleCashier, ActionManageStock, false},
		{"cashier denied kitchen updates", enum.RoleCashier, ActionUpdateKitchen, false},
		{"kitchen updates orders", enum.RoleKitchen, ActionUpdateKitchen, true},
		{"kitchen denied sales", enum.RoleKitchen, ActionViewSales, false},
		{"unknown role denied everything", enum.Role("GHOST"), ActionViewCatalog, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.action))
		})
	}
}

func TestActionsForAdminIncludesEverything(t *testing.T) {
	actions := ActionsFor(enum.RoleAdmin)
	assert.Contains(t, actions, ActionManagePayroll)
	assert.Contains(t, actions, ActionManageUsers)
	assert.Contains(t, actions, ActionCreateSale)

	// Every granted action must actually pass Allowed.
	for _, a := range ActionsFor(enum.RoleCashier) {
		assert.True(t, Allowed(enum.RoleCashier, a))
	}
}
