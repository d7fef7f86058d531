// Package policy centralizes authorization as a capability table keyed
// by (role, action), evaluated once per request by the policy
// middleware instead of ad hoc role checks inside handlers.
package policy

import "github.com/mkadima/resto-api/internal/domain/enum"

// Action is a named capability a request needs.
type Action string

const (
	ActionManageCatalog   Action = "catalog:manage"
	ActionViewCatalog     Action = "catalog:view"
	ActionManageStock     Action = "stock:manage"
	ActionViewStock       Action = "stock:view"
	ActionCreateSale      Action = "sales:create"
	ActionViewSales       Action = "sales:view"
	ActionManageInventory Action = "inventory:manage"
	ActionUpdateKitchen   Action = "kitchen:update"
	ActionViewKitchen     Action = "kitchen:view"
	ActionManageClients   Action = "clients:manage"
	ActionManageRates     Action = "rates:manage"
	ActionManagePurchases Action = "purchases:manage"
	ActionManageExpenses  Action = "expenses:manage"
	ActionManagePayroll   Action = "payroll:manage"
	ActionViewReports     Action = "reports:view"
	ActionManageUsers     Action = "users:manage"
)

// table maps each role to the actions it may perform. ADMIN is handled
// separately and is allowed everything.
var table = map[enum.Role]map[Action]bool{
	enum.RoleManager: {
		ActionManageCatalog:   true,
		ActionViewCatalog:     true,
		ActionManageStock:     true,
		ActionViewStock:       true,
		ActionCreateSale:      true,
		ActionViewSales:       true,
		ActionManageInventory: true,
		ActionUpdateKitchen:   true,
		ActionViewKitchen:     true,
		ActionManageClients:   true,
		ActionManageRates:     true,
		ActionManagePurchases: true,
		ActionManageExpenses:  true,
		ActionViewReports:     true,
	},
	enum.RoleCashier: {
		ActionViewCatalog:   true,
		ActionViewStock:     true,
		ActionCreateSale:    true,
		ActionViewSales:     true,
		ActionViewKitchen:   true,
		ActionManageClients: true,
	},
	enum.RoleKitchen: {
		ActionViewCatalog:   true,
		ActionViewKitchen:   true,
		ActionUpdateKitchen: true,
	},
}

// Allowed reports whether the role may perform the action.
func Allowed(role enum.Role, action Action) bool {
	if role == enum.RoleAdmin {
		return true
	}
	perms, ok := table[role]
	if !ok {
		return false
	}
	return perms[action]
}

// ActionsFor returns the actions granted to a role, for introspection
// endpoints and tests.
func ActionsFor(role enum.Role) []Action {
	if role == enum.RoleAdmin {
		all := make([]Action, 0, len(table[enum.RoleManager])+2)
		for a := range table[enum.RoleManager] {
			all = append(all, a)
		}
		all = append(all, ActionManagePayroll, ActionManageUsers)
		return all
	}
	perms := table[role]
	out := make([]Action, 0, len(perms))
	for a, ok := range perms {
		if ok {
			out = append(out, a)
		}
	}
	return out
}
