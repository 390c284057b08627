package rbac

const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleViewer     = "viewer"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Resources guarded by the HTTP layer.
var Resources = []string{
	"employee", "attendance", "advance", "bonus", "deduction", "payroll",
	"custody", "expense", "project", "supplier", "equipment", "maintenance",
}

// DefaultPolicy: viewers read everything, accountants also write financial
// records, admins may do anything.
func DefaultPolicy() ([]RolePermissionRow, []RoleParentRow) {
	perms := []RolePermissionRow{
		{Role: RoleViewer, Resource: "*", Action: ActionRead},
		{Role: RoleAdmin, Resource: "*", Action: "*"},
	}
	for _, res := range Resources {
		for _, act := range []string{ActionCreate, ActionUpdate, ActionDelete} {
			perms = append(perms, RolePermissionRow{Role: RoleAccountant, Resource: res, Action: act})
		}
	}

	parents := []RoleParentRow{
		{Role: RoleAccountant, Parent: RoleViewer},
		{Role: RoleAdmin, Parent: RoleAccountant},
	}
	return perms, parents
}
