package rbac

import "go-school/internal/domain"

// allPermissions grants every permission in the catalogue.
const allPermissions = "*"

type defaultRole struct {
	Name        string
	Description string
	Grants      []string
}

// defaultRoles are created for every newly registered school.
var defaultRoles = []defaultRole{
	{
		Name:        domain.RolePrincipal,
		Description: "Full access to the school",
		Grants:      []string{allPermissions},
	},
	{
		Name:        domain.RoleClerk,
		Description: "Office staff handling records, fees and salaries",
		Grants: []string{
			"school:read",
			"staff:read", "staff:create", "staff:update", "staff:delete",
			"class:read", "class:create", "class:update", "class:delete",
			"subject:read", "subject:create", "subject:update", "subject:delete",
			"assignment:read", "assignment:create", "assignment:delete",
			"student:read", "student:create", "student:update", "student:delete",
			"attendance:read", "attendance:staff_read", "attendance:staff_mark",
			"exam:read", "marks:read",
			"fee:read", "fee:manage", "fee:payment_read", "fee:payment_create",
			"salary:read", "salary:manage", "salary:generate", "salary:pay",
			"leave:read", "leave:approve",
			"dashboard:read",
		},
	},
	{
		Name:        domain.RoleTeacher,
		Description: "Teaching staff",
		Grants: []string{
			"class:read", "subject:read", "student:read", "assignment:read",
			"attendance:read", "attendance:mark",
			"exam:read", "exam:create", "exam:update",
			"marks:read", "marks:enter",
			"salary:self_read",
			"leave:create",
			"dashboard:read",
		},
	},
	{
		Name:        domain.RoleStudent,
		Description: "Enrolled student",
		Grants: []string{
			"class:read", "subject:read",
			"attendance:self_read",
			"exam:read", "marks:read",
		},
	},
}

// resolveGrants maps grant keys to permission ids. Unknown keys are skipped.
func resolveGrants(grants []string, perms []PermissionRow) []string {
	index := make(map[string]string, len(perms))
	all := make([]string, 0, len(perms))
	for _, p := range perms {
		index[p.Resource+":"+p.Action] = p.ID
		all = append(all, p.ID)
	}

	ids := make([]string, 0, len(grants))
	for _, g := range grants {
		if g == allPermissions {
			return all
		}
		if id, ok := index[g]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
