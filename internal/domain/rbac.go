package domain

// EnforceRequest asks whether a user may perform action on resource inside a school.
type EnforceRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	SchoolID string `json:"school_id" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type PermissionResponse struct {
	ID       string `json:"id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Roles seeded for every school.
const (
	RolePrincipal = "PRINCIPAL"
	RoleClerk     = "CLERK"
	RoleTeacher   = "TEACHER"
	RoleStudent   = "STUDENT"
)
