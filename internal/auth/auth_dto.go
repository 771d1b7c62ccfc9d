package auth

// RegisterRequest links a new account to an existing staff or student record via the school's join code.
type RegisterRequest struct {
	JoinCode    string `json:"join_code" binding:"required,len=8"`
	Role        string `json:"role" binding:"required,oneof=TEACHER STUDENT"`
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Name        string `json:"name" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	StaffNo     string `json:"staff_no"`
	AdmissionNo string `json:"admission_no"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID        string `json:"id"`
	SchoolID  string `json:"school_id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	StaffID   string `json:"staff_id,omitempty"`
	StudentID string `json:"student_id,omitempty"`
}

type UsernameAvailabilityResponse struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}
