package staff

type StaffAccountRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=TEACHER CLERK"`
}

type CreateStaffRequest struct {
	FullName    string               `json:"full_name" binding:"required"`
	Email       string               `json:"email" binding:"omitempty,email"`
	Phone       string               `json:"phone"`
	Designation string               `json:"designation"`
	StaffType   string               `json:"staff_type" binding:"omitempty,oneof=TEACHING NON_TEACHING"`
	JoinDate    string               `json:"join_date" binding:"required"`
	Account     *StaffAccountRequest `json:"account"`
}

type UpdateStaffRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
	StaffType   string `json:"staff_type" binding:"omitempty,oneof=TEACHING NON_TEACHING"`
	JoinDate    string `json:"join_date" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type StaffFilter struct {
	Status    string
	StaffType string
}

type StaffResponse struct {
	ID          string `json:"id"`
	SchoolID    string `json:"school_id"`
	StaffNo     string `json:"staff_no"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
	StaffType   string `json:"staff_type"`
	JoinDate    string `json:"join_date"`
	Status      string `json:"status"`
	UserID      string `json:"user_id,omitempty"`
	Username    string `json:"username,omitempty"`
}

type StaffOptionResponse struct {
	ID       string `json:"id"`
	StaffNo  string `json:"staff_no"`
	FullName string `json:"full_name"`
}
