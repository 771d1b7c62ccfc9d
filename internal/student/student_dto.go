package student

type CreateStudentRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	ClassID       string `json:"class_id" binding:"omitempty,uuid"`
	RollNo        string `json:"roll_no" binding:"max=20"`
	Gender        string `json:"gender" binding:"omitempty,oneof=M F"`
	DateOfBirth   string `json:"date_of_birth"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
	Address       string `json:"address"`
}

type UpdateStudentRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	ClassID       string `json:"class_id" binding:"omitempty,uuid"`
	RollNo        string `json:"roll_no" binding:"max=20"`
	Gender        string `json:"gender" binding:"omitempty,oneof=M F"`
	DateOfBirth   string `json:"date_of_birth"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
	Address       string `json:"address"`
	Status        string `json:"status" binding:"omitempty,oneof=active inactive graduated"`
}

type StudentFilter struct {
	ClassID string
	Status  string
}

type StudentResponse struct {
	ID            string `json:"id"`
	AdmissionNo   string `json:"admission_no"`
	FullName      string `json:"full_name"`
	ClassID       string `json:"class_id,omitempty"`
	ClassName     string `json:"class_name,omitempty"`
	RollNo        string `json:"roll_no"`
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
	Address       string `json:"address"`
	Status        string `json:"status"`
}
