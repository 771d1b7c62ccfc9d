package assignment

type CreateAssignmentRequest struct {
	StaffID   string `json:"staff_id" binding:"required,uuid"`
	ClassID   string `json:"class_id" binding:"required,uuid"`
	SubjectID string `json:"subject_id" binding:"required,uuid"`
}

type AssignmentFilter struct {
	StaffID string
	ClassID string
}

type AssignmentResponse struct {
	ID           string `json:"id"`
	StaffID      string `json:"staff_id"`
	StaffName    string `json:"staff_name,omitempty"`
	ClassID      string `json:"class_id"`
	ClassName    string `json:"class_name,omitempty"`
	ClassSection string `json:"class_section,omitempty"`
	SubjectID    string `json:"subject_id"`
	SubjectName  string `json:"subject_name,omitempty"`
}
