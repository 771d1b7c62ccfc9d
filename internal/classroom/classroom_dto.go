package classroom

type CreateClassRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Section        string `json:"section" binding:"max=20"`
	AcademicYear   string `json:"academic_year" binding:"max=20"`
	ClassTeacherID string `json:"class_teacher_id" binding:"omitempty,uuid"`
}

type UpdateClassRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Section        string `json:"section" binding:"max=20"`
	AcademicYear   string `json:"academic_year" binding:"max=20"`
	ClassTeacherID string `json:"class_teacher_id" binding:"omitempty,uuid"`
}

type ClassResponse struct {
	ID             string `json:"id"`
	SchoolID       string `json:"school_id"`
	Name           string `json:"name"`
	Section        string `json:"section"`
	AcademicYear   string `json:"academic_year"`
	ClassTeacherID string `json:"class_teacher_id,omitempty"`
	StudentCount   int64  `json:"student_count"`
}
