package exam

type CreateExamRequest struct {
	Name      string  `json:"name" binding:"required,max=150"`
	ClassID   string  `json:"class_id" binding:"required,uuid"`
	SubjectID string  `json:"subject_id" binding:"required,uuid"`
	MaxMarks  float64 `json:"max_marks" binding:"required,gt=0,lte=9999"`
	ExamDate  string  `json:"exam_date" binding:"required"`
}

type UpdateExamRequest struct {
	Name     string  `json:"name" binding:"required,max=150"`
	MaxMarks float64 `json:"max_marks" binding:"required,gt=0,lte=9999"`
	ExamDate string  `json:"exam_date" binding:"required"`
}

type ExamFilter struct {
	ClassID   string
	SubjectID string
}

type ExamResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ClassID     string  `json:"class_id"`
	ClassName   string  `json:"class_name,omitempty"`
	SubjectID   string  `json:"subject_id"`
	SubjectName string  `json:"subject_name,omitempty"`
	MaxMarks    float64 `json:"max_marks"`
	ExamDate    string  `json:"exam_date"`
}

type MarkEntry struct {
	StudentID     string  `json:"student_id" binding:"required,uuid"`
	MarksObtained float64 `json:"marks_obtained"`
	IsAbsent      bool    `json:"is_absent"`
	Remarks       string  `json:"remarks" binding:"max=255"`
}

type BulkMarksRequest struct {
	ExamID string      `json:"exam_id" binding:"required,uuid"`
	Marks  []MarkEntry `json:"marks" binding:"required,min=1,dive"`
}

type BulkMarksResponse struct {
	ExamID string `json:"exam_id"`
	Saved  int    `json:"saved"`
}

// Actor is the caller of a write.
type Actor struct {
	UserID    string
	Role      string
	StaffID   string
	StudentID string
}

type StudentMarkResponse struct {
	StudentID     string   `json:"student_id"`
	FullName      string   `json:"full_name"`
	AdmissionNo   string   `json:"admission_no"`
	MarksObtained *float64 `json:"marks_obtained"`
	IsAbsent      bool     `json:"is_absent"`
	Remarks       string   `json:"remarks,omitempty"`
	Percentage    *float64 `json:"percentage"`
	Entered       bool     `json:"entered"`
}

type MarksStats struct {
	Entered int     `json:"entered"`
	Absent  int     `json:"absent"`
	Highest float64 `json:"highest"`
	Lowest  float64 `json:"lowest"`
	Average float64 `json:"average"`
}

type MarksSheetResponse struct {
	Exam     ExamResponse          `json:"exam"`
	Students []StudentMarkResponse `json:"students"`
	Stats    MarksStats            `json:"stats"`
}
