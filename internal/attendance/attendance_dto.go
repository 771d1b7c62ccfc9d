package attendance

type StudentMarkRequest struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
	Status    string `json:"status" binding:"required,oneof=present absent late"`
}

type BulkStudentAttendanceRequest struct {
	ClassID string               `json:"class_id" binding:"required,uuid"`
	Date    string               `json:"date" binding:"required"`
	Records []StudentMarkRequest `json:"records" binding:"dive"`
}

type StaffMarkRequest struct {
	StaffID string `json:"staff_id" binding:"required,uuid"`
	Status  string `json:"status" binding:"required,oneof=present absent"`
}

type BulkStaffAttendanceRequest struct {
	Date    string             `json:"date" binding:"required"`
	Records []StaffMarkRequest `json:"records" binding:"dive"`
}

// Actor is the caller of a marking request.
type Actor struct {
	UserID  string
	Role    string
	StaffID string
}

type StatusCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Leave   int `json:"leave"`
	Total   int `json:"total"`
}

type AttendanceEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number,omitempty"`
	Status string `json:"status"`
	Marked bool   `json:"marked"`
}

type RosterAttendanceResponse struct {
	ClassID string            `json:"class_id,omitempty"`
	Date    string            `json:"date"`
	Entries []AttendanceEntry `json:"entries"`
	Counts  StatusCounts      `json:"counts"`
}

type BulkAttendanceResponse struct {
	Date   string       `json:"date"`
	Saved  int          `json:"saved"`
	Counts StatusCounts `json:"counts"`
}

type StudentSummary struct {
	StudentID string       `json:"student_id"`
	Name      string       `json:"name"`
	Counts    StatusCounts `json:"counts"`
}

type SummaryResponse struct {
	ClassID  string           `json:"class_id"`
	From     string           `json:"from"`
	To       string           `json:"to"`
	Totals   StatusCounts     `json:"totals"`
	Students []StudentSummary `json:"students"`
}

type DayRecord struct {
	Date    string `json:"date"`
	Status  string `json:"status"`
	Remarks string `json:"remarks,omitempty"`
}

type MyAttendanceResponse struct {
	From    string       `json:"from"`
	To      string       `json:"to"`
	Records []DayRecord  `json:"records"`
	Counts  StatusCounts `json:"counts"`
}
