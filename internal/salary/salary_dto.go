package salary

type StructureRequest struct {
	StaffID                  string `json:"staff_id" binding:"required,uuid"`
	BaseSalary               int64  `json:"base_salary" binding:"gte=0"`
	HRA                      int64  `json:"hra" binding:"gte=0"`
	OtherAllowances          int64  `json:"other_allowances" binding:"gte=0"`
	FixedDeductions          int64  `json:"fixed_deductions" binding:"gte=0"`
	AttendanceBasedDeduction bool   `json:"attendance_based_deduction"`
	Cycle                    string `json:"cycle" binding:"omitempty,fee_cycle"`
	EffectiveDate            string `json:"effective_date"`
}

type StructureResponse struct {
	ID                       string `json:"id"`
	StaffID                  string `json:"staff_id"`
	StaffName                string `json:"staff_name,omitempty"`
	BaseSalary               int64  `json:"base_salary"`
	HRA                      int64  `json:"hra"`
	OtherAllowances          int64  `json:"other_allowances"`
	FixedDeductions          int64  `json:"fixed_deductions"`
	AttendanceBasedDeduction bool   `json:"attendance_based_deduction"`
	Cycle                    string `json:"cycle"`
	EffectiveDate            string `json:"effective_date"`
	Gross                    int64  `json:"gross"`
	NetBeforeAttendance      int64  `json:"net_before_attendance"`
}

type GenerateRequest struct {
	Period string `json:"period" binding:"required,yearmonth"`
}

type GenerateError struct {
	StaffID string `json:"staff_id"`
	Message string `json:"message"`
}

type GenerateResponse struct {
	Period    string          `json:"period"`
	Generated int             `json:"generated"`
	Skipped   int             `json:"skipped"`
	Errors    []GenerateError `json:"errors"`
}

type CreateRecordRequest struct {
	StaffID             string `json:"staff_id" binding:"required,uuid"`
	Period              string `json:"period" binding:"required,yearmonth"`
	AttendanceDeduction *int64 `json:"attendance_deduction" binding:"omitempty,gte=0"`
}

type RecordFilter struct {
	Period  string
	Status  string
	StaffID string
}

type RecordResponse struct {
	ID                  string  `json:"id"`
	StaffID             string  `json:"staff_id"`
	StaffName           string  `json:"staff_name,omitempty"`
	StaffNo             string  `json:"staff_no,omitempty"`
	Period              string  `json:"period"`
	WorkingDays         int     `json:"working_days"`
	AbsentDays          int     `json:"absent_days"`
	BaseSalary          int64   `json:"base_salary"`
	HRA                 int64   `json:"hra"`
	OtherAllowances     int64   `json:"other_allowances"`
	Gross               int64   `json:"gross"`
	FixedDeductions     int64   `json:"fixed_deductions"`
	AttendanceDeduction int64   `json:"attendance_deduction"`
	Net                 int64   `json:"net"`
	Status              string  `json:"status"`
	ApprovedBy          *string `json:"approved_by,omitempty"`
	ProcessedAt         *string `json:"processed_at,omitempty"`
	PaidAt              *string `json:"paid_at,omitempty"`
	PayslipAvailable    bool    `json:"payslip_available"`
}

type BreakdownLine struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

type BreakdownResponse struct {
	RecordID    string          `json:"record_id"`
	Period      string          `json:"period"`
	Status      string          `json:"status"`
	WorkingDays int             `json:"working_days"`
	AbsentDays  int             `json:"absent_days"`
	Earnings    []BreakdownLine `json:"earnings"`
	Deductions  []BreakdownLine `json:"deductions"`
	Gross       int64           `json:"gross"`
	Deducted    int64           `json:"total_deductions"`
	Net         int64           `json:"net"`
}

// Actor is the caller. SelfOnly is set when access was granted by salary:self_read.
type Actor struct {
	UserID   string
	Role     string
	StaffID  string
	SelfOnly bool
}
