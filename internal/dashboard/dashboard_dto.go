package dashboard

type StudentAttendanceToday struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

type StaffAttendanceToday struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	OnLeave int `json:"on_leave"`
}

type StatsResponse struct {
	Date              string                 `json:"date"`
	TotalStudents     int64                  `json:"total_students"`
	TotalStaff        int64                  `json:"total_staff"`
	TotalClasses      int64                  `json:"total_classes"`
	StudentAttendance StudentAttendanceToday `json:"student_attendance"`
	StaffAttendance   StaffAttendanceToday   `json:"staff_attendance"`
	SalaryPeriod      string                 `json:"salary_period"`
	SalaryNetTotal    int64                  `json:"salary_net_total"`
	MonthlyFeeTotal   int64                  `json:"monthly_fee_total"`
	FeesCollected     int64                  `json:"fees_collected_this_month"`
}
