package salary

import (
	"time"

	"go-school/internal/shared/money"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "DRAFT"
	StatusProcessed = "PROCESSED"
	StatusPaid      = "PAID"
)

// Structure is one effective-dated version of a staff member's pay.
// Versions are append-only; the current one is the latest effective on or before today.
type Structure struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SchoolID                 uuid.UUID `gorm:"type:uuid;not null"`
	StaffID                  uuid.UUID `gorm:"type:uuid;not null"`
	BaseSalary               int64
	HRA                      int64 `gorm:"column:hra"`
	OtherAllowances          int64
	FixedDeductions          int64
	AttendanceBasedDeduction bool
	Cycle                    string
	EffectiveDate            time.Time `gorm:"type:date"`
	CreatedAt                time.Time
	UpdatedAt                time.Time

	StaffName string `gorm:"->;column:staff_name"`
}

func (Structure) TableName() string {
	return "salary_structures"
}

func (s Structure) Money() money.SalaryStructure {
	return money.SalaryStructure{
		BaseSalary:               s.BaseSalary,
		HRA:                      s.HRA,
		OtherAllowances:          s.OtherAllowances,
		FixedDeductions:          s.FixedDeductions,
		AttendanceBasedDeduction: s.AttendanceBasedDeduction,
		Cycle:                    money.Cycle(s.Cycle),
	}
}

// Record is a staff member's salary for one YYYY-MM period. Amounts are
// copied from the structure so later versions never rewrite history.
type Record struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SchoolID            uuid.UUID  `gorm:"type:uuid;not null"`
	StaffID             uuid.UUID  `gorm:"type:uuid;not null"`
	StructureID         *uuid.UUID `gorm:"type:uuid"`
	Period              string
	WorkingDays         int
	AbsentDays          int
	BaseSalary          int64
	HRA                 int64 `gorm:"column:hra"`
	OtherAllowances     int64
	Gross               int64
	FixedDeductions     int64
	AttendanceDeduction int64
	Net                 int64
	Status              string
	CreatedBy           *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy          *uuid.UUID `gorm:"type:uuid"`
	ProcessedAt         *time.Time
	PaidAt              *time.Time
	PayslipPath         *string
	PayslipGeneratedAt  *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	StaffName string `gorm:"->;column:staff_name"`
	StaffNo   string `gorm:"->;column:staff_no"`
}

func (Record) TableName() string {
	return "salary_records"
}

type StaffRef struct {
	ID       string
	FullName string
	StaffNo  string
	JoinDate time.Time
}
