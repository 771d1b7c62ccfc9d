package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Leave is a staff leave request covering an inclusive date range.
type Leave struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_school_status"`
	StaffID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_staff_dates"`

	LeaveType string    `gorm:"type:varchar(30);not null;default:'CASUAL'"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leaves_staff_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leaves_staff_dates"`
	TotalDays int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leaves_school_status"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason *string    `gorm:"type:text"`

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
	DeletedAt  gorm.DeletedAt

	StaffName string `gorm:"->;column:staff_name"`
}
