package staff

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	TypeTeaching    = "TEACHING"
	TypeNonTeaching = "NON_TEACHING"
)

type Staff struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SchoolID    uuid.UUID `gorm:"type:uuid;index"`
	StaffNo     string
	FullName    string
	Email       string
	Phone       string
	Designation string
	StaffType   string
	JoinDate    time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Filled from the linked users row on reads.
	UserID   *uuid.UUID `gorm:"->;column:user_id"`
	Username *string    `gorm:"->;column:username"`
}

func (Staff) TableName() string {
	return "staff"
}
