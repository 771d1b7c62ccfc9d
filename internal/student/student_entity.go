package student

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusGraduated = "graduated"
)

type Student struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SchoolID      uuid.UUID  `gorm:"type:uuid;index"`
	ClassID       *uuid.UUID `gorm:"type:uuid"`
	AdmissionNo   string
	FullName      string
	RollNo        string
	Gender        string
	DateOfBirth   *time.Time
	GuardianName  string
	GuardianPhone string
	Address       string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	ClassName string `gorm:"->;column:class_name"`
}
