package assignment

import (
	"time"

	"github.com/google/uuid"
)

type TeacherAssignment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SchoolID  uuid.UUID `gorm:"type:uuid;index"`
	StaffID   uuid.UUID `gorm:"type:uuid"`
	ClassID   uuid.UUID `gorm:"type:uuid"`
	SubjectID uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time

	StaffName    string `gorm:"->;column:staff_name"`
	ClassName    string `gorm:"->;column:class_name"`
	ClassSection string `gorm:"->;column:class_section"`
	SubjectName  string `gorm:"->;column:subject_name"`
}
