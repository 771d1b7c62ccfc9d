package classroom

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Classroom struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SchoolID       uuid.UUID  `gorm:"type:uuid;index"`
	Name           string
	Section        string
	AcademicYear   string
	ClassTeacherID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	StudentCount int64 `gorm:"->;column:student_count"`
}

func (Classroom) TableName() string {
	return "classes"
}
