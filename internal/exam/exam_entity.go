package exam

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Exam struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SchoolID  uuid.UUID       `gorm:"type:uuid;index"`
	ClassID   uuid.UUID       `gorm:"type:uuid"`
	SubjectID uuid.UUID       `gorm:"type:uuid"`
	Name      string
	MaxMarks  decimal.Decimal `gorm:"type:numeric(6,2)"`
	ExamDate  time.Time       `gorm:"type:date"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	ClassName   string `gorm:"->;column:class_name"`
	SubjectName string `gorm:"->;column:subject_name"`
}

func (Exam) TableName() string {
	return "exams"
}

type Mark struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SchoolID      uuid.UUID       `gorm:"type:uuid"`
	ExamID        uuid.UUID       `gorm:"type:uuid"`
	StudentID     uuid.UUID       `gorm:"type:uuid"`
	MarksObtained decimal.Decimal `gorm:"type:numeric(6,2)"`
	IsAbsent      bool
	Remarks       string
	EnteredBy     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Mark) TableName() string {
	return "marks"
}

type RosterStudent struct {
	ID          string `gorm:"column:id"`
	FullName    string `gorm:"column:full_name"`
	AdmissionNo string `gorm:"column:admission_no"`
}
