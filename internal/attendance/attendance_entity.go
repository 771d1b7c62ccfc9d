package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Record is one person's attendance for one date. Students and staff share the
// table and are told apart by SubjectType.
type Record struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SchoolID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	SubjectType    string     `gorm:"type:varchar(10);not null"`
	SubjectID      uuid.UUID  `gorm:"type:uuid;not null"`
	ClassID        *uuid.UUID `gorm:"type:uuid"`
	AttendanceDate time.Time  `gorm:"type:date;not null"`
	Status         string     `gorm:"type:varchar(10);not null"`
	MarkedBy       *uuid.UUID `gorm:"type:uuid"`
	Remarks        string     `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Record) TableName() string {
	return "attendance_records"
}

// RosterMember is a person eligible to be marked on a roster.
type RosterMember struct {
	ID     string `gorm:"column:id"`
	Name   string `gorm:"column:name"`
	Number string `gorm:"column:number"`
}

// SubjectStatusCount is one row of a grouped count query.
type SubjectStatusCount struct {
	SubjectID string `gorm:"column:subject_id"`
	Status    string `gorm:"column:status"`
	Total     int    `gorm:"column:total"`
}
