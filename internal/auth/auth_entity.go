package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a login account. Teachers link to a staff row, students to a student row.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	StaffID   *uuid.UUID `gorm:"type:uuid"`
	StudentID *uuid.UUID `gorm:"type:uuid"`
	Username  string     `gorm:"type:varchar(50);not null"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Password  string     `gorm:"type:varchar(255);not null"`
	Role      string     `gorm:"type:varchar(20);not null"`
	IsActive  bool       `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string { return "users" }

// LinkedRecord is the staff or student row an account registers against.
// StaffType is empty for students.
type LinkedRecord struct {
	ID        string
	Status    string
	StaffType string
}

const (
	linkedStatusActive = "active"
	staffTypeTeaching  = "TEACHING"
)

// CanLinkTeacher reports whether a staff row may back a TEACHER account.
func (r LinkedRecord) CanLinkTeacher() bool {
	return r.ID != "" && r.Status == linkedStatusActive && r.StaffType == staffTypeTeaching
}

// CanLinkStudent reports whether a student row may back a STUDENT account.
func (r LinkedRecord) CanLinkStudent() bool {
	return r.ID != "" && r.Status == linkedStatusActive
}
