package school

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type School struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Address      string
	Phone        string
	Email        string
	AcademicYear string
	JoinCode     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
