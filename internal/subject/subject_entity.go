package subject

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subject struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SchoolID  uuid.UUID  `gorm:"type:uuid;index"`
	ClassID   *uuid.UUID `gorm:"type:uuid"`
	Name      string
	Code      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
