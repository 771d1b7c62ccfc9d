package fee

import (
	"time"

	"go-school/internal/shared/money"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassFee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SchoolID   uuid.UUID `gorm:"type:uuid;index"`
	ClassID    uuid.UUID `gorm:"type:uuid"`
	Name       string
	BaseAmount int64
	Discount   int64
	IsExempt   bool
	Cycle      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	ClassName string `gorm:"->;column:class_name"`
}

func (ClassFee) TableName() string {
	return "class_fees"
}

func (f ClassFee) LineItem() money.LineItem {
	return money.LineItem{BaseAmount: f.BaseAmount, Discount: f.Discount, IsExempt: f.IsExempt, Cycle: money.Cycle(f.Cycle)}
}

// CustomFee applies to one class, or to every class when ClassID is nil.
type CustomFee struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SchoolID   uuid.UUID  `gorm:"type:uuid;index"`
	ClassID    *uuid.UUID `gorm:"type:uuid"`
	Name       string
	BaseAmount int64
	Discount   int64
	IsExempt   bool
	Cycle      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	ClassName string `gorm:"->;column:class_name"`
}

func (CustomFee) TableName() string {
	return "custom_fees"
}

func (f CustomFee) LineItem() money.LineItem {
	return money.LineItem{BaseAmount: f.BaseAmount, Discount: f.Discount, IsExempt: f.IsExempt, Cycle: money.Cycle(f.Cycle)}
}

type TransportRoute struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SchoolID   uuid.UUID `gorm:"type:uuid;index"`
	Name       string
	BaseAmount int64
	Cycle      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (TransportRoute) TableName() string {
	return "transport_routes"
}

type TransportAssignment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SchoolID  uuid.UUID `gorm:"type:uuid;index"`
	StudentID uuid.UUID `gorm:"type:uuid"`
	RouteID   uuid.UUID `gorm:"type:uuid"`
	Discount  int64
	IsExempt  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	StudentName string `gorm:"->;column:student_name"`
	RouteName   string `gorm:"->;column:route_name"`
	BaseAmount  int64  `gorm:"->;column:route_base_amount"`
	Cycle       string `gorm:"->;column:route_cycle"`
}

func (TransportAssignment) TableName() string {
	return "transport_assignments"
}

func (a TransportAssignment) LineItem() money.LineItem {
	return money.LineItem{BaseAmount: a.BaseAmount, Discount: a.Discount, IsExempt: a.IsExempt, Cycle: money.Cycle(a.Cycle)}
}

type Payment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SchoolID   uuid.UUID `gorm:"type:uuid;index"`
	StudentID  uuid.UUID `gorm:"type:uuid"`
	Amount     int64
	PaidOn     time.Time `gorm:"type:date"`
	Method     string
	Reference  string
	Note       string
	RecordedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
}

func (Payment) TableName() string {
	return "fee_payments"
}

type StudentRef struct {
	ID       string  `gorm:"column:id"`
	FullName string  `gorm:"column:full_name"`
	ClassID  *string `gorm:"column:class_id"`
}
