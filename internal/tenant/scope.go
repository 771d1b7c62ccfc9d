package tenant

import "gorm.io/gorm"

// Scope limits a query to rows owned by one school.
func Scope(schoolID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("school_id = ?", schoolID)
	}
}
