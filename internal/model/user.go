package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the user model stored in the database. Every user
// belongs to exactly one tenant; the tenant id is stamped into the JWT
// at login and never taken from request bodies afterwards.
type User struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Email          string         `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	HashedPassword string         `json:"-" gorm:"type:varchar(255);not null"`
	TenantID       uuid.UUID      `json:"tenant_id" gorm:"type:uuid;index;not null"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}
