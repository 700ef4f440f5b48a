package model

import (
	"time"

	"github.com/reelvault/reelvault-go/internal/uuid"
)

// User mirrors an external authentication principal. Rows are created lazily
// on the first authenticated request and never deleted.
type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ExternalID string    `json:"external_id" gorm:"type:varchar(191);uniqueIndex;not null"`
	Email      string    `json:"email" gorm:"type:varchar(320);not null"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}
