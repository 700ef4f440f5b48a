package model

import (
	"time"

	"github.com/reelvault/reelvault-go/internal/uuid"
)

// Video is one successfully processed upload. A row exists only once the
// media provider has confirmed processing; there is no pending or failed
// state, failures short-circuit before anything is written.
type Video struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text;not null;default:''"`
	// PublicID is the provider-assigned content identifier all derived URLs
	// are built from.
	PublicID       string    `json:"publicId" gorm:"type:varchar(512);not null"`
	OriginalSize   int64     `json:"originalSize" gorm:"not null"`
	CompressedSize int64     `json:"compressedSize" gorm:"not null"`
	Duration       float64   `json:"duration" gorm:"not null;default:0"`
	UserID         uuid.UUID `json:"userId" gorm:"type:uuid;not null;index:idx_videos_user_created,priority:1"`
	Metadata       Metadata  `json:"metadata" gorm:"type:jsonb"`
	CreatedAt      time.Time `json:"createdAt" gorm:"not null;autoCreateTime;index:idx_videos_user_created,priority:2,sort:desc"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}
