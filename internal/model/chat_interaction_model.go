package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatInteraction struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId      string         `gorm:"type:varchar(64);not null;index"`
	UserMessage    string         `gorm:"type:text;not null"`
	BotResponse    string         `gorm:"type:text;not null"`
	Intent         string         `gorm:"type:varchar(32);not null;index"`
	HasFallback    bool           `gorm:"not null;default:false"`
	FallbackReason *string        `gorm:"type:varchar(32)"`
	Sources        datatypes.JSON `gorm:"type:jsonb"`
	LatencyMs      int64          `gorm:"not null;default:0"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index"`
}

func (ChatInteraction) TableName() string {
	return "chat_interactions"
}
