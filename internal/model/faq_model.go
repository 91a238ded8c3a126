package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Faq struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question string    `gorm:"type:varchar(512);not null"`
	Answer   string    `gorm:"type:text;not null"`
	Category string    `gorm:"type:varchar(128);index"`
	// Tags refine retrieval payloads, never filtering.
	Tags      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Active    bool                        `gorm:"not null;default:true"`
	CreatedAt time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt              `gorm:"index"`
}

func (Faq) TableName() string {
	return "faqs"
}
