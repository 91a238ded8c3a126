package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFaqRequest struct {
	Question string   `json:"question" validate:"required,min=5,max=512"`
	Answer   string   `json:"answer" validate:"required,min=1"`
	Category string   `json:"category" validate:"omitempty,max=128"`
	Tags     []string `json:"tags" validate:"omitempty,dive,max=64"`
}

type UpdateFaqRequest struct {
	Id       uuid.UUID
	Question string   `json:"question" validate:"required,min=5,max=512"`
	Answer   string   `json:"answer" validate:"required,min=1"`
	Category string   `json:"category" validate:"omitempty,max=128"`
	Tags     []string `json:"tags" validate:"omitempty,dive,max=64"`
	Active   bool     `json:"active"`
}

// FaqSyncMessage travels over the in-process pubsub from the CRUD path to
// the index-sync consumer.
type FaqSyncMessage struct {
	Action   string    `json:"action"` // "upsert" or "delete"
	FaqId    uuid.UUID `json:"faq_id"`
	Question string    `json:"question,omitempty"`
	Answer   string    `json:"answer,omitempty"`
	Category string    `json:"category,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
}

type FaqResponse struct {
	Id        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
