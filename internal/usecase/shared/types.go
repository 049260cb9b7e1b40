package shared

import (
	"time"

	"creator-sponsorship/internal/domain/sponsorship"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type CreatorProfileSnapshot struct {
	Username            string
	PriceList           sponsorship.PriceList
	ContactInstructions string
	UpdatedAt           time.Time
}

type IdempotencyRecord struct {
	Key           uuid.UUID
	Scope         string
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}
