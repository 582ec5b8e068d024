package domain

import (
	"time"

	"github.com/google/uuid"
)

// Policy is the read model of an insurance policy, owned by the policy
// administration system. Lookups are best-effort: a payment for an
// unknown policy number is still accepted.
type Policy struct {
	ID           uuid.UUID `json:"id"`
	PolicyNumber string    `json:"policyNumber"`
	HolderID     string    `json:"holderId"`
	Product      string    `json:"product"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
