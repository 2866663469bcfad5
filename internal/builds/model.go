package builds

import (
	"time"

	"bobber/internal/pricing"
)

type BuildRecord struct {
	ID        string            `bson:"_id,omitempty" json:"id"`
	Selection pricing.Selection `bson:"selection" json:"selection"`
	Total     float64           `bson:"total" json:"total"`
	Currency  string            `bson:"currency" json:"currency"`
	Author    string            `bson:"author,omitempty" json:"author,omitempty"`
	Note      string            `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}
