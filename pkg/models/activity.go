package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ActivityLog is an append-only audit row. The API surface only reads it;
// entries are recorded internally by mutating handlers.
type ActivityLog struct {
	bun.BaseModel `bun:"table:activity_logs,alias:al"`

	ID        int       `bun:"id,pk,autoincrement" json:"id"`
	UserName  string    `bun:",nullzero" json:"user_name"`
	Action    string    `bun:",nullzero" json:"action"`
	Timestamp time.Time `bun:",nullzero" json:"timestamp"`
}
