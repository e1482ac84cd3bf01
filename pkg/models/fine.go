package models

import (
	"github.com/uptrace/bun"
)

// Fine is a manually posted charge against a member, optionally tied to a
// loan. Amounts are caller-supplied; nothing is derived from overdue
// duration.
type Fine struct {
	bun.BaseModel `bun:"table:fines,alias:f"`

	ID         int     `bun:"id,pk,autoincrement" json:"id"`
	MemberID   int     `bun:",nullzero" json:"member_id"`
	LoanID     *int    `json:"loan_id"`
	FineDate   string  `bun:",nullzero" json:"fine_date"`
	FineAmount float64 `json:"fine_amount"`

	FirstName string `bun:",scanonly" json:"first_name,omitempty"`
	LastName  string `bun:",scanonly" json:"last_name,omitempty"`
}
