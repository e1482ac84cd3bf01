package models

import (
	"github.com/uptrace/bun"
)

// Loan is the circulation record for one issuance of a book to a member. A
// loan starts open (returned_date null) and is terminal once returned; rows
// are never deleted in the normal flow.
type Loan struct {
	bun.BaseModel `bun:"table:loans,alias:l"`

	ID           int     `bun:"id,pk,autoincrement" json:"id"`
	BookID       int     `bun:",nullzero" json:"book_id"`
	MemberID     int     `bun:",nullzero" json:"member_id"`
	LoanDate     string  `bun:",nullzero" json:"loan_date"`
	ReturnedDate *string `json:"returned_date"`

	Title     string `bun:",scanonly" json:"title,omitempty"`
	FirstName string `bun:",scanonly" json:"first_name,omitempty"`
	LastName  string `bun:",scanonly" json:"last_name,omitempty"`
}

// Returned reports whether the loan has left the open state.
func (l *Loan) Returned() bool {
	return l.ReturnedDate != nil
}
