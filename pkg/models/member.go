package models

import (
	"github.com/uptrace/bun"
)

const (
	MemberStatusActive    = "active"
	MemberStatusSuspended = "suspended"
)

type MemberStatus struct {
	bun.BaseModel `bun:"table:member_statuses,alias:ms"`

	ID          int    `bun:"id,pk,autoincrement" json:"id"`
	StatusValue string `bun:",nullzero" json:"status_value"`
}

type Member struct {
	bun.BaseModel `bun:"table:members,alias:m"`

	ID             int    `bun:"id,pk,autoincrement" json:"id"`
	FirstName      string `bun:",nullzero" json:"first_name"`
	LastName       string `bun:",nullzero" json:"last_name"`
	JoinedDate     string `bun:",nullzero" json:"joined_date"`
	ActiveStatusID int    `bun:",nullzero" json:"active_status_id"`

	Status string `bun:",scanonly" json:"status,omitempty"`
}
