package members

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shelfwise/shelfwise/pkg/models"
	"github.com/uptrace/bun"
)

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// ListMembers returns all members joined with their human-readable status,
// ordered by id.
func (svc *Service) ListMembers(ctx context.Context) ([]*models.Member, error) {
	var members []*models.Member

	err := svc.db.
		NewSelect().
		Model(&members).
		ColumnExpr("m.*").
		ColumnExpr("ms.status_value AS status").
		Join("INNER JOIN member_statuses ms ON ms.id = m.active_status_id").
		Order("m.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return members, nil
}

// CreateMember registers a member. Names are not required to be unique;
// duplicate registrations are permitted.
func (svc *Service) CreateMember(ctx context.Context, member *models.Member) error {
	if member.JoinedDate == "" {
		member.JoinedDate = time.Now().Format("2006-01-02")
	}

	_, err := svc.db.
		NewInsert().
		Model(member).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

// ListStatuses returns the member status lookup table.
func (svc *Service) ListStatuses(ctx context.Context) ([]*models.MemberStatus, error) {
	var statuses []*models.MemberStatus

	err := svc.db.
		NewSelect().
		Model(&statuses).
		Order("ms.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return statuses, nil
}
