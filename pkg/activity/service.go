package activity

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shelfwise/shelfwise/pkg/models"
	"github.com/uptrace/bun"
)

type ListActivitiesOptions struct {
	Limit int
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// List returns the most recent activity log entries, newest first.
func (svc *Service) List(ctx context.Context, opts ListActivitiesOptions) ([]*models.ActivityLog, error) {
	if opts.Limit <= 0 {
		opts.Limit = 10
	}

	var activities []*models.ActivityLog

	err := svc.db.
		NewSelect().
		Model(&activities).
		Order("al.timestamp DESC").
		Limit(opts.Limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return activities, nil
}

// Record appends an audit entry. The log is append-only; there is no way to
// mutate or delete entries through the API.
func (svc *Service) Record(ctx context.Context, userName, action string) error {
	entry := &models.ActivityLog{
		UserName:  userName,
		Action:    action,
		Timestamp: time.Now(),
	}

	_, err := svc.db.
		NewInsert().
		Model(entry).
		Exec(ctx)
	return errors.WithStack(err)
}
