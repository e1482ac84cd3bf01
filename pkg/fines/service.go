package fines

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

// ListFines returns all fines joined with the member name, most recent
// first.
func (svc *Service) ListFines(ctx context.Context) ([]*models.Fine, error) {
	var fines []*models.Fine

	err := svc.db.
		NewSelect().
		Model(&fines).
		ColumnExpr("f.*").
		ColumnExpr("m.first_name AS first_name, m.last_name AS last_name").
		Join("INNER JOIN members m ON m.id = f.member_id").
		Order("f.fine_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return fines, nil
}

// CreateFine records a manually posted fine. The amount is taken as given;
// fines are not derived from overdue duration.
func (svc *Service) CreateFine(ctx context.Context, fine *models.Fine) error {
	if fine.FineDate == "" {
		fine.FineDate = time.Now().Format("2006-01-02")
	}

	_, err := svc.db.
		NewInsert().
		Model(fine).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}
