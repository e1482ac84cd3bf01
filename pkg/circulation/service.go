package circulation

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/shelfwise/shelfwise/pkg/errcodes"
	"github.com/shelfwise/shelfwise/pkg/models"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// ListLoans returns all loans joined with the book title and the member
// name, most recent first. Loans whose book or member row is gone are
// excluded by the inner joins.
func (svc *Service) ListLoans(ctx context.Context) ([]*models.Loan, error) {
	var loans []*models.Loan

	err := svc.db.
		NewSelect().
		Model(&loans).
		ColumnExpr("l.*").
		ColumnExpr("b.title AS title").
		ColumnExpr("m.first_name AS first_name, m.last_name AS last_name").
		Join("INNER JOIN books b ON b.id = l.book_id").
		Join("INNER JOIN members m ON m.id = l.member_id").
		Order("l.loan_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return loans, nil
}

// IssueLoan opens a loan for a member. The member must be active and the
// book must have a copy not already out. The book row is locked for the
// length of the transaction so two racing issuances can't both count the
// same copy as free.
func (svc *Service) IssueLoan(ctx context.Context, bookID, memberID int) (*models.Loan, error) {
	loan := &models.Loan{
		BookID:   bookID,
		MemberID: memberID,
		LoanDate: today(),
	}

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		member := &models.Member{}
		err := tx.
			NewSelect().
			Model(member).
			ColumnExpr("m.*").
			ColumnExpr("ms.status_value AS status").
			Join("INNER JOIN member_statuses ms ON ms.id = m.active_status_id").
			Where("m.id = ?", memberID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errcodes.NotFound("Member")
			}
			return errors.WithStack(err)
		}
		if member.Status != models.MemberStatusActive {
			return errcodes.ValidationError("Member is not active and can't borrow books.")
		}

		book := &models.Book{}
		err = lockForUpdate(tx.
			NewSelect().
			Model(book).
			Where("b.id = ?", bookID), tx.Dialect().Name()).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errcodes.NotFound("Book")
			}
			return errors.WithStack(err)
		}

		open, err := tx.
			NewSelect().
			Model((*models.Loan)(nil)).
			Where("l.book_id = ?", bookID).
			Where("l.returned_date IS NULL").
			Count(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if open >= book.CopiesOwned {
			return errcodes.ValidationError("No copies of this book are currently available.")
		}

		_, err = tx.
			NewInsert().
			Model(loan).
			Returning("*").
			Exec(ctx)
		return errors.WithStack(err)
	})
	if err != nil {
		return nil, err
	}

	return loan, nil
}

// ReturnLoan stamps the loan's returned_date with the current date. The
// operation is idempotent: returning an already-returned loan re-stamps the
// date and succeeds.
func (svc *Service) ReturnLoan(ctx context.Context, id int) (*models.Loan, error) {
	loan := &models.Loan{}

	res, err := svc.db.
		NewUpdate().
		Model(loan).
		Set("returned_date = ?", today()).
		Where("id = ?", id).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if n == 0 {
		return nil, errcodes.NotFound("Loan")
	}

	return loan, nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// lockForUpdate adds a row lock on dialects that support one. SQLite has no
// FOR UPDATE; its single-writer model already serializes the transaction.
func lockForUpdate(q *bun.SelectQuery, name dialect.Name) *bun.SelectQuery {
	if name == dialect.PG {
		q.For("UPDATE")
	}
	return q
}
