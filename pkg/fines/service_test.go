package fines

import (
	"context"
	"testing"
	"time"

	"github.com/shelfwise/shelfwise/pkg/models"
	"github.com/shelfwise/shelfwise/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func createMember(t *testing.T, db *bun.DB, first, last string) *models.Member {
	t.Helper()

	member := &models.Member{FirstName: first, LastName: last, JoinedDate: "2024-01-01", ActiveStatusID: 1}
	_, err := db.NewInsert().Model(member).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return member
}

func TestServiceCreateFineWithoutLoan(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	member := createMember(t, db, "Jo", "Reader")

	fine := &models.Fine{MemberID: member.ID, FineAmount: 2.50}
	err := svc.CreateFine(ctx, fine)
	require.NoError(t, err)

	assert.NotZero(t, fine.ID)
	assert.Nil(t, fine.LoanID)
	assert.Equal(t, time.Now().Format("2006-01-02"), fine.FineDate)

	fines, err := svc.ListFines(ctx)
	require.NoError(t, err)
	require.Len(t, fines, 1)
	assert.Equal(t, "Jo", fines[0].FirstName)
	assert.Equal(t, "Reader", fines[0].LastName)
	assert.Nil(t, fines[0].LoanID)
	assert.InDelta(t, 2.50, fines[0].FineAmount, 0.001)
}

func TestServiceCreateFineWithLoan(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	member := createMember(t, db, "Jo", "Reader")

	loanID := 7
	fine := &models.Fine{MemberID: member.ID, LoanID: &loanID, FineAmount: 1.00}
	err := svc.CreateFine(ctx, fine)
	require.NoError(t, err)

	require.NotNil(t, fine.LoanID)
	assert.Equal(t, 7, *fine.LoanID)
}

func TestServiceListFinesOrder(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	member := createMember(t, db, "Jo", "Reader")

	older := &models.Fine{MemberID: member.ID, FineDate: "2024-01-01", FineAmount: 1}
	_, err := db.NewInsert().Model(older).Exec(ctx)
	require.NoError(t, err)

	newer := &models.Fine{MemberID: member.ID, FineDate: "2024-06-01", FineAmount: 2}
	_, err = db.NewInsert().Model(newer).Exec(ctx)
	require.NoError(t, err)

	fines, err := svc.ListFines(ctx)
	require.NoError(t, err)
	require.Len(t, fines, 2)
	assert.Equal(t, "2024-06-01", fines[0].FineDate)
	assert.Equal(t, "2024-01-01", fines[1].FineDate)
}
