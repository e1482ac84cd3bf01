package members

import (
	"context"
	"testing"
	"time"

	"github.com/shelfwise/shelfwise/pkg/models"
	"github.com/shelfwise/shelfwise/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCreateMember(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	member := &models.Member{FirstName: "Jo", LastName: "Reader", ActiveStatusID: 1}
	err := svc.CreateMember(ctx, member)
	require.NoError(t, err)

	assert.NotZero(t, member.ID)
	assert.Equal(t, time.Now().Format("2006-01-02"), member.JoinedDate)
}

func TestServiceCreateMemberDuplicateNamesPermitted(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	first := &models.Member{FirstName: "Jo", LastName: "Reader", ActiveStatusID: 1}
	require.NoError(t, svc.CreateMember(ctx, first))

	second := &models.Member{FirstName: "Jo", LastName: "Reader", ActiveStatusID: 1}
	require.NoError(t, svc.CreateMember(ctx, second))

	assert.NotEqual(t, first.ID, second.ID)
}

func TestServiceListMembers(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	active := &models.Member{FirstName: "Amy", LastName: "Active", ActiveStatusID: 1}
	require.NoError(t, svc.CreateMember(ctx, active))

	suspended := &models.Member{FirstName: "Sam", LastName: "Suspended", ActiveStatusID: 2}
	require.NoError(t, svc.CreateMember(ctx, suspended))

	members, err := svc.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.Equal(t, "Amy", members[0].FirstName)
	assert.Equal(t, models.MemberStatusActive, members[0].Status)
	assert.Equal(t, models.MemberStatusSuspended, members[1].Status)
}

func TestServiceListStatuses(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)

	statuses, err := svc.ListStatuses(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, models.MemberStatusActive, statuses[0].StatusValue)
	assert.Equal(t, models.MemberStatusSuspended, statuses[1].StatusValue)
}
