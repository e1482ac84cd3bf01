package catalog

import (
	"strconv"
	"testing"

	"github.com/shelfwise/shelfwise/pkg/testutils"
	"github.com/uptrace/bun"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	return testutils.NewDB(t)
}

func itoa(id int) string {
	return strconv.Itoa(id)
}
