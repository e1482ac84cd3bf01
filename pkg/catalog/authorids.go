package catalog

import (
	"strconv"
	"strings"
)

// ParseAuthorIDs parses the comma-separated author id string submitted by
// the book forms. Tokens are trimmed, empty tokens are dropped, and tokens
// that don't parse as an integer are silently discarded rather than failing
// the request. Duplicates are kept here; the junction insert collapses them
// against the unique index.
func ParseAuthorIDs(s string) []int {
	ids := []int{}
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		id, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
