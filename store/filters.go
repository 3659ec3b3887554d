package store

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Filter narrows a list view. All fields are optional; an empty filter
// matches everything the user owns.
type Filter struct {
	GroupID string
	TagIDs  []string
	Keyword string
}

// FilterFromQuery builds a Filter from request query parameters:
// groupId, a comma-separated tagIds list, and keyword.
func FilterFromQuery(q map[string]string) Filter {
	f := Filter{
		GroupID: strings.TrimSpace(q["groupId"]),
		Keyword: strings.TrimSpace(q["keyword"]),
	}
	for _, id := range strings.Split(q["tagIds"], ",") {
		if id = strings.TrimSpace(id); id != "" {
			f.TagIDs = append(f.TagIDs, id)
		}
	}
	return f
}

// apply adds the filter conditions to a query. Tag matching is
// OR-within-set: an entity qualifies when it carries any one of the
// requested tags. Keyword matching is a case-insensitive substring
// match on name or comments, written with LOWER/LIKE so it behaves the
// same on postgres and sqlite.
func (f Filter) apply(q *gorm.DB, joinTable, entityColumn string) *gorm.DB {
	if f.GroupID != "" {
		q = q.Where("group_id = ?", f.GroupID)
	}
	if len(f.TagIDs) > 0 {
		sub := fmt.Sprintf("id IN (SELECT %s FROM %s WHERE tag_id IN ?)", entityColumn, joinTable)
		q = q.Where(sub, f.TagIDs)
	}
	if f.Keyword != "" {
		kw := "%" + strings.ToLower(f.Keyword) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(comments) LIKE ?)", kw, kw)
	}
	return q
}
