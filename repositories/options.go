package repositories

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = gorm.ErrRecordNotFound

// ListOptions is the normalized input of every paginated listing
type ListOptions struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
	Route     string
}

// likeEscaper makes LIKE wildcards in a search term match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// applySearch keeps rows where any of columns contains search
func applySearch(query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}

	conditions := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	pattern := "%" + likeEscaper.Replace(search) + "%"
	for _, column := range columns {
		conditions = append(conditions, column+` LIKE ? ESCAPE '\'`)
		args = append(args, pattern)
	}
	return query.Where("("+strings.Join(conditions, " OR ")+")", args...)
}

// orderBy maps an API sort field onto its column through the allow-list.
// Unknown or empty fields fall back to insertion order; a known field with
// no explicit order sorts descending.
func orderBy(sortBy, sortOrder string, allowed map[string]string) []clause.OrderByColumn {
	column, ok := allowed[sortBy]
	if !ok {
		return []clause.OrderByColumn{{Column: clause.Column{Name: "id"}}}
	}
	return []clause.OrderByColumn{
		{Column: clause.Column{Name: column}, Desc: sortOrder != "asc"},
		{Column: clause.Column{Name: "id"}},
	}
}
