package domain

// Sort order tokens as they appear in SQL.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// PageRequest carries normalized paging and sorting parameters. Handlers must
// obtain one through query.Normalize before it reaches a repository; the
// SortField is guaranteed to come from the entity's allow-list.
type PageRequest struct {
	Page      int
	Limit     int
	SortField string
	SortOrder string
}

// Offset converts page/limit into a SQL offset.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is a list slice plus the total count of matching non-deleted records,
// independent of the slice, so callers can compute total pages.
type Page[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}
