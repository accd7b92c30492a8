// Package query sanitizes raw pagination and sorting input before it can
// reach a repository. Repositories only ever see the output of Normalize, so
// unvetted field names never make it into an ORDER BY clause.
package query

import (
	"strconv"
	"strings"

	"jobboard/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Normalize coerces raw query values into a safe PageRequest.
//
// page is floored at 1, limit clamped to [1,100] (oversized values are capped,
// not rejected, to keep scans bounded). An unknown sort field degrades to
// defaultSort rather than failing the request. Any order token other than
// "desc" means ascending.
func Normalize(rawPage, rawLimit, rawSort, rawOrder string, allowedSort map[string]bool, defaultSort string) domain.PageRequest {
	page, err := strconv.Atoi(strings.TrimSpace(rawPage))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(strings.TrimSpace(rawLimit))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	sort := strings.TrimSpace(rawSort)
	if sort == "" || !allowedSort[sort] {
		sort = defaultSort
	}

	order := domain.SortAsc
	if strings.EqualFold(strings.TrimSpace(rawOrder), "desc") {
		order = domain.SortDesc
	}

	return domain.PageRequest{
		Page:      page,
		Limit:     limit,
		SortField: sort,
		SortOrder: order,
	}
}
