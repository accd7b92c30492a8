package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jobboard/internal/domain"
)

var allowed = map[string]bool{"created_at": true, "name": true}

func TestNormalizeClampsAndFallsBack(t *testing.T) {
	got := Normalize("0", "500", "DROP TABLE", "desc", allowed, "created_at")
	require.Equal(t, domain.PageRequest{
		Page:      1,
		Limit:     100,
		SortField: "created_at",
		SortOrder: domain.SortDesc,
	}, got)
}

func TestNormalizeDefaults(t *testing.T) {
	got := Normalize("", "", "", "", allowed, "created_at")
	require.Equal(t, 1, got.Page)
	require.Equal(t, 20, got.Limit)
	require.Equal(t, "created_at", got.SortField)
	require.Equal(t, domain.SortAsc, got.SortOrder)
}

func TestNormalizeKeepsAllowedSort(t *testing.T) {
	got := Normalize("3", "25", "name", "ASC", allowed, "created_at")
	require.Equal(t, 3, got.Page)
	require.Equal(t, 25, got.Limit)
	require.Equal(t, "name", got.SortField)
	require.Equal(t, domain.SortAsc, got.SortOrder)
	require.Equal(t, 50, got.Offset())
}

func TestNormalizeNonNumericInput(t *testing.T) {
	got := Normalize("abc", "-7", "created_at", "DESC", allowed, "created_at")
	require.Equal(t, 1, got.Page)
	require.Equal(t, 20, got.Limit)
	require.Equal(t, domain.SortDesc, got.SortOrder)
}

func TestNormalizeOrderTokenIsBinary(t *testing.T) {
	for _, tok := range []string{"", "asc", "ascending", "DELETE", "Desc "} {
		got := Normalize("1", "10", "name", tok, allowed, "created_at")
		if tok == "Desc " {
			// trailing space is trimmed before comparison
			require.Equal(t, domain.SortDesc, got.SortOrder)
			continue
		}
		require.Equal(t, domain.SortAsc, got.SortOrder, "token %q", tok)
	}
}
