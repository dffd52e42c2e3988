package query_test

import (
	"testing"

	"go-orgs/internal/shared/query"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	t.Run("unchanged values produce no assignments", func(t *testing.T) {
		got := query.Diff(
			[]query.Assignment{{Column: "name", Value: "X"}},
			map[string]any{"name": "X"},
		)
		assert.Empty(t, got)
	})

	t.Run("changed value produces one assignment", func(t *testing.T) {
		got := query.Diff(
			[]query.Assignment{{Column: "name", Value: "Y"}},
			map[string]any{"name": "X"},
		)
		assert.Equal(t, []query.Assignment{{Column: "name", Value: "Y"}}, got)
		assert.Equal(t, "name = ?", got[0].SQL())
	})

	t.Run("submitted order is preserved", func(t *testing.T) {
		got := query.Diff(
			[]query.Assignment{
				{Column: "slug", Value: "new-slug"},
				{Column: "name", Value: "Same"},
				{Column: "phone", Value: "+48100"},
			},
			map[string]any{"name": "Same", "slug": "old-slug", "phone": nil},
		)
		assert.Equal(t, []query.Assignment{
			{Column: "slug", Value: "new-slug"},
			{Column: "phone", Value: "+48100"},
		}, got)
	})

	t.Run("column missing from current counts as changed", func(t *testing.T) {
		got := query.Diff([]query.Assignment{{Column: "vat", Value: "PL1"}}, map[string]any{})
		assert.Len(t, got, 1)
	})
}

func TestSetClause(t *testing.T) {
	sql, args := query.SetClause([]query.Assignment{
		{Column: "name", Value: "Y"},
		{Column: "slug", Value: "y"},
	})

	assert.Equal(t, "name = ?, slug = ?", sql)
	assert.Equal(t, []any{"Y", "y"}, args)
}
