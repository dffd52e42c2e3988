package query_test

import (
	"math"
	"testing"

	"go-orgs/internal/shared/query"

	"github.com/stretchr/testify/assert"
)

func TestSortField(t *testing.T) {
	allowed := []string{"name", "slug"}

	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{"unknown field falls back to default", "bogus", "name"},
		{"allowed field is kept", "slug", "slug"},
		{"missing field falls back to default", "", "name"},
		{"injection attempt falls back to default", "name; DROP TABLE organizations", "name"},
		{"match is case sensitive", "SLUG", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.SortField(allowed, tt.requested))
		})
	}

	t.Run("empty allow-list", func(t *testing.T) {
		assert.Equal(t, "", query.SortField(nil, "name"))
	})
}

func TestOrderDirection(t *testing.T) {
	assert.Equal(t, "DESC", query.OrderDirection("desc"))
	assert.Equal(t, "DESC", query.OrderDirection("DESC"))
	assert.Equal(t, "DESC", query.OrderDirection("Desc"))
	assert.Equal(t, "ASC", query.OrderDirection("asc"))
	assert.Equal(t, "ASC", query.OrderDirection(""))
	assert.Equal(t, "ASC", query.OrderDirection("desc; --"))
}

func TestLimit(t *testing.T) {
	assert.Equal(t, query.Unbounded, query.Limit(""))
	assert.Equal(t, 10, query.Limit("10"))
	assert.Equal(t, 0, query.Limit("0"))
	assert.Equal(t, query.Unbounded, query.Limit("ten"))
	assert.Equal(t, query.Unbounded, query.Limit("-5"))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 10, query.Offset("2", "10"))
	assert.Equal(t, 0, query.Offset("", ""))
	assert.Equal(t, 0, query.Offset("1", "25"))
	assert.Equal(t, 50, query.Offset("3", "25"))
	assert.Equal(t, 0, query.Offset("abc", "10"))

	t.Run("pages below one never produce a negative offset", func(t *testing.T) {
		assert.Equal(t, 0, query.Offset("0", "10"))
		assert.Equal(t, 0, query.Offset("-3", "10"))
		assert.Equal(t, 0, query.Offset("-9223372036854775808", "10"))
	})

	t.Run("huge pages saturate instead of wrapping", func(t *testing.T) {
		assert.Equal(t, math.MaxInt, query.Offset("9223372036854775807", "10"))
		assert.Equal(t, math.MaxInt, query.Offset("200000000000", ""))
		assert.Equal(t, 0, query.Offset("9223372036854775807", "0"))
	})
}

func TestProjection(t *testing.T) {
	allowed := []string{"a", "b", "c"}

	t.Run("keeps allow-list order", func(t *testing.T) {
		assert.Equal(t, "a, c", query.Projection(allowed, []string{"c", "a"}))
	})

	t.Run("no request selects everything", func(t *testing.T) {
		assert.Equal(t, "a, b, c", query.Projection(allowed, nil))
	})

	t.Run("unknown columns are dropped", func(t *testing.T) {
		assert.Equal(t, "b", query.Projection(allowed, []string{"b", "password", "1=1"}))
	})

	t.Run("nothing allowed requested selects everything", func(t *testing.T) {
		assert.Equal(t, "a, b, c", query.Projection(allowed, []string{"x"}))
	})

	t.Run("comma separated values", func(t *testing.T) {
		assert.Equal(t, []string{"b", "c"}, query.Columns(allowed, []string{"c, b"}))
	})
}
