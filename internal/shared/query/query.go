// Package query turns raw, untrusted list parameters into SQL fragments.
//
// Anything returned here that ends up interpolated into statement text
// (sort column, direction, projection) is drawn from a caller-provided
// allow-list. Literal values are never interpolated; they travel as
// bound arguments in a Statement.
package query

import (
	"math"
	"strconv"
	"strings"
)

// Unbounded is the LIMIT used when the caller did not ask for a page size.
const Unbounded = 99999999

const (
	Asc  = "ASC"
	Desc = "DESC"
)

// ListOptions holds list parameters exactly as they arrived on the query string.
type ListOptions struct {
	Sort   string
	Order  string
	Size   string
	Page   string
	Filter []string
}

// Statement is SQL text with positional ? placeholders and its bound values.
type Statement struct {
	SQL  string
	Args []any
}

// SortField returns requested if it is one of allowed, otherwise the first
// allowed column.
func SortField(allowed []string, requested string) string {
	for _, field := range allowed {
		if field == requested {
			return field
		}
	}
	if len(allowed) == 0 {
		return ""
	}
	return allowed[0]
}

func OrderDirection(requested string) string {
	if strings.EqualFold(requested, "desc") {
		return Desc
	}
	return Asc
}

// Limit parses a page size. Missing, malformed or negative input yields Unbounded.
func Limit(size string) int {
	n, err := strconv.Atoi(strings.TrimSpace(size))
	if err != nil || n < 0 {
		return Unbounded
	}
	return n
}

// Offset computes (page-1)*Limit(size). Page defaults to 1 and the result
// never goes below zero. A product too large for an int saturates at
// math.MaxInt so an absurd page reads past the end instead of wrapping.
func Offset(page, size string) int {
	p, err := strconv.Atoi(strings.TrimSpace(page))
	if err != nil {
		p = 1
	}
	if p <= 1 {
		return 0
	}
	limit := Limit(size)
	if limit > 0 && p-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (p - 1) * limit
}

// Columns intersects requested with allowed, keeping the order of allowed.
// An empty request, or one that matches nothing, selects every allowed column.
func Columns(allowed []string, requested []string) []string {
	wanted := make(map[string]struct{}, len(requested))
	for _, r := range requested {
		for _, part := range strings.Split(r, ",") {
			if part = strings.TrimSpace(part); part != "" {
				wanted[part] = struct{}{}
			}
		}
	}

	if len(wanted) == 0 {
		return append([]string(nil), allowed...)
	}

	cols := make([]string, 0, len(wanted))
	for _, column := range allowed {
		if _, ok := wanted[column]; ok {
			cols = append(cols, column)
		}
	}
	if len(cols) == 0 {
		return append([]string(nil), allowed...)
	}
	return cols
}

func Projection(allowed []string, requested []string) string {
	return strings.Join(Columns(allowed, requested), ", ")
}
