package query

import "strings"

// Assignment is one "column = ?" pair of an UPDATE or INSERT.
// Column always comes from a static field table, never from request keys.
type Assignment struct {
	Column string
	Value  any
}

func (a Assignment) SQL() string {
	return a.Column + " = ?"
}

// Diff keeps the submitted assignments whose value differs from current,
// in submitted order. An empty result means there is nothing to write.
func Diff(submitted []Assignment, current map[string]any) []Assignment {
	var changed []Assignment
	for _, a := range submitted {
		if prev, ok := current[a.Column]; ok && prev == a.Value {
			continue
		}
		changed = append(changed, a)
	}
	return changed
}

// SetClause joins assignments into the body of a SET clause and returns
// their bound values in the same order.
func SetClause(assignments []Assignment) (string, []any) {
	parts := make([]string, len(assignments))
	args := make([]any, len(assignments))
	for i, a := range assignments {
		parts[i] = a.SQL()
		args[i] = a.Value
	}
	return strings.Join(parts, ", "), args
}
