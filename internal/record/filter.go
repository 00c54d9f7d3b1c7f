package record

import (
	"fmt"
	"strings"
)

// QueryPlan is a SQL fragment and its positional parameters. Placeholders in SQL are
// numbered $1..$len(Args) in the order of Args.
type QueryPlan struct {
	SQL  string
	Args []any
}

// Next returns the number of the next free placeholder.
func (q QueryPlan) Next() int {
	return len(q.Args) + 1
}

// BuildFilter turns recognised query values into a WHERE predicate. The predicate
// always starts with `1=1` so callers can append further conditions with AND.
// Unknown keys are ignored and empty values skip their filter.
func BuildFilter(filters []Filter, values map[string]string) QueryPlan {
	var sb strings.Builder
	sb.WriteString("1=1")
	var args []any

	for _, f := range filters {
		v := strings.TrimSpace(values[f.Param])
		if v == "" {
			continue
		}

		op, arg := "=", any(v)
		if f.Mode == Contains {
			op, arg = "ILIKE", "%"+v+"%"
		}

		parts := make([]string, 0, len(f.Columns))
		for _, col := range f.Columns {
			args = append(args, arg)
			parts = append(parts, fmt.Sprintf("%s %s $%d", col, op, len(args)))
		}
		if len(parts) == 1 {
			sb.WriteString(" AND " + parts[0])
		} else {
			sb.WriteString(" AND (" + strings.Join(parts, " OR ") + ")")
		}
	}

	return QueryPlan{SQL: sb.String(), Args: args}
}
