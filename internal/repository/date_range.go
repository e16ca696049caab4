package repository

import (
	"fmt"
	"time"
)

// appendDateRange adds inclusive day bounds on column to a WHERE clause under construction.
func appendDateRange(conditions []string, args []interface{}, column string, from, to *time.Time) ([]string, []interface{}) {
	if from != nil {
		args = append(args, *from)
		conditions = append(conditions, fmt.Sprintf("%s >= $%d", column, len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conditions = append(conditions, fmt.Sprintf("%s <= $%d", column, len(args)))
	}
	return conditions, args
}
