package utils

import (
	"strings"
)

// JoinWithAnd joins a slice of SQL conditions with the AND operator.
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// JoinWithOr joins a slice of SQL conditions with the OR operator.
func JoinWithOr(clauses []string) string {
	return strings.Join(clauses, " OR ")
}
