package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/employee"
)

func TestBuildListQuery(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		query, args := buildListQuery(employee.Filter{})

		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, "ORDER BY employee_id ASC")
		assert.Empty(t, args)
	})

	t.Run("query spans the identity columns", func(t *testing.T) {
		query, args := buildListQuery(employee.Filter{Query: "yamada"})

		assert.Contains(t, query, "name LIKE '%' || $1 || '%'")
		assert.Contains(t, query, "employee_id LIKE '%' || $1 || '%'")
		assert.Contains(t, query, "name_kana LIKE '%' || $1 || '%'")
		assert.Contains(t, query, "email LIKE '%' || $1 || '%'")
		assert.Equal(t, []any{"yamada"}, args)
	})

	t.Run("department containment and exact status", func(t *testing.T) {
		query, args := buildListQuery(employee.Filter{
			Query:      "EMP",
			Department: "Engineering",
			Status:     employee.StatusActive,
		})

		assert.Contains(t, query, "department LIKE '%' || $2 || '%'")
		assert.Contains(t, query, "status = $3")
		assert.Contains(t, query, " AND ")
		require.Len(t, args, 3)
		assert.Equal(t, employee.StatusActive, args[2])
	})

	t.Run("status alone takes the first placeholder", func(t *testing.T) {
		query, args := buildListQuery(employee.Filter{Status: employee.StatusRetired})

		assert.Contains(t, query, "status = $1")
		assert.Equal(t, []any{employee.StatusRetired}, args)
	})
}
