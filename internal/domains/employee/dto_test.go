package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeRequestValidate(t *testing.T) {
	valid := CreateEmployeeRequest{
		EmployeeID: "EMP001",
		Name:       "Taro Yamada",
		Email:      "taro@example.com",
		HireDate:   "2020-04-01",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *CreateEmployeeRequest)
	}{
		{"missing employee id", func(r *CreateEmployeeRequest) { r.EmployeeID = "" }},
		{"missing name", func(r *CreateEmployeeRequest) { r.Name = "" }},
		{"bad email", func(r *CreateEmployeeRequest) { r.Email = "not-an-email" }},
		{"bad hire date", func(r *CreateEmployeeRequest) { r.HireDate = "01/04/2020" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}

	t.Run("optional fields may be empty", func(t *testing.T) {
		r := CreateEmployeeRequest{EmployeeID: "EMP002", Name: "Hanako Suzuki"}
		assert.NoError(t, r.Validate())
	})
}

func TestUpdateEmployeeRequestValidate(t *testing.T) {
	valid := UpdateEmployeeRequest{
		EmployeeID: "EMP001",
		Name:       "Taro Yamada",
		Status:     "active",
	}
	assert.NoError(t, valid.Validate())

	r := valid
	r.Status = "fired"
	assert.Error(t, r.Validate(), "status outside the enum")

	r = valid
	r.Status = ""
	assert.Error(t, r.Validate(), "status is required on update")
}

func TestParseHireDate(t *testing.T) {
	parsed, err := ParseHireDate("2020-04-01")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC), *parsed)

	parsed, err = ParseHireDate("  ")
	require.NoError(t, err)
	assert.Nil(t, parsed)
}
