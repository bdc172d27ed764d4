package circulation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutRequestValidate(t *testing.T) {
	valid := CheckoutRequest{
		EmployeeID: uuid.New().String(),
		DueDate:    "2026-09-15",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  CheckoutRequest
	}{
		{"missing employee id", CheckoutRequest{DueDate: "2026-09-15"}},
		{"employee id not a uuid", CheckoutRequest{EmployeeID: "EMP001", DueDate: "2026-09-15"}},
		{"missing due date", CheckoutRequest{EmployeeID: uuid.New().String()}},
		{"due date wrong layout", CheckoutRequest{EmployeeID: uuid.New().String(), DueDate: "15/09/2026"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}

	// A past due date is accepted; backdated loans are legitimate data.
	past := CheckoutRequest{EmployeeID: uuid.New().String(), DueDate: "2020-01-01"}
	assert.NoError(t, past.Validate())
}

func TestReserveRequestValidate(t *testing.T) {
	assert.NoError(t, ReserveRequest{EmployeeID: uuid.New().String()}.Validate())
	assert.Error(t, ReserveRequest{}.Validate())
	assert.Error(t, ReserveRequest{EmployeeID: "nope"}.Validate())
}

func TestParseDueDate(t *testing.T) {
	parsed, err := ParseDueDate("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), parsed)
}

func TestLoanOpen(t *testing.T) {
	l := Loan{}
	assert.True(t, l.Open())

	now := time.Now()
	l.ReturnedAt = &now
	assert.False(t, l.Open())
}

func TestReservationTerminal(t *testing.T) {
	assert.False(t, (&Reservation{Status: ReservationActive}).Terminal())
	assert.True(t, (&Reservation{Status: ReservationCompleted}).Terminal())
	assert.True(t, (&Reservation{Status: ReservationCancelled}).Terminal())
}
