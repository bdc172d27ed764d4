package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/circulation"
)

// stubService returns canned results so the handler's parsing and error
// mapping can be tested in isolation.
type stubService struct {
	err  error
	loan *circulation.Loan
}

func (s *stubService) Checkout(ctx context.Context, bookID, employeeID uuid.UUID, dueDate time.Time) (*circulation.Loan, error) {
	return s.loan, s.err
}

func (s *stubService) Return(ctx context.Context, bookID uuid.UUID) error { return s.err }

func (s *stubService) Reserve(ctx context.Context, bookID, employeeID uuid.UUID) (*circulation.Reservation, error) {
	return nil, s.err
}

func (s *stubService) CancelReservation(ctx context.Context, reservationID uuid.UUID) error {
	return s.err
}

func (s *stubService) DetectOverdue(ctx context.Context, now time.Time) (int64, error) {
	return 0, s.err
}

func (s *stubService) LoansForBook(ctx context.Context, bookID uuid.UUID) ([]circulation.Loan, error) {
	return nil, s.err
}

func (s *stubService) LoansForEmployee(ctx context.Context, employeeID uuid.UUID) ([]circulation.Loan, error) {
	return nil, s.err
}

func (s *stubService) OverdueLoans(ctx context.Context) ([]circulation.Loan, error) {
	return nil, s.err
}

func (s *stubService) ActiveReservationsForBook(ctx context.Context, bookID uuid.UUID) ([]circulation.Reservation, error) {
	return nil, s.err
}

func (s *stubService) ActiveReservationsForEmployee(ctx context.Context, employeeID uuid.UUID) ([]circulation.Reservation, error) {
	return nil, s.err
}

var _ circulation.Service = (*stubService)(nil)

func checkoutRequest(t *testing.T, h *CirculationHandler, bookID, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/books/:id/checkout", h.Checkout)

	req := httptest.NewRequest(http.MethodPost, "/books/"+bookID+"/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutHandler(t *testing.T) {
	validBody := `{"employee_id":"` + uuid.New().String() + `","due_date":"2026-09-15"}`

	t.Run("created on success", func(t *testing.T) {
		svc := &stubService{loan: &circulation.Loan{ID: uuid.New()}}
		rec := checkoutRequest(t, NewCirculationHandler(svc), uuid.New().String(), validBody)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
	})

	t.Run("invalid book id", func(t *testing.T) {
		rec := checkoutRequest(t, NewCirculationHandler(&stubService{}), "not-a-uuid", validBody)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation failure is 422", func(t *testing.T) {
		body := `{"employee_id":"not-a-uuid","due_date":"2026-09-15"}`
		rec := checkoutRequest(t, NewCirculationHandler(&stubService{}), uuid.New().String(), body)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("domain errors map to status codes", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{book.ErrBookNotFound, http.StatusNotFound},
			{circulation.ErrBookNotAvailable, http.StatusConflict},
			{circulation.ErrEmployeeInactive, http.StatusConflict},
		}
		for _, tc := range cases {
			rec := checkoutRequest(t, NewCirculationHandler(&stubService{err: tc.err}), uuid.New().String(), validBody)
			assert.Equal(t, tc.code, rec.Code, tc.err.Error())
		}
	})
}

func TestCancelReservationHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(svc circulation.Service, id string) *httptest.ResponseRecorder {
		router := gin.New()
		h := NewCirculationHandler(svc)
		router.DELETE("/reservations/:id", h.CancelReservation)

		req := httptest.NewRequest(http.MethodDelete, "/reservations/"+id, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := run(&stubService{}, uuid.New().String())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = run(&stubService{err: circulation.ErrReservationNotFound}, uuid.New().String())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = run(&stubService{err: circulation.ErrReservationClosed}, uuid.New().String())
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = run(&stubService{}, "garbage")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
