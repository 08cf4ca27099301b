package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/Vibe-Web-Agency/dashboard/internal/domain/reservation"
	"github.com/Vibe-Web-Agency/dashboard/internal/middleware"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

// MockReservationRepository implémente le Repository du domaine réservation
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) GetOwnerByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockReservationRepository) CreateReservation(ctx context.Context, r *models.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepository) GetReservationForOwner(ctx context.Context, reservationID uuid.UUID, ownerID uuid.UUID) (*models.Reservation, error) {
	args := m.Called(ctx, reservationID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationRepository) UpdateReservation(ctx context.Context, r *models.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepository) DeleteReservation(ctx context.Context, r *models.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepository) ListReservations(ctx context.Context, ownerID uuid.UUID) ([]models.Reservation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListUnresolvedReservations(ctx context.Context, ownerID uuid.UUID) ([]models.Reservation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListResolvedReservations(ctx context.Context, ownerID uuid.UUID) ([]models.Reservation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListReservationsForPeriod(ctx context.Context, ownerID uuid.UUID, start time.Time, end time.Time) ([]models.Reservation, error) {
	args := m.Called(ctx, ownerID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

var _ domain.Repository = (*MockReservationRepository)(nil)

// MockQuoteStore implémente QuoteStore
type MockQuoteStore struct {
	mock.Mock
}

func (m *MockQuoteStore) RecentForOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Quote, error) {
	args := m.Called(ctx, ownerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Quote), args.Error(1)
}

func (m *MockQuoteStore) CountPendingForOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func TestDashboardHandler_Summary(t *testing.T) {
	reservations := &MockReservationRepository{}
	quotes := &MockQuoteStore{}
	handler := NewDashboardHandler(reservations, quotes)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	owner := &models.User{ID: uuid.New(), Timezone: "Europe/Paris"}
	c.Request = httptest.NewRequest("GET", "/api/me/dashboard?range=1month", nil)
	c.Set(middleware.ContextUserID, owner.ID)

	ctx := c.Request.Context()
	at := time.Now().Add(48 * time.Hour)

	rows := []models.Reservation{
		{CustomerName: "Alice", ScheduledAt: &at, Attendance: string(domain.AttendanceUnresolved)},
		{CustomerName: "Bob", ScheduledAt: &at, Attendance: string(domain.AttendanceAttended)},
		{CustomerName: "Claire", ScheduledAt: &at, Attendance: string(domain.AttendanceUnresolved)},
	}

	reservations.On("GetOwnerByID", ctx, owner.ID).Return(owner, nil).Once()
	reservations.On("ListReservations", ctx, owner.ID).Return(rows, nil).Once()
	quotes.On("RecentForOwner", ctx, owner.ID, 3).Return([]models.Quote{{CustomerName: "Devis"}}, nil).Once()
	quotes.On("CountPendingForOwner", ctx, owner.ID).Return(int64(2), nil).Once()

	handler.Summary(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Range         int               `json:"range"`
		Chart         []json.RawMessage `json:"chart"`
		PendingQuotes int64             `json:"pending_quotes"`
		Upcoming      int               `json:"upcoming"`
		Total         int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 30, resp.Range)
	assert.Len(t, resp.Chart, 30)
	assert.Equal(t, int64(2), resp.PendingQuotes)
	assert.Equal(t, 2, resp.Upcoming)
	assert.Equal(t, 3, resp.Total)

	reservations.AssertExpectations(t)
	quotes.AssertExpectations(t)
}

func TestRangeDays(t *testing.T) {
	assert.Equal(t, 7, rangeDays("7days"))
	assert.Equal(t, 30, rangeDays("1month"))
	assert.Equal(t, 60, rangeDays("2months"))
	assert.Equal(t, 7, rangeDays("autre"))
}
