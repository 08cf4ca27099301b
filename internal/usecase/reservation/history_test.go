package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Vibe-Web-Agency/dashboard/internal/domain/reservation"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

func TestHistory_Partition(t *testing.T) {
	repo := &MockRepository{}
	uc := NewHistory(repo)

	ctx := context.Background()
	ownerID := uuid.New()
	loc, _ := time.LoadLocation("Europe/Paris")
	at := time.Date(2024, 2, 10, 10, 0, 0, 0, loc)

	resolved := []models.Reservation{
		{CustomerName: "Alice", ScheduledAt: &at, Attendance: string(domain.AttendanceAttended)},
		{CustomerName: "Bob", ScheduledAt: &at, Attendance: string(domain.AttendanceMissed)},
		{CustomerName: "Claire", ScheduledAt: &at, Attendance: string(domain.AttendanceAttended)},
	}

	repo.On("ListResolvedReservations", ctx, ownerID).Return(resolved, nil).Once()

	history, err := uc.Execute(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, 2, history.AttendedCount)
	assert.Equal(t, 1, history.MissedCount)

	require.Len(t, history.Attended, 2)
	assert.Equal(t, "Alice", history.Attended[0].CustomerName)
	assert.Equal(t, "Claire", history.Attended[1].CustomerName)

	require.Len(t, history.Missed, 1)
	assert.Equal(t, "Bob", history.Missed[0].CustomerName)

	repo.AssertExpectations(t)
}

func TestHistory_Empty(t *testing.T) {
	repo := &MockRepository{}
	uc := NewHistory(repo)

	ctx := context.Background()
	ownerID := uuid.New()

	repo.On("ListResolvedReservations", ctx, ownerID).Return([]models.Reservation{}, nil).Once()

	history, err := uc.Execute(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, 0, history.AttendedCount)
	assert.Equal(t, 0, history.MissedCount)
	assert.Empty(t, history.Attended)
	assert.Empty(t, history.Missed)
}

func TestHistory_RepositoryError(t *testing.T) {
	repo := &MockRepository{}
	uc := NewHistory(repo)

	ctx := context.Background()
	ownerID := uuid.New()

	expectedErr := errors.New("database error")
	repo.On("ListResolvedReservations", ctx, ownerID).Return(nil, expectedErr).Once()

	_, err := uc.Execute(ctx, ownerID)

	require.Error(t, err)
	assert.Equal(t, expectedErr, err)
}
