package reservation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Vibe-Web-Agency/dashboard/internal/domain/reservation"
	"github.com/Vibe-Web-Agency/dashboard/internal/httperr"
	"github.com/Vibe-Web-Agency/dashboard/internal/models"
)

func TestSetAttendance_Success(t *testing.T) {
	repo := &MockRepository{}
	uc := NewSetAttendance(repo, nil)

	ctx := context.Background()
	ownerID := uuid.New()
	resID := uuid.New()

	existing := &models.Reservation{
		ID:         resID,
		UserID:     ownerID,
		Attendance: string(domain.AttendanceUnresolved),
	}

	repo.On("GetReservationForOwner", ctx, resID, ownerID).Return(existing, nil).Once()
	repo.On("UpdateReservation", ctx, existing).Return(nil).Once()

	res, err := uc.Execute(ctx, ownerID, resID, "attended")

	require.NoError(t, err)
	assert.Equal(t, "attended", res.Attendance)

	repo.AssertExpectations(t)
}

func TestSetAttendance_BackToUnresolved(t *testing.T) {
	repo := &MockRepository{}
	uc := NewSetAttendance(repo, nil)

	ctx := context.Background()
	ownerID := uuid.New()
	resID := uuid.New()

	existing := &models.Reservation{
		ID:         resID,
		UserID:     ownerID,
		Attendance: string(domain.AttendanceMissed),
	}

	repo.On("GetReservationForOwner", ctx, resID, ownerID).Return(existing, nil).Once()
	repo.On("UpdateReservation", ctx, existing).Return(nil).Once()

	res, err := uc.Execute(ctx, ownerID, resID, "unresolved")

	require.NoError(t, err)
	assert.Equal(t, "unresolved", res.Attendance)
}

func TestSetAttendance_InvalidValue(t *testing.T) {
	repo := &MockRepository{}
	uc := NewSetAttendance(repo, nil)

	ctx := context.Background()

	_, err := uc.Execute(ctx, uuid.New(), uuid.New(), "present")

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_attendance"))

	// Valeur rejetée avant toute lecture en base
	repo.AssertNotCalled(t, "GetReservationForOwner")
	repo.AssertNotCalled(t, "UpdateReservation")
}

func TestSetAttendance_NotFound(t *testing.T) {
	repo := &MockRepository{}
	uc := NewSetAttendance(repo, nil)

	ctx := context.Background()
	ownerID := uuid.New()
	resID := uuid.New()

	repo.On("GetReservationForOwner", ctx, resID, ownerID).
		Return(nil, httperr.ErrBusiness("reservation_not_found")).Once()

	_, err := uc.Execute(ctx, ownerID, resID, "missed")

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "reservation_not_found"))

	repo.AssertNotCalled(t, "UpdateReservation")
}
