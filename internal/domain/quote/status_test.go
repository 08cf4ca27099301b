package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vibe-Web-Agency/dashboard/internal/httperr"
)

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusApproved.IsValid())
	assert.True(t, StatusRejected.IsValid())

	assert.False(t, Status("").IsValid())
	assert.False(t, Status("accepted").IsValid())
	assert.False(t, Status("PENDING").IsValid())
}

func TestParse(t *testing.T) {
	s, err := Parse("approved")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, s)

	_, err = Parse("draft")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
