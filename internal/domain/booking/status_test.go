package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mussol-barber/booking-api/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		ok   bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},

		{"pending to completed skips confirmation", StatusPending, StatusCompleted, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"cancelled cannot complete", StatusCancelled, StatusCompleted, false},
		{"nobody goes back to pending", StatusConfirmed, StatusPending, false},
		{"unknown target", StatusPending, Status("archived"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCanTransitionSameStatusIsNoop(t *testing.T) {
	assert.NoError(t, CanTransition(StatusCompleted, StatusCompleted))
	assert.NoError(t, CanTransition(StatusCancelled, StatusCancelled))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(true))
	assert.Equal(t, StatusConfirmed, InitialStatus(false))
}

func TestDomainActions(t *testing.T) {
	t.Run("confirm pending", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusPending)}
		require.NoError(t, Confirm(ap))
		assert.Equal(t, string(StatusConfirmed), ap.Status)
	})

	t.Run("complete confirmed", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusConfirmed)}
		require.NoError(t, Complete(ap))
		assert.Equal(t, string(StatusCompleted), ap.Status)
	})

	t.Run("complete pending fails", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusPending)}
		assert.Error(t, Complete(ap))
		assert.Equal(t, string(StatusPending), ap.Status)
	})

	t.Run("cancel terminal fails", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusCompleted)}
		assert.Error(t, Cancel(ap))
		assert.Equal(t, string(StatusCompleted), ap.Status)
	})

	t.Run("attach receipt keeps status", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusPending)}
		AttachReceipt(ap, "https://cdn.example.com/uploads/receipts/x/1-a.jpg")
		assert.Equal(t, string(StatusPending), ap.Status)
		assert.NotEmpty(t, ap.PaymentReceiptURL)
	})
}
