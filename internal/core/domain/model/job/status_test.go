package job_test

import (
	"testing"

	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[job.Status]string{
		job.Unknown:        "Unknown",
		job.Pending:        "Pending",
		job.Accepted:       "Accepted",
		job.Ongoing:        "Ongoing",
		job.PaymentPending: "PaymentPending",
		job.Completed:      "Completed",
		job.Cancelled:      "Cancelled",
		job.Status(99):     "Unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []job.Status{
		job.Pending, job.Accepted, job.Ongoing,
		job.PaymentPending, job.Completed, job.Cancelled,
	} {
		assert.NoError(t, s.Validate(), s.String())
	}

	assert.Error(t, job.Unknown.Validate())
	assert.Error(t, job.Status(99).Validate())
}

func TestStatus_Accept(t *testing.T) {
	newStatus, err := job.Pending.Accept()
	require.NoError(t, err)
	assert.Equal(t, job.Accepted, newStatus)

	for _, s := range []job.Status{job.Accepted, job.Ongoing, job.PaymentPending, job.Completed, job.Cancelled} {
		_, err = s.Accept()
		require.Error(t, err, s.String())
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	}
}

func TestStatus_Cancel(t *testing.T) {
	newStatus, err := job.Pending.Cancel()
	require.NoError(t, err)
	assert.Equal(t, job.Cancelled, newStatus)

	for _, s := range []job.Status{job.Accepted, job.Ongoing, job.PaymentPending, job.Completed, job.Cancelled} {
		_, err = s.Cancel()
		require.Error(t, err, s.String())
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	}
}

func TestStatus_BeginWork(t *testing.T) {
	newStatus, err := job.Accepted.BeginWork()
	require.NoError(t, err)
	assert.Equal(t, job.Ongoing, newStatus)

	for _, s := range []job.Status{job.Pending, job.Ongoing, job.PaymentPending, job.Completed, job.Cancelled} {
		_, err = s.BeginWork()
		require.Error(t, err, s.String())
	}
}

func TestStatus_RequestPayment(t *testing.T) {
	newStatus, err := job.Ongoing.RequestPayment()
	require.NoError(t, err)
	assert.Equal(t, job.PaymentPending, newStatus)

	for _, s := range []job.Status{job.Pending, job.Accepted, job.PaymentPending, job.Completed, job.Cancelled} {
		_, err = s.RequestPayment()
		require.Error(t, err, s.String())
	}
}

func TestStatus_SettlePayment(t *testing.T) {
	newStatus, err := job.PaymentPending.SettlePayment()
	require.NoError(t, err)
	assert.Equal(t, job.Completed, newStatus)

	for _, s := range []job.Status{job.Pending, job.Accepted, job.Ongoing, job.Completed, job.Cancelled} {
		_, err = s.SettlePayment()
		require.Error(t, err, s.String())
	}
}

func TestStatus_Complete(t *testing.T) {
	newStatus, err := job.Ongoing.Complete()
	require.NoError(t, err)
	assert.Equal(t, job.Completed, newStatus)

	for _, s := range []job.Status{job.Pending, job.Accepted, job.PaymentPending, job.Completed, job.Cancelled} {
		_, err = s.Complete()
		require.Error(t, err, s.String())
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, job.Completed.IsTerminal())
	assert.True(t, job.Cancelled.IsTerminal())

	for _, s := range []job.Status{job.Pending, job.Accepted, job.Ongoing, job.PaymentPending} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_ValidateCanHaveMechanic(t *testing.T) {
	t.Run("unassigned_statuses_reject_mechanic", func(t *testing.T) {
		require.Error(t, job.Pending.ValidateCanHaveMechanic(true))
		require.Error(t, job.Cancelled.ValidateCanHaveMechanic(true))
		require.NoError(t, job.Pending.ValidateCanHaveMechanic(false))
		require.NoError(t, job.Cancelled.ValidateCanHaveMechanic(false))
	})

	t.Run("assigned_statuses_require_mechanic", func(t *testing.T) {
		for _, s := range []job.Status{job.Accepted, job.Ongoing, job.PaymentPending, job.Completed} {
			require.NoError(t, s.ValidateCanHaveMechanic(true), s.String())
			require.Error(t, s.ValidateCanHaveMechanic(false), s.String())
		}
	})
}
