package commands_test

import (
	"testing"
	"time"

	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

const testOtpCode = "654321"

func newPendingJob(t *testing.T, customerID kernel.UUID) *job.Job {
	t.Helper()

	pickup, err := kernel.NewGeoPoint(12.90, 77.60)
	require.NoError(t, err)

	aggregate, err := job.NewJob(
		kernel.NewUUID(),
		customerID,
		kernel.NewUUID(),
		kernel.NewUUID(),
		"engine will not start",
		&pickup,
		500.0,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return aggregate
}

func newAcceptedJob(t *testing.T, customerID kernel.UUID, mechanicID kernel.UUID) *job.Job {
	t.Helper()

	aggregate := newPendingJob(t, customerID)
	require.NoError(t, aggregate.Accept(mechanicID))
	return aggregate
}

func newOngoingJob(t *testing.T, customerID kernel.UUID, mechanicID kernel.UUID) *job.Job {
	t.Helper()

	aggregate := newAcceptedJob(t, customerID, mechanicID)
	_, err := aggregate.IssueOTP(mechanicID, testOtpCode)
	require.NoError(t, err)
	require.NoError(t, aggregate.VerifyOTP(mechanicID, testOtpCode))
	return aggregate
}

func newPaymentPendingJob(t *testing.T, customerID kernel.UUID, mechanicID kernel.UUID) *job.Job {
	t.Helper()

	aggregate := newOngoingJob(t, customerID, mechanicID)
	require.NoError(t, aggregate.RequestPayment("https://pay.example/session/1", 150.0))
	return aggregate
}
