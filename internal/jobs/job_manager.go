package jobs

import (
	"fmt"
	"log/slog"

	"spotserve/internal/core/application/usecases/commands"
	"spotserve/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentReconciliationJob *PaymentReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	jobRepo ports.JobRepository,
	provider ports.PaymentProvider,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentReconciliationJob: NewPaymentReconciliationJob(
			jobRepo, provider, confirmPaymentHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentReconciliationJob.Stop()
}
