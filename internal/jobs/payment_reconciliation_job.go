package jobs

import (
	"context"
	"errors"
	"log/slog"

	"spotserve/internal/core/application/usecases/commands"
	"spotserve/internal/core/ports"
	"spotserve/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// PaymentReconciliationJob settles jobs whose checkout session was paid but
// whose confirmation callback never arrived. Runs every 30 seconds over all
// payment-pending jobs.
type PaymentReconciliationJob struct {
	jobRepo  ports.JobRepository
	provider ports.PaymentProvider
	handler  commands.ConfirmPaymentCommandHandler
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPaymentReconciliationJob creates a new job for payment reconciliation.
// Reads payment-pending jobs from jobRepo, asks provider whether each
// session settled, and applies the confirmation through handler.
func NewPaymentReconciliationJob(
	jobRepo ports.JobRepository,
	provider ports.PaymentProvider,
	handler commands.ConfirmPaymentCommandHandler,
	logger *slog.Logger,
) *PaymentReconciliationJob {
	return &PaymentReconciliationJob{
		jobRepo:  jobRepo,
		provider: provider,
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "payment_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run every 30 seconds.
func (j *PaymentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		if err := j.reconcile(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Payment reconciliation pass failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job started (running every 30 seconds)")
	return nil
}

// Stop stops the reconciliation job.
func (j *PaymentReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job stopped")
}

func (j *PaymentReconciliationJob) reconcile(ctx context.Context) error {
	pending, err := j.jobRepo.GetAllInPaymentPendingStatus(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range pending {
		settled, probeErr := j.provider.SessionSettled(ctx, aggregate.ID())
		if probeErr != nil {
			j.logger.ErrorContext(ctx, "Settlement probe failed",
				"jobID", aggregate.ID().String(), "error", probeErr)
			continue
		}
		if !settled {
			continue
		}

		cmd, cmdErr := commands.NewConfirmPaymentCommand(aggregate.ID())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Confirmation command rejected",
				"jobID", aggregate.ID().String(), "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// A conflict means a callback settled the job between our
			// read and the write. Nothing to recover.
			if errors.Is(handleErr, errs.ErrStatusConflict) {
				continue
			}
			j.logger.ErrorContext(ctx, "Settlement failed",
				"jobID", aggregate.ID().String(), "error", handleErr)
			continue
		}

		j.logger.InfoContext(ctx, "Settled payment", "jobID", aggregate.ID().String())
	}

	return nil
}
