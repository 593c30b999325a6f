// Package jobs provides scheduled background tasks for the assistance
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request/response surface cannot cover.
//
// # Available Jobs
//
// 1. PaymentReconciliationJob - Polls the payment provider for jobs stuck in
// the payment-pending state and settles the ones whose checkout session has
// been paid. This is the pull-based safety net next to the provider's own
// confirmation callback, so a lost callback never strands a job.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(jobRepo, paymentProvider, confirmPaymentHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Reconciliation runs every 30 seconds. Settlement is idempotent, so a
// callback and a reconciliation pass racing on the same job is harmless.
//
// # Error Handling
//
// Provider probe failures are logged per job and never abort the pass;
// the remaining payment-pending jobs are still checked.
package jobs
