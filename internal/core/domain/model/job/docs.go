// Package job contains the Job aggregate, the central entity of the system.
// A Job is a customer's on-demand service request and is driven through a
// strict lifecycle:
//
//	Pending ──> Accepted ──> Ongoing ──┬──> PaymentPending ──> Completed
//	   │                               └──> Completed
//	   └──> Cancelled
//
// Cancelled and Completed are terminal. The aggregate owns every transition
// rule: ownership checks (only the owning customer may cancel or read the
// OTP, only the assigned mechanic may issue or verify it), the idempotent
// one-time-password handshake that proves physical presence before work
// begins, and the payment-pending branch resolved by the external payment
// collaborator.
//
// The aggregate validates state transitions but cannot serialize concurrent
// writers by itself; the persistence layer must apply the accept transition
// as an atomic conditional update keyed on the expected status so that
// exactly one of several racing mechanics wins a Pending job.
package job
