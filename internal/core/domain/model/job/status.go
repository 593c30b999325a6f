package job

import (
	"fmt"

	"spotserve/internal/pkg/errs"
)

// Status represents the lifecycle state of a job.
// It implements a state machine with defined transitions to ensure jobs
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> Ongoing ──┬──> PaymentPending ──> Completed
//	   │                               └──> Completed
//	   └──> Cancelled
//
// Cancelled and Completed are terminal; no transition leaves them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created job.
	// Pending jobs are visible to nearby mechanics and may be cancelled
	// by the owning customer.
	Pending

	// Accepted indicates a mechanic has claimed the job.
	// The OTP handshake happens in this status.
	Accepted

	// Ongoing indicates the OTP was verified and work is in progress.
	Ongoing

	// PaymentPending indicates a checkout session was created and the job
	// waits for the payment collaborator to report settlement.
	PaymentPending

	// Completed indicates the job is finished. Terminal.
	Completed

	// Cancelled indicates the customer withdrew the job while it was
	// still Pending. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Accepted:       "Accepted",
		Ongoing:        "Ongoing",
		PaymentPending: "PaymentPending",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Accepted:       "Accepted",
		Ongoing:        "Ongoing",
		PaymentPending: "PaymentPending",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values outside the enum are invalid.
// Used to ensure Status values from external sources (database, API) are
// valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateCanHaveMechanic validates the consistency between job status and
// mechanic assignment.
//
// Business rules:
//   - Pending and Cancelled jobs must not have a mechanic assigned
//   - Accepted, Ongoing, PaymentPending and Completed jobs must have one
func (s Status) ValidateCanHaveMechanic(mechanic bool) error {
	if mechanic && (s == Pending || s == Cancelled) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a mechanic", s.String()),
		)
	}

	if !mechanic && s != Pending && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no mechanic", s.String()),
		)
	}

	return nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted (a mechanic claims the job)
//
// Any other current status rejects with an invalid-state error. The
// persistence layer must additionally apply this transition as a conditional
// update so concurrent claims resolve to exactly one winner.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("accept", s.String())
	}

	return Accepted, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled (customer withdraws the request)
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("cancel", s.String())
	}

	return Cancelled, nil
}

// BeginWork transitions the status to Ongoing after a successful OTP
// verification.
//
// Valid transitions:
//   - Accepted -> Ongoing
func (s Status) BeginWork() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidStateError("begin work", s.String())
	}

	return Ongoing, nil
}

// RequestPayment transitions the status to PaymentPending once a checkout
// session has been created for the job.
//
// Valid transitions:
//   - Ongoing -> PaymentPending
func (s Status) RequestPayment() (Status, error) {
	if s != Ongoing {
		return 0, errs.NewInvalidStateError("request payment", s.String())
	}

	return PaymentPending, nil
}

// SettlePayment transitions the status to Completed after the payment
// collaborator reported settlement.
//
// Valid transitions:
//   - PaymentPending -> Completed
func (s Status) SettlePayment() (Status, error) {
	if s != PaymentPending {
		return 0, errs.NewInvalidStateError("settle payment", s.String())
	}

	return Completed, nil
}

// Complete transitions the status to Completed directly, used when no staged
// payment is required.
//
// Valid transitions:
//   - Ongoing -> Completed
func (s Status) Complete() (Status, error) {
	if s != Ongoing {
		return 0, errs.NewInvalidStateError("complete", s.String())
	}

	return Completed, nil
}
