package job

import (
	"errors"
	"time"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created
// through the NewJob factory method or RestoreJob. This ensures all jobs are
// properly validated.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

// Job represents a customer's on-demand service request. It is the aggregate
// root that manages the job lifecycle from creation through assignment, the
// OTP handshake and payment to completion.
//
// Job follows these invariants:
//   - customerID, serviceID and vehicleID are required and immutable
//   - mechanicID is nil until the job leaves Pending and, once set, is never
//     cleared or reassigned
//   - otpCode is non-nil only while the job is Accepted and awaiting
//     verification; it is never regenerated while present and is cleared the
//     instant it is consumed
//   - status only advances along the transition graph defined by Status
//   - totalAmount always equals baseAmount + extraAmount at the moment it is
//     recorded
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Jobs are mutated exclusively through
// lifecycle methods, never directly.
type Job struct {
	id kernel.UUID

	// customerID is the owner of the request, set at creation.
	customerID kernel.UUID

	// serviceID references the catalog entry the customer requested.
	serviceID kernel.UUID

	// vehicleID references the customer's vehicle.
	vehicleID kernel.UUID

	// mechanicID is the assigned mechanic's ID (nil while unassigned).
	mechanicID *kernel.UUID

	// description is free text supplied by the customer.
	description string

	// pickup is the request's location; optional, but required for
	// distance ranking.
	pickup *kernel.GeoPoint

	status Status

	// otpCode is the single-use presence code, present only while the job
	// is Accepted and awaiting verification.
	otpCode *string

	createdAt time.Time

	// baseAmount is derived from the referenced service's price at
	// creation, falling back to a configured default when the catalog
	// record is missing.
	baseAmount float64

	// extraAmount is the mechanic-added surcharge, recorded when the
	// checkout session is created.
	extraAmount float64

	// totalAmount is baseAmount + extraAmount, computed at checkout
	// session creation.
	totalAmount float64

	// paymentURL is the checkout URL, set while payment is pending and
	// cleared on settlement.
	paymentURL *string

	// isConstructed ensures the job was created via NewJob or RestoreJob.
	isConstructed bool
}

// NewJob creates a new Job in Pending status with validation. This is the
// only way (besides RestoreJob for persistence) to create a valid Job.
//
// The pickup location is optional: requests without coordinates are still
// accepted but are ranked last during matching. baseAmount is the resolved
// service price (or the configured fallback) and must not be negative.
func NewJob(
	id kernel.UUID,
	customerID kernel.UUID,
	serviceID kernel.UUID,
	vehicleID kernel.UUID,
	description string,
	pickup *kernel.GeoPoint,
	baseAmount float64,
	createdAt time.Time,
) (*Job, error) {
	j := &Job{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setServiceID(serviceID),
		j.setVehicleID(vehicleID),
		j.setPickup(pickup),
		j.setBaseAmount(baseAmount),
		j.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	j.description = description
	return j, nil
}

// RestoreJob reconstructs a Job from persisted state, re-validating the
// consistency rules that NewJob and the lifecycle methods enforce: the
// status must be valid, mechanic presence must match the status, and an OTP
// may only exist on an Accepted job.
func RestoreJob(
	id kernel.UUID,
	customerID kernel.UUID,
	serviceID kernel.UUID,
	vehicleID kernel.UUID,
	mechanicID *kernel.UUID,
	description string,
	pickup *kernel.GeoPoint,
	status Status,
	otpCode *string,
	createdAt time.Time,
	baseAmount float64,
	extraAmount float64,
	totalAmount float64,
	paymentURL *string,
) (*Job, error) {
	j := &Job{
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setServiceID(serviceID),
		j.setVehicleID(vehicleID),
		j.setPickup(pickup),
		j.setBaseAmount(baseAmount),
		j.setCreatedAt(createdAt),
		status.Validate(),
		status.ValidateCanHaveMechanic(mechanicID != nil),
	); err != nil {
		return nil, err
	}

	if mechanicID != nil {
		if err := mechanicID.Validate(); err != nil {
			return nil, err
		}
		mechanic := *mechanicID
		j.mechanicID = &mechanic
	}

	if otpCode != nil && status != Accepted {
		return nil, errs.NewValueIsInvalidError("otp code on a job that is not Accepted")
	}

	if extraAmount < 0 {
		return nil, errs.NewValueIsInvalidError("extra amount")
	}

	j.description = description
	j.status = status
	j.otpCode = otpCode
	j.extraAmount = extraAmount
	j.totalAmount = totalAmount
	j.paymentURL = paymentURL
	return j, nil
}

// Validate ensures the Job instance was properly constructed through NewJob
// or RestoreJob. This prevents bypassing validation by directly
// instantiating the struct.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// Customer returns the owning customer's identifier.
func (j *Job) Customer() kernel.UUID {
	return j.customerID
}

// Service returns the requested catalog service's identifier.
func (j *Job) Service() kernel.UUID {
	return j.serviceID
}

// Vehicle returns the customer's vehicle identifier.
func (j *Job) Vehicle() kernel.UUID {
	return j.vehicleID
}

// Mechanic returns the assigned mechanic's ID, or nil while unassigned.
func (j *Job) Mechanic() *kernel.UUID {
	return j.mechanicID
}

// Description returns the customer's free-text description.
func (j *Job) Description() string {
	return j.description
}

// Pickup returns the request's location, or nil when the customer supplied
// no coordinates.
func (j *Job) Pickup() *kernel.GeoPoint {
	return j.pickup
}

// Status returns the current lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// OTP returns the stored one-time code, or nil when none is active.
func (j *Job) OTP() *string {
	return j.otpCode
}

// CreatedAt returns the creation timestamp.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// BaseAmount returns the service's base price resolved at creation.
func (j *Job) BaseAmount() float64 {
	return j.baseAmount
}

// ExtraAmount returns the mechanic-added surcharge.
func (j *Job) ExtraAmount() float64 {
	return j.extraAmount
}

// TotalAmount returns baseAmount + extraAmount as recorded at checkout
// session creation, or 0 before that.
func (j *Job) TotalAmount() float64 {
	return j.totalAmount
}

// PaymentURL returns the checkout URL while payment is pending, nil
// otherwise.
func (j *Job) PaymentURL() *string {
	return j.paymentURL
}

// Accept assigns the job to a mechanic and advances the status to Accepted.
//
// The job must be Pending and unassigned; the aggregate rejects anything
// else with an invalid-state error. Exactly-one-winner semantics under
// concurrent accepts are the persistence layer's responsibility: the store
// must apply this transition as a conditional update keyed on the Pending
// status.
func (j *Job) Accept(mechanicID kernel.UUID) error {
	if err := mechanicID.Validate(); err != nil {
		return err
	}

	if j.mechanicID != nil {
		return errs.NewInvalidStateError("accept", j.status.String())
	}

	newStatus, err := j.status.Accept()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.mechanicID = &mechanicID
	return nil
}

// Cancel withdraws the job on behalf of the owning customer.
//
// Only the owner may cancel (access-denied error otherwise) and only while
// the job is still Pending (invalid-state error otherwise). Cancelled is a
// terminal status, not removal; the record is retained.
func (j *Job) Cancel(requester kernel.UUID) error {
	if err := requester.Validate(); err != nil {
		return err
	}

	if !j.customerID.IsEqual(requester) {
		return errs.NewForbiddenError("job does not belong to requester")
	}

	newStatus, err := j.status.Cancel()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// IssueOTP stores a one-time presence code on an Accepted job.
//
// Only the assigned mechanic may issue the code. Issuance is idempotent: if
// a code is already present it is kept unchanged and alreadyIssued is true,
// so repeated calls can never emit two distinct codes for the same
// handshake. The code must be a 6-digit decimal string.
func (j *Job) IssueOTP(requester kernel.UUID, code string) (alreadyIssued bool, err error) {
	if err = requester.Validate(); err != nil {
		return false, err
	}

	if j.status != Accepted {
		return false, errs.NewInvalidStateError("issue otp", j.status.String())
	}

	if j.mechanicID == nil || !j.mechanicID.IsEqual(requester) {
		return false, errs.NewForbiddenError("job is not assigned to requester")
	}

	if j.otpCode != nil {
		return true, nil
	}

	if !isOtpFormat(code) {
		return false, errs.NewValueIsInvalidError("otp code")
	}

	j.otpCode = &code
	return false, nil
}

// OTPForCustomer discloses the stored code to the owning customer, the
// out-of-band channel of the handshake. Returns nil when no code is active.
// Requesters other than the owner get an access-denied error.
func (j *Job) OTPForCustomer(requester kernel.UUID) (*string, error) {
	if err := requester.Validate(); err != nil {
		return nil, err
	}

	if !j.customerID.IsEqual(requester) {
		return nil, errs.NewForbiddenError("job does not belong to requester")
	}

	return j.otpCode, nil
}

// VerifyOTP consumes the presence code and advances the job to Ongoing.
//
// Only the assigned mechanic may verify, and only while the job is
// Accepted. The submitted code must equal the stored code exactly; a
// mismatch (or an absent code) rejects with an invalid-credential error and
// leaves both the status and the stored code untouched. On success the code
// is cleared, never to be reused.
func (j *Job) VerifyOTP(requester kernel.UUID, code string) error {
	if err := requester.Validate(); err != nil {
		return err
	}

	if j.status != Accepted {
		return errs.NewInvalidStateError("verify otp", j.status.String())
	}

	if j.mechanicID == nil || !j.mechanicID.IsEqual(requester) {
		return errs.NewForbiddenError("job is not assigned to requester")
	}

	if j.otpCode == nil || *j.otpCode != code {
		return errs.NewInvalidCredentialError("otp")
	}

	newStatus, err := j.status.BeginWork()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.otpCode = nil
	return nil
}

// RequestPayment records the checkout session obtained from the payment
// collaborator: the surcharge, the derived total and the payment URL, and
// advances the job to PaymentPending.
//
// The job must be Ongoing. Callers must only invoke this after the
// collaborator succeeded; on collaborator failure the aggregate is left
// untouched so the request can be retried.
func (j *Job) RequestPayment(paymentURL string, extraAmount float64) error {
	if paymentURL == "" {
		return errs.NewValueIsRequiredError("payment url")
	}

	if extraAmount < 0 {
		return errs.NewValueIsInvalidError("extra amount")
	}

	newStatus, err := j.status.RequestPayment()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.extraAmount = extraAmount
	j.totalAmount = j.baseAmount + extraAmount
	j.paymentURL = &paymentURL
	return nil
}

// ConfirmPayment marks the job Completed after the payment collaborator
// reported settlement, clearing the payment URL. Confirming an already
// Completed job is a no-op, so settlement reports may be delivered more
// than once.
func (j *Job) ConfirmPayment() error {
	if j.status == Completed {
		return nil
	}

	newStatus, err := j.status.SettlePayment()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.paymentURL = nil
	return nil
}

// Complete finishes an Ongoing job directly, the path used when no staged
// payment is required.
func (j *Job) Complete() error {
	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	j.customerID = id
	return nil
}

func (j *Job) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("service id", err)
	}
	j.serviceID = id
	return nil
}

func (j *Job) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicle id", err)
	}
	j.vehicleID = id
	return nil
}

func (j *Job) setPickup(pickup *kernel.GeoPoint) error {
	if pickup == nil {
		return nil
	}
	if err := pickup.Validate(); err != nil {
		return err
	}
	point := *pickup
	j.pickup = &point
	return nil
}

func (j *Job) setBaseAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("base amount")
	}
	j.baseAmount = amount
	return nil
}

func (j *Job) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	j.createdAt = createdAt
	return nil
}

// isOtpFormat reports whether code is a 6-digit decimal string in
// [100000, 999999].
func isOtpFormat(code string) bool {
	if len(code) != 6 || code[0] == '0' {
		return false
	}
	for i := range len(code) {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
