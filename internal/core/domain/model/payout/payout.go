package payout

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request was not created via
	// NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest constructor")

	// ErrAlreadyProcessed is returned when Process is called on a request that
	// already left the pending state. PayoutRequest is mutated exactly once.
	ErrAlreadyProcessed = errors.New("payout request has already been processed")
)

// EarnerType identifies which side of the marketplace accrued the earnings.
type EarnerType int

const (
	// EarnerTypeUnknown represents an invalid or undefined earner type.
	EarnerTypeUnknown EarnerType = iota

	// EarnerVendor is a merchant withdrawing order earnings.
	EarnerVendor

	// EarnerRider is a courier withdrawing delivery-fee earnings.
	EarnerRider
)

// String returns the lower-case name of the earner type.
func (e EarnerType) String() string {
	switch e {
	case EarnerVendor:
		return "vendor"
	case EarnerRider:
		return "rider"
	default:
		return "unknown"
	}
}

// Validate checks that the earner type is one of the defined values.
func (e EarnerType) Validate() error {
	if e != EarnerVendor && e != EarnerRider {
		return errs.NewValueIsInvalidError("earner type")
	}
	return nil
}

// ParseEarnerType converts a wire-format earner type name into the enum.
func ParseEarnerType(s string) (EarnerType, error) {
	switch s {
	case "vendor":
		return EarnerVendor, nil
	case "rider":
		return EarnerRider, nil
	default:
		return EarnerTypeUnknown, errs.NewValueIsInvalidError("earner type " + s)
	}
}

// Status is the processing state of a payout request.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending awaits an administrator's decision.
	Pending

	// Processed records that the transfer was made out of band.
	Processed

	// Rejected records a declined request; notes explain why.
	Rejected
)

// String returns the lower-case name of the payout status.
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Processed:
		return "processed"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if s != Pending && s != Processed && s != Rejected {
		return errs.NewValueIsInvalidError("payout status")
	}
	return nil
}

// BankDetails is the destination account for an out-of-band transfer.
// All three fields are required.
type BankDetails struct {
	BankName      string
	AccountNumber string
	AccountName   string
}

// Validate checks that every bank detail field is present.
func (b BankDetails) Validate() error {
	if b.BankName == "" {
		return errs.NewValueIsRequiredError("bankName")
	}
	if b.AccountNumber == "" {
		return errs.NewValueIsRequiredError("accountNumber")
	}
	if b.AccountName == "" {
		return errs.NewValueIsRequiredError("accountName")
	}
	return nil
}

// Request is a withdrawal request raised by an earner. It is created pending,
// mutated exactly once by an administrator through Process, and terminal
// afterwards. The requested amount was checked against the server-side
// settlement recomputation at creation time.
type Request struct {
	id          kernel.UUID
	userID      kernel.UUID
	earnerType  EarnerType
	amount      kernel.Money
	bankDetails BankDetails
	status      Status
	notes       string
	requestedAt time.Time
	processedAt *time.Time

	guard guard.ConstructorGuard
}

// NewRequest creates a pending payout request.
func NewRequest(
	id kernel.UUID,
	userID kernel.UUID,
	earnerType EarnerType,
	amount kernel.Money,
	bankDetails BankDetails,
	requestedAt time.Time,
) (*Request, error) {
	r := &Request{
		status:      Pending,
		requestedAt: requestedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setUserID(userID),
		r.setEarnerType(earnerType),
		r.setAmount(amount),
		r.setBankDetails(bankDetails),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a payout request from persistence.
func RestoreRequest(
	id kernel.UUID,
	userID kernel.UUID,
	earnerType EarnerType,
	amount kernel.Money,
	bankDetails BankDetails,
	status Status,
	notes string,
	requestedAt time.Time,
	processedAt *time.Time,
) (*Request, error) {
	r, err := NewRequest(id, userID, earnerType, amount, bankDetails, requestedAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	r.notes = notes
	if processedAt != nil {
		at := *processedAt
		r.processedAt = &at
	}
	return r, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// UserID returns the earner who raised the request.
func (r *Request) UserID() kernel.UUID {
	return r.userID
}

// EarnerType returns whether a vendor or a rider is withdrawing.
func (r *Request) EarnerType() EarnerType {
	return r.earnerType
}

// Amount returns the requested withdrawal amount.
func (r *Request) Amount() kernel.Money {
	return r.amount
}

// BankDetails returns the destination account.
func (r *Request) BankDetails() BankDetails {
	return r.bankDetails
}

// Status returns the current processing state.
func (r *Request) Status() Status {
	return r.status
}

// Notes returns the administrator's notes, set on processing.
func (r *Request) Notes() string {
	return r.notes
}

// RequestedAt returns when the earner raised the request.
func (r *Request) RequestedAt() time.Time {
	return r.requestedAt
}

// ProcessedAt returns when an administrator decided the request, or nil while
// pending.
func (r *Request) ProcessedAt() *time.Time {
	return r.processedAt
}

// Process records the administrator's decision. It is the sole mutator of the
// request: only a pending request can be processed, the decision must be
// Processed or Rejected, and a rejection requires non-empty notes. Afterwards
// the request is terminal.
func (r *Request) Process(decision Status, notes string, now time.Time) error {
	if r.status != Pending {
		return ErrAlreadyProcessed
	}
	if decision != Processed && decision != Rejected {
		return errs.NewValueIsInvalidError("decision")
	}
	if decision == Rejected && notes == "" {
		return errs.NewValueIsRequiredError("notes")
	}

	r.status = decision
	r.notes = notes
	r.processedAt = &now
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	r.userID = userID
	return nil
}

func (r *Request) setEarnerType(earnerType EarnerType) error {
	if err := earnerType.Validate(); err != nil {
		return err
	}
	r.earnerType = earnerType
	return nil
}

func (r *Request) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("payout amount")
	}
	r.amount = amount
	return nil
}

func (r *Request) setBankDetails(bankDetails BankDetails) error {
	if err := bankDetails.Validate(); err != nil {
		return err
	}
	r.bankDetails = bankDetails
	return nil
}
