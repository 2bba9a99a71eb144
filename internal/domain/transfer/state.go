package transfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcubank/transfers/internal/domain/errors"
)

// Status represents the attempt's position in the processing state machine.
type Status string

const (
	StatusIdle            Status = "idle"
	StatusValidating      Status = "validating"
	StatusBalanceChecking Status = "balance_checking"
	StatusProcessing      Status = "processing"
	StatusRejected        Status = "rejected"
	StatusSettled         Status = "settled"
	StatusFailed          Status = "failed"
)

// Attempt tracks one submission of a Request through the state machine:
//
//	idle -> validating -> (rejected | balance_checking)
//	     -> (rejected | processing) -> (settled | failed)
type Attempt struct {
	ID            uuid.UUID
	Request       Request
	Status        Status
	Errors        []string
	TransactionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
}

// NewAttempt creates an idle attempt for the given request.
func NewAttempt(req Request) *Attempt {
	now := time.Now()
	return &Attempt{
		ID:        uuid.New(),
		Request:   req,
		Status:    StatusIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CanTransitionTo checks if the attempt can transition to the given status
func (a *Attempt) CanTransitionTo(newStatus Status) bool {
	transitions := map[Status][]Status{
		StatusIdle:            {StatusValidating},
		StatusValidating:      {StatusRejected, StatusBalanceChecking},
		StatusBalanceChecking: {StatusRejected, StatusProcessing},
		StatusProcessing:      {StatusSettled, StatusFailed},
		StatusRejected:        {}, // Terminal state
		StatusSettled:         {}, // Terminal state
		StatusFailed:          {}, // Terminal state
	}

	allowed, exists := transitions[a.Status]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// TransitionTo transitions the attempt to a new status
func (a *Attempt) TransitionTo(newStatus Status) error {
	if !a.CanTransitionTo(newStatus) {
		return errors.NewDomainError(
			"invalid_transition",
			"cannot transition from "+string(a.Status)+" to "+string(newStatus),
			errors.ErrInvalidStateTransition,
		)
	}

	a.Status = newStatus
	a.UpdatedAt = time.Now()

	if a.IsTerminal() {
		now := time.Now()
		a.CompletedAt = &now
	}

	return nil
}

// MarkRejected records the ordered error list and moves to rejected.
func (a *Attempt) MarkRejected(errs []string) error {
	if err := a.TransitionTo(StatusRejected); err != nil {
		return err
	}
	a.Errors = errs
	return nil
}

// MarkSettled records the transaction identifier and moves to settled.
func (a *Attempt) MarkSettled(transactionID string) error {
	if err := a.TransitionTo(StatusSettled); err != nil {
		return err
	}
	a.TransactionID = transactionID
	return nil
}

// MarkFailed records a settlement failure message and moves to failed.
func (a *Attempt) MarkFailed(message string) error {
	if err := a.TransitionTo(StatusFailed); err != nil {
		return err
	}
	a.Errors = []string{message}
	return nil
}

// IsTerminal checks if the attempt is in a terminal state
func (a *Attempt) IsTerminal() bool {
	return a.Status == StatusRejected ||
		a.Status == StatusSettled ||
		a.Status == StatusFailed
}
