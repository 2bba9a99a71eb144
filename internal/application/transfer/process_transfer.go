package transfer

import (
	"context"
	"time"

	"github.com/mcubank/transfers/internal/clearing"
	domainErrors "github.com/mcubank/transfers/internal/domain/errors"
	"github.com/mcubank/transfers/internal/domain/transfer"
	"github.com/mcubank/transfers/internal/ledger"
	"github.com/mcubank/transfers/internal/observability"
	"github.com/mcubank/transfers/internal/validation"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

// ProcessTransferUseCase composes the validator, the ledger and the clearing
// gateway into one operation: validate, check-and-deduct, submit, report.
type ProcessTransferUseCase struct {
	ledger  *ledger.Ledger
	gateway clearing.Gateway
	breaker *gobreaker.CircuitBreaker[*transfer.Settlement]
	logger  zerolog.Logger
	metrics *observability.Metrics
}

// NewProcessTransferUseCase creates a new ProcessTransferUseCase. The breaker
// and metrics may be nil.
func NewProcessTransferUseCase(
	l *ledger.Ledger,
	gateway clearing.Gateway,
	breaker *gobreaker.CircuitBreaker[*transfer.Settlement],
	logger zerolog.Logger,
	metrics *observability.Metrics,
) *ProcessTransferUseCase {
	return &ProcessTransferUseCase{
		ledger:  l,
		gateway: gateway,
		breaker: breaker,
		logger:  logger,
		metrics: metrics,
	}
}

// Execute runs one transfer attempt through the state machine. The returned
// attempt is always non-nil and carries the terminal status; the error is nil
// only when the transfer settled.
//
// A validation rejection never touches the ledger. An insufficient-balance
// rejection never reaches the gateway. A gateway failure leaves the ledger
// debited: there is no compensating reversal, so the caller must not blindly
// resubmit (see the orchestrator tests documenting this).
func (uc *ProcessTransferUseCase) Execute(ctx context.Context, req transfer.Request) (*transfer.Attempt, error) {
	attempt := transfer.NewAttempt(req)
	start := time.Now()

	if err := attempt.TransitionTo(transfer.StatusValidating); err != nil {
		return attempt, err
	}
	if out := validation.Validate(req); !out.Valid() {
		if err := attempt.MarkRejected(out.Errors); err != nil {
			return attempt, err
		}
		uc.observe(attempt, start)
		uc.logger.Info().
			Str("attempt_id", attempt.ID.String()).
			Strs("errors", out.Errors).
			Msg("transfer rejected by validation")
		return attempt, domainErrors.NewValidationErrors(out.Errors)
	}

	if err := attempt.TransitionTo(transfer.StatusBalanceChecking); err != nil {
		return attempt, err
	}
	amount, err := req.ParseAmount()
	if err != nil {
		// unreachable after validation, kept as a guard
		if markErr := attempt.MarkRejected([]string{"Invalid amount"}); markErr != nil {
			return attempt, markErr
		}
		return attempt, err
	}
	acct, err := uc.ledger.TryDeduct(amount)
	if err != nil {
		if markErr := attempt.MarkRejected([]string{err.Error()}); markErr != nil {
			return attempt, markErr
		}
		uc.observe(attempt, start)
		uc.logger.Info().
			Str("attempt_id", attempt.ID.String()).
			Str("amount", amount.StringFixed(2)).
			Msg("transfer rejected for insufficient balance")
		return attempt, err
	}
	if uc.metrics != nil {
		uc.metrics.LedgerBalance.Set(acct.Balance.InexactFloat64())
	}

	if err := attempt.TransitionTo(transfer.StatusProcessing); err != nil {
		return attempt, err
	}
	settlement, err := uc.submit(ctx, req)
	if err != nil {
		if markErr := attempt.MarkFailed(err.Error()); markErr != nil {
			return attempt, markErr
		}
		uc.observe(attempt, start)
		// The deduction stands; the failed status carries the outcome.
		uc.logger.Error().
			Err(err).
			Str("attempt_id", attempt.ID.String()).
			Str("amount", amount.StringFixed(2)).
			Msg("settlement failed after deduction")
		return attempt, err
	}

	if err := attempt.MarkSettled(settlement.TransactionID); err != nil {
		return attempt, err
	}
	uc.observe(attempt, start)
	uc.logger.Info().
		Str("attempt_id", attempt.ID.String()).
		Str("transaction_id", settlement.TransactionID).
		Str("amount", amount.StringFixed(2)).
		Str("balance", acct.Balance.StringFixed(2)).
		Msg("transfer settled")
	return attempt, nil
}

func (uc *ProcessTransferUseCase) submit(ctx context.Context, req transfer.Request) (*transfer.Settlement, error) {
	if uc.breaker == nil {
		return uc.gateway.Submit(ctx, req)
	}
	settlement, err := uc.breaker.Execute(func() (*transfer.Settlement, error) {
		return uc.gateway.Submit(ctx, req)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, domainErrors.NewDomainError("clearing_unavailable", "clearing backend unavailable", domainErrors.ErrClearingUnavailable)
	}
	return settlement, err
}

func (uc *ProcessTransferUseCase) observe(attempt *transfer.Attempt, start time.Time) {
	if uc.metrics == nil {
		return
	}
	labels := []string{string(attempt.Request.Type), string(attempt.Status)}
	uc.metrics.TransfersTotal.WithLabelValues(labels...).Inc()
	uc.metrics.TransferDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
}
