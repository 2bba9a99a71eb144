package controller

import (
	"net/http"
	"sync"

	transferApp "github.com/mcubank/transfers/internal/application/transfer"
	"github.com/mcubank/transfers/internal/domain/transfer"
	"github.com/mcubank/transfers/internal/ledger"
	"github.com/mcubank/transfers/internal/validation"
)

// TransferController handles transfer-related HTTP requests. It owns the
// single demo session's form state, so access to the form is serialized here.
type TransferController struct {
	processUC *transferApp.ProcessTransferUseCase
	ledger    *ledger.Ledger

	mu   sync.Mutex
	form *transferApp.Form
}

// NewTransferController creates a new TransferController.
func NewTransferController(processUC *transferApp.ProcessTransferUseCase, l *ledger.Ledger) *TransferController {
	return &TransferController{
		processUC: processUC,
		ledger:    l,
		form:      transferApp.NewForm(),
	}
}

// Create handles POST /api/v1/transfers
func (h *TransferController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTransferRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	h.mu.Lock()
	h.form.SetType(transfer.Type(req.TransferType))
	h.form.SetRecipientName(req.RecipientName)
	h.form.SetAccountNumber(req.AccountNumber)
	h.form.SetAmount(req.Amount)
	h.form.SetIBAN(req.IBAN)
	h.form.SetSwiftCode(req.SwiftCode)
	domainReq := h.form.BuildRequest()
	h.mu.Unlock()

	attempt, err := h.processUC.Execute(r.Context(), domainReq)

	h.mu.Lock()
	h.form.RecordAttempt(attempt)
	h.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, FromAttempt(attempt, h.ledger.Balance().StringFixed(2)))
}

// GetForm handles GET /api/v1/transfers/form
func (h *TransferController) GetForm(w http.ResponseWriter, r *http.Request) {
	balance := h.ledger.Balance().StringFixed(2)
	h.mu.Lock()
	resp := FromForm(h.form, balance)
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// Reset handles POST /api/v1/transfers/reset. The form goes back to a fresh
// default keeping only the selected transfer type; the ledger is untouched.
func (h *TransferController) Reset(w http.ResponseWriter, r *http.Request) {
	balance := h.ledger.Balance().StringFixed(2)
	h.mu.Lock()
	h.form.Reset()
	resp := FromForm(h.form, balance)
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// FormatSwift handles POST /api/v1/swift/format
func (h *TransferController) FormatSwift(w http.ResponseWriter, r *http.Request) {
	var req FormatSwiftRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result := validation.FormatSwiftCodeWithCursor(req.Text, req.Cursor)
	writeJSON(w, http.StatusOK, FormatSwiftResponse{Text: result.Text, Cursor: result.Cursor})
}
