package controller

import (
	"net/http"

	"github.com/mcubank/transfers/internal/ledger"
)

// AccountController serves the demo account's state.
type AccountController struct {
	ledger *ledger.Ledger
}

// NewAccountController creates a new AccountController.
func NewAccountController(l *ledger.Ledger) *AccountController {
	return &AccountController{ledger: l}
}

// Get handles GET /api/v1/account
func (h *AccountController) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, FromAccount(h.ledger.Account()))
}

// GetBalance handles GET /api/v1/account/balance
func (h *AccountController) GetBalance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, BalanceResponse{Balance: h.ledger.Balance().StringFixed(2)})
}
