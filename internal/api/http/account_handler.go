package http

import (
	"context"
	"encoding/json"
	"net/http"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/money"
	"bankledger-backend/internal/service"
)

type AccountHandler struct {
	accounts  service.AccountService
	transfers service.TransferService
}

func NewAccountHandler(accounts service.AccountService, transfers service.TransferService) *AccountHandler {
	return &AccountHandler{accounts: accounts, transfers: transfers}
}

type openAccountRequest struct {
	CustomerID int64  `json:"customer_id"`
	Type       string `json:"type"`
}

func (h *AccountHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	account, err := h.accounts.OpenAccount(r.Context(), req.CustomerID, domain.AccountType(req.Type))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	account, err := h.accounts.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	accounts, err := h.accounts.ListAccounts(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	account, err := h.accounts.CloseAccount(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

type amountRequest struct {
	Amount string `json:"amount"` // decimal string, e.g. "125.00"
}

type mutationResponse struct {
	Transaction *domain.Transaction `json:"transaction"`
	NewBalance  string              `json:"new_balance"`
}

func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.accounts.Deposit)
}

func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.accounts.Withdraw)
}

func (h *AccountHandler) mutate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id, amount int64) (*domain.Transaction, int64, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	amount, err := money.ParseCents(req.Amount)
	if err != nil {
		writeError(w, domain.ErrInvalidAmount)
		return
	}
	tx, newBalance, err := op(r.Context(), id, amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{
		Transaction: tx,
		NewBalance:  money.FormatCents(newBalance),
	})
}

func (h *AccountHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	txs, err := h.accounts.GetTransactionHistory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

type transferRequest struct {
	FromAccountID int64  `json:"from_account_id"`
	ToAccountID   int64  `json:"to_account_id"`
	Amount        string `json:"amount"`
}

func (h *AccountHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	amount, err := money.ParseCents(req.Amount)
	if err != nil {
		writeError(w, domain.ErrInvalidAmount)
		return
	}
	transfer, err := h.transfers.Transfer(r.Context(), req.FromAccountID, req.ToAccountID, amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, transfer)
}
