package http

import (
	"encoding/json"
	"net/http"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/money"
	"bankledger-backend/internal/service"
)

type LoanHandler struct {
	loans service.LoanService
}

func NewLoanHandler(loans service.LoanService) *LoanHandler {
	return &LoanHandler{loans: loans}
}

type applyLoanRequest struct {
	CustomerID   int64   `json:"customer_id"`
	Type         string  `json:"type"`
	Amount       string  `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
}

func (h *LoanHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applyLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	principal, err := money.ParseCents(req.Amount)
	if err != nil {
		writeError(w, domain.ErrInvalidAmount)
		return
	}
	loan, err := h.loans.ApplyForLoan(r.Context(), req.CustomerID, req.Type, principal, req.InterestRate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, loan)
}

func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	loan, err := h.loans.GetLoan(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	loans, err := h.loans.GetLoansByCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loans)
}

func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loans.ListAllLoans(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loans)
}

type repaymentResponse struct {
	Repayment *domain.Repayment `json:"repayment"`
	Remaining string            `json:"remaining"`
}

func (h *LoanHandler) Repay(w http.ResponseWriter, r *http.Request) {
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
	repayment, remaining, err := h.loans.MakeRepayment(r.Context(), id, amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, repaymentResponse{
		Repayment: repayment,
		Remaining: money.FormatCents(remaining),
	})
}

func (h *LoanHandler) Repayments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	repayments, err := h.loans.ListRepayments(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, repayments)
}
