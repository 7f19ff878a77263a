package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bankledger-backend/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps the ledger failure taxonomy onto HTTP status codes. The
// failure message is surfaced verbatim; nothing is swallowed.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrSameAccount):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrLoanNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrNonZeroBalance),
		errors.Is(err, domain.ErrAlreadyClosed),
		errors.Is(err, domain.ErrAccountClosed),
		errors.Is(err, domain.ErrCustomerHasDependents),
		errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
