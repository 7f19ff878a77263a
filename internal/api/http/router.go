package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every core operation onto the HTTP surface. The handlers
// are a thin rendering layer: all validation and ledger semantics live in the
// services.
func NewRouter(
	customers *CustomerHandler,
	accounts *AccountHandler,
	loans *LoanHandler,
	employees *EmployeeHandler,
) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/customers", customers.Create).Methods(http.MethodPost)
	api.HandleFunc("/customers", customers.List).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.Get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.Update).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/customers/{id:[0-9]+}/accounts", accounts.ListByCustomer).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}/loans", loans.ListByCustomer).Methods(http.MethodGet)

	api.HandleFunc("/accounts", accounts.Open).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{id:[0-9]+}", accounts.Get).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{id:[0-9]+}/close", accounts.Close).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{id:[0-9]+}/deposit", accounts.Deposit).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{id:[0-9]+}/withdraw", accounts.Withdraw).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{id:[0-9]+}/transactions", accounts.Transactions).Methods(http.MethodGet)

	api.HandleFunc("/transfers", accounts.Transfer).Methods(http.MethodPost)

	api.HandleFunc("/loans", loans.Apply).Methods(http.MethodPost)
	api.HandleFunc("/loans", loans.List).Methods(http.MethodGet)
	api.HandleFunc("/loans/{id:[0-9]+}", loans.Get).Methods(http.MethodGet)
	api.HandleFunc("/loans/{id:[0-9]+}/repayments", loans.Repay).Methods(http.MethodPost)
	api.HandleFunc("/loans/{id:[0-9]+}/repayments", loans.Repayments).Methods(http.MethodGet)

	api.HandleFunc("/employees", employees.Add).Methods(http.MethodPost)
	api.HandleFunc("/employees", employees.List).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id:[0-9]+}", employees.Get).Methods(http.MethodGet)

	return r
}
