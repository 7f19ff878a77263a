package http

import (
	"encoding/json"
	"net/http"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/service"
)

type EmployeeHandler struct {
	employees service.EmployeeService
}

func NewEmployeeHandler(employees service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

type addEmployeeRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *EmployeeHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	employee, err := h.employees.AddEmployee(r.Context(), req.Name, req.Role, req.Email, req.Phone, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	employee, err := h.employees.GetEmployee(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.ListEmployees(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}
