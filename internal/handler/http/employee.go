package http

import (
	"encoding/json"
	"net/http"

	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/employee"
	"github.com/worknai009/worknai-HRMS-sub000/internal/handler/http/response"
)

type EmployeeHandler interface {
	EnrollBiometric(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// EnrollBiometric implements EmployeeHandler.
func (h *employeeHandlerImpl) EnrollBiometric(w http.ResponseWriter, r *http.Request) {
	var req employee.EnrollBiometricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.employeeService.EnrollBiometric(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Biometric profile enrolled", resp)
}
