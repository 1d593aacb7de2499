package http

import (
	"encoding/json"
	"net/http"

	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/company"
	"github.com/worknai009/worknai-HRMS-sub000/internal/handler/http/response"
)

type CompanyHandler interface {
	ConfigureLocations(w http.ResponseWriter, r *http.Request)
	ListLocations(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &companyHandlerImpl{companyService: companyService}
}

// ConfigureLocations implements CompanyHandler.
func (h *companyHandlerImpl) ConfigureLocations(w http.ResponseWriter, r *http.Request) {
	var req company.ConfigureLocationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.companyService.ConfigureLocations(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Locations configured", resp)
}

// ListLocations implements CompanyHandler.
func (h *companyHandlerImpl) ListLocations(w http.ResponseWriter, r *http.Request) {
	resp, err := h.companyService.ListLocations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
