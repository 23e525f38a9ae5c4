package handler

import (
	"fmt"
	"net/http"

	"agencysite/internal/projectintake/service"
	httputil "agencysite/pkg/http"
	"agencysite/pkg/logger"
	"agencysite/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ProjectIntakeHandler struct {
	service service.ProjectIntakeService
	log     *logger.Logger
}

func NewProjectIntakeHandler(service service.ProjectIntakeService, log *logger.Logger) *ProjectIntakeHandler {
	return &ProjectIntakeHandler{
		service: service,
		log:     log,
	}
}

func (h *ProjectIntakeHandler) Choices(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.Choices()); err != nil {
		h.log.Error("failed to write success response", "handler", "Choices", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ProjectIntakeHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	intake, err := decodeProjectIntake(r)
	if err != nil {
		h.log.Warn("Rejected malformed project intake body", "error", err)
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Submit", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	result, err := h.service.Submit(r.Context(), intake)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Submit", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, result); err != nil {
		h.log.Error("failed to write created response", "handler", "Submit", "operation", "WriteCreated", "error", err)
	}
}

// decodeProjectIntake reads a JSON body, or a form body using the intake
// page's snake_case field names.
func decodeProjectIntake(r *http.Request) (*model.ProjectIntake, error) {
	var intake model.ProjectIntake
	if httputil.IsFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form body: %w", err)
		}
		form := r.PostForm
		intake = model.ProjectIntake{
			BusinessName:       form.Get("business_name"),
			ContactName:        form.Get("contact_name"),
			Email:              form.Get("email"),
			Phone:              form.Get("phone"),
			WebsiteType:        form.Get("website_type"),
			Timeline:           form.Get("timeline"),
			Budget:             form.Get("budget"),
			ProjectDescription: form.Get("project_description"),
			AdditionalNotes:    form.Get("additional_notes"),
		}
		return &intake, nil
	}

	if err := httputil.DecodeJSON(r, &intake); err != nil {
		return nil, err
	}
	return &intake, nil
}

func (h *ProjectIntakeHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/intake/choices", h.Choices)
	router.POST("/api/v1/intake", h.Submit)
}
