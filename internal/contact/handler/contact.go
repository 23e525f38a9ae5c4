package handler

import (
	"fmt"
	"net/http"

	"agencysite/internal/contact/service"
	httputil "agencysite/pkg/http"
	"agencysite/pkg/logger"
	"agencysite/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ContactHandler struct {
	service service.ContactService
	log     *logger.Logger
}

func NewContactHandler(service service.ContactService, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log,
	}
}

// Submit accepts a JSON or form-encoded contact message. A body that cannot
// be read is an internal failure; its cause stays in the server log.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	msg, err := decodeContactMessage(r)
	if err != nil {
		h.log.Error("Failed to read contact request", "error", err)
		if writeErr := httputil.WriteInternalError(w); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Submit", "operation", "WriteInternalError", "error", writeErr)
		}
		return
	}

	ack, err := h.service.Submit(r.Context(), msg)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Submit", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, ack.Message); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Submit", "operation", "WriteMessage", "error", err)
	}
}

// decodeContactMessage reads JSON and form bodies. Any other media type,
// including none, leaves the message empty so validation reports every field.
func decodeContactMessage(r *http.Request) (*model.ContactMessage, error) {
	var msg model.ContactMessage
	switch httputil.MediaType(r) {
	case httputil.ContentTypeForm:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form body: %w", err)
		}
		msg.Name = r.PostForm.Get("name")
		msg.Email = r.PostForm.Get("email")
		msg.Message = r.PostForm.Get("message")
	case httputil.ContentTypeJSON:
		if err := httputil.DecodeJSON(r, &msg); err != nil {
			return nil, err
		}
	}
	return &msg, nil
}

func (h *ContactHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/contact", h.Submit)
}

func (h *ContactHandler) NegotiatedPaths() []string {
	return []string{"/contact"}
}
