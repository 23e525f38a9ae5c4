package handler

import (
	"context"
	"fmt"
	"net/http"

	"agencysite/internal/newsletter/service"
	httputil "agencysite/pkg/http"
	"agencysite/pkg/logger"
	"agencysite/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type NewsletterHandler struct {
	service service.NewsletterService
	log     *logger.Logger
}

func NewNewsletterHandler(service service.NewsletterService, log *logger.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		service: service,
		log:     log,
	}
}

// Subscribe answers 201 for a new subscription and 200 otherwise.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.handle(w, r, "Subscribe", h.service.Subscribe)
}

func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.handle(w, r, "Unsubscribe", h.service.Unsubscribe)
}

func (h *NewsletterHandler) handle(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	call func(context.Context, *model.NewsletterRequest) (*service.Result, error),
) {
	req, err := decodeNewsletterRequest(r)
	if err != nil {
		h.log.Warn("Rejected malformed newsletter body", "handler", name, "error", err)
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", name, "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	result, err := call(r.Context(), req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", name, "operation", "WriteError", "error", writeErr)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	if err := httputil.WriteJSON(w, status, result); err != nil {
		h.log.Error("failed to write JSON response", "handler", name, "operation", "WriteJSON", "error", err)
	}
}

func decodeNewsletterRequest(r *http.Request) (*model.NewsletterRequest, error) {
	var req model.NewsletterRequest
	if httputil.IsFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form body: %w", err)
		}
		req.Email = r.PostForm.Get("email")
		return &req, nil
	}

	if err := httputil.DecodeJSON(r, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (h *NewsletterHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/newsletter/subscribe", h.Subscribe)
	router.POST("/newsletter/unsubscribe", h.Unsubscribe)
}
