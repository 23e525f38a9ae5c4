package handler

import (
	"net/http"

	"agencysite/internal/bookings/service"
	httputil "agencysite/pkg/http"
	"agencysite/pkg/logger"
	"agencysite/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Services(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.Services()); err != nil {
		h.log.Error("failed to write success response", "handler", "Services", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) TimeSlots(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.TimeSlots()); err != nil {
		h.log.Error("failed to write success response", "handler", "TimeSlots", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) DateAvailability(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	availability, err := h.service.DateAvailability(ps.ByName("date"))
	if err != nil {
		h.writeError(w, "DateAvailability", err)
		return
	}

	if err := httputil.WriteSuccess(w, availability); err != nil {
		h.log.Error("failed to write success response", "handler", "DateAvailability", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form model.BookingForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		h.log.Warn("Rejected malformed booking body", "error", err)
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Submit", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	result, err := h.service.Submit(r.Context(), &form)
	if err != nil {
		h.writeError(w, "Submit", err)
		return
	}

	if err := httputil.WriteCreated(w, result); err != nil {
		h.log.Error("failed to write created response", "handler", "Submit", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/booking/services", h.Services)
	router.GET("/api/v1/booking/time-slots", h.TimeSlots)
	router.GET("/api/v1/booking/dates/:date", h.DateAvailability)
	router.POST("/api/v1/booking", h.Submit)
}
