package presentation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/koolheads/orders-service/internal/application"
	"github.com/koolheads/orders-service/internal/domain"
	"github.com/koolheads/orders-service/internal/logger"
	"github.com/koolheads/orders-service/internal/presentation/helpers"
)

type OrdersHandler struct {
	svc *application.OrdersService
}

func NewOrdersHandler(svc *application.OrdersService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

func (h *OrdersHandler) Register(r chi.Router) {
	r.Post("/api/order", h.SubmitOrder)
	r.Post("/api/verify-payment", h.VerifyPayment)
}

type orderResponse struct {
	Message string `json:"message"`
}

type verifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type verifyPaymentRequest struct {
	Reference string               `json:"reference"`
	Order     *domain.OrderPayload `json:"order"`
}

func (h *OrdersHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var ord domain.OrderPayload
	if err := helpers.DecodeJSON(r.Body, &ord); err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, orderResponse{Message: "Invalid order data"})
		return
	}

	if err := h.svc.SubmitOrder(r.Context(), &ord); err != nil {
		if errors.Is(err, domain.ErrInvalidOrder) {
			helpers.WriteJSON(w, http.StatusBadRequest, orderResponse{Message: "Invalid order data"})
			return
		}
		logger.Error("submit order failed", "err", err)
		helpers.WriteJSON(w, http.StatusInternalServerError, orderResponse{Message: "Something went wrong"})
		return
	}

	helpers.WriteJSON(w, http.StatusOK, orderResponse{Message: "Order successfully sent"})
}

func (h *OrdersHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if err := helpers.DecodeJSON(r.Body, &req); err != nil || strings.TrimSpace(req.Reference) == "" {
		helpers.WriteJSON(w, http.StatusBadRequest, verifyResponse{Status: "error", Message: "Missing reference"})
		return
	}

	if err := h.svc.VerifyPayment(r.Context(), req.Reference, req.Order); err != nil {
		switch {
		case errors.Is(err, application.ErrMissingReference):
			helpers.WriteJSON(w, http.StatusBadRequest, verifyResponse{Status: "error", Message: "Missing reference"})
		case errors.Is(err, application.ErrPaymentNotCompleted):
			helpers.WriteJSON(w, http.StatusBadRequest, verifyResponse{Status: "error", Message: "Payment not completed"})
		default:
			logger.Error("payment verification failed", "reference", req.Reference, "err", err)
			helpers.WriteJSON(w, http.StatusInternalServerError, verifyResponse{Status: "error", Message: "Verification failed"})
		}
		return
	}

	helpers.WriteJSON(w, http.StatusOK, verifyResponse{Status: "success"})
}
