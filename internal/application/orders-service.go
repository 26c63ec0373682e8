package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/koolheads/orders-service/internal/domain"
	"github.com/koolheads/orders-service/internal/logger"
	"github.com/koolheads/orders-service/internal/mail"
	"github.com/koolheads/orders-service/internal/paystack"
)

var (
	ErrMissingReference    = errors.New("missing reference")
	ErrPaymentNotCompleted = errors.New("payment not completed")
)

// PaymentGateway confirms a charge by its reference.
type PaymentGateway interface {
	VerifyTransaction(ctx context.Context, reference string) (*paystack.Verification, error)
}

type OrdersService struct {
	mailer    mail.Mailer
	gateway   PaymentGateway
	fromAddr  string
	adminAddr string
}

func NewOrdersService(m mail.Mailer, g PaymentGateway, fromAddr, adminAddr string) *OrdersService {
	return &OrdersService{
		mailer:    m,
		gateway:   g,
		fromAddr:  fromAddr,
		adminAddr: adminAddr,
	}
}

// SubmitOrder handles the no-payment intake flow: validate, then notify the
// store and the customer. Both sends are best-effort; a delivery failure is
// logged and never fails the order.
func (s *OrdersService) SubmitOrder(ctx context.Context, o *domain.OrderPayload) error {
	if err := o.Validate(); err != nil {
		return err
	}

	// Correlation ID for the logs; nothing is persisted.
	orderID := uuid.New()

	admin, err := mail.RenderAdminNotification(o, "")
	if err != nil {
		return fmt.Errorf("render admin notification: %w", err)
	}
	if err := s.mailer.Send(ctx, mail.Message{
		From:    s.fromAddr,
		To:      s.adminAddr,
		Subject: admin.Subject,
		HTML:    admin.HTML,
	}); err != nil {
		logger.Warn("admin notification failed", "order_id", orderID, "err", err)
	}

	confirmation, err := mail.RenderCustomerConfirmation(o)
	if err != nil {
		return fmt.Errorf("render customer confirmation: %w", err)
	}
	if err := s.mailer.Send(ctx, mail.Message{
		From:    s.fromAddr,
		To:      o.Contact.Email,
		Subject: confirmation.Subject,
		HTML:    confirmation.HTML,
	}); err != nil {
		logger.Warn("customer confirmation failed", "order_id", orderID, "err", err)
	}

	logger.Info("order submitted", "order_id", orderID, "customer", o.Contact.Email, "items", len(o.Items))
	return nil
}

// VerifyPayment handles the paid flow: confirm the charge with the gateway,
// then send both notifications. Unlike the intake flow, a send failure here
// fails the whole request even though the charge is already captured — the
// gateway call cannot be rolled back, and no reconciliation is attempted.
// The order payload is not re-validated; a reference may be re-verified any
// number of times and will re-send both emails each time.
func (s *OrdersService) VerifyPayment(ctx context.Context, reference string, o *domain.OrderPayload) error {
	if strings.TrimSpace(reference) == "" {
		return ErrMissingReference
	}

	v, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return fmt.Errorf("gateway verify: %w", err)
	}
	if !v.Succeeded() {
		logger.Info("payment not completed", "reference", reference, "status", v.Status)
		return ErrPaymentNotCompleted
	}

	admin, err := mail.RenderAdminNotification(o, reference)
	if err != nil {
		return fmt.Errorf("render admin notification: %w", err)
	}
	if err := s.mailer.Send(ctx, mail.Message{
		From:    s.fromAddr,
		To:      s.adminAddr,
		Subject: admin.Subject,
		HTML:    admin.HTML,
	}); err != nil {
		return fmt.Errorf("admin notification: %w", err)
	}

	receipt, err := mail.RenderPaymentReceipt(o, reference)
	if err != nil {
		return fmt.Errorf("render payment receipt: %w", err)
	}
	if err := s.mailer.Send(ctx, mail.Message{
		From:    s.fromAddr,
		To:      o.Contact.Email,
		Subject: receipt.Subject,
		HTML:    receipt.HTML,
	}); err != nil {
		return fmt.Errorf("payment receipt: %w", err)
	}

	logger.Info("payment verified", "reference", reference, "customer", o.Contact.Email)
	return nil
}
