package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koolheads/orders-service/internal/domain"
)

func capOrder() *domain.OrderPayload {
	return &domain.OrderPayload{
		Contact: &domain.Contact{Email: "jane@example.com", Phone: "+254 711 222333"},
		Shipping: &domain.Shipping{
			Country:        "Kenya",
			FirstName:      "Jane",
			LastName:       "Mwangi",
			Address:        "Moi Avenue 12",
			City:           "Nairobi",
			ShippingMethod: "standard",
		},
		Items:    []domain.LineItem{{ID: "A", Name: "Cap", Size: "M", Price: 1000, Quantity: 2}},
		Subtotal: 2000,
	}
}

func TestRenderAdminNotification(t *testing.T) {
	got, err := RenderAdminNotification(capOrder(), "")
	require.NoError(t, err)

	assert.Equal(t, "New Order from jane@example.com", got.Subject)
	assert.Contains(t, got.HTML, "jane@example.com")
	assert.Contains(t, got.HTML, "+254 711 222333")
	assert.Contains(t, got.HTML, "Jane Mwangi")
	assert.Contains(t, got.HTML, "Nairobi, Kenya")
	assert.Contains(t, got.HTML, "Postal: N/A")
	assert.Contains(t, got.HTML, "Shipping Method: standard")
	assert.Contains(t, got.HTML, "Cap - M x2 = Ksh 2000")
	assert.Contains(t, got.HTML, "Subtotal: Ksh 2000")
	assert.NotContains(t, got.HTML, "Payment Reference")
}

func TestRenderAdminNotificationWithReference(t *testing.T) {
	got, err := RenderAdminNotification(capOrder(), "KH-123")
	require.NoError(t, err)

	assert.Equal(t, "New Order from jane@example.com", got.Subject)
	assert.Contains(t, got.HTML, "Payment Reference: KH-123")
}

// The footer uses the subtotal exactly as the client sent it, even when the
// line totals sum to something else.
func TestAdminSubtotalEchoedVerbatim(t *testing.T) {
	o := capOrder()
	o.Subtotal = 9999

	got, err := RenderAdminNotification(o, "")
	require.NoError(t, err)

	assert.Contains(t, got.HTML, "Cap - M x2 = Ksh 2000")
	assert.Contains(t, got.HTML, "Subtotal: Ksh 9999")
}

func TestRenderCustomerConfirmation(t *testing.T) {
	got, err := RenderCustomerConfirmation(capOrder())
	require.NoError(t, err)

	assert.Equal(t, "Your Order Confirmation", got.Subject)
	assert.Contains(t, got.HTML, "Hi Jane,")
	assert.Contains(t, got.HTML, "Cap - M x2 = Ksh 2000")
	assert.Contains(t, got.HTML, "Subtotal: Ksh 2000")
	assert.Contains(t, got.HTML, "Koolheads Team")
}

func TestRenderPaymentReceipt(t *testing.T) {
	got, err := RenderPaymentReceipt(capOrder(), "KH-123")
	require.NoError(t, err)

	assert.Equal(t, "Payment Confirmed", got.Subject)
	assert.Contains(t, got.HTML, "KH-123")
	assert.Contains(t, got.HTML, "Hi Jane,")
	assert.Contains(t, got.HTML, "Ksh 2000")
	assert.Contains(t, got.HTML, "Subtotal: Ksh 2000")
}

func TestRenderFractionalPrices(t *testing.T) {
	o := capOrder()
	o.Items = []domain.LineItem{{Name: "Stickers", Size: "OS", Price: 49.5, Quantity: 3}}
	o.Subtotal = 148.5

	got, err := RenderAdminNotification(o, "")
	require.NoError(t, err)

	assert.Contains(t, got.HTML, "Stickers - OS x3 = Ksh 148.5")
	assert.Contains(t, got.HTML, "Subtotal: Ksh 148.5")
}

func TestRenderIncompletePayload(t *testing.T) {
	o := capOrder()
	o.Contact = nil

	_, err := RenderAdminNotification(o, "KH-1")
	assert.Error(t, err)

	_, err = RenderCustomerConfirmation(o)
	assert.Error(t, err)

	_, err = RenderPaymentReceipt(nil, "KH-1")
	assert.Error(t, err)
}
