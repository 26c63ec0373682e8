package mail

import (
	"bytes"
	"errors"
	"html/template"
	"strconv"

	"github.com/koolheads/orders-service/internal/domain"
)

// RenderedEmail is a subject plus HTML body; the caller supplies addressing.
type RenderedEmail struct {
	Subject string
	HTML    string
}

var errIncompleteOrder = errors.New("order payload incomplete")

const adminBody = `<h2>New Order Received</h2>
<h3>Contact Info</h3>
<p>Email: {{.Contact.Email}}</p>
<p>Phone: {{.Contact.Phone}}</p>
<h3>Shipping Info</h3>
<p>{{.Recipient}}</p>
<p>{{.Shipping.Address}} {{.Shipping.Apartment}}</p>
<p>{{.Shipping.City}}, {{.Shipping.Country}}</p>
<p>Postal: {{.Postal}}</p>
<p>Shipping Method: {{.Shipping.ShippingMethod}}</p>
{{if .Reference}}<p>Payment Reference: {{.Reference}}</p>
{{end}}<h3>Order Items</h3>
<ul>
{{range .Lines}}  <li>{{.Name}} - {{.Size}} x{{.Quantity}} = {{.Total}}</li>
{{end}}</ul>
<h3>Subtotal: {{.Subtotal}}</h3>
`

const customerBody = `<h2>Thanks for your order!</h2>
<p>Hi {{.Greeting}},</p>
<p>We have received your order and are processing it.</p>
<h3>Order Summary</h3>
<ul>
{{range .Lines}}  <li>{{.Name}} - {{.Size}} x{{.Quantity}} = {{.Total}}</li>
{{end}}</ul>
<p>Subtotal: {{.Subtotal}}</p>
<p>We will notify you once your order is shipped.</p>
<p>Thanks, <br/> Koolheads Team</p>
`

const receiptBody = `<div style="font-family:Arial,sans-serif;max-width:560px;margin:0 auto;border:1px solid #eee;padding:24px">
  <h2 style="margin-top:0">Payment Confirmed</h2>
  <p>Hi {{.Greeting}},</p>
  <p>Your payment was received successfully.</p>
  <p>Payment Reference: <strong>{{.Reference}}</strong></p>
  <table style="width:100%;border-collapse:collapse">
    <tr style="text-align:left;border-bottom:1px solid #eee"><th>Item</th><th>Size</th><th>Qty</th><th>Total</th></tr>
{{range .Lines}}    <tr><td>{{.Name}}</td><td>{{.Size}}</td><td>x{{.Quantity}}</td><td>{{.Total}}</td></tr>
{{end}}  </table>
  <p style="text-align:right"><strong>Subtotal: {{.Subtotal}}</strong></p>
  <p>We will notify you once your order is shipped.</p>
  <p>Thanks, <br/> Koolheads Team</p>
</div>
`

var (
	adminTmpl    = template.Must(template.New("admin").Parse(adminBody))
	customerTmpl = template.Must(template.New("customer").Parse(customerBody))
	receiptTmpl  = template.Must(template.New("receipt").Parse(receiptBody))
)

type lineView struct {
	Name     string
	Size     string
	Quantity int
	Total    string
}

type emailData struct {
	Contact   *domain.Contact
	Shipping  *domain.Shipping
	Recipient string
	Greeting  string
	Postal    string
	Lines     []lineView
	Subtotal  string
	Reference string
}

// ksh renders an amount the way the storefront does: plain number, no
// thousands separators, trailing zeros dropped.
func ksh(v float64) string {
	return "Ksh " + strconv.FormatFloat(v, 'f', -1, 64)
}

func newEmailData(o *domain.OrderPayload, reference string) (*emailData, error) {
	if o == nil || o.Contact == nil || o.Shipping == nil {
		return nil, errIncompleteOrder
	}
	lines := make([]lineView, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, lineView{
			Name:     it.Name,
			Size:     it.Size,
			Quantity: it.Quantity,
			Total:    ksh(it.Total()),
		})
	}
	postal := o.Shipping.Postal
	if postal == "" {
		postal = "N/A"
	}
	return &emailData{
		Contact:   o.Contact,
		Shipping:  o.Shipping,
		Recipient: o.Shipping.RecipientName(),
		Greeting:  o.Shipping.GreetingName(),
		Postal:    postal,
		Lines:     lines,
		// The footer echoes the client-supplied subtotal verbatim, even when
		// it disagrees with the sum of the line totals.
		Subtotal:  ksh(o.Subtotal),
		Reference: reference,
	}, nil
}

func render(t *template.Template, data *emailData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderAdminNotification builds the internal order notice. A non-empty
// reference marks the order as paid and is included in the body.
func RenderAdminNotification(o *domain.OrderPayload, reference string) (RenderedEmail, error) {
	data, err := newEmailData(o, reference)
	if err != nil {
		return RenderedEmail{}, err
	}
	html, err := render(adminTmpl, data)
	if err != nil {
		return RenderedEmail{}, err
	}
	return RenderedEmail{
		Subject: "New Order from " + o.Contact.Email,
		HTML:    html,
	}, nil
}

// RenderCustomerConfirmation builds the unpaid-intake autoresponse.
func RenderCustomerConfirmation(o *domain.OrderPayload) (RenderedEmail, error) {
	data, err := newEmailData(o, "")
	if err != nil {
		return RenderedEmail{}, err
	}
	html, err := render(customerTmpl, data)
	if err != nil {
		return RenderedEmail{}, err
	}
	return RenderedEmail{
		Subject: "Your Order Confirmation",
		HTML:    html,
	}, nil
}

// RenderPaymentReceipt builds the paid-flow customer receipt carrying the
// gateway reference.
func RenderPaymentReceipt(o *domain.OrderPayload, reference string) (RenderedEmail, error) {
	data, err := newEmailData(o, reference)
	if err != nil {
		return RenderedEmail{}, err
	}
	html, err := render(receiptTmpl, data)
	if err != nil {
		return RenderedEmail{}, err
	}
	return RenderedEmail{
		Subject: "Payment Confirmed",
		HTML:    html,
	}, nil
}
