package domain

import (
	"errors"
	"strings"
)

var ErrInvalidOrder = errors.New("invalid order data")

type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	FullName string `json:"fullName,omitempty"`
}

type Shipping struct {
	Country        string `json:"country"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	FullName       string `json:"fullName,omitempty"`
	Address        string `json:"address"`
	Apartment      string `json:"apartment,omitempty"`
	City           string `json:"city"`
	Postal         string `json:"postal,omitempty"`
	ShippingMethod string `json:"shippingMethod,omitempty"`
}

type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
}

// OrderPayload is the checkout request body. Contact and Shipping are pointers
// so that an absent section is distinguishable from an empty one.
type OrderPayload struct {
	Contact  *Contact   `json:"contact"`
	Shipping *Shipping  `json:"shipping"`
	Items    []LineItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

// Validate checks presence only: contact, shipping and at least one item.
// Field formats, numeric ranges and the subtotal are trusted as sent by the
// checkout UI; the subtotal is never recomputed server-side.
func (o *OrderPayload) Validate() error {
	if o == nil || o.Contact == nil || o.Shipping == nil || len(o.Items) == 0 {
		return ErrInvalidOrder
	}
	return nil
}

func (i LineItem) Total() float64 {
	return i.Price * float64(i.Quantity)
}

// RecipientName is the full shipping name, whichever form the checkout sent.
func (s *Shipping) RecipientName() string {
	if s.FullName != "" {
		return s.FullName
	}
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// GreetingName is the short form used to address the customer in emails.
func (s *Shipping) GreetingName() string {
	if s.FirstName != "" {
		return s.FirstName
	}
	return s.FullName
}
