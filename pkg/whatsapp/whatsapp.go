// Package whatsapp builds wa.me deep links that hand a conversation to the
// bakery's WhatsApp number with a pre-filled message.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Link returns a wa.me URL that opens a chat with phone and the given text
// pre-filled. phone is digits only, country code included. Spaces are
// percent-encoded; wa.me renders "+" literally.
func Link(phone string, text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, escaped)
}

// OrderLine is one cart entry rendered into the order message.
type OrderLine struct {
	Name     string
	Quantity int
	Total    int // line total in whole rupees
	Size     string
	Flavor   string
	Message  string
}

// OrderMessageParams carries everything the checkout message needs.
type OrderMessageParams struct {
	BakeryName          string
	OrderID             string
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	Items               []OrderLine
	Subtotal            int
	DeliveryFee         int
	Total               int
	DeliveryDate        string
	DeliveryTime        string
	DeliveryAddress     string
	SpecialInstructions string
}

// OrderMessage renders the checkout confirmation text sent to the bakery.
func OrderMessage(p OrderMessageParams) string {
	var lines []string
	for _, item := range p.Items {
		text := fmt.Sprintf("• %s (%dx) - ₹%d", item.Name, item.Quantity, item.Total)
		if item.Size != "" {
			text += fmt.Sprintf("\n  Size: %s", item.Size)
		}
		if item.Flavor != "" {
			text += fmt.Sprintf("\n  Flavor: %s", item.Flavor)
		}
		if item.Message != "" {
			text += fmt.Sprintf("\n  Message: %q", item.Message)
		}
		lines = append(lines, text)
	}

	phone := p.CustomerPhone
	if phone == "" {
		phone = "Not provided"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎂 *New Order from %s*\n\n", p.BakeryName)
	fmt.Fprintf(&b, "*Order ID:* %s\n\n", p.OrderID)
	fmt.Fprintf(&b, "*Customer Details:*\nName: %s\nEmail: %s\nPhone: %s\n\n", p.CustomerName, p.CustomerEmail, phone)
	fmt.Fprintf(&b, "*Order Items:*\n%s\n\n", strings.Join(lines, "\n\n"))
	fmt.Fprintf(&b, "*Order Summary:*\nSubtotal: ₹%d\nDelivery Fee: ₹%d\n*Total: ₹%d*\n\n", p.Subtotal, p.DeliveryFee, p.Total)
	fmt.Fprintf(&b, "*Delivery Details:*\n📅 Date: %s\n⏰ Time: %s\n📍 Address: %s\n", p.DeliveryDate, p.DeliveryTime, p.DeliveryAddress)
	if p.SpecialInstructions != "" {
		fmt.Fprintf(&b, "\n*Special Instructions:*\n%s\n", p.SpecialInstructions)
	}
	b.WriteString("\nPlease confirm this order and provide the estimated preparation time.")
	return b.String()
}

// InquiryParams describes a single cake a customer asks about before checkout.
type InquiryParams struct {
	CakeName      string
	Size          string
	Serves        string
	Flavor        string
	Quantity      int
	Total         int
	CustomMessage string
}

// InquiryMessage renders a pre-purchase question about one cake.
func InquiryMessage(p InquiryParams) string {
	var b strings.Builder
	b.WriteString("🎂 *Cake Order Details*\n\n")
	fmt.Fprintf(&b, "*Cake:* %s\n", p.CakeName)
	if p.Serves != "" {
		fmt.Fprintf(&b, "*Size:* %s (%s)\n", p.Size, p.Serves)
	} else {
		fmt.Fprintf(&b, "*Size:* %s\n", p.Size)
	}
	fmt.Fprintf(&b, "*Flavor:* %s\n", p.Flavor)
	fmt.Fprintf(&b, "*Quantity:* %d\n", p.Quantity)
	fmt.Fprintf(&b, "*Total Price:* ₹%d\n", p.Total)
	if p.CustomMessage != "" {
		fmt.Fprintf(&b, "*Custom Message:* %s\n", p.CustomMessage)
	}
	b.WriteString("\nI'd like to place this order. Please confirm availability and delivery details.")
	return b.String()
}

// ReorderMessage renders a repeat-order request for a past order.
func ReorderMessage(orderID string, items []OrderLine) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (%dx)", item.Name, item.Quantity))
	}
	return fmt.Sprintf("Hi! I'd like to reorder: %s. Order ID: %s", strings.Join(parts, ", "), orderID)
}
