package service

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"restaurant-digital/restaurant-svc/internal/domain"
)

const receiptTitle = "Restaurant Digital"

type ReceiptLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

type Receipt struct {
	OrderID     int64                  `json:"order_id"`
	TableNumber string                 `json:"table_number"`
	Timestamp   string                 `json:"timestamp"`
	Status      domain.OrderStatus     `json:"status"`
	Fulfillment domain.FulfillmentType `json:"fulfillment"`
	Phone       string                 `json:"phone"`
	Address     string                 `json:"address,omitempty"`
	Lines       []ReceiptLine          `json:"lines"`
	Total       int64                  `json:"total"`
}

// BuildReceipt has no side effects; the same order always yields the same
// receipt.
func BuildReceipt(order domain.Order) Receipt {
	r := Receipt{
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Timestamp:   order.Timestamp,
		Status:      order.Status,
		Fulfillment: order.Fulfillment,
		Phone:       order.PaymentPhone,
		Total:       order.Total,
		Lines:       make([]ReceiptLine, 0, len(order.Items)),
	}
	if order.DeliveryLocation != nil {
		r.Address = order.DeliveryLocation.Address
	}
	for _, line := range order.Items {
		r.Lines = append(r.Lines, ReceiptLine{
			Name:      line.Item.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Item.Price,
			Subtotal:  line.Subtotal(),
		})
	}
	return r
}

// FormatAmount renders an amount with French digit grouping, e.g. "5 100 FCFA".
func FormatAmount(amount int64) string {
	return message.NewPrinter(language.French).Sprintf("%d FCFA", amount)
}

// Text renders the receipt as a printable plain-text document.
func (r Receipt) Text() string {
	var b strings.Builder
	rule := strings.Repeat("-", 40)

	fmt.Fprintln(&b, receiptTitle)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Commande #%d\n", r.OrderID)
	fmt.Fprintf(&b, "%s - %s\n", r.TableNumber, r.Timestamp)
	fmt.Fprintf(&b, "Statut: %s\n", r.Status)
	if r.Fulfillment == domain.FulfillmentDelivery {
		fmt.Fprintln(&b, "Mode: livraison")
	} else {
		fmt.Fprintln(&b, "Mode: sur place")
	}
	if r.Address != "" {
		fmt.Fprintf(&b, "Adresse: %s\n", r.Address)
	}
	fmt.Fprintf(&b, "Paiement mobile: %s\n", r.Phone)
	fmt.Fprintln(&b, rule)
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "%dx %s\n", line.Quantity, line.Name)
		fmt.Fprintf(&b, "   %s x %d = %s\n", FormatAmount(line.UnitPrice), line.Quantity, FormatAmount(line.Subtotal))
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Total: %s\n", FormatAmount(r.Total))
	return b.String()
}
