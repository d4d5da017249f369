package service

import (
	"fmt"
	"io"

	"github.com/fjod/go_checkout/domain"
)

// Sink receives the presentation data produced by a settled checkout.
// Implementations decide the output medium (console, log, UI).
type Sink interface {
	ShipmentPrepared(notice *domain.ShipmentNotice)
	ReceiptIssued(receipt *domain.Receipt)
}

// WriterSink renders receipts and shipment notices as plain text.
type WriterSink struct {
	W io.Writer
}

func (s *WriterSink) ShipmentPrepared(notice *domain.ShipmentNotice) {
	fmt.Fprintln(s.W, "** Shipment notice **")
	for _, l := range notice.Lines {
		fmt.Fprintf(s.W, "%s\t%.0fg\n", l.Label, l.WeightGrams)
	}
	fmt.Fprintf(s.W, "Total package weight %.1fkg\n\n", notice.TotalWeightKg())
}

func (s *WriterSink) ReceiptIssued(r *domain.Receipt) {
	fmt.Fprintln(s.W, "** Checkout receipt **")
	for _, l := range r.Lines {
		fmt.Fprintf(s.W, "%dx %s\t%s\n", l.Quantity, l.Name, l.Total)
	}
	fmt.Fprintln(s.W, "----------------------")
	fmt.Fprintf(s.W, "Subtotal\t%s\n", r.Subtotal)
	fmt.Fprintf(s.W, "Shipping\t%s\n", r.ShippingCost)
	fmt.Fprintf(s.W, "Amount\t\t%s\n", r.Total)
	fmt.Fprintf(s.W, "Current Balance\t%s\n\n", r.Balance)
}
