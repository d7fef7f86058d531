package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/printer"
)

// PrinterService renders receipts and kitchen tickets as ESC/POS and
// sends them to the configured thermal printer.
type PrinterService struct {
	printer     printer.Printer
	saleRepo    repository.SaleRepository
	kitchenRepo repository.KitchenRepository
	printerType string
	storeName   string
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	p printer.Printer,
	saleRepo repository.SaleRepository,
	kitchenRepo repository.KitchenRepository,
	printerType string,
	storeName string,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		saleRepo:    saleRepo,
		kitchenRepo: kitchenRepo,
		printerType: printerType,
		storeName:   storeName,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReceipt renders the customer receipt for a sale and sends it to
// the printer. When no printer is configured the rendering still runs,
// so formatting errors surface in development.
func (s *PrinterService) PrintReceipt(ctx context.Context, saleID uuid.UUID) error {
	sale, err := s.saleRepo.GetWithDetails(ctx, saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFound("Sale")
	}

	doc := printer.NewDocument(32)
	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		Text(s.storeName).
		SetFontSize(printer.FontNormal).
		Text(fmt.Sprintf("Ticket %s", sale.TicketNo)).
		Text(sale.CreatedAt.Format("02/01/2006 15:04")).
		SetAlign(printer.AlignLeft).
		Separator('-')

	for _, item := range sale.Items {
		doc.ItemLine(item.Quantity, item.Product.Name, fmtUSD(item.TotalUSD))
	}

	doc.Separator('-').
		SetBold(true).
		KeyValue("TOTAL USD", fmtUSD(sale.TotalNetUSD)).
		KeyValue("TOTAL CDF", fmt.Sprintf("%d FC", sale.TotalCDF)).
		SetBold(false).
		KeyValue("Paiement", string(sale.PaymentMethod))

	if sale.PointsUsed > 0 {
		doc.KeyValue("Points utilises", fmt.Sprintf("%d", sale.PointsUsed))
	}
	if sale.PointsEarned > 0 {
		doc.KeyValue("Points gagnes", fmt.Sprintf("%d", sale.PointsEarned))
	}

	doc.FeedLines(1).
		SetAlign(printer.AlignCenter).
		Text("Merci et a bientot !").
		FeedLines(3).
		Cut()

	return s.send(doc.Bytes(), "receipt", sale.TicketNo)
}

// PrintKitchenTicket renders the kitchen ticket: food lines only, no
// prices.
func (s *PrinterService) PrintKitchenTicket(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.kitchenRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFound("Kitchen order")
	}
	sale := order.Sale
	if sale == nil {
		return apperror.NewNotFound("Sale")
	}

	doc := printer.NewDocument(32)
	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		Text("CUISINE").
		SetFontSize(printer.FontNormal).
		Text(fmt.Sprintf("Ticket %s", sale.TicketNo)).
		Text(string(sale.OrderType)).
		SetAlign(printer.AlignLeft).
		Separator('=')

	for _, item := range sale.Items {
		if item.Product.Type != enum.ProductTypeFood {
			continue
		}
		doc.ItemLine(item.Quantity, item.Product.Name, "")
	}

	doc.Separator('=').
		FeedLines(3).
		Cut()

	return s.send(doc.Bytes(), "kitchen ticket", sale.TicketNo)
}

func (s *PrinterService) send(data []byte, kind, ticketNo string) error {
	if !s.printer.IsConnected() {
		log.Printf("Printer not connected, %s for %s not printed", kind, ticketNo)
		return nil
	}
	if err := s.printer.Print(data); err != nil {
		return apperror.New(apperror.KindInternal, fmt.Sprintf("Failed to print %s: %v", kind, err))
	}
	return nil
}

func fmtUSD(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
