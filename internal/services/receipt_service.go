package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"vahanpe/internal/domain/models"
	"vahanpe/internal/utils"
)

// ReceiptService renders the downloadable PDF receipt for a booking.
type ReceiptService struct {
	RequestID string
}

func (s ReceiptService) Generate(b models.Booking) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "receipt", "generate", "booking_id="+b.BookingID)
	return buildReceiptPDF(b)
}

func buildReceiptPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "VAHANPE BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Receipt No : RCT-"+b.BookingID)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Name       : %s", fallback(b.CustomerName, "-")),
		fmt.Sprintf("Phone      : %s", fallback(b.CustomerPhone, "-")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	detail := []string{
		fmt.Sprintf("Booking ID : %s", b.BookingID),
		fmt.Sprintf("Category   : %s", b.ServiceType),
		fmt.Sprintf("Service    : %s", b.ServiceSelected),
		fmt.Sprintf("Status     : %s", string(b.Status)),
	}
	if b.RegistrationNumber != "" {
		detail = append(detail, fmt.Sprintf("Vehicle No : %s", b.RegistrationNumber))
	}
	if b.LicenceClass != "" {
		detail = append(detail, fmt.Sprintf("DL Class   : %s", b.LicenceClass))
	}
	for _, l := range detail {
		pdf.Cell(0, 6, l)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Amount Paid: "+utils.FormatINR(b.Price))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt covers the service booking fee. Government/RTO charges, where applicable, are collected separately.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(b.BookingID))
	return buf.Bytes(), filename, nil
}

func fallback(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
