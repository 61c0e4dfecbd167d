package booking

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"aurumdrive/globals"
	"aurumdrive/models"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// qrPayload returns a signed payload: bookingID|vehicleID|from|to|signature.
// Pickup staff scan it to confirm the voucher was issued here.
func qrPayload(b models.Booking) string {
	data := fmt.Sprintf("%s|%s|%s|%s", b.ID, b.VehicleID, b.From, b.To)
	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// RenderVoucher produces the downloadable PDF confirmation with an embedded
// QR code.
func RenderVoucher(b models.Booking, v models.Vehicle, guestName string) ([]byte, error) {
	qrPNG, err := qrcode.Encode(qrPayload(b), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "AurumDrive Booking Voucher")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Reference: %s", b.ID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Guest: %s", guestName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Vehicle: %s %s", v.Brand, v.Model))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Dates: %s to %s", b.From, b.To))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Pickup: %s", b.Location))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Daily rate: %.0f", v.PricePerDay))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
