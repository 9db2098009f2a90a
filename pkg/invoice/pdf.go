package invoice

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
)

type Line struct {
	Title  string
	Type   string
	Amount float64
}

type Data struct {
	PaymentID     string
	CustomerName  string
	CustomerEmail string
	Lines         []Line
	Total         float64
	Date          time.Time
}

// Generator renders itemized PDF invoices into a server-local directory,
// one file per payment id.
type Generator struct {
	dir string
}

func NewGenerator(dir string) (*Generator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create invoices dir: %w", err)
	}
	return &Generator{dir: dir}, nil
}

// Generate writes the invoice PDF to disk and returns its path together
// with the rendered bytes for the email attachment.
func (g *Generator) Generate(data Data) (string, []byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "Invoice")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Payment ID: %s", data.PaymentID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", data.Date.Format("02 Jan 2006")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Billed to: %s <%s>", data.CustomerName, data.CustomerEmail))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(110, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Type", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range data.Lines {
		pdf.CellFormat(110, 8, line.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, line.Type, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", line.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", data.Total), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", nil, fmt.Errorf("failed to render invoice: %w", err)
	}

	path := filepath.Join(g.dir, data.PaymentID+".pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", nil, fmt.Errorf("failed to write invoice: %w", err)
	}

	return path, buf.Bytes(), nil
}
