package documents

import (
	"bytes"
	"fmt"
	"strings"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

// QuotePDF renders the customer offer ("Ponuda") with the core Helvetica
// font. Core fonts are cp1252, so Serbian letters outside it are
// transliterated first.
type QuotePDF struct {
	studio   string
	currency string
}

var _ interfaces.IQuoteRenderer = (*QuotePDF)(nil)

func NewQuotePDF(studio, currency string) *QuotePDF {
	return &QuotePDF{studio: studio, currency: currency}
}

var latinFold = strings.NewReplacer(
	"č", "c", "ć", "c", "Č", "C", "Ć", "C", "đ", "dj", "Đ", "Dj",
	"×", "x",
)

var modelLabels = map[entities.ModelType]string{
	entities.ModelSingle:    "Jednostrani",
	entities.ModelDouble:    "Dvostrani",
	entities.Model3DLetters: "3D slova",
}

func (g *QuotePDF) RenderQuote(doc interfaces.QuoteDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(latinFold.Replace(s)) }

	pdf.SetTitle(text("Ponuda "+doc.Number), false)
	pdf.SetAuthor(text(g.studio), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, text("Ponuda - "+g.studio))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, text(fmt.Sprintf("Broj %s od %s", doc.Number, doc.CreatedAt.Format("02.01.2006"))))
	pdf.Ln(10)

	cfg := doc.Configuration
	b := doc.Quote.Breakdown
	led := "Ne"
	if cfg.HasLED {
		led = "Da"
		if cfg.LEDType != "" {
			led += " (" + string(cfg.LEDType) + ")"
		}
	}

	rows := [][2]string{
		{"Dimenzije:", fmt.Sprintf("%g mm x %g mm", cfg.WidthMM, cfg.HeightMM)},
		{"Povrsina:", fmt.Sprintf("%.4f m2", b.AreaM2)},
		{"Materijal:", doc.Material.Name},
		{"Model:", modelLabels[cfg.ModelType]},
		{"LED osvetljenje:", led},
	}
	for _, r := range rows {
		g.row(pdf, text, r[0], r[1])
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, text("Obracun"))
	pdf.Ln(8)

	money := [][2]string{
		{"Materijal:", g.amount(b.MaterialCost)},
		{"Model (x" + fmt.Sprintf("%g", b.ModelMultiplier) + "):", g.amount(b.ModelSubtotal)},
		{"LED:", g.amount(b.LEDCost)},
		{"Medjuzbir:", g.amount(b.Subtotal)},
	}
	if b.MinimumApplied {
		money = append(money, [2]string{"Minimalna porudzbina:", g.amount(b.MinimumOrder)})
	}
	for _, r := range money {
		g.row(pdf, text, r[0], r[1])
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(60, 8, text("Procenjena cena:"))
	pdf.Cell(0, 8, text(g.amount(doc.Quote.Price)))
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 5, text("Hvala što koristite naš konfigurator. Kontaktiraćemo vas u najkraćem mogućem roku."), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote %s: %w", doc.Number, err)
	}
	return buf.Bytes(), nil
}

func (g *QuotePDF) row(pdf *gofpdf.Fpdf, text func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(60, 7, text(label))
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, text(value))
	pdf.Ln(7)
}

func (g *QuotePDF) amount(v float64) string {
	return fmt.Sprintf("%s %s", groupThousands(v), g.currency)
}

// groupThousands formats a whole amount with dot separators (12.400), the
// way prices are written in Serbian.
func groupThousands(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
