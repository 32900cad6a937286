package documents

import (
	"fmt"

	"laserwood/internal/domain/entities"
	"laserwood/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const inquirySheet = "Upiti"

var inquiryHeader = []any{
	"ID", "Datum", "Status", "Kupac", "Email", "Telefon", "Materijal",
	"Sirina (mm)", "Visina (mm)", "Model", "LED", "LED tip", "Cena", "Poruka",
}

// InquiryExcel exports inquiries as a single-sheet workbook.
type InquiryExcel struct{}

var _ interfaces.IInquiryExporter = (*InquiryExcel)(nil)

func NewInquiryExcel() *InquiryExcel { return &InquiryExcel{} }

func (InquiryExcel) ExportInquiries(list []entities.Inquiry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", inquirySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(inquirySheet, "A1", &inquiryHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(inquirySheet, 1, 1, bold); err != nil {
		return nil, err
	}

	for idx, i := range list {
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			i.ID,
			i.CreatedAt.Format("2006-01-02 15:04"),
			string(i.Status),
			i.CustomerName,
			i.CustomerEmail,
			i.CustomerPhone,
			i.MaterialName,
			i.WidthMM,
			i.HeightMM,
			string(i.ModelType),
			yesNo(i.HasLED),
			string(i.LEDType),
			i.CalculatedPrice,
			i.Message,
		}
		if err := f.SetSheetRow(inquirySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write inquiry %s: %w", i.ID, err)
		}
	}

	if err := f.SetPanes(inquirySheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "da"
	}
	return "ne"
}
