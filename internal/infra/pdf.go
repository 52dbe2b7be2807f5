package infra

// pdf.go — contract PDF generation using go-pdf/fpdf. The legal text is
// rendered upstream (documento.Render); this file only lays the final
// text out on A4 pages. The PDF is the archived artifact attached to the
// contract after signing.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

// GenerateContratoPDF writes the rendered legal text of a contract to
// storagePath/contrato_{id}.pdf and returns the file name (relative to
// storagePath).
func GenerateContratoPDF(contratoID uint, texto string, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("contrato_%d.pdf", contratoID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// fpdf core fonts are cp1252; the legal text is UTF-8 Portuguese.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	// Paragraphs are separated by blank lines; the first paragraph is the
	// title and gets the bold treatment.
	paragrafos := strings.Split(texto, "\n\n")
	for i, p := range paragrafos {
		if i == 0 {
			pdf.SetFont("Helvetica", "B", 13)
			pdf.MultiCell(contentW, 7, tr(p), "", "C", false)
			pdf.Ln(4)
			continue
		}
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(contentW, 5.5, tr(p), "", "J", false)
		pdf.Ln(3)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return fileName, nil
}
