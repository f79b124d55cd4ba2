package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/lshigami/InterviewBuddy/internal/model"
	"github.com/rs/zerolog/log"
)

var csvHeader = []string{
	"question", "answer", "score", "feedback", "reasoning",
	"tags", "improvements", "topic", "difficulty", "type",
}

type ExportService interface {
	JSON(summary *model.Summary, rows []model.AnswerRow) ([]byte, error)
	CSV(rows []model.AnswerRow) ([]byte, error)
	PDF(summary *model.Summary, rows []model.AnswerRow) ([]byte, error)
	// PDFAvailable reports whether the PDF renderer works in this build;
	// when false the export surfaces as a disabled feature, not an error.
	PDFAvailable() bool
}

type exportService struct {
	pdfAvailable bool
	now          func() time.Time
}

func NewExportService() ExportService {
	s := &exportService{now: time.Now}
	s.pdfAvailable = probePDF()
	if !s.pdfAvailable {
		log.Warn().Msg("PDF renderer unavailable; PDF export disabled")
	}
	return s
}

// probePDF renders a one-cell document once at startup so a broken renderer
// shows up as a disabled capability instead of a per-request failure.
func probePDF() bool {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, "probe", "", 1, "L", false, 0, "")
	var buf bytes.Buffer
	return pdf.Output(&buf) == nil && buf.Len() > 0
}

type jsonExport struct {
	GeneratedAt string           `json:"generated_at"`
	Summary     *model.Summary   `json:"summary"`
	QA          []model.AnswerRow `json:"qa"`
}

func (s *exportService) JSON(summary *model.Summary, rows []model.AnswerRow) ([]byte, error) {
	payload := jsonExport{
		GeneratedAt: s.now().UTC().Format("2006-01-02T15:04:05.000000") + "Z",
		Summary:     summary,
		QA:          rows,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling session export: %w", err)
	}
	return data, nil
}

func (s *exportService) CSV(rows []model.AnswerRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Question,
			row.Answer,
			strconv.FormatFloat(row.Score, 'f', -1, 64),
			row.Feedback,
			row.Reasoning,
			strings.Join(row.Tags, ", "),
			strings.Join(row.Improvements, "; "),
			row.Topic,
			row.Difficulty,
			row.Type,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *exportService) PDF(summary *model.Summary, rows []model.AnswerRow) ([]byte, error) {
	if !s.pdfAvailable {
		return nil, fmt.Errorf("pdf export is unavailable")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// cp1252 translator substitutes every character outside the page encoding
	// instead of failing the export.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, "Interview Summary Report", "", 1, "C", false, 0, "")
		pdf.Ln(4)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if summary != nil && summary.OverallScore != nil {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Overall Score: %.1f", *summary.OverallScore)), "", 1, "L", false, 0, "")
		pdf.Ln(5)
	}

	writeSection := func(title string, items []string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		for _, item := range items {
			pdf.MultiCell(0, 6, tr("- "+item), "", "L", false)
		}
		pdf.Ln(5)
	}

	if summary != nil {
		writeSection("Strengths", summary.Strengths)
		writeSection("Areas to Improve", summary.Improvements)
		writeSection("Suggested Resources", summary.Resources)
	}

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Per-question Feedback", "", 1, "L", false, 0, "")
	pdf.Ln(5)

	for i, row := range rows {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Q%d: %s", i+1, row.Question)), "", "L", false)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr("Answer: "+row.Answer), "", "L", false)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Score: %.1f", row.Score)), "", "L", false)
		if row.Feedback != "" {
			pdf.MultiCell(0, 6, tr("Feedback: "+row.Feedback), "", "L", false)
		}
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *exportService) PDFAvailable() bool {
	return s.pdfAvailable
}
