package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"
)

// Export formats accepted by ExportService.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

type exportServiceImpl struct {
	logger zerolog.Logger
	tasks  TaskService
}

func NewExportService(logger zerolog.Logger, tasks TaskService) ExportService {
	return &exportServiceImpl{
		logger: logger,
		tasks:  tasks,
	}
}

func (s *exportServiceImpl) Export(format string) ([]byte, error) {
	tasks := s.tasks.Tasks()
	s.logger.Debug().
		Str("format", format).
		Int("count", len(tasks)).
		Msg("exporting tasks")

	switch strings.ToLower(format) {
	case FormatJSON:
		rows := make([]taskJSON, len(tasks))
		for i, task := range tasks {
			rows[i] = taskJSON{
				ID:        task.ID,
				Text:      task.Text,
				Completed: task.Completed,
			}
		}
		return json.MarshalIndent(rows, "", "  ")

	case FormatCSV:
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		_ = w.Write([]string{"id", "text", "completed"})
		for _, task := range tasks {
			_ = w.Write([]string{task.ID, task.Text, strconv.FormatBool(task.Completed)})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, fmt.Errorf("failed to write csv: %w", err)
		}
		return buf.Bytes(), nil

	case FormatPDF:
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Tasks")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 11)
		for _, task := range tasks {
			marker := "[ ]"
			if task.Completed {
				marker = "[x]"
			}
			pdf.MultiCell(0, 6, fmt.Sprintf("%s %s", marker, task.Text), "0", "L", false)
		}

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, fmt.Errorf("failed to render pdf: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExportFormat, format)
	}
}
