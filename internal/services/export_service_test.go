package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasks/internal/testutil"
)

func newExportFixture(t *testing.T) ExportService {
	t.Helper()

	tasks := newTestService(t, testutil.NewFakeSlot())
	tasks.Add("buy milk")
	list := tasks.Add("walk dog")
	tasks.ToggleCompletion(list[1].ID)

	return NewExportService(zerolog.Nop(), tasks)
}

func TestExportService_JSON(t *testing.T) {
	export := newExportFixture(t)

	data, err := export.Export(FormatJSON)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	var rows []taskJSON
	if err = json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Text != "buy milk" || rows[0].Completed {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Text != "walk dog" || !rows[1].Completed {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestExportService_CSV(t *testing.T) {
	export := newExportFixture(t)

	data, err := export.Export(FormatCSV)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected a header and 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "id,text,completed" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], ",buy milk,false") {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], ",walk dog,true") {
		t.Errorf("unexpected second row %q", lines[2])
	}
}

func TestExportService_PDF(t *testing.T) {
	export := newExportFixture(t)

	data, err := export.Export(FormatPDF)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected a pdf document, got %q", data[:min(len(data), 8)])
	}
}

func TestExportService_FormatIsCaseInsensitive(t *testing.T) {
	export := newExportFixture(t)

	if _, err := export.Export("JSON"); err != nil {
		t.Fatalf("Export: %v", err)
	}
}

func TestExportService_UnknownFormat(t *testing.T) {
	export := newExportFixture(t)

	_, err := export.Export("xml")
	if !errors.Is(err, ErrUnknownExportFormat) {
		t.Fatalf("expected ErrUnknownExportFormat, got %v", err)
	}
}
