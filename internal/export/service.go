package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fyang93/housing-ocr/internal/llm"
	"github.com/fyang93/housing-ocr/internal/repository"
)

// Service is a tiny façade over the document repository that produces XLSX
// bytes for exports.
type Service struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, logger: logger}
}

// ExportDocumentsXLSX returns an XLSX workbook (as bytes) covering every
// document. Extracted property fields land in their own columns; documents
// without extraction results still appear with their upload metadata.
func (s *Service) ExportDocumentsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	docs, err := s.docs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Uploaded At",
		"Filename",
		"Favorite",
		"OCR Status",
		"Extraction Status",
		"Model",
		"Property Name",
		"Property Type",
		"Address",
		"Price (10k JPY)",
		"Layout",
		"Exclusive Area (m2)",
		"Build Year",
		"Stations",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		var fields llm.PropertyFields
		if len(d.Properties) > 0 {
			if err := json.Unmarshal(d.Properties, &fields); err != nil {
				s.logger.Warn("export.properties_decode_error", "document_id", d.ID, "error", err)
			}
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.UploadedAt.Format("2006-01-02 15:04"))
		write(2, d.OriginalFilename)
		write(3, d.Favorite)
		write(4, d.OcrStatus)
		write(5, d.LlmStatus)
		if d.ExtractedModel != nil {
			write(6, *d.ExtractedModel)
		}
		writeString := func(col int, v *string) {
			if v != nil {
				write(col, *v)
			}
		}
		writeString(7, fields.PropertyName)
		writeString(8, fields.PropertyType)
		writeString(9, fields.Address)
		if fields.Price != nil {
			write(10, *fields.Price)
		}
		writeString(11, fields.RoomLayout)
		if fields.ExclusiveArea != nil {
			write(12, *fields.ExclusiveArea)
		}
		if fields.BuildYear != nil {
			write(13, *fields.BuildYear)
		}
		if len(fields.Stations) > 0 {
			parts := make([]string, 0, len(fields.Stations))
			for _, st := range fields.Stations {
				p := st.Name
				if st.WalkingMinutes != nil {
					p = fmt.Sprintf("%s (%d min)", st.Name, *st.WalkingMinutes)
				}
				parts = append(parts, p)
			}
			write(14, strings.Join(parts, ", "))
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.documents_xlsx",
		"rows", row-2,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
