// Package export produces XLSX workbooks from verification results.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/entity"
	"github.com/medassure/bill-verifier/internal/repository"
)

// Service is a tiny façade over the upload repository that renders one
// bill's verification outcome as an XLSX workbook.
type Service struct {
	repo   repository.UploadRepository
	logger *slog.Logger
}

func NewService(repo repository.UploadRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportVerificationXLSX returns the workbook bytes for uploadID. The
// record must have a completed verification.
func (s *Service) ExportVerificationXLSX(ctx context.Context, uploadID string) ([]byte, error) {
	start := time.Now()

	rec, err := s.repo.GetByID(ctx, uploadID)
	if err != nil {
		return nil, err
	}
	if len(rec.VerificationResult) == 0 {
		return nil, fmt.Errorf("upload %s has no verification result", uploadID)
	}
	var res entity.VerificationResult
	if err := json.Unmarshal(rec.VerificationResult, &res); err != nil {
		return nil, fmt.Errorf("decode verification result: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Verification"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Category",
		"Item",
		"Status",
		"Billed (₹)",
		"Allowed (₹)",
		"Extra (₹)",
		"Failure Reason",
		"Best Candidate",
		"Similarity",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for _, cat := range res.Categories {
		for _, item := range cat.Items {
			if item.Status == constants.ItemStatusIgnoredArtifact {
				continue
			}
			write(1, cat.CategoryName)
			write(2, item.ItemName)
			write(3, string(item.Status))
			write(4, item.BillAmount)
			switch item.Status {
			case constants.ItemStatusGreen, constants.ItemStatusRed:
				write(5, item.AllowedAmount)
				write(6, item.ExtraAmount)
			default:
				write(5, "N/A")
				write(6, "N/A")
				if item.FailureReason != nil {
					write(7, string(*item.FailureReason))
				}
				if item.BestCandidate != nil {
					write(8, item.BestCandidate.ItemName)
					write(9, item.BestCandidate.Semantic)
				}
			}
			row++
		}
	}

	// Totals block under the item table.
	row++
	write(1, "Totals")
	write(4, res.Totals.Bill)
	write(5, res.Totals.Allowed)
	write(6, res.Totals.Extra)
	row++
	write(1, "Unclassified")
	write(4, res.Totals.Unclassified)
	row++
	write(1, "Balanced")
	write(4, res.FinancialsBalanced)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("export.xlsx_ok",
		"upload_id", uploadID,
		"rows", row,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
