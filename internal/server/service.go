// Package server exposes the processing core over gRPC. Handlers
// validate, call the store or acceptance path, and map errors; they never
// run OCR or extraction synchronously. The one exception is the explicit
// re-verify operation, which reuses the worker's verify path on an
// already-extracted bill.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	billsv1 "github.com/medassure/bill-verifier/gen/bills/v1"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/catalog"
	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/entity"
	"github.com/medassure/bill-verifier/internal/export"
	"github.com/medassure/bill-verifier/internal/pipeline"
	"github.com/medassure/bill-verifier/internal/render"
	"github.com/medassure/bill-verifier/internal/repository"
)

// Reverifier re-runs verification on a stored bill; satisfied by
// *pipeline.Worker.
type Reverifier interface {
	VerifyStored(ctx context.Context, uploadID string) error
}

type BillsService struct {
	billsv1.UnimplementedBillsServiceServer

	repo       repository.UploadRepository
	uploads    *pipeline.Service
	reverifier Reverifier
	exporter   *export.Service
	catalog    *catalog.Store
	logger     *slog.Logger
}

func NewBillsService(
	repo repository.UploadRepository,
	uploads *pipeline.Service,
	reverifier Reverifier,
	exporter *export.Service,
	catalogStore *catalog.Store,
	logger *slog.Logger,
) *BillsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BillsService{
		repo:       repo,
		uploads:    uploads,
		reverifier: reverifier,
		exporter:   exporter,
		catalog:    catalogStore,
		logger:     logger,
	}
}

func (s *BillsService) SubmitUpload(ctx context.Context, req *billsv1.SubmitUploadRequest) (*billsv1.SubmitUploadResponse, error) {
	res, err := s.uploads.SubmitUpload(ctx, pipeline.SubmitParams{
		Bytes:           req.GetPdf(),
		Filename:        req.GetFilename(),
		EmployeeID:      req.GetEmployeeId(),
		HospitalName:    req.GetHospitalName(),
		ClientRequestID: req.GetClientRequestId(),
		InvoiceDate:     req.GetInvoiceDate(),
	})
	if err != nil {
		s.logger.Warn("server.submit_upload_failed", "error", err)
		return nil, common.ToGRPCError(err)
	}
	rec := res.Record
	out := &billsv1.SubmitUploadResponse{
		UploadId:         rec.UploadID,
		Status:           string(rec.Status),
		QueuePosition:    int32(rec.QueuePosition),
		OriginalFilename: rec.OriginalFilename,
		FileSizeBytes:    rec.FileSizeBytes,
		Existing:         res.Existing,
	}
	if rec.PageCount != nil {
		out.PageCount = int32(*rec.PageCount)
	}
	return out, nil
}

func (s *BillsService) GetStatus(ctx context.Context, req *billsv1.GetStatusRequest) (*billsv1.GetStatusResponse, error) {
	rec, err := s.repo.GetByID(ctx, req.GetUploadId())
	if err != nil {
		return nil, common.ToGRPCError(err)
	}
	out := &billsv1.GetStatusResponse{
		UploadId:           rec.UploadID,
		Status:             string(rec.Status),
		VerificationStatus: string(rec.VerificationStatus),
		ProcessingStage:    rec.ProcessingStage(),
		QueuePosition:      int32(rec.QueuePosition),
		UpdatedAt:          rec.UpdatedAt.Format(time.RFC3339Nano),
	}
	if rec.ErrorMessage != nil {
		out.ErrorMessage = *rec.ErrorMessage
	}
	return out, nil
}

func (s *BillsService) ListBills(ctx context.Context, req *billsv1.ListBillsRequest) (*billsv1.ListBillsResponse, error) {
	parseDate := func(v string) (*time.Time, error) {
		if v == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", v, err)
		}
		return &t, nil
	}
	from, err := parseDate(req.GetFromDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	to, err := parseDate(req.GetToDate())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	recs, err := s.repo.List(ctx, repository.ListFilter{
		Scope:        req.GetScope(),
		Status:       constants.UploadStatus(req.GetStatus()),
		HospitalName: req.GetHospitalName(),
		From:         from,
		To:           to,
		Limit:        int(req.GetLimit()),
	})
	if err != nil {
		s.logger.Warn("server.list_bills_failed", "error", err)
		return nil, common.ToGRPCError(err)
	}

	out := make([]*billsv1.BillSummary, 0, len(recs))
	for _, r := range recs {
		b := &billsv1.BillSummary{
			UploadId:           r.UploadID,
			EmployeeId:         r.EmployeeID,
			HospitalName:       r.HospitalName,
			OriginalFilename:   r.OriginalFilename,
			Status:             string(r.Status),
			VerificationStatus: string(r.VerificationStatus),
			QueuePosition:      int32(r.QueuePosition),
			CreatedAt:          r.CreatedAt.Format(time.RFC3339Nano),
			UpdatedAt:          r.UpdatedAt.Format(time.RFC3339Nano),
		}
		if r.Bill != nil {
			b.GrandTotal = r.Bill.GrandTotal
		}
		if r.InvoiceDate != nil {
			b.InvoiceDate = r.InvoiceDate.Format("2006-01-02")
		}
		out = append(out, b)
	}
	return &billsv1.ListBillsResponse{Bills: out}, nil
}

func (s *BillsService) GetBillDetails(ctx context.Context, req *billsv1.GetBillDetailsRequest) (*billsv1.GetBillDetailsResponse, error) {
	rec, err := s.repo.GetByID(ctx, req.GetUploadId())
	if err != nil {
		return nil, common.ToGRPCError(err)
	}
	if rec.Bill == nil {
		return nil, common.ToGRPCError(fmt.Errorf("%w: upload %s has no extracted bill yet", common.ErrNotReady, rec.UploadID))
	}

	billJSON, err := json.Marshal(rec.Bill)
	if err != nil {
		return nil, common.InternalError("encode bill")
	}
	out := &billsv1.GetBillDetailsResponse{
		UploadId:           rec.UploadID,
		Status:             string(rec.Status),
		VerificationStatus: string(rec.VerificationStatus),
		BillJson:           string(billJSON),
		ExtractionWarnings: rec.Bill.ExtractionWarnings,
	}
	if len(rec.VerificationResult) > 0 {
		out.VerificationResultJson = string(rec.VerificationResult)
		if req.GetDebug() {
			var res entity.VerificationResult
			if err := json.Unmarshal(rec.VerificationResult, &res); err == nil {
				out.VerificationResultText = render.Debug(&res)
			}
		} else if rec.VerificationResultText != nil {
			out.VerificationResultText = *rec.VerificationResultText
		}
	}
	return out, nil
}

func (s *BillsService) PatchLineItems(ctx context.Context, req *billsv1.PatchLineItemsRequest) (*billsv1.PatchLineItemsResponse, error) {
	rec, err := s.repo.GetByID(ctx, req.GetUploadId())
	if err != nil {
		return nil, common.ToGRPCError(err)
	}
	if rec.Bill == nil {
		return nil, common.ToGRPCError(fmt.Errorf("%w: upload %s has no extracted bill yet", common.ErrNotReady, rec.UploadID))
	}

	edits := make([]entity.LineItemEdit, 0, len(req.GetEdits()))
	for _, e := range req.GetEdits() {
		items, ok := rec.Bill.Items[e.GetCategoryName()]
		if !ok {
			return nil, common.InvalidArgumentError(fmt.Sprintf("unknown category %q", e.GetCategoryName()))
		}
		if e.GetItemIndex() < 0 || int(e.GetItemIndex()) >= len(items) {
			return nil, common.InvalidArgumentError(fmt.Sprintf(
				"item index %d out of range for category %q", e.GetItemIndex(), e.GetCategoryName()))
		}
		edit := entity.LineItemEdit{
			CategoryName: e.GetCategoryName(),
			ItemIndex:    int(e.GetItemIndex()),
		}
		if e.Qty != nil {
			v := e.GetQty()
			if v < 0 {
				return nil, common.InvalidArgumentError("qty must be non-negative")
			}
			edit.Qty = &v
		}
		if e.Rate != nil {
			v := e.GetRate()
			if v < 0 {
				return nil, common.InvalidArgumentError("rate must be non-negative")
			}
			edit.Rate = &v
		}
		if e.TieupRate != nil {
			v := e.GetTieupRate()
			if v < 0 {
				return nil, common.InvalidArgumentError("tieup_rate must be non-negative")
			}
			edit.TieupRate = &v
		}
		edits = append(edits, edit)
	}

	if err := s.repo.SaveLineItemEdits(ctx, rec.UploadID, edits); err != nil {
		return nil, common.ToGRPCError(err)
	}
	return &billsv1.PatchLineItemsResponse{
		UploadId: rec.UploadID,
		Edits:    req.GetEdits(),
	}, nil
}

func (s *BillsService) VerifyBillAgain(ctx context.Context, req *billsv1.VerifyBillAgainRequest) (*billsv1.VerifyBillAgainResponse, error) {
	if err := s.reverifier.VerifyStored(ctx, req.GetUploadId()); err != nil {
		s.logger.Warn("server.reverify_failed", "upload_id", req.GetUploadId(), "error", err)
		return nil, common.ToGRPCError(err)
	}
	rec, err := s.repo.GetByID(ctx, req.GetUploadId())
	if err != nil {
		return nil, common.ToGRPCError(err)
	}
	out := &billsv1.VerifyBillAgainResponse{
		UploadId:           rec.UploadID,
		VerificationStatus: string(rec.VerificationStatus),
	}
	if len(rec.VerificationResult) > 0 {
		out.VerificationResultJson = string(rec.VerificationResult)
	}
	if rec.VerificationResultText != nil {
		out.VerificationResultText = *rec.VerificationResultText
	}
	return out, nil
}

func (s *BillsService) DeleteBill(ctx context.Context, req *billsv1.DeleteBillRequest) (*billsv1.DeleteBillResponse, error) {
	id := req.GetUploadId()
	if req.GetPermanent() {
		// Permanent delete requires the soft-delete first; do both here so
		// one call suffices, then drop the staged files.
		if err := s.repo.SoftDelete(ctx, id, req.GetDeletedBy()); err != nil && !errors.Is(err, common.ErrAlreadyDeleted) {
			return nil, common.ToGRPCError(err)
		}
		if err := s.repo.PermanentDelete(ctx, id); err != nil {
			return nil, common.ToGRPCError(err)
		}
		s.uploads.CleanupStaging(id)
	} else {
		if err := s.repo.SoftDelete(ctx, id, req.GetDeletedBy()); err != nil {
			return nil, common.ToGRPCError(err)
		}
	}
	return &billsv1.DeleteBillResponse{UploadId: id, Permanent: req.GetPermanent()}, nil
}

func (s *BillsService) RestoreBill(ctx context.Context, req *billsv1.RestoreBillRequest) (*billsv1.RestoreBillResponse, error) {
	if err := s.repo.Restore(ctx, req.GetUploadId()); err != nil {
		return nil, common.ToGRPCError(err)
	}
	rec, err := s.repo.GetByID(ctx, req.GetUploadId())
	if err != nil {
		return nil, common.ToGRPCError(err)
	}
	return &billsv1.RestoreBillResponse{
		UploadId: rec.UploadID,
		Status:   string(rec.Status),
	}, nil
}

func (s *BillsService) ListHospitals(_ context.Context, _ *billsv1.ListHospitalsRequest) (*billsv1.ListHospitalsResponse, error) {
	snap := s.catalog.Snapshot()
	if snap == nil {
		return nil, common.ToGRPCError(common.ErrCatalogLoad)
	}
	return &billsv1.ListHospitalsResponse{
		HospitalNames: snap.Names(),
		ModelId:       snap.ModelID,
		LoadedAt:      snap.LoadedAt.Format(time.RFC3339),
	}, nil
}

func (s *BillsService) ReloadCatalog(ctx context.Context, _ *billsv1.ReloadCatalogRequest) (*billsv1.ReloadCatalogResponse, error) {
	if err := s.catalog.Reload(ctx); err != nil {
		s.logger.Error("server.catalog_reload_failed", "error", err)
		return nil, common.ToGRPCError(err)
	}
	snap := s.catalog.Snapshot()
	return &billsv1.ReloadCatalogResponse{
		HospitalNames: snap.Names(),
		LoadedAt:      snap.LoadedAt.Format(time.RFC3339),
	}, nil
}

func (s *BillsService) ExportVerification(ctx context.Context, req *billsv1.ExportVerificationRequest) (*billsv1.ExportVerificationResponse, error) {
	data, err := s.exporter.ExportVerificationXLSX(ctx, req.GetUploadId())
	if err != nil {
		return nil, common.ToGRPCError(err)
	}
	return &billsv1.ExportVerificationResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("verification_%s.xlsx", req.GetUploadId()),
	}, nil
}

func (s *BillsService) GetStatistics(ctx context.Context, _ *billsv1.GetStatisticsRequest) (*billsv1.GetStatisticsResponse, error) {
	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		return nil, common.ToGRPCError(err)
	}
	return &billsv1.GetStatisticsResponse{
		TotalBills:    int32(stats.TotalBills),
		TotalBilled:   stats.TotalBilled,
		AvgBillAmount: stats.AvgBillAmount,
	}, nil
}
