package repository

import (
	"encoding/json"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/gen/ent"
	"github.com/medassure/bill-verifier/internal/entity"
)

// toRecord maps a store row onto the transfer struct.
func toRecord(u *ent.Upload) *entity.UploadRecord {
	if u == nil {
		return nil
	}
	rec := &entity.UploadRecord{
		UploadID:              u.ID,
		EmployeeID:            u.EmployeeID,
		HospitalName:          u.HospitalName,
		OriginalFilename:      u.OriginalFilename,
		FileSizeBytes:         u.FileSizeBytes,
		PageCount:             u.PageCount,
		Status:                constants.UploadStatus(u.Status),
		VerificationStatus:    constants.VerificationStatus(u.VerificationStatus),
		QueuePosition:         u.QueuePosition,
		QueueLeaseExpires:     u.QueueLeaseExpiresAt,
		ProcessingStarted:     u.ProcessingStartedAt,
		CompletedAt:           u.CompletedAt,
		ErrorMessage:          u.ErrorMessage,
		IsDeleted:             u.IsDeleted,
		DeletedAt:             u.DeletedAt,
		DeletedBy:             u.DeletedBy,
		InvoiceDate:           u.InvoiceDate,
		VerificationResult:    u.VerificationResult,
		VerificationError:     u.VerificationError,
		LineItemEdits:         u.LineItemEdits,
		ProcessingTimeSeconds: u.ProcessingTimeSeconds,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
	if u.IngestionRequestID != nil {
		rec.IngestionRequestID = *u.IngestionRequestID
	}
	if u.VerificationResultText != nil {
		rec.VerificationResultText = u.VerificationResultText
	}
	if len(u.Bill) > 0 {
		var bill entity.BillDocument
		if err := json.Unmarshal(u.Bill, &bill); err == nil {
			rec.Bill = &bill
		}
	}
	return rec
}

func toRecords(rows []*ent.Upload) []*entity.UploadRecord {
	out := make([]*entity.UploadRecord, len(rows))
	for i, r := range rows {
		out[i] = toRecord(r)
	}
	return out
}
