package entity

import (
	"encoding/json"
	"time"

	"github.com/medassure/bill-verifier/constants"
)

// UploadRecord represents one upload-scoped document for data transfer
// between layers. The store keeps exactly one row per upload_id.
type UploadRecord struct {
	UploadID           string `json:"upload_id"`
	IngestionRequestID string `json:"ingestion_request_id,omitempty"`
	EmployeeID         string `json:"employee_id"`
	HospitalName       string `json:"hospital_name"`
	OriginalFilename   string `json:"original_filename"`
	FileSizeBytes      int64  `json:"file_size_bytes"`
	PageCount          *int   `json:"page_count,omitempty"`

	Status             constants.UploadStatus       `json:"status"`
	VerificationStatus constants.VerificationStatus `json:"verification_status"`
	QueuePosition      int                          `json:"queue_position"`
	QueueLeaseExpires  *time.Time                   `json:"queue_lease_expires_at,omitempty"`
	ProcessingStarted  *time.Time                   `json:"processing_started_at,omitempty"`
	CompletedAt        *time.Time                   `json:"completed_at,omitempty"`
	ErrorMessage       *string                      `json:"error_message,omitempty"`

	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	DeletedBy *string    `json:"deleted_by,omitempty"`

	InvoiceDate *time.Time `json:"invoice_date,omitempty"`

	Bill                   *BillDocument   `json:"bill,omitempty"`
	VerificationResult     json.RawMessage `json:"verification_result,omitempty"`
	VerificationResultText *string         `json:"verification_result_text,omitempty"`
	VerificationError      *string         `json:"verification_error,omitempty"`
	LineItemEdits          []LineItemEdit  `json:"line_item_edits,omitempty"`

	ProcessingTimeSeconds *float64 `json:"processing_time_seconds,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProcessingStage derives the user-facing stage label from the two
// lifecycle fields.
func (r *UploadRecord) ProcessingStage() string {
	switch r.Status {
	case constants.UploadStatusPending:
		return "queued"
	case constants.UploadStatusProcessing:
		return "extracting"
	case constants.UploadStatusFailed:
		return "failed"
	case constants.UploadStatusCompleted:
		switch r.VerificationStatus {
		case constants.VerificationStatusProcessing:
			return "verifying"
		case constants.VerificationStatusCompleted:
			return "done"
		case constants.VerificationStatusFailed:
			return "verification_failed"
		default:
			return "extracted"
		}
	}
	return "unknown"
}

// LineItemEdit is one manual correction to an extracted line item. It never
// mutates the extracted bill; callers re-derive views from bill + edits.
type LineItemEdit struct {
	CategoryName string   `json:"category_name"`
	ItemIndex    int      `json:"item_index"`
	Qty          *float64 `json:"qty,omitempty"`
	Rate         *float64 `json:"rate,omitempty"`
	TieupRate    *float64 `json:"tieup_rate,omitempty"`
}
