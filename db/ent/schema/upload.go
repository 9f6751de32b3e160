package schema

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/entity"
)

// Upload is the one-document-per-PDF lifecycle row: ingestion metadata,
// queue state, the extracted bill, and the verification outcome.
type Upload struct{ ent.Schema }

func (Upload) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "uploads"},
	}
}

// NewUploadID returns a random 128-bit hex id.
func NewUploadID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

func (Upload) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(NewUploadID).
			Immutable().
			StorageKey("upload_id"),
		// unique + optional -> sparse unique in Postgres (NULLs don't collide)
		field.String("ingestion_request_id").Optional().Nillable().Unique(),
		field.String("employee_id").NotEmpty().
			Match(regexp.MustCompile(`^\d{8}$`)),
		field.String("hospital_name").NotEmpty(),
		field.String("original_filename").NotEmpty(),
		field.Int64("file_size_bytes").NonNegative(),
		field.Int("page_count").Optional().Nillable(),

		field.String("status").
			Default(string(constants.UploadStatusPending)),
		field.String("verification_status").
			Default(string(constants.VerificationStatusNone)),
		field.Int("queue_position").Default(0),
		field.Time("queue_lease_expires_at").Optional().Nillable(),
		field.Time("processing_started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),

		field.Bool("is_deleted").Default(false),
		field.Time("deleted_at").Optional().Nillable(),
		field.String("deleted_by").Optional().Nillable(),

		field.Time("invoice_date").Optional().Nillable(),

		field.JSON("bill", json.RawMessage{}).Optional(),
		field.Float("grand_total").Default(0),
		field.JSON("verification_result", json.RawMessage{}).Optional(),
		field.String("verification_result_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("verification_error").Optional().Nillable(),
		field.JSON("line_item_edits", []entity.LineItemEdit{}).Optional(),

		field.Float("processing_time_seconds").Optional().Nillable(),

		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Upload) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "updated_at"),
		index.Fields("is_deleted", "deleted_at"),
		index.Fields("status", "queue_position"),
	}
}
