package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Document is one uploaded real-estate document and the state of its two
// processing stages. The unique content_hash index is what makes uploads
// idempotent.
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("original_filename").NotEmpty(),
		field.String("stored_path").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),

		field.String("ocr_status").Default("pending"),
		field.String("llm_status").Default("pending"),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("properties", json.RawMessage{}).Optional(),
		field.String("extracted_model").Optional().Nillable(),

		field.Int("ocr_retry_count").Default(0).NonNegative(),
		field.Int("llm_retry_count").Default(0).NonNegative(),
		field.String("ocr_error").Optional().Nillable(),
		field.String("llm_error").Optional().Nillable(),

		// Claim timestamps drive stale-claim recovery after crashes.
		field.Time("ocr_claimed_at").Optional().Nillable(),
		field.Time("llm_claimed_at").Optional().Nillable(),

		field.Bool("favorite").Default(false),
		field.Time("uploaded_at").Default(time.Now).Immutable(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash").Unique(),
		index.Fields("ocr_status", "llm_status"),
		index.Fields("favorite", "uploaded_at"),
	}
}
