// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "stored_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "ocr_status", Type: field.TypeString, Default: "pending"},
		{Name: "llm_status", Type: field.TypeString, Default: "pending"},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "properties", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted_model", Type: field.TypeString, Nullable: true},
		{Name: "ocr_retry_count", Type: field.TypeInt, Default: 0},
		{Name: "llm_retry_count", Type: field.TypeInt, Default: 0},
		{Name: "ocr_error", Type: field.TypeString, Nullable: true},
		{Name: "llm_error", Type: field.TypeString, Nullable: true},
		{Name: "ocr_claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "llm_claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "favorite", Type: field.TypeBool, Default: false},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
			{
				Name:    "document_ocr_status_llm_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6], DocumentsColumns[7]},
			},
			{
				Name:    "document_favorite_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[17], DocumentsColumns[18]},
			},
		},
	}
	// LocationsColumns holds the columns for the "locations" table.
	LocationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "show_in_tag", Type: field.TypeBool, Default: false},
	}
	// LocationsTable holds the schema information for the "locations" table.
	LocationsTable = &schema.Table{
		Name:       "locations",
		Columns:    LocationsColumns,
		PrimaryKey: []*schema.Column{LocationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "location_name",
				Unique:  true,
				Columns: []*schema.Column{LocationsColumns[1]},
			},
		},
	}
	// StationDurationsColumns holds the columns for the "station_durations" table.
	StationDurationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "station_name", Type: field.TypeString},
		{Name: "duration", Type: field.TypeInt},
		{Name: "location_id", Type: field.TypeInt},
	}
	// StationDurationsTable holds the schema information for the "station_durations" table.
	StationDurationsTable = &schema.Table{
		Name:       "station_durations",
		Columns:    StationDurationsColumns,
		PrimaryKey: []*schema.Column{StationDurationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "station_durations_locations_durations",
				Columns:    []*schema.Column{StationDurationsColumns[3]},
				RefColumns: []*schema.Column{LocationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stationduration_station_name_location_id",
				Unique:  true,
				Columns: []*schema.Column{StationDurationsColumns[1], StationDurationsColumns[3]},
			},
			{
				Name:    "stationduration_station_name",
				Unique:  false,
				Columns: []*schema.Column{StationDurationsColumns[1]},
			},
			{
				Name:    "stationduration_location_id",
				Unique:  false,
				Columns: []*schema.Column{StationDurationsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		LocationsTable,
		StationDurationsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	LocationsTable.Annotation = &entsql.Annotation{
		Table: "locations",
	}
	StationDurationsTable.ForeignKeys[0].RefTable = LocationsTable
	StationDurationsTable.Annotation = &entsql.Annotation{
		Table: "station_durations",
	}
}
