// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "product_type", Type: field.TypeString, Nullable: true},
		{Name: "type_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "type_reasoning", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "abbreviation", Type: field.TypeString, Nullable: true},
		{Name: "abbreviation_params", Type: field.TypeJSON, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ApplicationsTable holds the schema information for the "applications" table.
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "application_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[12]},
			},
		},
	}
	// OperationsColumns holds the columns for the "operations" table.
	OperationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "external_job_id", Type: field.TypeString, Nullable: true},
		{Name: "request_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "failure", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "owner_id", Type: field.TypeUUID},
	}
	// OperationsTable holds the schema information for the "operations" table.
	OperationsTable = &schema.Table{
		Name:       "operations",
		Columns:    OperationsColumns,
		PrimaryKey: []*schema.Column{OperationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "operations_applications_operations",
				Columns:    []*schema.Column{OperationsColumns[14]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "operation_owner_id_kind",
				Unique:  true,
				Columns: []*schema.Column{OperationsColumns[14], OperationsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NULL",
				},
			},
			{
				Name:    "operation_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{OperationsColumns[14], OperationsColumns[3]},
			},
			{
				Name:    "operation_external_job_id",
				Unique:  false,
				Columns: []*schema.Column{OperationsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationsTable,
		OperationsTable,
	}
)

func init() {
	ApplicationsTable.Annotation = &entsql.Annotation{
		Table: "applications",
	}
	OperationsTable.ForeignKeys[0].RefTable = ApplicationsTable
	OperationsTable.Annotation = &entsql.Annotation{
		Table: "operations",
	}
}
