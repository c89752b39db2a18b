package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/akhomyakov/docflow/constants"
	"github.com/akhomyakov/docflow/db/ent/schema/utils"
)

// Application is the owning aggregate: an uploaded product application
// document plus the fields derived from completed operations.
type Application struct{ ent.Schema }

func (Application) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "applications"},
	}
}

func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("filename").NotEmpty(),
		field.String("source_path").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileFormats...)),
		// derived by the result projector
		field.String("extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("product_type").Optional().Nillable(),
		field.Float32("type_confidence").Optional().Nillable(),
		field.String("type_reasoning").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("abbreviation").Optional().Nillable(),
		field.JSON("abbreviation_params", json.RawMessage{}).Optional(),
		field.Time("processed_at").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE application -> MANY operations
		edge.To("operations", Operation.Type),
	}
}

func (Application) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uploaded_at"),
	}
}
