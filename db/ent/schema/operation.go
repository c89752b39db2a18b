package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/akhomyakov/docflow/constants"
	"github.com/akhomyakov/docflow/db/ent/schema/utils"
)

// Operation is one unit of delegated work (text extraction, classification,
// abbreviation) for an application, driven through
// PENDING/RUNNING/COMPLETED/FAILED.
type Operation struct{ ent.Schema }

func (Operation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "operations"},
	}
}

func (Operation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("owner_id", uuid.UUID{}),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.OpKinds...)),
		field.String("provider").NotEmpty().
			Validate(utils.EnumValidator(constants.Providers...)),
		field.String("status").Default(string(constants.OpStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.OpStatusPending),
				string(constants.OpStatusRunning),
				string(constants.OpStatusCompleted),
				string(constants.OpStatusFailed),
			)),
		field.String("external_job_id").Optional().Nillable(),
		// endpoint + method only; payloads are not duplicated here
		field.JSON("request_metadata", json.RawMessage{}).Optional(),
		field.JSON("result", json.RawMessage{}).Optional(),
		field.JSON("failure", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Int("retry_count").Default(0),
		field.Int("max_retries").Default(3),
		field.Time("deleted_at").Optional().Nillable(),
	}
}

func (Operation) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY operations -> ONE application (FK: operations.owner_id)
		edge.From("owner", Application.Type).
			Ref("operations").
			Field("owner_id").
			Unique().
			Required(),
	}
}

func (Operation) Indexes() []ent.Index {
	return []ent.Index{
		// At most one live operation per (owner, kind). Soft-deleted rows are
		// kept for audit and excluded from the constraint.
		index.Fields("owner_id", "kind").
			Unique().
			Annotations(entsql.IndexWhere("deleted_at IS NULL")),
		index.Fields("owner_id", "status"),
		index.Fields("external_job_id"),
	}
}
