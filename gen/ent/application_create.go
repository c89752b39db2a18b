// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/akhomyakov/docflow/gen/ent/application"
	"github.com/akhomyakov/docflow/gen/ent/operation"
	"github.com/google/uuid"
)

// ApplicationCreate is the builder for creating a Application entity.
type ApplicationCreate struct {
	config
	mutation *ApplicationMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *ApplicationCreate) SetFilename(v string) *ApplicationCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *ApplicationCreate) SetSourcePath(v string) *ApplicationCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *ApplicationCreate) SetFileExt(v string) *ApplicationCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *ApplicationCreate) SetFormat(v string) *ApplicationCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *ApplicationCreate) SetExtractedText(v string) *ApplicationCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableExtractedText(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetExtractedText(*v)
	}
	return _c
}

// SetProductType sets the "product_type" field.
func (_c *ApplicationCreate) SetProductType(v string) *ApplicationCreate {
	_c.mutation.SetProductType(v)
	return _c
}

// SetNillableProductType sets the "product_type" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableProductType(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetProductType(*v)
	}
	return _c
}

// SetTypeConfidence sets the "type_confidence" field.
func (_c *ApplicationCreate) SetTypeConfidence(v float32) *ApplicationCreate {
	_c.mutation.SetTypeConfidence(v)
	return _c
}

// SetNillableTypeConfidence sets the "type_confidence" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableTypeConfidence(v *float32) *ApplicationCreate {
	if v != nil {
		_c.SetTypeConfidence(*v)
	}
	return _c
}

// SetTypeReasoning sets the "type_reasoning" field.
func (_c *ApplicationCreate) SetTypeReasoning(v string) *ApplicationCreate {
	_c.mutation.SetTypeReasoning(v)
	return _c
}

// SetNillableTypeReasoning sets the "type_reasoning" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableTypeReasoning(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetTypeReasoning(*v)
	}
	return _c
}

// SetAbbreviation sets the "abbreviation" field.
func (_c *ApplicationCreate) SetAbbreviation(v string) *ApplicationCreate {
	_c.mutation.SetAbbreviation(v)
	return _c
}

// SetNillableAbbreviation sets the "abbreviation" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableAbbreviation(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetAbbreviation(*v)
	}
	return _c
}

// SetAbbreviationParams sets the "abbreviation_params" field.
func (_c *ApplicationCreate) SetAbbreviationParams(v json.RawMessage) *ApplicationCreate {
	_c.mutation.SetAbbreviationParams(v)
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ApplicationCreate) SetProcessedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableProcessedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *ApplicationCreate) SetUploadedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableUploadedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApplicationCreate) SetUpdatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableUpdatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicationCreate) SetID(v uuid.UUID) *ApplicationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableID(v *uuid.UUID) *ApplicationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddOperationIDs adds the "operations" edge to the Operation entity by IDs.
func (_c *ApplicationCreate) AddOperationIDs(ids ...uuid.UUID) *ApplicationCreate {
	_c.mutation.AddOperationIDs(ids...)
	return _c
}

// AddOperations adds the "operations" edges to the Operation entity.
func (_c *ApplicationCreate) AddOperations(v ...*Operation) *ApplicationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOperationIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_c *ApplicationCreate) Mutation() *ApplicationMutation {
	return _c.mutation
}

// Save creates the Application in the database.
func (_c *ApplicationCreate) Save(ctx context.Context) (*Application, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationCreate) SaveX(ctx context.Context) *Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := application.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := application.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := application.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Application.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := application.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Application.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "Application.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := application.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Application.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "Application.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := application.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Application.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "Application.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := application.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Application.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "Application.uploaded_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Application.updated_at"`)}
	}
	return nil
}

func (_c *ApplicationCreate) sqlSave(ctx context.Context) (*Application, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApplicationCreate) createSpec() (*Application, *sqlgraph.CreateSpec) {
	var (
		_node = &Application{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(application.Table, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(application.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(application.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(application.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(application.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(application.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = &value
	}
	if value, ok := _c.mutation.ProductType(); ok {
		_spec.SetField(application.FieldProductType, field.TypeString, value)
		_node.ProductType = &value
	}
	if value, ok := _c.mutation.TypeConfidence(); ok {
		_spec.SetField(application.FieldTypeConfidence, field.TypeFloat32, value)
		_node.TypeConfidence = &value
	}
	if value, ok := _c.mutation.TypeReasoning(); ok {
		_spec.SetField(application.FieldTypeReasoning, field.TypeString, value)
		_node.TypeReasoning = &value
	}
	if value, ok := _c.mutation.Abbreviation(); ok {
		_spec.SetField(application.FieldAbbreviation, field.TypeString, value)
		_node.Abbreviation = &value
	}
	if value, ok := _c.mutation.AbbreviationParams(); ok {
		_spec.SetField(application.FieldAbbreviationParams, field.TypeJSON, value)
		_node.AbbreviationParams = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(application.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(application.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OperationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.OperationsTable,
			Columns: []string{application.OperationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(operation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApplicationCreateBulk is the builder for creating many Application entities in bulk.
type ApplicationCreateBulk struct {
	config
	err      error
	builders []*ApplicationCreate
}

// Save creates the Application entities in the database.
func (_c *ApplicationCreateBulk) Save(ctx context.Context) ([]*Application, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Application, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ApplicationCreateBulk) SaveX(ctx context.Context) []*Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
