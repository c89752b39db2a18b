// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/akhomyakov/docflow/gen/ent/application"
	"github.com/akhomyakov/docflow/gen/ent/operation"
	"github.com/akhomyakov/docflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// ApplicationUpdate is the builder for updating Application entities.
type ApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationMutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdate) Where(ps ...predicate.Application) *ApplicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ApplicationUpdate) SetFilename(v string) *ApplicationUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableFilename(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *ApplicationUpdate) SetSourcePath(v string) *ApplicationUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableSourcePath(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *ApplicationUpdate) SetFileExt(v string) *ApplicationUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableFileExt(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ApplicationUpdate) SetFormat(v string) *ApplicationUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableFormat(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ApplicationUpdate) SetExtractedText(v string) *ApplicationUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableExtractedText(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ApplicationUpdate) ClearExtractedText() *ApplicationUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetProductType sets the "product_type" field.
func (_u *ApplicationUpdate) SetProductType(v string) *ApplicationUpdate {
	_u.mutation.SetProductType(v)
	return _u
}

// SetNillableProductType sets the "product_type" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableProductType(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetProductType(*v)
	}
	return _u
}

// ClearProductType clears the value of the "product_type" field.
func (_u *ApplicationUpdate) ClearProductType() *ApplicationUpdate {
	_u.mutation.ClearProductType()
	return _u
}

// SetTypeConfidence sets the "type_confidence" field.
func (_u *ApplicationUpdate) SetTypeConfidence(v float32) *ApplicationUpdate {
	_u.mutation.ResetTypeConfidence()
	_u.mutation.SetTypeConfidence(v)
	return _u
}

// SetNillableTypeConfidence sets the "type_confidence" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableTypeConfidence(v *float32) *ApplicationUpdate {
	if v != nil {
		_u.SetTypeConfidence(*v)
	}
	return _u
}

// AddTypeConfidence adds value to the "type_confidence" field.
func (_u *ApplicationUpdate) AddTypeConfidence(v float32) *ApplicationUpdate {
	_u.mutation.AddTypeConfidence(v)
	return _u
}

// ClearTypeConfidence clears the value of the "type_confidence" field.
func (_u *ApplicationUpdate) ClearTypeConfidence() *ApplicationUpdate {
	_u.mutation.ClearTypeConfidence()
	return _u
}

// SetTypeReasoning sets the "type_reasoning" field.
func (_u *ApplicationUpdate) SetTypeReasoning(v string) *ApplicationUpdate {
	_u.mutation.SetTypeReasoning(v)
	return _u
}

// SetNillableTypeReasoning sets the "type_reasoning" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableTypeReasoning(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetTypeReasoning(*v)
	}
	return _u
}

// ClearTypeReasoning clears the value of the "type_reasoning" field.
func (_u *ApplicationUpdate) ClearTypeReasoning() *ApplicationUpdate {
	_u.mutation.ClearTypeReasoning()
	return _u
}

// SetAbbreviation sets the "abbreviation" field.
func (_u *ApplicationUpdate) SetAbbreviation(v string) *ApplicationUpdate {
	_u.mutation.SetAbbreviation(v)
	return _u
}

// SetNillableAbbreviation sets the "abbreviation" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableAbbreviation(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetAbbreviation(*v)
	}
	return _u
}

// ClearAbbreviation clears the value of the "abbreviation" field.
func (_u *ApplicationUpdate) ClearAbbreviation() *ApplicationUpdate {
	_u.mutation.ClearAbbreviation()
	return _u
}

// SetAbbreviationParams sets the "abbreviation_params" field.
func (_u *ApplicationUpdate) SetAbbreviationParams(v json.RawMessage) *ApplicationUpdate {
	_u.mutation.SetAbbreviationParams(v)
	return _u
}

// AppendAbbreviationParams appends value to the "abbreviation_params" field.
func (_u *ApplicationUpdate) AppendAbbreviationParams(v json.RawMessage) *ApplicationUpdate {
	_u.mutation.AppendAbbreviationParams(v)
	return _u
}

// ClearAbbreviationParams clears the value of the "abbreviation_params" field.
func (_u *ApplicationUpdate) ClearAbbreviationParams() *ApplicationUpdate {
	_u.mutation.ClearAbbreviationParams()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ApplicationUpdate) SetProcessedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableProcessedAt(v *time.Time) *ApplicationUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ApplicationUpdate) ClearProcessedAt() *ApplicationUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdate) SetUpdatedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddOperationIDs adds the "operations" edge to the Operation entity by IDs.
func (_u *ApplicationUpdate) AddOperationIDs(ids ...uuid.UUID) *ApplicationUpdate {
	_u.mutation.AddOperationIDs(ids...)
	return _u
}

// AddOperations adds the "operations" edges to the Operation entity.
func (_u *ApplicationUpdate) AddOperations(v ...*Operation) *ApplicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOperationIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdate) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearOperations clears all "operations" edges to the Operation entity.
func (_u *ApplicationUpdate) ClearOperations() *ApplicationUpdate {
	_u.mutation.ClearOperations()
	return _u
}

// RemoveOperationIDs removes the "operations" edge to Operation entities by IDs.
func (_u *ApplicationUpdate) RemoveOperationIDs(ids ...uuid.UUID) *ApplicationUpdate {
	_u.mutation.RemoveOperationIDs(ids...)
	return _u
}

// RemoveOperations removes "operations" edges to Operation entities.
func (_u *ApplicationUpdate) RemoveOperations(v ...*Operation) *ApplicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOperationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := application.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Application.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := application.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Application.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := application.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Application.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := application.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Application.format": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(application.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(application.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(application.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(application.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(application.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(application.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.ProductType(); ok {
		_spec.SetField(application.FieldProductType, field.TypeString, value)
	}
	if _u.mutation.ProductTypeCleared() {
		_spec.ClearField(application.FieldProductType, field.TypeString)
	}
	if value, ok := _u.mutation.TypeConfidence(); ok {
		_spec.SetField(application.FieldTypeConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedTypeConfidence(); ok {
		_spec.AddField(application.FieldTypeConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.TypeConfidenceCleared() {
		_spec.ClearField(application.FieldTypeConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.TypeReasoning(); ok {
		_spec.SetField(application.FieldTypeReasoning, field.TypeString, value)
	}
	if _u.mutation.TypeReasoningCleared() {
		_spec.ClearField(application.FieldTypeReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Abbreviation(); ok {
		_spec.SetField(application.FieldAbbreviation, field.TypeString, value)
	}
	if _u.mutation.AbbreviationCleared() {
		_spec.ClearField(application.FieldAbbreviation, field.TypeString)
	}
	if value, ok := _u.mutation.AbbreviationParams(); ok {
		_spec.SetField(application.FieldAbbreviationParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAbbreviationParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldAbbreviationParams, value)
		})
	}
	if _u.mutation.AbbreviationParamsCleared() {
		_spec.ClearField(application.FieldAbbreviationParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(application.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(application.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OperationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOperationsIDs(); len(nodes) > 0 && !_u.mutation.OperationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OperationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationUpdateOne is the builder for updating a single Application entity.
type ApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationMutation
}

// SetFilename sets the "filename" field.
func (_u *ApplicationUpdateOne) SetFilename(v string) *ApplicationUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableFilename(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *ApplicationUpdateOne) SetSourcePath(v string) *ApplicationUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableSourcePath(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *ApplicationUpdateOne) SetFileExt(v string) *ApplicationUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableFileExt(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ApplicationUpdateOne) SetFormat(v string) *ApplicationUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableFormat(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ApplicationUpdateOne) SetExtractedText(v string) *ApplicationUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableExtractedText(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ApplicationUpdateOne) ClearExtractedText() *ApplicationUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetProductType sets the "product_type" field.
func (_u *ApplicationUpdateOne) SetProductType(v string) *ApplicationUpdateOne {
	_u.mutation.SetProductType(v)
	return _u
}

// SetNillableProductType sets the "product_type" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableProductType(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetProductType(*v)
	}
	return _u
}

// ClearProductType clears the value of the "product_type" field.
func (_u *ApplicationUpdateOne) ClearProductType() *ApplicationUpdateOne {
	_u.mutation.ClearProductType()
	return _u
}

// SetTypeConfidence sets the "type_confidence" field.
func (_u *ApplicationUpdateOne) SetTypeConfidence(v float32) *ApplicationUpdateOne {
	_u.mutation.ResetTypeConfidence()
	_u.mutation.SetTypeConfidence(v)
	return _u
}

// SetNillableTypeConfidence sets the "type_confidence" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableTypeConfidence(v *float32) *ApplicationUpdateOne {
	if v != nil {
		_u.SetTypeConfidence(*v)
	}
	return _u
}

// AddTypeConfidence adds value to the "type_confidence" field.
func (_u *ApplicationUpdateOne) AddTypeConfidence(v float32) *ApplicationUpdateOne {
	_u.mutation.AddTypeConfidence(v)
	return _u
}

// ClearTypeConfidence clears the value of the "type_confidence" field.
func (_u *ApplicationUpdateOne) ClearTypeConfidence() *ApplicationUpdateOne {
	_u.mutation.ClearTypeConfidence()
	return _u
}

// SetTypeReasoning sets the "type_reasoning" field.
func (_u *ApplicationUpdateOne) SetTypeReasoning(v string) *ApplicationUpdateOne {
	_u.mutation.SetTypeReasoning(v)
	return _u
}

// SetNillableTypeReasoning sets the "type_reasoning" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableTypeReasoning(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetTypeReasoning(*v)
	}
	return _u
}

// ClearTypeReasoning clears the value of the "type_reasoning" field.
func (_u *ApplicationUpdateOne) ClearTypeReasoning() *ApplicationUpdateOne {
	_u.mutation.ClearTypeReasoning()
	return _u
}

// SetAbbreviation sets the "abbreviation" field.
func (_u *ApplicationUpdateOne) SetAbbreviation(v string) *ApplicationUpdateOne {
	_u.mutation.SetAbbreviation(v)
	return _u
}

// SetNillableAbbreviation sets the "abbreviation" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableAbbreviation(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetAbbreviation(*v)
	}
	return _u
}

// ClearAbbreviation clears the value of the "abbreviation" field.
func (_u *ApplicationUpdateOne) ClearAbbreviation() *ApplicationUpdateOne {
	_u.mutation.ClearAbbreviation()
	return _u
}

// SetAbbreviationParams sets the "abbreviation_params" field.
func (_u *ApplicationUpdateOne) SetAbbreviationParams(v json.RawMessage) *ApplicationUpdateOne {
	_u.mutation.SetAbbreviationParams(v)
	return _u
}

// AppendAbbreviationParams appends value to the "abbreviation_params" field.
func (_u *ApplicationUpdateOne) AppendAbbreviationParams(v json.RawMessage) *ApplicationUpdateOne {
	_u.mutation.AppendAbbreviationParams(v)
	return _u
}

// ClearAbbreviationParams clears the value of the "abbreviation_params" field.
func (_u *ApplicationUpdateOne) ClearAbbreviationParams() *ApplicationUpdateOne {
	_u.mutation.ClearAbbreviationParams()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ApplicationUpdateOne) SetProcessedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableProcessedAt(v *time.Time) *ApplicationUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ApplicationUpdateOne) ClearProcessedAt() *ApplicationUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdateOne) SetUpdatedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddOperationIDs adds the "operations" edge to the Operation entity by IDs.
func (_u *ApplicationUpdateOne) AddOperationIDs(ids ...uuid.UUID) *ApplicationUpdateOne {
	_u.mutation.AddOperationIDs(ids...)
	return _u
}

// AddOperations adds the "operations" edges to the Operation entity.
func (_u *ApplicationUpdateOne) AddOperations(v ...*Operation) *ApplicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOperationIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdateOne) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearOperations clears all "operations" edges to the Operation entity.
func (_u *ApplicationUpdateOne) ClearOperations() *ApplicationUpdateOne {
	_u.mutation.ClearOperations()
	return _u
}

// RemoveOperationIDs removes the "operations" edge to Operation entities by IDs.
func (_u *ApplicationUpdateOne) RemoveOperationIDs(ids ...uuid.UUID) *ApplicationUpdateOne {
	_u.mutation.RemoveOperationIDs(ids...)
	return _u
}

// RemoveOperations removes "operations" edges to Operation entities.
func (_u *ApplicationUpdateOne) RemoveOperations(v ...*Operation) *ApplicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOperationIDs(ids...)
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdateOne) Where(ps ...predicate.Application) *ApplicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationUpdateOne) Select(field string, fields ...string) *ApplicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Application entity.
func (_u *ApplicationUpdateOne) Save(ctx context.Context) (*Application, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdateOne) SaveX(ctx context.Context) *Application {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := application.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Application.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := application.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Application.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := application.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Application.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := application.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Application.format": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationUpdateOne) sqlSave(ctx context.Context) (_node *Application, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Application.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, application.FieldID)
		for _, f := range fields {
			if !application.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != application.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(application.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(application.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(application.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(application.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(application.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(application.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.ProductType(); ok {
		_spec.SetField(application.FieldProductType, field.TypeString, value)
	}
	if _u.mutation.ProductTypeCleared() {
		_spec.ClearField(application.FieldProductType, field.TypeString)
	}
	if value, ok := _u.mutation.TypeConfidence(); ok {
		_spec.SetField(application.FieldTypeConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedTypeConfidence(); ok {
		_spec.AddField(application.FieldTypeConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.TypeConfidenceCleared() {
		_spec.ClearField(application.FieldTypeConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.TypeReasoning(); ok {
		_spec.SetField(application.FieldTypeReasoning, field.TypeString, value)
	}
	if _u.mutation.TypeReasoningCleared() {
		_spec.ClearField(application.FieldTypeReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Abbreviation(); ok {
		_spec.SetField(application.FieldAbbreviation, field.TypeString, value)
	}
	if _u.mutation.AbbreviationCleared() {
		_spec.ClearField(application.FieldAbbreviation, field.TypeString)
	}
	if value, ok := _u.mutation.AbbreviationParams(); ok {
		_spec.SetField(application.FieldAbbreviationParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAbbreviationParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldAbbreviationParams, value)
		})
	}
	if _u.mutation.AbbreviationParamsCleared() {
		_spec.ClearField(application.FieldAbbreviationParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(application.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(application.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OperationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOperationsIDs(); len(nodes) > 0 && !_u.mutation.OperationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OperationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Application{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
