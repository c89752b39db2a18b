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

// OperationUpdate is the builder for updating Operation entities.
type OperationUpdate struct {
	config
	hooks    []Hook
	mutation *OperationMutation
}

// Where appends a list predicates to the OperationUpdate builder.
func (_u *OperationUpdate) Where(ps ...predicate.Operation) *OperationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *OperationUpdate) SetOwnerID(v uuid.UUID) *OperationUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableOwnerID(v *uuid.UUID) *OperationUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *OperationUpdate) SetKind(v string) *OperationUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableKind(v *string) *OperationUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *OperationUpdate) SetProvider(v string) *OperationUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableProvider(v *string) *OperationUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OperationUpdate) SetStatus(v string) *OperationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableStatus(v *string) *OperationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExternalJobID sets the "external_job_id" field.
func (_u *OperationUpdate) SetExternalJobID(v string) *OperationUpdate {
	_u.mutation.SetExternalJobID(v)
	return _u
}

// SetNillableExternalJobID sets the "external_job_id" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableExternalJobID(v *string) *OperationUpdate {
	if v != nil {
		_u.SetExternalJobID(*v)
	}
	return _u
}

// ClearExternalJobID clears the value of the "external_job_id" field.
func (_u *OperationUpdate) ClearExternalJobID() *OperationUpdate {
	_u.mutation.ClearExternalJobID()
	return _u
}

// SetRequestMetadata sets the "request_metadata" field.
func (_u *OperationUpdate) SetRequestMetadata(v json.RawMessage) *OperationUpdate {
	_u.mutation.SetRequestMetadata(v)
	return _u
}

// AppendRequestMetadata appends value to the "request_metadata" field.
func (_u *OperationUpdate) AppendRequestMetadata(v json.RawMessage) *OperationUpdate {
	_u.mutation.AppendRequestMetadata(v)
	return _u
}

// ClearRequestMetadata clears the value of the "request_metadata" field.
func (_u *OperationUpdate) ClearRequestMetadata() *OperationUpdate {
	_u.mutation.ClearRequestMetadata()
	return _u
}

// SetResult sets the "result" field.
func (_u *OperationUpdate) SetResult(v json.RawMessage) *OperationUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *OperationUpdate) AppendResult(v json.RawMessage) *OperationUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *OperationUpdate) ClearResult() *OperationUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetFailure sets the "failure" field.
func (_u *OperationUpdate) SetFailure(v json.RawMessage) *OperationUpdate {
	_u.mutation.SetFailure(v)
	return _u
}

// AppendFailure appends value to the "failure" field.
func (_u *OperationUpdate) AppendFailure(v json.RawMessage) *OperationUpdate {
	_u.mutation.AppendFailure(v)
	return _u
}

// ClearFailure clears the value of the "failure" field.
func (_u *OperationUpdate) ClearFailure() *OperationUpdate {
	_u.mutation.ClearFailure()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *OperationUpdate) SetStartedAt(v time.Time) *OperationUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableStartedAt(v *time.Time) *OperationUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *OperationUpdate) ClearStartedAt() *OperationUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OperationUpdate) SetCompletedAt(v time.Time) *OperationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableCompletedAt(v *time.Time) *OperationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OperationUpdate) ClearCompletedAt() *OperationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *OperationUpdate) SetRetryCount(v int) *OperationUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableRetryCount(v *int) *OperationUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *OperationUpdate) AddRetryCount(v int) *OperationUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *OperationUpdate) SetMaxRetries(v int) *OperationUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableMaxRetries(v *int) *OperationUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *OperationUpdate) AddMaxRetries(v int) *OperationUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *OperationUpdate) SetDeletedAt(v time.Time) *OperationUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableDeletedAt(v *time.Time) *OperationUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *OperationUpdate) ClearDeletedAt() *OperationUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetOwner sets the "owner" edge to the Application entity.
func (_u *OperationUpdate) SetOwner(v *Application) *OperationUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the OperationMutation object of the builder.
func (_u *OperationUpdate) Mutation() *OperationMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the Application entity.
func (_u *OperationUpdate) ClearOwner() *OperationUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OperationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OperationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OperationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OperationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OperationUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := operation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Operation.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := operation.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Operation.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := operation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Operation.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Operation.owner"`)
	}
	return nil
}

func (_u *OperationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(operation.Table, operation.Columns, sqlgraph.NewFieldSpec(operation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(operation.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(operation.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(operation.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalJobID(); ok {
		_spec.SetField(operation.FieldExternalJobID, field.TypeString, value)
	}
	if _u.mutation.ExternalJobIDCleared() {
		_spec.ClearField(operation.FieldExternalJobID, field.TypeString)
	}
	if value, ok := _u.mutation.RequestMetadata(); ok {
		_spec.SetField(operation.FieldRequestMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, operation.FieldRequestMetadata, value)
		})
	}
	if _u.mutation.RequestMetadataCleared() {
		_spec.ClearField(operation.FieldRequestMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(operation.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, operation.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(operation.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Failure(); ok {
		_spec.SetField(operation.FieldFailure, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailure(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, operation.FieldFailure, value)
		})
	}
	if _u.mutation.FailureCleared() {
		_spec.ClearField(operation.FieldFailure, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(operation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(operation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(operation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(operation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(operation.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(operation.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(operation.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(operation.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(operation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(operation.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   operation.OwnerTable,
			Columns: []string{operation.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   operation.OwnerTable,
			Columns: []string{operation.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{operation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OperationUpdateOne is the builder for updating a single Operation entity.
type OperationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OperationMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *OperationUpdateOne) SetOwnerID(v uuid.UUID) *OperationUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableOwnerID(v *uuid.UUID) *OperationUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *OperationUpdateOne) SetKind(v string) *OperationUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableKind(v *string) *OperationUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *OperationUpdateOne) SetProvider(v string) *OperationUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableProvider(v *string) *OperationUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OperationUpdateOne) SetStatus(v string) *OperationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableStatus(v *string) *OperationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExternalJobID sets the "external_job_id" field.
func (_u *OperationUpdateOne) SetExternalJobID(v string) *OperationUpdateOne {
	_u.mutation.SetExternalJobID(v)
	return _u
}

// SetNillableExternalJobID sets the "external_job_id" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableExternalJobID(v *string) *OperationUpdateOne {
	if v != nil {
		_u.SetExternalJobID(*v)
	}
	return _u
}

// ClearExternalJobID clears the value of the "external_job_id" field.
func (_u *OperationUpdateOne) ClearExternalJobID() *OperationUpdateOne {
	_u.mutation.ClearExternalJobID()
	return _u
}

// SetRequestMetadata sets the "request_metadata" field.
func (_u *OperationUpdateOne) SetRequestMetadata(v json.RawMessage) *OperationUpdateOne {
	_u.mutation.SetRequestMetadata(v)
	return _u
}

// AppendRequestMetadata appends value to the "request_metadata" field.
func (_u *OperationUpdateOne) AppendRequestMetadata(v json.RawMessage) *OperationUpdateOne {
	_u.mutation.AppendRequestMetadata(v)
	return _u
}

// ClearRequestMetadata clears the value of the "request_metadata" field.
func (_u *OperationUpdateOne) ClearRequestMetadata() *OperationUpdateOne {
	_u.mutation.ClearRequestMetadata()
	return _u
}

// SetResult sets the "result" field.
func (_u *OperationUpdateOne) SetResult(v json.RawMessage) *OperationUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *OperationUpdateOne) AppendResult(v json.RawMessage) *OperationUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *OperationUpdateOne) ClearResult() *OperationUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetFailure sets the "failure" field.
func (_u *OperationUpdateOne) SetFailure(v json.RawMessage) *OperationUpdateOne {
	_u.mutation.SetFailure(v)
	return _u
}

// AppendFailure appends value to the "failure" field.
func (_u *OperationUpdateOne) AppendFailure(v json.RawMessage) *OperationUpdateOne {
	_u.mutation.AppendFailure(v)
	return _u
}

// ClearFailure clears the value of the "failure" field.
func (_u *OperationUpdateOne) ClearFailure() *OperationUpdateOne {
	_u.mutation.ClearFailure()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *OperationUpdateOne) SetStartedAt(v time.Time) *OperationUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableStartedAt(v *time.Time) *OperationUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *OperationUpdateOne) ClearStartedAt() *OperationUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OperationUpdateOne) SetCompletedAt(v time.Time) *OperationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableCompletedAt(v *time.Time) *OperationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OperationUpdateOne) ClearCompletedAt() *OperationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *OperationUpdateOne) SetRetryCount(v int) *OperationUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableRetryCount(v *int) *OperationUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *OperationUpdateOne) AddRetryCount(v int) *OperationUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *OperationUpdateOne) SetMaxRetries(v int) *OperationUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableMaxRetries(v *int) *OperationUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *OperationUpdateOne) AddMaxRetries(v int) *OperationUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *OperationUpdateOne) SetDeletedAt(v time.Time) *OperationUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableDeletedAt(v *time.Time) *OperationUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *OperationUpdateOne) ClearDeletedAt() *OperationUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetOwner sets the "owner" edge to the Application entity.
func (_u *OperationUpdateOne) SetOwner(v *Application) *OperationUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the OperationMutation object of the builder.
func (_u *OperationUpdateOne) Mutation() *OperationMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the Application entity.
func (_u *OperationUpdateOne) ClearOwner() *OperationUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the OperationUpdate builder.
func (_u *OperationUpdateOne) Where(ps ...predicate.Operation) *OperationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OperationUpdateOne) Select(field string, fields ...string) *OperationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Operation entity.
func (_u *OperationUpdateOne) Save(ctx context.Context) (*Operation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OperationUpdateOne) SaveX(ctx context.Context) *Operation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OperationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OperationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OperationUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := operation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Operation.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := operation.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Operation.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := operation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Operation.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Operation.owner"`)
	}
	return nil
}

func (_u *OperationUpdateOne) sqlSave(ctx context.Context) (_node *Operation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(operation.Table, operation.Columns, sqlgraph.NewFieldSpec(operation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Operation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, operation.FieldID)
		for _, f := range fields {
			if !operation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != operation.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(operation.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(operation.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(operation.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalJobID(); ok {
		_spec.SetField(operation.FieldExternalJobID, field.TypeString, value)
	}
	if _u.mutation.ExternalJobIDCleared() {
		_spec.ClearField(operation.FieldExternalJobID, field.TypeString)
	}
	if value, ok := _u.mutation.RequestMetadata(); ok {
		_spec.SetField(operation.FieldRequestMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, operation.FieldRequestMetadata, value)
		})
	}
	if _u.mutation.RequestMetadataCleared() {
		_spec.ClearField(operation.FieldRequestMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(operation.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, operation.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(operation.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Failure(); ok {
		_spec.SetField(operation.FieldFailure, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailure(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, operation.FieldFailure, value)
		})
	}
	if _u.mutation.FailureCleared() {
		_spec.ClearField(operation.FieldFailure, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(operation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(operation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(operation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(operation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(operation.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(operation.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(operation.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(operation.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(operation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(operation.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   operation.OwnerTable,
			Columns: []string{operation.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   operation.OwnerTable,
			Columns: []string{operation.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Operation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{operation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
