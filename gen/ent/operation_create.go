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

// OperationCreate is the builder for creating a Operation entity.
type OperationCreate struct {
	config
	mutation *OperationMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *OperationCreate) SetOwnerID(v uuid.UUID) *OperationCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *OperationCreate) SetKind(v string) *OperationCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *OperationCreate) SetProvider(v string) *OperationCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OperationCreate) SetStatus(v string) *OperationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OperationCreate) SetNillableStatus(v *string) *OperationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExternalJobID sets the "external_job_id" field.
func (_c *OperationCreate) SetExternalJobID(v string) *OperationCreate {
	_c.mutation.SetExternalJobID(v)
	return _c
}

// SetNillableExternalJobID sets the "external_job_id" field if the given value is not nil.
func (_c *OperationCreate) SetNillableExternalJobID(v *string) *OperationCreate {
	if v != nil {
		_c.SetExternalJobID(*v)
	}
	return _c
}

// SetRequestMetadata sets the "request_metadata" field.
func (_c *OperationCreate) SetRequestMetadata(v json.RawMessage) *OperationCreate {
	_c.mutation.SetRequestMetadata(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *OperationCreate) SetResult(v json.RawMessage) *OperationCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetFailure sets the "failure" field.
func (_c *OperationCreate) SetFailure(v json.RawMessage) *OperationCreate {
	_c.mutation.SetFailure(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OperationCreate) SetCreatedAt(v time.Time) *OperationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OperationCreate) SetNillableCreatedAt(v *time.Time) *OperationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *OperationCreate) SetStartedAt(v time.Time) *OperationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *OperationCreate) SetNillableStartedAt(v *time.Time) *OperationCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *OperationCreate) SetCompletedAt(v time.Time) *OperationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *OperationCreate) SetNillableCompletedAt(v *time.Time) *OperationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *OperationCreate) SetRetryCount(v int) *OperationCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *OperationCreate) SetNillableRetryCount(v *int) *OperationCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *OperationCreate) SetMaxRetries(v int) *OperationCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *OperationCreate) SetNillableMaxRetries(v *int) *OperationCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *OperationCreate) SetDeletedAt(v time.Time) *OperationCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *OperationCreate) SetNillableDeletedAt(v *time.Time) *OperationCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OperationCreate) SetID(v uuid.UUID) *OperationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OperationCreate) SetNillableID(v *uuid.UUID) *OperationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOwner sets the "owner" edge to the Application entity.
func (_c *OperationCreate) SetOwner(v *Application) *OperationCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the OperationMutation object of the builder.
func (_c *OperationCreate) Mutation() *OperationMutation {
	return _c.mutation
}

// Save creates the Operation in the database.
func (_c *OperationCreate) Save(ctx context.Context) (*Operation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OperationCreate) SaveX(ctx context.Context) *Operation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OperationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OperationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OperationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := operation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := operation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := operation.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := operation.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := operation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OperationCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Operation.owner_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Operation.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := operation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Operation.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Operation.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := operation.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Operation.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Operation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := operation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Operation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Operation.created_at"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Operation.retry_count"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "Operation.max_retries"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Operation.owner"`)}
	}
	return nil
}

func (_c *OperationCreate) sqlSave(ctx context.Context) (*Operation, error) {
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

func (_c *OperationCreate) createSpec() (*Operation, *sqlgraph.CreateSpec) {
	var (
		_node = &Operation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(operation.Table, sqlgraph.NewFieldSpec(operation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(operation.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(operation.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(operation.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExternalJobID(); ok {
		_spec.SetField(operation.FieldExternalJobID, field.TypeString, value)
		_node.ExternalJobID = &value
	}
	if value, ok := _c.mutation.RequestMetadata(); ok {
		_spec.SetField(operation.FieldRequestMetadata, field.TypeJSON, value)
		_node.RequestMetadata = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(operation.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Failure(); ok {
		_spec.SetField(operation.FieldFailure, field.TypeJSON, value)
		_node.Failure = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(operation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(operation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(operation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(operation.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(operation.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(operation.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.OwnerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OperationCreateBulk is the builder for creating many Operation entities in bulk.
type OperationCreateBulk struct {
	config
	err      error
	builders []*OperationCreate
}

// Save creates the Operation entities in the database.
func (_c *OperationCreateBulk) Save(ctx context.Context) ([]*Operation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Operation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OperationMutation)
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
func (_c *OperationCreateBulk) SaveX(ctx context.Context) []*Operation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OperationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OperationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
