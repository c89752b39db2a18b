// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/akhomyakov/docflow/gen/ent/application"
	"github.com/akhomyakov/docflow/gen/ent/operation"
	"github.com/akhomyakov/docflow/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApplication = "Application"
	TypeOperation   = "Operation"
)

// ApplicationMutation represents an operation that mutates the Application nodes in the graph.
type ApplicationMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	filename                  *string
	source_path               *string
	file_ext                  *string
	format                    *string
	extracted_text            *string
	product_type              *string
	type_confidence           *float32
	addtype_confidence        *float32
	type_reasoning            *string
	abbreviation              *string
	abbreviation_params       *json.RawMessage
	appendabbreviation_params json.RawMessage
	processed_at              *time.Time
	uploaded_at               *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	operations                map[uuid.UUID]struct{}
	removedoperations         map[uuid.UUID]struct{}
	clearedoperations         bool
	done                      bool
	oldValue                  func(context.Context) (*Application, error)
	predicates                []predicate.Application
}

var _ ent.Mutation = (*ApplicationMutation)(nil)

// applicationOption allows management of the mutation configuration using functional options.
type applicationOption func(*ApplicationMutation)

// newApplicationMutation creates new mutation for the Application entity.
func newApplicationMutation(c config, op Op, opts ...applicationOption) *ApplicationMutation {
	m := &ApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationID sets the ID field of the mutation.
func withApplicationID(id uuid.UUID) applicationOption {
	return func(m *ApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *Application
		)
		m.oldValue = func(ctx context.Context) (*Application, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Application.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplication sets the old Application of the mutation.
func withApplication(node *Application) applicationOption {
	return func(m *ApplicationMutation) {
		m.oldValue = func(context.Context) (*Application, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Application entities.
func (m *ApplicationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Application.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *ApplicationMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ApplicationMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ApplicationMutation) ResetFilename() {
	m.filename = nil
}

// SetSourcePath sets the "source_path" field.
func (m *ApplicationMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *ApplicationMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *ApplicationMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFileExt sets the "file_ext" field.
func (m *ApplicationMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *ApplicationMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *ApplicationMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFormat sets the "format" field.
func (m *ApplicationMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ApplicationMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ApplicationMutation) ResetFormat() {
	m.format = nil
}

// SetExtractedText sets the "extracted_text" field.
func (m *ApplicationMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *ApplicationMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *ApplicationMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[application.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *ApplicationMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[application.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *ApplicationMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, application.FieldExtractedText)
}

// SetProductType sets the "product_type" field.
func (m *ApplicationMutation) SetProductType(s string) {
	m.product_type = &s
}

// ProductType returns the value of the "product_type" field in the mutation.
func (m *ApplicationMutation) ProductType() (r string, exists bool) {
	v := m.product_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProductType returns the old "product_type" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldProductType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductType: %w", err)
	}
	return oldValue.ProductType, nil
}

// ClearProductType clears the value of the "product_type" field.
func (m *ApplicationMutation) ClearProductType() {
	m.product_type = nil
	m.clearedFields[application.FieldProductType] = struct{}{}
}

// ProductTypeCleared returns if the "product_type" field was cleared in this mutation.
func (m *ApplicationMutation) ProductTypeCleared() bool {
	_, ok := m.clearedFields[application.FieldProductType]
	return ok
}

// ResetProductType resets all changes to the "product_type" field.
func (m *ApplicationMutation) ResetProductType() {
	m.product_type = nil
	delete(m.clearedFields, application.FieldProductType)
}

// SetTypeConfidence sets the "type_confidence" field.
func (m *ApplicationMutation) SetTypeConfidence(f float32) {
	m.type_confidence = &f
	m.addtype_confidence = nil
}

// TypeConfidence returns the value of the "type_confidence" field in the mutation.
func (m *ApplicationMutation) TypeConfidence() (r float32, exists bool) {
	v := m.type_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeConfidence returns the old "type_confidence" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldTypeConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeConfidence: %w", err)
	}
	return oldValue.TypeConfidence, nil
}

// AddTypeConfidence adds f to the "type_confidence" field.
func (m *ApplicationMutation) AddTypeConfidence(f float32) {
	if m.addtype_confidence != nil {
		*m.addtype_confidence += f
	} else {
		m.addtype_confidence = &f
	}
}

// AddedTypeConfidence returns the value that was added to the "type_confidence" field in this mutation.
func (m *ApplicationMutation) AddedTypeConfidence() (r float32, exists bool) {
	v := m.addtype_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearTypeConfidence clears the value of the "type_confidence" field.
func (m *ApplicationMutation) ClearTypeConfidence() {
	m.type_confidence = nil
	m.addtype_confidence = nil
	m.clearedFields[application.FieldTypeConfidence] = struct{}{}
}

// TypeConfidenceCleared returns if the "type_confidence" field was cleared in this mutation.
func (m *ApplicationMutation) TypeConfidenceCleared() bool {
	_, ok := m.clearedFields[application.FieldTypeConfidence]
	return ok
}

// ResetTypeConfidence resets all changes to the "type_confidence" field.
func (m *ApplicationMutation) ResetTypeConfidence() {
	m.type_confidence = nil
	m.addtype_confidence = nil
	delete(m.clearedFields, application.FieldTypeConfidence)
}

// SetTypeReasoning sets the "type_reasoning" field.
func (m *ApplicationMutation) SetTypeReasoning(s string) {
	m.type_reasoning = &s
}

// TypeReasoning returns the value of the "type_reasoning" field in the mutation.
func (m *ApplicationMutation) TypeReasoning() (r string, exists bool) {
	v := m.type_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeReasoning returns the old "type_reasoning" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldTypeReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeReasoning: %w", err)
	}
	return oldValue.TypeReasoning, nil
}

// ClearTypeReasoning clears the value of the "type_reasoning" field.
func (m *ApplicationMutation) ClearTypeReasoning() {
	m.type_reasoning = nil
	m.clearedFields[application.FieldTypeReasoning] = struct{}{}
}

// TypeReasoningCleared returns if the "type_reasoning" field was cleared in this mutation.
func (m *ApplicationMutation) TypeReasoningCleared() bool {
	_, ok := m.clearedFields[application.FieldTypeReasoning]
	return ok
}

// ResetTypeReasoning resets all changes to the "type_reasoning" field.
func (m *ApplicationMutation) ResetTypeReasoning() {
	m.type_reasoning = nil
	delete(m.clearedFields, application.FieldTypeReasoning)
}

// SetAbbreviation sets the "abbreviation" field.
func (m *ApplicationMutation) SetAbbreviation(s string) {
	m.abbreviation = &s
}

// Abbreviation returns the value of the "abbreviation" field in the mutation.
func (m *ApplicationMutation) Abbreviation() (r string, exists bool) {
	v := m.abbreviation
	if v == nil {
		return
	}
	return *v, true
}

// OldAbbreviation returns the old "abbreviation" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldAbbreviation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbbreviation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbbreviation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbbreviation: %w", err)
	}
	return oldValue.Abbreviation, nil
}

// ClearAbbreviation clears the value of the "abbreviation" field.
func (m *ApplicationMutation) ClearAbbreviation() {
	m.abbreviation = nil
	m.clearedFields[application.FieldAbbreviation] = struct{}{}
}

// AbbreviationCleared returns if the "abbreviation" field was cleared in this mutation.
func (m *ApplicationMutation) AbbreviationCleared() bool {
	_, ok := m.clearedFields[application.FieldAbbreviation]
	return ok
}

// ResetAbbreviation resets all changes to the "abbreviation" field.
func (m *ApplicationMutation) ResetAbbreviation() {
	m.abbreviation = nil
	delete(m.clearedFields, application.FieldAbbreviation)
}

// SetAbbreviationParams sets the "abbreviation_params" field.
func (m *ApplicationMutation) SetAbbreviationParams(jm json.RawMessage) {
	m.abbreviation_params = &jm
	m.appendabbreviation_params = nil
}

// AbbreviationParams returns the value of the "abbreviation_params" field in the mutation.
func (m *ApplicationMutation) AbbreviationParams() (r json.RawMessage, exists bool) {
	v := m.abbreviation_params
	if v == nil {
		return
	}
	return *v, true
}

// OldAbbreviationParams returns the old "abbreviation_params" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldAbbreviationParams(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbbreviationParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbbreviationParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbbreviationParams: %w", err)
	}
	return oldValue.AbbreviationParams, nil
}

// AppendAbbreviationParams adds jm to the "abbreviation_params" field.
func (m *ApplicationMutation) AppendAbbreviationParams(jm json.RawMessage) {
	m.appendabbreviation_params = append(m.appendabbreviation_params, jm...)
}

// AppendedAbbreviationParams returns the list of values that were appended to the "abbreviation_params" field in this mutation.
func (m *ApplicationMutation) AppendedAbbreviationParams() (json.RawMessage, bool) {
	if len(m.appendabbreviation_params) == 0 {
		return nil, false
	}
	return m.appendabbreviation_params, true
}

// ClearAbbreviationParams clears the value of the "abbreviation_params" field.
func (m *ApplicationMutation) ClearAbbreviationParams() {
	m.abbreviation_params = nil
	m.appendabbreviation_params = nil
	m.clearedFields[application.FieldAbbreviationParams] = struct{}{}
}

// AbbreviationParamsCleared returns if the "abbreviation_params" field was cleared in this mutation.
func (m *ApplicationMutation) AbbreviationParamsCleared() bool {
	_, ok := m.clearedFields[application.FieldAbbreviationParams]
	return ok
}

// ResetAbbreviationParams resets all changes to the "abbreviation_params" field.
func (m *ApplicationMutation) ResetAbbreviationParams() {
	m.abbreviation_params = nil
	m.appendabbreviation_params = nil
	delete(m.clearedFields, application.FieldAbbreviationParams)
}

// SetProcessedAt sets the "processed_at" field.
func (m *ApplicationMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ApplicationMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *ApplicationMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[application.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *ApplicationMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[application.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ApplicationMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, application.FieldProcessedAt)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ApplicationMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ApplicationMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ApplicationMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApplicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApplicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApplicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddOperationIDs adds the "operations" edge to the Operation entity by ids.
func (m *ApplicationMutation) AddOperationIDs(ids ...uuid.UUID) {
	if m.operations == nil {
		m.operations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.operations[ids[i]] = struct{}{}
	}
}

// ClearOperations clears the "operations" edge to the Operation entity.
func (m *ApplicationMutation) ClearOperations() {
	m.clearedoperations = true
}

// OperationsCleared reports if the "operations" edge to the Operation entity was cleared.
func (m *ApplicationMutation) OperationsCleared() bool {
	return m.clearedoperations
}

// RemoveOperationIDs removes the "operations" edge to the Operation entity by IDs.
func (m *ApplicationMutation) RemoveOperationIDs(ids ...uuid.UUID) {
	if m.removedoperations == nil {
		m.removedoperations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.operations, ids[i])
		m.removedoperations[ids[i]] = struct{}{}
	}
}

// RemovedOperations returns the removed IDs of the "operations" edge to the Operation entity.
func (m *ApplicationMutation) RemovedOperationsIDs() (ids []uuid.UUID) {
	for id := range m.removedoperations {
		ids = append(ids, id)
	}
	return
}

// OperationsIDs returns the "operations" edge IDs in the mutation.
func (m *ApplicationMutation) OperationsIDs() (ids []uuid.UUID) {
	for id := range m.operations {
		ids = append(ids, id)
	}
	return
}

// ResetOperations resets all changes to the "operations" edge.
func (m *ApplicationMutation) ResetOperations() {
	m.operations = nil
	m.clearedoperations = false
	m.removedoperations = nil
}

// Where appends a list predicates to the ApplicationMutation builder.
func (m *ApplicationMutation) Where(ps ...predicate.Application) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Application, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Application).
func (m *ApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.filename != nil {
		fields = append(fields, application.FieldFilename)
	}
	if m.source_path != nil {
		fields = append(fields, application.FieldSourcePath)
	}
	if m.file_ext != nil {
		fields = append(fields, application.FieldFileExt)
	}
	if m.format != nil {
		fields = append(fields, application.FieldFormat)
	}
	if m.extracted_text != nil {
		fields = append(fields, application.FieldExtractedText)
	}
	if m.product_type != nil {
		fields = append(fields, application.FieldProductType)
	}
	if m.type_confidence != nil {
		fields = append(fields, application.FieldTypeConfidence)
	}
	if m.type_reasoning != nil {
		fields = append(fields, application.FieldTypeReasoning)
	}
	if m.abbreviation != nil {
		fields = append(fields, application.FieldAbbreviation)
	}
	if m.abbreviation_params != nil {
		fields = append(fields, application.FieldAbbreviationParams)
	}
	if m.processed_at != nil {
		fields = append(fields, application.FieldProcessedAt)
	}
	if m.uploaded_at != nil {
		fields = append(fields, application.FieldUploadedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, application.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case application.FieldFilename:
		return m.Filename()
	case application.FieldSourcePath:
		return m.SourcePath()
	case application.FieldFileExt:
		return m.FileExt()
	case application.FieldFormat:
		return m.Format()
	case application.FieldExtractedText:
		return m.ExtractedText()
	case application.FieldProductType:
		return m.ProductType()
	case application.FieldTypeConfidence:
		return m.TypeConfidence()
	case application.FieldTypeReasoning:
		return m.TypeReasoning()
	case application.FieldAbbreviation:
		return m.Abbreviation()
	case application.FieldAbbreviationParams:
		return m.AbbreviationParams()
	case application.FieldProcessedAt:
		return m.ProcessedAt()
	case application.FieldUploadedAt:
		return m.UploadedAt()
	case application.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case application.FieldFilename:
		return m.OldFilename(ctx)
	case application.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case application.FieldFileExt:
		return m.OldFileExt(ctx)
	case application.FieldFormat:
		return m.OldFormat(ctx)
	case application.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case application.FieldProductType:
		return m.OldProductType(ctx)
	case application.FieldTypeConfidence:
		return m.OldTypeConfidence(ctx)
	case application.FieldTypeReasoning:
		return m.OldTypeReasoning(ctx)
	case application.FieldAbbreviation:
		return m.OldAbbreviation(ctx)
	case application.FieldAbbreviationParams:
		return m.OldAbbreviationParams(ctx)
	case application.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case application.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case application.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Application field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case application.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case application.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case application.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case application.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case application.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case application.FieldProductType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductType(v)
		return nil
	case application.FieldTypeConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeConfidence(v)
		return nil
	case application.FieldTypeReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeReasoning(v)
		return nil
	case application.FieldAbbreviation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbbreviation(v)
		return nil
	case application.FieldAbbreviationParams:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbbreviationParams(v)
		return nil
	case application.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case application.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case application.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationMutation) AddedFields() []string {
	var fields []string
	if m.addtype_confidence != nil {
		fields = append(fields, application.FieldTypeConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case application.FieldTypeConfidence:
		return m.AddedTypeConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case application.FieldTypeConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTypeConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Application numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(application.FieldExtractedText) {
		fields = append(fields, application.FieldExtractedText)
	}
	if m.FieldCleared(application.FieldProductType) {
		fields = append(fields, application.FieldProductType)
	}
	if m.FieldCleared(application.FieldTypeConfidence) {
		fields = append(fields, application.FieldTypeConfidence)
	}
	if m.FieldCleared(application.FieldTypeReasoning) {
		fields = append(fields, application.FieldTypeReasoning)
	}
	if m.FieldCleared(application.FieldAbbreviation) {
		fields = append(fields, application.FieldAbbreviation)
	}
	if m.FieldCleared(application.FieldAbbreviationParams) {
		fields = append(fields, application.FieldAbbreviationParams)
	}
	if m.FieldCleared(application.FieldProcessedAt) {
		fields = append(fields, application.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationMutation) ClearField(name string) error {
	switch name {
	case application.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case application.FieldProductType:
		m.ClearProductType()
		return nil
	case application.FieldTypeConfidence:
		m.ClearTypeConfidence()
		return nil
	case application.FieldTypeReasoning:
		m.ClearTypeReasoning()
		return nil
	case application.FieldAbbreviation:
		m.ClearAbbreviation()
		return nil
	case application.FieldAbbreviationParams:
		m.ClearAbbreviationParams()
		return nil
	case application.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Application nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationMutation) ResetField(name string) error {
	switch name {
	case application.FieldFilename:
		m.ResetFilename()
		return nil
	case application.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case application.FieldFileExt:
		m.ResetFileExt()
		return nil
	case application.FieldFormat:
		m.ResetFormat()
		return nil
	case application.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case application.FieldProductType:
		m.ResetProductType()
		return nil
	case application.FieldTypeConfidence:
		m.ResetTypeConfidence()
		return nil
	case application.FieldTypeReasoning:
		m.ResetTypeReasoning()
		return nil
	case application.FieldAbbreviation:
		m.ResetAbbreviation()
		return nil
	case application.FieldAbbreviationParams:
		m.ResetAbbreviationParams()
		return nil
	case application.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case application.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case application.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.operations != nil {
		edges = append(edges, application.EdgeOperations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeOperations:
		ids := make([]ent.Value, 0, len(m.operations))
		for id := range m.operations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedoperations != nil {
		edges = append(edges, application.EdgeOperations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeOperations:
		ids := make([]ent.Value, 0, len(m.removedoperations))
		for id := range m.removedoperations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedoperations {
		edges = append(edges, application.EdgeOperations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationMutation) EdgeCleared(name string) bool {
	switch name {
	case application.EdgeOperations:
		return m.clearedoperations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Application unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationMutation) ResetEdge(name string) error {
	switch name {
	case application.EdgeOperations:
		m.ResetOperations()
		return nil
	}
	return fmt.Errorf("unknown Application edge %s", name)
}

// OperationMutation represents an operation that mutates the Operation nodes in the graph.
type OperationMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	kind                   *string
	provider               *string
	status                 *string
	external_job_id        *string
	request_metadata       *json.RawMessage
	appendrequest_metadata json.RawMessage
	result                 *json.RawMessage
	appendresult           json.RawMessage
	failure                *json.RawMessage
	appendfailure          json.RawMessage
	created_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	retry_count            *int
	addretry_count         *int
	max_retries            *int
	addmax_retries         *int
	deleted_at             *time.Time
	clearedFields          map[string]struct{}
	owner                  *uuid.UUID
	clearedowner           bool
	done                   bool
	oldValue               func(context.Context) (*Operation, error)
	predicates             []predicate.Operation
}

var _ ent.Mutation = (*OperationMutation)(nil)

// operationOption allows management of the mutation configuration using functional options.
type operationOption func(*OperationMutation)

// newOperationMutation creates new mutation for the Operation entity.
func newOperationMutation(c config, op Op, opts ...operationOption) *OperationMutation {
	m := &OperationMutation{
		config:        c,
		op:            op,
		typ:           TypeOperation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOperationID sets the ID field of the mutation.
func withOperationID(id uuid.UUID) operationOption {
	return func(m *OperationMutation) {
		var (
			err   error
			once  sync.Once
			value *Operation
		)
		m.oldValue = func(ctx context.Context) (*Operation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Operation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOperation sets the old Operation of the mutation.
func withOperation(node *Operation) operationOption {
	return func(m *OperationMutation) {
		m.oldValue = func(context.Context) (*Operation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OperationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OperationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Operation entities.
func (m *OperationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OperationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OperationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Operation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *OperationMutation) SetOwnerID(u uuid.UUID) {
	m.owner = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *OperationMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *OperationMutation) ResetOwnerID() {
	m.owner = nil
}

// SetKind sets the "kind" field.
func (m *OperationMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *OperationMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *OperationMutation) ResetKind() {
	m.kind = nil
}

// SetProvider sets the "provider" field.
func (m *OperationMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *OperationMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *OperationMutation) ResetProvider() {
	m.provider = nil
}

// SetStatus sets the "status" field.
func (m *OperationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *OperationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OperationMutation) ResetStatus() {
	m.status = nil
}

// SetExternalJobID sets the "external_job_id" field.
func (m *OperationMutation) SetExternalJobID(s string) {
	m.external_job_id = &s
}

// ExternalJobID returns the value of the "external_job_id" field in the mutation.
func (m *OperationMutation) ExternalJobID() (r string, exists bool) {
	v := m.external_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalJobID returns the old "external_job_id" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldExternalJobID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalJobID: %w", err)
	}
	return oldValue.ExternalJobID, nil
}

// ClearExternalJobID clears the value of the "external_job_id" field.
func (m *OperationMutation) ClearExternalJobID() {
	m.external_job_id = nil
	m.clearedFields[operation.FieldExternalJobID] = struct{}{}
}

// ExternalJobIDCleared returns if the "external_job_id" field was cleared in this mutation.
func (m *OperationMutation) ExternalJobIDCleared() bool {
	_, ok := m.clearedFields[operation.FieldExternalJobID]
	return ok
}

// ResetExternalJobID resets all changes to the "external_job_id" field.
func (m *OperationMutation) ResetExternalJobID() {
	m.external_job_id = nil
	delete(m.clearedFields, operation.FieldExternalJobID)
}

// SetRequestMetadata sets the "request_metadata" field.
func (m *OperationMutation) SetRequestMetadata(jm json.RawMessage) {
	m.request_metadata = &jm
	m.appendrequest_metadata = nil
}

// RequestMetadata returns the value of the "request_metadata" field in the mutation.
func (m *OperationMutation) RequestMetadata() (r json.RawMessage, exists bool) {
	v := m.request_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestMetadata returns the old "request_metadata" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldRequestMetadata(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestMetadata: %w", err)
	}
	return oldValue.RequestMetadata, nil
}

// AppendRequestMetadata adds jm to the "request_metadata" field.
func (m *OperationMutation) AppendRequestMetadata(jm json.RawMessage) {
	m.appendrequest_metadata = append(m.appendrequest_metadata, jm...)
}

// AppendedRequestMetadata returns the list of values that were appended to the "request_metadata" field in this mutation.
func (m *OperationMutation) AppendedRequestMetadata() (json.RawMessage, bool) {
	if len(m.appendrequest_metadata) == 0 {
		return nil, false
	}
	return m.appendrequest_metadata, true
}

// ClearRequestMetadata clears the value of the "request_metadata" field.
func (m *OperationMutation) ClearRequestMetadata() {
	m.request_metadata = nil
	m.appendrequest_metadata = nil
	m.clearedFields[operation.FieldRequestMetadata] = struct{}{}
}

// RequestMetadataCleared returns if the "request_metadata" field was cleared in this mutation.
func (m *OperationMutation) RequestMetadataCleared() bool {
	_, ok := m.clearedFields[operation.FieldRequestMetadata]
	return ok
}

// ResetRequestMetadata resets all changes to the "request_metadata" field.
func (m *OperationMutation) ResetRequestMetadata() {
	m.request_metadata = nil
	m.appendrequest_metadata = nil
	delete(m.clearedFields, operation.FieldRequestMetadata)
}

// SetResult sets the "result" field.
func (m *OperationMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *OperationMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *OperationMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *OperationMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *OperationMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[operation.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *OperationMutation) ResultCleared() bool {
	_, ok := m.clearedFields[operation.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *OperationMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, operation.FieldResult)
}

// SetFailure sets the "failure" field.
func (m *OperationMutation) SetFailure(jm json.RawMessage) {
	m.failure = &jm
	m.appendfailure = nil
}

// Failure returns the value of the "failure" field in the mutation.
func (m *OperationMutation) Failure() (r json.RawMessage, exists bool) {
	v := m.failure
	if v == nil {
		return
	}
	return *v, true
}

// OldFailure returns the old "failure" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldFailure(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailure: %w", err)
	}
	return oldValue.Failure, nil
}

// AppendFailure adds jm to the "failure" field.
func (m *OperationMutation) AppendFailure(jm json.RawMessage) {
	m.appendfailure = append(m.appendfailure, jm...)
}

// AppendedFailure returns the list of values that were appended to the "failure" field in this mutation.
func (m *OperationMutation) AppendedFailure() (json.RawMessage, bool) {
	if len(m.appendfailure) == 0 {
		return nil, false
	}
	return m.appendfailure, true
}

// ClearFailure clears the value of the "failure" field.
func (m *OperationMutation) ClearFailure() {
	m.failure = nil
	m.appendfailure = nil
	m.clearedFields[operation.FieldFailure] = struct{}{}
}

// FailureCleared returns if the "failure" field was cleared in this mutation.
func (m *OperationMutation) FailureCleared() bool {
	_, ok := m.clearedFields[operation.FieldFailure]
	return ok
}

// ResetFailure resets all changes to the "failure" field.
func (m *OperationMutation) ResetFailure() {
	m.failure = nil
	m.appendfailure = nil
	delete(m.clearedFields, operation.FieldFailure)
}

// SetCreatedAt sets the "created_at" field.
func (m *OperationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OperationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OperationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *OperationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *OperationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *OperationMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[operation.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *OperationMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[operation.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *OperationMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, operation.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *OperationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *OperationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *OperationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[operation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *OperationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[operation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *OperationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, operation.FieldCompletedAt)
}

// SetRetryCount sets the "retry_count" field.
func (m *OperationMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *OperationMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *OperationMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *OperationMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *OperationMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *OperationMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *OperationMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *OperationMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *OperationMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *OperationMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *OperationMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *OperationMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Operation entity.
// If the Operation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OperationMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *OperationMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[operation.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *OperationMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[operation.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *OperationMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, operation.FieldDeletedAt)
}

// ClearOwner clears the "owner" edge to the Application entity.
func (m *OperationMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[operation.FieldOwnerID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the Application entity was cleared.
func (m *OperationMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *OperationMutation) OwnerIDs() (ids []uuid.UUID) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *OperationMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the OperationMutation builder.
func (m *OperationMutation) Where(ps ...predicate.Operation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OperationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OperationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Operation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OperationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OperationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Operation).
func (m *OperationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OperationMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.owner != nil {
		fields = append(fields, operation.FieldOwnerID)
	}
	if m.kind != nil {
		fields = append(fields, operation.FieldKind)
	}
	if m.provider != nil {
		fields = append(fields, operation.FieldProvider)
	}
	if m.status != nil {
		fields = append(fields, operation.FieldStatus)
	}
	if m.external_job_id != nil {
		fields = append(fields, operation.FieldExternalJobID)
	}
	if m.request_metadata != nil {
		fields = append(fields, operation.FieldRequestMetadata)
	}
	if m.result != nil {
		fields = append(fields, operation.FieldResult)
	}
	if m.failure != nil {
		fields = append(fields, operation.FieldFailure)
	}
	if m.created_at != nil {
		fields = append(fields, operation.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, operation.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, operation.FieldCompletedAt)
	}
	if m.retry_count != nil {
		fields = append(fields, operation.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, operation.FieldMaxRetries)
	}
	if m.deleted_at != nil {
		fields = append(fields, operation.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OperationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case operation.FieldOwnerID:
		return m.OwnerID()
	case operation.FieldKind:
		return m.Kind()
	case operation.FieldProvider:
		return m.Provider()
	case operation.FieldStatus:
		return m.Status()
	case operation.FieldExternalJobID:
		return m.ExternalJobID()
	case operation.FieldRequestMetadata:
		return m.RequestMetadata()
	case operation.FieldResult:
		return m.Result()
	case operation.FieldFailure:
		return m.Failure()
	case operation.FieldCreatedAt:
		return m.CreatedAt()
	case operation.FieldStartedAt:
		return m.StartedAt()
	case operation.FieldCompletedAt:
		return m.CompletedAt()
	case operation.FieldRetryCount:
		return m.RetryCount()
	case operation.FieldMaxRetries:
		return m.MaxRetries()
	case operation.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OperationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case operation.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case operation.FieldKind:
		return m.OldKind(ctx)
	case operation.FieldProvider:
		return m.OldProvider(ctx)
	case operation.FieldStatus:
		return m.OldStatus(ctx)
	case operation.FieldExternalJobID:
		return m.OldExternalJobID(ctx)
	case operation.FieldRequestMetadata:
		return m.OldRequestMetadata(ctx)
	case operation.FieldResult:
		return m.OldResult(ctx)
	case operation.FieldFailure:
		return m.OldFailure(ctx)
	case operation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case operation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case operation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case operation.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case operation.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case operation.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Operation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OperationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case operation.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case operation.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case operation.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case operation.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case operation.FieldExternalJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalJobID(v)
		return nil
	case operation.FieldRequestMetadata:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestMetadata(v)
		return nil
	case operation.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case operation.FieldFailure:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailure(v)
		return nil
	case operation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case operation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case operation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case operation.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case operation.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case operation.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Operation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OperationMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, operation.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, operation.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OperationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case operation.FieldRetryCount:
		return m.AddedRetryCount()
	case operation.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OperationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case operation.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case operation.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown Operation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OperationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(operation.FieldExternalJobID) {
		fields = append(fields, operation.FieldExternalJobID)
	}
	if m.FieldCleared(operation.FieldRequestMetadata) {
		fields = append(fields, operation.FieldRequestMetadata)
	}
	if m.FieldCleared(operation.FieldResult) {
		fields = append(fields, operation.FieldResult)
	}
	if m.FieldCleared(operation.FieldFailure) {
		fields = append(fields, operation.FieldFailure)
	}
	if m.FieldCleared(operation.FieldStartedAt) {
		fields = append(fields, operation.FieldStartedAt)
	}
	if m.FieldCleared(operation.FieldCompletedAt) {
		fields = append(fields, operation.FieldCompletedAt)
	}
	if m.FieldCleared(operation.FieldDeletedAt) {
		fields = append(fields, operation.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OperationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OperationMutation) ClearField(name string) error {
	switch name {
	case operation.FieldExternalJobID:
		m.ClearExternalJobID()
		return nil
	case operation.FieldRequestMetadata:
		m.ClearRequestMetadata()
		return nil
	case operation.FieldResult:
		m.ClearResult()
		return nil
	case operation.FieldFailure:
		m.ClearFailure()
		return nil
	case operation.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case operation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case operation.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Operation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OperationMutation) ResetField(name string) error {
	switch name {
	case operation.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case operation.FieldKind:
		m.ResetKind()
		return nil
	case operation.FieldProvider:
		m.ResetProvider()
		return nil
	case operation.FieldStatus:
		m.ResetStatus()
		return nil
	case operation.FieldExternalJobID:
		m.ResetExternalJobID()
		return nil
	case operation.FieldRequestMetadata:
		m.ResetRequestMetadata()
		return nil
	case operation.FieldResult:
		m.ResetResult()
		return nil
	case operation.FieldFailure:
		m.ResetFailure()
		return nil
	case operation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case operation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case operation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case operation.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case operation.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case operation.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Operation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OperationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, operation.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OperationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case operation.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OperationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OperationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OperationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, operation.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OperationMutation) EdgeCleared(name string) bool {
	switch name {
	case operation.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OperationMutation) ClearEdge(name string) error {
	switch name {
	case operation.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Operation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OperationMutation) ResetEdge(name string) error {
	switch name {
	case operation.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown Operation edge %s", name)
}
