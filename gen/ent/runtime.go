// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/akhomyakov/docflow/db/ent/schema"
	"github.com/akhomyakov/docflow/gen/ent/application"
	"github.com/akhomyakov/docflow/gen/ent/operation"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescFilename is the schema descriptor for filename field.
	applicationDescFilename := applicationFields[1].Descriptor()
	// application.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	application.FilenameValidator = applicationDescFilename.Validators[0].(func(string) error)
	// applicationDescSourcePath is the schema descriptor for source_path field.
	applicationDescSourcePath := applicationFields[2].Descriptor()
	// application.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	application.SourcePathValidator = applicationDescSourcePath.Validators[0].(func(string) error)
	// applicationDescFileExt is the schema descriptor for file_ext field.
	applicationDescFileExt := applicationFields[3].Descriptor()
	// application.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	application.FileExtValidator = applicationDescFileExt.Validators[0].(func(string) error)
	// applicationDescFormat is the schema descriptor for format field.
	applicationDescFormat := applicationFields[4].Descriptor()
	// application.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	application.FormatValidator = func() func(string) error {
		validators := applicationDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// applicationDescUploadedAt is the schema descriptor for uploaded_at field.
	applicationDescUploadedAt := applicationFields[12].Descriptor()
	// application.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	application.DefaultUploadedAt = applicationDescUploadedAt.Default.(func() time.Time)
	// applicationDescUpdatedAt is the schema descriptor for updated_at field.
	applicationDescUpdatedAt := applicationFields[13].Descriptor()
	// application.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	application.DefaultUpdatedAt = applicationDescUpdatedAt.Default.(func() time.Time)
	// application.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	application.UpdateDefaultUpdatedAt = applicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicationDescID is the schema descriptor for id field.
	applicationDescID := applicationFields[0].Descriptor()
	// application.DefaultID holds the default value on creation for the id field.
	application.DefaultID = applicationDescID.Default.(func() uuid.UUID)
	operationFields := schema.Operation{}.Fields()
	_ = operationFields
	// operationDescKind is the schema descriptor for kind field.
	operationDescKind := operationFields[2].Descriptor()
	// operation.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	operation.KindValidator = func() func(string) error {
		validators := operationDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// operationDescProvider is the schema descriptor for provider field.
	operationDescProvider := operationFields[3].Descriptor()
	// operation.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	operation.ProviderValidator = func() func(string) error {
		validators := operationDescProvider.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(provider string) error {
			for _, fn := range fns {
				if err := fn(provider); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// operationDescStatus is the schema descriptor for status field.
	operationDescStatus := operationFields[4].Descriptor()
	// operation.DefaultStatus holds the default value on creation for the status field.
	operation.DefaultStatus = operationDescStatus.Default.(string)
	// operation.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	operation.StatusValidator = operationDescStatus.Validators[0].(func(string) error)
	// operationDescCreatedAt is the schema descriptor for created_at field.
	operationDescCreatedAt := operationFields[9].Descriptor()
	// operation.DefaultCreatedAt holds the default value on creation for the created_at field.
	operation.DefaultCreatedAt = operationDescCreatedAt.Default.(func() time.Time)
	// operationDescRetryCount is the schema descriptor for retry_count field.
	operationDescRetryCount := operationFields[12].Descriptor()
	// operation.DefaultRetryCount holds the default value on creation for the retry_count field.
	operation.DefaultRetryCount = operationDescRetryCount.Default.(int)
	// operationDescMaxRetries is the schema descriptor for max_retries field.
	operationDescMaxRetries := operationFields[13].Descriptor()
	// operation.DefaultMaxRetries holds the default value on creation for the max_retries field.
	operation.DefaultMaxRetries = operationDescMaxRetries.Default.(int)
	// operationDescID is the schema descriptor for id field.
	operationDescID := operationFields[0].Descriptor()
	// operation.DefaultID holds the default value on creation for the id field.
	operation.DefaultID = operationDescID.Default.(func() uuid.UUID)
}
