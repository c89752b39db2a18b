package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Identifier parsing happens before anything reaches the lifecycle manager,
// so these paths are exercised without one.
func TestMalformedIdentifiersAreInvalidArgument(t *testing.T) {
	svc := NewOperationsService(nil, nil)
	ctx := context.Background()

	checks := []struct {
		name string
		call func() error
	}{
		{"create", func() error {
			_, err := svc.CreateOrUpdateOperation(ctx, "not-a-uuid", "TEXT_EXTRACTION", "YANDEX_VISION", nil, "")
			return err
		}},
		{"get", func() error {
			_, err := svc.GetOperation(ctx, "not-a-uuid")
			return err
		}},
		{"get_by_owner", func() error {
			_, err := svc.GetOperationByOwnerAndKind(ctx, "not-a-uuid", "TEXT_EXTRACTION")
			return err
		}},
		{"list", func() error {
			_, err := svc.ListOperations(ctx, "not-a-uuid", "")
			return err
		}},
		{"check_status", func() error {
			_, err := svc.CheckOperationStatus(ctx, "not-a-uuid")
			return err
		}},
		{"update_status", func() error {
			_, err := svc.UpdateOperationStatus(ctx, "not-a-uuid", "RUNNING", nil, nil)
			return err
		}},
		{"redo", func() error {
			_, err := svc.RedoOperation(ctx, "not-a-uuid")
			return err
		}},
		{"delete", func() error {
			return svc.DeleteOperation(ctx, "not-a-uuid")
		}},
	}

	for _, tc := range checks {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.Error(t, err)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, codes.InvalidArgument, st.Code())
		})
	}
}
