package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validationf("bad %s", "input")))
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("missing")))
	assert.Equal(t, KindTransient, KindOf(Transient("timeout", nil)))
	assert.Equal(t, KindProvider, KindOf(Provider("upstream said no", "HTTP_500", nil)))
	assert.Equal(t, KindParse, KindOf(Parse("bad shape", nil)))
	assert.Equal(t, KindProjection, KindOf(Projection("write failed", nil)))

	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	inner := Transient("connection reset", errors.New("ECONNRESET"))
	wrapped := fmt.Errorf("calling provider: %w", inner)

	assert.True(t, IsKind(wrapped, KindTransient))
	assert.False(t, IsKind(wrapped, KindProvider))
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	err := Transient("request timed out", cause)

	assert.Contains(t, err.Error(), "TRANSIENT")
	assert.Contains(t, err.Error(), "i/o timeout")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestToStatusError(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{Validationf("bad"), codes.InvalidArgument},
		{NotFoundf("missing"), codes.NotFound},
		{Transient("timeout", nil), codes.Unavailable},
		{Provider("upstream", "HTTP_500", nil), codes.FailedPrecondition},
		{Parse("bad shape", nil), codes.FailedPrecondition},
		{Projection("write", nil), codes.Internal},
		{errors.New("plain"), codes.Internal},
	}
	for _, tc := range cases {
		st, ok := status.FromError(ToStatusError(tc.err))
		require.True(t, ok)
		assert.Equal(t, tc.want, st.Code(), "for %v", tc.err)
	}
	assert.NoError(t, ToStatusError(nil))
}
