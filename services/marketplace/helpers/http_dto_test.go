package helpers

import (
	"testing"

	"auction-house/internal/outputs"

	"github.com/stretchr/testify/require"
)

// Tests that the response status follows the envelope kinds
func TestNewRollupResponse(t *testing.T) {
	t.Parallel()

	accepted := NewRollupResponse([]outputs.Output{outputs.NewNotice(`{"auction_id":1}`)})
	require.Equal(t, StatusAccept, accepted.Status)
	require.Len(t, accepted.Outputs, 1)

	rejected := NewRollupResponse([]outputs.Output{outputs.NewError("auction not found")})
	require.Equal(t, StatusReject, rejected.Status)

	mixed := NewRollupResponse([]outputs.Output{
		outputs.NewReport(`{}`),
		outputs.NewError("rejected"),
	})
	require.Equal(t, StatusReject, mixed.Status)

	empty := NewRollupResponse(nil)
	require.Equal(t, StatusAccept, empty.Status)
	require.Empty(t, empty.Outputs)
}
