package outputs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputs_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		out  Output
		kind Kind
	}{
		{name: "notice", out: NewNotice("hello"), kind: KindNotice},
		{name: "report", out: NewReport("hello"), kind: KindReport},
		{name: "log", out: NewLog("hello"), kind: KindLog},
		{name: "error", out: NewError("hello"), kind: KindError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.kind, tc.out.Kind)
			require.Equal(t, "0x68656c6c6f", tc.out.Payload)
			decoded, err := tc.out.DecodedPayload()
			require.NoError(t, err)
			require.Equal(t, "hello", decoded)
			require.Equal(t, tc.kind == KindError, tc.out.IsError())
		})
	}
}

func TestOutputs_Voucher(t *testing.T) {
	t.Parallel()

	v := NewVoucher("0xcontract", []byte(`{"to":"0xabc"}`))
	require.Equal(t, KindVoucher, v.Kind)
	require.Equal(t, "0xcontract", v.Destination)

	decoded, err := v.DecodedPayload()
	require.NoError(t, err)
	require.Equal(t, `{"to":"0xabc"}`, decoded)
}

func TestOutputs_PassThroughHex(t *testing.T) {
	t.Parallel()

	// already-encoded payloads are not double encoded
	out := NewNotice("0xdeadbeef")
	require.Equal(t, "0xdeadbeef", out.Payload)
}
