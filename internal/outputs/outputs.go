// Package outputs holds the closed set of result envelopes the rollup
// boundary understands. The core services never build these; the dispatch
// layer wraps typed results and errors into them.
package outputs

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Kind tags an output envelope.
type Kind string

const (
	KindNotice  Kind = "notice"
	KindVoucher Kind = "voucher"
	KindReport  Kind = "report"
	KindLog     Kind = "log"
	KindError   Kind = "error"
)

// Output is one boundary envelope. Payload is hex-encoded with a 0x prefix,
// matching the rollup wire convention. Destination is set for vouchers only.
type Output struct {
	Kind        Kind   `json:"type"`
	Payload     string `json:"payload"`
	Destination string `json:"destination,omitempty"`
}

// NewNotice wraps a payload as a notice.
func NewNotice(payload string) Output {
	return Output{Kind: KindNotice, Payload: encode(payload)}
}

// NewVoucher wraps a payload as a voucher addressed to a contract.
func NewVoucher(destination string, payload []byte) Output {
	return Output{Kind: KindVoucher, Payload: "0x" + hex.EncodeToString(payload), Destination: destination}
}

// NewReport wraps a payload as a report.
func NewReport(payload string) Output {
	return Output{Kind: KindReport, Payload: encode(payload)}
}

// NewLog wraps a payload as a log.
func NewLog(payload string) Output {
	return Output{Kind: KindLog, Payload: encode(payload)}
}

// NewError wraps a rejection message as an error envelope.
func NewError(payload string) Output {
	return Output{Kind: KindError, Payload: encode(payload)}
}

// IsError reports whether the envelope marks a rejected request.
func (o Output) IsError() bool {
	return o.Kind == KindError
}

// DecodedPayload returns the payload text behind the hex encoding.
func (o Output) DecodedPayload() (string, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(o.Payload, "0x"))
	if err != nil {
		return "", fmt.Errorf("decode output payload: %w", err)
	}
	return string(raw), nil
}

// encode hex-encodes text payloads, passing through already-encoded ones.
func encode(payload string) string {
	if strings.HasPrefix(payload, "0x") {
		return payload
	}
	return "0x" + hex.EncodeToString([]byte(payload))
}
