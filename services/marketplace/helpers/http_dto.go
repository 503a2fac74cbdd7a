package helpers

import (
	"encoding/json"

	"auction-house/internal/outputs"
)

// Request/Response DTOs
type AdvanceMetadata struct {
	MsgSender string `json:"msg_sender" binding:"required"`
	Timestamp int64  `json:"timestamp" binding:"required"`
}

type AdvanceRequest struct {
	Metadata AdvanceMetadata `json:"metadata" binding:"required"`
	Payload  json.RawMessage `json:"payload" binding:"required"`
}

// RollupResponse reports the accept/reject status of one processed request
// together with the envelopes it produced.
type RollupResponse struct {
	Status  string           `json:"status"`
	Outputs []outputs.Output `json:"outputs"`
}

const (
	StatusAccept = "accept"
	StatusReject = "reject"
)

// NewRollupResponse derives the accept/reject status from the envelopes: a
// request that produced an error envelope is a rejected request.
func NewRollupResponse(outs []outputs.Output) RollupResponse {
	status := StatusAccept
	for _, out := range outs {
		if out.IsError() {
			status = StatusReject
			break
		}
	}
	return RollupResponse{Status: status, Outputs: outs}
}
