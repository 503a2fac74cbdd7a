package handler

import (
	"net/http"
	"time"

	"auction-house/internal/dispatch"
	"auction-house/internal/outputs"
	"auction-house/services/marketplace/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// DispatcherInterface is what the HTTP layer needs from the command router.
type DispatcherInterface interface {
	Advance(meta dispatch.Metadata, payload []byte) ([]outputs.Output, error)
	Inspect(path string) ([]outputs.Output, error)
}

// RollupHandler exposes the advance/inspect surface of the marketplace.
type RollupHandler struct {
	dispatcher DispatcherInterface
}

func NewRollupHandler(dispatcher DispatcherInterface) *RollupHandler {
	return &RollupHandler{dispatcher: dispatcher}
}

// AdvanceHandler handles POST /advance
func (h *RollupHandler) AdvanceHandler(c *gin.Context) {
	var req helpers.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AdvanceHandler", err)
		return
	}

	meta := dispatch.Metadata{
		MsgSender: req.Metadata.MsgSender,
		Timestamp: time.Unix(req.Metadata.Timestamp, 0).UTC(),
	}
	outs, err := h.dispatcher.Advance(meta, req.Payload)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		resp := helpers.NewRollupResponse([]outputs.Output{outputs.NewError(err.Error())})
		utils.JSONResponse(c, status, resp, message)
		utils.Warn("AdvanceHandler: request rejected", map[string]any{
			"sender": req.Metadata.MsgSender,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRollupResponse(outs), "request accepted")
	helpers.LogSuccess("AdvanceHandler", "request accepted", map[string]any{
		"sender":  req.Metadata.MsgSender,
		"outputs": len(outs),
	})
}

// InspectHandler handles GET /inspect/*path
func (h *RollupHandler) InspectHandler(c *gin.Context) {
	path := c.Param("path")
	outs, err := h.dispatcher.Inspect(path)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		resp := helpers.NewRollupResponse([]outputs.Output{outputs.NewError(err.Error())})
		utils.JSONResponse(c, status, resp, message)
		utils.Warn("InspectHandler: request rejected", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRollupResponse(outs), "request accepted")
	helpers.LogSuccess("InspectHandler", "request accepted", map[string]any{
		"path":    path,
		"outputs": len(outs),
	})
}
